package responsive

import (
	"strings"
)

// Breakpoint is a viewport size class.
type Breakpoint string

const (
	Phone   Breakpoint = "phone"
	Tablet  Breakpoint = "tablet"
	Desktop Breakpoint = "desktop"
)

// groupMobile is a configuration-only key covering phone and tablet.
const groupMobile = "mobile"

// ordered lists the breakpoints from the smallest viewport to the largest.
var ordered = []Breakpoint{Phone, Tablet, Desktop}

var aliases = map[string]string{
	"phone":   string(Phone),
	"small":   string(Phone),
	"tablet":  string(Tablet),
	"medium":  string(Tablet),
	"desktop": string(Desktop),
	"large":   string(Desktop),
	"mobile":  groupMobile,
}

// Names returns every accepted breakpoint name, aliases included.
func Names() []string {
	return []string{"phone", "small", "tablet", "medium", "desktop", "large", "mobile"}
}

// ParseBreakpoint normalizes a viewport name ("small", "Tablet", ...) to a Breakpoint.
// "mobile" is not a viewport and is rejected.
func ParseBreakpoint(name string) (Breakpoint, bool) {
	key, ok := aliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok || key == groupMobile {
		return "", false
	}
	return Breakpoint(key), true
}

func (b Breakpoint) index() int {
	for i, o := range ordered {
		if o == b {
			return i
		}
	}
	return len(ordered) - 1
}

// Thresholds are the minimum viewport widths, in CSS pixels, of the larger breakpoints.
type Thresholds struct {
	Tablet  int
	Desktop int
}

// DefaultThresholds matches common storefront layouts.
var DefaultThresholds = Thresholds{Tablet: 640, Desktop: 1024}

// Classify maps a viewport width to a breakpoint. Unknown widths (<= 0) are desktop.
func Classify(width int, th Thresholds) Breakpoint {
	if th.Tablet <= 0 || th.Desktop <= 0 {
		th = DefaultThresholds
	}
	switch {
	case width <= 0:
		return Desktop
	case width < th.Tablet:
		return Phone
	case width < th.Desktop:
		return Tablet
	default:
		return Desktop
	}
}

// ClassifyUserAgent guesses a breakpoint from a User-Agent header.
func ClassifyUserAgent(ua string) Breakpoint {
	ua = strings.ToLower(ua)
	switch {
	case strings.Contains(ua, "ipad"), strings.Contains(ua, "tablet"):
		return Tablet
	case strings.Contains(ua, "android") && !strings.Contains(ua, "mobile"):
		return Tablet
	case strings.Contains(ua, "mobi"), strings.Contains(ua, "iphone"), strings.Contains(ua, "android"):
		return Phone
	default:
		return Desktop
	}
}
