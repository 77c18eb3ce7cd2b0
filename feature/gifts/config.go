package gifts

import (
	"product-gifts/core/responsive"
)

// Config holds configuration for the gifts feature.
type Config struct {
	// MaxVisibleItems is "showAll", a positive integer, or a JSON breakpoint
	// map such as {"small": 2, "large": "showAll"}.
	MaxVisibleItems string `mapstructure:"max_visible_items" default:"showAll"`
	// BreakpointTablet is the minimum viewport width classified as tablet.
	BreakpointTablet int `mapstructure:"breakpoint_tablet" default:"640"`
	// BreakpointDesktop is the minimum viewport width classified as desktop.
	BreakpointDesktop int `mapstructure:"breakpoint_desktop" default:"1024"`
}

// MaxVisibleInput parses MaxVisibleItems.
func (c Config) MaxVisibleInput() (responsive.Input, error) {
	return responsive.ParseInput(c.MaxVisibleItems)
}

// Thresholds returns the viewport width thresholds.
func (c Config) Thresholds() responsive.Thresholds {
	return responsive.Thresholds{Tablet: c.BreakpointTablet, Desktop: c.BreakpointDesktop}
}
