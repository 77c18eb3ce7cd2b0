package responsive

import (
	"encoding/json"
	"fmt"
	"strings"

	"product-gifts/core/utils"
)

// Input is a value that is either the same for every viewport or keyed by breakpoint.
type Input struct {
	scalar       *MaxVisible
	byBreakpoint map[string]MaxVisible
}

// Scalar returns an Input that resolves to v on every viewport.
func Scalar(v MaxVisible) Input {
	return Input{scalar: &v}
}

// ByBreakpoint returns an Input keyed by breakpoint names (aliases and "mobile" allowed).
func ByBreakpoint(values map[string]MaxVisible) (Input, error) {
	normalized := make(map[string]MaxVisible, len(values))
	for name, v := range values {
		key, ok := aliases[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return Input{}, fmt.Errorf("unknown breakpoint %q", name)
		}
		normalized[key] = v
	}
	return Input{byBreakpoint: normalized}, nil
}

// ParseInput decodes a configured value: a scalar ("showAll", 3, "3"), a
// breakpoint map, or a JSON document encoding either.
func ParseInput(val any) (Input, error) {
	switch v := val.(type) {
	case nil:
		return Scalar(ShowAll()), nil
	case map[string]any:
		values := make(map[string]MaxVisible, len(v))
		for name, raw := range v {
			mv, err := ParseMaxVisible(raw)
			if err != nil {
				return Input{}, fmt.Errorf("breakpoint %q: %w", name, err)
			}
			values[name] = mv
		}
		return ByBreakpoint(values)
	case map[string]MaxVisible:
		return ByBreakpoint(v)
	case MaxVisible:
		return Scalar(v), nil
	}

	if s, ok := utils.ToString(val); ok {
		s = strings.TrimSpace(s)
		if s == "" {
			return Scalar(ShowAll()), nil
		}
		if strings.HasPrefix(s, "{") {
			var m map[string]any
			if err := json.Unmarshal([]byte(s), &m); err != nil {
				return Input{}, fmt.Errorf("invalid breakpoint map: %w", err)
			}
			return ParseInput(m)
		}
		s = strings.Trim(s, `"`)
		val = s
	}

	mv, err := ParseMaxVisible(val)
	if err != nil {
		return Input{}, err
	}
	return Scalar(mv), nil
}

// Resolve returns the value for bp. Lookup order: the breakpoint itself, the
// "mobile" group for phone and tablet, the nearest smaller configured
// breakpoint, the nearest larger one, and finally show all.
func (in Input) Resolve(bp Breakpoint) MaxVisible {
	if in.scalar != nil {
		return *in.scalar
	}
	if len(in.byBreakpoint) == 0 {
		return ShowAll()
	}

	if v, ok := in.byBreakpoint[string(bp)]; ok {
		return v
	}
	if bp == Phone || bp == Tablet {
		if v, ok := in.byBreakpoint[groupMobile]; ok {
			return v
		}
	}

	idx := bp.index()
	for i := idx - 1; i >= 0; i-- {
		if v, ok := in.byBreakpoint[string(ordered[i])]; ok {
			return v
		}
	}
	for i := idx + 1; i < len(ordered); i++ {
		if v, ok := in.byBreakpoint[string(ordered[i])]; ok {
			return v
		}
	}
	if v, ok := in.byBreakpoint[groupMobile]; ok {
		return v
	}
	return ShowAll()
}
