package responsive

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"product-gifts/core/utils"
)

// ShowAllValue is the sentinel that disables the display cap.
const ShowAllValue = "showAll"

// ErrInvalidMaxVisible is returned for values that are neither a positive integer nor "showAll".
var ErrInvalidMaxVisible = errors.New("max visible items must be a positive integer or \"showAll\"")

// MaxVisible is a display cap: a positive integer, or "show all".
// The zero value means show all.
type MaxVisible struct {
	limit int
}

// ShowAll returns the uncapped value.
func ShowAll() MaxVisible {
	return MaxVisible{}
}

// Cap returns a cap of n items. n must be at least 1.
func Cap(n int) (MaxVisible, error) {
	if n < 1 {
		return MaxVisible{}, fmt.Errorf("%w: got %d", ErrInvalidMaxVisible, n)
	}
	return MaxVisible{limit: n}, nil
}

// IsShowAll reports whether m is the uncapped sentinel.
func (m MaxVisible) IsShowAll() bool {
	return m.limit == 0
}

// Value returns the cap and true, or 0 and false for show all.
func (m MaxVisible) Value() (int, bool) {
	return m.limit, m.limit > 0
}

func (m MaxVisible) String() string {
	if m.IsShowAll() {
		return ShowAllValue
	}
	return strconv.Itoa(m.limit)
}

// MarshalJSON encodes the cap as a number, or the "showAll" string.
func (m MaxVisible) MarshalJSON() ([]byte, error) {
	if m.IsShowAll() {
		return json.Marshal(ShowAllValue)
	}
	return json.Marshal(m.limit)
}

// UnmarshalJSON accepts a number or the "showAll" string.
func (m *MaxVisible) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v, err := ParseMaxVisible(raw)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// ParseMaxVisible converts a loosely typed value (int, integral float, numeric
// string or "showAll", case-insensitive) into a MaxVisible.
func ParseMaxVisible(val any) (MaxVisible, error) {
	if s, ok := utils.ToString(val); ok && strings.EqualFold(strings.TrimSpace(s), ShowAllValue) {
		return ShowAll(), nil
	}
	n, ok := utils.ToInt(val)
	if !ok {
		return MaxVisible{}, fmt.Errorf("%w: got %v", ErrInvalidMaxVisible, val)
	}
	return Cap(n)
}
