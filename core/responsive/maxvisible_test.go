package responsive_test

import (
	"encoding/json"
	"testing"

	"product-gifts/core/responsive"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMaxVisible(t *testing.T) {
	tests := []struct {
		name    string
		val     any
		want    string
		wantErr bool
	}{
		{"ShowAll", "showAll", "showAll", false},
		{"ShowAllCase", " SHOWALL ", "showAll", false},
		{"Int", 3, "3", false},
		{"Float", 2.0, "2", false},
		{"NumericString", "5", "5", false},
		{"Zero", 0, "", true},
		{"Negative", -1, "", true},
		{"Fraction", 1.5, "", true},
		{"Word", "some", "", true},
		{"Bool", true, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := responsive.ParseMaxVisible(tt.val)
			if tt.wantErr {
				assert.ErrorIs(t, err, responsive.ErrInvalidMaxVisible)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestMaxVisible_Value(t *testing.T) {
	n, ok := responsive.ShowAll().Value()
	assert.False(t, ok)
	assert.Zero(t, n)
	assert.True(t, responsive.ShowAll().IsShowAll())

	c, err := responsive.Cap(4)
	require.NoError(t, err)
	n, ok = c.Value()
	assert.True(t, ok)
	assert.Equal(t, 4, n)
	assert.False(t, c.IsShowAll())

	assert.True(t, responsive.MaxVisible{}.IsShowAll())
}

func TestMaxVisible_JSON(t *testing.T) {
	c, _ := responsive.Cap(2)

	data, err := json.Marshal(struct {
		A responsive.MaxVisible `json:"a"`
		B responsive.MaxVisible `json:"b"`
	}{A: c, B: responsive.ShowAll()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":2,"b":"showAll"}`, string(data))

	var decoded struct {
		A responsive.MaxVisible `json:"a"`
		B responsive.MaxVisible `json:"b"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":7,"b":"showAll"}`), &decoded))
	n, ok := decoded.A.Value()
	assert.True(t, ok)
	assert.Equal(t, 7, n)
	assert.True(t, decoded.B.IsShowAll())

	assert.Error(t, json.Unmarshal([]byte(`{"a":0}`), &decoded))
}
