package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToInt(t *testing.T) {
	tests := []struct {
		name   string
		val    any
		want   int
		wantOK bool
	}{
		{"Int", 3, 3, true},
		{"Int64", int64(4), 4, true},
		{"Uint8", uint8(5), 5, true},
		{"IntegralFloat", 2.0, 2, true},
		{"FractionalFloat", 2.5, 0, false},
		{"Float32", float32(7), 7, true},
		{"JSONNumber", json.Number("9"), 9, true},
		{"String", " 12 ", 12, true},
		{"FloatString", "3.0", 3, true},
		{"Bytes", []byte("8"), 8, true},
		{"Word", "showAll", 0, false},
		{"Bool", true, 0, false},
		{"Nil", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToInt(tt.val)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToString(t *testing.T) {
	s, ok := ToString("a")
	assert.True(t, ok)
	assert.Equal(t, "a", s)

	s, ok = ToString([]byte("b"))
	assert.True(t, ok)
	assert.Equal(t, "b", s)

	_, ok = ToString(1)
	assert.False(t, ok)
}
