package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToInt(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int
	}{
		{"Int", 3, 3},
		{"Int64", int64(7), 7},
		{"Float", 2.9, 2},
		{"String", " 4 ", 4},
		{"Bytes", []byte("12"), 12},
		{"Garbage", "three", 0},
		{"Empty", "", 0},
		{"Nil", nil, 0},
		{"Negative", "-2", -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToInt(tt.in))
		})
	}
}

func TestToBool(t *testing.T) {
	assert.True(t, ToBool(true))
	assert.True(t, ToBool("true"))
	assert.True(t, ToBool("YES"))
	assert.True(t, ToBool(1))
	assert.True(t, ToBool([]byte("1")))
	assert.False(t, ToBool("no"))
	assert.False(t, ToBool(0))
	assert.False(t, ToBool(nil))
}
