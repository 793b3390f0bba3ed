package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_IsValidMode(t *testing.T) {
	tests := []struct {
		name string
		mode string
		want bool
	}{
		{"Source", ModeSource, true},
		{"Local", ModeLocal, true},
		{"Invalid", "remote", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Config{Mode: tt.mode}
			assert.Equal(t, tt.want, c.IsValidMode())
		})
	}
}
