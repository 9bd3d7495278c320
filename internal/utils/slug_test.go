package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Walls", "walls"},
		{"spaces", "Shower Base", "shower-base"},
		{"punctuation", "Glass Door (Frosted)", "glass-door-frosted"},
		{"collapses runs", "Curtain  --  Rod", "curtain-rod"},
		{"leading and trailing junk", "  #1 Bestseller!  ", "1-bestseller"},
		{"empty", "", ""},
		{"only junk", "***", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Slugify(tc.in))
		})
	}
}
