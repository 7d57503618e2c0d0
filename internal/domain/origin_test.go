package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOrigin(t *testing.T) {
	tests := []struct {
		raw    string
		origin Origin
		target string
	}{
		{"browse", OriginBrowse, "/browse"},
		{"my-events", OriginMyEvents, "/my-events"},
		{"messages", OriginMessages, "/messages"},
		{"home", OriginHome, "/home"},
		// An unrelated visit carries no origin and falls back to home;
		// nothing persists from an earlier navigation.
		{"", OriginUnknown, "/home"},
		{"somewhere-else", OriginUnknown, "/home"},
	}

	for _, tt := range tests {
		got := ParseOrigin(tt.raw)
		assert.Equal(t, tt.origin, got, "raw %q", tt.raw)
		assert.Equal(t, tt.target, got.BackTarget(), "raw %q", tt.raw)
	}
}
