package external

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsIndiaLocation(t *testing.T) {
	tests := []struct {
		loc  string
		want bool
	}{
		{"Bangalore, India", true},
		{"india", true},
		{"Remote, India", true},
		{"Pune", true},
		{"HYDERABAD", true},
		{"Greater Noida", true},
		{"Berlin, Germany", false},
		{"Remote", false},
		{"New York, USA", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.loc, func(t *testing.T) {
			assert.Equal(t, tt.want, IsIndiaLocation(tt.loc))
		})
	}
}

func TestNormalizeCity(t *testing.T) {
	tests := []struct {
		loc  string
		want string
	}{
		{"Pune, India", "Pune"},
		{"Bangalore", "Bangalore"},
		{"remote, india", "Remote India"},
		{"Remote (India)", "Remote India"},
		{"India", "India"},
		{"Anywhere in India", "India"},
		// unrecognized input passes through unchanged
		{"Berlin, Germany", "Berlin, Germany"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.loc, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeCity(tt.loc))
		})
	}
}

func TestNormalizeCityWhitelistOrder(t *testing.T) {
	// two whitelisted cities in one string: the earlier whitelist entry
	// wins, regardless of position in the input
	assert.Equal(t, "Mumbai", NormalizeCity("Delhi / Mumbai offices"))
	assert.Equal(t, "Delhi", NormalizeCity("Noida or Delhi"))
}

func TestIsAllowedCity(t *testing.T) {
	assert.True(t, IsAllowedCity("Chennai, Tamil Nadu"))
	assert.True(t, IsAllowedCity("gurugram"))
	assert.False(t, IsAllowedCity("Chandigarh"))
	assert.False(t, IsAllowedCity(""))
}
