package model

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateProfilesCounts(t *testing.T) {
	tests := []struct {
		accountType string
		want        int
	}{
		{AccountTypeSharing, 20},
		{AccountTypePrivate, 8},
		{AccountTypeVIP, 6},
	}

	for _, tt := range tests {
		t.Run(tt.accountType, func(t *testing.T) {
			profiles := GenerateProfiles(tt.accountType)
			assert.Len(t, profiles, tt.want)
		})
	}
}

func TestGenerateProfilesUnknownType(t *testing.T) {
	assert.Empty(t, GenerateProfiles("unknown"))
}

func TestGenerateProfilesAllUnused(t *testing.T) {
	for _, p := range GenerateProfiles(AccountTypeSharing) {
		assert.False(t, p.Used)
	}
}

func TestGenerateProfilesNamesAndPins(t *testing.T) {
	profiles := GenerateProfiles(AccountTypeSharing)

	names := make(map[string]int)
	pins := make(map[string]int)
	for _, p := range profiles {
		names[p.Profile]++
		pins[p.Pin]++
	}

	// 20 slots cycle five names four times each.
	for _, letter := range []string{"A", "B", "C", "D", "E"} {
		assert.Equal(t, 4, names[fmt.Sprintf("Profile %s", letter)])
	}

	// 20 slots cycle ten pins twice each.
	assert.Len(t, pins, 10)
	for pin, count := range pins {
		assert.Equal(t, 2, count, "pin %s", pin)
	}
}
