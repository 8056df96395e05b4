package model

import (
	"fmt"
	"math/rand"
)

// profileCounts maps account type to the number of sellable slots.
var profileCounts = map[string]int{
	AccountTypeSharing: 20,
	AccountTypePrivate: 8,
	AccountTypeVIP:     6,
}

var profilePins = []string{
	"1111", "2222", "3333", "4444", "5555",
	"6666", "7777", "8888", "9999", "0000",
}

// GenerateProfiles builds the slot list for a freshly created account.
// Names cycle Profile A..E and pins cycle the fixed pin set; the order is
// shuffled so the first assignment is not always "Profile A".
func GenerateProfiles(accountType string) ProfileList {
	count := profileCounts[accountType]
	profiles := make(ProfileList, 0, count)
	for i := 0; i < count; i++ {
		letter := rune('A' + i%5)
		profiles = append(profiles, Profile{
			Profile: fmt.Sprintf("Profile %c", letter),
			Pin:     profilePins[i%len(profilePins)],
			Used:    false,
		})
	}
	rand.Shuffle(len(profiles), func(i, j int) {
		profiles[i], profiles[j] = profiles[j], profiles[i]
	})
	return profiles
}
