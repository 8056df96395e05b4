package model

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Account type constants
const (
	AccountTypePrivate = "private"
	AccountTypeSharing = "sharing"
	AccountTypeVIP     = "vip"
)

// Platforms lists the streaming services the panel sells access to.
var Platforms = []string{
	"NETFLIX",
	"DISNEY",
	"VIDIO",
	"VIU",
	"WETV",
	"IQIYI",
	"PRIME_VIDEO",
	"HBO_GO",
	"YOUTUBE",
	"SPOTIFY",
	"CANVA",
	"CAPCUT",
	"CHATGPT",
}

func ValidAccountType(t string) bool {
	switch t {
	case AccountTypePrivate, AccountTypeSharing, AccountTypeVIP:
		return true
	}
	return false
}

func ValidPlatform(p string) bool {
	for _, platform := range Platforms {
		if p == platform {
			return true
		}
	}
	return false
}

// Profile is one assignable slot inside a shared account.
type Profile struct {
	Profile string `json:"profile"`
	Pin     string `json:"pin"`
	Used    bool   `json:"used"`
}

// ProfileList is the jsonb-encoded slot list on an account. Writes always
// produce a canonical JSON array; reads tolerate legacy rows where the array
// was stored double-encoded as a JSON string.
type ProfileList []Profile

func (p ProfileList) Value() (driver.Value, error) {
	if p == nil {
		p = ProfileList{}
	}
	return json.Marshal(p)
}

func (p *ProfileList) Scan(src interface{}) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*p = nil
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported profiles column type %T", src)
	}
	return p.decode(data)
}

func (p *ProfileList) UnmarshalJSON(data []byte) error {
	return p.decode(data)
}

func (p *ProfileList) decode(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*p = ProfileList{}
		return nil
	}
	// Legacy encoding: the whole array serialized into a JSON string.
	if data[0] == '"' {
		var inner string
		if err := json.Unmarshal(data, &inner); err != nil {
			return fmt.Errorf("invalid profiles data: %w", err)
		}
		if strings.TrimSpace(inner) == "" {
			*p = ProfileList{}
			return nil
		}
		data = []byte(inner)
	}
	var list []Profile
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("profiles data is not a JSON array: %w", err)
	}
	*p = list
	return nil
}

// Available returns the slots not yet claimed by a customer.
func (p ProfileList) Available() []Profile {
	var available []Profile
	for _, slot := range p {
		if !slot.Used {
			available = append(available, slot)
		}
	}
	return available
}

// Claim marks the i-th available slot as used, counting only unused slots
// in list order, and returns a copy of that exact slot. Marking by index
// rather than by name matters because generated names repeat: a sharing
// account has four "Profile A" slots with different pins, and the pin
// handed to the operator must belong to the slot that was marked.
func (p ProfileList) Claim(i int) (Profile, bool) {
	if i < 0 {
		return Profile{}, false
	}
	seen := 0
	for idx := range p {
		if p[idx].Used {
			continue
		}
		if seen == i {
			p[idx].Used = true
			return p[idx], true
		}
		seen++
	}
	return Profile{}, false
}

// Account is a shared streaming-service credential holding profile slots.
type Account struct {
	ID        uuid.UUID   `json:"id" db:"id"`
	Email     string      `json:"email" db:"email"`
	Password  string      `json:"password" db:"password"`
	Type      string      `json:"type" db:"type"`
	Platform  string      `json:"platform" db:"platform"`
	Profiles  ProfileList `json:"profiles" db:"profiles"`
	Reported  bool        `json:"reported" db:"reported"`
	CreatedAt time.Time   `json:"created_at" db:"created_at"`
	ExpiresAt time.Time   `json:"expires_at" db:"expires_at"`
}

// AccountInput is one account spec inside a create or bulk-import request.
type AccountInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Type     string `json:"type" binding:"required"`
	Platform string `json:"platform" binding:"required"`
}

type CreateAccountRequest struct {
	AccountInput
	ExpiresAt *time.Time `json:"expires_at"`
}

type BulkAccountsRequest struct {
	Accounts  []AccountInput `json:"accounts" binding:"required,dive"`
	ExpiresAt time.Time      `json:"expires_at" binding:"required"`
}

type UpdateAccountRequest struct {
	Email     *string    `json:"email"`
	Password  *string    `json:"password"`
	Platform  *string    `json:"platform"`
	ExpiresAt *time.Time `json:"expires_at"`
	Profiles  []Profile  `json:"profiles"`
}

// StockLevel is the available-profile count for one account type.
type StockLevel struct {
	Type              string `json:"type"`
	AvailableProfiles int    `json:"available_profiles"`
}
