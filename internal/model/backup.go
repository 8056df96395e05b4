package model

import (
	"time"

	"github.com/google/uuid"
)

// BackupUser is the user row as it appears in a backup document. Unlike
// User it serializes the password hash, since a restore must preserve
// logins.
type BackupUser struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"password_hash"`
	Role         string    `json:"role"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BackupData is the full-dataset snapshot exchanged by the backup and
// restore endpoints.
type BackupData struct {
	Accounts            []Account            `json:"accounts"`
	CustomerAssignments []CustomerAssignment `json:"customer_assignments"`
	ReportedAccounts    []ReportedAccount    `json:"reported_accounts"`
	Users               []BackupUser         `json:"users"`
}
