package model

import (
	"time"

	"github.com/google/uuid"
)

// GaransiAccount is warranty/replacement stock, tracked as a whole unit
// rather than per profile slot.
type GaransiAccount struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	Password     string    `json:"password" db:"password"`
	Type         string    `json:"type" db:"type"`
	Platform     string    `json:"platform" db:"platform"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	WarrantyDate time.Time `json:"warranty_date" db:"warranty_date"`
	ExpiresAt    time.Time `json:"expires_at" db:"expires_at"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

type GaransiBulkRequest struct {
	Accounts  []AccountInput `json:"accounts" binding:"required,dive"`
	ExpiresAt time.Time      `json:"expires_at" binding:"required"`
}
