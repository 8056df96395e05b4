package model

import (
	"time"

	"github.com/google/uuid"
)

// WhatsappAccount is an outbound contact identity operators hand to
// customers.
type WhatsappAccount struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Number    string    `json:"number" db:"number"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type CreateWhatsappRequest struct {
	Name   string `json:"name" binding:"required"`
	Number string `json:"number" binding:"required"`
}

type UpdateWhatsappRequest struct {
	Name   *string `json:"name"`
	Number *string `json:"number"`
}
