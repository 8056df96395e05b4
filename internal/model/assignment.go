package model

import (
	"time"

	"github.com/google/uuid"
)

// CustomerAssignment binds a customer to one profile slot at a point in
// time. Rows are written once by the assignment transaction and never
// mutated afterwards.
type CustomerAssignment struct {
	ID                 uuid.UUID  `json:"id" db:"id"`
	CustomerIdentifier string     `json:"customer_identifier" db:"customer_identifier"`
	AccountID          uuid.UUID  `json:"account_id" db:"account_id"`
	AccountEmail       string     `json:"account_email" db:"account_email"`
	AccountType        string     `json:"account_type" db:"account_type"`
	ProfileName        string     `json:"profile_name" db:"profile_name"`
	OperatorName       string     `json:"operator_name" db:"operator_name"`
	WhatsappAccountID  *uuid.UUID `json:"whatsapp_account_id,omitempty" db:"whatsapp_account_id"`
	AssignedAt         time.Time  `json:"assigned_at" db:"assigned_at"`
}

// AssignmentRecord is the history row shown to operators: the assignment
// joined with the live account credential and the WhatsApp contact used.
type AssignmentRecord struct {
	CustomerAssignment
	AccountPlatform  *string    `json:"account_platform" db:"account_platform"`
	AccountPassword  *string    `json:"account_password" db:"account_password"`
	AccountExpiresAt *time.Time `json:"account_expires_at" db:"account_expires_at"`
	WhatsappName     *string    `json:"whatsapp_name" db:"whatsapp_name"`
	WhatsappNumber   *string    `json:"whatsapp_number" db:"whatsapp_number"`
}

type CreateAssignmentRequest struct {
	CustomerIdentifier string     `json:"customer_identifier" binding:"required"`
	AccountID          uuid.UUID  `json:"account_id" binding:"required"`
	WhatsappAccountID  *uuid.UUID `json:"whatsapp_account_id"`
}

// AssignmentResult is returned to the operator for copy-paste to the
// customer: the audit row plus the pin of the chosen slot.
type AssignmentResult struct {
	Assignment *CustomerAssignment `json:"assignment"`
	Profile    Profile             `json:"profile"`
}

// OperatorActivity is one append-only log row per assignment.
type OperatorActivity struct {
	ID           uuid.UUID `json:"id" db:"id"`
	OperatorName string    `json:"operator_name" db:"operator_name"`
	Action       string    `json:"action" db:"action"`
	AccountEmail string    `json:"account_email" db:"account_email"`
	AccountType  string    `json:"account_type" db:"account_type"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
