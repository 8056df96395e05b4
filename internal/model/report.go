package model

import (
	"time"

	"github.com/google/uuid"
)

// ReportedAccount is a problem report raised by an operator against an
// account. Lifecycle: open -> resolved, resolved exactly once.
type ReportedAccount struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	AccountID    uuid.UUID  `json:"account_id" db:"account_id"`
	ReportReason string     `json:"report_reason" db:"report_reason"`
	OperatorName string     `json:"operator_name" db:"operator_name"`
	Resolved     bool       `json:"resolved" db:"resolved"`
	ReportedAt   time.Time  `json:"reported_at" db:"reported_at"`
	ResolvedAt   *time.Time `json:"resolved_at,omitempty" db:"resolved_at"`
}

// ReportWithAccount joins the report with the account it targets.
type ReportWithAccount struct {
	ReportedAccount
	AccountEmail    string `json:"account_email" db:"account_email"`
	AccountType     string `json:"account_type" db:"account_type"`
	AccountPlatform string `json:"account_platform" db:"account_platform"`
}

type CreateReportRequest struct {
	AccountID uuid.UUID `json:"account_id" binding:"required"`
	Reason    string    `json:"reason" binding:"required"`
}

type ResolveReportRequest struct {
	NewPassword *string `json:"new_password"`
}
