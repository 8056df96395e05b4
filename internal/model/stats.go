package model

import "time"

// CustomerStatistics summarizes assignments across all customers.
type CustomerStatistics struct {
	TotalCustomers   int `json:"total_customers"`
	TotalAssignments int `json:"total_assignments"`
	PrivateAccounts  int `json:"private_accounts"`
	SharingAccounts  int `json:"sharing_accounts"`
	VIPAccounts      int `json:"vip_accounts"`
}

// OperatorStatistics is the per-operator breakdown keyed by operator name.
type OperatorStatistics struct {
	Total   int            `json:"total"`
	Private int            `json:"private"`
	Sharing int            `json:"sharing"`
	VIP     int            `json:"vip"`
	ByDate  map[string]int `json:"by_date"`
}

// ActivityCount is one GROUP BY row from the operator activity log.
type ActivityCount struct {
	OperatorName string    `db:"operator_name"`
	AccountType  string    `db:"account_type"`
	Day          time.Time `db:"day"`
	Count        int       `db:"count"`
}
