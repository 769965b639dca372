// models/models.go
package models

import "time"

// Company represents a tenant whose lunch expenses are tracked.
// Balance is in minor currency units and is mutated only through the ledger.
type Company struct {
	ID         string     `json:"id" db:"id"`
	Name       string     `json:"name" db:"name"`
	Email      string     `json:"email" db:"email"`
	Website    string     `json:"website,omitempty" db:"website"`
	Balance    int64      `json:"balance" db:"balance"`
	BreadPrice *int64     `json:"breadPrice,omitempty" db:"bread_price"`
	LastTopup  *time.Time `json:"lastTopup,omitempty" db:"last_topup"`
	CreatedAt  time.Time  `json:"createdAt" db:"created_at"`
}

// Member represents a team member. Balance may go negative: it is what the
// member owes the company.
type Member struct {
	ID              string     `json:"id" db:"id"`
	CompanyID       string     `json:"companyId" db:"company_id"`
	Name            string     `json:"name" db:"name"`
	Email           string     `json:"email" db:"email"`
	Designation     string     `json:"designation,omitempty" db:"designation"`
	Role            string     `json:"role,omitempty" db:"role"`
	Balance         int64      `json:"balance" db:"balance"`
	LastCashDeposit *time.Time `json:"lastCashDeposit,omitempty" db:"last_cash_deposit"`
	Active          bool       `json:"active" db:"active"`
	CreatedAt       time.Time  `json:"createdAt" db:"created_at"`
}

// ExtraMember records guests a member hosted on a food-summary day. The
// headcount is billed as extra weight on that member's share.
type ExtraMember struct {
	MemberID  string `json:"memberId" db:"member_id"`
	Headcount int    `json:"headcount" db:"headcount"`
}

// FoodSummary represents one recorded bread/curry purchase and the member
// sets it was split across. TotalAmount equals breads + curries + any extra
// stuff bought that day; the caller guarantees that at creation time.
type FoodSummary struct {
	ID                    string        `json:"id" db:"id"`
	CompanyID             string        `json:"companyId" db:"company_id"`
	Date                  time.Time     `json:"date" db:"date"`
	TotalBreadsAmount     int64         `json:"totalBreadsAmount" db:"total_breads_amount"`
	TotalCurriesAmount    int64         `json:"totalCurriesAmount" db:"total_curries_amount"`
	TotalAmount           int64         `json:"totalAmount" db:"total_amount"`
	MembersBroughtFood    []string      `json:"membersBroughtFood"`
	MembersDidntBringFood []string      `json:"membersDidntBringFood"`
	ExtraMembers          []ExtraMember `json:"extraMembers,omitempty"`
	CreatedAt             time.Time     `json:"createdAt" db:"created_at"`
}

// Topup represents a credit added to a company balance.
type Topup struct {
	ID          string    `json:"id" db:"id"`
	CompanyID   string    `json:"companyId" db:"company_id"`
	Amount      int64     `json:"amount" db:"amount"`
	TopupDate   time.Time `json:"topupDate" db:"topup_date"`
	PerformedBy string    `json:"performedBy" db:"performed_by"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// CashDeposit represents cash a member handed in against their balance.
type CashDeposit struct {
	ID          string    `json:"id" db:"id"`
	MemberID    string    `json:"memberId" db:"member_id"`
	Amount      int64     `json:"amount" db:"amount"`
	DepositDate time.Time `json:"depositDate" db:"deposit_date"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}
