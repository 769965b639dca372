package models

import "time"

// MemberDelta is a signed balance change for one member.
type MemberDelta struct {
	MemberID string `json:"memberId"`
	Delta    int64  `json:"delta"`
}

// BalanceBatch is the full set of balance changes produced by one settlement
// or reversal. It is applied to the store as a single transaction.
type BalanceBatch struct {
	CompanyID    string        `json:"companyId"`
	CompanyDelta int64         `json:"companyDelta"`
	MemberDeltas []MemberDelta `json:"memberDeltas"`
}

// LedgerSnapshot holds the balances read back after a batch was applied.
type LedgerSnapshot struct {
	CompanyBalance int64            `json:"companyBalance"`
	MemberBalances map[string]int64 `json:"memberBalances"`
}

// CreateCompanyRequest represents the request body for creating a company
type CreateCompanyRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Website string `json:"website"`
}

// UpdateCompanyRequest represents the request body for updating a company
type UpdateCompanyRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required"`
	Website    string `json:"website"`
	BreadPrice *int64 `json:"breadPrice"`
}

// TopupRequest represents the request body for a company topup
type TopupRequest struct {
	CompanyID   string    `json:"companyId" binding:"required"`
	Amount      int64     `json:"amount" binding:"required,gt=0"`
	TopupDate   time.Time `json:"topupDate" binding:"required"`
	PerformedBy string    `json:"performedBy" binding:"required"`
}

// CreateMemberRequest represents the request body for adding a team member
type CreateMemberRequest struct {
	CompanyID   string `json:"companyId" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Designation string `json:"designation"`
	Role        string `json:"role"`
}

// UpdateMemberRequest represents the request body for updating a team member
type UpdateMemberRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Designation string `json:"designation"`
	Role        string `json:"role"`
}

// CashDepositRequest represents the request body for a member cash deposit
type CashDepositRequest struct {
	MemberID    string    `json:"memberId" binding:"required"`
	Amount      int64     `json:"amount" binding:"required,gt=0"`
	DepositDate time.Time `json:"depositDate" binding:"required"`
}

// ExtraMemberInput represents one extras entry in a food summary submission
type ExtraMemberInput struct {
	MemberID  string `json:"memberId" binding:"required"`
	Headcount int    `json:"headcount" binding:"required"`
}

// CreateFoodSummaryRequest represents the request body for recording a food
// summary. TotalAmount includes breads, curries and any extra stuff cost.
type CreateFoodSummaryRequest struct {
	CompanyID             string             `json:"companyId" binding:"required"`
	Date                  time.Time          `json:"date" binding:"required"`
	BreadsAmount          int64              `json:"breadsAmount"`
	CurriesAmount         int64              `json:"curriesAmount"`
	TotalAmount           int64              `json:"totalAmount" binding:"required"`
	MembersBroughtFood    []string           `json:"membersBroughtFood"`
	MembersDidntBringFood []string           `json:"membersDidntBringFood"`
	ExtraMembers          []ExtraMemberInput `json:"extraMembers"`
}

// RemoveFoodSummaryRequest represents the request body for deleting a food
// summary and reversing its settlement
type RemoveFoodSummaryRequest struct {
	SummaryID string `json:"summaryId" binding:"required"`
}

// FoodSummaryResponse is returned by settle and reverse operations
type FoodSummaryResponse struct {
	Summary        *FoodSummary     `json:"summary,omitempty"`
	CompanyBalance int64            `json:"companyBalance"`
	MemberBalances map[string]int64 `json:"memberBalances"`
}

// BalanceResponse is returned by topup and cash deposit operations
type BalanceResponse struct {
	Balance int64 `json:"balance"`
}

// ExportCompanyRequest represents the request body for the Excel export
type ExportCompanyRequest struct {
	CompanyID string `json:"companyId" binding:"required"`
}
