package utils

const (
	// HTTP status messages
	ErrInvalidRequest     = "Invalid request"
	ErrCompanyNotFound    = "Company not found"
	ErrMemberNotFound     = "Member not found"
	ErrFoodSummaryMissing = "Food summary not found"
	ErrFailedToStore      = "Failed to store data"
	ErrFailedToRetrieve   = "Failed to retrieve data"

	// Roles a member can hold inside a company
	RoleAdmin  = "admin"
	RoleMember = "member"
)
