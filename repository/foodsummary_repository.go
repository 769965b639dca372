// repository/foodsummary_repository.go
package repository

import (
	"database/sql"
	"fmt"

	"github.com/fadhlanhapp/lunchtab-backend/models"
	"github.com/fadhlanhapp/lunchtab-backend/utils"
)

// FoodSummaryRepository handles database operations for food summaries.
// Settlement and reversal batches are applied in the same transaction as the
// summary insert or delete: either both happen or neither does.
type FoodSummaryRepository struct {
	DB     *sql.DB
	Ledger *LedgerRepository
}

// NewFoodSummaryRepository creates a new FoodSummaryRepository
func NewFoodSummaryRepository(ledger *LedgerRepository) *FoodSummaryRepository {
	return &FoodSummaryRepository{
		DB:     GetDB(),
		Ledger: ledger,
	}
}

// StoreFoodSummary saves a food summary with its member sets and extras and
// applies the settlement batch, all in one transaction.
func (r *FoodSummaryRepository) StoreFoodSummary(summary *models.FoodSummary, batch *models.BalanceBatch) (*models.LedgerSnapshot, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("%w: begin transaction: %v", utils.ErrLedgerApply, err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO food_summaries
         (id, company_id, date, total_breads_amount, total_curries_amount, total_amount, created_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		summary.ID, summary.CompanyID, summary.Date, summary.TotalBreadsAmount,
		summary.TotalCurriesAmount, summary.TotalAmount, summary.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: insert food summary: %v", utils.ErrLedgerApply, err)
	}

	for _, memberID := range summary.MembersBroughtFood {
		if err := insertSummaryMember(tx, summary.ID, memberID, true); err != nil {
			return nil, err
		}
	}
	for _, memberID := range summary.MembersDidntBringFood {
		if err := insertSummaryMember(tx, summary.ID, memberID, false); err != nil {
			return nil, err
		}
	}

	for _, extra := range summary.ExtraMembers {
		_, err = tx.Exec(
			"INSERT INTO food_summary_extras (summary_id, member_id, headcount) VALUES ($1, $2, $3)",
			summary.ID, extra.MemberID, extra.Headcount,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: insert summary extra: %v", utils.ErrLedgerApply, err)
		}
	}

	snapshot, err := r.Ledger.ApplyTx(tx, batch)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: commit transaction: %v", utils.ErrLedgerApply, err)
	}

	return snapshot, nil
}

func insertSummaryMember(tx *sql.Tx, summaryID, memberID string, broughtFood bool) error {
	_, err := tx.Exec(
		"INSERT INTO food_summary_members (summary_id, member_id, brought_food) VALUES ($1, $2, $3)",
		summaryID, memberID, broughtFood,
	)
	if err != nil {
		return fmt.Errorf("%w: insert summary member: %v", utils.ErrLedgerApply, err)
	}
	return nil
}

// GetFoodSummary retrieves a food summary with its member sets and extras
func (r *FoodSummaryRepository) GetFoodSummary(summaryID string) (*models.FoodSummary, error) {
	var summary models.FoodSummary
	err := r.DB.QueryRow(
		`SELECT id, company_id, date, total_breads_amount, total_curries_amount, total_amount, created_at
         FROM food_summaries WHERE id = $1`,
		summaryID,
	).Scan(&summary.ID, &summary.CompanyID, &summary.Date, &summary.TotalBreadsAmount,
		&summary.TotalCurriesAmount, &summary.TotalAmount, &summary.CreatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get food summary: %v", err)
	}

	if err := r.loadSummaryRelations(&summary); err != nil {
		return nil, err
	}

	return &summary, nil
}

func (r *FoodSummaryRepository) loadSummaryRelations(summary *models.FoodSummary) error {
	rows, err := r.DB.Query(
		"SELECT member_id, brought_food FROM food_summary_members WHERE summary_id = $1",
		summary.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get summary members: %v", err)
	}
	defer rows.Close()

	for rows.Next() {
		var memberID string
		var broughtFood bool
		if err := rows.Scan(&memberID, &broughtFood); err != nil {
			return fmt.Errorf("failed to scan summary member: %v", err)
		}
		if broughtFood {
			summary.MembersBroughtFood = append(summary.MembersBroughtFood, memberID)
		} else {
			summary.MembersDidntBringFood = append(summary.MembersDidntBringFood, memberID)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read summary members: %v", err)
	}

	eRows, err := r.DB.Query(
		"SELECT member_id, headcount FROM food_summary_extras WHERE summary_id = $1 ORDER BY id ASC",
		summary.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get summary extras: %v", err)
	}
	defer eRows.Close()

	for eRows.Next() {
		var extra models.ExtraMember
		if err := eRows.Scan(&extra.MemberID, &extra.Headcount); err != nil {
			return fmt.Errorf("failed to scan summary extra: %v", err)
		}
		summary.ExtraMembers = append(summary.ExtraMembers, extra)
	}

	return eRows.Err()
}

// GetFoodSummariesByCompany retrieves all food summaries for a company,
// newest date first
func (r *FoodSummaryRepository) GetFoodSummariesByCompany(companyID string) ([]*models.FoodSummary, error) {
	rows, err := r.DB.Query(
		`SELECT id, company_id, date, total_breads_amount, total_curries_amount, total_amount, created_at
         FROM food_summaries WHERE company_id = $1 ORDER BY date DESC`,
		companyID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get food summaries: %v", err)
	}
	defer rows.Close()

	var summaries []*models.FoodSummary
	for rows.Next() {
		var summary models.FoodSummary
		if err := rows.Scan(&summary.ID, &summary.CompanyID, &summary.Date,
			&summary.TotalBreadsAmount, &summary.TotalCurriesAmount,
			&summary.TotalAmount, &summary.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan food summary: %v", err)
		}
		summaries = append(summaries, &summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read food summaries: %v", err)
	}

	for _, summary := range summaries {
		if err := r.loadSummaryRelations(summary); err != nil {
			return nil, err
		}
	}

	return summaries, nil
}

// DeleteFoodSummary removes a food summary and applies the reversal batch in
// one transaction. Member links and extras are removed by cascade.
func (r *FoodSummaryRepository) DeleteFoodSummary(summaryID string, batch *models.BalanceBatch) (*models.LedgerSnapshot, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("%w: begin transaction: %v", utils.ErrLedgerApply, err)
	}
	defer tx.Rollback()

	result, err := tx.Exec("DELETE FROM food_summaries WHERE id = $1", summaryID)
	if err != nil {
		return nil, fmt.Errorf("%w: delete food summary: %v", utils.ErrLedgerApply, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("%w: check delete result: %v", utils.ErrLedgerApply, err)
	}
	if rows == 0 {
		return nil, fmt.Errorf("%w: %s", utils.ErrSummaryNotFound, summaryID)
	}

	snapshot, err := r.Ledger.ApplyTx(tx, batch)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: commit transaction: %v", utils.ErrLedgerApply, err)
	}

	return snapshot, nil
}
