// repository/company_repository.go
package repository

import (
	"database/sql"
	"fmt"

	"github.com/fadhlanhapp/lunchtab-backend/models"
	"github.com/fadhlanhapp/lunchtab-backend/utils"
)

// CompanyRepository handles database operations for companies
type CompanyRepository struct {
	DB *sql.DB
}

// NewCompanyRepository creates a new CompanyRepository
func NewCompanyRepository() *CompanyRepository {
	return &CompanyRepository{
		DB: GetDB(),
	}
}

// StoreCompany saves a company to the database
func (r *CompanyRepository) StoreCompany(company *models.Company) error {
	_, err := r.DB.Exec(
		`INSERT INTO companies (id, name, email, website, balance, bread_price, created_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		company.ID, company.Name, company.Email, company.Website,
		company.Balance, company.BreadPrice, company.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert company: %v", err)
	}
	return nil
}

// GetCompany retrieves a company by its id
func (r *CompanyRepository) GetCompany(companyID string) (*models.Company, error) {
	var company models.Company
	var website sql.NullString

	err := r.DB.QueryRow(
		`SELECT id, name, email, website, balance, bread_price, last_topup, created_at
         FROM companies WHERE id = $1`,
		companyID,
	).Scan(&company.ID, &company.Name, &company.Email, &website,
		&company.Balance, &company.BreadPrice, &company.LastTopup, &company.CreatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get company: %v", err)
	}

	if website.Valid {
		company.Website = website.String
	}

	return &company, nil
}

// UpdateCompany updates a company's profile fields
func (r *CompanyRepository) UpdateCompany(company *models.Company) error {
	result, err := r.DB.Exec(
		`UPDATE companies SET name = $2, email = $3, website = $4, bread_price = $5
         WHERE id = $1`,
		company.ID, company.Name, company.Email, company.Website, company.BreadPrice,
	)
	if err != nil {
		return fmt.Errorf("failed to update company: %v", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %v", err)
	}
	if rows == 0 {
		return utils.NewNotFoundError("Company")
	}

	return nil
}

// StoreTopup saves a topup and credits the company balance in one
// transaction. Returns the updated company balance.
func (r *CompanyRepository) StoreTopup(topup *models.Topup, ledger *LedgerRepository) (int64, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return 0, fmt.Errorf("%w: begin transaction: %v", utils.ErrLedgerApply, err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO topups (id, company_id, amount, topup_date, performed_by, created_at)
         VALUES ($1, $2, $3, $4, $5, $6)`,
		topup.ID, topup.CompanyID, topup.Amount, topup.TopupDate,
		topup.PerformedBy, topup.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("%w: insert topup: %v", utils.ErrLedgerApply, err)
	}

	snapshot, err := ledger.ApplyTx(tx, &models.BalanceBatch{
		CompanyID:    topup.CompanyID,
		CompanyDelta: topup.Amount,
	})
	if err != nil {
		return 0, err
	}

	_, err = tx.Exec(
		"UPDATE companies SET last_topup = $2 WHERE id = $1",
		topup.CompanyID, topup.TopupDate,
	)
	if err != nil {
		return 0, fmt.Errorf("%w: update last topup: %v", utils.ErrLedgerApply, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%w: commit transaction: %v", utils.ErrLedgerApply, err)
	}

	return snapshot.CompanyBalance, nil
}

// GetTopupsByCompany retrieves all topups for a company, newest first
func (r *CompanyRepository) GetTopupsByCompany(companyID string) ([]models.Topup, error) {
	rows, err := r.DB.Query(
		`SELECT id, company_id, amount, topup_date, performed_by, created_at
         FROM topups WHERE company_id = $1 ORDER BY topup_date DESC`,
		companyID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get topups: %v", err)
	}
	defer rows.Close()

	var topups []models.Topup
	for rows.Next() {
		var topup models.Topup
		if err := rows.Scan(&topup.ID, &topup.CompanyID, &topup.Amount,
			&topup.TopupDate, &topup.PerformedBy, &topup.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan topup: %v", err)
		}
		topups = append(topups, topup)
	}

	return topups, rows.Err()
}
