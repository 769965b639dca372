// repository/member_repository.go
package repository

import (
	"database/sql"
	"fmt"

	"github.com/fadhlanhapp/lunchtab-backend/models"
	"github.com/fadhlanhapp/lunchtab-backend/utils"
)

// MemberRepository handles database operations for team members
type MemberRepository struct {
	DB *sql.DB
}

// NewMemberRepository creates a new MemberRepository
func NewMemberRepository() *MemberRepository {
	return &MemberRepository{
		DB: GetDB(),
	}
}

const memberColumns = `id, company_id, name, email, designation, role, balance,
         last_cash_deposit, active, created_at`

func scanMember(scanner interface {
	Scan(dest ...interface{}) error
}) (*models.Member, error) {
	var member models.Member
	err := scanner.Scan(&member.ID, &member.CompanyID, &member.Name, &member.Email,
		&member.Designation, &member.Role, &member.Balance,
		&member.LastCashDeposit, &member.Active, &member.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// StoreMember saves a member to the database
func (r *MemberRepository) StoreMember(member *models.Member) error {
	_, err := r.DB.Exec(
		`INSERT INTO members (id, company_id, name, email, designation, role, balance, active, created_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		member.ID, member.CompanyID, member.Name, member.Email,
		member.Designation, member.Role, member.Balance, member.Active, member.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert member: %v", err)
	}
	return nil
}

// GetMember retrieves a member by id
func (r *MemberRepository) GetMember(memberID string) (*models.Member, error) {
	row := r.DB.QueryRow(
		"SELECT "+memberColumns+" FROM members WHERE id = $1",
		memberID,
	)

	member, err := scanMember(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get member: %v", err)
	}

	return member, nil
}

// GetMembersByCompany retrieves all members of a company
func (r *MemberRepository) GetMembersByCompany(companyID string) ([]*models.Member, error) {
	rows, err := r.DB.Query(
		"SELECT "+memberColumns+" FROM members WHERE company_id = $1 ORDER BY created_at ASC",
		companyID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get members: %v", err)
	}
	defer rows.Close()

	var members []*models.Member
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member: %v", err)
		}
		members = append(members, member)
	}

	return members, rows.Err()
}

// UpdateMember updates a member's profile fields
func (r *MemberRepository) UpdateMember(member *models.Member) error {
	result, err := r.DB.Exec(
		`UPDATE members SET name = $2, email = $3, designation = $4, role = $5
         WHERE id = $1`,
		member.ID, member.Name, member.Email, member.Designation, member.Role,
	)
	if err != nil {
		return fmt.Errorf("failed to update member: %v", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %v", err)
	}
	if rows == 0 {
		return utils.NewNotFoundError("Member")
	}

	return nil
}

// SetMemberActive activates or deactivates a member
func (r *MemberRepository) SetMemberActive(memberID string, active bool) error {
	result, err := r.DB.Exec(
		"UPDATE members SET active = $2 WHERE id = $1",
		memberID, active,
	)
	if err != nil {
		return fmt.Errorf("failed to update member: %v", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %v", err)
	}
	if rows == 0 {
		return utils.NewNotFoundError("Member")
	}

	return nil
}

// StoreCashDeposit saves a cash deposit and credits the member balance in
// one transaction. Returns the updated member balance.
func (r *MemberRepository) StoreCashDeposit(deposit *models.CashDeposit, companyID string, ledger *LedgerRepository) (int64, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return 0, fmt.Errorf("%w: begin transaction: %v", utils.ErrLedgerApply, err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO cash_deposits (id, member_id, amount, deposit_date, created_at)
         VALUES ($1, $2, $3, $4, $5)`,
		deposit.ID, deposit.MemberID, deposit.Amount, deposit.DepositDate, deposit.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("%w: insert cash deposit: %v", utils.ErrLedgerApply, err)
	}

	snapshot, err := ledger.ApplyTx(tx, &models.BalanceBatch{
		CompanyID: companyID,
		MemberDeltas: []models.MemberDelta{
			{MemberID: deposit.MemberID, Delta: deposit.Amount},
		},
	})
	if err != nil {
		return 0, err
	}

	_, err = tx.Exec(
		"UPDATE members SET last_cash_deposit = $2 WHERE id = $1",
		deposit.MemberID, deposit.DepositDate,
	)
	if err != nil {
		return 0, fmt.Errorf("%w: update last cash deposit: %v", utils.ErrLedgerApply, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%w: commit transaction: %v", utils.ErrLedgerApply, err)
	}

	return snapshot.MemberBalances[deposit.MemberID], nil
}

// GetCashDepositsByCompany retrieves all cash deposits for a company's
// members, newest first
func (r *MemberRepository) GetCashDepositsByCompany(companyID string) ([]models.CashDeposit, error) {
	rows, err := r.DB.Query(
		`SELECT d.id, d.member_id, d.amount, d.deposit_date, d.created_at
         FROM cash_deposits d
         JOIN members m ON m.id = d.member_id
         WHERE m.company_id = $1
         ORDER BY d.deposit_date DESC`,
		companyID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get cash deposits: %v", err)
	}
	defer rows.Close()

	var deposits []models.CashDeposit
	for rows.Next() {
		var deposit models.CashDeposit
		if err := rows.Scan(&deposit.ID, &deposit.MemberID, &deposit.Amount,
			&deposit.DepositDate, &deposit.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan cash deposit: %v", err)
		}
		deposits = append(deposits, deposit)
	}

	return deposits, rows.Err()
}
