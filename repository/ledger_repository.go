// repository/ledger_repository.go
package repository

import (
	"database/sql"
	"fmt"

	"github.com/fadhlanhapp/lunchtab-backend/models"
	"github.com/fadhlanhapp/lunchtab-backend/utils"
)

// LedgerRepository applies balance batches to company and member rows.
// Every update is an atomic increment at the storage layer, never a
// read-then-write of the full value, so concurrent settlements against the
// same rows cannot lose updates.
type LedgerRepository struct {
	DB *sql.DB
}

// NewLedgerRepository creates a new LedgerRepository
func NewLedgerRepository() *LedgerRepository {
	return &LedgerRepository{
		DB: GetDB(),
	}
}

// ApplyTx applies a balance batch inside the caller's transaction and
// returns the updated balances. The caller commits or rolls back; the batch
// is never partially visible outside the transaction.
func (r *LedgerRepository) ApplyTx(tx *sql.Tx, batch *models.BalanceBatch) (*models.LedgerSnapshot, error) {
	snapshot := &models.LedgerSnapshot{
		MemberBalances: make(map[string]int64),
	}

	err := tx.QueryRow(
		"UPDATE companies SET balance = balance + $1 WHERE id = $2 RETURNING balance",
		batch.CompanyDelta, batch.CompanyID,
	).Scan(&snapshot.CompanyBalance)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%w: company %s does not exist", utils.ErrLedgerApply, batch.CompanyID)
		}
		return nil, fmt.Errorf("%w: update company balance: %v", utils.ErrLedgerApply, err)
	}

	for _, delta := range batch.MemberDeltas {
		var balance int64
		err := tx.QueryRow(
			"UPDATE members SET balance = balance + $1 WHERE id = $2 RETURNING balance",
			delta.Delta, delta.MemberID,
		).Scan(&balance)
		if err != nil {
			if err == sql.ErrNoRows {
				return nil, fmt.Errorf("%w: member %s does not exist", utils.ErrLedgerApply, delta.MemberID)
			}
			return nil, fmt.Errorf("%w: update member balance: %v", utils.ErrLedgerApply, err)
		}
		snapshot.MemberBalances[delta.MemberID] = balance
	}

	return snapshot, nil
}

// Apply applies a balance batch in its own transaction
func (r *LedgerRepository) Apply(batch *models.BalanceBatch) (*models.LedgerSnapshot, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("%w: begin transaction: %v", utils.ErrLedgerApply, err)
	}
	defer tx.Rollback()

	snapshot, err := r.ApplyTx(tx, batch)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: commit transaction: %v", utils.ErrLedgerApply, err)
	}

	return snapshot, nil
}
