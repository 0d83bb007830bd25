package postgres

import (
	"context"

	"gorm.io/gorm"
)

// TxRunner wraps gorm's transaction handling behind domain.TxRunner.
type TxRunner struct{ db *gorm.DB }

func NewTxRunner(db *gorm.DB) *TxRunner { return &TxRunner{db: db} }

func (r *TxRunner) InTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}
