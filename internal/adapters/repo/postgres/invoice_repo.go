package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aurumworks/goldleaf/internal/domain"
)

type InvoiceRepo struct{ db *gorm.DB }

func NewInvoiceRepo(db *gorm.DB) *InvoiceRepo { return &InvoiceRepo{db: db} }

// CreateTx writes the header and its lines through the caller's transaction.
func (r *InvoiceRepo) CreateTx(tx *gorm.DB, inv *domain.Invoice) error {
	if err := tx.Create(inv).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateInvoiceNumber, inv.InvoiceNumber)
		}
		return err
	}
	return nil
}

func (r *InvoiceRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	var inv domain.Invoice
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("position asc") }).
		Preload("Lines.Product").
		Preload("Lines.Service").
		First(&inv, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &inv, nil
}

func (r *InvoiceRepo) List(ctx context.Context, f domain.InvoiceFilter) ([]domain.Invoice, int64, error) {
	var list []domain.Invoice
	q := r.db.WithContext(ctx).Model(&domain.Invoice{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (f.Page - 1) * f.PageSize
	err := q.Preload("Customer").
		Order("created_at desc").
		Offset(offset).Limit(f.PageSize).
		Find(&list).Error
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *InvoiceRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.InvoiceStatus) error {
	return r.db.WithContext(ctx).Model(&domain.Invoice{}).
		Where("id = ?", id).Update("status", status).Error
}
