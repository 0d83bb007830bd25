package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/aurumworks/goldleaf/internal/domain"
)

type ReportRepo struct{ db *gorm.DB }

func NewReportRepo(db *gorm.DB) *ReportRepo { return &ReportRepo{db: db} }

func (r *ReportRepo) SalesByDay(ctx context.Context, from, to time.Time) ([]domain.DailySales, error) {
	var rows []domain.DailySales
	err := r.db.WithContext(ctx).Model(&domain.Invoice{}).
		Select("DATE(issue_date) AS day, COUNT(*) AS invoices, COALESCE(SUM(final_amount), 0) AS total").
		Where("status <> ?", domain.InvoiceStatusCancelled).
		Where("issue_date >= ? AND issue_date < ?", from, to).
		Group("DATE(issue_date)").
		Order("day asc").
		Scan(&rows).Error
	return rows, err
}

func (r *ReportRepo) InventoryValuation(ctx context.Context) (*domain.InventoryValuation, error) {
	var v domain.InventoryValuation
	err := r.db.WithContext(ctx).Model(&domain.Product{}).
		Select("COUNT(*) AS products, " +
			"COALESCE(SUM(quantity), 0) AS units, " +
			"COALESCE(SUM(quantity * cost_price), 0) AS cost_value, " +
			"COALESCE(SUM(quantity * price), 0) AS retail_value").
		Scan(&v).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *ReportRepo) TopCustomers(ctx context.Context, limit int) ([]domain.CustomerSpend, error) {
	var rows []domain.CustomerSpend
	err := r.db.WithContext(ctx).Model(&domain.Invoice{}).
		Select("invoices.customer_id AS customer_id, customers.name AS name, " +
			"COUNT(*) AS invoices, COALESCE(SUM(invoices.final_amount), 0) AS total").
		Joins("JOIN customers ON customers.id = invoices.customer_id").
		Where("invoices.status <> ?", domain.InvoiceStatusCancelled).
		Group("invoices.customer_id, customers.name").
		Order("total desc").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
