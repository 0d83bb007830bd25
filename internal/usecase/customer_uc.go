package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/aurumworks/goldleaf/internal/domain"
)

type CustomerUC struct {
	Customers domain.CustomerRepo
}

func (uc *CustomerUC) Create(ctx context.Context, c *domain.Customer) error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("customer name is required")
	}
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.Email != "" {
		c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	}
	return uc.Customers.Save(ctx, c)
}

func (uc *CustomerUC) Update(ctx context.Context, c *domain.Customer) error {
	if c.ID == uuid.Nil {
		return errors.New("customer id is required")
	}
	if c.Email != "" {
		c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	}
	return uc.Customers.Save(ctx, c)
}

func (uc *CustomerUC) Get(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	return uc.Customers.FindByID(ctx, id)
}

func (uc *CustomerUC) List(ctx context.Context) ([]domain.Customer, error) {
	return uc.Customers.List(ctx)
}

// Delete refuses to remove a customer that invoices still reference.
func (uc *CustomerUC) Delete(ctx context.Context, id uuid.UUID) error {
	has, err := uc.Customers.HasInvoices(ctx, id)
	if err != nil {
		return err
	}
	if has {
		return fmt.Errorf("%w: customer has invoices", domain.ErrInUse)
	}
	return uc.Customers.Delete(ctx, id)
}
