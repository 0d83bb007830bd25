package domain

import "errors"

var (
	// ErrNotFound is the generic lookup miss, mapped from the storage layer.
	ErrNotFound = errors.New("record not found")

	ErrCustomerNotFound = errors.New("customer not found")
	// ErrLineItemNotFound means a cart entry referenced a product or service
	// that does not exist.
	ErrLineItemNotFound = errors.New("line item reference not found")
	// ErrProductNotFound is raised during stock adjustment.
	ErrProductNotFound = errors.New("product not found")

	// ErrInvalidPricing covers negative final amounts and malformed numeric
	// input to the pricing calculator.
	ErrInvalidPricing = errors.New("invalid pricing")

	ErrDuplicateInvoiceNumber = errors.New("duplicate invoice number")

	// ErrInvalidStatus is returned for unknown status values or transitions
	// the invoice lifecycle does not allow.
	ErrInvalidStatus = errors.New("invalid invoice status")

	// ErrInUse guards deletes of records still referenced elsewhere
	// (customer with invoices, product with invoice lines, ...).
	ErrInUse = errors.New("record is referenced and cannot be deleted")

	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidRange marks a malformed report date range.
	ErrInvalidRange = errors.New("invalid date range")
)
