package usecase

import (
	"fmt"
	"sync"
	"time"
)

// InvoiceNumberGenerator produces human-readable, time-derived invoice
// numbers: INV-YYYYMMDD-HHMMSS. When two invoices are issued within the same
// second a -NN sequence suffix keeps the numbers distinct in this process;
// the unique index on invoice_number backstops anything else.
type InvoiceNumberGenerator struct {
	mu   sync.Mutex
	last string
	seq  int
	now  func() time.Time
}

func NewInvoiceNumberGenerator() *InvoiceNumberGenerator {
	return &InvoiceNumberGenerator{now: time.Now}
}

func (g *InvoiceNumberGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	base := "INV-" + g.now().Format("20060102-150405")
	if base == g.last {
		g.seq++
		return fmt.Sprintf("%s-%02d", base, g.seq)
	}
	g.last = base
	g.seq = 0
	return base
}
