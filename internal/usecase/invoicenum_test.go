package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInvoiceNumberFormat(t *testing.T) {
	g := NewInvoiceNumberGenerator()
	g.now = func() time.Time { return time.Date(2026, 8, 29, 10, 15, 0, 0, time.UTC) }

	assert.Equal(t, "INV-20260829-101500", g.Next())
}

func TestInvoiceNumberSameSecondGetsSuffix(t *testing.T) {
	g := NewInvoiceNumberGenerator()
	g.now = func() time.Time { return time.Date(2026, 8, 29, 10, 15, 0, 0, time.UTC) }

	assert.Equal(t, "INV-20260829-101500", g.Next())
	assert.Equal(t, "INV-20260829-101500-01", g.Next())
	assert.Equal(t, "INV-20260829-101500-02", g.Next())
}

func TestInvoiceNumberResetsOnNewSecond(t *testing.T) {
	g := NewInvoiceNumberGenerator()
	sec := 0
	g.now = func() time.Time { return time.Date(2026, 8, 29, 10, 15, sec, 0, time.UTC) }

	first := g.Next()
	sec = 1
	second := g.Next()
	assert.NotEqual(t, first, second)
	assert.Equal(t, "INV-20260829-101501", second)
}

func TestInvoiceNumbersUniqueUnderConcurrency(t *testing.T) {
	g := NewInvoiceNumberGenerator()
	seen := make(chan string, 50)
	for i := 0; i < 50; i++ {
		go func() { seen <- g.Next() }()
	}
	unique := map[string]bool{}
	for i := 0; i < 50; i++ {
		unique[<-seen] = true
	}
	assert.Len(t, unique, 50)
}
