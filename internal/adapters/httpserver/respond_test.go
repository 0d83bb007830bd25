package httpserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurumworks/goldleaf/internal/domain"
)

func TestWriteErrorEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, http.StatusBadRequest, "bad input")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "bad input", body["message"])
	assert.Equal(t, false, body["success"])
}

func TestWriteDomainErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrCustomerNotFound, http.StatusBadRequest},
		{domain.ErrLineItemNotFound, http.StatusBadRequest},
		{domain.ErrProductNotFound, http.StatusBadRequest},
		{domain.ErrInvalidPricing, http.StatusBadRequest},
		{domain.ErrInvalidStatus, http.StatusBadRequest},
		{domain.ErrInvalidRange, http.StatusBadRequest},
		{domain.ErrInUse, http.StatusConflict},
		{domain.ErrDuplicateInvoiceNumber, http.StatusConflict},
		{domain.ErrNotFound, http.StatusNotFound},
		{fmt.Errorf("disk full"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeDomainError(rec, tc.err)
			assert.Equal(t, tc.code, rec.Code)
		})
	}
}

func TestWriteDomainErrorUnwrapsChain(t *testing.T) {
	rec := httptest.NewRecorder()
	writeDomainError(rec, fmt.Errorf("%w: product appears on invoices", domain.ErrInUse))
	assert.Equal(t, http.StatusConflict, rec.Code)
}
