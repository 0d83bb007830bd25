package httpserver

import (
	"net/http"
	"strconv"
	"time"
)

func (s *Server) handleSalesReport(w http.ResponseWriter, r *http.Request) {
	var from, to time.Time
	if p, err := parseOptionalDate(r.URL.Query().Get("from")); err != nil {
		writeError(w, http.StatusBadRequest, "invalid from, expected YYYY-MM-DD")
		return
	} else if p != nil {
		from = *p
	}
	if p, err := parseOptionalDate(r.URL.Query().Get("to")); err != nil {
		writeError(w, http.StatusBadRequest, "invalid to, expected YYYY-MM-DD")
		return
	} else if p != nil {
		to = *p
	}

	rows, err := s.reports.SalesByDay(r.Context(), from, to)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": rows})
}

func (s *Server) handleInventoryReport(w http.ResponseWriter, r *http.Request) {
	v, err := s.reports.InventoryValuation(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (s *Server) handleCustomersReport(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	rows, err := s.reports.TopCustomers(r.Context(), limit)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": rows})
}
