package httpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/aurumworks/goldleaf/internal/adapters/barcode"
	"github.com/aurumworks/goldleaf/internal/adapters/pdf"
	"github.com/aurumworks/goldleaf/internal/domain"
	"github.com/aurumworks/goldleaf/internal/usecase"
)

const dateLayout = "2006-01-02"

type Server struct {
	mux       *http.ServeMux
	invoices  *usecase.InvoiceUC
	catalog   *usecase.CatalogUC
	customers *usecase.CustomerUC
	auth      *usecase.AuthUC
	reports   *usecase.ReportUC
	renderer  *pdf.Renderer
	barcodes  *barcode.Generator
	validate  *validator.Validate
}

func New(
	invoices *usecase.InvoiceUC,
	catalog *usecase.CatalogUC,
	customers *usecase.CustomerUC,
	auth *usecase.AuthUC,
	reports *usecase.ReportUC,
	renderer *pdf.Renderer,
	barcodes *barcode.Generator,
) http.Handler {
	s := &Server{
		mux:       http.NewServeMux(),
		invoices:  invoices,
		catalog:   catalog,
		customers: customers,
		auth:      auth,
		reports:   reports,
		renderer:  renderer,
		barcodes:  barcodes,
		validate:  validator.New(),
	}
	s.routes()
	return Chain(s.mux,
		RateLimit(300),
		RequestID,
		Recovery,
		Logging,
	)
}

func (s *Server) routes() {
	s.mux.HandleFunc("POST /api/login", s.handleLogin)
	s.mux.HandleFunc("POST /api/users", s.requireAuth(s.handleCreateUser))

	s.mux.HandleFunc("POST /api/invoices", s.requireAuth(s.handleCreateInvoice))
	s.mux.HandleFunc("GET /api/invoices", s.requireAuth(s.handleListInvoices))
	s.mux.HandleFunc("GET /api/invoices/{id}", s.requireAuth(s.handleGetInvoice))
	s.mux.HandleFunc("POST /api/invoices/{id}/status", s.requireAuth(s.handleUpdateInvoiceStatus))
	s.mux.HandleFunc("GET /api/invoices/{id}/pdf", s.requireAuth(s.handleInvoicePDF))

	s.mux.HandleFunc("GET /api/products", s.requireAuth(s.handleListProducts))
	s.mux.HandleFunc("POST /api/products", s.requireAuth(s.handleSaveProduct))
	s.mux.HandleFunc("GET /api/products/{id}", s.requireAuth(s.handleGetProduct))
	s.mux.HandleFunc("PUT /api/products/{id}", s.requireAuth(s.handleSaveProduct))
	s.mux.HandleFunc("DELETE /api/products/{id}", s.requireAuth(s.handleDeleteProduct))
	s.mux.HandleFunc("GET /api/products/{id}/barcode", s.requireAuth(s.handleProductBarcode))

	s.mux.HandleFunc("GET /api/services", s.requireAuth(s.handleListServices))
	s.mux.HandleFunc("POST /api/services", s.requireAuth(s.handleSaveService))
	s.mux.HandleFunc("PUT /api/services/{id}", s.requireAuth(s.handleSaveService))
	s.mux.HandleFunc("DELETE /api/services/{id}", s.requireAuth(s.handleDeleteService))

	s.mux.HandleFunc("GET /api/customers", s.requireAuth(s.handleListCustomers))
	s.mux.HandleFunc("POST /api/customers", s.requireAuth(s.handleSaveCustomer))
	s.mux.HandleFunc("PUT /api/customers/{id}", s.requireAuth(s.handleSaveCustomer))
	s.mux.HandleFunc("DELETE /api/customers/{id}", s.requireAuth(s.handleDeleteCustomer))

	s.mux.HandleFunc("GET /api/categories", s.requireAuth(s.handleListCategories))
	s.mux.HandleFunc("POST /api/categories", s.requireAuth(s.handleSaveCategory))
	s.mux.HandleFunc("DELETE /api/categories/{id}", s.requireAuth(s.handleDeleteCategory))

	s.mux.HandleFunc("GET /api/suppliers", s.requireAuth(s.handleListSuppliers))
	s.mux.HandleFunc("POST /api/suppliers", s.requireAuth(s.handleSaveSupplier))
	s.mux.HandleFunc("DELETE /api/suppliers/{id}", s.requireAuth(s.handleDeleteSupplier))

	s.mux.HandleFunc("GET /api/export/inventory", s.requireAuth(s.handleExportInventory))

	s.mux.HandleFunc("GET /api/reports/sales", s.requireAuth(s.handleSalesReport))
	s.mux.HandleFunc("GET /api/reports/inventory", s.requireAuth(s.handleInventoryReport))
	s.mux.HandleFunc("GET /api/reports/customers", s.requireAuth(s.handleCustomersReport))
}

// --- auth ---

const claimsKey ctxKey = "claims"

func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			writeError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}
		claims, err := s.auth.VerifyToken(tokenString)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}
		next(w, r.WithContext(context.WithValue(r.Context(), claimsKey, claims)))
	}
}

func claimsFrom(r *http.Request) *usecase.TokenClaims {
	claims, _ := r.Context().Value(claimsKey).(*usecase.TokenClaims)
	return claims
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !s.decode(w, r, &req) {
		return
	}
	token, user, err := s.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"token": token,
		"user":  user,
	})
}

type createUserRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	IsAdmin  bool   `json:"is_admin"`
}

// handleCreateUser registers a staff account. Admin only.
func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	if claims == nil || !claims.IsAdmin {
		writeError(w, http.StatusForbidden, "admin privileges required")
		return
	}
	var req createUserRequest
	if !s.decode(w, r, &req) {
		return
	}
	u, err := s.auth.CreateUser(r.Context(), req.Username, req.Email, req.Password, req.IsAdmin)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// --- invoices ---

type invoiceItemRequest struct {
	ProductID  string          `json:"product_id"`
	ServiceID  string          `json:"service_id"`
	IsService  bool            `json:"is_service"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

type createInvoiceRequest struct {
	CustomerID string               `json:"customer_id" validate:"required,uuid"`
	IssueDate  string               `json:"issue_date" validate:"required"`
	DueDate    string               `json:"due_date"`
	Items      []invoiceItemRequest `json:"items" validate:"required,min=1"`

	TotalAmount decimal.Decimal `json:"total_amount"`
	TaxAmount   decimal.Decimal `json:"tax_amount"`
	Discount    decimal.Decimal `json:"discount"`
	FinalAmount decimal.Decimal `json:"final_amount"`

	IsCustomOrder      bool             `json:"is_custom_order"`
	IsRepair           bool             `json:"is_repair"`
	EstimatedReadyDate string           `json:"estimated_ready_date"`
	DepositAmount      decimal.Decimal  `json:"deposit_amount"`
	WarrantyPeriod     int              `json:"warranty_period"`
	AppraisalValue     *decimal.Decimal `json:"appraisal_value"`
	PaymentMethod      string           `json:"payment_method"`
	Notes              string           `json:"notes"`
}

func (s *Server) handleCreateInvoice(w http.ResponseWriter, r *http.Request) {
	var req createInvoiceRequest
	if !s.decode(w, r, &req) {
		return
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid customer_id")
		return
	}
	issueDate, err := time.Parse(dateLayout, req.IssueDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid issue_date, expected YYYY-MM-DD")
		return
	}
	dueDate, err := parseOptionalDate(req.DueDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid due_date, expected YYYY-MM-DD")
		return
	}
	readyDate, err := parseOptionalDate(req.EstimatedReadyDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid estimated_ready_date, expected YYYY-MM-DD")
		return
	}

	entries := make([]usecase.CartEntry, 0, len(req.Items))
	for i, item := range req.Items {
		entry := usecase.CartEntry{
			IsService: item.IsService,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
		ref := item.ProductID
		if item.IsService && item.ServiceID != "" {
			ref = item.ServiceID
		}
		id, err := uuid.Parse(ref)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("item %d has an invalid reference id", i))
			return
		}
		if item.IsService {
			entry.ServiceID = &id
		} else {
			entry.ProductID = &id
		}
		entries = append(entries, entry)
	}

	in := usecase.CreateInvoiceInput{
		CustomerID:         customerID,
		IssueDate:          issueDate,
		DueDate:            dueDate,
		Entries:            entries,
		TaxAmount:          req.TaxAmount,
		Discount:           req.Discount,
		IsCustomOrder:      req.IsCustomOrder,
		IsRepair:           req.IsRepair,
		EstimatedReadyDate: readyDate,
		DepositAmount:      req.DepositAmount,
		WarrantyPeriod:     req.WarrantyPeriod,
		AppraisalValue:     req.AppraisalValue,
		PaymentMethod:      req.PaymentMethod,
		Notes:              req.Notes,
	}
	if claims := claimsFrom(r); claims != nil {
		in.CreatedBy = &claims.UserID
	}

	inv, err := s.invoices.Create(r.Context(), in)
	if err != nil {
		log.Error().Err(err).Msg("create invoice")
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":         "success",
		"message":        "Invoice created successfully",
		"success":        true,
		"invoice_id":     inv.ID,
		"invoice_number": inv.InvoiceNumber,
	})
}

func (s *Server) handleListInvoices(w http.ResponseWriter, r *http.Request) {
	f := domain.InvoiceFilter{
		Status: domain.InvoiceStatus(r.URL.Query().Get("status")),
	}
	f.Page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	f.PageSize, _ = strconv.Atoi(r.URL.Query().Get("page_size"))
	list, total, err := s.invoices.List(r.Context(), f)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": list, "total": total})
}

func (s *Server) handleGetInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid invoice id")
		return
	}
	inv, err := s.invoices.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, inv)
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (s *Server) handleUpdateInvoiceStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid invoice id")
		return
	}
	var req updateStatusRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := s.invoices.UpdateStatus(r.Context(), id, domain.InvoiceStatus(req.Status)); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "success", "message": "Invoice status updated to " + req.Status})
}

func (s *Server) handleInvoicePDF(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid invoice id")
		return
	}
	inv, err := s.invoices.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	data, err := s.renderer.Render(inv)
	if err != nil {
		log.Error().Err(err).Str("invoice", inv.InvoiceNumber).Msg("render pdf")
		writeError(w, http.StatusInternalServerError, "could not render invoice")
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=invoice_%s.pdf", inv.InvoiceNumber))
	_, _ = w.Write(data)
}

// decode unmarshals the JSON body into v and runs struct validation.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	if err := s.validate.Struct(v); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

func parseOptionalDate(value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
