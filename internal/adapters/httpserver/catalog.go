package httpserver

import (
	"context"
	"net/http"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/aurumworks/goldleaf/internal/domain"
)

// --- products ---

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	f := domain.ProductFilter{Query: r.URL.Query().Get("q")}
	if raw := r.URL.Query().Get("category_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid category_id")
			return
		}
		f.CategoryID = &id
	}
	f.Page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	f.PageSize, _ = strconv.Atoi(r.URL.Query().Get("page_size"))
	list, total, err := s.catalog.ListProducts(r.Context(), f)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": list, "total": total})
}

func (s *Server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}
	p, err := s.catalog.GetProduct(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleSaveProduct(w http.ResponseWriter, r *http.Request) {
	var p domain.Product
	if !s.decode(w, r, &p) {
		return
	}
	var err error
	if r.Method == http.MethodPut {
		if p.ID, err = uuid.Parse(r.PathValue("id")); err != nil {
			writeError(w, http.StatusBadRequest, "invalid product id")
			return
		}
		err = s.catalog.UpdateProduct(r.Context(), &p)
	} else {
		err = s.catalog.CreateProduct(r.Context(), &p)
	}
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	s.handleDelete(w, r, "product", s.catalog.DeleteProduct)
}

// handleProductBarcode streams the code128 PNG for the product's barcode.
func (s *Server) handleProductBarcode(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}
	p, err := s.catalog.GetProduct(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if p.Barcode == "" {
		writeError(w, http.StatusNotFound, "product has no barcode")
		return
	}
	path, err := s.barcodes.ImagePath(p.Barcode)
	if err != nil {
		log.Error().Err(err).Str("barcode", p.Barcode).Msg("render barcode")
		writeError(w, http.StatusInternalServerError, "could not render barcode")
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not read barcode image")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(data)
}

// --- services ---

func (s *Server) handleListServices(w http.ResponseWriter, r *http.Request) {
	list, err := s.catalog.ListServices(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": list})
}

func (s *Server) handleSaveService(w http.ResponseWriter, r *http.Request) {
	var svc domain.Service
	if !s.decode(w, r, &svc) {
		return
	}
	var err error
	if r.Method == http.MethodPut {
		if svc.ID, err = uuid.Parse(r.PathValue("id")); err != nil {
			writeError(w, http.StatusBadRequest, "invalid service id")
			return
		}
		err = s.catalog.UpdateService(r.Context(), &svc)
	} else {
		err = s.catalog.CreateService(r.Context(), &svc)
	}
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, svc)
}

func (s *Server) handleDeleteService(w http.ResponseWriter, r *http.Request) {
	s.handleDelete(w, r, "service", s.catalog.DeleteService)
}

// --- customers ---

func (s *Server) handleListCustomers(w http.ResponseWriter, r *http.Request) {
	list, err := s.customers.List(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": list})
}

func (s *Server) handleSaveCustomer(w http.ResponseWriter, r *http.Request) {
	var c domain.Customer
	if !s.decode(w, r, &c) {
		return
	}
	var err error
	if r.Method == http.MethodPut {
		if c.ID, err = uuid.Parse(r.PathValue("id")); err != nil {
			writeError(w, http.StatusBadRequest, "invalid customer id")
			return
		}
		err = s.customers.Update(r.Context(), &c)
	} else {
		err = s.customers.Create(r.Context(), &c)
	}
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleDeleteCustomer(w http.ResponseWriter, r *http.Request) {
	s.handleDelete(w, r, "customer", s.customers.Delete)
}

// --- categories ---

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	list, err := s.catalog.ListCategories(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": list})
}

func (s *Server) handleSaveCategory(w http.ResponseWriter, r *http.Request) {
	var c domain.Category
	if !s.decode(w, r, &c) {
		return
	}
	if err := s.catalog.SaveCategory(r.Context(), &c); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	s.handleDelete(w, r, "category", s.catalog.DeleteCategory)
}

// --- suppliers ---

func (s *Server) handleListSuppliers(w http.ResponseWriter, r *http.Request) {
	list, err := s.catalog.ListSuppliers(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": list})
}

func (s *Server) handleSaveSupplier(w http.ResponseWriter, r *http.Request) {
	var sup domain.Supplier
	if !s.decode(w, r, &sup) {
		return
	}
	if err := s.catalog.SaveSupplier(r.Context(), &sup); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sup)
}

func (s *Server) handleDeleteSupplier(w http.ResponseWriter, r *http.Request) {
	s.handleDelete(w, r, "supplier", s.catalog.DeleteSupplier)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request, kind string, del func(ctx context.Context, id uuid.UUID) error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+kind+" id")
		return
	}
	if err := del(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "success", "message": kind + " deleted"})
}
