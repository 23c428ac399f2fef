package handlers

import (
	"net/http"

	"projectflow/internal/httpx"
	"projectflow/internal/models"
	"projectflow/internal/services"
	"projectflow/internal/validation"
)

type InvoiceHandler struct {
	Svc *services.InvoiceService
}

func NewInvoiceHandler(svc *services.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{Svc: svc}
}

// List: GET /api/invoices?q=&status=. Substring filter over invoice number
// and description, optional status equality.
func (h *InvoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	q, status := listParams(r)
	invoices, err := h.Svc.GetAll(r.Context())
	if err != nil {
		httpx.ServiceError(w, err)
		return
	}
	filtered := make([]models.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if matchesQuery(q, inv.InvoiceNumber, inv.Description) && matchesStatus(status, inv.Status) {
			filtered = append(filtered, inv)
		}
	}
	listResponse(w, filtered, len(filtered))
}

func (h *InvoiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	invoice, err := h.Svc.GetByID(r.Context(), id)
	if err != nil {
		httpx.ServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, invoice)
}

// Create: POST /api/invoices. A due date in the past is rejected here; the
// service is never called for an invalid form.
func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in services.InvoiceInput
	if !decode(w, r, &in) {
		return
	}
	v := validation.Violations{}
	validation.Required("description", in.Description, v)
	validation.PositiveFloat("amount", in.Amount, v)
	validation.NonNegativeFloat("tax", in.Tax, v)
	validation.PositiveInt("clientId", in.ClientID, v)
	validation.ValidDate("dueDate", in.DueDate, v)
	validation.DateNotPast("dueDate", in.DueDate, v)
	if !v.Empty() {
		httpx.Violations(w, v)
		return
	}
	invoice, err := h.Svc.Create(r.Context(), in)
	if err != nil {
		httpx.ServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, invoice)
}

func (h *InvoiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var upd services.InvoiceUpdate
	if !decode(w, r, &upd) {
		return
	}
	invoice, err := h.Svc.Update(r.Context(), id, upd)
	if err != nil {
		httpx.ServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, invoice)
}

func (h *InvoiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.Svc.Delete(r.Context(), id); err != nil {
		httpx.ServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"success": true})
}
