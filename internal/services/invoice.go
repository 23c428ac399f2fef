package services

import (
	"context"
	"fmt"
	"time"

	"projectflow/internal/models"
	"projectflow/internal/record"
)

var invoiceFields = []string{
	"invoice_number_c", "description_c", "amount_c", "tax_c", "total_c",
	"status_c", "issue_date_c", "due_date_c", "paid_date_c",
	"client_id_c", "project_id_c",
}

// InvoiceService is the invoice entity service.
type InvoiceService struct {
	base
}

func NewInvoiceService(d Deps) *InvoiceService { return &InvoiceService{base: newBase(d)} }

type InvoiceInput struct {
	Description string      `json:"description"`
	Amount      float64     `json:"amount"`
	Tax         float64     `json:"tax"`
	DueDate     models.Date `json:"dueDate"`
	ClientID    int         `json:"clientId"`
	ProjectID   int         `json:"projectId"`
}

// InvoiceUpdate is a partial update: nil fields are left unchanged. The
// total is not recomputed on update.
type InvoiceUpdate struct {
	Description *string      `json:"description"`
	Amount      *float64     `json:"amount"`
	Tax         *float64     `json:"tax"`
	Total       *float64     `json:"total"`
	Status      *string      `json:"status"`
	DueDate     *models.Date `json:"dueDate"`
	PaidDate    *models.Date `json:"paidDate"`
	ClientID    *int         `json:"clientId"`
	ProjectID   *int         `json:"projectId"`
}

func (s *InvoiceService) GetAll(ctx context.Context) ([]models.Invoice, error) {
	if err := s.pause(ctx); err != nil {
		return nil, err
	}
	raws, err := s.store.FetchRecords(ctx, record.TableInvoices, record.QueryParams{Fields: invoiceFields})
	if err != nil {
		return nil, s.fail("fetch", "invoice", err)
	}
	invoices := make([]models.Invoice, 0, len(raws))
	for _, r := range raws {
		invoices = append(invoices, invoiceFromRaw(r))
	}
	return invoices, nil
}

func (s *InvoiceService) GetByID(ctx context.Context, id int) (models.Invoice, error) {
	if err := s.pause(ctx); err != nil {
		return models.Invoice{}, err
	}
	raw, err := s.store.GetRecordByID(ctx, record.TableInvoices, id, record.QueryParams{Fields: invoiceFields})
	if err != nil {
		return models.Invoice{}, s.fail("get", "invoice", err)
	}
	return invoiceFromRaw(raw), nil
}

// GetByClientID returns the (possibly empty) invoices billed to a client.
func (s *InvoiceService) GetByClientID(ctx context.Context, clientID int) ([]models.Invoice, error) {
	if err := s.pause(ctx); err != nil {
		return nil, err
	}
	raws, err := s.store.FetchRecords(ctx, record.TableInvoices, record.QueryParams{
		Fields: invoiceFields,
		Where:  []record.Where{{Field: "client_id_c", Value: clientID}},
	})
	if err != nil {
		return nil, s.fail("fetch", "invoice", err)
	}
	invoices := make([]models.Invoice, 0, len(raws))
	for _, r := range raws {
		invoices = append(invoices, invoiceFromRaw(r))
	}
	return invoices, nil
}

// Create issues a draft invoice. The invoice number is INV-<year>-<sequence>,
// the sequence following the highest existing id; total is amount+tax at
// creation time and is not re-enforced afterwards.
func (s *InvoiceService) Create(ctx context.Context, in InvoiceInput) (models.Invoice, error) {
	if err := s.pause(ctx); err != nil {
		return models.Invoice{}, err
	}
	seq, err := s.nextSequence(ctx)
	if err != nil {
		return models.Invoice{}, s.fail("fetch", "invoice", err)
	}
	fields := record.Raw{
		"invoice_number_c": fmt.Sprintf("INV-%d-%03d", time.Now().Year(), seq),
		"description_c":    in.Description,
		"amount_c":         in.Amount,
		"tax_c":            in.Tax,
		"total_c":          in.Amount + in.Tax,
		"status_c":         models.InvoiceDraft,
		"issue_date_c":     string(models.Today()),
		"due_date_c":       string(in.DueDate),
		"client_id_c":      in.ClientID,
	}
	if in.ProjectID != 0 {
		fields["project_id_c"] = in.ProjectID
	}
	raw, err := s.store.CreateRecord(ctx, record.TableInvoices, fields)
	if err != nil {
		return models.Invoice{}, s.fail("create", "invoice", err)
	}
	s.notifier.Success("Invoice created successfully")
	return invoiceFromRaw(raw), nil
}

func (s *InvoiceService) Update(ctx context.Context, id int, upd InvoiceUpdate) (models.Invoice, error) {
	if err := s.pause(ctx); err != nil {
		return models.Invoice{}, err
	}
	fields := record.Raw{}
	setString(fields, "description_c", upd.Description)
	setFloat(fields, "amount_c", upd.Amount)
	setFloat(fields, "tax_c", upd.Tax)
	setFloat(fields, "total_c", upd.Total)
	setString(fields, "status_c", upd.Status)
	setDate(fields, "due_date_c", upd.DueDate)
	setDate(fields, "paid_date_c", upd.PaidDate)
	setInt(fields, "client_id_c", upd.ClientID)
	setInt(fields, "project_id_c", upd.ProjectID)
	// Marking an invoice paid stamps the payment date unless the caller set one.
	if upd.Status != nil && *upd.Status == models.InvoicePaid && upd.PaidDate == nil {
		fields["paid_date_c"] = string(models.Today())
	}
	raw, err := s.store.UpdateRecord(ctx, record.TableInvoices, id, fields)
	if err != nil {
		return models.Invoice{}, s.fail("update", "invoice", err)
	}
	s.notifier.Success("Invoice updated successfully")
	return invoiceFromRaw(raw), nil
}

func (s *InvoiceService) Delete(ctx context.Context, id int) error {
	if err := s.pause(ctx); err != nil {
		return err
	}
	if err := s.store.DeleteRecord(ctx, record.TableInvoices, id); err != nil {
		return s.fail("delete", "invoice", err)
	}
	s.notifier.Success("Invoice deleted successfully")
	return nil
}

func (s *InvoiceService) nextSequence(ctx context.Context) (int, error) {
	raws, err := s.store.FetchRecords(ctx, record.TableInvoices, record.QueryParams{Fields: []string{"Id"}})
	if err != nil {
		return 0, err
	}
	max := 0
	for _, r := range raws {
		if id := record.AsInt(r["Id"]); id > max {
			max = id
		}
	}
	return max + 1, nil
}

func invoiceFromRaw(r record.Raw) models.Invoice {
	return models.Invoice{
		ID:            record.AsInt(r["Id"]),
		InvoiceNumber: record.AsString(r["invoice_number_c"]),
		Description:   record.AsString(r["description_c"]),
		Amount:        record.AsFloat(r["amount_c"]),
		Tax:           record.AsFloat(r["tax_c"]),
		Total:         record.AsFloat(r["total_c"]),
		Status:        record.AsString(r["status_c"]),
		IssueDate:     models.Date(record.AsString(r["issue_date_c"])),
		DueDate:       models.Date(record.AsString(r["due_date_c"])),
		PaidDate:      models.Date(record.AsString(r["paid_date_c"])),
		ClientID:      record.RefFrom(r["client_id_c"]).ID(),
		ProjectID:     record.RefFrom(r["project_id_c"]).ID(),
	}
}
