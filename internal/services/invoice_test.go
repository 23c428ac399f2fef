package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"projectflow/internal/models"
	"projectflow/internal/record"
)

func TestInvoiceCreateComputesNumberAndTotal(t *testing.T) {
	deps, store, _ := fixtureDeps(t)
	svc := NewInvoiceService(deps)

	store.Load(record.TableInvoices, []record.Raw{
		{"Id": 1, "invoice_number_c": "INV-2026-001"},
		{"Id": 4, "invoice_number_c": "INV-2026-004"},
	})

	invoice, err := svc.Create(context.Background(), InvoiceInput{
		Description: "August retainer", Amount: 2000, Tax: 160,
		DueDate: "2026-10-01", ClientID: 1,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	want := fmt.Sprintf("INV-%d-005", time.Now().Year())
	if invoice.InvoiceNumber != want {
		t.Errorf("InvoiceNumber = %q, want %q", invoice.InvoiceNumber, want)
	}
	if invoice.Total != 2160 {
		t.Errorf("Total = %v, want 2160", invoice.Total)
	}
	if invoice.Status != models.InvoiceDraft {
		t.Errorf("Status = %q, want draft", invoice.Status)
	}
	if invoice.IssueDate != models.Today() {
		t.Errorf("IssueDate = %q, want today", invoice.IssueDate)
	}
}

func TestInvoiceFirstNumberStartsAtOne(t *testing.T) {
	deps, _, _ := fixtureDeps(t)
	svc := NewInvoiceService(deps)

	invoice, err := svc.Create(context.Background(), InvoiceInput{
		Description: "Kickoff", Amount: 100, ClientID: 1,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	want := fmt.Sprintf("INV-%d-001", time.Now().Year())
	if invoice.InvoiceNumber != want {
		t.Errorf("InvoiceNumber = %q, want %q", invoice.InvoiceNumber, want)
	}
}

func TestInvoiceMarkPaidStampsDate(t *testing.T) {
	deps, _, _ := fixtureDeps(t)
	svc := NewInvoiceService(deps)
	ctx := context.Background()

	created, _ := svc.Create(ctx, InvoiceInput{Description: "Kickoff", Amount: 100, ClientID: 1})

	status := models.InvoicePaid
	updated, err := svc.Update(ctx, created.ID, InvoiceUpdate{Status: &status})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.PaidDate != models.Today() {
		t.Errorf("PaidDate = %q, want today", updated.PaidDate)
	}
}

func TestInvoiceUpdateDoesNotRecomputeTotal(t *testing.T) {
	deps, _, _ := fixtureDeps(t)
	svc := NewInvoiceService(deps)
	ctx := context.Background()

	created, _ := svc.Create(ctx, InvoiceInput{Description: "Kickoff", Amount: 100, Tax: 10, ClientID: 1})

	amount := 500.0
	updated, err := svc.Update(ctx, created.ID, InvoiceUpdate{Amount: &amount})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Amount != 500 {
		t.Errorf("Amount = %v, want 500", updated.Amount)
	}
	if updated.Total != 110 {
		t.Errorf("Total = %v, want 110 (unchanged)", updated.Total)
	}
}

func TestInvoiceGetByClientID(t *testing.T) {
	deps, store, _ := fixtureDeps(t)
	svc := NewInvoiceService(deps)

	store.Load(record.TableInvoices, []record.Raw{
		{"Id": 1, "invoice_number_c": "INV-2026-001", "client_id_c": 3},
		{"Id": 2, "invoice_number_c": "INV-2026-002", "client_id_c": 1},
		{"Id": 3, "invoice_number_c": "INV-2026-003", "client_id_c": 3},
	})

	invoices, err := svc.GetByClientID(context.Background(), 3)
	if err != nil {
		t.Fatalf("getByClientID: %v", err)
	}
	if len(invoices) != 2 {
		t.Fatalf("len = %d, want 2", len(invoices))
	}
}
