package record

// SeedDemoData loads a small demo dataset, one coherent freelancer book of
// business across all four tables. Development mode only.
func (s *FixtureStore) SeedDemoData() {
	s.Load(TableClients, []Raw{
		{"Id": 1, "name_c": "Acme Co", "email_c": "billing@acme.example", "company_c": "Acme Corporation",
			"phone_c": "+1 555 0100", "address_c": "100 Market St, Springfield", "notes_c": "Net-30 terms",
			"status_c": "active", "join_date_c": "2025-03-12", "project_count_c": 2, "total_revenue_c": 18500.0},
		{"Id": 2, "name_c": "Beta LLC", "email_c": "accounts@beta.example", "company_c": "Beta Logistics",
			"phone_c": "+1 555 0101", "address_c": "8 Harbor Way, Portland", "notes_c": "",
			"status_c": "active", "join_date_c": "2025-06-02", "project_count_c": 1, "total_revenue_c": 7200.0},
		{"Id": 3, "name_c": "Cobalt Studio", "email_c": "hello@cobalt.example", "company_c": "Cobalt Studio",
			"phone_c": "+1 555 0102", "address_c": "21 Rue des Arts, Lyon", "notes_c": "Paused engagement",
			"status_c": "inactive", "join_date_c": "2024-11-20", "project_count_c": 0, "total_revenue_c": 0.0},
	})
	s.Load(TableProjects, []Raw{
		{"Id": 1, "name_c": "Acme storefront rebuild", "description_c": "Replatform the retail storefront",
			"category_c": "Web Development", "status_c": "in-progress", "priority_c": "high",
			"budget_c": 14000.0, "spent_c": 6100.0, "progress_c": 45,
			"start_date_c": "2026-05-04", "deadline_c": "2026-10-30", "client_id_c": 1},
		{"Id": 2, "name_c": "Acme brand refresh", "description_c": "Logo and design system update",
			"category_c": "Design", "status_c": "planning", "priority_c": "medium",
			"budget_c": 4500.0, "spent_c": 0.0, "progress_c": 0,
			"start_date_c": "2026-08-15", "deadline_c": "2026-12-01", "client_id_c": 1},
		{"Id": 3, "name_c": "Beta dispatch dashboard", "description_c": "Internal logistics dashboard",
			"category_c": "Web Development", "status_c": "completed", "priority_c": "medium",
			"budget_c": 7200.0, "spent_c": 7050.0, "progress_c": 100,
			"start_date_c": "2026-01-10", "deadline_c": "2026-04-28", "client_id_c": 2},
	})
	s.Load(TableTasks, []Raw{
		{"Id": 1, "title_c": "Checkout flow wireframes", "description_c": "Mobile-first checkout screens",
			"assignee_c": "Sam Carter", "status_c": "in-progress", "priority_c": "high",
			"estimated_hours_c": 12.0, "actual_hours_c": 7.5,
			"due_date_c": "2026-09-12", "created_date_c": "2026-08-20", "project_id_c": 1},
		{"Id": 2, "title_c": "Payment gateway integration", "description_c": "Stripe + invoicing hooks",
			"assignee_c": "Sam Carter", "status_c": "pending", "priority_c": "high",
			"estimated_hours_c": 20.0, "actual_hours_c": 0.0,
			"due_date_c": "2026-10-02", "created_date_c": "2026-08-25", "project_id_c": 1},
		{"Id": 3, "title_c": "Handover documentation", "description_c": "Ops runbook for dispatch board",
			"assignee_c": "Riley Fox", "status_c": "completed", "priority_c": "low",
			"estimated_hours_c": 6.0, "actual_hours_c": 5.0,
			"due_date_c": "2026-04-20", "created_date_c": "2026-04-02",
			"completed_date_c": "2026-04-18", "project_id_c": 3},
	})
	s.Load(TableInvoices, []Raw{
		{"Id": 1, "invoice_number_c": "INV-2026-001", "description_c": "Dispatch dashboard final invoice",
			"amount_c": 6000.0, "tax_c": 1200.0, "total_c": 7200.0, "status_c": "paid",
			"issue_date_c": "2026-05-01", "due_date_c": "2026-05-31", "paid_date_c": "2026-05-18",
			"client_id_c": 2, "project_id_c": 3},
		{"Id": 2, "invoice_number_c": "INV-2026-002", "description_c": "Storefront rebuild milestone 1",
			"amount_c": 5000.0, "tax_c": 1000.0, "total_c": 6000.0, "status_c": "pending",
			"issue_date_c": "2026-07-01", "due_date_c": "2026-07-31",
			"client_id_c": 1, "project_id_c": 1},
		{"Id": 3, "invoice_number_c": "INV-2026-003", "description_c": "Brand refresh deposit",
			"amount_c": 1500.0, "tax_c": 300.0, "total_c": 1800.0, "status_c": "draft",
			"issue_date_c": "2026-08-20", "due_date_c": "2026-09-20",
			"client_id_c": 1, "project_id_c": 2},
	})
}
