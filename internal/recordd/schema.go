// Package recordd is the development record-storage backend: it implements
// the hosted service's wire protocol over gorm so the application can run
// end-to-end without the vendor service.
package recordd

// Stored-record schemas. Column names follow the backend convention: bare
// "id" for the identifier, "_c"-suffixed names for everything else.

type ClientRecord struct {
	ID           int     `gorm:"column:id;primaryKey"`
	Name         string  `gorm:"column:name_c"`
	Email        string  `gorm:"column:email_c"`
	Company      string  `gorm:"column:company_c"`
	Phone        string  `gorm:"column:phone_c"`
	Address      string  `gorm:"column:address_c"`
	Notes        string  `gorm:"column:notes_c"`
	Status       string  `gorm:"column:status_c"`
	JoinDate     string  `gorm:"column:join_date_c"`
	ProjectCount int     `gorm:"column:project_count_c"`
	TotalRevenue float64 `gorm:"column:total_revenue_c"`
}

func (ClientRecord) TableName() string { return "client_c" }

type ProjectRecord struct {
	ID          int     `gorm:"column:id;primaryKey"`
	Name        string  `gorm:"column:name_c"`
	Description string  `gorm:"column:description_c"`
	Category    string  `gorm:"column:category_c"`
	Status      string  `gorm:"column:status_c"`
	Priority    string  `gorm:"column:priority_c"`
	Budget      float64 `gorm:"column:budget_c"`
	Spent       float64 `gorm:"column:spent_c"`
	Progress    int     `gorm:"column:progress_c"`
	StartDate   string  `gorm:"column:start_date_c"`
	Deadline    string  `gorm:"column:deadline_c"`
	ClientID    int     `gorm:"column:client_id_c;index"`
}

func (ProjectRecord) TableName() string { return "project_c" }

type TaskRecord struct {
	ID             int     `gorm:"column:id;primaryKey"`
	Title          string  `gorm:"column:title_c"`
	Description    string  `gorm:"column:description_c"`
	Assignee       string  `gorm:"column:assignee_c"`
	Status         string  `gorm:"column:status_c"`
	Priority       string  `gorm:"column:priority_c"`
	EstimatedHours float64 `gorm:"column:estimated_hours_c"`
	ActualHours    float64 `gorm:"column:actual_hours_c"`
	DueDate        string  `gorm:"column:due_date_c"`
	CreatedDate    string  `gorm:"column:created_date_c"`
	CompletedDate  string  `gorm:"column:completed_date_c"`
	ProjectID      int     `gorm:"column:project_id_c;index"`
}

func (TaskRecord) TableName() string { return "task_c" }

type InvoiceRecord struct {
	ID            int     `gorm:"column:id;primaryKey"`
	InvoiceNumber string  `gorm:"column:invoice_number_c"`
	Description   string  `gorm:"column:description_c"`
	Amount        float64 `gorm:"column:amount_c"`
	Tax           float64 `gorm:"column:tax_c"`
	Total         float64 `gorm:"column:total_c"`
	Status        string  `gorm:"column:status_c"`
	IssueDate     string  `gorm:"column:issue_date_c"`
	DueDate       string  `gorm:"column:due_date_c"`
	PaidDate      string  `gorm:"column:paid_date_c"`
	ClientID      int     `gorm:"column:client_id_c;index"`
	ProjectID     int     `gorm:"column:project_id_c;index"`
}

func (InvoiceRecord) TableName() string { return "invoice_c" }

// tableColumns is the allow-list used to validate projections, filters, and
// payload fields before they reach SQL.
var tableColumns = map[string]map[string]bool{
	"client_c": cols("name_c", "email_c", "company_c", "phone_c", "address_c",
		"notes_c", "status_c", "join_date_c", "project_count_c", "total_revenue_c"),
	"project_c": cols("name_c", "description_c", "category_c", "status_c", "priority_c",
		"budget_c", "spent_c", "progress_c", "start_date_c", "deadline_c", "client_id_c"),
	"task_c": cols("title_c", "description_c", "assignee_c", "status_c", "priority_c",
		"estimated_hours_c", "actual_hours_c", "due_date_c", "created_date_c",
		"completed_date_c", "project_id_c"),
	"invoice_c": cols("invoice_number_c", "description_c", "amount_c", "tax_c", "total_c",
		"status_c", "issue_date_c", "due_date_c", "paid_date_c", "client_id_c", "project_id_c"),
}

// requiredFields must be non-empty on create; violations are reported per
// record inside the results array.
var requiredFields = map[string][]string{
	"client_c":  {"name_c", "email_c"},
	"project_c": {"name_c"},
	"task_c":    {"title_c"},
	"invoice_c": {"invoice_number_c"},
}

func cols(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}
