// Package models holds the UI-facing entity types. Field names follow the UI
// convention (camelCase JSON, "Id" for the backend-assigned identifier); the
// service layer translates to and from the backend's stored-field names.
package models

// Client statuses.
const (
	ClientActive   = "active"
	ClientInactive = "inactive"
)

// Project statuses.
const (
	ProjectPlanning   = "planning"
	ProjectInProgress = "in-progress"
	ProjectCompleted  = "completed"
	ProjectOnHold     = "on-hold"
)

// Task statuses.
const (
	TaskPending    = "pending"
	TaskInProgress = "in-progress"
	TaskCompleted  = "completed"
)

// Invoice statuses.
const (
	InvoiceDraft   = "draft"
	InvoicePending = "pending"
	InvoicePaid    = "paid"
	InvoiceOverdue = "overdue"
)

// Shared priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

type Client struct {
	ID           int     `json:"Id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Company      string  `json:"company"`
	Phone        string  `json:"phone"`
	Address      string  `json:"address"`
	Notes        string  `json:"notes"`
	Status       string  `json:"status"` // active / inactive
	JoinDate     Date    `json:"joinDate"`
	ProjectCount int     `json:"projectCount"`
	TotalRevenue float64 `json:"totalRevenue"`
}

type Project struct {
	ID          int     `json:"Id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Status      string  `json:"status"`   // planning / in-progress / completed / on-hold
	Priority    string  `json:"priority"` // low / medium / high
	Budget      float64 `json:"budget"`
	Spent       float64 `json:"spent"`
	Progress    int     `json:"progress"` // 0..100
	StartDate   Date    `json:"startDate"`
	Deadline    Date    `json:"deadline"`
	ClientID    int     `json:"clientId"`
}

type Task struct {
	ID             int     `json:"Id"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	Assignee       string  `json:"assignee"`
	Status         string  `json:"status"`   // pending / in-progress / completed
	Priority       string  `json:"priority"` // low / medium / high
	EstimatedHours float64 `json:"estimatedHours"`
	ActualHours    float64 `json:"actualHours"`
	DueDate        Date    `json:"dueDate"`
	CreatedDate    Date    `json:"createdDate"`
	CompletedDate  Date    `json:"completedDate,omitempty"`
	ProjectID      int     `json:"projectId,omitempty"`
}

type Invoice struct {
	ID            int     `json:"Id"`
	InvoiceNumber string  `json:"invoiceNumber"`
	Description   string  `json:"description"`
	Amount        float64 `json:"amount"`
	Tax           float64 `json:"tax"`
	Total         float64 `json:"total"`  // amount + tax at creation time
	Status        string  `json:"status"` // draft / pending / paid / overdue
	IssueDate     Date    `json:"issueDate"`
	DueDate       Date    `json:"dueDate"`
	PaidDate      Date    `json:"paidDate,omitempty"`
	ClientID      int     `json:"clientId"`
	ProjectID     int     `json:"projectId,omitempty"`
}

// ClientStats are the per-client detail metrics shown on the client page.
type ClientStats struct {
	TotalProjects  int     `json:"totalProjects"`
	ActiveProjects int     `json:"activeProjects"`
	TotalRevenue   float64 `json:"totalRevenue"`
}

// DashboardStat is one summary card. Trend and TrendValue are static
// placeholders; there is no historical snapshot to compute them from.
type DashboardStat struct {
	Title      string `json:"title"`
	Value      string `json:"value"`
	Icon       string `json:"icon"`
	Trend      string `json:"trend"`
	TrendValue string `json:"trendValue"`
}
