package services

import (
	"context"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"projectflow/internal/models"
)

// StatsService composes the four entity services into the dashboard summary
// cards.
type StatsService struct {
	clients  *ClientService
	projects *ProjectService
	tasks    *TaskService
	invoices *InvoiceService
}

func NewStatsService(c *ClientService, p *ProjectService, t *TaskService, i *InvoiceService) *StatsService {
	return &StatsService{clients: c, projects: p, tasks: t, invoices: i}
}

var statsPrinter = message.NewPrinter(language.English)

// Dashboard fans out the four collection reads concurrently and folds them
// into the summary cards, in fixed order: revenue, clients, projects, tasks.
// If any read fails the whole aggregation fails; there are no partial
// results. Trend values are static placeholders.
func (s *StatsService) Dashboard(ctx context.Context) ([]models.DashboardStat, error) {
	var (
		clients  []models.Client
		projects []models.Project
		tasks    []models.Task
		invoices []models.Invoice
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		clients, err = s.clients.GetAll(ctx)
		return err
	})
	g.Go(func() (err error) {
		projects, err = s.projects.GetAll(ctx)
		return err
	})
	g.Go(func() (err error) {
		tasks, err = s.tasks.GetAll(ctx)
		return err
	})
	g.Go(func() (err error) {
		invoices, err = s.invoices.GetAll(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	activeClients := 0
	for _, c := range clients {
		if c.Status == models.ClientActive {
			activeClients++
		}
	}
	activeProjects := 0
	for _, p := range projects {
		if p.Status == models.ProjectInProgress {
			activeProjects++
		}
	}
	pendingTasks := 0
	for _, t := range tasks {
		if t.Status == models.TaskPending || t.Status == models.TaskInProgress {
			pendingTasks++
		}
	}
	totalRevenue := 0.0
	for _, inv := range invoices {
		if inv.Status == models.InvoicePaid {
			totalRevenue += inv.Total
		}
	}

	return []models.DashboardStat{
		{
			Title:      "Total Revenue",
			Value:      statsPrinter.Sprintf("$%v", number.Decimal(totalRevenue)),
			Icon:       "DollarSign",
			Trend:      "up",
			TrendValue: "+12.5%",
		},
		{
			Title:      "Active Clients",
			Value:      statsPrinter.Sprintf("%d", activeClients),
			Icon:       "Users",
			Trend:      "up",
			TrendValue: "+3",
		},
		{
			Title:      "Active Projects",
			Value:      statsPrinter.Sprintf("%d", activeProjects),
			Icon:       "FolderOpen",
			Trend:      "up",
			TrendValue: "+2",
		},
		{
			Title:      "Pending Tasks",
			Value:      statsPrinter.Sprintf("%d", pendingTasks),
			Icon:       "CheckSquare",
			Trend:      "down",
			TrendValue: "-5",
		},
	}, nil
}
