package services

import (
	"context"

	"projectflow/internal/models"
	"projectflow/internal/record"
)

var clientFields = []string{
	"name_c", "email_c", "company_c", "phone_c", "address_c", "notes_c",
	"status_c", "join_date_c", "project_count_c", "total_revenue_c",
}

// ClientService is the client entity service.
type ClientService struct {
	base
}

func NewClientService(d Deps) *ClientService { return &ClientService{base: newBase(d)} }

// ClientInput carries the caller-provided fields for Create. Required-field
// and format validation happens in the caller, not here.
type ClientInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

// ClientUpdate is a partial update: nil fields are left unchanged.
type ClientUpdate struct {
	Name         *string      `json:"name"`
	Email        *string      `json:"email"`
	Company      *string      `json:"company"`
	Phone        *string      `json:"phone"`
	Address      *string      `json:"address"`
	Notes        *string      `json:"notes"`
	Status       *string      `json:"status"`
	JoinDate     *models.Date `json:"joinDate"`
	ProjectCount *int         `json:"projectCount"`
	TotalRevenue *float64     `json:"totalRevenue"`
}

func (s *ClientService) GetAll(ctx context.Context) ([]models.Client, error) {
	if err := s.pause(ctx); err != nil {
		return nil, err
	}
	raws, err := s.store.FetchRecords(ctx, record.TableClients, record.QueryParams{Fields: clientFields})
	if err != nil {
		return nil, s.fail("fetch", "client", err)
	}
	clients := make([]models.Client, 0, len(raws))
	for _, r := range raws {
		clients = append(clients, clientFromRaw(r))
	}
	return clients, nil
}

func (s *ClientService) GetByID(ctx context.Context, id int) (models.Client, error) {
	if err := s.pause(ctx); err != nil {
		return models.Client{}, err
	}
	raw, err := s.store.GetRecordByID(ctx, record.TableClients, id, record.QueryParams{Fields: clientFields})
	if err != nil {
		return models.Client{}, s.fail("get", "client", err)
	}
	return clientFromRaw(raw), nil
}

func (s *ClientService) Create(ctx context.Context, in ClientInput) (models.Client, error) {
	if err := s.pause(ctx); err != nil {
		return models.Client{}, err
	}
	fields := record.Raw{
		"name_c":          in.Name,
		"email_c":         in.Email,
		"company_c":       in.Company,
		"phone_c":         in.Phone,
		"address_c":       in.Address,
		"notes_c":         in.Notes,
		"status_c":        models.ClientActive,
		"join_date_c":     string(models.Today()),
		"project_count_c": 0,
		"total_revenue_c": 0.0,
	}
	raw, err := s.store.CreateRecord(ctx, record.TableClients, fields)
	if err != nil {
		return models.Client{}, s.fail("create", "client", err)
	}
	s.notifier.Success("Client created successfully")
	return clientFromRaw(raw), nil
}

func (s *ClientService) Update(ctx context.Context, id int, upd ClientUpdate) (models.Client, error) {
	if err := s.pause(ctx); err != nil {
		return models.Client{}, err
	}
	fields := record.Raw{}
	setString(fields, "name_c", upd.Name)
	setString(fields, "email_c", upd.Email)
	setString(fields, "company_c", upd.Company)
	setString(fields, "phone_c", upd.Phone)
	setString(fields, "address_c", upd.Address)
	setString(fields, "notes_c", upd.Notes)
	setString(fields, "status_c", upd.Status)
	setDate(fields, "join_date_c", upd.JoinDate)
	setInt(fields, "project_count_c", upd.ProjectCount)
	setFloat(fields, "total_revenue_c", upd.TotalRevenue)
	raw, err := s.store.UpdateRecord(ctx, record.TableClients, id, fields)
	if err != nil {
		return models.Client{}, s.fail("update", "client", err)
	}
	s.notifier.Success("Client updated successfully")
	return clientFromRaw(raw), nil
}

func (s *ClientService) Delete(ctx context.Context, id int) error {
	if err := s.pause(ctx); err != nil {
		return err
	}
	if err := s.store.DeleteRecord(ctx, record.TableClients, id); err != nil {
		return s.fail("delete", "client", err)
	}
	s.notifier.Success("Client deleted successfully")
	return nil
}

// Stats computes the client-detail metrics from the client's projects:
// total count, active count (in-progress or planning), and revenue as the
// sum of project budgets.
func (s *ClientService) Stats(ctx context.Context, id int) (models.ClientStats, error) {
	if err := s.pause(ctx); err != nil {
		return models.ClientStats{}, err
	}
	if _, err := s.store.GetRecordByID(ctx, record.TableClients, id, record.QueryParams{Fields: []string{"name_c"}}); err != nil {
		return models.ClientStats{}, s.fail("get", "client", err)
	}
	raws, err := s.store.FetchRecords(ctx, record.TableProjects, record.QueryParams{
		Fields: projectFields,
		Where:  []record.Where{{Field: "client_id_c", Value: id}},
	})
	if err != nil {
		return models.ClientStats{}, s.fail("fetch", "project", err)
	}
	var stats models.ClientStats
	for _, r := range raws {
		p := projectFromRaw(r)
		stats.TotalProjects++
		if p.Status == models.ProjectInProgress || p.Status == models.ProjectPlanning {
			stats.ActiveProjects++
		}
		stats.TotalRevenue += p.Budget
	}
	return stats, nil
}

func clientFromRaw(r record.Raw) models.Client {
	return models.Client{
		ID:           record.AsInt(r["Id"]),
		Name:         record.AsString(r["name_c"]),
		Email:        record.AsString(r["email_c"]),
		Company:      record.AsString(r["company_c"]),
		Phone:        record.AsString(r["phone_c"]),
		Address:      record.AsString(r["address_c"]),
		Notes:        record.AsString(r["notes_c"]),
		Status:       record.AsString(r["status_c"]),
		JoinDate:     models.Date(record.AsString(r["join_date_c"])),
		ProjectCount: record.AsInt(r["project_count_c"]),
		TotalRevenue: record.AsFloat(r["total_revenue_c"]),
	}
}
