package catalog

import (
	"context"
	"testing"

	"agendapro/models"
	"agendapro/utils"

	"github.com/google/uuid"
)

type fakeServiceStore struct {
	services []models.Service
}

func (f *fakeServiceStore) Create(_ context.Context, svc *models.Service) error {
	svc.ID = uuid.New().String()
	f.services = append(f.services, *svc)
	return nil
}

func (f *fakeServiceStore) GetByID(_ context.Context, serviceID string) (*models.Service, error) {
	for i := range f.services {
		if f.services[i].ID == serviceID {
			svc := f.services[i]
			return &svc, nil
		}
	}
	return nil, utils.NotFoundError("service not found")
}

func (f *fakeServiceStore) ListByProfessional(_ context.Context, professionalID string) ([]models.Service, error) {
	var out []models.Service
	for _, s := range f.services {
		if s.ProfessionalID == professionalID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeServiceStore) ListActive(_ context.Context, professionalID string) ([]models.Service, error) {
	var out []models.Service
	for _, s := range f.services {
		if s.ProfessionalID == professionalID && s.IsActive {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeServiceStore) Update(_ context.Context, _ string, svc *models.Service) error {
	for i := range f.services {
		if f.services[i].ID == svc.ID {
			f.services[i] = *svc
			return nil
		}
	}
	return utils.NotFoundError("service not found")
}

func (f *fakeServiceStore) Delete(_ context.Context, _, serviceID string) error {
	for i := range f.services {
		if f.services[i].ID == serviceID {
			f.services = append(f.services[:i], f.services[i+1:]...)
			return nil
		}
	}
	return utils.NotFoundError("service not found")
}

func ptr[T any](v T) *T { return &v }

func TestCreateValidation(t *testing.T) {
	svc := &DefaultCatalogService{Repo: &fakeServiceStore{}}
	ctx := context.Background()

	if _, err := svc.Create(ctx, "prof-1", models.ServiceCreate{Name: "Tutoring", DurationMinutes: 0}); utils.ErrorCode(err) != utils.CodeValidation {
		t.Errorf("zero duration: expected validation error, got %v", err)
	}
	if _, err := svc.Create(ctx, "prof-1", models.ServiceCreate{Name: "Tutoring", DurationMinutes: 60, Price: -5}); utils.ErrorCode(err) != utils.CodeValidation {
		t.Errorf("negative price: expected validation error, got %v", err)
	}

	created, err := svc.Create(ctx, "prof-1", models.ServiceCreate{Name: "Tutoring", DurationMinutes: 60, Price: 40})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !created.IsActive {
		t.Error("new services start active")
	}
}

func TestGetScopedToOwner(t *testing.T) {
	store := &fakeServiceStore{}
	svc := &DefaultCatalogService{Repo: store}
	ctx := context.Background()

	created, err := svc.Create(ctx, "prof-1", models.ServiceCreate{Name: "Tutoring", DurationMinutes: 60})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.Get(ctx, "prof-2", created.ID); utils.ErrorCode(err) != utils.CodeNotFound {
		t.Fatalf("another professional's service must read as not found, got %v", err)
	}
	if _, err := svc.Get(ctx, "prof-1", created.ID); err != nil {
		t.Fatalf("owner lookup: %v", err)
	}
}

func TestUpdateAppliesOnlyProvidedFields(t *testing.T) {
	store := &fakeServiceStore{}
	svc := &DefaultCatalogService{Repo: store}
	ctx := context.Background()

	created, err := svc.Create(ctx, "prof-1", models.ServiceCreate{
		Name: "Tutoring", Description: "1:1 math", DurationMinutes: 60, Price: 40,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.Update(ctx, "prof-1", created.ID, models.ServiceUpdate{Price: ptr(55.0)})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Price != 55 {
		t.Errorf("price = %v, want 55", updated.Price)
	}
	if updated.Name != "Tutoring" || updated.DurationMinutes != 60 || updated.Description != "1:1 math" {
		t.Error("omitted fields must keep their stored values")
	}

	if _, err := svc.Update(ctx, "prof-1", created.ID, models.ServiceUpdate{DurationMinutes: ptr(-10)}); utils.ErrorCode(err) != utils.CodeValidation {
		t.Errorf("negative duration update: expected validation error, got %v", err)
	}
}

func TestListPublicFiltersInactive(t *testing.T) {
	store := &fakeServiceStore{}
	svc := &DefaultCatalogService{Repo: store}
	ctx := context.Background()

	a, err := svc.Create(ctx, "prof-1", models.ServiceCreate{Name: "Active", DurationMinutes: 30})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	b, err := svc.Create(ctx, "prof-1", models.ServiceCreate{Name: "Hidden", DurationMinutes: 30})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Update(ctx, "prof-1", b.ID, models.ServiceUpdate{IsActive: ptr(false)}); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	public, err := svc.ListPublic(ctx, "prof-1")
	if err != nil {
		t.Fatalf("ListPublic: %v", err)
	}
	if len(public) != 1 || public[0].ID != a.ID {
		t.Fatalf("public list must contain only the active service, got %v", public)
	}
}
