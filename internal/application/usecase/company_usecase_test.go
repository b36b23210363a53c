package usecase_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firesafepro/extintores-api/internal/application/dto"
	"github.com/firesafepro/extintores-api/internal/application/usecase"
	"github.com/firesafepro/extintores-api/internal/domain"
	"github.com/firesafepro/extintores-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeCompanyRepo struct {
	companies map[string]*entity.Company
}

func (f *fakeCompanyRepo) Create(c *entity.Company) error { f.companies[c.ID] = c; return nil }
func (f *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	return f.companies[id], nil
}
func (f *fakeCompanyRepo) GetByName(name string) (*entity.Company, error) {
	for _, c := range f.companies {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, nil
}
func (f *fakeCompanyRepo) List(limit, offset int) ([]*entity.Company, error) { return nil, nil }
func (f *fakeCompanyRepo) Update(c *entity.Company) error                    { f.companies[c.ID] = c; return nil }
func (f *fakeCompanyRepo) Delete(id string) error                            { delete(f.companies, id); return nil }
func (f *fakeCompanyRepo) AddCustomer(companyID, customerID string) error    { return nil }
func (f *fakeCompanyRepo) RemoveCustomer(companyID, customerID string) error { return nil }

func newCompanyFixture() (*usecase.CompanyUseCase, *fakeCompanyRepo, string) {
	companyRepo := &fakeCompanyRepo{companies: map[string]*entity.Company{}}
	customerRepo := &fakeCustomerRepo{customers: map[string]*entity.Customer{}}

	id := uuid.New().String()
	now := time.Now()
	companyRepo.companies[id] = &entity.Company{
		ID:        id,
		Name:      "Extintores del Norte SAS",
		Status:    entity.CompanyActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return usecase.NewCompanyUseCase(companyRepo, customerRepo), companyRepo, id
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Update — estados de empresa
// ──────────────────────────────────────────────────────────────────────────────

// Los tres estados documentados deben aceptarse en la actualización.
func TestCompanyUpdate_EstadosValidos_Aceptados(t *testing.T) {
	uc, repo, id := newCompanyFixture()

	for _, status := range []string{entity.CompanySuspended, entity.CompanyInactive, entity.CompanyActive} {
		out, err := uc.Update(id, dto.UpdateCompanyRequest{Status: &status})
		require.NoError(t, err, "el estado %q es válido y debe aceptarse", status)
		assert.Equal(t, status, out.Status)
		assert.Equal(t, status, repo.companies[id].Status, "el estado debe persistirse")
	}
}

// Un estado fuera del conjunto documentado se rechaza antes de tocar la base.
func TestCompanyUpdate_EstadoInvalido_Rechazado(t *testing.T) {
	uc, repo, id := newCompanyFixture()

	status := "archived"
	_, err := uc.Update(id, dto.UpdateCompanyRequest{Status: &status})
	assert.Equal(t, domain.ErrInvalidInput, err)
	assert.Equal(t, entity.CompanyActive, repo.companies[id].Status,
		"un estado inválido no debe modificar la empresa")
}
