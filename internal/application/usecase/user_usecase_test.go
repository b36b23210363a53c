package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/firesafepro/extintores-api/internal/application/dto"
	"github.com/firesafepro/extintores-api/internal/application/usecase"
	"github.com/firesafepro/extintores-api/internal/domain"
	"github.com/firesafepro/extintores-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User
}

func (f *fakeUserRepo) Create(u *entity.User) error { f.users[u.ID] = u; return nil }
func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	return f.users[id], nil
}
func (f *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (f *fakeUserRepo) GetByEmailAndCompany(email, companyID string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email && u.CompanyID == companyID {
			return u, nil
		}
	}
	return nil, nil
}
func (f *fakeUserRepo) ListByCompany(companyID string) ([]*entity.User, error) { return nil, nil }
func (f *fakeUserRepo) Update(u *entity.User) error                            { f.users[u.ID] = u; return nil }
func (f *fakeUserRepo) Delete(id string) error                                 { delete(f.users, id); return nil }

const testAdminCompanyID = "11111111-1111-1111-1111-111111111111"

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create — asignación de roles desde administración
// ──────────────────────────────────────────────────────────────────────────────

// Sin rol en el request se crea un company_user de la empresa del admin.
func TestUserCreate_RolPorDefecto_CompanyUser(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*entity.User{}}
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.Create(testAdminCompanyID, dto.CreateUserRequest{
		Email:    "tecnico@norte.co",
		Password: "clave-segura-123",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCompanyUser, out.Role)
	assert.Equal(t, testAdminCompanyID, out.CompanyID, "el usuario pertenece a la empresa del admin")

	stored := repo.users[out.ID]
	require.NotNil(t, stored)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("clave-segura-123")),
		"el password debe persistirse hasheado con bcrypt")
}

// Un admin puede crear otro company_admin de su empresa.
func TestUserCreate_RolCompanyAdmin_Aceptado(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*entity.User{}}
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.Create(testAdminCompanyID, dto.CreateUserRequest{
		Email:    "gerente@norte.co",
		Password: "clave-segura-123",
		Role:     entity.RoleCompanyAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCompanyAdmin, out.Role)
}

// system_admin no se asigna por API: se rechaza y no se persiste nada.
func TestUserCreate_RolSystemAdmin_Rechazado(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*entity.User{}}
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.Create(testAdminCompanyID, dto.CreateUserRequest{
		Email:    "intruso@norte.co",
		Password: "clave-segura-123",
		Role:     entity.RoleSystemAdmin,
	})
	assert.Equal(t, domain.ErrInvalidInput, err)
	assert.Empty(t, repo.users, "no debe persistirse ningún usuario")
}

// Email repetido dentro de la misma empresa → conflicto.
func TestUserCreate_EmailDuplicadoEnEmpresa_Conflicto(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*entity.User{}}
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.Create(testAdminCompanyID, dto.CreateUserRequest{
		Email:    "tecnico@norte.co",
		Password: "clave-segura-123",
	})
	require.NoError(t, err)

	_, err = uc.Create(testAdminCompanyID, dto.CreateUserRequest{
		Email:    "tecnico@norte.co",
		Password: "otra-clave-456",
	})
	assert.Equal(t, domain.ErrEmailAlreadyExists, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Update — el rol tampoco escala por actualización
// ──────────────────────────────────────────────────────────────────────────────

func TestUserUpdate_RolSystemAdmin_Rechazado(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*entity.User{}}
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.Create(testAdminCompanyID, dto.CreateUserRequest{
		Email:    "tecnico@norte.co",
		Password: "clave-segura-123",
	})
	require.NoError(t, err)

	role := entity.RoleSystemAdmin
	_, err = uc.Update(out.ID, dto.UpdateUserRequest{Role: &role})
	assert.Equal(t, domain.ErrInvalidInput, err)
	assert.Equal(t, entity.RoleCompanyUser, repo.users[out.ID].Role,
		"el rol persistido no debe cambiar tras un intento de escalada")
}
