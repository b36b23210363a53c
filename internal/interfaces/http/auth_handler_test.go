package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firesafepro/extintores-api/internal/application/auth"
	"github.com/firesafepro/extintores-api/internal/application/dto"
	"github.com/firesafepro/extintores-api/internal/application/usecase"
	"github.com/firesafepro/extintores-api/internal/domain/entity"
	apphttp "github.com/firesafepro/extintores-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memUserRepo struct {
	users map[string]*entity.User
}

func (f *memUserRepo) Create(u *entity.User) error { f.users[u.ID] = u; return nil }
func (f *memUserRepo) GetByID(id string) (*entity.User, error) {
	return f.users[id], nil
}
func (f *memUserRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (f *memUserRepo) GetByEmailAndCompany(email, companyID string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email && u.CompanyID == companyID {
			return u, nil
		}
	}
	return nil, nil
}
func (f *memUserRepo) ListByCompany(companyID string) ([]*entity.User, error) { return nil, nil }
func (f *memUserRepo) Update(u *entity.User) error                            { f.users[u.ID] = u; return nil }
func (f *memUserRepo) Delete(id string) error                                 { delete(f.users, id); return nil }

type memCompanyRepo struct {
	companies map[string]*entity.Company
}

func (f *memCompanyRepo) Create(c *entity.Company) error { f.companies[c.ID] = c; return nil }
func (f *memCompanyRepo) GetByID(id string) (*entity.Company, error) {
	return f.companies[id], nil
}
func (f *memCompanyRepo) GetByName(name string) (*entity.Company, error)        { return nil, nil }
func (f *memCompanyRepo) List(limit, offset int) ([]*entity.Company, error)     { return nil, nil }
func (f *memCompanyRepo) Update(c *entity.Company) error                        { f.companies[c.ID] = c; return nil }
func (f *memCompanyRepo) Delete(id string) error                                { delete(f.companies, id); return nil }
func (f *memCompanyRepo) AddCustomer(companyID, customerID string) error        { return nil }
func (f *memCompanyRepo) RemoveCustomer(companyID, customerID string) error     { return nil }

// buildAuthApp arma una app con el endpoint público de registro y la ruta de
// administración de usuarios protegida igual que en el router real.
func buildAuthApp(userRepo *memUserRepo, companyRepo *memCompanyRepo) *fiber.App {
	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     testJWTSecret,
		ExpMinutes: testExpMin,
		Issuer:     testIssuer,
	})
	userUC := usecase.NewUserUseCase(userRepo)

	app := fiber.New()
	app.Post("/api/auth/register", apphttp.NewAuthHandler(authUC).Register)
	app.Post("/api/users",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(entity.RoleCompanyAdmin),
		apphttp.NewUserHandler(userUC).Create,
	)
	return app
}

func seedCompany(companyRepo *memCompanyRepo) {
	now := time.Now()
	companyRepo.companies[testCompanyID] = &entity.Company{
		ID:        testCompanyID,
		Name:      "Extintores del Norte SAS",
		Status:    entity.CompanyActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func postJSON(t *testing.T, app *fiber.App, path string, body map[string]string, authHeader string) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Register — el registro público nunca asigna roles con privilegios
// ──────────────────────────────────────────────────────────────────────────────

// Un body con "role":"system_admin" en el registro público no escala: el
// usuario queda como company_user tanto en la respuesta como en persistencia.
func TestRegister_RolEnElBody_SeIgnoraYCreaCompanyUser(t *testing.T) {
	userRepo := &memUserRepo{users: map[string]*entity.User{}}
	companyRepo := &memCompanyRepo{companies: map[string]*entity.Company{}}
	seedCompany(companyRepo)
	app := buildAuthApp(userRepo, companyRepo)

	resp := postJSON(t, app, "/api/auth/register", map[string]string{
		"email":      "nuevo@norte.co",
		"password":   "clave-segura-123",
		"company_id": testCompanyID,
		"role":       entity.RoleSystemAdmin,
	}, "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out dto.UserResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, entity.RoleCompanyUser, out.Role,
		"el registro público siempre responde company_user")

	stored := userRepo.users[out.ID]
	require.NotNil(t, stored)
	assert.Equal(t, entity.RoleCompanyUser, stored.Role,
		"el rol persistido debe ser company_user aunque el body pida otro")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests POST /api/users — creación con rol, solo para admins
// ──────────────────────────────────────────────────────────────────────────────

func TestUserCreateEndpoint_AdminCreaCompanyAdmin(t *testing.T) {
	userRepo := &memUserRepo{users: map[string]*entity.User{}}
	companyRepo := &memCompanyRepo{companies: map[string]*entity.Company{}}
	seedCompany(companyRepo)
	app := buildAuthApp(userRepo, companyRepo)

	resp := postJSON(t, app, "/api/users", map[string]string{
		"email":    "gerente@norte.co",
		"password": "clave-segura-123",
		"role":     entity.RoleCompanyAdmin,
	}, tokenForRole(t, entity.RoleCompanyAdmin))
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out dto.UserResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, entity.RoleCompanyAdmin, out.Role)
	assert.Equal(t, testCompanyID, out.CompanyID,
		"el company_id sale del token del admin, no del body")
}

func TestUserCreateEndpoint_RolSystemAdmin_Rechazado(t *testing.T) {
	userRepo := &memUserRepo{users: map[string]*entity.User{}}
	companyRepo := &memCompanyRepo{companies: map[string]*entity.Company{}}
	seedCompany(companyRepo)
	app := buildAuthApp(userRepo, companyRepo)

	resp := postJSON(t, app, "/api/users", map[string]string{
		"email":    "intruso@norte.co",
		"password": "clave-segura-123",
		"role":     entity.RoleSystemAdmin,
	}, tokenForRole(t, entity.RoleCompanyAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, userRepo.users, "no debe crearse ningún usuario")
}

func TestUserCreateEndpoint_UsuarioComun_Bloqueado(t *testing.T) {
	userRepo := &memUserRepo{users: map[string]*entity.User{}}
	companyRepo := &memCompanyRepo{companies: map[string]*entity.Company{}}
	seedCompany(companyRepo)
	app := buildAuthApp(userRepo, companyRepo)

	resp := postJSON(t, app, "/api/users", map[string]string{
		"email":    "otro@norte.co",
		"password": "clave-segura-123",
	}, tokenForRole(t, entity.RoleCompanyUser))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Empty(t, userRepo.users)
}
