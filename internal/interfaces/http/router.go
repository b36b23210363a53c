package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/firesafepro/extintores-api/internal/application/auth"
	appcalendar "github.com/firesafepro/extintores-api/internal/application/calendar"
	appreport "github.com/firesafepro/extintores-api/internal/application/report"
	"github.com/firesafepro/extintores-api/internal/application/usecase"
	"github.com/firesafepro/extintores-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	CompanyUC      *usecase.CompanyUseCase
	CustomerUC     *usecase.CustomerUseCase
	AddressUC      *usecase.AddressUseCase
	ExtinguisherUC *usecase.ExtinguisherUseCase
	OrderUC        *usecase.OrderUseCase
	OrderPDFUC     *usecase.OrderPDFUseCase
	ScheduleUC     *usecase.ScheduleUseCase
	UserUC         *usecase.UserUseCase
	CalendarUC     *appcalendar.CalendarUseCase
	ReportUC       *appreport.ReportUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleCompanyAdmin)

	// Companies (protegido; escritura solo admins)
	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	calendarHandler := NewCalendarHandler(deps.CalendarUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", adminOnly, companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", adminOnly, companyHandler.Update)
	companies.Delete("/:id", adminOnly, companyHandler.Delete)
	companies.Get("/:id/customers", customerHandler.ListByCompany)
	companies.Post("/:id/customers/:customerID", adminOnly, companyHandler.AddCustomer)
	companies.Delete("/:id/customers/:customerID", adminOnly, companyHandler.RemoveCustomer)
	companies.Get("/:id/calendar", calendarHandler.CompanyCalendar)

	// Customers (protegido)
	customers := protected.Group("/customers")
	orderHandler := NewOrderHandler(deps.OrderUC, deps.OrderPDFUC)
	scheduleHandler := NewScheduleHandler(deps.ScheduleUC)
	reportHandler := NewReportHandler(deps.ReportUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", adminOnly, customerHandler.Delete)
	customers.Get("/:id/orders", orderHandler.ListByCustomer)
	customers.Get("/:id/schedules", scheduleHandler.ListByCustomer)
	customers.Get("/:id/calendar", calendarHandler.CustomerCalendar)
	customers.Get("/:id/extinguisher-totals", reportHandler.ExtinguisherTotals)

	// Addresses (protegido)
	addresses := protected.Group("/addresses")
	addressHandler := NewAddressHandler(deps.AddressUC)
	addresses.Post("/", addressHandler.Create)
	addresses.Get("/", addressHandler.List)
	addresses.Get("/:id", addressHandler.GetByID)
	addresses.Put("/:id", addressHandler.Update)
	addresses.Delete("/:id", addressHandler.Delete)

	// Fire extinguishers (protegido; escritura solo admins)
	extinguishers := protected.Group("/extinguishers")
	extinguisherHandler := NewExtinguisherHandler(deps.ExtinguisherUC)
	extinguishers.Get("/", extinguisherHandler.List)
	extinguishers.Post("/", adminOnly, extinguisherHandler.Create)
	extinguishers.Get("/:id", extinguisherHandler.GetByID)
	extinguishers.Put("/:id", adminOnly, extinguisherHandler.Update)
	extinguishers.Delete("/:id", adminOnly, extinguisherHandler.Delete)

	// Orders (protegido)
	orders := protected.Group("/orders")
	orders.Post("/", orderHandler.Create)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Patch("/:id/status", orderHandler.UpdateStatus)
	orders.Get("/:id/pdf", orderHandler.DownloadPDF)

	// Service schedules (protegido)
	schedules := protected.Group("/schedules")
	schedules.Post("/", scheduleHandler.Create)
	schedules.Get("/:id", scheduleHandler.GetByID)
	schedules.Put("/:id", scheduleHandler.Update)
	schedules.Delete("/:id", scheduleHandler.Delete)

	// Reports (protegido)
	reports := protected.Group("/reports")
	reports.Get("/projected-sales", reportHandler.ProjectedSales)

	// Users (protegido; solo admins)
	users := protected.Group("/users", adminOnly)
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)
}
