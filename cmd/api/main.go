package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/firesafepro/extintores-api/docs"
	"github.com/firesafepro/extintores-api/internal/application/auth"
	appcalendar "github.com/firesafepro/extintores-api/internal/application/calendar"
	appreport "github.com/firesafepro/extintores-api/internal/application/report"
	"github.com/firesafepro/extintores-api/internal/application/usecase"
	infrapdf "github.com/firesafepro/extintores-api/internal/infrastructure/pdf"
	"github.com/firesafepro/extintores-api/internal/infrastructure/postgres"
	httpRouter "github.com/firesafepro/extintores-api/internal/interfaces/http"
	"github.com/firesafepro/extintores-api/pkg/config"
	"github.com/firesafepro/extintores-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	addressRepo := postgres.NewAddressRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	extinguisherRepo := postgres.NewExtinguisherRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	scheduleRepo := postgres.NewScheduleRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	companyUC := usecase.NewCompanyUseCase(companyRepo, customerRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo, txRunner)
	addressUC := usecase.NewAddressUseCase(addressRepo)
	extinguisherUC := usecase.NewExtinguisherUseCase(extinguisherRepo)
	orderUC := usecase.NewOrderUseCase(orderRepo, customerRepo, txRunner)
	scheduleUC := usecase.NewScheduleUseCase(scheduleRepo, customerRepo, extinguisherRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	calendarUC := appcalendar.NewCalendarUseCase(companyRepo, customerRepo, scheduleRepo, extinguisherRepo)
	reportUC := appreport.NewReportUseCase(customerRepo, orderRepo, reportRepo)

	// PDF: resumen imprimible del pedido
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	orderPDFUC := usecase.NewOrderPDFUseCase(orderRepo, customerRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Extintores API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		CompanyUC:      companyUC,
		CustomerUC:     customerUC,
		AddressUC:      addressUC,
		ExtinguisherUC: extinguisherUC,
		OrderUC:        orderUC,
		OrderPDFUC:     orderPDFUC,
		ScheduleUC:     scheduleUC,
		UserUC:         userUC,
		CalendarUC:     calendarUC,
		ReportUC:       reportUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
