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

	"github.com/fantasmadigital/nexus-erp/internal/application/auth"
	"github.com/fantasmadigital/nexus-erp/internal/application/billing"
	appkanban "github.com/fantasmadigital/nexus-erp/internal/application/kanban"
	"github.com/fantasmadigital/nexus-erp/internal/application/usecase"
	"github.com/fantasmadigital/nexus-erp/internal/domain/kanban"
	"github.com/fantasmadigital/nexus-erp/internal/infrastructure/jsonstore"
	infrapdf "github.com/fantasmadigital/nexus-erp/internal/infrastructure/pdf"
	httpRouter "github.com/fantasmadigital/nexus-erp/internal/interfaces/http"
	"github.com/fantasmadigital/nexus-erp/pkg/config"
	"github.com/fantasmadigital/nexus-erp/pkg/logger"
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
		Str("data_dir", cfg.Store.DataDir).
		Msg("iniciando aplicación")

	userRepo, err := jsonstore.NewUserRepository(cfg.Store.DataDir)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir colección de usuarios")
	}
	companyRepo, err := jsonstore.NewCompanyRepository(cfg.Store.DataDir)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir colección del emisor")
	}
	schemaRepo, err := jsonstore.NewSchemaRepository(cfg.Store.DataDir)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir colección del esquema")
	}
	recordRepo, err := jsonstore.NewRecordRepository(cfg.Store.DataDir)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir colección de registros")
	}
	clientRepo, err := jsonstore.NewClientRepository(cfg.Store.DataDir)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir colección de clientes")
	}
	invoiceRepo, err := jsonstore.NewInvoiceRepository(cfg.Store.DataDir)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir colección de facturas")
	}
	taskRepo, err := jsonstore.NewTaskRepository(cfg.Store.DataDir)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir colección de tareas")
	}

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	companyUC := usecase.NewCompanyUseCase(companyRepo)
	schemaUC := usecase.NewSchemaUseCase(schemaRepo)
	recordUC := usecase.NewRecordUseCase(recordRepo, schemaUC)
	clientUC := billing.NewClientUseCase(clientRepo)
	invoiceUC := billing.NewInvoiceUseCase(invoiceRepo, clientUC)

	// PDF: representación gráfica de la factura (DTE El Salvador)
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	pdfUC := billing.NewPDFUseCase(invoiceRepo, companyRepo, pdfGenerator)

	taskUC := appkanban.NewTaskUseCase(taskRepo, kanban.WIPLimits{
		Todo:       cfg.Kanban.WIPTodo,
		InProgress: cfg.Kanban.WIPInProgress,
		Done:       cfg.Kanban.WIPDone,
	})

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
		Title:    "Nexus ERP API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		SchemaUC:  schemaUC,
		RecordUC:  recordUC,
		CompanyUC: companyUC,
		ClientUC:  clientUC,
		InvoiceUC: invoiceUC,
		PDFUC:     pdfUC,
		TaskUC:    taskUC,
		JWTSecret: cfg.JWT.Secret,
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
