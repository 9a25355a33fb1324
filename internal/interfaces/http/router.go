package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fantasmadigital/nexus-erp/internal/application/auth"
	"github.com/fantasmadigital/nexus-erp/internal/application/billing"
	appkanban "github.com/fantasmadigital/nexus-erp/internal/application/kanban"
	"github.com/fantasmadigital/nexus-erp/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	SchemaUC  *usecase.SchemaUseCase
	RecordUC  *usecase.RecordUseCase
	CompanyUC *usecase.CompanyUseCase
	ClientUC  *billing.ClientUseCase
	InvoiceUC *billing.InvoiceUseCase
	PDFUC     *billing.PDFUseCase
	TaskUC    *appkanban.TaskUseCase
	JWTSecret string
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

	// Esquema dinámico (protegido)
	schema := protected.Group("/schema")
	schemaHandler := NewSchemaHandler(deps.SchemaUC)
	schema.Get("/", schemaHandler.Get)
	schema.Put("/", schemaHandler.Save)
	schema.Post("/fields", schemaHandler.AddField)
	schema.Delete("/fields/:id", schemaHandler.RemoveField)
	schema.Patch("/fields/:id", schemaHandler.RenameField)

	// Registros dinámicos: productos y traslados (protegido)
	records := protected.Group("/records")
	recordHandler := NewRecordHandler(deps.RecordUC)
	records.Post("/", recordHandler.Create)
	records.Get("/", recordHandler.List)
	records.Get("/table", recordHandler.Table)
	records.Get("/:id", recordHandler.GetByID)
	records.Put("/:id", recordHandler.Update)
	records.Delete("/:id", recordHandler.Delete)
	records.Patch("/:id/void", recordHandler.VoidTransfer)

	// Clientes (protegido, facturación)
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Resolve)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Delete("/:id", clientHandler.Delete)

	// Facturas (protegido)
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.PDFUC)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Put("/:id/items", invoiceHandler.UpdateItems)
	invoices.Patch("/:id/status", invoiceHandler.UpdateStatus)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)

	// Tablero de operaciones (protegido)
	tasks := protected.Group("/tasks")
	taskHandler := NewTaskHandler(deps.TaskUC)
	tasks.Post("/", taskHandler.Create)
	tasks.Get("/", taskHandler.List)
	tasks.Get("/:id", taskHandler.GetByID)
	tasks.Put("/:id", taskHandler.Update)
	tasks.Patch("/:id/move", taskHandler.Move)
	tasks.Delete("/:id", taskHandler.Delete)

	// Emisor (protegido)
	company := protected.Group("/company")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	company.Get("/", companyHandler.Get)
	company.Put("/", companyHandler.Save)
}
