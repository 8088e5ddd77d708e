package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/erginhw/pos-api/internal/application/auth"
	"github.com/erginhw/pos-api/internal/application/inventory"
	"github.com/erginhw/pos-api/internal/application/reports"
	"github.com/erginhw/pos-api/internal/application/sales"
	"github.com/erginhw/pos-api/internal/application/usecase"
	"github.com/erginhw/pos-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	SaleUC     *sales.SaleUseCase
	RestockUC  *inventory.RestockUseCase
	ReportUC   *reports.ReportUseCase
	ProductUC  *usecase.ProductUseCase
	ClientUC   *usecase.ClientUseCase
	SupplierUC *usecase.SupplierUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Login (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Ventas (protegido)
	saleHandler := NewSaleHandler(deps.SaleUC)
	protected.Post("/sales", saleHandler.Create)
	protected.Get("/sales/:id", saleHandler.GetReceipt)
	protected.Get("/sales/:id/pdf", saleHandler.GetReceiptPDF)
	protected.Get("/sales-record", saleHandler.ListSales)

	// Reabastecimientos (protegido)
	restockHandler := NewRestockHandler(deps.RestockUC)
	protected.Post("/restock", restockHandler.Create)
	protected.Get("/restock/:id", restockHandler.GetByID)

	// Dashboard y reportes (protegido)
	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Get("/dashboard", reportHandler.Dashboard)
	protected.Get("/reports/sales", reportHandler.SalesReport)

	// Inventario / productos (protegido)
	productHandler := NewProductHandler(deps.ProductUC)
	protected.Get("/inventory", productHandler.List)
	protected.Post("/product", productHandler.Create)
	protected.Delete("/inventory/:id", productHandler.Delete)

	// Clientes (protegido)
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)

	// Proveedores (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)

	// Empleados (solo Admin)
	employees := protected.Group("/employees", RequireRole(entity.RoleAdmin))
	employeeHandler := NewEmployeeHandler(deps.AuthUC)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
}
