package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"spareparts-backend/internal/config"
	"spareparts-backend/internal/handler"
	"spareparts-backend/internal/middleware"
	"spareparts-backend/internal/model"
	"spareparts-backend/internal/repository"
	"spareparts-backend/internal/service"
	"spareparts-backend/internal/ws"
	"spareparts-backend/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env & Config
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}
	cfg := config.Load()
	secret := []byte(cfg.JWTSecret)

	// 2. Setup Database
	db := database.ConnectDB(cfg.DatabaseDSN)
	db.AutoMigrate(
		&model.User{},
		&model.Item{},
		&model.QuantityEvent{},
		&model.Size{},
		&model.Supplier{},
		&model.LedgerTransaction{},
	)

	// 3. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 4. Dependency Injection (Wiring Layers)
	userRepo := repository.NewUserRepo(db)
	itemRepo := repository.NewItemRepo(db)
	sizeRepo := repository.NewSizeRepo(db)
	supplierRepo := repository.NewSupplierRepo(db)

	authService := service.NewAuthService(userRepo, secret)
	invService := service.NewInventoryService(itemRepo, sizeRepo, wsHub)
	supplierService := service.NewSupplierService(supplierRepo, userRepo, wsHub)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(authService)
	invHandler := handler.NewInventoryHandler(invService)
	sizeHandler := handler.NewSizeHandler(invService)
	supplierHandler := handler.NewSupplierHandler(supplierService)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Spareparts Backend v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "name": "spareparts-backend"})
	})

	// 6. Routes
	api := app.Group("/api")

	requireAuth := middleware.RequireAuth(secret)
	requireElevated := middleware.RequireElevated()

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/create-admin", authHandler.CreateAdmin)

	users := api.Group("/users")
	users.Get("/usernames", userHandler.ListUsernames) // login selector, no auth
	users.Post("/change-password", requireAuth, userHandler.ChangePassword)

	// ============ PROTECTED ROUTES ============
	// Reads need a valid token; every mutation needs admin or manager.
	inventory := api.Group("/inventory", requireAuth)
	inventory.Get("/", invHandler.GetItems)
	inventory.Get("/:id", invHandler.GetItem)
	inventory.Post("/", requireElevated, invHandler.CreateItem)
	inventory.Patch("/:id/quantity", requireElevated, invHandler.AdjustQuantity)
	inventory.Patch("/:id/price", requireElevated, invHandler.SetPrice)
	inventory.Delete("/:id", requireElevated, invHandler.DeleteItem)

	sizes := api.Group("/sizes", requireAuth)
	sizes.Get("/", sizeHandler.GetSizes)
	sizes.Post("/", requireElevated, sizeHandler.AddSize)
	sizes.Delete("/:id", requireElevated, sizeHandler.DeleteSize)

	// The supplier ledger is a privileged read as well as a privileged write.
	suppliers := api.Group("/suppliers", requireAuth, requireElevated)
	suppliers.Post("/", supplierHandler.CreateSupplier)
	suppliers.Get("/", supplierHandler.ListSuppliers)
	suppliers.Get("/:id", supplierHandler.GetSupplier)
	suppliers.Get("/:id/transactions", supplierHandler.GetTransactions)
	suppliers.Post("/:id/transactions", supplierHandler.AddTransaction)
	suppliers.Post("/:id/reset-password", supplierHandler.ResetPassword)
	suppliers.Delete("/:id", supplierHandler.DeleteSupplier)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 7. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
