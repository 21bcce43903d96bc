package main

import (
	"os"
	"os/signal"
	"syscall"

	"go-pos-backend/internal/cache"
	"go-pos-backend/internal/codegen"
	"go-pos-backend/internal/handler"
	"go-pos-backend/internal/model"
	"go-pos-backend/internal/repository"
	"go-pos-backend/internal/service"
	"go-pos-backend/internal/ws"
	"go-pos-backend/pkg/database"
	"go-pos-backend/pkg/logger"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, relying on system env")
	}
	logger.Setup()

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(
		&model.Category{},
		&model.Item{},
		&model.InventoryRecord{},
		&model.Invoice{},
		&model.InvoiceLine{},
	)

	// 3. Seed default catalog data
	seedCatalog(db)

	// 4. Optional Redis cache for immutable invoice reads
	redisClient, err := cache.InitRedis()
	if err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, invoice caching disabled")
	}
	invoiceCache := cache.NewInvoiceCache(redisClient)

	// 5. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 6. Dependency Injection (Wiring Layers)
	itemRepo := repository.NewItemRepo(db)
	inventoryRepo := repository.NewInventoryRepo(db)
	invoiceRepo := repository.NewInvoiceRepo(db)

	saleService := service.NewSaleService(itemRepo, invoiceRepo, inventoryRepo, db, wsHub, invoiceCache)
	inventoryService := service.NewInventoryService(inventoryRepo, itemRepo, wsHub)

	saleHandler := handler.NewSaleHandler(saleService)
	inventoryHandler := handler.NewInventoryHandler(inventoryService)

	// 7. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "POS Sales Backend v1.0",
	})

	// Middleware
	app.Use(fiberlogger.New()) // Logging request
	app.Use(recover.New())     // Panic recovery
	app.Use(cors.New())        // CORS

	// 8. Routes
	api := app.Group("/api/v1")

	// Sales
	api.Post("/sales", saleHandler.CreateSale)
	api.Get("/sales/:id", saleHandler.GetInvoice)

	// Inventory record access
	api.Get("/inventory", inventoryHandler.GetInventory)
	api.Post("/inventory", inventoryHandler.CreateInventory)
	api.Put("/inventory/:id", inventoryHandler.UpdateInventory)
	api.Delete("/inventory/:id", inventoryHandler.DeleteInventory)

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

	// 9. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// seedCatalog makes sure a default category and a sample item exist on an
// empty database. Codes are issued through the generic code generator from
// the last persisted code of each sequence.
func seedCatalog(db *gorm.DB) {
	categoryRepo := repository.NewCategoryRepo(db)
	itemRepo := repository.NewItemRepo(db)
	inventoryRepo := repository.NewInventoryRepo(db)

	category, err := categoryRepo.FindByName("General")
	if err != nil {
		lastCode, err := categoryRepo.LastCode()
		if err != nil {
			log.Warn().Err(err).Msg("Failed to read last category code, skipping seed")
			return
		}

		code, err := codegen.Next(codegen.CategoryPrefix, lastCode, codegen.CategoryWidth)
		if err != nil {
			// Unparsable last code: refuse to issue anything rather
			// than restart the sequence and collide.
			log.Error().Err(err).Msg("Category code sequence is corrupt, skipping seed")
			return
		}

		category = &model.Category{
			CategoryCode: code,
			CategoryName: "General",
			Description:  "Default category",
		}
		category.CreatedBy = "system"
		category.UpdatedBy = "system"

		if err := categoryRepo.Create(category); err != nil {
			log.Warn().Err(err).Msg("Failed to seed default category")
			return
		}
		log.Info().Str("code", code).Msg("✅ Default category created")
	}

	// Sample stock item, only on a completely empty catalog
	lastItemCode, err := itemRepo.LastCode()
	if err != nil || lastItemCode != "" {
		return
	}

	itemCode, err := codegen.Next(codegen.ItemPrefix, lastItemCode, codegen.ItemWidth)
	if err != nil {
		log.Error().Err(err).Msg("Item code sequence is corrupt, skipping seed")
		return
	}

	item := &model.Item{
		ItemCode:     itemCode,
		ItemName:     "Sample Item",
		CategoryID:   &category.ID,
		SellingPrice: 100,
		IsStockItem:  true,
		Status:       model.ItemActive,
	}
	item.CreatedBy = "system"
	item.UpdatedBy = "system"

	if err := itemRepo.Create(item); err != nil {
		log.Warn().Err(err).Msg("Failed to seed sample item")
		return
	}

	// Stock items always get an inventory record
	if err := inventoryRepo.Create(&model.InventoryRecord{ItemCode: itemCode, ReorderLevel: 10}); err != nil {
		log.Warn().Err(err).Msg("Failed to seed inventory record")
		return
	}
	log.Info().Str("code", itemCode).Msg("✅ Sample item created")
}
