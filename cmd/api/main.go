package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"seni-kraf-manik/internal/config"
	"seni-kraf-manik/internal/handler"
	"seni-kraf-manik/internal/service"
	"seni-kraf-manik/internal/ws"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	// 1. Load Env
	cfg := config.Load()

	// 2. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 3. Catalog store (CSV or Postgres table + image directory)
	catalog, err := service.NewFromConfig(cfg, wsHub)
	if err != nil {
		log.Fatal("Failed to open catalog: ", err)
	}
	log.Printf("Catalog backend: %s, data dir: %s", cfg.Backend, cfg.DataDir)

	// 4. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName:   "Seni Kraf Manik PPKI v1.0",
		BodyLimit: 50 << 20,
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 5. Routes
	handler.Setup(app, catalog)

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

	// 6. Graceful Shutdown
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
