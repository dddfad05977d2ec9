package main

import (
	"log"
	"time"

	"authbase/config"
	"authbase/database"
	"authbase/handlers"
	"authbase/seeds"
	"authbase/services/auth"
	"authbase/services/oauth"
	"authbase/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()

	db, err := database.Connect(cfg.DB)
	if err != nil {
		log.Fatal("Failed to connect to database. \n", err)
	}

	if err := seeds.EnsureAdmin(db, cfg.Admin.Email, cfg.Admin.Password, cfg.Admin.Name); err != nil {
		log.Println("Failed to seed admin account:", err)
	}

	store := database.NewStore(db)
	authService := auth.NewService(store, cfg.JWT)
	manager := oauth.NewManager(cfg.Oauth)
	mailer := utils.NewMailer(cfg.SMTP, cfg.ClientURL)

	h := handlers.New(cfg, store, authService, manager, mailer)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
	})

	// Security Middleware
	app.Use(helmet.New())
	app.Use(logger.New())

	// Rate Limiting (100 reqs / min)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return fiber.NewError(fiber.StatusTooManyRequests, "Too many requests, please try again later.")
		},
	}))

	// CORS
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	h.RegisterRoutes(app)

	log.Println("Starting server on :" + cfg.Port + "...")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal("Server Listen Error: ", err)
	}
}
