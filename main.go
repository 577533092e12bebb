package main

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/vigilbook/vigil-booking/config"
	"github.com/vigilbook/vigil-booking/controllers"
	"github.com/vigilbook/vigil-booking/cron"
	"github.com/vigilbook/vigil-booking/db"
	"github.com/vigilbook/vigil-booking/redis"
	"github.com/vigilbook/vigil-booking/routes"
	"github.com/vigilbook/vigil-booking/utils"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()

	db.Migrate()
	redis.InitRedis()
	controllers.InitEngine()
	cron.StartCronJobs()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	routes.SetupProviderRoutes(app)
	routes.SetupBookingRoutes(app)

	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
