package main

import (
	"log"
	"olympic_ticketing/config"
	"olympic_ticketing/database"
	"olympic_ticketing/helper"
	"olympic_ticketing/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:5173",
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	database.ConnectDB()
	database.ConnectRedis()

	helper.Carts = &helper.RedisCartStore{Client: database.Redis}
	helper.Store = helper.InitCloudinary()

	router.SetupRoutes(app)

	port := config.Config("APP_PORT")
	if port == "" {
		port = "8000"
	}
	log.Fatal(app.Listen(":" + port))
}
