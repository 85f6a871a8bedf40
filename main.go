package main

import (
	"fmt"
	"log"

	"github.com/choihyeonji00/project-kiosk/configs"
	"github.com/choihyeonji00/project-kiosk/middlewares"
	"github.com/choihyeonji00/project-kiosk/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedAdmin(cfg); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedLookups(); err != nil {
		log.Fatalf("seed lookups failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("kiosk API running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
