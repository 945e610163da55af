// file: main.go
package main

import (
	"log"

	"FlagCore/config"
	"FlagCore/database"
	"FlagCore/routes"
)

func main() {
	cfg := config.Load()

	database.Connect(cfg.DSN)
	database.MigrateTables()
	database.InitRedis(cfg.RedisAddr)

	r := routes.SetupRouter()

	log.Println("Starting server on " + cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
