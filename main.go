package main

import (
	"log"

	"github.com/kamarini09/ctf-app/config"
	"github.com/kamarini09/ctf-app/controllers"
	"github.com/kamarini09/ctf-app/database"
	"github.com/kamarini09/ctf-app/routes"
	"github.com/kamarini09/ctf-app/services"
	"github.com/kamarini09/ctf-app/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	utils.SetJWTSecret(cfg.JWTSecret)

	database.Connect(cfg.DSN)
	database.MigrateTables()
	database.InitRedis(cfg.RedisAddr, cfg.RedisPassword)

	services.Signer = services.NewAttachmentSigner(cfg.AttachmentSecret, cfg.PublicBaseURL)
	controllers.StorageBaseURL = cfg.StorageBaseURL

	r := routes.SetupRouter()

	log.Println("Starting server on", cfg.Listen)
	if err := r.Run(cfg.Listen); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
