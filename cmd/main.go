package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"inventory/config"
	"inventory/controllers"
	"inventory/database"
	"inventory/routes"
	"inventory/services"
	"inventory/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config: ", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := database.Connect(ctx, cfg.MongoURI, cfg.DBName)
	if err != nil {
		log.Fatal("database: ", err)
	}
	log.Println("connected to MongoDB")

	documents := store.New(db)
	productService := services.NewProductService(documents)
	credentialStore := services.NewCredentialStore(cfg.Admins)
	tokenService := services.NewTokenService(cfg.JWTSecret, cfg.TokenExpiry)

	authController := controllers.NewAuthController(credentialStore, tokenService)
	productController := controllers.NewProductController(productService)

	r := gin.Default()
	r.SetTrustedProxies(nil)
	routes.Register(r, authController, productController, tokenService)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("server: ", err)
	}
}
