package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/odroffice/odr-go/config"
	"github.com/odroffice/odr-go/db"
	"github.com/odroffice/odr-go/handlers"
	"github.com/odroffice/odr-go/middleware"
	"github.com/odroffice/odr-go/repositories"
	"github.com/odroffice/odr-go/routes"
	"github.com/odroffice/odr-go/services"
	"github.com/odroffice/odr-go/storage"
)

func main() {
	config.LoadConfig()
	middleware.Init()
	db.Init()

	repos := repositories.New()

	var notify services.Notifier = services.NewWhatsAppNotifier()
	if config.WhatsAppAPIURL == "" {
		notify = services.NoopNotifier{}
	}

	svc := services.New(repos, notify)
	files := storage.NewMinioStore()
	h := handlers.New(svc, files)

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	routes.RegisterRoutes(r, h, svc.Policy)

	log.Printf("listening on :%s", config.ServerPort)
	if err := r.Run(":" + config.ServerPort); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
