package testutils

import (
	"github.com/gin-gonic/gin"
	"github.com/odroffice/odr-go/handlers"
	"github.com/odroffice/odr-go/repositories"
	"github.com/odroffice/odr-go/routes"
	"github.com/odroffice/odr-go/services"
	"github.com/odroffice/odr-go/storage"
)

// SetupRouter wires a full test stack over whatever database has been
// initialized, with notifications disabled and file storage stubbed.
func SetupRouter(files storage.FileStore) *gin.Engine {
	gin.SetMode(gin.TestMode)

	repos := repositories.New()
	svc := services.New(repos, services.NoopNotifier{})
	h := handlers.New(svc, files)

	r := gin.New()
	routes.RegisterRoutes(r, h, svc.Policy)
	return r
}
