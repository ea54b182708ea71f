package routes

import (
	"github.com/gin-contrib/cors"
	ginlogger "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"safari_tours/internal/controllers"
	"safari_tours/internal/middleware"
	"safari_tours/internal/session"
	"safari_tours/internal/storage"
)

type Deps struct {
	Store     storage.Store
	Sessions  *session.Manager
	Auth      *controllers.AuthController
	UploadDir string
}

func SetupRouter(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ginlogger.SetLogger())
	r.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	r.MaxMultipartMemory = 8 << 20

	public := r.Group("/api")
	admin := r.Group("/api")
	admin.Use(middleware.RequireAdmin(deps.Sessions))

	AuthRoutes(public, deps.Auth)
	UploadRoutes(public, controllers.NewUploadController(deps.UploadDir))
	VehicleRoutes(public, admin, controllers.NewVehicleController(deps.Store))
	PackageRoutes(public, admin, controllers.NewPackageController(deps.Store))
	PhotoRoutes(public, admin, controllers.NewPhotoController(deps.Store))
	TestimonialRoutes(public, admin, controllers.NewTestimonialController(deps.Store))
	BookingRoutes(public, admin, controllers.NewBookingController(deps.Store))
	ContactRoutes(public, admin, controllers.NewContactController(deps.Store))
	DashboardRoutes(admin, controllers.NewDashboardController(deps.Store))

	// Uploaded images are served as-is.
	r.Static("/uploads", deps.UploadDir)

	return r
}
