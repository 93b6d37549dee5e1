package main

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	cron "github.com/robfig/cron/v3"
	"github.com/rs/cors"

	"github.com/BibekKushwaha/enterprise-rental-app/internal/app"
	"github.com/BibekKushwaha/enterprise-rental-app/internal/config"
	"github.com/BibekKushwaha/enterprise-rental-app/internal/controllers"
	"github.com/BibekKushwaha/enterprise-rental-app/internal/middleware"
	"github.com/BibekKushwaha/enterprise-rental-app/internal/repositories"
	"github.com/BibekKushwaha/enterprise-rental-app/internal/routes"
	"github.com/BibekKushwaha/enterprise-rental-app/internal/services"
	"github.com/BibekKushwaha/enterprise-rental-app/internal/utils"
)

func main() {
	utils.InitLogger(config.AppName)
	cfg := config.LoadConfig()

	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize rental-api:", err)
	}
	defer application.Close()

	propRepo := repositories.NewPropertyRepository(application.DB)
	tenantRepo := repositories.NewTenantRepository(application.DB)
	managerRepo := repositories.NewManagerRepository(application.DB)
	leaseRepo := repositories.NewLeaseRepository(application.DB)
	locationRepo := repositories.NewLocationRepository(application.DB)

	geocoder := utils.NewNominatimGeocoder(cfg.NominatimBaseURL, cfg.GeocoderUserAgent)
	storage, err := utils.NewS3StorageClient(context.Background(), cfg.AWSRegion, cfg.S3BucketName)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize S3 storage client:", err)
	}

	propertyService := services.NewPropertyService(propRepo, managerRepo, geocoder, storage)
	tenantService := services.NewTenantService(tenantRepo, propRepo)
	managerService := services.NewManagerService(managerRepo, propRepo)
	leaseService := services.NewLeaseService(leaseRepo, propRepo)
	locationMaintenance := services.NewLocationMaintenanceService(locationRepo)

	propertiesController := controllers.NewPropertiesController(propertyService, leaseService)
	tenantsController := controllers.NewTenantsController(tenantService)
	managersController := controllers.NewManagersController(managerService)
	leasesController := controllers.NewLeasesController(leaseService)
	healthController := controllers.NewHealthController(application)

	router := mux.NewRouter()

	// Public
	router.HandleFunc(routes.Health, healthController.HealthCheckHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.Properties, propertiesController.ListHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.PropertyByID, propertiesController.GetHandler).Methods(http.MethodGet)

	// Manager-only
	managerSecured := router.NewRoute().Subrouter()
	managerSecured.Use(middleware.AuthMiddleware("manager"))
	managerSecured.HandleFunc(routes.PropertyCreate, propertiesController.CreateHandler).Methods(http.MethodPost)
	managerSecured.HandleFunc(routes.Managers, managersController.CreateHandler).Methods(http.MethodPost)
	managerSecured.HandleFunc(routes.ManagerByID, managersController.GetHandler).Methods(http.MethodGet)
	managerSecured.HandleFunc(routes.ManagerByID, managersController.UpdateHandler).Methods(http.MethodPut)
	managerSecured.HandleFunc(routes.ManagerProperties, managersController.ListPropertiesHandler).Methods(http.MethodGet)

	// Tenant-only
	tenantSecured := router.NewRoute().Subrouter()
	tenantSecured.Use(middleware.AuthMiddleware("tenant"))
	tenantSecured.HandleFunc(routes.Tenants, tenantsController.CreateHandler).Methods(http.MethodPost)
	tenantSecured.HandleFunc(routes.TenantByID, tenantsController.GetHandler).Methods(http.MethodGet)
	tenantSecured.HandleFunc(routes.TenantByID, tenantsController.UpdateHandler).Methods(http.MethodPut)
	tenantSecured.HandleFunc(routes.TenantResidences, tenantsController.CurrentResidencesHandler).Methods(http.MethodGet)
	tenantSecured.HandleFunc(routes.TenantFavorite, tenantsController.AddFavoriteHandler).Methods(http.MethodPost)
	tenantSecured.HandleFunc(routes.TenantFavorite, tenantsController.RemoveFavoriteHandler).Methods(http.MethodDelete)

	// Manager or tenant
	sharedSecured := router.NewRoute().Subrouter()
	sharedSecured.Use(middleware.AuthMiddleware("manager", "tenant"))
	sharedSecured.HandleFunc(routes.PropertyLeases, propertiesController.GetLeasesHandler).Methods(http.MethodGet)
	sharedSecured.HandleFunc(routes.Leases, leasesController.ListHandler).Methods(http.MethodGet)
	sharedSecured.HandleFunc(routes.LeasePayments, leasesController.ListPaymentsHandler).Methods(http.MethodGet)

	c := cron.New()
	_, sweepErr := c.AddFunc("5 0 * * *", func() {
		if e := locationMaintenance.RunOrphanSweep(context.Background()); e != nil {
			utils.Logger.WithError(e).Error("Scheduled orphan location sweep failed")
		}
	})
	if sweepErr != nil {
		utils.Logger.WithError(sweepErr).Fatal("Failed to schedule orphan location sweep cron")
	}
	c.Start()

	co := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.AppUrl},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	utils.Logger.Infof("Starting %s on port: %s", cfg.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, co.Handler(router)); err != nil {
		utils.Logger.Fatal("rental-api failed to start:", err)
	}
}
