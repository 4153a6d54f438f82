package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
	"github.com/rs/cors"
	_ "time/tzdata"

	"github.com/dwellfront/dashboard-service/internal/app"
	"github.com/dwellfront/dashboard-service/internal/config"
	"github.com/dwellfront/dashboard-service/internal/constants"
	"github.com/dwellfront/dashboard-service/internal/controllers"
	"github.com/dwellfront/dashboard-service/internal/middleware"
	"github.com/dwellfront/dashboard-service/internal/routes"
	"github.com/dwellfront/dashboard-service/internal/utils"
)

func main() {
	utils.InitLogger(config.AppName)
	cfg := config.LoadConfig()
	defer cfg.Close()

	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize dashboard-service:", err)
	}
	defer application.Close()

	if cfg.SeedDemoData {
		if err := app.SeedDemoData(context.Background(), application); err != nil {
			utils.Logger.Fatal("Failed to seed demo data:", err)
		}
	}

	// Controllers
	healthController := controllers.NewHealthController()
	maintenanceController := controllers.NewMaintenanceController(application.MaintenanceService)
	reviewController := controllers.NewReviewController(application.ReviewService)
	inspectionController := controllers.NewInspectionController(application.InspectionService)
	reportController := controllers.NewReportController(application.ReportService)
	documentController := controllers.NewDocumentController(application.DocumentService)
	applicationController := controllers.NewApplicationController(application.ApplicationService)
	savedFilterController := controllers.NewSavedFilterController(application.SavedFilterRepo)

	// Router setup
	router := mux.NewRouter()

	// Public routes
	router.HandleFunc(routes.Health, healthController.HealthCheckHandler).Methods(http.MethodGet)
	router.Handle(routes.Metrics, promhttp.Handler()).Methods(http.MethodGet)

	// Secured routes, any authenticated role
	secured := router.NewRoute().Subrouter()
	secured.Use(middleware.AuthMiddleware(cfg.RSAPublicKey))
	secured.Use(middleware.MetricsMiddleware)

	secured.HandleFunc(routes.MaintenanceBase, maintenanceController.ListHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.MaintenanceStats, maintenanceController.StatsHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.MaintenanceExport, maintenanceController.ExportHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.MaintenanceBase, maintenanceController.CreateHandler).Methods(http.MethodPost)

	secured.HandleFunc(routes.ReviewsBase, reviewController.ListHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.ReviewsStats, reviewController.StatsHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.ReviewsExport, reviewController.ExportHandler).Methods(http.MethodGet)

	secured.HandleFunc(routes.DocumentFolders, documentController.ListFoldersHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.DocumentFolders, documentController.CreateFolderHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.DocumentFolderFiles, documentController.OpenFolderHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.DocumentFolderByID, documentController.DeleteFolderHandler).Methods(http.MethodDelete)
	secured.HandleFunc(routes.DocumentUpload, documentController.UploadHandler).Methods(http.MethodPost)

	secured.HandleFunc(routes.SavedFiltersBase, savedFilterController.ListHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.SavedFiltersBase, savedFilterController.SaveHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.SavedFilterByID, savedFilterController.DeleteHandler).Methods(http.MethodDelete)

	// Tenant routes
	tenant := secured.NewRoute().Subrouter()
	tenant.Use(middleware.RequireRoles(middleware.RoleTenant))
	tenant.HandleFunc(routes.ReviewsBase, reviewController.CreateHandler).Methods(http.MethodPost)

	// Management routes: landlords and property managers
	management := secured.NewRoute().Subrouter()
	management.Use(middleware.RequireRoles(middleware.RoleLandlord, middleware.RolePropertyManager))

	management.HandleFunc(routes.MaintenanceByID, maintenanceController.UpdateHandler).Methods(http.MethodPatch)
	management.HandleFunc(routes.MaintenanceSetStatus, maintenanceController.SetStatusHandler).Methods(http.MethodPut)
	management.HandleFunc(routes.MaintenanceByID, maintenanceController.DeleteHandler).Methods(http.MethodDelete)

	management.HandleFunc(routes.ReviewsRespond, reviewController.RespondHandler).Methods(http.MethodPost)
	management.HandleFunc(routes.ReviewsHide, reviewController.HideHandler).Methods(http.MethodPut)
	management.HandleFunc(routes.ReviewsByID, reviewController.DeleteHandler).Methods(http.MethodDelete)

	management.HandleFunc(routes.InspectionsBase, inspectionController.ListHandler).Methods(http.MethodGet)
	management.HandleFunc(routes.InspectionsStats, inspectionController.StatsHandler).Methods(http.MethodGet)
	management.HandleFunc(routes.InspectionsExport, inspectionController.ExportHandler).Methods(http.MethodGet)
	management.HandleFunc(routes.InspectionsBase, inspectionController.ScheduleHandler).Methods(http.MethodPost)
	management.HandleFunc(routes.InspectionsSetStatus, inspectionController.SetStatusHandler).Methods(http.MethodPut)
	management.HandleFunc(routes.InspectionsByID, inspectionController.DeleteHandler).Methods(http.MethodDelete)

	management.HandleFunc(routes.ReportsBase, reportController.ListHandler).Methods(http.MethodGet)
	management.HandleFunc(routes.ReportsStats, reportController.StatsHandler).Methods(http.MethodGet)
	management.HandleFunc(routes.ReportsSeries, reportController.SeriesHandler).Methods(http.MethodGet)
	management.HandleFunc(routes.ReportsExport, reportController.ExportHandler).Methods(http.MethodGet)
	management.HandleFunc(routes.ReportsSetStatus, reportController.SetStatusHandler).Methods(http.MethodPut)

	management.HandleFunc(routes.ApplicationsBase, applicationController.ListHandler).Methods(http.MethodGet)
	management.HandleFunc(routes.ApplicationsBase, applicationController.SubmitHandler).Methods(http.MethodPost)
	management.HandleFunc(routes.ApplicationsByID, applicationController.GetHandler).Methods(http.MethodGet)
	management.HandleFunc(routes.ApplicationsDecide, applicationController.DecideHandler).Methods(http.MethodPut)
	management.HandleFunc(routes.ApplicationsByID, applicationController.DeleteHandler).Methods(http.MethodDelete)

	// Cron job setup
	c := cron.New(cron.WithLocation(time.UTC))
	_, err = c.AddFunc(constants.EscalationCronSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), constants.EscalationJobTimeout)
		defer cancel()
		utils.Logger.Info("Starting maintenance escalation cron job...")
		if _, err := application.EscalationService.RunEscalationCheck(ctx); err != nil {
			utils.Logger.WithError(err).Error("Failed to run escalation check")
		}
	})
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to schedule escalation cron")
	}
	c.Start()
	utils.Logger.Info("Scheduled escalation cron job")

	allowedOrigins := []string{cfg.AppUrl}
	if cfg.CORSAllowLocalhost {
		allowedOrigins = append(allowedOrigins, "http://localhost:5173")
	}

	co := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Folder-Password"},
		AllowCredentials: true,
	})

	utils.Logger.Infof("Starting %s on port: %s", cfg.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, co.Handler(router)); err != nil {
		utils.Logger.Fatal("dashboard-service failed to start:", err)
	}
}
