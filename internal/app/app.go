package app

import (
	"github.com/dwellfront/dashboard-service/internal/config"
	"github.com/dwellfront/dashboard-service/internal/repositories"
	"github.com/dwellfront/dashboard-service/internal/services"
	"github.com/dwellfront/dashboard-service/internal/utils"
)

// App owns the in-memory collections and the service layer built on
// top of them. Everything is wired once at startup.
type App struct {
	Config *config.Config

	// Repositories
	PropertyRepo    repositories.PropertyRepository
	MaintenanceRepo repositories.MaintenanceRepository
	ReviewRepo      repositories.ReviewRepository
	InspectionRepo  repositories.InspectionRepository
	PaymentRepo     repositories.PaymentRepository
	FolderRepo      repositories.DocumentFolderRepository
	DocumentRepo    repositories.DocumentRepository
	ApplicationRepo repositories.ApplicationRepository
	SavedFilterRepo repositories.SavedFilterRepository

	// Services
	ExportService      *services.ExportService
	MaintenanceService *services.MaintenanceService
	ReviewService      *services.ReviewService
	InspectionService  *services.InspectionService
	ReportService      *services.ReportService
	DocumentService    *services.DocumentService
	ApplicationService *services.ApplicationService
	EscalationService  *services.EscalationService
}

func NewApp(cfg *config.Config) (*App, error) {
	a := &App{Config: cfg}

	a.PropertyRepo = repositories.NewPropertyRepository()
	a.MaintenanceRepo = repositories.NewMaintenanceRepository()
	a.ReviewRepo = repositories.NewReviewRepository()
	a.InspectionRepo = repositories.NewInspectionRepository()
	a.PaymentRepo = repositories.NewPaymentRepository()
	a.FolderRepo = repositories.NewDocumentFolderRepository()
	a.DocumentRepo = repositories.NewDocumentRepository()
	a.ApplicationRepo = repositories.NewApplicationRepository()
	a.SavedFilterRepo = repositories.NewSavedFilterRepository()

	a.ExportService = services.NewExportService(cfg.ExportDir)
	a.MaintenanceService = services.NewMaintenanceService(a.MaintenanceRepo, a.ExportService)
	a.ReviewService = services.NewReviewService(a.ReviewRepo, a.ExportService)
	a.InspectionService = services.NewInspectionService(a.InspectionRepo, a.ExportService)
	a.ReportService = services.NewReportService(a.PaymentRepo, a.ExportService)
	a.DocumentService = services.NewDocumentService(a.FolderRepo, a.DocumentRepo, cfg.UploadDelay)
	a.ApplicationService = services.NewApplicationService(a.ApplicationRepo)
	a.EscalationService = services.NewEscalationService(a.MaintenanceRepo, cfg.EscalationMaxAge)

	return a, nil
}

func (a *App) Close() {
	utils.Logger.Info("dashboard-service shut down.")
}
