package routes

const (
	// Health + metrics
	Health  = "/health"
	Metrics = "/metrics"

	// Maintenance
	MaintenanceBase      = "/api/v1/dashboard/maintenance"
	MaintenanceStats     = "/api/v1/dashboard/maintenance/stats"
	MaintenanceExport    = "/api/v1/dashboard/maintenance/export"
	MaintenanceByID      = "/api/v1/dashboard/maintenance/{id}"
	MaintenanceSetStatus = "/api/v1/dashboard/maintenance/{id}/status"

	// Ratings & reviews
	ReviewsBase    = "/api/v1/dashboard/reviews"
	ReviewsStats   = "/api/v1/dashboard/reviews/stats"
	ReviewsExport  = "/api/v1/dashboard/reviews/export"
	ReviewsByID    = "/api/v1/dashboard/reviews/{id}"
	ReviewsRespond = "/api/v1/dashboard/reviews/{id}/respond"
	ReviewsHide    = "/api/v1/dashboard/reviews/{id}/hide"

	// Inspections
	InspectionsBase      = "/api/v1/dashboard/inspections"
	InspectionsStats     = "/api/v1/dashboard/inspections/stats"
	InspectionsExport    = "/api/v1/dashboard/inspections/export"
	InspectionsByID      = "/api/v1/dashboard/inspections/{id}"
	InspectionsSetStatus = "/api/v1/dashboard/inspections/{id}/status"

	// Reports (rent payments)
	ReportsBase      = "/api/v1/dashboard/reports/payments"
	ReportsStats     = "/api/v1/dashboard/reports/stats"
	ReportsSeries    = "/api/v1/dashboard/reports/series"
	ReportsExport    = "/api/v1/dashboard/reports/export"
	ReportsSetStatus = "/api/v1/dashboard/reports/payments/{id}/status"

	// Document vault
	DocumentFolders     = "/api/v1/dashboard/documents/folders"
	DocumentFolderByID  = "/api/v1/dashboard/documents/folders/{id}"
	DocumentFolderFiles = "/api/v1/dashboard/documents/folders/{id}/files"
	DocumentUpload      = "/api/v1/dashboard/documents/upload"

	// Tenant applications
	ApplicationsBase   = "/api/v1/dashboard/applications"
	ApplicationsByID   = "/api/v1/dashboard/applications/{id}"
	ApplicationsDecide = "/api/v1/dashboard/applications/{id}/decision"

	// Saved filters
	SavedFiltersBase = "/api/v1/dashboard/filters"
	SavedFilterByID  = "/api/v1/dashboard/filters/{id}"
)
