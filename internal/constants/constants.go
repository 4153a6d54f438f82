package constants

import "time"

const (
	// Feature keys, used for export filenames and saved filters.
	FeatureMaintenance = "maintenance"
	FeatureReviews     = "reviews"
	FeatureInspections = "inspections"
	FeatureReports     = "reports"

	// Escalation: how long a request may sit OPEN or IN_PROGRESS
	// before the cron job flags it for review.
	DefaultEscalationMaxAge = 72 * time.Hour

	// Simulated latency for the mock document upload.
	DefaultUploadDelay = 1500 * time.Millisecond

	DefaultExportDir = "exports"

	MinFolderPasswordLen = 4

	// Escalation sweep schedule (UTC).
	EscalationCronSpec   = "0 * * * *"
	EscalationJobTimeout = 2 * time.Minute
)
