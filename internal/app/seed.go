package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dwellfront/dashboard-service/internal/models"
	"github.com/dwellfront/dashboard-service/internal/utils"
)

// Well-known demo ids so repeated startups and local tooling can refer
// to the same records.
var (
	SeedLandlordID = uuid.MustParse("0b5a1c3e-0000-4000-8000-000000000001")
	SeedManagerID  = uuid.MustParse("0b5a1c3e-0000-4000-8000-000000000002")
	SeedTenantID   = uuid.MustParse("0b5a1c3e-0000-4000-8000-000000000003")

	seedPropertyID = uuid.MustParse("0b5a1c3e-0000-4000-8000-000000000010")
	seedProperty2  = uuid.MustParse("0b5a1c3e-0000-4000-8000-000000000011")
)

// SeedDemoData loads a small but representative data set so every list
// screen renders non-empty out of the box. Idempotent: if the sentinel
// property already exists the seed is skipped.
func SeedDemoData(ctx context.Context, a *App) error {
	if _, err := a.PropertyRepo.GetByID(ctx, seedPropertyID); err == nil {
		utils.Logger.Info("Demo data already present, skipping seed.")
		return nil
	} else if !errors.Is(err, utils.ErrNotFound) {
		return err
	}

	if err := seedProperties(ctx, a); err != nil {
		return err
	}
	if err := seedMaintenance(ctx, a); err != nil {
		return err
	}
	if err := seedReviews(ctx, a); err != nil {
		return err
	}
	if err := seedInspections(ctx, a); err != nil {
		return err
	}
	if err := seedPayments(ctx, a); err != nil {
		return err
	}
	if err := seedFoldersAndApplications(ctx, a); err != nil {
		return err
	}

	utils.Logger.Info("Demo data seeded.")
	return nil
}

func seedProperties(ctx context.Context, a *App) error {
	props := []*models.Property{
		{
			LandlordID:   SeedLandlordID,
			ManagerID:    SeedManagerID,
			PropertyName: "Sunset Apartments",
			Address:      "12 Sunset Blvd",
			City:         "Austin",
			State:        "TX",
			ZipCode:      "78701",
			UnitCount:    24,
			IsDemo:       true,
		},
		{
			LandlordID:   SeedLandlordID,
			ManagerID:    SeedManagerID,
			PropertyName: "Oak Grove Townhomes",
			Address:      "400 Oak Grove Ln",
			City:         "Austin",
			State:        "TX",
			ZipCode:      "78704",
			UnitCount:    8,
			IsDemo:       true,
		},
	}
	props[0].ID = seedPropertyID
	props[1].ID = seedProperty2
	for _, p := range props {
		if err := a.PropertyRepo.Create(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

func seedMaintenance(ctx context.Context, a *App) error {
	rows := []struct {
		title    string
		desc     string
		unit     string
		category models.RequestCategoryType
		priority models.RequestPriorityType
		status   models.RequestStatusType
		cost     string
	}{
		{"Leaking kitchen faucet", "Dripping constantly, cabinet base is getting damp.", "4B", models.RequestCategoryPlumbing, models.RequestPriorityMedium, models.RequestStatusOpen, "$120.00"},
		{"AC not cooling", "Blows warm air even on max.", "7A", models.RequestCategoryHVAC, models.RequestPriorityUrgent, models.RequestStatusOpen, "$450.00"},
		{"Dishwasher won't drain", "Standing water after every cycle.", "2C", models.RequestCategoryAppliance, models.RequestPriorityHigh, models.RequestStatusInProgress, "$180.00"},
		{"Hallway light flickering", "Third floor hallway, intermittent.", "3F", models.RequestCategoryElectrical, models.RequestPriorityLow, models.RequestStatusCompleted, "$60.00"},
		{"Broken window latch", "Bedroom window won't lock.", "1A", models.RequestCategoryGeneral, models.RequestPriorityMedium, models.RequestStatusPending, "$75.00"},
	}
	for _, row := range rows {
		m := &models.MaintenanceRequest{
			PropertyID:    seedPropertyID,
			UnitNumber:    row.unit,
			TenantID:      SeedTenantID,
			Title:         row.title,
			Description:   row.desc,
			Category:      row.category,
			Priority:      row.priority,
			Status:        row.status,
			EstimatedCost: row.cost,
		}
		m.ID = uuid.New()
		if err := a.MaintenanceRepo.Create(ctx, m); err != nil {
			return err
		}
	}
	return nil
}

func seedReviews(ctx context.Context, a *App) error {
	rows := []struct {
		rating  int
		title   string
		comment string
		status  models.ReviewStatusType
	}{
		{5, "Great management", "Repairs handled within a day, every time.", models.ReviewStatusPublished},
		{3, "Decent but noisy", "Love the unit, but the street noise is rough.", models.ReviewStatusPublished},
		{4, "Responsive staff", "Front office actually answers the phone.", models.ReviewStatusResponded},
	}
	for i, row := range rows {
		rv := &models.Review{
			PropertyID: seedPropertyID,
			TenantID:   SeedTenantID,
			TenantName: fmt.Sprintf("Demo Tenant %d", i+1),
			Rating:     row.rating,
			Title:      row.title,
			Comment:    row.comment,
			Status:     row.status,
		}
		rv.ID = uuid.New()
		if row.status == models.ReviewStatusResponded {
			now := time.Now().UTC()
			rv.Response = "Thanks for the kind words!"
			rv.RespondedBy = &SeedManagerID
			rv.RespondedAt = &now
		}
		if err := a.ReviewRepo.Create(ctx, rv); err != nil {
			return err
		}
	}
	return nil
}

func seedInspections(ctx context.Context, a *App) error {
	now := time.Now().UTC()
	rows := []struct {
		unit      string
		inspector string
		kind      models.InspectionKindType
		status    models.InspectionStatusType
		when      time.Time
		score     int
	}{
		{"4B", "R. Alvarez", models.InspectionKindRoutine, models.InspectionStatusCompleted, now.AddDate(0, -1, 0), 92},
		{"7A", "R. Alvarez", models.InspectionKindMoveOut, models.InspectionStatusScheduled, now.AddDate(0, 0, 14), 0},
		{"2C", "J. Kim", models.InspectionKindMoveIn, models.InspectionStatusScheduled, now.AddDate(0, 0, 7), 0},
	}
	for _, row := range rows {
		ins := &models.Inspection{
			PropertyID:    seedPropertyID,
			UnitNumber:    row.unit,
			InspectorName: row.inspector,
			Kind:          row.kind,
			Status:        row.status,
			ScheduledFor:  row.when,
			Score:         row.score,
		}
		ins.ID = uuid.New()
		if row.status == models.InspectionStatusCompleted {
			ins.Findings = "Minor wear, no action needed."
		}
		if err := a.InspectionRepo.Create(ctx, ins); err != nil {
			return err
		}
	}
	return nil
}

func seedPayments(ctx context.Context, a *App) error {
	now := time.Now().UTC()
	// Six months of history so the collected-rent chart has a curve.
	for i := 5; i >= 0; i-- {
		month := now.AddDate(0, -i, 0)
		period := month.Format("2006-01")

		p := &models.Payment{
			PropertyID: seedPropertyID,
			TenantID:   SeedTenantID,
			UnitNumber: "4B",
			Period:     period,
			Amount:     "$2,100.00",
			Status:     models.PaymentStatusPaid,
			Method:     "bank_transfer",
		}
		p.ID = uuid.New()
		paidAt := month.AddDate(0, 0, 3)
		p.PaidAt = &paidAt
		if i == 0 {
			// Current month is still outstanding.
			p.Status = models.PaymentStatusDue
			p.Method = ""
			p.PaidAt = nil
		}
		if err := a.PaymentRepo.Create(ctx, p); err != nil {
			return err
		}
	}

	overdue := &models.Payment{
		PropertyID: seedProperty2,
		TenantID:   SeedTenantID,
		UnitNumber: "2",
		Period:     now.AddDate(0, -1, 0).Format("2006-01"),
		Amount:     "$1,850.00",
		Status:     models.PaymentStatusOverdue,
	}
	overdue.ID = uuid.New()
	return a.PaymentRepo.Create(ctx, overdue)
}

func seedFoldersAndApplications(ctx context.Context, a *App) error {
	folder := &models.DocumentFolder{
		OwnerID: SeedManagerID,
		Name:    "Leases",
	}
	folder.ID = uuid.New()
	if err := a.FolderRepo.Create(ctx, folder); err != nil {
		return err
	}

	doc := &models.Document{
		FolderID:  folder.ID,
		FileName:  "lease-4B-2026.pdf",
		SizeBytes: 184_320,
		Status:    models.UploadStatusAvailable,
	}
	doc.ID = uuid.New()
	if err := a.DocumentRepo.Create(ctx, doc); err != nil {
		return err
	}

	app := &models.TenantApplication{
		PropertyID:    seedProperty2,
		UnitNumber:    "5",
		ApplicantName: "Dana Whitfield",
		Email:         "dana.whitfield@example.com",
		Phone:         "512-555-0117",
		MonthlyIncome: "$6,400.00",
		Status:        models.ApplicationStatusSubmitted,
	}
	app.ID = uuid.New()
	return a.ApplicationRepo.Create(ctx, app)
}
