package dashboard

import (
	"context"

	"github.com/pkg/errors"

	"github.com/pgkhata/pgkhata/core"
	"github.com/pgkhata/pgkhata/core/property"
	"github.com/pgkhata/pgkhata/core/rent"
)

type (
	// PGStats is the occupancy breakdown of a single PG.
	PGStats struct {
		PGID int    `json:"pg_id"`
		Name string `json:"name"`
		property.Occupancy
	}

	Stats struct {
		Month              string    `json:"month"`
		TotalPGs           int       `json:"total_pgs"`
		TotalRooms         int       `json:"total_rooms"`
		TotalBeds          int       `json:"total_beds"`
		OccupiedBeds       int       `json:"occupied_beds"`
		OccupancyRate      float64   `json:"occupancy_rate"`
		TotalExpectedRent  float64   `json:"total_expected_rent"`
		TotalCollectedRent float64   `json:"total_collected_rent"`
		TotalPendingRent   float64   `json:"total_pending_rent"`
		ActiveTenants      int       `json:"active_tenants"`
		OpenComplaints     int       `json:"open_complaints"`
		Properties         []PGStats `json:"properties"`
	}

	// Repository computes the aggregates that are not derived from the PG tree.
	Repository interface {
		RentSummary(ctx context.Context, ownerID int, month core.Date, exec ...core.DBExecutor) (rent.Summary, error)
		CountActiveTenants(ctx context.Context, ownerID int, exec ...core.DBExecutor) (int, error)
		CountOpenComplaints(ctx context.Context, ownerID int, exec ...core.DBExecutor) (int, error)
	}

	Service interface {
		Stats(ctx context.Context, ownerID int, month core.Date) (Stats, error)
	}

	service struct {
		repo    Repository
		propSvc property.Service
	}
)

var _ Service = (*service)(nil)

func NewService(repo Repository, propSvc property.Service) Service {
	return &service{repo: repo, propSvc: propSvc}
}

// Stats returns the dashboard of ownerID: occupancy as of now, rent figures for month.
func (svc *service) Stats(ctx context.Context, ownerID int, month core.Date) (Stats, error) {
	pgs, err := svc.propSvc.QueryPGs(ctx, property.PGFilter{OwnerID: ownerID}, core.Page{})
	if err != nil {
		return Stats{}, errors.Wrap(err, "querying PGs")
	}
	sum, err := svc.repo.RentSummary(ctx, ownerID, month.MonthStart())
	if err != nil {
		return Stats{}, errors.Wrap(err, "summarizing rents")
	}
	tenants, err := svc.repo.CountActiveTenants(ctx, ownerID)
	if err != nil {
		return Stats{}, errors.Wrap(err, "counting active tenants")
	}
	complaints, err := svc.repo.CountOpenComplaints(ctx, ownerID)
	if err != nil {
		return Stats{}, errors.Wrap(err, "counting open complaints")
	}

	stats := BuildStats(pgs, sum)
	stats.Month = month.MonthString()
	stats.ActiveTenants = tenants
	stats.OpenComplaints = complaints
	return stats, nil
}

// BuildStats derives the occupancy figures from pgs (with nested rooms & beds)
// and copies the rent figures from sum.
func BuildStats(pgs []property.PG, sum rent.Summary) Stats {
	stats := Stats{
		TotalPGs:   len(pgs),
		Properties: make([]PGStats, 0, len(pgs)),
	}

	var total property.Occupancy
	for _, pg := range pgs {
		occ := pg.Occupancy()
		total = total.Add(occ)
		stats.Properties = append(stats.Properties, PGStats{PGID: pg.ID, Name: pg.Name, Occupancy: occ})
	}

	stats.TotalRooms = total.TotalRooms
	stats.TotalBeds = total.TotalBeds
	stats.OccupiedBeds = total.OccupiedBeds
	stats.OccupancyRate = total.OccupancyRate

	sum = sum.Round()
	stats.TotalExpectedRent = sum.Expected
	stats.TotalCollectedRent = sum.Collected
	stats.TotalPendingRent = sum.Pending
	return stats
}
