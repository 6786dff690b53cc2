package inmemdb

import (
	"context"

	"github.com/pgkhata/pgkhata/core"
	"github.com/pgkhata/pgkhata/core/complaint"
	"github.com/pgkhata/pgkhata/core/dashboard"
	"github.com/pgkhata/pgkhata/core/rent"
	"github.com/pgkhata/pgkhata/core/tenant"
)

type dashboardRepository struct {
	db *DB
}

var _ dashboard.Repository = (*dashboardRepository)(nil) // interface compliance check

func NewDashboardRepository(db *DB) *dashboardRepository {
	return &dashboardRepository{db: db}
}

func (repo *dashboardRepository) RentSummary(_ context.Context, ownerID int, month core.Date, _ ...core.DBExecutor) (rent.Summary, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	month = month.MonthStart()
	var recs []rent.Record
	for _, rec := range repo.db.records {
		if rec.Month.Equal(month) && repo.db.ownerOf(rec.PGID) == ownerID {
			recs = append(recs, rec)
		}
	}
	return rent.Summarize(recs), nil
}

func (repo *dashboardRepository) CountActiveTenants(_ context.Context, ownerID int, _ ...core.DBExecutor) (int, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	var count int
	for _, tnt := range repo.db.tenants {
		if tnt.Status == tenant.StatusActive && repo.db.ownerOf(tnt.PGID) == ownerID {
			count++
		}
	}
	return count, nil
}

func (repo *dashboardRepository) CountOpenComplaints(_ context.Context, ownerID int, _ ...core.DBExecutor) (int, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	var count int
	for _, cpl := range repo.db.complaints {
		if cpl.Status == complaint.StatusOpen && repo.db.ownerOf(cpl.PGID) == ownerID {
			count++
		}
	}
	return count, nil
}
