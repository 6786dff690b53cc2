package inmemdb

import (
	"context"
	"sort"

	"github.com/pgkhata/pgkhata/core"
	"github.com/pgkhata/pgkhata/core/rent"
	"github.com/pgkhata/pgkhata/core/tenant"
)

type rentRepository struct {
	db *DB
}

var _ rent.Repository = (*rentRepository)(nil) // interface compliance check

func NewRentRepository(db *DB) *rentRepository {
	return &rentRepository{db: db}
}

func (repo *rentRepository) join(rec rent.Record) rent.Record {
	tnt := repo.db.tenants[rec.TenantID]
	rec.TenantName, rec.TenantEmail = tnt.Name, tnt.Email
	rec.PGName = repo.db.pgs[rec.PGID].Name
	return rec
}

func (repo *rentRepository) query(filter rent.QueryFilter) []rent.Record {
	month := filter.Month.MonthStart()
	recs := make([]rent.Record, 0)
	for _, rec := range repo.db.records {
		if filter.OwnerID != 0 && repo.db.ownerOf(rec.PGID) != filter.OwnerID {
			continue
		}
		if !filter.Month.IsZero() && !rec.Month.Equal(month) {
			continue
		}
		if len(filter.Statuses) > 0 && !containsString(filter.Statuses, rec.Status) {
			continue
		}
		if filter.PGID != 0 && rec.PGID != filter.PGID {
			continue
		}
		if filter.TenantID != 0 && rec.TenantID != filter.TenantID {
			continue
		}
		rec = repo.join(rec)
		if filter.OnlyWithEmail && rec.TenantEmail == "" {
			continue
		}
		recs = append(recs, rec)
	}
	sort.Slice(recs, func(i, j int) bool {
		if !recs[i].Month.Equal(recs[j].Month) {
			return recs[i].Month.After(recs[j].Month)
		}
		return recs[i].ID < recs[j].ID
	})
	return recs
}

func (repo *rentRepository) QueryRecords(_ context.Context, filter rent.QueryFilter, page core.Page, _ ...core.DBExecutor) ([]rent.Record, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	recs := repo.query(filter)
	start, end := page.Slice(len(recs))
	return recs[start:end], nil
}

func (repo *rentRepository) GetRecord(_ context.Context, ownerID, id int, _ ...core.DBExecutor) (rent.Record, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	rec, ok := repo.db.records[id]
	if !ok || (ownerID != 0 && repo.db.ownerOf(rec.PGID) != ownerID) {
		return rent.Record{}, rent.ErrNotFound
	}
	return repo.join(rec), nil
}

func (repo *rentRepository) CreateRecord(_ context.Context, rec rent.Record, exec ...core.DBExecutor) (rent.Record, error) {
	defer repo.db.lockWrite(exec)()

	for _, r := range repo.db.records {
		if r.TenantID == rec.TenantID && r.Month.Equal(rec.Month) {
			return rent.Record{}, rent.ErrRecordExists
		}
	}
	rec.ID = repo.db.nextID("rent_records")
	repo.db.records[rec.ID] = rec
	return repo.join(rec), nil
}

func (repo *rentRepository) UpdateRecord(_ context.Context, rec rent.Record, exec ...core.DBExecutor) (rent.Record, error) {
	defer repo.db.lockWrite(exec)()

	if _, ok := repo.db.records[rec.ID]; !ok {
		return rent.Record{}, rent.ErrNotFound
	}
	repo.db.records[rec.ID] = rec
	return repo.join(rec), nil
}

func (repo *rentRepository) QueryBillable(_ context.Context, ownerID int, month core.Date, _ ...core.DBExecutor) ([]rent.Billable, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	month = month.MonthStart()
	monthEnd := month.MonthEnd()

	billed := make(map[int]bool)
	for _, rec := range repo.db.records {
		if rec.Month.Equal(month) {
			billed[rec.TenantID] = true
		}
	}

	billables := make([]rent.Billable, 0)
	for _, tnt := range repo.db.tenants {
		if tnt.Status != tenant.StatusActive || billed[tnt.ID] || repo.db.ownerOf(tnt.PGID) != ownerID {
			continue
		}
		if tnt.CheckInDate.After(monthEnd) {
			continue
		}
		bed, ok := repo.db.beds[tnt.BedID]
		if !ok {
			continue
		}
		billables = append(billables, rent.Billable{TenantID: tnt.ID, PGID: tnt.PGID, MonthlyPrice: bed.MonthlyPrice})
	}
	sort.Slice(billables, func(i, j int) bool { return billables[i].TenantID < billables[j].TenantID })
	return billables, nil
}

func containsString(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}
