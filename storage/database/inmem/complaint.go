package inmemdb

import (
	"context"
	"sort"

	"github.com/pgkhata/pgkhata/core"
	"github.com/pgkhata/pgkhata/core/complaint"
)

type complaintRepository struct {
	db *DB
}

var _ complaint.Repository = (*complaintRepository)(nil) // interface compliance check

func NewComplaintRepository(db *DB) *complaintRepository {
	return &complaintRepository{db: db}
}

func (repo *complaintRepository) join(cpl complaint.Complaint) complaint.Complaint {
	cpl.TenantName = repo.db.tenants[cpl.TenantID].Name
	return cpl
}

func (repo *complaintRepository) QueryComplaints(_ context.Context, filter complaint.QueryFilter, page core.Page, _ ...core.DBExecutor) ([]complaint.Complaint, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	cpls := make([]complaint.Complaint, 0)
	for _, cpl := range repo.db.complaints {
		if filter.OwnerID != 0 && repo.db.ownerOf(cpl.PGID) != filter.OwnerID {
			continue
		}
		if filter.Status != "" && cpl.Status != filter.Status {
			continue
		}
		if filter.PGID != 0 && cpl.PGID != filter.PGID {
			continue
		}
		if filter.TenantID != 0 && cpl.TenantID != filter.TenantID {
			continue
		}
		cpls = append(cpls, repo.join(cpl))
	}
	sort.Slice(cpls, func(i, j int) bool {
		if !cpls[i].CreatedAt.Equal(cpls[j].CreatedAt) {
			return cpls[i].CreatedAt.After(cpls[j].CreatedAt)
		}
		return cpls[i].ID > cpls[j].ID
	})

	start, end := page.Slice(len(cpls))
	return cpls[start:end], nil
}

func (repo *complaintRepository) GetComplaint(_ context.Context, ownerID, id int, _ ...core.DBExecutor) (complaint.Complaint, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	cpl, ok := repo.db.complaints[id]
	if !ok || (ownerID != 0 && repo.db.ownerOf(cpl.PGID) != ownerID) {
		return complaint.Complaint{}, complaint.ErrNotFound
	}
	return repo.join(cpl), nil
}

func (repo *complaintRepository) CreateComplaint(_ context.Context, cpl complaint.Complaint, exec ...core.DBExecutor) (complaint.Complaint, error) {
	defer repo.db.lockWrite(exec)()

	cpl.ID = repo.db.nextID("complaints")
	repo.db.complaints[cpl.ID] = cpl
	return repo.join(cpl), nil
}

func (repo *complaintRepository) UpdateComplaint(_ context.Context, cpl complaint.Complaint, exec ...core.DBExecutor) (complaint.Complaint, error) {
	defer repo.db.lockWrite(exec)()

	if _, ok := repo.db.complaints[cpl.ID]; !ok {
		return complaint.Complaint{}, complaint.ErrNotFound
	}
	repo.db.complaints[cpl.ID] = cpl
	return repo.join(cpl), nil
}
