package inmemdb

import (
	"context"
	"sort"

	"github.com/pgkhata/pgkhata/core"
	"github.com/pgkhata/pgkhata/core/tenant"
)

type tenantRepository struct {
	db *DB
}

var _ tenant.Repository = (*tenantRepository)(nil) // interface compliance check

func NewTenantRepository(db *DB) *tenantRepository {
	return &tenantRepository{db: db}
}

func (repo *tenantRepository) join(tnt tenant.Tenant) tenant.Tenant {
	tnt.Bed, tnt.PG = nil, nil
	if bed, ok := repo.db.beds[tnt.BedID]; ok {
		tnt.Bed = &tenant.Bed{ID: bed.ID, BedNumber: bed.BedNumber, MonthlyPrice: bed.MonthlyPrice}
		if room, ok := repo.db.rooms[bed.RoomID]; ok {
			tnt.Bed.Room = &tenant.Room{ID: room.ID, RoomNumber: room.RoomNumber, Floor: room.Floor, Type: room.Type}
		}
	}
	if pg, ok := repo.db.pgs[tnt.PGID]; ok {
		tnt.PG = &tenant.PG{ID: pg.ID, Name: pg.Name}
	}
	return tnt
}

func (repo *tenantRepository) QueryTenants(_ context.Context, filter tenant.QueryFilter, page core.Page, _ ...core.DBExecutor) ([]tenant.Tenant, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	tenants := make([]tenant.Tenant, 0)
	for _, tnt := range repo.db.tenants {
		if filter.OwnerID != 0 && repo.db.ownerOf(tnt.PGID) != filter.OwnerID {
			continue
		}
		if filter.PGID != 0 && tnt.PGID != filter.PGID {
			continue
		}
		if filter.Status != "" && tnt.Status != filter.Status {
			continue
		}
		if filter.Search != "" && !containsFold(tnt.Name, filter.Search) && !containsFold(tnt.Phone, filter.Search) {
			continue
		}
		tenants = append(tenants, repo.join(tnt))
	}
	sort.Slice(tenants, func(i, j int) bool { return tenants[i].ID < tenants[j].ID })

	start, end := page.Slice(len(tenants))
	return tenants[start:end], nil
}

func (repo *tenantRepository) GetTenant(_ context.Context, ownerID, id int, _ ...core.DBExecutor) (tenant.Tenant, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	tnt, ok := repo.db.tenants[id]
	if !ok || (ownerID != 0 && repo.db.ownerOf(tnt.PGID) != ownerID) {
		return tenant.Tenant{}, tenant.ErrNotFound
	}
	return repo.join(tnt), nil
}

// bedTaken mirrors the partial unique index on the bed of active tenants.
func (repo *tenantRepository) bedTaken(tnt tenant.Tenant) bool {
	if tnt.BedID == 0 || tnt.Status != tenant.StatusActive {
		return false
	}
	for _, t := range repo.db.tenants {
		if t.ID != tnt.ID && t.BedID == tnt.BedID && t.Status == tenant.StatusActive {
			return true
		}
	}
	return false
}

func (repo *tenantRepository) CreateTenant(_ context.Context, tnt tenant.Tenant, exec ...core.DBExecutor) (tenant.Tenant, error) {
	defer repo.db.lockWrite(exec)()

	if repo.bedTaken(tnt) {
		return tenant.Tenant{}, tenant.ErrBedOccupied
	}
	tnt.ID = repo.db.nextID("tenants")
	tnt.Bed, tnt.PG = nil, nil
	repo.db.tenants[tnt.ID] = tnt
	return tnt, nil
}

func (repo *tenantRepository) UpdateTenant(_ context.Context, tnt tenant.Tenant, exec ...core.DBExecutor) (tenant.Tenant, error) {
	defer repo.db.lockWrite(exec)()

	if _, ok := repo.db.tenants[tnt.ID]; !ok {
		return tenant.Tenant{}, tenant.ErrNotFound
	}
	if repo.bedTaken(tnt) {
		return tenant.Tenant{}, tenant.ErrBedOccupied
	}
	stored := tnt
	stored.Bed, stored.PG = nil, nil
	repo.db.tenants[tnt.ID] = stored
	return tnt, nil
}

func (repo *tenantRepository) DeleteTenant(_ context.Context, id int, exec ...core.DBExecutor) error {
	defer repo.db.lockWrite(exec)()
	repo.db.deleteTenant(id)
	return nil
}
