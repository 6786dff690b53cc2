package inmemdb

import (
	"context"
	"sort"
	"strings"

	"github.com/pgkhata/pgkhata/core"
	"github.com/pgkhata/pgkhata/core/property"
	"github.com/pgkhata/pgkhata/core/tenant"
)

type propertyRepository struct {
	db *DB
}

var _ property.Repository = (*propertyRepository)(nil) // interface compliance check

func NewPropertyRepository(db *DB) *propertyRepository {
	return &propertyRepository{db: db}
}

func (repo *propertyRepository) QueryPGs(_ context.Context, filter property.PGFilter, page core.Page, _ ...core.DBExecutor) ([]property.PG, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	pgs := make([]property.PG, 0)
	for _, pg := range repo.db.pgs {
		if filter.OwnerID != 0 && pg.OwnerID != filter.OwnerID {
			continue
		}
		if len(filter.IDs) > 0 && !containsInt(filter.IDs, pg.ID) {
			continue
		}
		if filter.Search != "" &&
			!containsFold(pg.Name, filter.Search) &&
			!containsFold(pg.Address, filter.Search) &&
			!containsFold(pg.City, filter.Search) {
			continue
		}
		if filter.City != "" && !strings.EqualFold(pg.City, filter.City) {
			continue
		}
		pgs = append(pgs, pg)
	}
	sort.Slice(pgs, func(i, j int) bool { return pgs[i].ID < pgs[j].ID })

	start, end := page.Slice(len(pgs))
	return pgs[start:end], nil
}

func (repo *propertyRepository) GetPG(_ context.Context, ownerID, id int, _ ...core.DBExecutor) (property.PG, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	pg, ok := repo.db.pgs[id]
	if !ok || (ownerID != 0 && pg.OwnerID != ownerID) {
		return property.PG{}, property.ErrPGNotFound
	}
	return pg, nil
}

func (repo *propertyRepository) CreatePG(_ context.Context, pg property.PG, exec ...core.DBExecutor) (property.PG, error) {
	defer repo.db.lockWrite(exec)()

	pg.ID = repo.db.nextID("pgs")
	pg.Rooms = nil
	repo.db.pgs[pg.ID] = pg
	return pg, nil
}

func (repo *propertyRepository) UpdatePG(_ context.Context, pg property.PG, exec ...core.DBExecutor) (property.PG, error) {
	defer repo.db.lockWrite(exec)()

	if _, ok := repo.db.pgs[pg.ID]; !ok {
		return property.PG{}, property.ErrPGNotFound
	}
	pg.Rooms = nil
	repo.db.pgs[pg.ID] = pg
	return pg, nil
}

func (repo *propertyRepository) DeletePG(_ context.Context, id int, exec ...core.DBExecutor) error {
	defer repo.db.lockWrite(exec)()
	repo.db.deletePG(id)
	return nil
}

func (repo *propertyRepository) QueryRooms(_ context.Context, pgIDs []int, _ ...core.DBExecutor) ([]property.Room, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	rooms := make([]property.Room, 0)
	for _, room := range repo.db.rooms {
		if containsInt(pgIDs, room.PGID) {
			rooms = append(rooms, room)
		}
	}
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].ID < rooms[j].ID })
	return rooms, nil
}

func (repo *propertyRepository) GetRoom(_ context.Context, ownerID, id int, _ ...core.DBExecutor) (property.Room, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	room, ok := repo.db.rooms[id]
	if !ok || (ownerID != 0 && repo.db.ownerOf(room.PGID) != ownerID) {
		return property.Room{}, property.ErrRoomNotFound
	}
	return room, nil
}

func (repo *propertyRepository) CreateRoom(_ context.Context, room property.Room, exec ...core.DBExecutor) (property.Room, error) {
	defer repo.db.lockWrite(exec)()

	room.ID = repo.db.nextID("rooms")
	room.Beds = nil
	repo.db.rooms[room.ID] = room
	return room, nil
}

func (repo *propertyRepository) UpdateRoom(_ context.Context, room property.Room, exec ...core.DBExecutor) (property.Room, error) {
	defer repo.db.lockWrite(exec)()

	if _, ok := repo.db.rooms[room.ID]; !ok {
		return property.Room{}, property.ErrRoomNotFound
	}
	room.Beds = nil
	repo.db.rooms[room.ID] = room
	return room, nil
}

func (repo *propertyRepository) DeleteRoom(_ context.Context, id int, exec ...core.DBExecutor) error {
	defer repo.db.lockWrite(exec)()
	repo.db.deleteRoom(id)
	return nil
}

// withTenant joins the bed with its room's PG and its active tenant.
func (repo *propertyRepository) withTenant(bed property.Bed) property.Bed {
	bed.PGID = repo.db.rooms[bed.RoomID].PGID
	bed.Tenant = nil
	for _, tnt := range repo.db.tenants {
		if tnt.BedID == bed.ID && tnt.Status == tenant.StatusActive {
			bed.Tenant = &property.BedTenant{ID: tnt.ID, Name: tnt.Name, Phone: tnt.Phone}
			break
		}
	}
	return bed
}

func (repo *propertyRepository) QueryBeds(_ context.Context, roomIDs []int, _ ...core.DBExecutor) ([]property.Bed, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	beds := make([]property.Bed, 0)
	for _, bed := range repo.db.beds {
		if containsInt(roomIDs, bed.RoomID) {
			beds = append(beds, repo.withTenant(bed))
		}
	}
	sort.Slice(beds, func(i, j int) bool { return beds[i].ID < beds[j].ID })
	return beds, nil
}

func (repo *propertyRepository) GetBed(_ context.Context, filter property.GetBedFilter, _ ...core.DBExecutor) (property.Bed, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	bed, ok := repo.db.beds[filter.ID]
	if !ok {
		return property.Bed{}, property.ErrBedNotFound
	}
	room := repo.db.rooms[bed.RoomID]
	if filter.OwnerID != 0 && repo.db.ownerOf(room.PGID) != filter.OwnerID {
		return property.Bed{}, property.ErrBedNotFound
	}
	bed.PGID = room.PGID
	return bed, nil
}

func (repo *propertyRepository) CheckBedNumberUniqueness(_ context.Context, roomID int, bedNumber string, excludedID int, _ ...core.DBExecutor) error {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if repo.bedNumberTaken(roomID, bedNumber, excludedID) {
		return property.ErrBedNumberExists
	}
	return nil
}

func (repo *propertyRepository) bedNumberTaken(roomID int, bedNumber string, excludedID int) bool {
	for _, bed := range repo.db.beds {
		if bed.RoomID == roomID && bed.BedNumber == bedNumber && bed.ID != excludedID {
			return true
		}
	}
	return false
}

func (repo *propertyRepository) CreateBed(_ context.Context, bed property.Bed, exec ...core.DBExecutor) (property.Bed, error) {
	defer repo.db.lockWrite(exec)()

	if repo.bedNumberTaken(bed.RoomID, bed.BedNumber, 0) {
		return property.Bed{}, property.ErrBedNumberExists
	}
	bed.ID = repo.db.nextID("beds")
	bed.Tenant = nil
	repo.db.beds[bed.ID] = bed
	return bed, nil
}

func (repo *propertyRepository) UpdateBed(_ context.Context, bed property.Bed, exec ...core.DBExecutor) (property.Bed, error) {
	defer repo.db.lockWrite(exec)()

	if _, ok := repo.db.beds[bed.ID]; !ok {
		return property.Bed{}, property.ErrBedNotFound
	}
	if repo.bedNumberTaken(bed.RoomID, bed.BedNumber, bed.ID) {
		return property.Bed{}, property.ErrBedNumberExists
	}
	stored := bed
	stored.Tenant = nil
	repo.db.beds[bed.ID] = stored
	return bed, nil
}

func (repo *propertyRepository) SetBedOccupied(_ context.Context, id int, occupied bool, exec ...core.DBExecutor) error {
	defer repo.db.lockWrite(exec)()

	bed, ok := repo.db.beds[id]
	if !ok {
		return property.ErrBedNotFound
	}
	bed.IsOccupied = occupied
	repo.db.beds[id] = bed
	return nil
}

func (repo *propertyRepository) DeleteBed(_ context.Context, id int, exec ...core.DBExecutor) error {
	defer repo.db.lockWrite(exec)()
	repo.db.deleteBed(id)
	return nil
}
