package property

import (
	"context"

	"github.com/pkg/errors"

	"github.com/pgkhata/pgkhata/core"
)

var (
	// errors
	ErrPGNotFound      = core.NewNotFoundError("PG")
	ErrRoomNotFound    = core.NewNotFoundError("room")
	ErrBedNotFound     = core.NewNotFoundError("bed")
	ErrBedNumberExists = errors.New("bed number already exists in this room")
	ErrBedOccupied     = errors.New("cannot delete an occupied bed")
	ErrRoomOccupied    = errors.New("cannot delete a room with occupied beds")
	ErrPGOccupied      = errors.New("cannot delete a PG with occupied beds")
)

type (
	// GetBedFilter selects a single bed visible to OwnerID.
	// ForUpdate locks the bed row until the end of the current transaction.
	GetBedFilter struct {
		ID        int
		OwnerID   int
		ForUpdate bool
	}

	Repository interface {
		QueryPGs(ctx context.Context, filter PGFilter, page core.Page, exec ...core.DBExecutor) ([]PG, error)
		GetPG(ctx context.Context, ownerID, id int, exec ...core.DBExecutor) (PG, error)
		CreatePG(ctx context.Context, pg PG, exec ...core.DBExecutor) (PG, error)
		UpdatePG(ctx context.Context, pg PG, exec ...core.DBExecutor) (PG, error)
		DeletePG(ctx context.Context, id int, exec ...core.DBExecutor) error

		QueryRooms(ctx context.Context, pgIDs []int, exec ...core.DBExecutor) ([]Room, error)
		GetRoom(ctx context.Context, ownerID, id int, exec ...core.DBExecutor) (Room, error)
		CreateRoom(ctx context.Context, room Room, exec ...core.DBExecutor) (Room, error)
		UpdateRoom(ctx context.Context, room Room, exec ...core.DBExecutor) (Room, error)
		DeleteRoom(ctx context.Context, id int, exec ...core.DBExecutor) error

		// QueryBeds returns the beds of the given rooms along with their active tenant.
		QueryBeds(ctx context.Context, roomIDs []int, exec ...core.DBExecutor) ([]Bed, error)
		GetBed(ctx context.Context, filter GetBedFilter, exec ...core.DBExecutor) (Bed, error)
		CheckBedNumberUniqueness(ctx context.Context, roomID int, bedNumber string, excludedID int, exec ...core.DBExecutor) error
		CreateBed(ctx context.Context, bed Bed, exec ...core.DBExecutor) (Bed, error)
		UpdateBed(ctx context.Context, bed Bed, exec ...core.DBExecutor) (Bed, error)
		SetBedOccupied(ctx context.Context, id int, occupied bool, exec ...core.DBExecutor) error
		DeleteBed(ctx context.Context, id int, exec ...core.DBExecutor) error
	}

	Service interface {
		QueryPGs(ctx context.Context, filter PGFilter, page core.Page) ([]PG, error)
		GetPG(ctx context.Context, ownerID, id int) (PG, error)
		CreatePG(ctx context.Context, ownerID int, np NewPG) (PG, error)
		UpdatePG(ctx context.Context, pg PG, up UpdatePG) (PG, error)
		DeletePG(ctx context.Context, pg PG) error

		GetRoom(ctx context.Context, ownerID, id int) (Room, error)
		CreateRoom(ctx context.Context, pg PG, nr NewRoom) (Room, error)
		UpdateRoom(ctx context.Context, room Room, ur UpdateRoom) (Room, error)
		DeleteRoom(ctx context.Context, room Room) error

		GetBed(ctx context.Context, ownerID, id int) (Bed, error)
		CreateBed(ctx context.Context, room Room, nb NewBed) (Bed, error)
		UpdateBed(ctx context.Context, bed Bed, ub UpdateBed) (Bed, error)
		DeleteBed(ctx context.Context, bed Bed) error

		Vacancies(ctx context.Context, ownerID, pgID, roomID int) (Vacancies, error)
	}

	service struct {
		tx   core.Transactor
		repo Repository
	}
)

var _ Service = (*service)(nil)

func NewService(tx core.Transactor, repo Repository) Service {
	return &service{tx: tx, repo: repo}
}

// nest loads the rooms & beds of the given PGs, keeping their order.
func (svc *service) nest(ctx context.Context, pgs []PG, exec ...core.DBExecutor) ([]PG, error) {
	if len(pgs) == 0 {
		return pgs, nil
	}
	pgIDs := make([]int, 0, len(pgs))
	for _, pg := range pgs {
		pgIDs = append(pgIDs, pg.ID)
	}
	rooms, err := svc.repo.QueryRooms(ctx, pgIDs, exec...)
	if err != nil {
		return nil, errors.Wrap(err, "querying rooms")
	}
	rooms, err = svc.nestBeds(ctx, rooms, exec...)
	if err != nil {
		return nil, err
	}

	byPG := make(map[int][]Room, len(pgs))
	for _, room := range rooms {
		byPG[room.PGID] = append(byPG[room.PGID], room)
	}
	for i := range pgs {
		pgs[i].Rooms = byPG[pgs[i].ID]
		if pgs[i].Rooms == nil {
			pgs[i].Rooms = []Room{}
		}
	}
	return pgs, nil
}

func (svc *service) nestBeds(ctx context.Context, rooms []Room, exec ...core.DBExecutor) ([]Room, error) {
	if len(rooms) == 0 {
		return rooms, nil
	}
	roomIDs := make([]int, 0, len(rooms))
	for _, room := range rooms {
		roomIDs = append(roomIDs, room.ID)
	}
	beds, err := svc.repo.QueryBeds(ctx, roomIDs, exec...)
	if err != nil {
		return nil, errors.Wrap(err, "querying beds")
	}

	byRoom := make(map[int][]Bed, len(rooms))
	for _, bed := range beds {
		byRoom[bed.RoomID] = append(byRoom[bed.RoomID], bed)
	}
	for i := range rooms {
		rooms[i].Beds = byRoom[rooms[i].ID]
		if rooms[i].Beds == nil {
			rooms[i].Beds = []Bed{}
		}
	}
	return rooms, nil
}

func (svc *service) QueryPGs(ctx context.Context, filter PGFilter, page core.Page) ([]PG, error) {
	pgs, err := svc.repo.QueryPGs(ctx, filter, page)
	if err != nil {
		return nil, errors.Wrap(err, "querying PGs")
	}
	return svc.nest(ctx, pgs)
}

func (svc *service) GetPG(ctx context.Context, ownerID, id int) (PG, error) {
	return svc.getPG(ctx, ownerID, id)
}

func (svc *service) getPG(ctx context.Context, ownerID, id int, exec ...core.DBExecutor) (PG, error) {
	pg, err := svc.repo.GetPG(ctx, ownerID, id, exec...)
	if err != nil {
		return PG{}, err
	}
	pgs, err := svc.nest(ctx, []PG{pg}, exec...)
	if err != nil {
		return PG{}, err
	}
	return pgs[0], nil
}

func (svc *service) CreatePG(ctx context.Context, ownerID int, np NewPG) (PG, error) {
	pg, err := svc.repo.CreatePG(ctx, PG{
		OwnerID:       ownerID,
		Name:          np.Name,
		Address:       np.Address,
		City:          np.City,
		Description:   np.Description,
		ContactNumber: np.ContactNumber,
		CreatedAt:     core.NowFunc().UTC(),
	})
	if err != nil {
		return PG{}, errors.Wrap(err, "creating PG")
	}
	pg.Rooms = []Room{}
	return pg, nil
}

func (svc *service) UpdatePG(ctx context.Context, pg PG, up UpdatePG) (PG, error) {
	rooms := pg.Rooms
	pg, err := svc.repo.UpdatePG(ctx, up.apply(pg))
	if err != nil {
		return PG{}, errors.Wrap(err, "updating PG")
	}
	pg.Rooms = rooms
	return pg, nil
}

// DeletePG deletes pg along with its rooms & beds. PGs with occupied beds are kept.
func (svc *service) DeletePG(ctx context.Context, pg PG) error {
	return svc.tx.WithinTx(ctx, func(exec core.DBExecutor) error {
		current, err := svc.getPG(ctx, pg.OwnerID, pg.ID, exec)
		if err != nil {
			return err
		}
		if current.HasOccupiedBed() {
			return core.NewValidationError(ErrPGOccupied)
		}
		return errors.Wrap(svc.repo.DeletePG(ctx, pg.ID, exec), "deleting PG")
	})
}

func (svc *service) GetRoom(ctx context.Context, ownerID, id int) (Room, error) {
	return svc.getRoom(ctx, ownerID, id)
}

func (svc *service) getRoom(ctx context.Context, ownerID, id int, exec ...core.DBExecutor) (Room, error) {
	room, err := svc.repo.GetRoom(ctx, ownerID, id, exec...)
	if err != nil {
		return Room{}, err
	}
	rooms, err := svc.nestBeds(ctx, []Room{room}, exec...)
	if err != nil {
		return Room{}, err
	}
	return rooms[0], nil
}

func (svc *service) CreateRoom(ctx context.Context, pg PG, nr NewRoom) (Room, error) {
	room, err := svc.repo.CreateRoom(ctx, Room{
		PGID:       pg.ID,
		RoomNumber: nr.RoomNumber,
		Floor:      nr.Floor,
		Type:       nr.Type,
	})
	if err != nil {
		return Room{}, errors.Wrap(err, "creating room")
	}
	room.Beds = []Bed{}
	return room, nil
}

func (svc *service) UpdateRoom(ctx context.Context, room Room, ur UpdateRoom) (Room, error) {
	beds := room.Beds
	room, err := svc.repo.UpdateRoom(ctx, ur.apply(room))
	if err != nil {
		return Room{}, errors.Wrap(err, "updating room")
	}
	room.Beds = beds
	return room, nil
}

// DeleteRoom deletes room along with its beds. Rooms with occupied beds are kept.
func (svc *service) DeleteRoom(ctx context.Context, room Room) error {
	return svc.tx.WithinTx(ctx, func(exec core.DBExecutor) error {
		beds, err := svc.repo.QueryBeds(ctx, []int{room.ID}, exec)
		if err != nil {
			return errors.Wrap(err, "querying beds")
		}
		if (Room{Beds: beds}).HasOccupiedBed() {
			return core.NewValidationError(ErrRoomOccupied)
		}
		return errors.Wrap(svc.repo.DeleteRoom(ctx, room.ID, exec), "deleting room")
	})
}

func (svc *service) GetBed(ctx context.Context, ownerID, id int) (Bed, error) {
	return svc.repo.GetBed(ctx, GetBedFilter{ID: id, OwnerID: ownerID})
}

func (svc *service) checkBedNumber(ctx context.Context, roomID int, bedNumber string, excludedID int) error {
	if err := svc.repo.CheckBedNumberUniqueness(ctx, roomID, bedNumber, excludedID); err != nil {
		if errors.Cause(err) == ErrBedNumberExists {
			return core.NewValidationError(ErrBedNumberExists, core.FieldError{Field: "bed_number", Error: ErrBedNumberExists.Error()})
		}
		return errors.Wrap(err, "checking bed number uniqueness")
	}
	return nil
}

// CreateBed adds a vacant bed to room.
func (svc *service) CreateBed(ctx context.Context, room Room, nb NewBed) (Bed, error) {
	if err := svc.checkBedNumber(ctx, room.ID, nb.BedNumber, 0); err != nil {
		return Bed{}, err
	}
	bed, err := svc.repo.CreateBed(ctx, Bed{
		RoomID:       room.ID,
		PGID:         room.PGID,
		BedNumber:    nb.BedNumber,
		MonthlyPrice: core.RoundMoney(nb.MonthlyPrice),
	})
	if err != nil {
		if errors.Cause(err) == ErrBedNumberExists {
			return Bed{}, core.NewValidationError(ErrBedNumberExists, core.FieldError{Field: "bed_number", Error: ErrBedNumberExists.Error()})
		}
		return Bed{}, errors.Wrap(err, "creating bed")
	}
	return bed, nil
}

func (svc *service) UpdateBed(ctx context.Context, bed Bed, ub UpdateBed) (Bed, error) {
	updated := ub.apply(bed)
	if updated.BedNumber != bed.BedNumber {
		if err := svc.checkBedNumber(ctx, bed.RoomID, updated.BedNumber, bed.ID); err != nil {
			return Bed{}, err
		}
	}
	updated, err := svc.repo.UpdateBed(ctx, updated)
	if err != nil {
		return Bed{}, errors.Wrap(err, "updating bed")
	}
	return updated, nil
}

func (svc *service) DeleteBed(ctx context.Context, bed Bed) error {
	return svc.tx.WithinTx(ctx, func(exec core.DBExecutor) error {
		current, err := svc.repo.GetBed(ctx, GetBedFilter{ID: bed.ID, ForUpdate: true}, exec)
		if err != nil {
			return err
		}
		if current.IsOccupied {
			return core.NewValidationError(ErrBedOccupied)
		}
		return errors.Wrap(svc.repo.DeleteBed(ctx, bed.ID, exec), "deleting bed")
	})
}

// Vacancies lists the rooms of a PG that still have a vacant bed; when roomID is set,
// the vacant beds of that room are listed as well.
func (svc *service) Vacancies(ctx context.Context, ownerID, pgID, roomID int) (Vacancies, error) {
	pg, err := svc.GetPG(ctx, ownerID, pgID)
	if err != nil {
		return Vacancies{}, err
	}

	vac := Vacancies{PGID: pg.ID, Rooms: RoomsWithVacancy(pg), Beds: []Bed{}}
	if roomID != 0 {
		var found bool
		for _, room := range pg.Rooms {
			if room.ID == roomID {
				vac.Beds = VacantBeds(room)
				found = true
				break
			}
		}
		if !found {
			return Vacancies{}, ErrRoomNotFound
		}
	}
	return vac, nil
}
