package boiledrepos

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"
	"github.com/volatiletech/sqlboiler/v4/queries/qm"

	"github.com/pgkhata/pgkhata/core"
	"github.com/pgkhata/pgkhata/core/property"
	"github.com/pgkhata/pgkhata/core/tenant"
	"github.com/pgkhata/pgkhata/storage/database"
	"github.com/pgkhata/pgkhata/storage/database/sqlboiler/models"
)

type propertyRepository struct {
	repository
}

var _ property.Repository = (*propertyRepository)(nil) // interface compliance check

func NewPropertyRepository(exec core.DBExecutor) *propertyRepository {
	return &propertyRepository{repository{exec: exec}}
}

// bedRow is a bed joined with its PG and its active tenant (if any).
type bedRow struct {
	models.Bed  `boil:",bind"`
	PGID        int         `boil:"pg_id"`
	TenantID    null.Int    `boil:"tenant_id"`
	TenantName  null.String `boil:"tenant_name"`
	TenantPhone null.String `boil:"tenant_phone"`
}

var (
	joinRoomsOnBeds = "\"rooms\" ON \"rooms\".\"id\" = \"beds\".\"room_id\""
	joinPGsOnRooms  = "\"pgs\" ON \"pgs\".\"id\" = \"rooms\".\"pg_id\""
	ownedBy         = "\"pgs\".\"owner_id\" = ?"
)

func (repo propertyRepository) boilPG(pg property.PG) *models.PG {
	return &models.PG{
		ID:            pg.ID,
		OwnerID:       pg.OwnerID,
		Name:          pg.Name,
		Address:       nullString(pg.Address),
		City:          nullString(pg.City),
		Description:   nullString(pg.Description),
		ContactNumber: nullString(pg.ContactNumber),
		CreatedAt:     pg.CreatedAt.UTC(),
	}
}

func (repo propertyRepository) unboilPG(pg *models.PG) property.PG {
	return property.PG{
		ID:            pg.ID,
		OwnerID:       pg.OwnerID,
		Name:          pg.Name,
		Address:       pg.Address.String,
		City:          pg.City.String,
		Description:   pg.Description.String,
		ContactNumber: pg.ContactNumber.String,
		CreatedAt:     pg.CreatedAt.UTC(),
	}
}

func (repo propertyRepository) unboilRoom(room *models.Room) property.Room {
	return property.Room{
		ID:         room.ID,
		PGID:       room.PGID,
		RoomNumber: room.RoomNumber,
		Floor:      room.Floor,
		Type:       room.Type,
	}
}

func (repo propertyRepository) unboilBed(row bedRow) property.Bed {
	bed := property.Bed{
		ID:           row.ID,
		RoomID:       row.RoomID,
		PGID:         row.PGID,
		BedNumber:    row.BedNumber,
		MonthlyPrice: row.MonthlyPrice,
		IsOccupied:   row.IsOccupied,
	}
	if row.TenantID.Valid {
		bed.Tenant = &property.BedTenant{ID: row.TenantID.Int, Name: row.TenantName.String, Phone: row.TenantPhone.String}
	}
	return bed
}

func (repo propertyRepository) QueryPGs(ctx context.Context, filter property.PGFilter, page core.Page, exec ...core.DBExecutor) ([]property.PG, error) {
	var mods []qm.QueryMod
	if filter.OwnerID != 0 {
		mods = append(mods, models.PGWhere.OwnerID.EQ(filter.OwnerID))
	}
	if len(filter.IDs) > 0 {
		mods = append(mods, models.PGWhere.ID.IN(filter.IDs))
	}
	if filter.Search != "" {
		val := "%" + filter.Search + "%"
		mods = append(mods, qm.Expr(qm.Where(
			fmt.Sprintf(
				"%s ILIKE ? OR %s ILIKE ? OR %s ILIKE ?",
				models.PGColumns.Name, models.PGColumns.Address, models.PGColumns.City),
			val, val, val)))
	}
	if filter.City != "" {
		mods = append(mods, qm.Where(fmt.Sprintf("%s ILIKE ?", models.PGColumns.City), filter.City))
	}
	mods = append(mods, qm.OrderBy(models.PGColumns.ID))
	mods = append(mods, pageMods(page)...)

	pgs, err := models.PGS(mods...).All(ctx, repo.getExec(exec))
	if err != nil {
		return nil, errors.Wrap(err, "querying PGs")
	}
	result := make([]property.PG, 0, len(pgs))
	for _, pg := range pgs {
		result = append(result, repo.unboilPG(pg))
	}
	return result, nil
}

func (repo propertyRepository) GetPG(ctx context.Context, ownerID, id int, exec ...core.DBExecutor) (property.PG, error) {
	mods := []qm.QueryMod{models.PGWhere.ID.EQ(id)}
	if ownerID != 0 {
		mods = append(mods, models.PGWhere.OwnerID.EQ(ownerID))
	}
	pg, err := models.PGS(mods...).One(ctx, repo.getExec(exec))
	if err != nil {
		return property.PG{}, trapNoRowsErr(err, property.ErrPGNotFound, "finding PG")
	}
	return repo.unboilPG(pg), nil
}

func (repo propertyRepository) CreatePG(ctx context.Context, pg property.PG, exec ...core.DBExecutor) (property.PG, error) {
	p := repo.boilPG(pg)
	if err := p.Insert(ctx, repo.getExec(exec)); err != nil {
		return property.PG{}, errors.Wrap(err, "inserting PG")
	}
	return repo.unboilPG(p), nil
}

func (repo propertyRepository) UpdatePG(ctx context.Context, pg property.PG, exec ...core.DBExecutor) (property.PG, error) {
	p := repo.boilPG(pg)
	if _, err := p.Update(ctx, repo.getExec(exec)); err != nil {
		return property.PG{}, errors.Wrap(err, "updating PG")
	}
	return repo.unboilPG(p), nil
}

func (repo propertyRepository) DeletePG(ctx context.Context, id int, exec ...core.DBExecutor) error {
	if _, err := (&models.PG{ID: id}).Delete(ctx, repo.getExec(exec)); err != nil {
		return errors.Wrap(err, "deleting PG")
	}
	return nil
}

func (repo propertyRepository) QueryRooms(ctx context.Context, pgIDs []int, exec ...core.DBExecutor) ([]property.Room, error) {
	if len(pgIDs) == 0 {
		return []property.Room{}, nil
	}
	rooms, err := models.Rooms(
		models.RoomWhere.PGID.IN(pgIDs),
		qm.OrderBy(models.RoomColumns.ID),
	).All(ctx, repo.getExec(exec))
	if err != nil {
		return nil, errors.Wrap(err, "querying rooms")
	}
	result := make([]property.Room, 0, len(rooms))
	for _, room := range rooms {
		result = append(result, repo.unboilRoom(room))
	}
	return result, nil
}

func (repo propertyRepository) GetRoom(ctx context.Context, ownerID, id int, exec ...core.DBExecutor) (property.Room, error) {
	mods := []qm.QueryMod{models.RoomWhere.ID.EQ(id)}
	if ownerID != 0 {
		mods = append(mods, qm.InnerJoin(joinPGsOnRooms), qm.Where(ownedBy, ownerID))
	}
	room, err := models.Rooms(mods...).One(ctx, repo.getExec(exec))
	if err != nil {
		return property.Room{}, trapNoRowsErr(err, property.ErrRoomNotFound, "finding room")
	}
	return repo.unboilRoom(room), nil
}

func (repo propertyRepository) CreateRoom(ctx context.Context, room property.Room, exec ...core.DBExecutor) (property.Room, error) {
	r := &models.Room{PGID: room.PGID, RoomNumber: room.RoomNumber, Floor: room.Floor, Type: room.Type}
	if err := r.Insert(ctx, repo.getExec(exec)); err != nil {
		return property.Room{}, errors.Wrap(err, "inserting room")
	}
	return repo.unboilRoom(r), nil
}

func (repo propertyRepository) UpdateRoom(ctx context.Context, room property.Room, exec ...core.DBExecutor) (property.Room, error) {
	r := &models.Room{ID: room.ID, PGID: room.PGID, RoomNumber: room.RoomNumber, Floor: room.Floor, Type: room.Type}
	if _, err := r.Update(ctx, repo.getExec(exec)); err != nil {
		return property.Room{}, errors.Wrap(err, "updating room")
	}
	return repo.unboilRoom(r), nil
}

func (repo propertyRepository) DeleteRoom(ctx context.Context, id int, exec ...core.DBExecutor) error {
	if _, err := (&models.Room{ID: id}).Delete(ctx, repo.getExec(exec)); err != nil {
		return errors.Wrap(err, "deleting room")
	}
	return nil
}

func (repo propertyRepository) QueryBeds(ctx context.Context, roomIDs []int, exec ...core.DBExecutor) ([]property.Bed, error) {
	if len(roomIDs) == 0 {
		return []property.Bed{}, nil
	}

	var rows []bedRow
	err := models.NewQuery(
		qm.Select(
			"\"beds\".*",
			"\"rooms\".\"pg_id\" AS pg_id",
			"\"tenants\".\"id\" AS tenant_id",
			"\"tenants\".\"name\" AS tenant_name",
			"\"tenants\".\"phone\" AS tenant_phone",
		),
		qm.From(models.Quote(models.TableNames.Beds)),
		qm.InnerJoin(joinRoomsOnBeds),
		qm.LeftOuterJoin("\"tenants\" ON \"tenants\".\"bed_id\" = \"beds\".\"id\" AND \"tenants\".\"status\" = ?", tenant.StatusActive),
		models.BedWhere.RoomID.IN(roomIDs),
		qm.OrderBy("\"beds\".\"id\""),
	).Bind(ctx, repo.getExec(exec), &rows)
	if err != nil {
		return nil, errors.Wrap(err, "querying beds")
	}

	beds := make([]property.Bed, 0, len(rows))
	for _, row := range rows {
		beds = append(beds, repo.unboilBed(row))
	}
	return beds, nil
}

func (repo propertyRepository) GetBed(ctx context.Context, filter property.GetBedFilter, exec ...core.DBExecutor) (property.Bed, error) {
	mods := []qm.QueryMod{
		qm.Select("\"beds\".*", "\"rooms\".\"pg_id\" AS pg_id"),
		qm.From(models.Quote(models.TableNames.Beds)),
		qm.InnerJoin(joinRoomsOnBeds),
		models.BedWhere.ID.EQ(filter.ID),
		qm.Limit(1),
	}
	if filter.OwnerID != 0 {
		mods = append(mods, qm.InnerJoin(joinPGsOnRooms), qm.Where(ownedBy, filter.OwnerID))
	}
	if filter.ForUpdate {
		mods = append(mods, qm.For("UPDATE OF \"beds\""))
	}

	var row bedRow
	if err := models.NewQuery(mods...).Bind(ctx, repo.getExec(exec), &row); err != nil {
		return property.Bed{}, trapNoRowsErr(err, property.ErrBedNotFound, "finding bed")
	}
	return repo.unboilBed(row), nil
}

func (repo propertyRepository) CheckBedNumberUniqueness(ctx context.Context, roomID int, bedNumber string, excludedID int, exec ...core.DBExecutor) error {
	mods := []qm.QueryMod{
		models.BedWhere.RoomID.EQ(roomID),
		models.BedWhere.BedNumber.EQ(bedNumber),
	}
	if excludedID != 0 {
		mods = append(mods, models.BedWhere.ID.NEQ(excludedID))
	}
	exists, err := models.Beds(mods...).Exists(ctx, repo.getExec(exec))
	if err != nil {
		return errors.Wrap(err, "checking bed number uniqueness")
	}
	if exists {
		return property.ErrBedNumberExists
	}
	return nil
}

func (repo propertyRepository) CreateBed(ctx context.Context, bed property.Bed, exec ...core.DBExecutor) (property.Bed, error) {
	b := &models.Bed{RoomID: bed.RoomID, BedNumber: bed.BedNumber, MonthlyPrice: bed.MonthlyPrice, IsOccupied: bed.IsOccupied}
	if err := b.Insert(ctx, repo.getExec(exec)); err != nil {
		if database.IsUniqueViolation(err) {
			return property.Bed{}, property.ErrBedNumberExists
		}
		return property.Bed{}, errors.Wrap(err, "inserting bed")
	}
	return repo.unboilBed(bedRow{Bed: *b, PGID: bed.PGID}), nil
}

func (repo propertyRepository) UpdateBed(ctx context.Context, bed property.Bed, exec ...core.DBExecutor) (property.Bed, error) {
	b := &models.Bed{ID: bed.ID, RoomID: bed.RoomID, BedNumber: bed.BedNumber, MonthlyPrice: bed.MonthlyPrice, IsOccupied: bed.IsOccupied}
	if _, err := b.Update(ctx, repo.getExec(exec)); err != nil {
		if database.IsUniqueViolation(err) {
			return property.Bed{}, property.ErrBedNumberExists
		}
		return property.Bed{}, errors.Wrap(err, "updating bed")
	}
	bed.BedNumber, bed.MonthlyPrice = b.BedNumber, b.MonthlyPrice
	return bed, nil
}

func (repo propertyRepository) SetBedOccupied(ctx context.Context, id int, occupied bool, exec ...core.DBExecutor) error {
	rowsAff, err := models.Beds(models.BedWhere.ID.EQ(id)).
		UpdateAll(ctx, repo.getExec(exec), models.M{models.BedColumns.IsOccupied: occupied})
	if err != nil {
		return errors.Wrap(err, "updating bed occupancy")
	}
	if rowsAff == 0 {
		return property.ErrBedNotFound
	}
	return nil
}

func (repo propertyRepository) DeleteBed(ctx context.Context, id int, exec ...core.DBExecutor) error {
	if _, err := (&models.Bed{ID: id}).Delete(ctx, repo.getExec(exec)); err != nil {
		return errors.Wrap(err, "deleting bed")
	}
	return nil
}
