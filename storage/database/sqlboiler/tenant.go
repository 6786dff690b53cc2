package boiledrepos

import (
	"context"

	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"
	"github.com/volatiletech/sqlboiler/v4/queries/qm"

	"github.com/pgkhata/pgkhata/core"
	"github.com/pgkhata/pgkhata/core/tenant"
	"github.com/pgkhata/pgkhata/storage/database"
	"github.com/pgkhata/pgkhata/storage/database/sqlboiler/models"
)

type tenantRepository struct {
	repository
}

var _ tenant.Repository = (*tenantRepository)(nil) // interface compliance check

func NewTenantRepository(exec core.DBExecutor) *tenantRepository {
	return &tenantRepository{repository{exec: exec}}
}

type tenantRow struct {
	models.Tenant `boil:",bind"`
	BedNumber     null.String  `boil:"bed_number"`
	MonthlyPrice  null.Float64 `boil:"monthly_price"`
	RoomID        null.Int     `boil:"room_id"`
	RoomNumber    null.String  `boil:"room_number"`
	Floor         null.Int     `boil:"floor"`
	RoomType      null.String  `boil:"room_type"`
	PGName        string       `boil:"pg_name"`
}

func (repo tenantRepository) boil(tnt tenant.Tenant) *models.Tenant {
	return &models.Tenant{
		ID:              tnt.ID,
		PGID:            tnt.PGID,
		BedID:           null.NewInt(tnt.BedID, tnt.BedID != 0),
		Name:            tnt.Name,
		Phone:           tnt.Phone,
		Email:           nullString(tnt.Email),
		IDProof:         nullString(tnt.IDProof),
		CheckInDate:     tnt.CheckInDate.Time,
		CheckOutDate:    nullDate(tnt.CheckOutDate),
		Status:          tnt.Status,
		SecurityDeposit: tnt.SecurityDeposit,
		CreatedAt:       tnt.CreatedAt.UTC(),
	}
}

func (repo tenantRepository) unboil(row tenantRow) tenant.Tenant {
	tnt := tenant.Tenant{
		ID:              row.ID,
		PGID:            row.PGID,
		BedID:           row.BedID.Int,
		Name:            row.Name,
		Phone:           row.Phone,
		Email:           row.Email.String,
		IDProof:         row.IDProof.String,
		CheckInDate:     core.DateOf(row.CheckInDate),
		CheckOutDate:    datePtr(row.CheckOutDate),
		Status:          row.Status,
		SecurityDeposit: row.SecurityDeposit,
		CreatedAt:       row.CreatedAt.UTC(),
	}
	if row.BedNumber.Valid {
		tnt.Bed = &tenant.Bed{
			ID:           row.BedID.Int,
			BedNumber:    row.BedNumber.String,
			MonthlyPrice: row.MonthlyPrice.Float64,
		}
		if row.RoomID.Valid {
			tnt.Bed.Room = &tenant.Room{
				ID:         row.RoomID.Int,
				RoomNumber: row.RoomNumber.String,
				Floor:      row.Floor.Int,
				Type:       row.RoomType.String,
			}
		}
	}
	if row.PGName != "" {
		tnt.PG = &tenant.PG{ID: row.PGID, Name: row.PGName}
	}
	return tnt
}

func (repo tenantRepository) baseMods() []qm.QueryMod {
	return []qm.QueryMod{
		qm.Select(
			"\"tenants\".*",
			"\"beds\".\"bed_number\" AS bed_number",
			"\"beds\".\"monthly_price\" AS monthly_price",
			"\"rooms\".\"id\" AS room_id",
			"\"rooms\".\"room_number\" AS room_number",
			"\"rooms\".\"floor\" AS floor",
			"\"rooms\".\"type\" AS room_type",
			"\"pgs\".\"name\" AS pg_name",
		),
		qm.From(models.Quote(models.TableNames.Tenants)),
		qm.InnerJoin("\"pgs\" ON \"pgs\".\"id\" = \"tenants\".\"pg_id\""),
		qm.LeftOuterJoin("\"beds\" ON \"beds\".\"id\" = \"tenants\".\"bed_id\""),
		qm.LeftOuterJoin("\"rooms\" ON \"rooms\".\"id\" = \"beds\".\"room_id\""),
	}
}

func (repo tenantRepository) QueryTenants(ctx context.Context, filter tenant.QueryFilter, page core.Page, exec ...core.DBExecutor) ([]tenant.Tenant, error) {
	mods := repo.baseMods()
	if filter.OwnerID != 0 {
		mods = append(mods, qm.Where(ownedBy, filter.OwnerID))
	}
	if filter.PGID != 0 {
		mods = append(mods, models.TenantWhere.PGID.EQ(filter.PGID))
	}
	if filter.Status != "" {
		mods = append(mods, models.TenantWhere.Status.EQ(filter.Status))
	}
	if filter.Search != "" {
		val := "%" + filter.Search + "%"
		mods = append(mods, qm.Expr(qm.Where("\"tenants\".\"name\" ILIKE ? OR \"tenants\".\"phone\" ILIKE ?", val, val)))
	}
	mods = append(mods, qm.OrderBy("\"tenants\".\"id\""))
	mods = append(mods, pageMods(page)...)

	var rows []tenantRow
	if err := models.NewQuery(mods...).Bind(ctx, repo.getExec(exec), &rows); err != nil {
		return nil, errors.Wrap(err, "querying tenants")
	}
	tenants := make([]tenant.Tenant, 0, len(rows))
	for _, row := range rows {
		tenants = append(tenants, repo.unboil(row))
	}
	return tenants, nil
}

func (repo tenantRepository) GetTenant(ctx context.Context, ownerID, id int, exec ...core.DBExecutor) (tenant.Tenant, error) {
	mods := append(repo.baseMods(), models.TenantWhere.ID.EQ(id), qm.Limit(1))
	if ownerID != 0 {
		mods = append(mods, qm.Where(ownedBy, ownerID))
	}

	var row tenantRow
	if err := models.NewQuery(mods...).Bind(ctx, repo.getExec(exec), &row); err != nil {
		return tenant.Tenant{}, trapNoRowsErr(err, tenant.ErrNotFound, "finding tenant")
	}
	return repo.unboil(row), nil
}

func (repo tenantRepository) CreateTenant(ctx context.Context, tnt tenant.Tenant, exec ...core.DBExecutor) (tenant.Tenant, error) {
	t := repo.boil(tnt)
	if err := t.Insert(ctx, repo.getExec(exec)); err != nil {
		if database.IsUniqueViolation(err) {
			return tenant.Tenant{}, tenant.ErrBedOccupied
		}
		return tenant.Tenant{}, errors.Wrap(err, "inserting tenant")
	}
	return repo.unboil(tenantRow{Tenant: *t}), nil
}

func (repo tenantRepository) UpdateTenant(ctx context.Context, tnt tenant.Tenant, exec ...core.DBExecutor) (tenant.Tenant, error) {
	t := repo.boil(tnt)
	rowsAff, err := t.Update(ctx, repo.getExec(exec))
	if err != nil {
		return tenant.Tenant{}, errors.Wrap(err, "updating tenant")
	}
	if rowsAff == 0 {
		return tenant.Tenant{}, tenant.ErrNotFound
	}
	updated := repo.unboil(tenantRow{Tenant: *t})
	updated.Bed, updated.PG = tnt.Bed, tnt.PG
	return updated, nil
}

func (repo tenantRepository) DeleteTenant(ctx context.Context, id int, exec ...core.DBExecutor) error {
	if _, err := (&models.Tenant{ID: id}).Delete(ctx, repo.getExec(exec)); err != nil {
		return errors.Wrap(err, "deleting tenant")
	}
	return nil
}
