package boiledrepos

import (
	"context"

	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"
	"github.com/volatiletech/sqlboiler/v4/queries/qm"

	"github.com/pgkhata/pgkhata/core"
	"github.com/pgkhata/pgkhata/core/rent"
	"github.com/pgkhata/pgkhata/core/tenant"
	"github.com/pgkhata/pgkhata/storage/database"
	"github.com/pgkhata/pgkhata/storage/database/sqlboiler/models"
)

type rentRepository struct {
	repository
}

var _ rent.Repository = (*rentRepository)(nil) // interface compliance check

func NewRentRepository(exec core.DBExecutor) *rentRepository {
	return &rentRepository{repository{exec: exec}}
}

type recordRow struct {
	models.RentRecord `boil:",bind"`
	TenantName        string      `boil:"tenant_name"`
	TenantEmail       null.String `boil:"tenant_email"`
	PGName            string      `boil:"pg_name"`
}

type billableRow struct {
	TenantID     int     `boil:"tenant_id"`
	PGID         int     `boil:"pg_id"`
	MonthlyPrice float64 `boil:"monthly_price"`
}

func (repo rentRepository) boil(rec rent.Record) *models.RentRecord {
	return &models.RentRecord{
		ID:          rec.ID,
		TenantID:    rec.TenantID,
		PGID:        rec.PGID,
		Month:       rec.Month.Time,
		AmountDue:   rec.AmountDue,
		AmountPaid:  rec.AmountPaid,
		Status:      rec.Status,
		PaymentDate: nullDate(rec.PaymentDate),
	}
}

func (repo rentRepository) unboil(row recordRow) rent.Record {
	return rent.Record{
		ID:          row.ID,
		TenantID:    row.TenantID,
		PGID:        row.PGID,
		Month:       core.DateOf(row.Month),
		AmountDue:   row.AmountDue,
		AmountPaid:  row.AmountPaid,
		Status:      row.Status,
		PaymentDate: datePtr(row.PaymentDate),
		TenantName:  row.TenantName,
		TenantEmail: row.TenantEmail.String,
		PGName:      row.PGName,
	}
}

func (repo rentRepository) baseMods() []qm.QueryMod {
	return []qm.QueryMod{
		qm.Select(
			"\"rent_records\".*",
			"\"tenants\".\"name\" AS tenant_name",
			"\"tenants\".\"email\" AS tenant_email",
			"\"pgs\".\"name\" AS pg_name",
		),
		qm.From(models.Quote(models.TableNames.RentRecords)),
		qm.InnerJoin("\"tenants\" ON \"tenants\".\"id\" = \"rent_records\".\"tenant_id\""),
		qm.InnerJoin("\"pgs\" ON \"pgs\".\"id\" = \"rent_records\".\"pg_id\""),
	}
}

func (repo rentRepository) QueryRecords(ctx context.Context, filter rent.QueryFilter, page core.Page, exec ...core.DBExecutor) ([]rent.Record, error) {
	mods := repo.baseMods()
	if filter.OwnerID != 0 {
		mods = append(mods, qm.Where(ownedBy, filter.OwnerID))
	}
	if !filter.Month.IsZero() {
		mods = append(mods, models.RentRecordWhere.Month.EQ(filter.Month.MonthStart().Time))
	}
	if len(filter.Statuses) > 0 {
		mods = append(mods, models.RentRecordWhere.Status.IN(filter.Statuses))
	}
	if filter.PGID != 0 {
		mods = append(mods, models.RentRecordWhere.PGID.EQ(filter.PGID))
	}
	if filter.TenantID != 0 {
		mods = append(mods, models.RentRecordWhere.TenantID.EQ(filter.TenantID))
	}
	if filter.OnlyWithEmail {
		mods = append(mods, qm.Where("COALESCE(\"tenants\".\"email\", '') <> ''"))
	}
	mods = append(mods, qm.OrderBy("\"rent_records\".\"month\" DESC, \"rent_records\".\"id\""))
	mods = append(mods, pageMods(page)...)

	var rows []recordRow
	if err := models.NewQuery(mods...).Bind(ctx, repo.getExec(exec), &rows); err != nil {
		return nil, errors.Wrap(err, "querying rent records")
	}
	recs := make([]rent.Record, 0, len(rows))
	for _, row := range rows {
		recs = append(recs, repo.unboil(row))
	}
	return recs, nil
}

func (repo rentRepository) GetRecord(ctx context.Context, ownerID, id int, exec ...core.DBExecutor) (rent.Record, error) {
	mods := append(repo.baseMods(), models.RentRecordWhere.ID.EQ(id), qm.Limit(1))
	if ownerID != 0 {
		mods = append(mods, qm.Where(ownedBy, ownerID))
	}

	var row recordRow
	if err := models.NewQuery(mods...).Bind(ctx, repo.getExec(exec), &row); err != nil {
		return rent.Record{}, trapNoRowsErr(err, rent.ErrNotFound, "finding rent record")
	}
	return repo.unboil(row), nil
}

func (repo rentRepository) CreateRecord(ctx context.Context, rec rent.Record, exec ...core.DBExecutor) (rent.Record, error) {
	r := repo.boil(rec)
	if err := r.Insert(ctx, repo.getExec(exec)); err != nil {
		if database.IsUniqueViolation(err) {
			return rent.Record{}, rent.ErrRecordExists
		}
		return rent.Record{}, errors.Wrap(err, "inserting rent record")
	}
	created := repo.unboil(recordRow{RentRecord: *r})
	created.TenantName, created.TenantEmail, created.PGName = rec.TenantName, rec.TenantEmail, rec.PGName
	return created, nil
}

func (repo rentRepository) UpdateRecord(ctx context.Context, rec rent.Record, exec ...core.DBExecutor) (rent.Record, error) {
	r := repo.boil(rec)
	rowsAff, err := r.Update(ctx, repo.getExec(exec))
	if err != nil {
		return rent.Record{}, errors.Wrap(err, "updating rent record")
	}
	if rowsAff == 0 {
		return rent.Record{}, rent.ErrNotFound
	}
	updated := repo.unboil(recordRow{RentRecord: *r})
	updated.TenantName, updated.TenantEmail, updated.PGName = rec.TenantName, rec.TenantEmail, rec.PGName
	return updated, nil
}

func (repo rentRepository) QueryBillable(ctx context.Context, ownerID int, month core.Date, exec ...core.DBExecutor) ([]rent.Billable, error) {
	month = month.MonthStart()

	var rows []billableRow
	err := models.NewQuery(
		qm.Select(
			"\"tenants\".\"id\" AS tenant_id",
			"\"tenants\".\"pg_id\" AS pg_id",
			"\"beds\".\"monthly_price\" AS monthly_price",
		),
		qm.From(models.Quote(models.TableNames.Tenants)),
		qm.InnerJoin("\"pgs\" ON \"pgs\".\"id\" = \"tenants\".\"pg_id\""),
		qm.InnerJoin("\"beds\" ON \"beds\".\"id\" = \"tenants\".\"bed_id\""),
		qm.Where(ownedBy, ownerID),
		models.TenantWhere.Status.EQ(tenant.StatusActive),
		qm.Where("\"tenants\".\"check_in_date\" <= ?", month.MonthEnd().Time),
		qm.Where(
			"NOT EXISTS (SELECT 1 FROM \"rent_records\" WHERE \"rent_records\".\"tenant_id\" = \"tenants\".\"id\" AND \"rent_records\".\"month\" = ?)",
			month.Time,
		),
		qm.OrderBy("\"tenants\".\"id\""),
	).Bind(ctx, repo.getExec(exec), &rows)
	if err != nil {
		return nil, errors.Wrap(err, "querying billable tenants")
	}

	billables := make([]rent.Billable, 0, len(rows))
	for _, row := range rows {
		billables = append(billables, rent.Billable{TenantID: row.TenantID, PGID: row.PGID, MonthlyPrice: row.MonthlyPrice})
	}
	return billables, nil
}
