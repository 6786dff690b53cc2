package boiledrepos

import (
	"context"

	"github.com/pkg/errors"
	"github.com/volatiletech/sqlboiler/v4/queries/qm"

	"github.com/pgkhata/pgkhata/core"
	"github.com/pgkhata/pgkhata/core/complaint"
	"github.com/pgkhata/pgkhata/storage/database/sqlboiler/models"
)

type complaintRepository struct {
	repository
}

var _ complaint.Repository = (*complaintRepository)(nil) // interface compliance check

func NewComplaintRepository(exec core.DBExecutor) *complaintRepository {
	return &complaintRepository{repository{exec: exec}}
}

type complaintRow struct {
	models.Complaint `boil:",bind"`
	TenantName       string `boil:"tenant_name"`
}

func (repo complaintRepository) boil(cpl complaint.Complaint) *models.Complaint {
	return &models.Complaint{
		ID:          cpl.ID,
		TenantID:    cpl.TenantID,
		PGID:        cpl.PGID,
		Title:       cpl.Title,
		Description: nullString(cpl.Description),
		Status:      cpl.Status,
		CreatedAt:   cpl.CreatedAt.UTC(),
		ResolvedAt:  nullTime(cpl.ResolvedAt),
	}
}

func (repo complaintRepository) unboil(row complaintRow) complaint.Complaint {
	return complaint.Complaint{
		ID:          row.ID,
		TenantID:    row.TenantID,
		PGID:        row.PGID,
		Title:       row.Title,
		Description: row.Description.String,
		Status:      row.Status,
		CreatedAt:   row.CreatedAt.UTC(),
		ResolvedAt:  timePtr(row.ResolvedAt),
		TenantName:  row.TenantName,
	}
}

func (repo complaintRepository) baseMods() []qm.QueryMod {
	return []qm.QueryMod{
		qm.Select("\"complaints\".*", "\"tenants\".\"name\" AS tenant_name"),
		qm.From(models.Quote(models.TableNames.Complaints)),
		qm.InnerJoin("\"tenants\" ON \"tenants\".\"id\" = \"complaints\".\"tenant_id\""),
		qm.InnerJoin("\"pgs\" ON \"pgs\".\"id\" = \"complaints\".\"pg_id\""),
	}
}

func (repo complaintRepository) QueryComplaints(ctx context.Context, filter complaint.QueryFilter, page core.Page, exec ...core.DBExecutor) ([]complaint.Complaint, error) {
	mods := repo.baseMods()
	if filter.OwnerID != 0 {
		mods = append(mods, qm.Where(ownedBy, filter.OwnerID))
	}
	if filter.Status != "" {
		mods = append(mods, models.ComplaintWhere.Status.EQ(filter.Status))
	}
	if filter.PGID != 0 {
		mods = append(mods, models.ComplaintWhere.PGID.EQ(filter.PGID))
	}
	if filter.TenantID != 0 {
		mods = append(mods, models.ComplaintWhere.TenantID.EQ(filter.TenantID))
	}
	mods = append(mods, qm.OrderBy("\"complaints\".\"created_at\" DESC, \"complaints\".\"id\" DESC"))
	mods = append(mods, pageMods(page)...)

	var rows []complaintRow
	if err := models.NewQuery(mods...).Bind(ctx, repo.getExec(exec), &rows); err != nil {
		return nil, errors.Wrap(err, "querying complaints")
	}
	cpls := make([]complaint.Complaint, 0, len(rows))
	for _, row := range rows {
		cpls = append(cpls, repo.unboil(row))
	}
	return cpls, nil
}

func (repo complaintRepository) GetComplaint(ctx context.Context, ownerID, id int, exec ...core.DBExecutor) (complaint.Complaint, error) {
	mods := append(repo.baseMods(), models.ComplaintWhere.ID.EQ(id), qm.Limit(1))
	if ownerID != 0 {
		mods = append(mods, qm.Where(ownedBy, ownerID))
	}

	var row complaintRow
	if err := models.NewQuery(mods...).Bind(ctx, repo.getExec(exec), &row); err != nil {
		return complaint.Complaint{}, trapNoRowsErr(err, complaint.ErrNotFound, "finding complaint")
	}
	return repo.unboil(row), nil
}

func (repo complaintRepository) CreateComplaint(ctx context.Context, cpl complaint.Complaint, exec ...core.DBExecutor) (complaint.Complaint, error) {
	c := repo.boil(cpl)
	if err := c.Insert(ctx, repo.getExec(exec)); err != nil {
		return complaint.Complaint{}, errors.Wrap(err, "inserting complaint")
	}
	return repo.unboil(complaintRow{Complaint: *c, TenantName: cpl.TenantName}), nil
}

func (repo complaintRepository) UpdateComplaint(ctx context.Context, cpl complaint.Complaint, exec ...core.DBExecutor) (complaint.Complaint, error) {
	c := repo.boil(cpl)
	rowsAff, err := c.Update(ctx, repo.getExec(exec))
	if err != nil {
		return complaint.Complaint{}, errors.Wrap(err, "updating complaint")
	}
	if rowsAff == 0 {
		return complaint.Complaint{}, complaint.ErrNotFound
	}
	return repo.unboil(complaintRow{Complaint: *c, TenantName: cpl.TenantName}), nil
}
