package sqlxrepos

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/pgkhata/pgkhata/core"
	"github.com/pgkhata/pgkhata/core/complaint"
	"github.com/pgkhata/pgkhata/core/dashboard"
	"github.com/pgkhata/pgkhata/core/rent"
	"github.com/pgkhata/pgkhata/core/tenant"
)

const (
	rentSummaryQuery = `
SELECT COALESCE(SUM(r.amount_due), 0)                            AS expected,
       COALESCE(SUM(r.amount_paid), 0)                           AS collected,
       COALESCE(SUM(GREATEST(r.amount_due - r.amount_paid, 0)), 0) AS pending
FROM rent_records r
         INNER JOIN pgs p ON p.id = r.pg_id
WHERE p.owner_id = $1
  AND r.month = $2`

	countActiveTenantsQuery = `
SELECT COUNT(*)
FROM tenants t
         INNER JOIN pgs p ON p.id = t.pg_id
WHERE p.owner_id = $1
  AND t.status = $2`

	countOpenComplaintsQuery = `
SELECT COUNT(*)
FROM complaints c
         INNER JOIN pgs p ON p.id = c.pg_id
WHERE p.owner_id = $1
  AND c.status = $2`
)

// dashboardRepository runs the aggregate queries of the owner dashboard.
type dashboardRepository struct {
	db *sqlx.DB
}

var _ dashboard.Repository = (*dashboardRepository)(nil) // interface compliance check

func NewDashboardRepository(db *sql.DB) *dashboardRepository {
	return &dashboardRepository{db: sqlx.NewDb(db, "postgres")}
}

// queryer uses the executor handed down by the service when it speaks sqlx.
func (repo dashboardRepository) queryer(svcExec []core.DBExecutor) sqlx.QueryerContext {
	if len(svcExec) > 0 {
		if q, ok := svcExec[0].(sqlx.QueryerContext); ok {
			return q
		}
	}
	return repo.db
}

func (repo dashboardRepository) RentSummary(ctx context.Context, ownerID int, month core.Date, exec ...core.DBExecutor) (rent.Summary, error) {
	var sum rent.Summary
	if err := sqlx.GetContext(ctx, repo.queryer(exec), &sum, rentSummaryQuery, ownerID, month.MonthStart().Time); err != nil {
		return rent.Summary{}, errors.Wrap(err, "summing rent records")
	}
	return sum.Round(), nil
}

func (repo dashboardRepository) CountActiveTenants(ctx context.Context, ownerID int, exec ...core.DBExecutor) (int, error) {
	var count int
	if err := sqlx.GetContext(ctx, repo.queryer(exec), &count, countActiveTenantsQuery, ownerID, tenant.StatusActive); err != nil {
		return 0, errors.Wrap(err, "counting active tenants")
	}
	return count, nil
}

func (repo dashboardRepository) CountOpenComplaints(ctx context.Context, ownerID int, exec ...core.DBExecutor) (int, error) {
	var count int
	if err := sqlx.GetContext(ctx, repo.queryer(exec), &count, countOpenComplaintsQuery, ownerID, complaint.StatusOpen); err != nil {
		return 0, errors.Wrap(err, "counting open complaints")
	}
	return count, nil
}
