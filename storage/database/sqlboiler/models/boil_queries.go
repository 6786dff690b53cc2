// Package models maps the PGKhata tables onto the sqlboiler runtime (queries, qm, boil).
// It follows the layout of sqlboiler generated models: one file per table exposing the row struct,
// its column names, where helpers, a query type and the Insert/Update/Delete statements.
package models

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/friendsofgo/errors"
	"github.com/volatiletech/sqlboiler/v4/boil"
	"github.com/volatiletech/sqlboiler/v4/drivers"
	"github.com/volatiletech/sqlboiler/v4/queries"
	"github.com/volatiletech/sqlboiler/v4/queries/qm"
	"github.com/volatiletech/sqlboiler/v4/queries/qmhelper"
	"github.com/volatiletech/strmangle"
)

var dialect = drivers.Dialect{
	LQ:                   0x22,
	RQ:                   0x22,
	UseIndexPlaceholders: true,
	UseDefaultKeyword:    true,
}

var TableNames = struct {
	Beds        string
	Complaints  string
	PGS         string
	RentRecords string
	Rooms       string
	Tenants     string
	Users       string
}{
	Beds:        "beds",
	Complaints:  "complaints",
	PGS:         "pgs",
	RentRecords: "rent_records",
	Rooms:       "rooms",
	Tenants:     "tenants",
	Users:       "users",
}

// NewQuery initializes a new Query using the passed in QueryMods
func NewQuery(mods ...qm.QueryMod) *queries.Query {
	q := &queries.Query{}
	queries.SetDialect(q, &dialect)
	qm.Apply(q, mods...)
	return q
}

// Quote quotes an identifier, qualifying it with its table when given as "table.column".
func Quote(ident string) string {
	return strmangle.IdentQuote(dialect.LQ, dialect.RQ, ident)
}

func debug(query string, args []interface{}) {
	if boil.DebugMode {
		fmt.Fprintln(boil.DebugWriter, query)
		fmt.Fprintln(boil.DebugWriter, args...)
	}
}

// insertRow inserts cols/vals into table and returns the generated primary key.
func insertRow(ctx context.Context, exec boil.ContextExecutor, table string, cols []string, vals []interface{}) (int, error) {
	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		Quote(table),
		strings.Join(strmangle.IdentQuoteSlice(dialect.LQ, dialect.RQ, cols), ","),
		strmangle.Placeholders(dialect.UseIndexPlaceholders, len(cols), 1, 1),
		Quote("id"),
	)
	debug(query, vals)

	var id int
	if err := exec.QueryRowContext(ctx, query, vals...).Scan(&id); err != nil {
		return 0, errors.Wrapf(err, "models: unable to insert into %s", table)
	}
	return id, nil
}

// updateRow updates cols/vals of the table row having the primary key id.
func updateRow(ctx context.Context, exec boil.ContextExecutor, table string, id int, cols []string, vals []interface{}) (int64, error) {
	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE %s",
		Quote(table),
		strmangle.SetParamNames(`"`, `"`, 1, cols),
		strmangle.WhereClause(`"`, `"`, len(cols)+1, []string{"id"}),
	)
	args := append(vals, id)
	debug(query, args)

	result, err := exec.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, errors.Wrapf(err, "models: unable to update %s row", table)
	}
	rowsAff, err := result.RowsAffected()
	if err != nil {
		return 0, errors.Wrapf(err, "models: failed to get rows affected by update for %s", table)
	}
	return rowsAff, nil
}

func deleteRow(ctx context.Context, exec boil.ContextExecutor, table string, id int) (int64, error) {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s", Quote(table), strmangle.WhereClause(`"`, `"`, 1, []string{"id"}))
	debug(query, []interface{}{id})

	result, err := exec.ExecContext(ctx, query, id)
	if err != nil {
		return 0, errors.Wrapf(err, "models: unable to delete from %s", table)
	}
	rowsAff, err := result.RowsAffected()
	if err != nil {
		return 0, errors.Wrapf(err, "models: failed to get rows affected by delete for %s", table)
	}
	return rowsAff, nil
}

type (
	whereHelperint    struct{ field string }
	whereHelperstring struct{ field string }
	whereHelperbool   struct{ field string }
)

func (w whereHelperint) EQ(x int) qm.QueryMod  { return qmhelper.Where(w.field, qmhelper.EQ, x) }
func (w whereHelperint) NEQ(x int) qm.QueryMod { return qmhelper.Where(w.field, qmhelper.NEQ, x) }
func (w whereHelperint) IN(slice []int) qm.QueryMod {
	values := make([]interface{}, 0, len(slice))
	for _, value := range slice {
		values = append(values, value)
	}
	return qm.WhereIn(fmt.Sprintf("%s IN ?", w.field), values...)
}
func (w whereHelperint) NIN(slice []int) qm.QueryMod {
	values := make([]interface{}, 0, len(slice))
	for _, value := range slice {
		values = append(values, value)
	}
	return qm.WhereIn(fmt.Sprintf("%s NOT IN ?", w.field), values...)
}

func (w whereHelperstring) EQ(x string) qm.QueryMod { return qmhelper.Where(w.field, qmhelper.EQ, x) }
func (w whereHelperstring) IN(slice []string) qm.QueryMod {
	values := make([]interface{}, 0, len(slice))
	for _, value := range slice {
		values = append(values, value)
	}
	return qm.WhereIn(fmt.Sprintf("%s IN ?", w.field), values...)
}

func (w whereHelperbool) EQ(x bool) qm.QueryMod { return qmhelper.Where(w.field, qmhelper.EQ, x) }

// queryHelper implements the read side shared by every table query.
type queryHelper struct {
	*queries.Query
	table string
}

// Count returns the count of all matching rows.
func (q queryHelper) Count(ctx context.Context, exec boil.ContextExecutor) (int64, error) {
	var count int64

	queries.SetSelect(q.Query, nil)
	queries.SetCount(q.Query)

	err := q.Query.QueryRowContext(ctx, exec).Scan(&count)
	if err != nil {
		return 0, errors.Wrapf(err, "models: failed to count %s rows", q.table)
	}
	return count, nil
}

// Exists checks if a matching row exists.
func (q queryHelper) Exists(ctx context.Context, exec boil.ContextExecutor) (bool, error) {
	var count int64

	queries.SetSelect(q.Query, nil)
	queries.SetCount(q.Query)
	queries.SetLimit(q.Query, 1)

	err := q.Query.QueryRowContext(ctx, exec).Scan(&count)
	if err != nil {
		return false, errors.Wrapf(err, "models: failed to check if %s exists", q.table)
	}
	return count > 0, nil
}

// M type is for providing columns and column values to UpdateAll.
type M map[string]interface{}

// UpdateAll updates all rows with the specified column values.
func (q queryHelper) UpdateAll(ctx context.Context, exec boil.ContextExecutor, cols M) (int64, error) {
	queries.SetUpdate(q.Query, cols)

	result, err := q.Query.ExecContext(ctx, exec)
	if err != nil {
		return 0, errors.Wrapf(err, "models: unable to update all for %s", q.table)
	}
	rowsAff, err := result.RowsAffected()
	if err != nil {
		return 0, errors.Wrapf(err, "models: unable to retrieve rows affected for %s", q.table)
	}
	return rowsAff, nil
}

// DeleteAll deletes all matching rows.
func (q queryHelper) DeleteAll(ctx context.Context, exec boil.ContextExecutor) (int64, error) {
	queries.SetDelete(q.Query)

	result, err := q.Query.ExecContext(ctx, exec)
	if err != nil {
		return 0, errors.Wrapf(err, "models: unable to delete all from %s", q.table)
	}
	rowsAff, err := result.RowsAffected()
	if err != nil {
		return 0, errors.Wrapf(err, "models: failed to get rows affected by deleteall for %s", q.table)
	}
	return rowsAff, nil
}

// one binds the first matching row into o. sql.ErrNoRows is returned unwrapped.
func (q queryHelper) one(ctx context.Context, exec boil.ContextExecutor, o interface{}) error {
	queries.SetLimit(q.Query, 1)

	err := q.Bind(ctx, exec, o)
	if err != nil {
		if errors.Cause(err) == sql.ErrNoRows {
			return sql.ErrNoRows
		}
		return errors.Wrapf(err, "models: failed to execute a one query for %s", q.table)
	}
	return nil
}

func (q queryHelper) all(ctx context.Context, exec boil.ContextExecutor, o interface{}) error {
	if err := q.Bind(ctx, exec, o); err != nil {
		return errors.Wrapf(err, "models: failed to assign all query results to %s slice", q.table)
	}
	return nil
}

func newQueryHelper(table string, mods []qm.QueryMod) queryHelper {
	mods = append(mods, qm.From(Quote(table)))
	q := NewQuery(mods...)
	if len(queries.GetSelect(q)) == 0 {
		queries.SetSelect(q, []string{Quote(table) + ".*"})
	}
	return queryHelper{Query: q, table: table}
}
