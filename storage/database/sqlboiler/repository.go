package boiledrepos

import (
	"database/sql"
	"time"

	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"
	"github.com/volatiletech/sqlboiler/v4/queries/qm"

	"github.com/pgkhata/pgkhata/core"
)

type repository struct {
	exec core.DBExecutor
}

// getExec returns the executor handed down by the service (a transaction) or the repository's own.
func (repo repository) getExec(svcExec []core.DBExecutor) core.DBExecutor {
	if len(svcExec) > 0 && svcExec[0] != nil {
		return svcExec[0]
	}
	return repo.exec
}

// trapNoRowsErr maps psql "no rows" err to notFound
func trapNoRowsErr(err error, notFound error, msg string) error {
	if errors.Cause(err) == sql.ErrNoRows {
		return notFound
	}
	return errors.Wrap(err, msg)
}

func pageMods(page core.Page) []qm.QueryMod {
	var mods []qm.QueryMod
	if page.Limit > 0 {
		mods = append(mods, qm.Limit(page.Limit))
	}
	if page.Skip > 0 {
		mods = append(mods, qm.Offset(page.Skip))
	}
	return mods
}

func nullString(s string) null.String {
	return null.NewString(s, s != "")
}

func nullDate(d *core.Date) null.Time {
	if d == nil || d.IsZero() {
		return null.Time{}
	}
	return null.TimeFrom(d.Time)
}

func datePtr(t null.Time) *core.Date {
	if !t.Valid {
		return nil
	}
	return core.DatePtr(core.DateOf(t.Time))
}

func timePtr(t null.Time) *time.Time {
	if !t.Valid {
		return nil
	}
	utc := t.Time.UTC()
	return &utc
}

func nullTime(t *time.Time) null.Time {
	if t == nil {
		return null.Time{}
	}
	return null.TimeFrom(t.UTC())
}
