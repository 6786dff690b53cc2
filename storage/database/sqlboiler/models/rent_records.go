package models

import (
	"context"
	"time"

	"github.com/volatiletech/null/v8"
	"github.com/volatiletech/sqlboiler/v4/boil"
	"github.com/volatiletech/sqlboiler/v4/queries/qm"
	"github.com/volatiletech/sqlboiler/v4/queries/qmhelper"
)

// RentRecord is an object representing the database table.
type RentRecord struct {
	ID          int       `boil:"id" json:"id" toml:"id" yaml:"id"`
	TenantID    int       `boil:"tenant_id" json:"tenant_id" toml:"tenant_id" yaml:"tenant_id"`
	PGID        int       `boil:"pg_id" json:"pg_id" toml:"pg_id" yaml:"pg_id"`
	Month       time.Time `boil:"month" json:"month" toml:"month" yaml:"month"`
	AmountDue   float64   `boil:"amount_due" json:"amount_due" toml:"amount_due" yaml:"amount_due"`
	AmountPaid  float64   `boil:"amount_paid" json:"amount_paid" toml:"amount_paid" yaml:"amount_paid"`
	Status      string    `boil:"status" json:"status" toml:"status" yaml:"status"`
	PaymentDate null.Time `boil:"payment_date" json:"payment_date,omitempty" toml:"payment_date" yaml:"payment_date,omitempty"`
}

var RentRecordColumns = struct {
	ID          string
	TenantID    string
	PGID        string
	Month       string
	AmountDue   string
	AmountPaid  string
	Status      string
	PaymentDate string
}{
	ID:          "id",
	TenantID:    "tenant_id",
	PGID:        "pg_id",
	Month:       "month",
	AmountDue:   "amount_due",
	AmountPaid:  "amount_paid",
	Status:      "status",
	PaymentDate: "payment_date",
}

type whereHelpertime_Time struct{ field string }

func (w whereHelpertime_Time) EQ(x time.Time) qm.QueryMod {
	return qmhelper.Where(w.field, qmhelper.EQ, x)
}
func (w whereHelpertime_Time) LTE(x time.Time) qm.QueryMod {
	return qmhelper.Where(w.field, qmhelper.LTE, x)
}

var RentRecordWhere = struct {
	ID       whereHelperint
	TenantID whereHelperint
	PGID     whereHelperint
	Month    whereHelpertime_Time
	Status   whereHelperstring
}{
	ID:       whereHelperint{field: "\"rent_records\".\"id\""},
	TenantID: whereHelperint{field: "\"rent_records\".\"tenant_id\""},
	PGID:     whereHelperint{field: "\"rent_records\".\"pg_id\""},
	Month:    whereHelpertime_Time{field: "\"rent_records\".\"month\""},
	Status:   whereHelperstring{field: "\"rent_records\".\"status\""},
}

var rentRecordWriteColumns = []string{"tenant_id", "pg_id", "month", "amount_due", "amount_paid", "status", "payment_date"}

// RentRecordSlice is an alias for a slice of pointers to RentRecord.
type RentRecordSlice []*RentRecord

type rentRecordQuery struct {
	queryHelper
}

// RentRecords retrieves all the records using an executor.
func RentRecords(mods ...qm.QueryMod) rentRecordQuery {
	return rentRecordQuery{newQueryHelper(TableNames.RentRecords, mods)}
}

// One returns a single rentRecord record from the query.
func (q rentRecordQuery) One(ctx context.Context, exec boil.ContextExecutor) (*RentRecord, error) {
	o := &RentRecord{}
	if err := q.one(ctx, exec, o); err != nil {
		return nil, err
	}
	return o, nil
}

// All returns all RentRecord records from the query.
func (q rentRecordQuery) All(ctx context.Context, exec boil.ContextExecutor) (RentRecordSlice, error) {
	var o []*RentRecord
	if err := q.all(ctx, exec, &o); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *RentRecord) values() []interface{} {
	return []interface{}{o.TenantID, o.PGID, o.Month, o.AmountDue, o.AmountPaid, o.Status, o.PaymentDate}
}

// Insert a single record using an executor and set the generated ID on o.
func (o *RentRecord) Insert(ctx context.Context, exec boil.ContextExecutor) error {
	id, err := insertRow(ctx, exec, TableNames.RentRecords, rentRecordWriteColumns, o.values())
	if err != nil {
		return err
	}
	o.ID = id
	return nil
}

// Update uses an executor to update the RentRecord.
func (o *RentRecord) Update(ctx context.Context, exec boil.ContextExecutor) (int64, error) {
	return updateRow(ctx, exec, TableNames.RentRecords, o.ID, rentRecordWriteColumns, o.values())
}
