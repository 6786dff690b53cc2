package models

import (
	"context"
	"time"

	"github.com/volatiletech/null/v8"
	"github.com/volatiletech/sqlboiler/v4/boil"
	"github.com/volatiletech/sqlboiler/v4/queries/qm"
)

// Complaint is an object representing the database table.
type Complaint struct {
	ID          int         `boil:"id" json:"id" toml:"id" yaml:"id"`
	TenantID    int         `boil:"tenant_id" json:"tenant_id" toml:"tenant_id" yaml:"tenant_id"`
	PGID        int         `boil:"pg_id" json:"pg_id" toml:"pg_id" yaml:"pg_id"`
	Title       string      `boil:"title" json:"title" toml:"title" yaml:"title"`
	Description null.String `boil:"description" json:"description,omitempty" toml:"description" yaml:"description,omitempty"`
	Status      string      `boil:"status" json:"status" toml:"status" yaml:"status"`
	CreatedAt   time.Time   `boil:"created_at" json:"created_at" toml:"created_at" yaml:"created_at"`
	ResolvedAt  null.Time   `boil:"resolved_at" json:"resolved_at,omitempty" toml:"resolved_at" yaml:"resolved_at,omitempty"`
}

var ComplaintColumns = struct {
	ID          string
	TenantID    string
	PGID        string
	Title       string
	Description string
	Status      string
	CreatedAt   string
	ResolvedAt  string
}{
	ID:          "id",
	TenantID:    "tenant_id",
	PGID:        "pg_id",
	Title:       "title",
	Description: "description",
	Status:      "status",
	CreatedAt:   "created_at",
	ResolvedAt:  "resolved_at",
}

var ComplaintWhere = struct {
	ID       whereHelperint
	TenantID whereHelperint
	PGID     whereHelperint
	Status   whereHelperstring
}{
	ID:       whereHelperint{field: "\"complaints\".\"id\""},
	TenantID: whereHelperint{field: "\"complaints\".\"tenant_id\""},
	PGID:     whereHelperint{field: "\"complaints\".\"pg_id\""},
	Status:   whereHelperstring{field: "\"complaints\".\"status\""},
}

var complaintWriteColumns = []string{"tenant_id", "pg_id", "title", "description", "status", "created_at", "resolved_at"}

// ComplaintSlice is an alias for a slice of pointers to Complaint.
type ComplaintSlice []*Complaint

type complaintQuery struct {
	queryHelper
}

// Complaints retrieves all the records using an executor.
func Complaints(mods ...qm.QueryMod) complaintQuery {
	return complaintQuery{newQueryHelper(TableNames.Complaints, mods)}
}

// One returns a single complaint record from the query.
func (q complaintQuery) One(ctx context.Context, exec boil.ContextExecutor) (*Complaint, error) {
	o := &Complaint{}
	if err := q.one(ctx, exec, o); err != nil {
		return nil, err
	}
	return o, nil
}

// All returns all Complaint records from the query.
func (q complaintQuery) All(ctx context.Context, exec boil.ContextExecutor) (ComplaintSlice, error) {
	var o []*Complaint
	if err := q.all(ctx, exec, &o); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *Complaint) values() []interface{} {
	return []interface{}{o.TenantID, o.PGID, o.Title, o.Description, o.Status, o.CreatedAt, o.ResolvedAt}
}

// Insert a single record using an executor and set the generated ID on o.
func (o *Complaint) Insert(ctx context.Context, exec boil.ContextExecutor) error {
	id, err := insertRow(ctx, exec, TableNames.Complaints, complaintWriteColumns, o.values())
	if err != nil {
		return err
	}
	o.ID = id
	return nil
}

// Update uses an executor to update the Complaint.
func (o *Complaint) Update(ctx context.Context, exec boil.ContextExecutor) (int64, error) {
	return updateRow(ctx, exec, TableNames.Complaints, o.ID, complaintWriteColumns, o.values())
}
