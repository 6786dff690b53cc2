package models

import (
	"context"
	"time"

	"github.com/volatiletech/null/v8"
	"github.com/volatiletech/sqlboiler/v4/boil"
	"github.com/volatiletech/sqlboiler/v4/queries/qm"
)

// PG is an object representing the database table.
type PG struct {
	ID            int         `boil:"id" json:"id" toml:"id" yaml:"id"`
	OwnerID       int         `boil:"owner_id" json:"owner_id" toml:"owner_id" yaml:"owner_id"`
	Name          string      `boil:"name" json:"name" toml:"name" yaml:"name"`
	Address       null.String `boil:"address" json:"address,omitempty" toml:"address" yaml:"address,omitempty"`
	City          null.String `boil:"city" json:"city,omitempty" toml:"city" yaml:"city,omitempty"`
	Description   null.String `boil:"description" json:"description,omitempty" toml:"description" yaml:"description,omitempty"`
	ContactNumber null.String `boil:"contact_number" json:"contact_number,omitempty" toml:"contact_number" yaml:"contact_number,omitempty"`
	CreatedAt     time.Time   `boil:"created_at" json:"created_at" toml:"created_at" yaml:"created_at"`
}

var PGColumns = struct {
	ID            string
	OwnerID       string
	Name          string
	Address       string
	City          string
	Description   string
	ContactNumber string
	CreatedAt     string
}{
	ID:            "id",
	OwnerID:       "owner_id",
	Name:          "name",
	Address:       "address",
	City:          "city",
	Description:   "description",
	ContactNumber: "contact_number",
	CreatedAt:     "created_at",
}

var PGWhere = struct {
	ID      whereHelperint
	OwnerID whereHelperint
	City    whereHelperstring
}{
	ID:      whereHelperint{field: "\"pgs\".\"id\""},
	OwnerID: whereHelperint{field: "\"pgs\".\"owner_id\""},
	City:    whereHelperstring{field: "\"pgs\".\"city\""},
}

var pgWriteColumns = []string{"owner_id", "name", "address", "city", "description", "contact_number", "created_at"}

// PGSlice is an alias for a slice of pointers to PG.
type PGSlice []*PG

type pgQuery struct {
	queryHelper
}

// PGS retrieves all the records using an executor.
func PGS(mods ...qm.QueryMod) pgQuery {
	return pgQuery{newQueryHelper(TableNames.PGS, mods)}
}

// One returns a single pg record from the query.
func (q pgQuery) One(ctx context.Context, exec boil.ContextExecutor) (*PG, error) {
	o := &PG{}
	if err := q.one(ctx, exec, o); err != nil {
		return nil, err
	}
	return o, nil
}

// All returns all PG records from the query.
func (q pgQuery) All(ctx context.Context, exec boil.ContextExecutor) (PGSlice, error) {
	var o []*PG
	if err := q.all(ctx, exec, &o); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *PG) values() []interface{} {
	return []interface{}{o.OwnerID, o.Name, o.Address, o.City, o.Description, o.ContactNumber, o.CreatedAt}
}

// Insert a single record using an executor and set the generated ID on o.
func (o *PG) Insert(ctx context.Context, exec boil.ContextExecutor) error {
	id, err := insertRow(ctx, exec, TableNames.PGS, pgWriteColumns, o.values())
	if err != nil {
		return err
	}
	o.ID = id
	return nil
}

// Update uses an executor to update the PG.
func (o *PG) Update(ctx context.Context, exec boil.ContextExecutor) (int64, error) {
	return updateRow(ctx, exec, TableNames.PGS, o.ID, pgWriteColumns, o.values())
}

// Delete deletes a single PG record with an executor. Rooms & beds are deleted in cascade.
func (o *PG) Delete(ctx context.Context, exec boil.ContextExecutor) (int64, error) {
	return deleteRow(ctx, exec, TableNames.PGS, o.ID)
}
