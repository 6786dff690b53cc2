package models

import (
	"context"

	"github.com/volatiletech/sqlboiler/v4/boil"
	"github.com/volatiletech/sqlboiler/v4/queries/qm"
)

// Bed is an object representing the database table.
type Bed struct {
	ID           int     `boil:"id" json:"id" toml:"id" yaml:"id"`
	RoomID       int     `boil:"room_id" json:"room_id" toml:"room_id" yaml:"room_id"`
	BedNumber    string  `boil:"bed_number" json:"bed_number" toml:"bed_number" yaml:"bed_number"`
	MonthlyPrice float64 `boil:"monthly_price" json:"monthly_price" toml:"monthly_price" yaml:"monthly_price"`
	IsOccupied   bool    `boil:"is_occupied" json:"is_occupied" toml:"is_occupied" yaml:"is_occupied"`
}

var BedColumns = struct {
	ID           string
	RoomID       string
	BedNumber    string
	MonthlyPrice string
	IsOccupied   string
}{
	ID:           "id",
	RoomID:       "room_id",
	BedNumber:    "bed_number",
	MonthlyPrice: "monthly_price",
	IsOccupied:   "is_occupied",
}

var BedWhere = struct {
	ID         whereHelperint
	RoomID     whereHelperint
	BedNumber  whereHelperstring
	IsOccupied whereHelperbool
}{
	ID:         whereHelperint{field: "\"beds\".\"id\""},
	RoomID:     whereHelperint{field: "\"beds\".\"room_id\""},
	BedNumber:  whereHelperstring{field: "\"beds\".\"bed_number\""},
	IsOccupied: whereHelperbool{field: "\"beds\".\"is_occupied\""},
}

var bedWriteColumns = []string{"room_id", "bed_number", "monthly_price", "is_occupied"}

// BedSlice is an alias for a slice of pointers to Bed.
type BedSlice []*Bed

type bedQuery struct {
	queryHelper
}

// Beds retrieves all the records using an executor.
func Beds(mods ...qm.QueryMod) bedQuery {
	return bedQuery{newQueryHelper(TableNames.Beds, mods)}
}

// One returns a single bed record from the query.
func (q bedQuery) One(ctx context.Context, exec boil.ContextExecutor) (*Bed, error) {
	o := &Bed{}
	if err := q.one(ctx, exec, o); err != nil {
		return nil, err
	}
	return o, nil
}

// All returns all Bed records from the query.
func (q bedQuery) All(ctx context.Context, exec boil.ContextExecutor) (BedSlice, error) {
	var o []*Bed
	if err := q.all(ctx, exec, &o); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *Bed) values() []interface{} {
	return []interface{}{o.RoomID, o.BedNumber, o.MonthlyPrice, o.IsOccupied}
}

// Insert a single record using an executor and set the generated ID on o.
func (o *Bed) Insert(ctx context.Context, exec boil.ContextExecutor) error {
	id, err := insertRow(ctx, exec, TableNames.Beds, bedWriteColumns, o.values())
	if err != nil {
		return err
	}
	o.ID = id
	return nil
}

// Update uses an executor to update the Bed.
func (o *Bed) Update(ctx context.Context, exec boil.ContextExecutor) (int64, error) {
	return updateRow(ctx, exec, TableNames.Beds, o.ID, bedWriteColumns, o.values())
}

// Delete deletes a single Bed record with an executor.
func (o *Bed) Delete(ctx context.Context, exec boil.ContextExecutor) (int64, error) {
	return deleteRow(ctx, exec, TableNames.Beds, o.ID)
}
