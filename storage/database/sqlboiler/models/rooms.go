package models

import (
	"context"

	"github.com/volatiletech/sqlboiler/v4/boil"
	"github.com/volatiletech/sqlboiler/v4/queries/qm"
)

// Room is an object representing the database table.
type Room struct {
	ID         int    `boil:"id" json:"id" toml:"id" yaml:"id"`
	PGID       int    `boil:"pg_id" json:"pg_id" toml:"pg_id" yaml:"pg_id"`
	RoomNumber string `boil:"room_number" json:"room_number" toml:"room_number" yaml:"room_number"`
	Floor      int    `boil:"floor" json:"floor" toml:"floor" yaml:"floor"`
	Type       string `boil:"type" json:"type" toml:"type" yaml:"type"`
}

var RoomColumns = struct {
	ID         string
	PGID       string
	RoomNumber string
	Floor      string
	Type       string
}{
	ID:         "id",
	PGID:       "pg_id",
	RoomNumber: "room_number",
	Floor:      "floor",
	Type:       "type",
}

var RoomWhere = struct {
	ID   whereHelperint
	PGID whereHelperint
}{
	ID:   whereHelperint{field: "\"rooms\".\"id\""},
	PGID: whereHelperint{field: "\"rooms\".\"pg_id\""},
}

var roomWriteColumns = []string{"pg_id", "room_number", "floor", "type"}

// RoomSlice is an alias for a slice of pointers to Room.
type RoomSlice []*Room

type roomQuery struct {
	queryHelper
}

// Rooms retrieves all the records using an executor.
func Rooms(mods ...qm.QueryMod) roomQuery {
	return roomQuery{newQueryHelper(TableNames.Rooms, mods)}
}

// One returns a single room record from the query.
func (q roomQuery) One(ctx context.Context, exec boil.ContextExecutor) (*Room, error) {
	o := &Room{}
	if err := q.one(ctx, exec, o); err != nil {
		return nil, err
	}
	return o, nil
}

// All returns all Room records from the query.
func (q roomQuery) All(ctx context.Context, exec boil.ContextExecutor) (RoomSlice, error) {
	var o []*Room
	if err := q.all(ctx, exec, &o); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *Room) values() []interface{} {
	return []interface{}{o.PGID, o.RoomNumber, o.Floor, o.Type}
}

// Insert a single record using an executor and set the generated ID on o.
func (o *Room) Insert(ctx context.Context, exec boil.ContextExecutor) error {
	id, err := insertRow(ctx, exec, TableNames.Rooms, roomWriteColumns, o.values())
	if err != nil {
		return err
	}
	o.ID = id
	return nil
}

// Update uses an executor to update the Room.
func (o *Room) Update(ctx context.Context, exec boil.ContextExecutor) (int64, error) {
	return updateRow(ctx, exec, TableNames.Rooms, o.ID, roomWriteColumns, o.values())
}

// Delete deletes a single Room record with an executor. Beds are deleted in cascade.
func (o *Room) Delete(ctx context.Context, exec boil.ContextExecutor) (int64, error) {
	return deleteRow(ctx, exec, TableNames.Rooms, o.ID)
}
