package inmemdb

import (
	"context"
	"sync"

	"github.com/pgkhata/pgkhata/core"
	"github.com/pgkhata/pgkhata/core/complaint"
	"github.com/pgkhata/pgkhata/core/property"
	"github.com/pgkhata/pgkhata/core/rent"
	"github.com/pgkhata/pgkhata/core/tenant"
	"github.com/pgkhata/pgkhata/core/user"
)

type tables struct {
	users      map[int]user.User
	pgs        map[int]property.PG
	rooms      map[int]property.Room
	beds       map[int]property.Bed
	tenants    map[int]tenant.Tenant
	records    map[int]rent.Record
	complaints map[int]complaint.Complaint
	pkCount    map[string]int
}

func newTables() tables {
	return tables{
		users:      make(map[int]user.User),
		pgs:        make(map[int]property.PG),
		rooms:      make(map[int]property.Room),
		beds:       make(map[int]property.Bed),
		tenants:    make(map[int]tenant.Tenant),
		records:    make(map[int]rent.Record),
		complaints: make(map[int]complaint.Complaint),
		pkCount:    make(map[string]int),
	}
}

func (t tables) copy() tables {
	c := newTables()
	for k, v := range t.users {
		c.users[k] = v
	}
	for k, v := range t.pgs {
		c.pgs[k] = v
	}
	for k, v := range t.rooms {
		c.rooms[k] = v
	}
	for k, v := range t.beds {
		c.beds[k] = v
	}
	for k, v := range t.tenants {
		c.tenants[k] = v
	}
	for k, v := range t.records {
		c.records[k] = v
	}
	for k, v := range t.complaints {
		c.complaints[k] = v
	}
	for k, v := range t.pkCount {
		c.pkCount[k] = v
	}
	return c
}

func (t tables) nextID(table string) int {
	t.pkCount[table]++
	return t.pkCount[table]
}

// DB is an in-memory stand-in for the postgres database, used by tests and the "memory" engine.
// Transactions run one at a time; writes made outside of one wait for the running transaction to finish.
type DB struct {
	mutex sync.RWMutex
	txMu  sync.Mutex
	tables
}

// txExec is the executor WithinTx hands down to mark repository calls made inside the transaction.
// It never runs SQL.
type txExec struct {
	core.DBExecutor
}

func inTx(exec []core.DBExecutor) bool {
	if len(exec) == 0 {
		return false
	}
	_, ok := exec[0].(txExec)
	return ok
}

// lockWrite takes the write lock on the tables and returns its release.
// Outside of a transaction it first takes txMu, so that a failing transaction cannot restore a snapshot over the write.
func (db *DB) lockWrite(exec []core.DBExecutor) (unlock func()) {
	tx := inTx(exec)
	if !tx {
		db.txMu.Lock()
	}
	db.mutex.Lock()
	return func() {
		db.mutex.Unlock()
		if !tx {
			db.txMu.Unlock()
		}
	}
}

func NewDB() *DB {
	return &DB{tables: newTables()}
}

// Reset drops every row.
func (db *DB) Reset() {
	db.mutex.Lock()
	defer db.mutex.Unlock()
	db.tables = newTables()
}

func (db *DB) ownerOf(pgID int) int {
	return db.pgs[pgID].OwnerID
}

// cascade deletes, mirroring the foreign keys of the postgres schema.

func (db *DB) deletePG(id int) {
	for rid, room := range db.rooms {
		if room.PGID == id {
			db.deleteRoom(rid)
		}
	}
	for tid, tnt := range db.tenants {
		if tnt.PGID == id {
			db.deleteTenant(tid)
		}
	}
	for rid, rec := range db.records {
		if rec.PGID == id {
			delete(db.records, rid)
		}
	}
	for cid, cpl := range db.complaints {
		if cpl.PGID == id {
			delete(db.complaints, cid)
		}
	}
	delete(db.pgs, id)
}

func (db *DB) deleteRoom(id int) {
	for bid, bed := range db.beds {
		if bed.RoomID == id {
			db.deleteBed(bid)
		}
	}
	delete(db.rooms, id)
}

func (db *DB) deleteBed(id int) {
	for tid, tnt := range db.tenants {
		if tnt.BedID == id {
			tnt.BedID = 0
			db.tenants[tid] = tnt
		}
	}
	delete(db.beds, id)
}

func (db *DB) deleteTenant(id int) {
	for rid, rec := range db.records {
		if rec.TenantID == id {
			delete(db.records, rid)
		}
	}
	for cid, cpl := range db.complaints {
		if cpl.TenantID == id {
			delete(db.complaints, cid)
		}
	}
	delete(db.tenants, id)
}

type transactor struct {
	db *DB
}

var _ core.Transactor = (*transactor)(nil)

// NewTransactor serializes units of work and restores the tables when one fails.
func NewTransactor(db *DB) core.Transactor {
	return &transactor{db: db}
}

func (t transactor) WithinTx(_ context.Context, fn func(exec core.DBExecutor) error) (err error) {
	t.db.txMu.Lock()
	defer t.db.txMu.Unlock()

	t.db.mutex.RLock()
	snapshot := t.db.tables.copy()
	t.db.mutex.RUnlock()

	restore := func() {
		t.db.mutex.Lock()
		t.db.tables = snapshot
		t.db.mutex.Unlock()
	}
	defer func() {
		if p := recover(); p != nil {
			restore()
			panic(p)
		}
	}()

	if err = fn(txExec{}); err != nil {
		restore()
	}
	return err
}
