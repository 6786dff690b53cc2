package models

import (
	"context"
	"time"

	"github.com/volatiletech/null/v8"
	"github.com/volatiletech/sqlboiler/v4/boil"
	"github.com/volatiletech/sqlboiler/v4/queries/qm"
)

// Tenant is an object representing the database table.
type Tenant struct {
	ID              int         `boil:"id" json:"id" toml:"id" yaml:"id"`
	PGID            int         `boil:"pg_id" json:"pg_id" toml:"pg_id" yaml:"pg_id"`
	BedID           null.Int    `boil:"bed_id" json:"bed_id,omitempty" toml:"bed_id" yaml:"bed_id,omitempty"`
	Name            string      `boil:"name" json:"name" toml:"name" yaml:"name"`
	Phone           string      `boil:"phone" json:"phone" toml:"phone" yaml:"phone"`
	Email           null.String `boil:"email" json:"email,omitempty" toml:"email" yaml:"email,omitempty"`
	IDProof         null.String `boil:"id_proof" json:"id_proof,omitempty" toml:"id_proof" yaml:"id_proof,omitempty"`
	CheckInDate     time.Time   `boil:"check_in_date" json:"check_in_date" toml:"check_in_date" yaml:"check_in_date"`
	CheckOutDate    null.Time   `boil:"check_out_date" json:"check_out_date,omitempty" toml:"check_out_date" yaml:"check_out_date,omitempty"`
	Status          string      `boil:"status" json:"status" toml:"status" yaml:"status"`
	SecurityDeposit float64     `boil:"security_deposit" json:"security_deposit" toml:"security_deposit" yaml:"security_deposit"`
	CreatedAt       time.Time   `boil:"created_at" json:"created_at" toml:"created_at" yaml:"created_at"`
}

var TenantColumns = struct {
	ID              string
	PGID            string
	BedID           string
	Name            string
	Phone           string
	Email           string
	IDProof         string
	CheckInDate     string
	CheckOutDate    string
	Status          string
	SecurityDeposit string
	CreatedAt       string
}{
	ID:              "id",
	PGID:            "pg_id",
	BedID:           "bed_id",
	Name:            "name",
	Phone:           "phone",
	Email:           "email",
	IDProof:         "id_proof",
	CheckInDate:     "check_in_date",
	CheckOutDate:    "check_out_date",
	Status:          "status",
	SecurityDeposit: "security_deposit",
	CreatedAt:       "created_at",
}

var TenantWhere = struct {
	ID     whereHelperint
	PGID   whereHelperint
	BedID  whereHelperint
	Status whereHelperstring
}{
	ID:     whereHelperint{field: "\"tenants\".\"id\""},
	PGID:   whereHelperint{field: "\"tenants\".\"pg_id\""},
	BedID:  whereHelperint{field: "\"tenants\".\"bed_id\""},
	Status: whereHelperstring{field: "\"tenants\".\"status\""},
}

var tenantWriteColumns = []string{
	"pg_id", "bed_id", "name", "phone", "email", "id_proof",
	"check_in_date", "check_out_date", "status", "security_deposit", "created_at",
}

// TenantSlice is an alias for a slice of pointers to Tenant.
type TenantSlice []*Tenant

type tenantQuery struct {
	queryHelper
}

// Tenants retrieves all the records using an executor.
func Tenants(mods ...qm.QueryMod) tenantQuery {
	return tenantQuery{newQueryHelper(TableNames.Tenants, mods)}
}

// One returns a single tenant record from the query.
func (q tenantQuery) One(ctx context.Context, exec boil.ContextExecutor) (*Tenant, error) {
	o := &Tenant{}
	if err := q.one(ctx, exec, o); err != nil {
		return nil, err
	}
	return o, nil
}

// All returns all Tenant records from the query.
func (q tenantQuery) All(ctx context.Context, exec boil.ContextExecutor) (TenantSlice, error) {
	var o []*Tenant
	if err := q.all(ctx, exec, &o); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *Tenant) values() []interface{} {
	return []interface{}{
		o.PGID, o.BedID, o.Name, o.Phone, o.Email, o.IDProof,
		o.CheckInDate, o.CheckOutDate, o.Status, o.SecurityDeposit, o.CreatedAt,
	}
}

// Insert a single record using an executor and set the generated ID on o.
func (o *Tenant) Insert(ctx context.Context, exec boil.ContextExecutor) error {
	id, err := insertRow(ctx, exec, TableNames.Tenants, tenantWriteColumns, o.values())
	if err != nil {
		return err
	}
	o.ID = id
	return nil
}

// Update uses an executor to update the Tenant.
func (o *Tenant) Update(ctx context.Context, exec boil.ContextExecutor) (int64, error) {
	return updateRow(ctx, exec, TableNames.Tenants, o.ID, tenantWriteColumns, o.values())
}

// Delete deletes a single Tenant record with an executor. Rent records & complaints are deleted in cascade.
func (o *Tenant) Delete(ctx context.Context, exec boil.ContextExecutor) (int64, error) {
	return deleteRow(ctx, exec, TableNames.Tenants, o.ID)
}
