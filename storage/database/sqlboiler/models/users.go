package models

import (
	"context"
	"time"

	"github.com/volatiletech/null/v8"
	"github.com/volatiletech/sqlboiler/v4/boil"
	"github.com/volatiletech/sqlboiler/v4/queries/qm"
)

// User is an object representing the database table.
type User struct {
	ID           int       `boil:"id" json:"id" toml:"id" yaml:"id"`
	Email        string    `boil:"email" json:"email" toml:"email" yaml:"email"`
	FullName     string    `boil:"full_name" json:"full_name" toml:"full_name" yaml:"full_name"`
	IsActive     bool      `boil:"is_active" json:"is_active" toml:"is_active" yaml:"is_active"`
	PasswordHash []byte    `boil:"password_hash" json:"password_hash" toml:"password_hash" yaml:"password_hash"`
	CreatedAt    time.Time `boil:"created_at" json:"created_at" toml:"created_at" yaml:"created_at"`
	UpdatedAt    time.Time `boil:"updated_at" json:"updated_at" toml:"updated_at" yaml:"updated_at"`
	LastLogin    null.Time `boil:"last_login" json:"last_login,omitempty" toml:"last_login" yaml:"last_login,omitempty"`
}

var UserColumns = struct {
	ID           string
	Email        string
	FullName     string
	IsActive     string
	PasswordHash string
	CreatedAt    string
	UpdatedAt    string
	LastLogin    string
}{
	ID:           "id",
	Email:        "email",
	FullName:     "full_name",
	IsActive:     "is_active",
	PasswordHash: "password_hash",
	CreatedAt:    "created_at",
	UpdatedAt:    "updated_at",
	LastLogin:    "last_login",
}

var UserWhere = struct {
	ID       whereHelperint
	Email    whereHelperstring
	IsActive whereHelperbool
}{
	ID:       whereHelperint{field: "\"users\".\"id\""},
	Email:    whereHelperstring{field: "\"users\".\"email\""},
	IsActive: whereHelperbool{field: "\"users\".\"is_active\""},
}

var userWriteColumns = []string{"email", "full_name", "is_active", "password_hash", "created_at", "updated_at", "last_login"}

// UserSlice is an alias for a slice of pointers to User.
type UserSlice []*User

type userQuery struct {
	queryHelper
}

// Users retrieves all the records using an executor.
func Users(mods ...qm.QueryMod) userQuery {
	return userQuery{newQueryHelper(TableNames.Users, mods)}
}

// One returns a single user record from the query.
func (q userQuery) One(ctx context.Context, exec boil.ContextExecutor) (*User, error) {
	o := &User{}
	if err := q.one(ctx, exec, o); err != nil {
		return nil, err
	}
	return o, nil
}

// All returns all User records from the query.
func (q userQuery) All(ctx context.Context, exec boil.ContextExecutor) (UserSlice, error) {
	var o []*User
	if err := q.all(ctx, exec, &o); err != nil {
		return nil, err
	}
	return o, nil
}

// FindUser retrieves a single record by ID with an executor.
func FindUser(ctx context.Context, exec boil.ContextExecutor, id int) (*User, error) {
	return Users(UserWhere.ID.EQ(id)).One(ctx, exec)
}

func (o *User) values() []interface{} {
	return []interface{}{o.Email, o.FullName, o.IsActive, o.PasswordHash, o.CreatedAt, o.UpdatedAt, o.LastLogin}
}

// Insert a single record using an executor and set the generated ID on o.
func (o *User) Insert(ctx context.Context, exec boil.ContextExecutor) error {
	id, err := insertRow(ctx, exec, TableNames.Users, userWriteColumns, o.values())
	if err != nil {
		return err
	}
	o.ID = id
	return nil
}

// Update uses an executor to update the User.
func (o *User) Update(ctx context.Context, exec boil.ContextExecutor) (int64, error) {
	return updateRow(ctx, exec, TableNames.Users, o.ID, userWriteColumns, o.values())
}
