// Package testutil holds the fixtures shared by the test suites.
package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/pgkhata/pgkhata/core"
	"github.com/pgkhata/pgkhata/core/property"
	"github.com/pgkhata/pgkhata/core/tenant"
	"github.com/pgkhata/pgkhata/core/user"
)

// CreateOwner stores an active owner. An empty pwd leaves the account without a usable password.
func CreateOwner(t *testing.T, repo user.Repository, name, email, pwd string, createdAt ...time.Time) user.User {
	tstamp := time.Now().UTC()
	if len(createdAt) > 0 {
		tstamp = createdAt[0].UTC()
	}
	usr := user.User{
		FullName:  name,
		Email:     email,
		IsActive:  true,
		CreatedAt: tstamp,
		UpdatedAt: tstamp,
	}
	if pwd != "" {
		if err := usr.SetPassword(pwd); err != nil {
			t.Fatalf("CreateOwner(): %v", err)
		}
	}
	usr, err := repo.CreateUser(context.Background(), usr)
	if err != nil {
		t.Fatalf("CreateOwner(): %v", err)
	}
	return usr
}

// CreatePG stores a PG of owner with `rooms` rooms of `beds` vacant beds each, all priced at price.
// Rooms are numbered 101, 102... and beds 101-A, 101-B...
func CreatePG(t *testing.T, svc property.Service, ownerID int, name string, rooms, beds int, price float64) property.PG {
	ctx := context.Background()
	pg, err := svc.CreatePG(ctx, ownerID, property.NewPG{Name: name, City: "Pune"})
	if err != nil {
		t.Fatalf("CreatePG(): %v", err)
	}

	for r := 1; r <= rooms; r++ {
		room, err := svc.CreateRoom(ctx, pg, property.NewRoom{RoomNumber: roomNumber(r), Floor: 1, Type: "Double"})
		if err != nil {
			t.Fatalf("CreatePG(): %v", err)
		}
		for b := 0; b < beds; b++ {
			_, err = svc.CreateBed(ctx, room, property.NewBed{
				BedNumber:    room.RoomNumber + "-" + string(rune('A'+b)),
				MonthlyPrice: price,
			})
			if err != nil {
				t.Fatalf("CreatePG(): %v", err)
			}
		}
	}

	pg, err = svc.GetPG(ctx, ownerID, pg.ID)
	if err != nil {
		t.Fatalf("CreatePG(): %v", err)
	}
	return pg
}

func roomNumber(n int) string {
	return fmt.Sprintf("1%02d", n)
}

// CheckIn assigns a new tenant to bed.
func CheckIn(t *testing.T, svc tenant.Service, ownerID, bedID int, name, email string, checkIn core.Date) tenant.Tenant {
	tnt, err := svc.CheckIn(context.Background(), ownerID, tenant.NewTenant{
		Name:        name,
		Phone:       "9876543210",
		Email:       email,
		CheckInDate: core.DatePtr(checkIn),
		BedID:       bedID,
	})
	if err != nil {
		t.Fatalf("CheckIn(): %v", err)
	}
	return tnt
}
