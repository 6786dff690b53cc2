package main

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/pgkhata/pgkhata/core/property"
)

const (
	seedFloors        = 2
	seedRoomsPerFloor = 3
	seedBedPrice      = 5000
)

var seedBedLetters = []string{"A", "B"}

// seed creates a sample PG for the owner: 2 floors of 3 double rooms, with 2 vacant beds each.
func (cli *commandLine) seed(email string) error {
	ctx := context.Background()
	owner, err := cli.usrSvc.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	pg, err := cli.propSvc.CreatePG(ctx, owner.ID, property.NewPG{
		Name:    "Sunrise PG",
		Address: "123 Main St",
		City:    "Pune",
	})
	if err != nil {
		return errors.Wrap(err, "creating PG")
	}

	for floor := 1; floor <= seedFloors; floor++ {
		for num := 1; num <= seedRoomsPerFloor; num++ {
			room, err := cli.propSvc.CreateRoom(ctx, pg, property.NewRoom{
				RoomNumber: fmt.Sprintf("%d0%d", floor, num),
				Floor:      floor,
				Type:       "Double",
			})
			if err != nil {
				return errors.Wrap(err, "creating room")
			}

			for _, letter := range seedBedLetters {
				_, err = cli.propSvc.CreateBed(ctx, room, property.NewBed{
					BedNumber:    room.RoomNumber + "-" + letter,
					MonthlyPrice: seedBedPrice,
				})
				if err != nil {
					return errors.Wrap(err, "creating bed")
				}
			}
		}
	}

	cli.logger.Info(fmt.Sprintf("sample PG %q created for %s", pg.Name, owner.Email))
	return nil
}
