package property

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/pgkhata/pgkhata/core"
)

type (
	// PG is a paying-guest property owned by a single owner.
	PG struct {
		ID            int       `json:"id"`
		OwnerID       int       `json:"owner_id"`
		Name          string    `json:"name"`
		Address       string    `json:"address"`
		City          string    `json:"city"`
		Description   string    `json:"description"`
		ContactNumber string    `json:"contact_number"`
		CreatedAt     time.Time `json:"created_at"`
		Rooms         []Room    `json:"rooms"`
	}

	Room struct {
		ID         int    `json:"id"`
		PGID       int    `json:"pg_id"`
		RoomNumber string `json:"room_number"`
		Floor      int    `json:"floor"`
		Type       string `json:"type"`
		Beds       []Bed  `json:"beds"`
	}

	Bed struct {
		ID           int        `json:"id"`
		RoomID       int        `json:"room_id"`
		PGID         int        `json:"-"`
		BedNumber    string     `json:"bed_number"`
		MonthlyPrice float64    `json:"monthly_price"`
		IsOccupied   bool       `json:"is_occupied"`
		Tenant       *BedTenant `json:"tenant,omitempty"`
	}

	// BedTenant is the active tenant sleeping in a bed.
	BedTenant struct {
		ID    int    `json:"id"`
		Name  string `json:"name"`
		Phone string `json:"phone"`
	}
)

type NewPG struct {
	Name          string `json:"name" validate:"required,max=150"`
	Address       string `json:"address"`
	City          string `json:"city" validate:"max=100"`
	Description   string `json:"description"`
	ContactNumber string `json:"contact_number" validate:"omitempty,phone_in"`
}

func (np *NewPG) Validate(validate *validator.Validate) error {
	np.Name = core.CleanString(np.Name)
	np.Address = core.CleanString(np.Address)
	np.City = core.CleanString(np.City)
	np.Description = core.CleanString(np.Description)
	np.ContactNumber = core.CleanPhone(np.ContactNumber)
	return validate.Struct(np)
}

// UpdatePG is a partial update: nil fields (and an empty name) are left untouched.
type UpdatePG struct {
	Name          *string `json:"name" validate:"omitempty,max=150"`
	Address       *string `json:"address"`
	City          *string `json:"city" validate:"omitempty,max=100"`
	Description   *string `json:"description"`
	ContactNumber *string `json:"contact_number" validate:"omitempty,phone_in"`
}

func (up *UpdatePG) Validate(validate *validator.Validate) error {
	core.CleanStringPtr(up.Name)
	core.CleanStringPtr(up.Address)
	core.CleanStringPtr(up.City)
	core.CleanStringPtr(up.Description)
	core.CleanPhonePtr(up.ContactNumber)

	// a blank contact number clears it
	chk := *up
	core.DropBlanks(&chk.ContactNumber)
	return validate.Struct(&chk)
}

func (up UpdatePG) apply(pg PG) PG {
	if up.Name != nil && *up.Name != "" {
		pg.Name = *up.Name
	}
	if up.Address != nil {
		pg.Address = *up.Address
	}
	if up.City != nil {
		pg.City = *up.City
	}
	if up.Description != nil {
		pg.Description = *up.Description
	}
	if up.ContactNumber != nil {
		pg.ContactNumber = *up.ContactNumber
	}
	return pg
}

type NewRoom struct {
	RoomNumber string `json:"room_number" validate:"required,max=20"`
	Floor      int    `json:"floor" validate:"gte=0"`
	Type       string `json:"type" validate:"max=50"`
}

func (nr *NewRoom) Validate(validate *validator.Validate) error {
	nr.RoomNumber = core.CleanString(nr.RoomNumber)
	nr.Type = core.CleanString(nr.Type)
	return validate.Struct(nr)
}

type UpdateRoom struct {
	RoomNumber *string `json:"room_number" validate:"omitempty,max=20"`
	Floor      *int    `json:"floor" validate:"omitempty,gte=0"`
	Type       *string `json:"type" validate:"omitempty,max=50"`
}

func (ur *UpdateRoom) Validate(validate *validator.Validate) error {
	core.CleanStringPtr(ur.RoomNumber)
	core.CleanStringPtr(ur.Type)
	return validate.Struct(ur)
}

func (ur UpdateRoom) apply(room Room) Room {
	if ur.RoomNumber != nil && *ur.RoomNumber != "" {
		room.RoomNumber = *ur.RoomNumber
	}
	if ur.Floor != nil {
		room.Floor = *ur.Floor
	}
	if ur.Type != nil {
		room.Type = *ur.Type
	}
	return room
}

type NewBed struct {
	BedNumber    string  `json:"bed_number" validate:"required,max=20"`
	MonthlyPrice float64 `json:"monthly_price" validate:"gte=0"`
}

func (nb *NewBed) Validate(validate *validator.Validate) error {
	nb.BedNumber = core.CleanString(nb.BedNumber)
	return validate.Struct(nb)
}

type UpdateBed struct {
	BedNumber    *string  `json:"bed_number" validate:"omitempty,max=20"`
	MonthlyPrice *float64 `json:"monthly_price" validate:"omitempty,gte=0"`
}

func (ub *UpdateBed) Validate(validate *validator.Validate) error {
	core.CleanStringPtr(ub.BedNumber)
	return validate.Struct(ub)
}

func (ub UpdateBed) apply(bed Bed) Bed {
	if ub.BedNumber != nil && *ub.BedNumber != "" {
		bed.BedNumber = *ub.BedNumber
	}
	if ub.MonthlyPrice != nil {
		bed.MonthlyPrice = core.RoundMoney(*ub.MonthlyPrice)
	}
	return bed
}

// PGFilter narrows a PG listing. OwnerID is mandatory.
type PGFilter struct {
	OwnerID int
	IDs     []int
	Search  string `query:"search"`
	City    string `query:"city"`
}

func (f *PGFilter) Clean() {
	f.Search = core.CleanString(f.Search)
	f.City = core.CleanString(f.City)
}
