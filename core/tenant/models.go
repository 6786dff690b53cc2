package tenant

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/pgkhata/pgkhata/core"
)

// Tenant statuses
const (
	StatusActive     = "active"
	StatusCheckedOut = "checked_out"
)

var Statuses = []string{StatusActive, StatusCheckedOut}

type (
	Tenant struct {
		ID              int        `json:"id"`
		PGID            int        `json:"pg_id"`
		BedID           int        `json:"bed_id"` // 0 once the bed has been deleted
		Name            string     `json:"name"`
		Phone           string     `json:"phone"`
		Email           string     `json:"email"`
		IDProof         string     `json:"id_proof"`
		CheckInDate     core.Date  `json:"check_in_date"`
		CheckOutDate    *core.Date `json:"check_out_date"`
		Status          string     `json:"status"`
		SecurityDeposit float64    `json:"security_deposit"`
		CreatedAt       time.Time  `json:"created_at"`

		// read-only, joined
		Bed *Bed `json:"bed"`
		PG  *PG  `json:"pg"`
	}

	Bed struct {
		ID           int     `json:"id"`
		BedNumber    string  `json:"bed_number"`
		MonthlyPrice float64 `json:"monthly_price"`
		Room         *Room   `json:"room"`
	}

	Room struct {
		ID         int    `json:"id"`
		RoomNumber string `json:"room_number"`
		Floor      int    `json:"floor"`
		Type       string `json:"type"`
	}

	PG struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}
)

func (tnt Tenant) IsActive() bool {
	return tnt.Status == StatusActive
}

// NewTenant checks a tenant into a vacant bed. The PG is the one of the bed;
// PGID, when given, must match it.
type NewTenant struct {
	Name            string     `json:"name" validate:"required,max=150"`
	Phone           string     `json:"phone" validate:"required,phone_in"`
	Email           string     `json:"email" validate:"omitempty,email,max=254"`
	IDProof         string     `json:"id_proof" validate:"max=100"`
	CheckInDate     *core.Date `json:"check_in_date" validate:"required"`
	BedID           int        `json:"bed_id" validate:"required"`
	PGID            int        `json:"pg_id"`
	SecurityDeposit float64    `json:"security_deposit" validate:"gte=0"`
}

func (nt *NewTenant) Validate(validate *validator.Validate) error {
	nt.Name = core.CleanString(nt.Name)
	nt.Phone = core.CleanPhone(nt.Phone)
	nt.Email = core.CleanString(nt.Email, true /* lower */)
	nt.IDProof = core.CleanString(nt.IDProof)
	return validate.Struct(nt)
}

// UpdateTenant is a partial update: nil fields (and an empty name or phone) are left untouched.
type UpdateTenant struct {
	Name            *string  `json:"name" validate:"omitempty,max=150"`
	Phone           *string  `json:"phone" validate:"omitempty,phone_in"`
	Email           *string  `json:"email" validate:"omitempty,email,max=254"`
	IDProof         *string  `json:"id_proof" validate:"omitempty,max=100"`
	SecurityDeposit *float64 `json:"security_deposit" validate:"omitempty,gte=0"`
}

func (ut *UpdateTenant) Validate(validate *validator.Validate) error {
	core.CleanStringPtr(ut.Name)
	core.CleanPhonePtr(ut.Phone)
	core.CleanStringPtr(ut.Email, true /* lower */)
	core.CleanStringPtr(ut.IDProof)

	// a blank phone keeps the current one and a blank email clears it
	chk := *ut
	core.DropBlanks(&chk.Phone, &chk.Email)
	return validate.Struct(&chk)
}

func (ut UpdateTenant) apply(tnt Tenant) Tenant {
	if ut.Name != nil && *ut.Name != "" {
		tnt.Name = *ut.Name
	}
	if ut.Phone != nil && *ut.Phone != "" {
		tnt.Phone = *ut.Phone
	}
	if ut.Email != nil {
		tnt.Email = *ut.Email
	}
	if ut.IDProof != nil {
		tnt.IDProof = *ut.IDProof
	}
	if ut.SecurityDeposit != nil {
		tnt.SecurityDeposit = core.RoundMoney(*ut.SecurityDeposit)
	}
	return tnt
}

// QueryFilter narrows a tenant listing. OwnerID is mandatory.
type QueryFilter struct {
	OwnerID int
	PGID    int    `json:"pg_id" query:"pg_id"`
	Status  string `json:"status" query:"status" validate:"omitempty,tenant_status"`
	Search  string `json:"search" query:"search"` // name or phone
}

func (f *QueryFilter) Validate(validate *validator.Validate) error {
	f.Status = core.CleanString(f.Status, true /* lower */)
	f.Search = core.CleanString(f.Search)
	return validate.Struct(f)
}
