package property

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgkhata/pgkhata/core"
)

func newValidator() *validator.Validate {
	validate := validator.New()
	core.InitValidators(validate, core.NewTranslator())
	return validate
}

func str(s string) *string { return &s }

func TestUpdatePG_Validate(t *testing.T) {
	validate := newValidator()
	pg := PG{ID: 1, Name: "Sunrise PG", City: "Pune", ContactNumber: "9876543210"}

	up := UpdatePG{Name: str("  "), City: str(" Mumbai "), ContactNumber: str(" ")}
	require.NoError(t, up.Validate(validate))
	got := up.apply(pg)
	assert.Equal(t, "Sunrise PG", got.Name, "blank name is ignored")
	assert.Equal(t, "Mumbai", got.City)
	assert.Equal(t, "", got.ContactNumber, "blank contact number clears it")

	up = UpdatePG{ContactNumber: str("91234-56789")}
	require.NoError(t, up.Validate(validate))
	assert.Equal(t, "9123456789", up.apply(pg).ContactNumber)

	up = UpdatePG{ContactNumber: str("12345")}
	err := up.Validate(validate)
	require.IsType(t, validator.ValidationErrors{}, err)
	assert.Equal(t, "contact_number", err.(validator.ValidationErrors)[0].Field())
}

func TestUpdateRoomAndBed_Validate(t *testing.T) {
	validate := newValidator()

	ur := UpdateRoom{RoomNumber: str(" 202 "), Type: str(" Triple ")}
	require.NoError(t, ur.Validate(validate))
	room := ur.apply(Room{ID: 1, RoomNumber: "101", Type: "Double"})
	assert.Equal(t, "202", room.RoomNumber)
	assert.Equal(t, "Triple", room.Type)

	price := 5500.456
	ub := UpdateBed{BedNumber: str(""), MonthlyPrice: &price}
	require.NoError(t, ub.Validate(validate))
	bed := ub.apply(Bed{ID: 1, BedNumber: "101-A", MonthlyPrice: 5000})
	assert.Equal(t, "101-A", bed.BedNumber)
	assert.Equal(t, 5500.46, bed.MonthlyPrice)

	negative := -1.0
	ub = UpdateBed{MonthlyPrice: &negative}
	assert.Error(t, ub.Validate(validate))
}
