package tenant

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgkhata/pgkhata/core"
)

func newValidator() *validator.Validate {
	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	InitValidators(validate, translator)
	return validate
}

// invalidFields returns the (json) names of the fields rejected by the validator.
func invalidFields(t *testing.T, err error) []string {
	t.Helper()
	if err == nil {
		return nil
	}
	var vErrs validator.ValidationErrors
	require.IsType(t, vErrs, err)
	flds := make([]string, 0, len(err.(validator.ValidationErrors)))
	for _, fe := range err.(validator.ValidationErrors) {
		flds = append(flds, fe.Field())
	}
	return flds
}

func TestNewTenant_Validate(t *testing.T) {
	validate := newValidator()
	checkIn := core.NewDate(2024, time.January, 15)

	valid := func() NewTenant {
		return NewTenant{
			Name:        "  Arjun Mehta ",
			Phone:       "98765-43210",
			Email:       " Arjun@Example.com",
			CheckInDate: &checkIn,
			BedID:       4,
		}
	}

	tests := []struct {
		name   string
		mutate func(nt *NewTenant)
		want   []string
	}{
		{name: "valid", mutate: func(*NewTenant) {}},
		{name: "with +91 prefix", mutate: func(nt *NewTenant) { nt.Phone = "+919876543210" }},
		{name: "missing name", mutate: func(nt *NewTenant) { nt.Name = "   " }, want: []string{"name"}},
		{name: "short phone", mutate: func(nt *NewTenant) { nt.Phone = "98765" }, want: []string{"phone"}},
		{name: "landline", mutate: func(nt *NewTenant) { nt.Phone = "0201234567" }, want: []string{"phone"}},
		{name: "bad email", mutate: func(nt *NewTenant) { nt.Email = "arjun@" }, want: []string{"email"}},
		{name: "missing check-in date", mutate: func(nt *NewTenant) { nt.CheckInDate = nil }, want: []string{"check_in_date"}},
		{name: "zero check-in date", mutate: func(nt *NewTenant) { nt.CheckInDate = &core.Date{} }, want: []string{"check_in_date"}},
		{name: "missing bed", mutate: func(nt *NewTenant) { nt.BedID = 0 }, want: []string{"bed_id"}},
		{name: "negative deposit", mutate: func(nt *NewTenant) { nt.SecurityDeposit = -1 }, want: []string{"security_deposit"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nt := valid()
			tt.mutate(&nt)
			assert.Equal(t, tt.want, invalidFields(t, nt.Validate(validate)))
		})
	}

	nt := valid()
	require.NoError(t, nt.Validate(validate))
	assert.Equal(t, "Arjun Mehta", nt.Name)
	assert.Equal(t, "9876543210", nt.Phone)
	assert.Equal(t, "arjun@example.com", nt.Email)
}

func TestUpdateTenant_apply(t *testing.T) {
	validate := newValidator()
	str := func(s string) *string { return &s }
	amount := func(f float64) *float64 { return &f }

	tnt := Tenant{ID: 1, Name: "Arjun", Phone: "9876543210", Email: "arjun@example.com", SecurityDeposit: 5000}

	ut := UpdateTenant{Name: str(""), Phone: str("91234 56789"), Email: str(""), SecurityDeposit: amount(7500.499)}
	require.NoError(t, ut.Validate(validate))

	got := ut.apply(tnt)
	assert.Equal(t, "Arjun", got.Name)
	assert.Equal(t, "9123456789", got.Phone)
	assert.Equal(t, "", got.Email)
	assert.Equal(t, 7500.5, got.SecurityDeposit)

	blank := UpdateTenant{Phone: str(" "), Email: str("  ")}
	require.NoError(t, blank.Validate(validate))
	if assert.NotNil(t, blank.Email) {
		assert.Equal(t, "", *blank.Email)
	}
	got = blank.apply(tnt)
	assert.Equal(t, "9876543210", got.Phone)
	assert.Equal(t, "", got.Email)

	bad := UpdateTenant{Phone: str("12345"), Email: str("arjun@")}
	assert.Equal(t, []string{"phone", "email"}, invalidFields(t, bad.Validate(validate)))
}

func TestQueryFilter_Validate(t *testing.T) {
	validate := newValidator()

	f := QueryFilter{Status: " Active "}
	require.NoError(t, f.Validate(validate))
	assert.Equal(t, StatusActive, f.Status)

	f = QueryFilter{Status: "gone"}
	assert.Equal(t, []string{"status"}, invalidFields(t, f.Validate(validate)))
}
