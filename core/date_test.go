package core

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMonth(t *testing.T) {
	tests := []struct {
		name    string
		s       string
		want    Date
		wantErr error
	}{
		{name: "month", s: "2024-02", want: NewDate(2024, time.February, 1)},
		{name: "day", s: " 2024-02-17 ", want: NewDate(2024, time.February, 1)},
		{name: "bad month", s: "2024-13", wantErr: ErrInvalidMonth},
		{name: "wrong order", s: "02-2024", wantErr: ErrInvalidMonth},
		{name: "empty", s: "", wantErr: ErrInvalidMonth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMonth(tt.s)
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMonthOrCurrent(t *testing.T) {
	defer func(f func() time.Time) { NowFunc = f }(NowFunc)
	NowFunc = func() time.Time { return time.Date(2024, time.March, 20, 15, 4, 5, 0, time.UTC) }

	got, err := MonthOrCurrent("")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2024, time.March, 1), got)

	got, err = MonthOrCurrent("2023-11")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2023, time.November, 1), got)
}

func TestDate_MonthBounds(t *testing.T) {
	leap := NewDate(2024, time.February, 10)
	assert.Equal(t, NewDate(2024, time.February, 29), leap.MonthEnd())
	assert.Equal(t, 29, leap.DaysInMonth())
	assert.Equal(t, 31, NewDate(2023, time.December, 31).DaysInMonth())
	assert.Equal(t, "2024-02", leap.MonthString())
}

func TestDate_JSON(t *testing.T) {
	var v struct {
		Day  Date  `json:"day"`
		Opt  *Date `json:"opt"`
		Zero Date  `json:"zero"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"day":"2024-01-16T18:30:00Z","opt":"2024-02-05","zero":""}`), &v))
	assert.Equal(t, NewDate(2024, time.January, 16), v.Day)
	if assert.NotNil(t, v.Opt) {
		assert.Equal(t, NewDate(2024, time.February, 5), *v.Opt)
	}
	assert.True(t, v.Zero.IsZero())

	data, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"day":"2024-01-16","opt":"2024-02-05","zero":null}`, string(data))

	assert.Equal(t, ErrInvalidDate, json.Unmarshal([]byte(`{"day":"16/01/2024"}`), &v))
}

func TestRoundMoney(t *testing.T) {
	assert.Equal(t, 2580.65, RoundMoney(5000*16/31.0))
	assert.Equal(t, 0.0, RoundMoney(0))
	assert.Equal(t, 33.3, Round(100/3.0, 1))
}

func TestCleanPhone(t *testing.T) {
	assert.Equal(t, "+919876543210", CleanPhone(" +91 98765-43210 "))
}

func TestDropBlanks(t *testing.T) {
	blank, spaced, set := "", " ", "9876543210"
	a, b, c := &blank, &spaced, &set
	var d *string
	DropBlanks(&a, &b, &c, &d)
	assert.Nil(t, a)
	assert.NotNil(t, b, "only empty strings are dropped")
	assert.Equal(t, &set, c)
	assert.Nil(t, d)
}

func TestValidate_requiredDate(t *testing.T) {
	validate := validator.New()
	InitValidators(validate, NewTranslator())

	type checkIn struct {
		On    *Date `json:"on" validate:"required"`
		Until Date  `json:"until"`
	}
	day := NewDate(2024, time.January, 16)

	assert.NoError(t, validate.Struct(checkIn{On: &day}))
	for name, v := range map[string]checkIn{
		"nil":  {},
		"zero": {On: &Date{}},
	} {
		err := validate.Struct(v)
		if assert.IsType(t, validator.ValidationErrors{}, err, name) {
			fe := err.(validator.ValidationErrors)[0]
			assert.Equal(t, "on", fe.Field(), name)
			assert.Equal(t, "required", fe.Tag(), name)
		}
	}
}
