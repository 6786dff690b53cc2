package user

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgkhata/pgkhata/core"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Fatal(string, ...interface{}) {}

func newValidator() *validator.Validate {
	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	InitValidators(validate, translator)
	return validate
}

func Test_checkPassword(t *testing.T) {
	LoadCommonPasswords(nopLogger{})
	require.NotEmpty(t, commonPasswords)

	tests := []struct {
		name  string
		pwd   string
		attrs []string
		want  string
	}{
		{name: "too short", pwd: "aB3$", want: pwdMinLenTag},
		{name: "whitespace", pwd: "correct horse", want: pwdNoSpaceTag},
		{name: "all numeric", pwd: "9876543210", want: pwdNotAllNumTag},
		{name: "similar to name", pwd: "rameshkumar1", attrs: []string{"Ramesh Kumar"}, want: pwdAttrSimTag},
		{name: "similar to email", pwd: "Priya.Sharma", attrs: []string{"", "priya.sharma@example.com"}, want: pwdAttrSimTag},
		{name: "common", pwd: "Password123", want: pwdNoCommonTag},
		{name: "valid", pwd: "Str0ng-Secret!", attrs: []string{"Owner One", "owner@pg.in"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, checkPassword(tt.pwd, tt.attrs...))
		})
	}
}

func TestNewUser_Validate(t *testing.T) {
	LoadCommonPasswords(nopLogger{})
	validate := newValidator()
	conf := core.NewTestConfig()
	svc := NewService(stubRepo{}, nil, nopLogger{}, conf)

	tests := []struct {
		name      string
		nu        NewUser
		wantField string
		wantErr   error
	}{
		{name: "missing email", nu: NewUser{Password: "Str0ng-Secret!", AdminPassword: conf.AdminPassword}, wantField: "email"},
		{name: "invalid email", nu: NewUser{Email: "lol", Password: "Str0ng-Secret!", AdminPassword: conf.AdminPassword}, wantField: "email"},
		{name: "weak password", nu: NewUser{Email: "a@b.in", Password: "12345678", AdminPassword: conf.AdminPassword}, wantField: "password"},
		{name: "missing admin password", nu: NewUser{Email: "a@b.in", Password: "Str0ng-Secret!"}, wantField: "admin_password"},
		{name: "wrong admin password", nu: NewUser{Email: "a@b.in", Password: "Str0ng-Secret!", AdminPassword: "lol"}, wantErr: ErrInvalidAdminPassword},
		{name: "duplicate email", nu: NewUser{Email: " Taken@PG.in ", Password: "Str0ng-Secret!", AdminPassword: conf.AdminPassword}, wantErr: ErrEmailExists},
		{name: "valid, empty full name", nu: NewUser{Email: "new@pg.in", Password: "Str0ng-Secret!", AdminPassword: conf.AdminPassword}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.nu.Validate(context.Background(), validate, svc)
			switch {
			case tt.wantField != "":
				vErrs, ok := err.(validator.ValidationErrors)
				require.True(t, ok, "want validator.ValidationErrors, got %v", err)
				assert.Equal(t, tt.wantField, vErrs[0].Field())
			case tt.wantErr != nil:
				vErr, ok := err.(*core.ValidationError)
				require.True(t, ok, "want *core.ValidationError, got %v", err)
				assert.Equal(t, tt.wantErr, vErr.Err)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

// stubRepo only knows about "taken@pg.in".
type stubRepo struct{}

func (stubRepo) CheckEmailUniqueness(_ context.Context, email string, _ []int, _ ...core.DBExecutor) error {
	if email == "taken@pg.in" {
		return ErrEmailExists
	}
	return nil
}

func (stubRepo) CreateUser(_ context.Context, usr User, _ ...core.DBExecutor) (User, error) {
	return usr, nil
}

func (stubRepo) GetUser(context.Context, GetFilter, ...core.DBExecutor) (User, error) {
	return User{}, ErrNotFound
}

func (stubRepo) UpdateUser(_ context.Context, usr User, _ ...core.DBExecutor) (User, error) {
	return usr, nil
}
