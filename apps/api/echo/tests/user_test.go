package tests

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/pgkhata/pgkhata/apps/api/echo"
	"github.com/pgkhata/pgkhata/core/user"
	"github.com/pgkhata/pgkhata/services/email"
	"github.com/pgkhata/pgkhata/tests"
)

func Test_userApi_login(t *testing.T) {
	resetDB()

	pwd := "kanpur-rocks-42"
	testutil.CreateOwner(t, usrRepo, "Ravi Kumar", "ravi@test.in", pwd)
	inactive := testutil.CreateOwner(t, usrRepo, "Sita", "sita@test.in", pwd)
	inactive.IsActive = false
	_, err := usrRepo.UpdateUser(context.Background(), inactive)
	require.NoError(t, err)

	path := "/login/access-token"
	tests := []httpTest{
		{
			name:     "missing credentials",
			method:   http.MethodPost,
			path:     path,
			body:     []byte(`{}`),
			wantCode: http.StatusUnprocessableEntity,
			wantData: []byte(`{"username":"this field is required","password":"this field is required"}`),
		},
		{
			name:     "unknown email",
			method:   http.MethodPost,
			path:     path,
			body:     marshallObj(t, LoginRequest{Username: "lol@test.in", Password: pwd}),
			wantCode: http.StatusBadRequest,
			wantData: marshallObj(t, httpErr{Error: "incorrect email or password"}),
		},
		{
			name:     "wrong password",
			method:   http.MethodPost,
			path:     path,
			body:     marshallObj(t, LoginRequest{Username: "ravi@test.in", Password: "lol"}),
			wantCode: http.StatusBadRequest,
			wantData: marshallObj(t, httpErr{Error: "incorrect email or password"}),
		},
		{
			name:     "inactive owner",
			method:   http.MethodPost,
			path:     path,
			body:     marshallObj(t, LoginRequest{Username: "sita@test.in", Password: pwd}),
			wantCode: http.StatusForbidden,
			wantData: marshallObj(t, httpErr{Error: "inactive user"}),
		},
	}
	runTests(t, tests)

	checkToken := func(t *testing.T, rec *httptest.ResponseRecorder) {
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var resp TokenResponse
		unmarshall(t, rec, &resp)
		assert.Equal(t, "bearer", resp.TokenType)
		assert.NotEmpty(t, resp.AccessToken)

		me := serve(http.MethodGet, "/users/me", resp.AccessToken)
		assert.Equal(t, http.StatusOK, me.Code)
	}

	t.Run("json", func(t *testing.T) {
		rec := serve(http.MethodPost, path, "", marshallObj(t, LoginRequest{Username: " RAVI@test.in ", Password: pwd}))
		checkToken(t, rec)

		usr, err := usrRepo.GetUser(context.Background(), user.GetFilter{Email: "ravi@test.in"})
		require.NoError(t, err)
		assert.False(t, usr.LastLogin.IsZero(), "last login not set")
	})

	t.Run("form", func(t *testing.T) {
		form := url.Values{"username": {"ravi@test.in"}, "password": {pwd}}
		req := httptest.NewRequest(http.MethodPost, apiPath(path), strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		app.ServeHTTP(rec, req)
		checkToken(t, rec)
	})
}

func Test_userApi_authentication(t *testing.T) {
	resetDB()

	usr, token := newOwner(t, "Ravi Kumar", "ravi@test.in")
	ghostToken := getToken(t, user.User{ID: usr.ID + 100, Email: "ghost@test.in"})

	inactive, inactiveToken := newOwner(t, "Sita", "sita@test.in")
	inactive.IsActive = false
	_, err := usrRepo.UpdateUser(context.Background(), inactive)
	require.NoError(t, err)

	tests := []httpTest{
		{name: "no token", method: http.MethodGet, path: "/users/me", wantCode: http.StatusUnauthorized, wantData: marshallObj(t, errMissingToken)},
		{name: "bad token", method: http.MethodGet, path: "/users/me", token: "lol", wantCode: http.StatusUnauthorized, wantData: marshallObj(t, errInvalidToken)},
		{
			name:     "deleted owner",
			method:   http.MethodGet,
			path:     "/users/me",
			token:    ghostToken,
			wantCode: http.StatusUnauthorized,
			wantData: marshallObj(t, httpErr{Error: "could not validate credentials"}),
		},
		{
			name:     "inactive owner",
			method:   http.MethodGet,
			path:     "/users/me",
			token:    inactiveToken,
			wantCode: http.StatusForbidden,
			wantData: marshallObj(t, httpErr{Error: "inactive user"}),
		},
		{name: "protected resources", method: http.MethodGet, path: "/pgs", wantCode: http.StatusUnauthorized, wantData: marshallObj(t, errMissingToken)},
		{name: "ok", method: http.MethodGet, path: "/users/me", token: token, wantCode: http.StatusOK},
	}
	runTests(t, tests)
}

func Test_userApi_create(t *testing.T) {
	resetDB()
	testutil.CreateOwner(t, usrRepo, "Taken", "taken@test.in", "")

	newUser := func(email, pwd, adminPwd string) []byte {
		return marshallObj(t, user.NewUser{Email: email, FullName: "Ravi Kumar", Password: pwd, AdminPassword: adminPwd})
	}
	pwd := "kanpur-rocks-42"

	tests := []httpTest{
		{
			name:     "empty",
			method:   http.MethodPost,
			path:     "/users",
			body:     []byte(`{}`),
			wantCode: http.StatusUnprocessableEntity,
			wantData: []byte(`{"email":"this field is required","password":"this field is required","admin_password":"this field is required"}`),
		},
		{
			name:     "numeric password",
			method:   http.MethodPost,
			path:     "/users",
			body:     newUser("new@test.in", "12345678", conf.AdminPassword),
			wantCode: http.StatusUnprocessableEntity,
			wantData: []byte(`{"password":"password cannot be entirely numeric"}`),
		},
		{
			name:     "short password",
			method:   http.MethodPost,
			path:     "/users",
			body:     newUser("new@test.in", "k42", conf.AdminPassword),
			wantCode: http.StatusUnprocessableEntity,
			wantData: []byte(`{"password":"password must contain at least 8 characters"}`),
		},
		{
			name:     "wrong admin password",
			method:   http.MethodPost,
			path:     "/users",
			body:     newUser("new@test.in", pwd, "lol"),
			wantCode: http.StatusBadRequest,
			wantData: marshallObj(t, httpErr{Error: user.ErrInvalidAdminPassword.Error()}),
		},
		{
			name:     "email taken",
			method:   http.MethodPost,
			path:     "/users",
			body:     newUser(" TAKEN@test.in", pwd, conf.AdminPassword),
			wantCode: http.StatusBadRequest,
			wantData: marshallObj(t, httpErr{Error: user.ErrEmailExists.Error()}),
		},
	}
	runTests(t, tests)

	rec := serve(http.MethodPost, "/users", "", newUser("New@Test.in", pwd, conf.AdminPassword))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created user.User
	unmarshall(t, rec, &created)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "new@test.in", created.Email)
	assert.Equal(t, "Ravi Kumar", created.FullName)
	assert.True(t, created.IsActive)
	assert.NotContains(t, rec.Body.String(), "password")

	usr, err := usrRepo.GetUser(context.Background(), user.GetFilter{ID: created.ID})
	require.NoError(t, err)
	assert.NoError(t, usr.CheckPassword(pwd))
}

func Test_userApi_me(t *testing.T) {
	resetDB()
	usr, token := newOwner(t, "Ravi Kumar", "ravi@test.in")
	other, _ := newOwner(t, "Sita", "sita@test.in")

	t.Run("retrieve", func(t *testing.T) {
		rec := serve(http.MethodGet, "/users/me", token)
		require.Equal(t, http.StatusOK, rec.Code)

		var me user.User
		unmarshall(t, rec, &me)
		assert.Equal(t, usr.ID, me.ID)
		assert.Equal(t, usr.Email, me.Email)
		assert.Equal(t, usr.FullName, me.FullName)
	})

	tests := []httpTest{
		{name: "self by ID", method: http.MethodGet, path: "/users/" + strconv.Itoa(usr.ID), token: token, wantCode: http.StatusOK},
		{name: "other owner", method: http.MethodGet, path: "/users/" + strconv.Itoa(other.ID), token: token, wantCode: http.StatusNotFound, wantData: marshallObj(t, errNotFound)},
		{name: "unknown ID", method: http.MethodGet, path: "/users/lol", token: token, wantCode: http.StatusNotFound, wantData: marshallObj(t, errNotFound)},
		{
			name:     "password mismatch",
			method:   http.MethodPut,
			path:     "/users/me",
			token:    token,
			body:     marshallObj(t, user.UpdateUser{Password: "brand-new-pass", PasswordConfirm: "lol"}),
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name:     "password without confirmation",
			method:   http.MethodPut,
			path:     "/users/me",
			token:    token,
			body:     marshallObj(t, user.UpdateUser{Password: "brand-new-pass"}),
			wantCode: http.StatusUnprocessableEntity,
			wantData: []byte(`{"password_confirm":"this field is required"}`),
		},
	}
	runTests(t, tests)

	t.Run("update", func(t *testing.T) {
		rec := serve(http.MethodPut, "/users/me", token, marshallObj(t, user.UpdateUser{
			FullName:        "  Ravi K  ",
			Password:        "brand-new-pass",
			PasswordConfirm: "brand-new-pass",
		}))
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var me user.User
		unmarshall(t, rec, &me)
		assert.Equal(t, "Ravi K", me.FullName)

		usr, err := usrRepo.GetUser(context.Background(), user.GetFilter{ID: usr.ID})
		require.NoError(t, err)
		assert.NoError(t, usr.CheckPassword("brand-new-pass"))
	})

	t.Run("blank name is kept", func(t *testing.T) {
		rec := serve(http.MethodPut, "/users/me", token, []byte(`{"full_name":"   "}`))
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var me user.User
		unmarshall(t, rec, &me)
		assert.Equal(t, "Ravi K", me.FullName)
	})
}

func Test_userApi_refreshToken(t *testing.T) {
	resetDB()
	_, token := newOwner(t, "Ravi Kumar", "ravi@test.in")

	runTests(t, []httpTest{
		{name: "no token", method: http.MethodPost, path: "/login/refresh-token", wantCode: http.StatusUnauthorized, wantData: marshallObj(t, errMissingToken)},
	})

	rec := serve(http.MethodPost, "/login/refresh-token", token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp TokenResponse
	unmarshall(t, rec, &resp)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, http.StatusOK, serve(http.MethodGet, "/users/me", resp.AccessToken).Code)
}

func Test_userApi_passwordReset(t *testing.T) {
	resetDB()
	usr := testutil.CreateOwner(t, usrRepo, "Ravi Kumar", "ravi@test.in", "kanpur-rocks-42")
	success := SuccessResponse{
		Success: "If the email address supplied is associated with an active account on this system, " +
			"an email will arrive in your inbox shortly with instructions to reset your password.",
	}

	runTests(t, []httpTest{
		{
			name:     "invalid email",
			method:   http.MethodPost,
			path:     "/users/password-reset",
			body:     marshallObj(t, PasswordResetRequest{Email: "lol"}),
			wantCode: http.StatusUnprocessableEntity,
			wantData: []byte(`{"email":"email must be a valid email address"}`),
		},
		{
			name:     "unknown email",
			method:   http.MethodPost,
			path:     "/users/password-reset",
			body:     marshallObj(t, PasswordResetRequest{Email: "lol@test.in"}),
			wantCode: http.StatusOK,
			wantData: marshallObj(t, success),
		},
	})
	assert.Empty(t, emailsvc.SentMessages())

	rec := serve(http.MethodPost, "/users/password-reset", "", marshallObj(t, PasswordResetRequest{Email: "RAVI@test.in"}))
	checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: marshallObj(t, success)}, rec)

	msgs := emailsvc.SentMessages()
	if assert.Len(t, msgs, 1) {
		assert.Equal(t, usr.Email, msgs[0].To[0].Address)
		assert.Equal(t, "Password Reset", msgs[0].Subject)
	}

	token, err := user.MakeToken(conf, usr)
	require.NoError(t, err)
	uid := user.EncodeUID(usr)
	confirm := func(token, uid string) []byte {
		return marshallObj(t, user.ResetUserPassword{Token: token, UID: uid, Password: "brand-new-pass", PasswordConfirm: "brand-new-pass"})
	}

	runTests(t, []httpTest{
		{
			name:     "confirm: bad token",
			method:   http.MethodPost,
			path:     "/users/password-reset-confirm",
			body:     confirm("lol-lol", uid),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"error":"invalid token","fields":{"token":"invalid token"}}`),
		},
		{
			name:     "confirm: bad uid",
			method:   http.MethodPost,
			path:     "/users/password-reset-confirm",
			body:     confirm(token, "lol"),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"error":"invalid token","fields":{"uid":"invalid uid"}}`),
		},
		{
			name:     "confirm",
			method:   http.MethodPost,
			path:     "/users/password-reset-confirm",
			body:     confirm(token, uid),
			wantCode: http.StatusOK,
			wantData: marshallObj(t, SuccessResponse{Success: "Password has been reset with the new password."}),
		},
		{
			name:     "confirm: token already used",
			method:   http.MethodPost,
			path:     "/users/password-reset-confirm",
			body:     confirm(token, uid),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"error":"invalid token","fields":{"token":"invalid token"}}`),
		},
	})

	usr, err = usrRepo.GetUser(context.Background(), user.GetFilter{ID: usr.ID})
	require.NoError(t, err)
	assert.NoError(t, usr.CheckPassword("brand-new-pass"))
}
