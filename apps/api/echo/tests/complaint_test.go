package tests

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgkhata/pgkhata/core/complaint"
	"github.com/pgkhata/pgkhata/tests"
)

func complaintIDs(t *testing.T, path, token string) []int {
	rec := serve(http.MethodGet, path, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var cpls []complaint.Complaint
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cpls))
	ids := make([]int, 0, len(cpls))
	for _, cpl := range cpls {
		ids = append(ids, cpl.ID)
	}
	return ids
}

func Test_complaintApi(t *testing.T) {
	resetDB()
	owner, token := newOwner(t, "Ravi Kumar", "ravi@test.in")
	other, otherToken := newOwner(t, "Sita", "sita@test.in")
	pg := testutil.CreatePG(t, propSvc, owner.ID, "Sunrise PG", 1, 2, 5000)
	otherPG := testutil.CreatePG(t, propSvc, other.ID, "Moonlight PG", 1, 1, 4000)
	amit := testutil.CheckIn(t, tntSvc, owner.ID, pg.Rooms[0].Beds[0].ID, "Amit Shah", "", checkInDate)
	bina := testutil.CheckIn(t, tntSvc, owner.ID, pg.Rooms[0].Beds[1].ID, "Bina Rao", "", checkInDate)
	dev := testutil.CheckIn(t, tntSvc, other.ID, otherPG.Rooms[0].Beds[0].ID, "Dev", "", checkInDate)

	var tap, water complaint.Complaint
	t.Run("create", func(t *testing.T) {
		rec := serve(http.MethodPost, "/complaints", token, []byte(fmt.Sprintf(
			`{"tenant_id":%d,"title":" Leaky tap ","description":"The bathroom tap leaks."}`, amit.ID,
		)))
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		unmarshall(t, rec, &tap)
		assert.Equal(t, amit.ID, tap.TenantID)
		assert.Equal(t, pg.ID, tap.PGID)
		assert.Equal(t, "Leaky tap", tap.Title)
		assert.Equal(t, "Amit Shah", tap.TenantName)
		assert.Equal(t, complaint.StatusOpen, tap.Status)
		assert.Nil(t, tap.ResolvedAt)
	})
	require.NotZero(t, tap.ID)

	t.Run("create: tenant in query", func(t *testing.T) {
		rec := serve(http.MethodPost, fmt.Sprintf("/complaints?tenant_id=%d", bina.ID), token, []byte(`{"title":"No hot water"}`))
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		unmarshall(t, rec, &water)
		assert.Equal(t, bina.ID, water.TenantID)
		assert.Equal(t, "Bina Rao", water.TenantName)
	})
	require.NotZero(t, water.ID)

	runTests(t, []httpTest{
		{
			name:     "create: empty",
			method:   http.MethodPost,
			path:     "/complaints",
			token:    token,
			body:     []byte(`{}`),
			wantCode: http.StatusUnprocessableEntity,
			wantData: []byte(`{"tenant_id":"this field is required","title":"this field is required"}`),
		},
		{
			name:     "create: other owner's tenant",
			method:   http.MethodPost,
			path:     "/complaints",
			token:    token,
			body:     []byte(fmt.Sprintf(`{"tenant_id":%d,"title":"Noise"}`, dev.ID)),
			wantCode: http.StatusNotFound,
			wantData: marshallObj(t, httpErr{Error: "tenant not found"}),
		},
		{
			name:     "query: bad status",
			method:   http.MethodGet,
			path:     "/complaints?status=lol",
			token:    token,
			wantCode: http.StatusUnprocessableEntity,
			wantData: []byte(`{"status":"must be one of: open, resolved"}`),
		},
		{
			name:     "retrieve",
			method:   http.MethodGet,
			path:     fmt.Sprintf("/complaints/%d", tap.ID),
			token:    token,
			wantCode: http.StatusOK,
			wantData: marshallObj(t, tap),
		},
		{
			name:     "retrieve: other owner",
			method:   http.MethodGet,
			path:     fmt.Sprintf("/complaints/%d", tap.ID),
			token:    otherToken,
			wantCode: http.StatusNotFound,
			wantData: marshallObj(t, httpErr{Error: "complaint not found"}),
		},
		{
			name:     "resolve: other owner",
			method:   http.MethodPut,
			path:     fmt.Sprintf("/complaints/%d/resolve", tap.ID),
			token:    otherToken,
			wantCode: http.StatusNotFound,
			wantData: marshallObj(t, httpErr{Error: "complaint not found"}),
		},
	})

	t.Run("query", func(t *testing.T) {
		assert.Equal(t, []int{water.ID, tap.ID}, complaintIDs(t, "/complaints", token))
		assert.Equal(t, []int{water.ID, tap.ID}, complaintIDs(t, "/complaints?status=open", token))
		assert.Equal(t, []int{tap.ID}, complaintIDs(t, fmt.Sprintf("/complaints?tenant_id=%d", amit.ID), token))
		assert.Equal(t, []int{water.ID, tap.ID}, complaintIDs(t, fmt.Sprintf("/complaints?pg_id=%d", pg.ID), token))
		assert.Empty(t, complaintIDs(t, "/complaints", otherToken))
	})

	t.Run("resolve", func(t *testing.T) {
		path := fmt.Sprintf("/complaints/%d/resolve", tap.ID)
		rec := serve(http.MethodPut, path, token)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resolved complaint.Complaint
		unmarshall(t, rec, &resolved)
		assert.Equal(t, complaint.StatusResolved, resolved.Status)
		assert.NotNil(t, resolved.ResolvedAt)

		rec = serve(http.MethodPut, path, token)
		checkCodeAndData(t, httpTest{wantCode: http.StatusBadRequest, wantData: marshallObj(t, httpErr{Error: complaint.ErrAlreadyResolved.Error()})}, rec)

		assert.Equal(t, []int{tap.ID}, complaintIDs(t, "/complaints?status=RESOLVED", token))
		assert.Equal(t, []int{water.ID}, complaintIDs(t, "/complaints?status=open", token))
	})
}
