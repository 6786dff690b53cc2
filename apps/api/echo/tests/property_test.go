package tests

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgkhata/pgkhata/core"
	"github.com/pgkhata/pgkhata/core/property"
	"github.com/pgkhata/pgkhata/tests"
)

var checkInDate = core.NewDate(2024, time.January, 16)

func Test_propertyApi_pgs(t *testing.T) {
	resetDB()
	owner, token := newOwner(t, "Ravi Kumar", "ravi@test.in")
	other, otherToken := newOwner(t, "Sita", "sita@test.in")

	pg := testutil.CreatePG(t, propSvc, owner.ID, "Sunrise PG", 2, 2, 5000)
	otherPG := testutil.CreatePG(t, propSvc, other.ID, "Moonlight PG", 1, 1, 4000)

	tests := []httpTest{
		{name: "list", method: http.MethodGet, path: "/pgs", token: token, wantCode: http.StatusOK, wantData: marshallList(t, pg)},
		{name: "list: other owner", method: http.MethodGet, path: "/pgs", token: otherToken, wantCode: http.StatusOK, wantData: marshallList(t, otherPG)},
		{name: "search", method: http.MethodGet, path: "/pgs?search=sunrise", token: token, wantCode: http.StatusOK, wantData: marshallList(t, pg)},
		{name: "search: no match", method: http.MethodGet, path: "/pgs?search=moon", token: token, wantCode: http.StatusOK, wantData: marshallList(t)},
		{name: "city", method: http.MethodGet, path: "/pgs?city=Mumbai", token: token, wantCode: http.StatusOK, wantData: marshallList(t)},
		{name: "page", method: http.MethodGet, path: "/pgs?skip=1", token: token, wantCode: http.StatusOK, wantData: marshallList(t)},
		{name: "retrieve", method: http.MethodGet, path: fmt.Sprintf("/pgs/%d", pg.ID), token: token, wantCode: http.StatusOK, wantData: marshallObj(t, pg)},
		{
			name:     "retrieve: other owner's PG",
			method:   http.MethodGet,
			path:     fmt.Sprintf("/pgs/%d", otherPG.ID),
			token:    token,
			wantCode: http.StatusNotFound,
			wantData: marshallObj(t, httpErr{Error: "PG not found"}),
		},
		{name: "retrieve: bad ID", method: http.MethodGet, path: "/pgs/lol", token: token, wantCode: http.StatusNotFound, wantData: marshallObj(t, errNotFound)},
		{
			name:     "create: no name",
			method:   http.MethodPost,
			path:     "/pgs",
			token:    token,
			body:     []byte(`{"name":"  ","city":"Pune"}`),
			wantCode: http.StatusUnprocessableEntity,
			wantData: []byte(`{"name":"this field is required"}`),
		},
		{
			name:     "create: bad contact number",
			method:   http.MethodPost,
			path:     "/pgs",
			token:    token,
			body:     []byte(`{"name":"Sunset PG","contact_number":"12345"}`),
			wantCode: http.StatusUnprocessableEntity,
			wantData: []byte(`{"contact_number":"must be a valid 10 digit mobile number"}`),
		},
		{
			name:     "update: other owner's PG",
			method:   http.MethodPut,
			path:     fmt.Sprintf("/pgs/%d", otherPG.ID),
			token:    token,
			body:     []byte(`{"name":"Mine now"}`),
			wantCode: http.StatusNotFound,
			wantData: marshallObj(t, httpErr{Error: "PG not found"}),
		},
	}
	runTests(t, tests)

	t.Run("create", func(t *testing.T) {
		rec := serve(http.MethodPost, "/pgs", token, []byte(`{"name":" Sunset PG ","city":"Pune","contact_number":"98765-43210"}`))
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var created property.PG
		unmarshall(t, rec, &created)
		assert.NotZero(t, created.ID)
		assert.Equal(t, owner.ID, created.OwnerID)
		assert.Equal(t, "Sunset PG", created.Name)
		assert.Equal(t, "9876543210", created.ContactNumber)
		assert.Empty(t, created.Rooms)
		assert.JSONEq(t, `[]`, rawField(t, rec, "rooms"), "rooms is an empty list, not null")
	})

	t.Run("update", func(t *testing.T) {
		path := fmt.Sprintf("/pgs/%d", pg.ID)
		rec := serve(http.MethodPut, path, token, []byte(`{"name":"","city":"Mumbai","contact_number":""}`))
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var updated property.PG
		unmarshall(t, rec, &updated)
		assert.Equal(t, "Sunrise PG", updated.Name)
		assert.Equal(t, "Mumbai", updated.City)
		assert.Empty(t, updated.ContactNumber)
		assert.Len(t, updated.Rooms, 2)
	})

	t.Run("delete", func(t *testing.T) {
		path := fmt.Sprintf("/pgs/%d", pg.ID)
		tnt := testutil.CheckIn(t, tntSvc, owner.ID, pg.Rooms[0].Beds[0].ID, "Amit", "", checkInDate)

		rec := serve(http.MethodDelete, path, token)
		checkCodeAndData(t, httpTest{wantCode: http.StatusBadRequest, wantData: marshallObj(t, httpErr{Error: property.ErrPGOccupied.Error()})}, rec)

		rec = serve(http.MethodPost, fmt.Sprintf("/tenants/%d/checkout", tnt.ID), token)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		rec = serve(http.MethodDelete, path, otherToken)
		assert.Equal(t, http.StatusNotFound, rec.Code)

		rec = serve(http.MethodDelete, path, token)
		assert.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())
		assert.Equal(t, http.StatusNotFound, serve(http.MethodGet, path, token).Code)
	})
}

func Test_propertyApi_roomsAndBeds(t *testing.T) {
	resetDB()
	owner, token := newOwner(t, "Ravi Kumar", "ravi@test.in")
	_, otherToken := newOwner(t, "Sita", "sita@test.in")
	pg := testutil.CreatePG(t, propSvc, owner.ID, "Sunrise PG", 1, 2, 5000)
	occupiedBed := pg.Rooms[0].Beds[0]
	testutil.CheckIn(t, tntSvc, owner.ID, occupiedBed.ID, "Amit", "", checkInDate)

	var room property.Room
	t.Run("create room", func(t *testing.T) {
		rec := serve(http.MethodPost, fmt.Sprintf("/pgs/%d/rooms", pg.ID), token, []byte(`{"room_number":"301","floor":3,"type":"Triple"}`))
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		unmarshall(t, rec, &room)
		assert.Equal(t, pg.ID, room.PGID)
		assert.Equal(t, "301", room.RoomNumber)
		assert.Equal(t, 3, room.Floor)
		assert.JSONEq(t, `[]`, rawField(t, rec, "beds"), "beds is an empty list, not null")
	})
	require.NotZero(t, room.ID)

	var bed property.Bed
	t.Run("create bed", func(t *testing.T) {
		rec := serve(http.MethodPost, fmt.Sprintf("/pgs/rooms/%d/beds", room.ID), token, []byte(`{"bed_number":"301-A","monthly_price":4999.999}`))
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		unmarshall(t, rec, &bed)
		assert.Equal(t, room.ID, bed.RoomID)
		assert.Equal(t, 5000.0, bed.MonthlyPrice)
		assert.False(t, bed.IsOccupied)
	})
	require.NotZero(t, bed.ID)

	bedExists := []byte(`{"error":"bed number already exists in this room","fields":{"bed_number":"bed number already exists in this room"}}`)
	tests := []httpTest{
		{
			name:     "create room: no number",
			method:   http.MethodPost,
			path:     fmt.Sprintf("/pgs/%d/rooms", pg.ID),
			token:    token,
			body:     []byte(`{"floor":1}`),
			wantCode: http.StatusUnprocessableEntity,
			wantData: []byte(`{"room_number":"this field is required"}`),
		},
		{
			name:     "create room: other owner",
			method:   http.MethodPost,
			path:     fmt.Sprintf("/pgs/%d/rooms", pg.ID),
			token:    otherToken,
			body:     []byte(`{"room_number":"666"}`),
			wantCode: http.StatusNotFound,
			wantData: marshallObj(t, httpErr{Error: "PG not found"}),
		},
		{
			name:     "create bed: duplicate number",
			method:   http.MethodPost,
			path:     fmt.Sprintf("/pgs/rooms/%d/beds", room.ID),
			token:    token,
			body:     []byte(`{"bed_number":"301-A","monthly_price":4000}`),
			wantCode: http.StatusBadRequest,
			wantData: bedExists,
		},
		{
			name:     "create bed: negative price",
			method:   http.MethodPost,
			path:     fmt.Sprintf("/pgs/rooms/%d/beds", room.ID),
			token:    token,
			body:     []byte(`{"bed_number":"301-B","monthly_price":-1}`),
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name:     "create bed: other owner's room",
			method:   http.MethodPost,
			path:     fmt.Sprintf("/pgs/rooms/%d/beds", room.ID),
			token:    otherToken,
			body:     []byte(`{"bed_number":"301-B"}`),
			wantCode: http.StatusNotFound,
			wantData: marshallObj(t, httpErr{Error: "room not found"}),
		},
		{
			name:     "update bed: number taken",
			method:   http.MethodPut,
			path:     fmt.Sprintf("/pgs/beds/%d", pg.Rooms[0].Beds[1].ID),
			token:    token,
			body:     []byte(`{"bed_number":"101-A"}`),
			wantCode: http.StatusBadRequest,
			wantData: bedExists,
		},
		{
			name:     "update bed: other owner",
			method:   http.MethodPut,
			path:     fmt.Sprintf("/pgs/beds/%d", bed.ID),
			token:    otherToken,
			body:     []byte(`{"monthly_price":1}`),
			wantCode: http.StatusNotFound,
			wantData: marshallObj(t, httpErr{Error: "bed not found"}),
		},
		{
			name:     "delete occupied bed",
			method:   http.MethodDelete,
			path:     fmt.Sprintf("/pgs/beds/%d", occupiedBed.ID),
			token:    token,
			wantCode: http.StatusBadRequest,
			wantData: marshallObj(t, httpErr{Error: "cannot delete an occupied bed"}),
		},
		{
			name:     "delete room with occupied bed",
			method:   http.MethodDelete,
			path:     fmt.Sprintf("/pgs/rooms/%d", pg.Rooms[0].ID),
			token:    token,
			wantCode: http.StatusBadRequest,
			wantData: marshallObj(t, httpErr{Error: property.ErrRoomOccupied.Error()}),
		},
	}
	runTests(t, tests)

	t.Run("update bed", func(t *testing.T) {
		rec := serve(http.MethodPut, fmt.Sprintf("/pgs/beds/%d", bed.ID), token, []byte(`{"monthly_price":5500}`))
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var updated property.Bed
		unmarshall(t, rec, &updated)
		assert.Equal(t, "301-A", updated.BedNumber)
		assert.Equal(t, 5500.0, updated.MonthlyPrice)
	})

	t.Run("update room", func(t *testing.T) {
		rec := serve(http.MethodPut, fmt.Sprintf("/pgs/rooms/%d", room.ID), token, []byte(`{"floor":4,"type":"Single"}`))
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var updated property.Room
		unmarshall(t, rec, &updated)
		assert.Equal(t, "301", updated.RoomNumber)
		assert.Equal(t, 4, updated.Floor)
		assert.Equal(t, "Single", updated.Type)
		assert.Len(t, updated.Beds, 1)
	})

	t.Run("delete bed & room", func(t *testing.T) {
		assert.Equal(t, http.StatusNoContent, serve(http.MethodDelete, fmt.Sprintf("/pgs/beds/%d", bed.ID), token).Code)
		assert.Equal(t, http.StatusNotFound, serve(http.MethodDelete, fmt.Sprintf("/pgs/beds/%d", bed.ID), token).Code)
		assert.Equal(t, http.StatusNoContent, serve(http.MethodDelete, fmt.Sprintf("/pgs/rooms/%d", room.ID), token).Code)

		refreshed, err := propSvc.GetPG(ctxBg, owner.ID, pg.ID)
		require.NoError(t, err)
		assert.Len(t, refreshed.Rooms, 1)
	})
}

func Test_propertyApi_vacancies(t *testing.T) {
	resetDB()
	owner, token := newOwner(t, "Ravi Kumar", "ravi@test.in")
	_, otherToken := newOwner(t, "Sita", "sita@test.in")
	pg := testutil.CreatePG(t, propSvc, owner.ID, "Sunrise PG", 2, 2, 5000)
	room1, room2 := pg.Rooms[0], pg.Rooms[1]

	// room 1: one bed left, room 2: full
	testutil.CheckIn(t, tntSvc, owner.ID, room1.Beds[0].ID, "Amit", "", checkInDate)
	testutil.CheckIn(t, tntSvc, owner.ID, room2.Beds[0].ID, "Bina", "", checkInDate)
	testutil.CheckIn(t, tntSvc, owner.ID, room2.Beds[1].ID, "Chetan", "", checkInDate)

	vacantRoom := room1
	vacantRoom.Beds = []property.Bed{room1.Beds[1]}

	path := fmt.Sprintf("/pgs/%d/vacancies", pg.ID)
	tests := []httpTest{
		{
			name:     "rooms",
			method:   http.MethodGet,
			path:     path,
			token:    token,
			wantCode: http.StatusOK,
			wantData: marshallObj(t, property.Vacancies{PGID: pg.ID, Rooms: []property.Room{vacantRoom}, Beds: []property.Bed{}}),
		},
		{
			name:     "beds of a room",
			method:   http.MethodGet,
			path:     fmt.Sprintf("%s?room_id=%d", path, room1.ID),
			token:    token,
			wantCode: http.StatusOK,
			wantData: marshallObj(t, property.Vacancies{PGID: pg.ID, Rooms: []property.Room{vacantRoom}, Beds: room1.Beds[1:]}),
		},
		{
			name:     "beds of a full room",
			method:   http.MethodGet,
			path:     fmt.Sprintf("%s?room_id=%d", path, room2.ID),
			token:    token,
			wantCode: http.StatusOK,
			wantData: marshallObj(t, property.Vacancies{PGID: pg.ID, Rooms: []property.Room{vacantRoom}, Beds: []property.Bed{}}),
		},
		{
			name:     "unknown room",
			method:   http.MethodGet,
			path:     path + "?room_id=999",
			token:    token,
			wantCode: http.StatusNotFound,
			wantData: marshallObj(t, httpErr{Error: "room not found"}),
		},
		{
			name:     "other owner",
			method:   http.MethodGet,
			path:     path,
			token:    otherToken,
			wantCode: http.StatusNotFound,
			wantData: marshallObj(t, httpErr{Error: "PG not found"}),
		},
	}
	runTests(t, tests)
}
