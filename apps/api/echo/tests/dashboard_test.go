package tests

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pgkhata/pgkhata/core"
	"github.com/pgkhata/pgkhata/core/complaint"
	"github.com/pgkhata/pgkhata/core/dashboard"
	"github.com/pgkhata/pgkhata/core/property"
	"github.com/pgkhata/pgkhata/core/rent"
	"github.com/pgkhata/pgkhata/tests"
)

func Test_dashboardApi_stats(t *testing.T) {
	resetDB()
	owner, token := newOwner(t, "Ravi Kumar", "ravi@test.in")
	_, otherToken := newOwner(t, "Sita", "sita@test.in")
	sunrise := testutil.CreatePG(t, propSvc, owner.ID, "Sunrise PG", 2, 2, 5000)
	sunset := testutil.CreatePG(t, propSvc, owner.ID, "Sunset PG", 1, 1, 4000)

	jan1 := core.NewDate(2024, time.January, 1)
	amit := testutil.CheckIn(t, tntSvc, owner.ID, sunrise.Rooms[0].Beds[0].ID, "Amit Shah", "", jan1)
	bina := testutil.CheckIn(t, tntSvc, owner.ID, sunset.Rooms[0].Beds[0].ID, "Bina Rao", "", jan1)

	recs, err := rentSvc.Query(ctxBg, rent.QueryFilter{OwnerID: owner.ID, TenantID: amit.ID}, core.Page{})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	_, err = rentSvc.RecordPayment(ctxBg, recs[0], rent.UpdateRecord{Status: rent.StatusPaid})
	require.NoError(t, err)

	for _, title := range []string{"Leaky tap", "No hot water"} {
		_, err = cplSvc.Create(ctxBg, owner.ID, complaint.NewComplaint{TenantID: bina.ID, Title: title})
		require.NoError(t, err)
	}
	cpls, err := cplSvc.Query(ctxBg, complaint.QueryFilter{OwnerID: owner.ID}, core.Page{})
	require.NoError(t, err)
	_, err = cplSvc.Resolve(ctxBg, cpls[0])
	require.NoError(t, err)

	properties := []dashboard.PGStats{
		{
			PGID: sunrise.ID,
			Name: "Sunrise PG",
			Occupancy: property.Occupancy{
				TotalRooms:    2,
				TotalBeds:     4,
				OccupiedBeds:  1,
				VacantBeds:    3,
				OccupancyRate: 25,
			},
		},
		{
			PGID: sunset.ID,
			Name: "Sunset PG",
			Occupancy: property.Occupancy{
				TotalRooms:    1,
				TotalBeds:     1,
				OccupiedBeds:  1,
				VacantBeds:    0,
				OccupancyRate: 100,
			},
		},
	}
	janStats := dashboard.Stats{
		Month:              "2024-01",
		TotalPGs:           2,
		TotalRooms:         3,
		TotalBeds:          5,
		OccupiedBeds:       2,
		OccupancyRate:      40,
		TotalExpectedRent:  9000,
		TotalCollectedRent: 5000,
		TotalPendingRent:   4000,
		ActiveTenants:      2,
		OpenComplaints:     1,
		Properties:         properties,
	}
	febStats := janStats
	febStats.Month = "2024-02"
	febStats.TotalExpectedRent, febStats.TotalCollectedRent, febStats.TotalPendingRent = 0, 0, 0

	currStats := janStats
	currStats.Month = core.Today().MonthString()
	currStats.TotalExpectedRent, currStats.TotalCollectedRent, currStats.TotalPendingRent = 0, 0, 0

	tests := []httpTest{
		{name: "no token", method: http.MethodGet, path: "/dashboard/stats", wantCode: http.StatusUnauthorized, wantData: marshallObj(t, errMissingToken)},
		{name: "january", method: http.MethodGet, path: "/dashboard/stats?month=2024-01", token: token, wantCode: http.StatusOK, wantData: marshallObj(t, janStats)},
		{name: "february: not generated yet", method: http.MethodGet, path: "/dashboard/stats?curr_month=2024-02", token: token, wantCode: http.StatusOK, wantData: marshallObj(t, febStats)},
		{name: "current month", method: http.MethodGet, path: "/dashboard/stats", token: token, wantCode: http.StatusOK, wantData: marshallObj(t, currStats)},
		{
			name:     "bad month",
			method:   http.MethodGet,
			path:     "/dashboard/stats?month=01-2024",
			token:    token,
			wantCode: http.StatusBadRequest,
			wantData: marshallObj(t, httpErr{Error: core.ErrInvalidMonth.Error()}),
		},
		{
			name:     "owner without PGs",
			method:   http.MethodGet,
			path:     "/dashboard/stats?month=2024-01",
			token:    otherToken,
			wantCode: http.StatusOK,
			wantData: marshallObj(t, dashboard.Stats{Month: "2024-01", Properties: []dashboard.PGStats{}}),
		},
	}
	runTests(t, tests)
}

func Test_home(t *testing.T) {
	req, rec := newRequest(http.MethodGet, "/")
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, fmt.Sprintf("Welcome to %s API!", conf.AppName), rec.Body.String())
}
