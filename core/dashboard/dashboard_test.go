package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pgkhata/pgkhata/core/property"
	"github.com/pgkhata/pgkhata/core/rent"
)

func beds(occupied ...bool) []property.Bed {
	bb := make([]property.Bed, 0, len(occupied))
	for i, occ := range occupied {
		bb = append(bb, property.Bed{ID: i + 1, MonthlyPrice: 5000, IsOccupied: occ})
	}
	return bb
}

func TestBuildStats(t *testing.T) {
	pgs := []property.PG{
		{
			ID:   1,
			Name: "Sunrise PG",
			Rooms: []property.Room{
				{ID: 1, Beds: beds(true, true)},
				{ID: 2, Beds: beds(true, false)},
			},
		},
		{
			ID:    2,
			Name:  "Lakeview PG",
			Rooms: []property.Room{{ID: 3, Beds: beds(false, false, false)}},
		},
		{ID: 3, Name: "Empty PG", Rooms: []property.Room{}},
	}
	sum := rent.Summary{Expected: 15000, Collected: 7000.004, Pending: 8000}

	stats := BuildStats(pgs, sum)

	assert.Equal(t, 3, stats.TotalPGs)
	assert.Equal(t, 3, stats.TotalRooms)
	assert.Equal(t, 7, stats.TotalBeds)
	assert.Equal(t, 3, stats.OccupiedBeds)
	assert.Equal(t, 42.9, stats.OccupancyRate)
	assert.Equal(t, 15000.0, stats.TotalExpectedRent)
	assert.Equal(t, 7000.0, stats.TotalCollectedRent)
	assert.Equal(t, 8000.0, stats.TotalPendingRent)

	assert.Equal(t, []PGStats{
		{PGID: 1, Name: "Sunrise PG", Occupancy: property.Occupancy{TotalRooms: 2, TotalBeds: 4, OccupiedBeds: 3, VacantBeds: 1, OccupancyRate: 75}},
		{PGID: 2, Name: "Lakeview PG", Occupancy: property.Occupancy{TotalRooms: 1, TotalBeds: 3, VacantBeds: 3}},
		{PGID: 3, Name: "Empty PG"},
	}, stats.Properties)
}

func TestBuildStats_noPGs(t *testing.T) {
	stats := BuildStats(nil, rent.Summary{})

	assert.Equal(t, 0, stats.TotalBeds)
	assert.Equal(t, 0.0, stats.OccupancyRate)
	assert.Equal(t, []PGStats{}, stats.Properties)
}
