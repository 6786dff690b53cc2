package property

import "github.com/pgkhata/pgkhata/core"

// Occupancy summarizes the beds of one or more PGs.
type Occupancy struct {
	TotalRooms    int     `json:"total_rooms"`
	TotalBeds     int     `json:"total_beds"`
	OccupiedBeds  int     `json:"occupied_beds"`
	VacantBeds    int     `json:"vacant_beds"`
	OccupancyRate float64 `json:"occupancy_rate"`
}

// Add returns the sum of both summaries, with the rate recomputed.
func (o Occupancy) Add(other Occupancy) Occupancy {
	sum := Occupancy{
		TotalRooms:   o.TotalRooms + other.TotalRooms,
		TotalBeds:    o.TotalBeds + other.TotalBeds,
		OccupiedBeds: o.OccupiedBeds + other.OccupiedBeds,
		VacantBeds:   o.VacantBeds + other.VacantBeds,
	}
	sum.OccupancyRate = OccupancyRate(sum.OccupiedBeds, sum.TotalBeds)
	return sum
}

// OccupancyRate is occupied/total as a percentage rounded to 1 decimal; 0 when there are no beds.
func OccupancyRate(occupied, total int) float64 {
	if total <= 0 {
		return 0
	}
	return core.Round(float64(occupied)/float64(total)*100, 1)
}

// VacantBeds returns the beds of room that are not occupied, in order.
func VacantBeds(room Room) []Bed {
	beds := make([]Bed, 0, len(room.Beds))
	for _, bed := range room.Beds {
		if !bed.IsOccupied {
			beds = append(beds, bed)
		}
	}
	return beds
}

// RoomsWithVacancy returns the rooms of pg having at least one vacant bed.
// Each returned room only carries its vacant beds.
func RoomsWithVacancy(pg PG) []Room {
	rooms := make([]Room, 0, len(pg.Rooms))
	for _, room := range pg.Rooms {
		if vacant := VacantBeds(room); len(vacant) > 0 {
			room.Beds = vacant
			rooms = append(rooms, room)
		}
	}
	return rooms
}

func (pg PG) Occupancy() Occupancy {
	occ := Occupancy{TotalRooms: len(pg.Rooms)}
	for _, room := range pg.Rooms {
		for _, bed := range room.Beds {
			occ.TotalBeds++
			if bed.IsOccupied {
				occ.OccupiedBeds++
			}
		}
	}
	occ.VacantBeds = occ.TotalBeds - occ.OccupiedBeds
	occ.OccupancyRate = OccupancyRate(occ.OccupiedBeds, occ.TotalBeds)
	return occ
}

// HasOccupiedBed reports whether any bed of pg is occupied.
func (pg PG) HasOccupiedBed() bool {
	for _, room := range pg.Rooms {
		if room.HasOccupiedBed() {
			return true
		}
	}
	return false
}

func (room Room) HasOccupiedBed() bool {
	for _, bed := range room.Beds {
		if bed.IsOccupied {
			return true
		}
	}
	return false
}

// Vacancies backs the tenant assignment wizard: rooms with a vacant bed and,
// once a room is picked, the vacant beds of that room.
type Vacancies struct {
	PGID  int    `json:"pg_id"`
	Rooms []Room `json:"rooms"`
	Beds  []Bed  `json:"beds"`
}
