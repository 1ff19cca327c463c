package booking

import (
	"fmt"
	"time"
)

// FloorPlan is the restaurant's static set of bookable tables, including the
// unassigned sentinel. Defined at process start, immutable afterwards.
type FloorPlan struct {
	Tables []Table
}

// ByID returns the table with the given identifier.
func (p FloorPlan) ByID(id int) (Table, bool) {
	for _, t := range p.Tables {
		if t.ID == id {
			return t, true
		}
	}
	return Table{}, false
}

// ByArea returns the tables in an area, excluding the unassigned sentinel.
func (p FloorPlan) ByArea(area Area) []Table {
	var out []Table
	for _, t := range p.Tables {
		if t.ID != UnassignedTableID && t.Area == area {
			out = append(out, t)
		}
	}
	return out
}

// Validate checks identifier uniqueness and the presence of the sentinel.
func (p FloorPlan) Validate() error {
	seen := make(map[int]bool, len(p.Tables))
	hasSentinel := false
	for _, t := range p.Tables {
		if seen[t.ID] {
			return fmt.Errorf("duplicate table id %d", t.ID)
		}
		seen[t.ID] = true
		if t.ID == UnassignedTableID {
			hasSentinel = true
			if t.Area != AreaIndoor {
				return fmt.Errorf("unassigned table must be indoor")
			}
		}
		if t.Area != AreaIndoor && t.Area != AreaOutdoor {
			return fmt.Errorf("table %d: unknown area %q", t.ID, t.Area)
		}
	}
	if !hasSentinel {
		return fmt.Errorf("floor plan is missing the unassigned table (id %d)", UnassignedTableID)
	}
	return nil
}

// DefaultFloorPlan mirrors the restaurant's physical layout: ten indoor
// four-tops and twenty outdoor six-tops, plus the unassigned sentinel.
func DefaultFloorPlan() FloorPlan {
	tables := []Table{{ID: UnassignedTableID, Name: "Unassigned", Area: AreaIndoor, Capacity: 0}}
	for i := 1; i <= 10; i++ {
		tables = append(tables, Table{ID: i, Name: fmt.Sprintf("Table %d", i), Area: AreaIndoor, Capacity: 4})
	}
	for i := 11; i <= 30; i++ {
		tables = append(tables, Table{ID: i, Name: fmt.Sprintf("Table %d", i), Area: AreaOutdoor, Capacity: 6})
	}
	return FloorPlan{Tables: tables}
}

// DefaultOpeningHours: continuous service on Sunday, Monday and Saturday,
// split lunch/dinner service Tuesday through Friday.
func DefaultOpeningHours() OpeningHours {
	continuous := []Period{{Start: "11:00", End: "22:00"}}
	split := []Period{{Start: "11:00", End: "16:00"}, {Start: "17:00", End: "22:00"}}
	return OpeningHours{
		time.Sunday:    continuous,
		time.Monday:    continuous,
		time.Tuesday:   split,
		time.Wednesday: split,
		time.Thursday:  split,
		time.Friday:    split,
		time.Saturday:  continuous,
	}
}
