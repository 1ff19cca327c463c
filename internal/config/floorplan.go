package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dojanjanjan/charm-reservations/internal/booking"
)

// floorPlanFile is the YAML shape for overriding the built-in layout.
// Weekdays are numeric, 0=Sunday through 6=Saturday, matching the schedule
// the restaurant already maintains.
type floorPlanFile struct {
	SlotMinutes     int                      `yaml:"slot_minutes"`
	DurationMinutes int                      `yaml:"duration_minutes"`
	Tables          []booking.Table          `yaml:"tables"`
	OpeningHours    map[int][]booking.Period `yaml:"opening_hours"`
}

// LoadFloorPlan returns the floor plan and schedule, from the YAML file at
// path when given, otherwise the built-in defaults.
func LoadFloorPlan(path string) (booking.FloorPlan, booking.Schedule, error) {
	plan := booking.DefaultFloorPlan()
	schedule := booking.NewSchedule(booking.DefaultOpeningHours())
	if path == "" {
		return plan, schedule, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return plan, schedule, fmt.Errorf("floor plan: %w", err)
	}
	var f floorPlanFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return plan, schedule, fmt.Errorf("floor plan %s: %w", path, err)
	}

	if len(f.Tables) > 0 {
		plan = booking.FloorPlan{Tables: f.Tables}
	}
	if err := plan.Validate(); err != nil {
		return plan, schedule, fmt.Errorf("floor plan %s: %w", path, err)
	}

	if len(f.OpeningHours) > 0 {
		hours := make(booking.OpeningHours, len(f.OpeningHours))
		for day, periods := range f.OpeningHours {
			if day < 0 || day > 6 {
				return plan, schedule, fmt.Errorf("floor plan %s: weekday %d out of range", path, day)
			}
			hours[time.Weekday(day)] = periods
		}
		schedule.Hours = hours
	}
	if f.SlotMinutes > 0 {
		schedule.SlotMinutes = f.SlotMinutes
	}
	if f.DurationMinutes > 0 {
		schedule.DurationMinutes = f.DurationMinutes
	}
	if schedule.DurationMinutes%schedule.SlotMinutes != 0 {
		return plan, schedule, fmt.Errorf("floor plan %s: duration %d is not a multiple of slot granularity %d",
			path, schedule.DurationMinutes, schedule.SlotMinutes)
	}

	return plan, schedule, nil
}
