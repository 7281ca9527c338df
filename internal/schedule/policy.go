package schedule

import (
	"fmt"
	"os"
	"time"

	"ai-trip-planner/internal/trip"

	"gopkg.in/yaml.v3"
)

// Policy holds every tunable of the scheduling engine. DefaultPolicy matches
// the shipped behavior; individual values can be overridden from a YAML file.
type Policy struct {
	DailyBudgetMinutes int // soft cap on allocated activity minutes per day
	DayTotalCapMinutes int // validator warning threshold incl. buffers and breaks
	MaxItemsPerDay     int
	BufferMinutes      int
	LunchMinutes       int
	LunchWindowStart   trip.TimeOfDay
	LunchWindowEnd     trip.TimeOfDay
	OperatingStart     trip.TimeOfDay
	OperatingEnd       trip.TimeOfDay
	GapNoteMinutes     int // gaps longer than this get an explanatory note

	MinDurationMinutes   int
	MaxDurationMinutes   int
	DurationRoundMinutes int
	DefaultDuration      int
	BaseDurations        map[trip.Category]int
	GroupMultipliers     map[trip.GroupType]float64

	AdvisorTimeout time.Duration
	AdvisorRetries int
}

// DefaultPolicy returns the standard scheduling policy.
func DefaultPolicy() Policy {
	return Policy{
		DailyBudgetMinutes: 420,
		DayTotalCapMinutes: 480,
		MaxItemsPerDay:     6,
		BufferMinutes:      15,
		LunchMinutes:       60,
		LunchWindowStart:   trip.ClockTime(12, 0),
		LunchWindowEnd:     trip.ClockTime(14, 0),
		OperatingStart:     trip.ClockTime(9, 0),
		OperatingEnd:       trip.ClockTime(20, 0),
		GapNoteMinutes:     90,

		MinDurationMinutes:   30,
		MaxDurationMinutes:   300,
		DurationRoundMinutes: 5,
		DefaultDuration:      90,
		BaseDurations: map[trip.Category]int{
			trip.CategoryRestaurant:    90,
			trip.CategoryMuseum:        150,
			trip.CategoryPark:          90,
			trip.CategoryAttraction:    120,
			trip.CategoryShopping:      120,
			trip.CategoryReligiousSite: 60,
			trip.CategoryAdventure:     240,
			trip.CategoryBeach:         180,
		},
		GroupMultipliers: map[trip.GroupType]float64{
			trip.GroupFamily:   1.3,
			trip.GroupSolo:     0.8,
			trip.GroupCouple:   1.0,
			trip.GroupFriends:  1.1,
			trip.GroupBusiness: 0.9,
		},

		AdvisorTimeout: 5 * time.Second,
		AdvisorRetries: 1,
	}
}

// policyFile is the YAML shape of a policy override file. Every field is
// optional; zero values keep the default.
type policyFile struct {
	DailyBudgetMinutes int    `yaml:"daily_budget_minutes"`
	DayTotalCapMinutes int    `yaml:"day_total_cap_minutes"`
	MaxItemsPerDay     int    `yaml:"max_items_per_day"`
	BufferMinutes      int    `yaml:"buffer_minutes"`
	LunchMinutes       int    `yaml:"lunch_minutes"`
	LunchWindowStart   string `yaml:"lunch_window_start"`
	LunchWindowEnd     string `yaml:"lunch_window_end"`
	OperatingStart     string `yaml:"operating_start"`
	OperatingEnd       string `yaml:"operating_end"`
	GapNoteMinutes     int    `yaml:"gap_note_minutes"`

	BaseDurations    map[string]int     `yaml:"base_durations"`
	GroupMultipliers map[string]float64 `yaml:"group_multipliers"`

	AdvisorTimeoutSeconds int `yaml:"advisor_timeout_seconds"`
}

// LoadPolicy reads a YAML override file and applies it on top of the default
// policy. A missing path returns the defaults unchanged.
func LoadPolicy(path string) (Policy, error) {
	p := DefaultPolicy()
	if path == "" {
		return p, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("failed to read policy file %s: %w", path, err)
	}

	var f policyFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return p, fmt.Errorf("failed to parse policy file %s: %w", path, err)
	}

	if f.DailyBudgetMinutes > 0 {
		p.DailyBudgetMinutes = f.DailyBudgetMinutes
	}
	if f.DayTotalCapMinutes > 0 {
		p.DayTotalCapMinutes = f.DayTotalCapMinutes
	}
	if f.MaxItemsPerDay > 0 {
		p.MaxItemsPerDay = f.MaxItemsPerDay
	}
	if f.BufferMinutes > 0 {
		p.BufferMinutes = f.BufferMinutes
	}
	if f.LunchMinutes > 0 {
		p.LunchMinutes = f.LunchMinutes
	}
	if f.GapNoteMinutes > 0 {
		p.GapNoteMinutes = f.GapNoteMinutes
	}
	if f.AdvisorTimeoutSeconds > 0 {
		p.AdvisorTimeout = time.Duration(f.AdvisorTimeoutSeconds) * time.Second
	}

	clocks := []struct {
		raw  string
		dest *trip.TimeOfDay
	}{
		{f.LunchWindowStart, &p.LunchWindowStart},
		{f.LunchWindowEnd, &p.LunchWindowEnd},
		{f.OperatingStart, &p.OperatingStart},
		{f.OperatingEnd, &p.OperatingEnd},
	}
	for _, c := range clocks {
		if c.raw == "" {
			continue
		}
		t, err := trip.ParseTimeOfDay(c.raw)
		if err != nil {
			return p, fmt.Errorf("policy file %s: %w", path, err)
		}
		*c.dest = t
	}

	for cat, minutes := range f.BaseDurations {
		p.BaseDurations[trip.Category(cat)] = minutes
	}
	for group, mult := range f.GroupMultipliers {
		p.GroupMultipliers[trip.GroupType(group)] = mult
	}

	return p, nil
}
