package trip

import (
	"time"
)

// Category classifies a point of interest.
type Category string

const (
	CategoryRestaurant    Category = "restaurant"
	CategoryMuseum        Category = "museum"
	CategoryPark          Category = "park"
	CategoryAttraction    Category = "tourist_attraction"
	CategoryShopping      Category = "shopping"
	CategoryReligiousSite Category = "religious_site"
	CategoryAdventure     Category = "adventure_activity"
	CategoryBeach         Category = "beach"
	CategoryScenicSunrise Category = "scenic_sunrise"
	CategoryScenicSunset  Category = "scenic_sunset"
	CategoryNightlife     Category = "nightlife"
	CategoryOther         Category = "other"
)

// GroupType describes who is travelling.
type GroupType string

const (
	GroupSolo     GroupType = "solo"
	GroupFamily   GroupType = "family"
	GroupFriends  GroupType = "friends"
	GroupCouple   GroupType = "couple"
	GroupBusiness GroupType = "business"
)

// Coordinates is a geographic position.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// POI is a candidate place or activity for the trip. The derived fields
// (PriorityScore, EstimatedDuration, OptimalTime, PreferredStart) are
// computed fresh for every build and never cached across builds.
type POI struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Category    Category    `json:"category"`
	Coordinates Coordinates `json:"coordinates"`
	Rating      float64     `json:"rating,omitempty"`
	ReviewCount int         `json:"review_count,omitempty"`

	PriorityScore     float64      `json:"priority_score,omitempty"`
	EstimatedDuration int          `json:"estimated_duration_minutes,omitempty"`
	OptimalTime       TimeCategory `json:"optimal_time_category,omitempty"`
	PreferredStart    TimeOfDay    `json:"preferred_start,omitempty"`
}

// WeatherCondition is the coarse weather state for a day.
type WeatherCondition string

const (
	WeatherSunny  WeatherCondition = "sunny"
	WeatherCloudy WeatherCondition = "cloudy"
	WeatherRainy  WeatherCondition = "rainy"
	WeatherSnowy  WeatherCondition = "snowy"
	WeatherStormy WeatherCondition = "stormy"
	WeatherFoggy  WeatherCondition = "foggy"
)

// WeatherInfo is the forecast for a single trip day. It is supplied by an
// external collaborator and is always optional.
type WeatherInfo struct {
	Date                time.Time        `json:"date"`
	Condition           WeatherCondition `json:"condition"`
	TemperatureHigh     float64          `json:"temperature_high"`
	TemperatureLow      float64          `json:"temperature_low"`
	PrecipitationChance int              `json:"precipitation_chance,omitempty"`
	SuitableForOutdoor  bool             `json:"is_suitable_for_outdoor"`
}

// TripRequest describes what the traveller asked for.
type TripRequest struct {
	Destination  string      `json:"destination"`
	Coordinates  Coordinates `json:"coordinates"`
	StartDate    time.Time   `json:"start_date"`
	DurationDays int         `json:"duration_days"`
	Group        GroupType   `json:"group_type"`
	Interests    []string    `json:"interests,omitempty"`
	BudgetRange  string      `json:"budget_range,omitempty"`
}

// DayItem is one scheduled activity with concrete timestamps. A lunch break
// placeholder has an empty POIID.
type DayItem struct {
	POIID           string    `json:"poi_id,omitempty"`
	Name            string    `json:"name"`
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	DurationMinutes int       `json:"duration_minutes"`
	Note            string    `json:"notes,omitempty"`
}

// IsBreak reports whether the item is a generated break rather than a POI visit.
func (i DayItem) IsBreak() bool {
	return i.POIID == ""
}

// DayPlan is one calendar day of the itinerary, items ordered by start time.
type DayPlan struct {
	Date  time.Time `json:"date"`
	Items []DayItem `json:"items"`
}

// Itinerary is the final plan for the whole trip.
type Itinerary struct {
	ID          string    `json:"id"`
	Destination string    `json:"destination,omitempty"`
	Days        []DayPlan `json:"days"`
	Overflow    []string  `json:"overflow"`
	Warnings    []string  `json:"warnings"`
	Version     int       `json:"version"`
	CreatedAt   time.Time `json:"created_at"`
}
