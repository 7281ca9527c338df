package places

import (
	"strings"

	"ai-trip-planner/internal/trip"
)

// Scoring weights for ranking candidate places.
const (
	ratingWeight     = 15.0
	ratingScoreCap   = 75.0
	reviewDivisor    = 100.0
	reviewScoreCap   = 10.0
	interestBonus    = 10.0
	budgetBonus      = 5.0
	priorityScoreCap = 100.0
)

// categoryInterests maps each category to the interests it satisfies.
var categoryInterests = map[trip.Category][]string{
	trip.CategoryRestaurant:    {"food", "dining"},
	trip.CategoryMuseum:        {"history", "art", "sightseeing"},
	trip.CategoryPark:          {"nature"},
	trip.CategoryAttraction:    {"sightseeing"},
	trip.CategoryShopping:      {"shopping"},
	trip.CategoryReligiousSite: {"history", "religious"},
	trip.CategoryAdventure:     {"adventure", "nature"},
	trip.CategoryBeach:         {"nature", "relaxation"},
	trip.CategoryScenicSunrise: {"nature", "sightseeing"},
	trip.CategoryScenicSunset:  {"nature", "sightseeing"},
	trip.CategoryNightlife:     {"nightlife"},
}

// budgetCategories lists categories that fit comfortably in each budget band.
var budgetCategories = map[string][]trip.Category{
	"budget": {trip.CategoryPark, trip.CategoryBeach, trip.CategoryReligiousSite,
		trip.CategoryScenicSunrise, trip.CategoryScenicSunset},
	"moderate": {trip.CategoryMuseum, trip.CategoryAttraction, trip.CategoryRestaurant,
		trip.CategoryPark, trip.CategoryBeach, trip.CategoryReligiousSite,
		trip.CategoryScenicSunrise, trip.CategoryScenicSunset},
	"luxury": {trip.CategoryRestaurant, trip.CategoryShopping, trip.CategoryNightlife,
		trip.CategoryAdventure, trip.CategoryMuseum, trip.CategoryAttraction},
}

// PriorityScore ranks a place for a given request. Rating dominates, review
// volume adds a little confidence, and interest and budget alignment add
// fixed bonuses. The result is capped at 100.
func PriorityScore(poi trip.POI, req trip.TripRequest) float64 {
	score := poi.Rating * ratingWeight
	if score > ratingScoreCap {
		score = ratingScoreCap
	}

	reviews := float64(poi.ReviewCount) / reviewDivisor
	if reviews > reviewScoreCap {
		reviews = reviewScoreCap
	}
	score += reviews

	if matchesInterest(poi.Category, req.Interests) {
		score += interestBonus
	}
	if matchesBudget(poi.Category, req.BudgetRange) {
		score += budgetBonus
	}

	if score > priorityScoreCap {
		score = priorityScoreCap
	}
	return score
}

func matchesInterest(cat trip.Category, interests []string) bool {
	satisfied := categoryInterests[cat]
	for _, interest := range interests {
		want := strings.ToLower(strings.TrimSpace(interest))
		for _, s := range satisfied {
			if s == want {
				return true
			}
		}
	}
	return false
}

func matchesBudget(cat trip.Category, budget string) bool {
	cats, ok := budgetCategories[strings.ToLower(strings.TrimSpace(budget))]
	if !ok {
		return false
	}
	for _, c := range cats {
		if c == cat {
			return true
		}
	}
	return false
}

// ScoreAll fills PriorityScore on every POI for the request.
func ScoreAll(pois []trip.POI, req trip.TripRequest) []trip.POI {
	out := make([]trip.POI, len(pois))
	for i, p := range pois {
		p.PriorityScore = PriorityScore(p, req)
		out[i] = p
	}
	return out
}
