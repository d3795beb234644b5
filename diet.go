package main

// maxRecommendedFoods caps the number of foods returned per request.
const maxRecommendedFoods = 10

// Diet objectives with a calorie-range filter. Any other value is passed through
// unfiltered.
const (
	objectiveWeightLoss = "weight_loss"
	objectiveMuscleGain = "muscle_gain"
	objectiveMaintain   = "maintain"
)

// foodMatcher returns the calorie predicate for a diet objective, or nil when
// the objective applies no filter.
func foodMatcher(dailyCalories float64, objective string) func(foodItem) bool {
	switch objective {
	case objectiveWeightLoss:
		limit := dailyCalories * 0.2
		return func(f foodItem) bool { return f.Calories < limit }
	case objectiveMuscleGain:
		lo, hi := dailyCalories*0.15, dailyCalories*0.4
		return func(f foodItem) bool { return f.Calories >= lo && f.Calories <= hi }
	case objectiveMaintain:
		lo, hi := dailyCalories*0.1, dailyCalories*0.3
		return func(f foodItem) bool { return f.Calories >= lo && f.Calories <= hi }
	default:
		return nil
	}
}

// filterFoods returns up to maxRecommendedFoods catalog items matching the diet
// objective, in catalog order. The result is a fresh slice; catalog is never
// written to. An empty result is an empty slice, not nil.
func filterFoods(catalog []foodItem, dailyCalories float64, objective string) []foodItem {
	match := foodMatcher(dailyCalories, objective)
	result := make([]foodItem, 0, min(len(catalog), maxRecommendedFoods))
	for _, item := range catalog {
		if len(result) == maxRecommendedFoods {
			break
		}
		if match == nil || match(item) {
			result = append(result, item)
		}
	}
	return result
}

// foodRecommender filters a fixed catalog. The catalog is shared read-only
// across requests.
type foodRecommender struct {
	catalog []foodItem
}

func newFoodRecommender(catalog []foodItem) *foodRecommender {
	return &foodRecommender{catalog: catalog}
}

// recommend returns the foods for a daily calorie target and diet objective.
func (r *foodRecommender) recommend(dailyCalories float64, objective string) []foodItem {
	return filterFoods(r.catalog, dailyCalories, objective)
}
