package main

import (
	"errors"
	"math"
	"strings"
)

// activityLevels lists the valid activity levels in the order they are shown to
// clients. activityMultipliers is keyed by the same strings.
var activityLevels = []string{
	"sedentary",
	"lightly_active",
	"moderately_active",
	"very_active",
	"extra_active",
}

// activityMultipliers maps activity level strings to their TDEE multiplier.
var activityMultipliers = map[string]float64{
	"sedentary":         1.2,
	"lightly_active":    1.375,
	"moderately_active": 1.55,
	"very_active":       1.725,
	"extra_active":      1.9,
}

// Validation failures. The messages are sent to clients verbatim in 400 responses.
var (
	errInvalidGender        = errors.New("Invalid gender. Please choose 'male' or 'female'.")
	errInvalidActivityLevel = errors.New("Invalid activity level. Choose from: " + joinChoices(activityLevels) + ".")
	errMissingFields        = errors.New("All fields (gender, weight, height, age, activity, dietObjective) are required.")
	errCaloriesOutOfRange   = errors.New("Daily calories are out of range. Check weight, height and age.")
)

// isValidationError reports whether err is caused by bad client input.
func isValidationError(err error) bool {
	return errors.Is(err, errInvalidGender) ||
		errors.Is(err, errInvalidActivityLevel) ||
		errors.Is(err, errMissingFields) ||
		errors.Is(err, errCaloriesOutOfRange)
}

// computeBMR returns basal metabolic rate via Mifflin-St Jeor. Weight is in kg,
// height in cm, age in years. Gender must be exactly "male" or "female".
func computeBMR(gender string, weightKG, heightCM float64, age int) (float64, error) {
	bmr := 10*weightKG + 6.25*heightCM - 5*float64(age)
	switch gender {
	case "male":
		return bmr + 5, nil
	case "female":
		return bmr - 161, nil
	default:
		return 0, errInvalidGender
	}
}

// computeDailyCalories scales bmr by the activity level's multiplier. The result
// is not rounded.
func computeDailyCalories(bmr float64, activityLevel string) (float64, error) {
	mult, found := activityMultipliers[activityLevel]
	if !found {
		return 0, errInvalidActivityLevel
	}
	return bmr * mult, nil
}

// roundHalfUp rounds to the nearest integer with ties going toward +Inf, so
// -2.5 becomes -2. math.Round would give -3. Results that do not fit in an
// int, and NaN, return errCaloriesOutOfRange.
func roundHalfUp(x float64) (int, error) {
	r := math.Floor(x + 0.5)
	if math.IsNaN(r) || r < math.MinInt || r >= math.MaxInt {
		return 0, errCaloriesOutOfRange
	}
	return int(r), nil
}

// joinChoices renders a list as "a, b, or c".
func joinChoices(choices []string) string {
	switch len(choices) {
	case 0:
		return ""
	case 1:
		return choices[0]
	}
	return strings.Join(choices[:len(choices)-1], ", ") + ", or " + choices[len(choices)-1]
}
