package main

import (
	"errors"
	"math"
	"testing"
)

/* ─── BMR tests ──────────────────────────────────────────────────────── */

// TestComputeBMR_Male verifies the male Mifflin-St Jeor formula.
//
// Inputs: 70kg, 175cm, 25 years.
// Expected: 10*70 + 6.25*175 - 5*25 + 5 = 700 + 1093.75 - 125 + 5 = 1673.75
func TestComputeBMR_Male(t *testing.T) {
	bmr, err := computeBMR("male", 70, 175, 25)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bmr != 1673.75 {
		t.Errorf("male BMR = %v, want 1673.75", bmr)
	}
}

// TestComputeBMR_Female verifies the female formula: same inputs, -161 instead of +5.
func TestComputeBMR_Female(t *testing.T) {
	bmr, err := computeBMR("female", 70, 175, 25)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bmr != 1507.75 {
		t.Errorf("female BMR = %v, want 1507.75", bmr)
	}
}

// TestComputeBMR_MaleFemaleDifference verifies male minus female is always 166.
// Inputs are chosen so every term is exactly representable.
func TestComputeBMR_MaleFemaleDifference(t *testing.T) {
	cases := []struct {
		weight, height float64
		age            int
	}{
		{70, 175, 25},
		{55.5, 160, 40},
		{120, 198, 18},
		{1, 1, 1},
		{250, 220.5, 99},
	}
	for _, tc := range cases {
		male, err := computeBMR("male", tc.weight, tc.height, tc.age)
		if err != nil {
			t.Fatalf("male: %v", err)
		}
		female, err := computeBMR("female", tc.weight, tc.height, tc.age)
		if err != nil {
			t.Fatalf("female: %v", err)
		}
		if diff := male - female; diff != 166 {
			t.Errorf("male-female for %+v = %v, want 166", tc, diff)
		}
	}
}

// TestComputeBMR_InvalidGender verifies that anything other than the exact
// strings "male" and "female" is rejected.
func TestComputeBMR_InvalidGender(t *testing.T) {
	for _, gender := range []string{"Male", "FEMALE", "", "other", " male"} {
		t.Run(gender, func(t *testing.T) {
			_, err := computeBMR(gender, 70, 175, 25)
			if !errors.Is(err, errInvalidGender) {
				t.Errorf("computeBMR(%q) error = %v, want errInvalidGender", gender, err)
			}
		})
	}
}

func TestInvalidGenderMessage(t *testing.T) {
	want := "Invalid gender. Please choose 'male' or 'female'."
	if errInvalidGender.Error() != want {
		t.Errorf("message = %q, want %q", errInvalidGender.Error(), want)
	}
}

/* ─── Daily calorie tests ────────────────────────────────────────────── */

// TestComputeDailyCalories_Multipliers verifies every activity level scales BMR
// by its own factor.
func TestComputeDailyCalories_Multipliers(t *testing.T) {
	cases := []struct {
		level string
		mult  float64
	}{
		{"sedentary", 1.2},
		{"lightly_active", 1.375},
		{"moderately_active", 1.55},
		{"very_active", 1.725},
		{"extra_active", 1.9},
	}
	for _, tc := range cases {
		t.Run(tc.level, func(t *testing.T) {
			for _, bmr := range []float64{0, 1200, 1673.75, -50} {
				got, err := computeDailyCalories(bmr, tc.level)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got != bmr*tc.mult {
					t.Errorf("computeDailyCalories(%v, %s) = %v, want %v", bmr, tc.level, got, bmr*tc.mult)
				}
			}
		})
	}
}

// TestComputeDailyCalories_Scenario checks the worked example: 1673.75 * 1.55.
func TestComputeDailyCalories_Scenario(t *testing.T) {
	got, err := computeDailyCalories(1673.75, "moderately_active")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-2594.3125) > 1e-9 {
		t.Errorf("daily = %v, want 2594.3125", got)
	}
	if r, err := roundHalfUp(got); err != nil || r != 2594 {
		t.Errorf("rounded = %d, %v, want 2594", r, err)
	}
}

// TestComputeDailyCalories_UnknownLevel verifies unrecognised levels are rejected,
// including short names like "moderate" and different casing.
func TestComputeDailyCalories_UnknownLevel(t *testing.T) {
	for _, level := range []string{"", "unknown", "moderate", "Sedentary", "very active"} {
		t.Run(level, func(t *testing.T) {
			_, err := computeDailyCalories(1500, level)
			if !errors.Is(err, errInvalidActivityLevel) {
				t.Errorf("computeDailyCalories(%q) error = %v, want errInvalidActivityLevel", level, err)
			}
		})
	}
}

// TestInvalidActivityLevelMessage verifies the message lists every valid option.
func TestInvalidActivityLevelMessage(t *testing.T) {
	want := "Invalid activity level. Choose from: sedentary, lightly_active, moderately_active, very_active, or extra_active."
	if errInvalidActivityLevel.Error() != want {
		t.Errorf("message = %q, want %q", errInvalidActivityLevel.Error(), want)
	}
}

// TestActivityLevelsMatchMultipliers guards against the ordered list and the
// multiplier map drifting apart.
func TestActivityLevelsMatchMultipliers(t *testing.T) {
	if len(activityLevels) != len(activityMultipliers) {
		t.Fatalf("%d levels, %d multipliers", len(activityLevels), len(activityMultipliers))
	}
	for _, level := range activityLevels {
		if _, ok := activityMultipliers[level]; !ok {
			t.Errorf("level %q has no multiplier", level)
		}
	}
}

/* ─── Rounding ───────────────────────────────────────────────────────── */

func TestRoundHalfUp(t *testing.T) {
	cases := []struct {
		in   float64
		want int
	}{
		{2594.3125, 2594},
		{2594.5, 2595},
		{2594.4999, 2594},
		{0, 0},
		{-2.5, -2},
		{-2.51, -3},
		{-0.4, 0},
	}
	for _, tc := range cases {
		got, err := roundHalfUp(tc.in)
		if err != nil {
			t.Fatalf("roundHalfUp(%v): %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("roundHalfUp(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

// TestRoundHalfUp_OutOfRange verifies values an int cannot hold are rejected
// instead of wrapping around to a wrong-signed number.
func TestRoundHalfUp_OutOfRange(t *testing.T) {
	for _, x := range []float64{1e308, -1e308, math.Inf(1), math.Inf(-1), math.NaN(), math.MaxInt64} {
		if got, err := roundHalfUp(x); !errors.Is(err, errCaloriesOutOfRange) {
			t.Errorf("roundHalfUp(%v) = %d, %v, want errCaloriesOutOfRange", x, got, err)
		}
	}
	if !isValidationError(errCaloriesOutOfRange) {
		t.Error("errCaloriesOutOfRange should be a validation error")
	}
}

// TestCoreIdempotent verifies repeated calls with the same inputs agree.
func TestCoreIdempotent(t *testing.T) {
	catalog := testCatalog()
	for i := 0; i < 3; i++ {
		bmr1, _ := computeBMR("female", 62, 168, 33)
		bmr2, _ := computeBMR("female", 62, 168, 33)
		if bmr1 != bmr2 {
			t.Fatalf("BMR differs: %v vs %v", bmr1, bmr2)
		}
		d1, _ := computeDailyCalories(bmr1, "very_active")
		d2, _ := computeDailyCalories(bmr2, "very_active")
		if d1 != d2 {
			t.Fatalf("daily differs: %v vs %v", d1, d2)
		}
		f1 := filterFoods(catalog, d1, objectiveMuscleGain)
		f2 := filterFoods(catalog, d2, objectiveMuscleGain)
		if names(f1) != names(f2) {
			t.Fatalf("foods differ: %s vs %s", names(f1), names(f2))
		}
	}
}
