package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// welcome handles GET /.
func (h *Handler) welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to FitJourney BackendAPI"})
}

// getRecommendation handles POST /getRecomend. Computes BMR and daily calories
// from the body profile, then returns up to ten catalog foods that fit the diet
// objective.
func (h *Handler) getRecommendation(c *gin.Context) {
	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.recommend(req)
	if err != nil {
		if isValidationError(err) {
			apiError(c, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("[recommend] %v", err)
		apiError(c, http.StatusInternalServerError, "internal error")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// recommend runs BMR → daily calories → food filter for a bound request.
func (h *Handler) recommend(req recommendRequest) (recommendResponse, error) {
	if err := validateRecommendRequest(req); err != nil {
		return recommendResponse{}, err
	}

	bmr, err := computeBMR(*req.Gender, *req.Weight, *req.Height, *req.Age)
	if err != nil {
		return recommendResponse{}, err
	}
	daily, err := computeDailyCalories(bmr, *req.Activity)
	if err != nil {
		return recommendResponse{}, err
	}

	rounded, err := roundHalfUp(daily)
	if err != nil {
		return recommendResponse{}, err
	}

	return recommendResponse{
		DailyCalories:    rounded,
		RecommendedFoods: h.foods.recommend(daily, dietObjectiveName(req.DietObjective)),
	}, nil
}

// validateRecommendRequest rejects requests with any field absent, null, empty
// or zero.
func validateRecommendRequest(req recommendRequest) error {
	if isBlank(req.Gender) || isZero(req.Weight) || isZero(req.Height) ||
		isZero(req.Age) || isBlank(req.Activity) || isFalsy(req.DietObjective) {
		return errMissingFields
	}
	return nil
}

func isBlank(s *string) bool {
	return s == nil || *s == ""
}

func isZero[T int | float64](v *T) bool {
	return v == nil || *v == 0
}

// isFalsy reports whether a decoded JSON value is null, false, 0 or "".
// Objects and arrays, even empty ones, count as present.
func isFalsy(v any) bool {
	switch v := v.(type) {
	case nil:
		return true
	case bool:
		return !v
	case float64:
		return v == 0
	case string:
		return v == ""
	default:
		return false
	}
}

// dietObjectiveName returns the objective when it is a string. Any other
// value yields "", which matches no objective and leaves the catalog unfiltered.
func dietObjectiveName(v any) string {
	s, _ := v.(string)
	return s
}
