package services

import (
	"math"

	"voyago/internal/models/response_models"
)

// Attribute weights sum to 1.0. Entrance access dominates because it gates
// whether a visitor can get in at all.
const (
	entranceWeight = 0.40
	restroomWeight = 0.25
	parkingWeight  = 0.20
	seatingWeight  = 0.15
)

// ComputeAccessibilityScore folds the nullable accessibility attributes into
// a single 0-100 score. Attributes with no data carry no weight; when nothing
// is known at all the result is nil rather than zero, since "no data" is not
// "not accessible".
func ComputeAccessibilityScore(attrs *response_models.AccessibilityAttributes) *int {
	if attrs == nil {
		return nil
	}

	var score, totalWeight float64

	add := func(value *bool, weight float64) {
		if value == nil {
			return
		}
		totalWeight += weight
		if *value {
			score += weight
		}
	}

	add(attrs.WheelchairAccessibleEntrance, entranceWeight)
	add(attrs.WheelchairAccessibleRestroom, restroomWeight)
	add(attrs.WheelchairAccessibleParking, parkingWeight)
	add(attrs.WheelchairAccessibleSeating, seatingWeight)

	if totalWeight == 0 {
		return nil
	}

	normalized := int(math.Round(score / totalWeight * 100))
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 100 {
		normalized = 100
	}
	return &normalized
}
