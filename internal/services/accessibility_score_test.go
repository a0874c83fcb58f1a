package services

import (
	"testing"

	"voyago/internal/models/response_models"
)

func boolPtr(v bool) *bool { return &v }

func TestComputeAccessibilityScoreNilAttributes(t *testing.T) {
	if got := ComputeAccessibilityScore(nil); got != nil {
		t.Fatalf("expected nil score for nil attributes, got %d", *got)
	}
}

func TestComputeAccessibilityScoreNoData(t *testing.T) {
	attrs := &response_models.AccessibilityAttributes{}
	if got := ComputeAccessibilityScore(attrs); got != nil {
		t.Fatalf("expected nil score when every attribute is unknown, got %d", *got)
	}
}

func TestComputeAccessibilityScore(t *testing.T) {
	tests := []struct {
		name  string
		attrs response_models.AccessibilityAttributes
		want  int
	}{
		{
			name: "entrance only true",
			attrs: response_models.AccessibilityAttributes{
				WheelchairAccessibleEntrance: boolPtr(true),
			},
			want: 100,
		},
		{
			name: "entrance false restroom true",
			attrs: response_models.AccessibilityAttributes{
				WheelchairAccessibleEntrance: boolPtr(false),
				WheelchairAccessibleRestroom: boolPtr(true),
			},
			// 0.25 out of 0.65 known weight.
			want: 38,
		},
		{
			name: "all true",
			attrs: response_models.AccessibilityAttributes{
				WheelchairAccessibleEntrance: boolPtr(true),
				WheelchairAccessibleRestroom: boolPtr(true),
				WheelchairAccessibleParking:  boolPtr(true),
				WheelchairAccessibleSeating:  boolPtr(true),
			},
			want: 100,
		},
		{
			name: "all false",
			attrs: response_models.AccessibilityAttributes{
				WheelchairAccessibleEntrance: boolPtr(false),
				WheelchairAccessibleRestroom: boolPtr(false),
				WheelchairAccessibleParking:  boolPtr(false),
				WheelchairAccessibleSeating:  boolPtr(false),
			},
			want: 0,
		},
		{
			name: "entrance true seating false",
			attrs: response_models.AccessibilityAttributes{
				WheelchairAccessibleEntrance: boolPtr(true),
				WheelchairAccessibleSeating:  boolPtr(false),
			},
			// 0.40 out of 0.55 known weight.
			want: 73,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeAccessibilityScore(&tt.attrs)
			if got == nil {
				t.Fatalf("expected score %d, got nil", tt.want)
			}
			if *got != tt.want {
				t.Fatalf("expected score %d, got %d", tt.want, *got)
			}
			if *got < 0 || *got > 100 {
				t.Fatalf("score %d out of bounds", *got)
			}
		})
	}
}
