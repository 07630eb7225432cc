package bmi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name     string
		weightKg float64
		heightCm float64
		want     Category
		wantBMI  float64
	}{
		{"underweight", 45, 170, CategoryUnderweight, 15.57},
		{"normal", 65, 170, CategoryNormal, 22.49},
		{"boundary 18.5 is normal", 18.5, 100, CategoryNormal, 18.5},
		{"overweight", 80, 170, CategoryOverweight, 27.68},
		{"boundary 25 is overweight", 25, 100, CategoryOverweight, 25},
		{"obese", 95, 165, CategoryObese, 34.89},
		{"boundary 30 is obese", 30, 100, CategoryObese, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.weightKg, tt.heightCm)
			assert.Equal(t, tt.want, got.Category)
			assert.InDelta(t, tt.wantBMI, got.BMI, 0.01)
			assert.NotEmpty(t, got.Advice)
		})
	}
}

func TestCompute_InvalidInputs(t *testing.T) {
	for _, tt := range []struct {
		name             string
		weight, height   float64
	}{
		{"zero weight", 0, 170},
		{"zero height", 70, 0},
		{"negative weight", -5, 170},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.weight, tt.height)
			assert.Equal(t, CategoryInvalid, got.Category)
			assert.Equal(t, 0.0, got.BMI)
		})
	}
}
