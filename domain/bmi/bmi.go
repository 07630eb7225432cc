package bmi

// Category is the BMI classification band
type Category string

const (
	CategoryInvalid     Category = "Invalid"
	CategoryUnderweight Category = "Underweight"
	CategoryNormal      Category = "Normal"
	CategoryOverweight  Category = "Overweight"
	CategoryObese       Category = "Obese"
)

// Result is a computed BMI with its band and the advice line shown for it.
type Result struct {
	BMI      float64  `json:"bmi"`
	Category Category `json:"category"`
	Advice   string   `json:"advice"`
}

// Compute derives BMI from weight in kg and height in cm. Non-positive inputs
// yield the Invalid category with a zero BMI.
func Compute(weightKg, heightCm float64) Result {
	if weightKg <= 0 || heightCm <= 0 {
		return Result{
			BMI:      0,
			Category: CategoryInvalid,
			Advice:   "Height and weight must be positive.",
		}
	}
	heightM := heightCm / 100
	bmi := weightKg / (heightM * heightM)

	switch {
	case bmi < 18.5:
		return Result{bmi, CategoryUnderweight, "Focus on nutrient-dense foods and gain weight healthily."}
	case bmi < 25:
		return Result{bmi, CategoryNormal, "Maintain your current healthy lifestyle."}
	case bmi < 30:
		return Result{bmi, CategoryOverweight, "Consider a balanced diet and exercise."}
	default:
		return Result{bmi, CategoryObese, "Consult a healthcare provider."}
	}
}
