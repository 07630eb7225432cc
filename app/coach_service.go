package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gomarkdown/markdown"
	"github.com/google/uuid"

	"parmatma/domain/bmi"
	"parmatma/internal/errors"
	"parmatma/models"
	"parmatma/ports"
)

// CoachService composes the nutrition, exercise and symptom prompts and runs
// them through the generative-language client.
type CoachService struct {
	generator ports.TextGenerator
	profiles  ports.ProfileRepository
	symptoms  ports.SymptomRepository
	model     string
}

// NewCoachService creates a new coach service
func NewCoachService(generator ports.TextGenerator, profiles ports.ProfileRepository, symptoms ports.SymptomRepository, model string) *CoachService {
	return &CoachService{
		generator: generator,
		profiles:  profiles,
		symptoms:  symptoms,
		model:     model,
	}
}

// CoachResponse is generated advice in both raw markdown and rendered HTML.
type CoachResponse struct {
	Markdown string `json:"markdown"`
	HTML     string `json:"html"`
}

func (s *CoachService) generate(ctx context.Context, prompt string) (*CoachResponse, error) {
	text, err := s.generator.GenerateText(ctx, ports.GenerateRequest{
		Model:  s.model,
		Prompt: prompt,
	})
	if err != nil {
		return nil, err
	}
	return &CoachResponse{
		Markdown: text,
		HTML:     string(markdown.ToHTML([]byte(text), nil, nil)),
	}, nil
}

// NutritionInput carries the nutrition-coach form fields.
type NutritionInput struct {
	ProfileID   uuid.UUID `json:"profile_id"`
	Preferences []string  `json:"preferences"`
	Allergies   string    `json:"allergies"`
	Goal        string    `json:"goal"`
	DetailLevel string    `json:"detail_level"`
}

// NutritionPlan generates a weekly nutrition plan tailored to the profile's
// BMI category and the submitted preferences.
func (s *CoachService) NutritionPlan(ctx context.Context, input NutritionInput) (*CoachResponse, error) {
	if strings.TrimSpace(input.Goal) == "" {
		return nil, errors.InvalidInput("nutrition goal is required")
	}
	profile, err := s.profiles.GetByID(ctx, input.ProfileID)
	if err != nil {
		return nil, err
	}
	category := bmi.Compute(profile.WeightKg, profile.HeightCm).Category

	detail := strings.ToLower(input.DetailLevel)
	if detail != "detailed" {
		detail = "brief"
	}
	prefs := "None"
	if len(input.Preferences) > 0 {
		prefs = strings.Join(input.Preferences, ", ")
	}
	allergies := "None"
	if strings.TrimSpace(input.Allergies) != "" {
		allergies = input.Allergies
	}

	prompt := fmt.Sprintf(
		"Create a %s weekly nutrition plan for a person who is %s. "+
			"Dietary preferences: %s. Allergies or avoidance: %s. Nutrition goal: %s "+
			"Include meal ideas, portion guidance, and balanced nutrients.",
		detail, category, prefs, allergies, input.Goal,
	)
	return s.generate(ctx, prompt)
}

// ExerciseInput carries the exercise-routine form fields.
type ExerciseInput struct {
	ProfileID       uuid.UUID `json:"profile_id"`
	BodyPart        string    `json:"body_part"`
	Goal            string    `json:"goal"`
	FitnessLevel    string    `json:"fitness_level"`
	DurationMinutes int       `json:"duration_minutes"`
}

// ExerciseRoutine generates a workout routine for the selected body part,
// goal and fitness level, personalized with the profile's gender.
func (s *CoachService) ExerciseRoutine(ctx context.Context, input ExerciseInput) (*CoachResponse, error) {
	if strings.TrimSpace(input.Goal) == "" {
		return nil, errors.InvalidInput("fitness goal is required")
	}
	profile, err := s.profiles.GetByID(ctx, input.ProfileID)
	if err != nil {
		return nil, err
	}
	duration := input.DurationMinutes
	if duration <= 0 {
		duration = 30
	}

	prompt := fmt.Sprintf(
		"Create a well-rounded %d-minute exercise routine for a %s focused on %s, "+
			"targeting the goal: '%s'. Include warm-up and cool-down suggestions. "+
			"Tailor the routine for a %s considering general fitness principles.",
		duration, strings.ToLower(input.FitnessLevel), input.BodyPart, input.Goal, profile.Gender,
	)
	return s.generate(ctx, prompt)
}

// CheckSymptoms asks for the top-3 condition predictions for the described
// symptoms and stores the exchange against the user.
func (s *CoachService) CheckSymptoms(ctx context.Context, userID uuid.UUID, symptoms string) (*CoachResponse, error) {
	if strings.TrimSpace(symptoms) == "" {
		return nil, errors.InvalidInput("symptoms description is required")
	}

	prompt := fmt.Sprintf(
		"User symptoms: %s. Predict possible diseases or conditions matching these symptoms. "+
			"For each, provide a confidence score as a percentage and list which symptoms matched. "+
			"Give only the top 3 predictions in a clear, brief format.",
		symptoms,
	)
	response, err := s.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	if userID != uuid.Nil {
		entry := &models.SymptomEntry{
			ID:        uuid.New(),
			UserID:    userID,
			Symptoms:  symptoms,
			Response:  response.Markdown,
			CreatedAt: time.Now(),
		}
		if err := s.symptoms.Create(ctx, entry); err != nil {
			return nil, errors.Wrap(err, "failed to store symptom entry")
		}
	}
	return response, nil
}
