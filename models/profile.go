// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Default daily targets applied to every new account and returned when a
// profile has not been stored yet.
const (
	DefaultDailyCalorieGoal       = 2000
	DefaultDailyStepGoal          = 10000
	DefaultDailyDistanceGoal      = 5.0
	DefaultDailyActiveMinutesGoal = 30
	DefaultDailyProteinGoal       = 150
	DefaultDailyCarbsGoal         = 250
	DefaultDailyFatsGoal          = 70
)

// UserProfile is the per-user document stored at users/{id}/profile/data.
//
// Demographic, health-condition and goal attributes are optional: a nil
// pointer means the user never provided the value and is rendered as null.
type UserProfile struct {
	UserID string `json:"user_id"`

	Age           *int     `json:"age"`
	Gender        *string  `json:"gender"`
	WeightKg      *float64 `json:"weight_kg"`
	HeightCm      *float64 `json:"height_cm"`
	ActivityLevel *string  `json:"activity_level"`

	HasHypertension   bool    `json:"has_hypertension"`
	HasDiabetes       bool    `json:"has_diabetes"`
	HasHeartCondition bool    `json:"has_heart_condition"`
	Medications       *string `json:"medications"`
	Allergies         *string `json:"allergies"`

	GoalType       *string  `json:"goal_type"`
	GoalIntensity  *string  `json:"goal_intensity"`
	TargetWeightKg *float64 `json:"target_weight_kg"`

	DailyCalorieGoal       int     `json:"daily_calorie_goal"`
	DailyStepGoal          int     `json:"daily_step_goal"`
	DailyDistanceGoal      float64 `json:"daily_distance_goal"`
	DailyActiveMinutesGoal int     `json:"daily_active_minutes_goal"`
	DailyProteinGoal       int     `json:"daily_protein_goal"`
	DailyCarbsGoal         int     `json:"daily_carbs_goal"`
	DailyFatsGoal          int     `json:"daily_fats_goal"`

	UpdatedAt *string `json:"updated_at"`
}

// DefaultProfile returns the profile served for a user that has none stored.
func DefaultProfile(userID string) UserProfile {
	return UserProfile{
		UserID:                 userID,
		DailyCalorieGoal:       DefaultDailyCalorieGoal,
		DailyStepGoal:          DefaultDailyStepGoal,
		DailyDistanceGoal:      DefaultDailyDistanceGoal,
		DailyActiveMinutesGoal: DefaultDailyActiveMinutesGoal,
		DailyProteinGoal:       DefaultDailyProteinGoal,
		DailyCarbsGoal:         DefaultDailyCarbsGoal,
		DailyFatsGoal:          DefaultDailyFatsGoal,
	}
}

// DefaultGoals returns the partial profile written at signup: the daily
// targets only, every other attribute left unset.
func DefaultGoals() ProfileUpdate {
	return ProfileUpdate{
		DailyCalorieGoal:       ptr(DefaultDailyCalorieGoal),
		DailyStepGoal:          ptr(DefaultDailyStepGoal),
		DailyDistanceGoal:      ptr(DefaultDailyDistanceGoal),
		DailyActiveMinutesGoal: ptr(DefaultDailyActiveMinutesGoal),
		DailyProteinGoal:       ptr(DefaultDailyProteinGoal),
		DailyCarbsGoal:         ptr(DefaultDailyCarbsGoal),
		DailyFatsGoal:          ptr(DefaultDailyFatsGoal),
	}
}

// ProfileUpdate is the partial mirror of UserProfile used for merge
// updates. Only non-nil fields are written; everything else is preserved.
type ProfileUpdate struct {
	Age           *int     `json:"age,omitempty"`
	Gender        *string  `json:"gender,omitempty"`
	WeightKg      *float64 `json:"weight_kg,omitempty"`
	HeightCm      *float64 `json:"height_cm,omitempty"`
	ActivityLevel *string  `json:"activity_level,omitempty"`

	HasHypertension   *bool   `json:"has_hypertension,omitempty"`
	HasDiabetes       *bool   `json:"has_diabetes,omitempty"`
	HasHeartCondition *bool   `json:"has_heart_condition,omitempty"`
	Medications       *string `json:"medications,omitempty"`
	Allergies         *string `json:"allergies,omitempty"`

	GoalType       *string  `json:"goal_type,omitempty"`
	GoalIntensity  *string  `json:"goal_intensity,omitempty"`
	TargetWeightKg *float64 `json:"target_weight_kg,omitempty"`

	DailyCalorieGoal       *int     `json:"daily_calorie_goal,omitempty"`
	DailyStepGoal          *int     `json:"daily_step_goal,omitempty"`
	DailyDistanceGoal      *float64 `json:"daily_distance_goal,omitempty"`
	DailyActiveMinutesGoal *int     `json:"daily_active_minutes_goal,omitempty"`
	DailyProteinGoal       *int     `json:"daily_protein_goal,omitempty"`
	DailyCarbsGoal         *int     `json:"daily_carbs_goal,omitempty"`
	DailyFatsGoal          *int     `json:"daily_fats_goal,omitempty"`
}

// IsEmpty reports whether the update carries no fields at all.
func (u ProfileUpdate) IsEmpty() bool {
	return u == ProfileUpdate{}
}

func ptr[T any](v T) *T {
	return &v
}
