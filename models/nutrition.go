// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// NutritionEntry is a logged meal stored at users/{id}/nutrition/{entry_id}.
type NutritionEntry struct {
	ID          string   `json:"id"`
	UserID      string   `json:"user_id"`
	Timestamp   int64    `json:"timestamp"`
	MealType    string   `json:"meal_type" validate:"required"`
	Calories    int      `json:"calories"`
	ProteinG    float64  `json:"protein_g"`
	CarbsG      float64  `json:"carbs_g"`
	FatsG       float64  `json:"fats_g"`
	FiberG      *float64 `json:"fiber_g"`
	SugarG      *float64 `json:"sugar_g"`
	SodiumMg    *float64 `json:"sodium_mg"`
	ImageURL    *string  `json:"image_url"`
	Description *string  `json:"description"`
	FoodItems   *string  `json:"food_items"`
}

// LogNutritionRequest is the body of POST /nutrition.
type LogNutritionRequest struct {
	Timestamp   *int64   `json:"timestamp" validate:"required"`
	MealType    string   `json:"meal_type" validate:"required"`
	Calories    *int     `json:"calories" validate:"required"`
	ProteinG    *float64 `json:"protein_g" validate:"required"`
	CarbsG      *float64 `json:"carbs_g" validate:"required"`
	FatsG       *float64 `json:"fats_g" validate:"required"`
	FiberG      *float64 `json:"fiber_g"`
	SugarG      *float64 `json:"sugar_g"`
	SodiumMg    *float64 `json:"sodium_mg"`
	ImageURL    *string  `json:"image_url"`
	Description *string  `json:"description"`
	FoodItems   *string  `json:"food_items"`
}

// Entry builds the entry owned by userID. Call it on a validated request
// only.
func (r LogNutritionRequest) Entry(userID string) NutritionEntry {
	return NutritionEntry{
		UserID:      userID,
		Timestamp:   *r.Timestamp,
		MealType:    r.MealType,
		Calories:    *r.Calories,
		ProteinG:    *r.ProteinG,
		CarbsG:      *r.CarbsG,
		FatsG:       *r.FatsG,
		FiberG:      r.FiberG,
		SugarG:      r.SugarG,
		SodiumMg:    r.SodiumMg,
		ImageURL:    r.ImageURL,
		Description: r.Description,
		FoodItems:   r.FoodItems,
	}
}

// FoodAnalysis is the static payload of the food image analysis endpoint.
type FoodAnalysis struct {
	Message string `json:"message"`
	Note    string `json:"note"`
}
