package services

import (
	"fmt"

	"backend/utils"
)

// Recommendation is the canned diet/exercise plan for one BMI category.
type Recommendation struct {
	WeeklyFoodPlan   string  `json:"weekly_food_plan"`
	DailyWorkoutPlan string  `json:"daily_workout_plan"`
	WaterLiters      float64 `json:"water_liters"`
	CalorieTarget    int     `json:"calorie_target"`
}

type basePlan struct {
	food     string
	workout  string
	water    float64
	calories int
}

var basePlans = map[string]basePlan{
	utils.CategoryUnderweight: {
		food:     "High-calorie nutritious foods: nuts, avocados, whole milk, lean meats, and whole grains. 5-6 small meals per day.",
		workout:  "Light strength training 3-4 days/week, focus on muscle gain, minimal cardio.",
		water:    2.0,
		calories: 2500,
	},
	utils.CategoryNormal: {
		food:     "Balanced diet: vegetables, fruits, lean protein, whole grains. Limit processed sugar and fried foods.",
		workout:  "30-45 minutes moderate exercise 5 days/week (mix of cardio and strength).",
		water:    2.5,
		calories: 2000,
	},
	utils.CategoryOverweight: {
		food:     "Calorie-controlled, high-fiber meals. Focus on vegetables, lean protein, reduce refined carbs and sugary drinks.",
		workout:  "45 minutes brisk walking/cardio 5 days/week + 2 days light strength.",
		water:    3.0,
		calories: 1700,
	},
	utils.CategoryObese: {
		food:     "Low-calorie, nutrient-dense meals. Avoid sugary snacks and late-night eating. Smaller, frequent meals.",
		workout:  "Start with 20-30 minutes low-impact cardio (walking, cycling) 5 days/week; gradually increase.",
		water:    3.0,
		calories: 1500,
	},
	utils.CategorySeverelyObese: {
		food:     "Strict calorie deficit under medical guidance. Mostly vegetables, lean proteins, and whole grains. Avoid fried and ultra-processed foods.",
		workout:  "Very low-impact activity (short walks, chair exercises) 5-6 days/week. Increase duration slowly.",
		water:    3.5,
		calories: 1300,
	},
}

var defaultPlan = basePlan{
	food:     "Balanced meals with vegetables, fruits, lean proteins, and whole grains.",
	workout:  "At least 30 minutes of moderate activity daily.",
	water:    2.5,
	calories: 2000,
}

// RecommendationsFor returns the plan for a BMI category. Unknown categories
// get the default plan rather than an error; the lookup never fails.
func RecommendationsFor(category string) Recommendation {
	plan, ok := basePlans[category]
	if !ok {
		plan = defaultPlan
	}

	weekly := fmt.Sprintf("Weekly Food Plan for %s:\n- %s\n- Spread meals evenly throughout the day.\n- Avoid excessive sugar and deep-fried foods.\n- Include seasonal fruits and vegetables.", category, plan.food)
	daily := fmt.Sprintf("Daily Workout Plan for %s:\n- %s\n- Do a 5-10 minute warm-up and cool-down.\n- Include stretching to prevent injury.", category, plan.workout)

	return Recommendation{
		WeeklyFoodPlan:   weekly,
		DailyWorkoutPlan: daily,
		WaterLiters:      plan.water,
		CalorieTarget:    plan.calories,
	}
}
