package service

import "github.com/limbo/dailydare/pkg/entity"

// InitialDares returns a fresh copy of the catalog seeded on startup
func InitialDares() []entity.Dare {
	return []entity.Dare{
		{
			Title:       "Compliment a Stranger",
			Description: "Give a genuine, specific compliment to a complete stranger today.",
			Points:      5,
			Difficulty:  entity.DifficultyEasy,
			Tags:        []string{"Social", "Positive"},
		},
		{
			Title:       "Eat a Veggie",
			Description: "Eat a vegetable you haven't had in the last week. No excuses!",
			Points:      5,
			Difficulty:  entity.DifficultyEasy,
			Tags:        []string{"Health", "Food"},
		},
		{
			Title:         "5-Minute Plank Challenge",
			Description:   "Hold a plank for a total of 5 minutes (can be broken up into multiple sets).",
			Points:        5,
			Difficulty:    entity.DifficultyEasy,
			Tags:          []string{"Fitness", "Endurance"},
			ProofRequired: true,
		},
		{
			Title:       "Learn a Fun Fact",
			Description: "Spend 10 minutes researching a topic you know nothing about and teach a friend one fact.",
			Points:      15,
			Difficulty:  entity.DifficultyMedium,
			Tags:        []string{"Knowledge", "Social"},
		},
		{
			Title:         "Zero Waste Coffee Run",
			Description:   "Buy a coffee using only your own reusable mug. No disposable cups!",
			Points:        15,
			Difficulty:    entity.DifficultyMedium,
			Tags:          []string{"Environment", "Habit"},
			ProofRequired: true,
		},
		{
			Title:         "Cold Shower Shock",
			Description:   "Take a full 3-minute cold shower. Completely cold water, no turning it warm!",
			Points:        30,
			Difficulty:    entity.DifficultyHard,
			Tags:          []string{"Discomfort", "Mental"},
			ProofRequired: true,
		},
	}
}
