package catalog

import "github.com/misterclayt0n/forja/internal/models"

// builtin returns a fresh copy of the stock programs every call, so callers
// are free to modify what they get.
func builtin() []models.Workout {
	return []models.Workout{
		{
			ID:         "1",
			Name:       "Chest Day - Hypertrophy",
			Muscle:     "chest",
			Difficulty: models.DifficultyIntermediate,
			Duration:   "60 min",
			Exercises: []models.Exercise{
				{Name: "Barbell Bench Press", Sets: 4, Reps: "8-10", Rest: "90s", Tips: "Keep shoulder blades retracted"},
				{Name: "Incline Dumbbell Press", Sets: 4, Reps: "10-12", Rest: "75s", Tips: "30-45 degree incline"},
				{Name: "Cable Flyes", Sets: 3, Reps: "12-15", Rest: "60s", Tips: "Focus on the stretch"},
				{Name: "Dips", Sets: 3, Reps: "To Failure", Rest: "90s", Tips: "Lean forward for chest emphasis"},
				{Name: "Push-ups", Sets: 3, Reps: "To Failure", Rest: "60s", Tips: "Maintain straight body line"},
			},
		},
		{
			ID:         "2",
			Name:       "Back & Biceps Power",
			Muscle:     "back",
			Difficulty: models.DifficultyIntermediate,
			Duration:   "75 min",
			Exercises: []models.Exercise{
				{Name: "Deadlifts", Sets: 4, Reps: "6-8", Rest: "120s", Tips: "Keep back straight, chest up"},
				{Name: "Pull-ups", Sets: 4, Reps: "8-12", Rest: "90s", Tips: "Full range of motion"},
				{Name: "Barbell Rows", Sets: 4, Reps: "10-12", Rest: "75s", Tips: "Pull to lower chest"},
				{Name: "Cable Rows", Sets: 3, Reps: "12-15", Rest: "60s", Tips: "Squeeze shoulder blades"},
				{Name: "Barbell Curls", Sets: 3, Reps: "10-12", Rest: "60s", Tips: "Control the negative"},
				{Name: "Hammer Curls", Sets: 3, Reps: "12-15", Rest: "45s", Tips: "Keep elbows stationary"},
			},
		},
		{
			ID:         "3",
			Name:       "Leg Day - Strength",
			Muscle:     "legs",
			Difficulty: models.DifficultyAdvanced,
			Duration:   "90 min",
			Exercises: []models.Exercise{
				{Name: "Back Squats", Sets: 5, Reps: "5", Rest: "180s", Tips: "Hip crease below knees"},
				{Name: "Romanian Deadlifts", Sets: 4, Reps: "8-10", Rest: "90s", Tips: "Feel hamstring stretch"},
				{Name: "Leg Press", Sets: 4, Reps: "12-15", Rest: "75s", Tips: "Full depth, knees tracking toes"},
				{Name: "Leg Curls", Sets: 3, Reps: "12-15", Rest: "60s", Tips: "Pause at peak contraction"},
				{Name: "Calf Raises", Sets: 4, Reps: "15-20", Rest: "45s", Tips: "Full range, pause at top"},
				{Name: "Walking Lunges", Sets: 3, Reps: "20 steps", Rest: "90s", Tips: "Keep torso upright"},
			},
		},
		{
			ID:         "4",
			Name:       "Shoulder Sculpting",
			Muscle:     "shoulders",
			Difficulty: models.DifficultyIntermediate,
			Duration:   "60 min",
			Exercises: []models.Exercise{
				{Name: "Military Press", Sets: 4, Reps: "8-10", Rest: "90s", Tips: "Core tight, no back arch"},
				{Name: "Dumbbell Shoulder Press", Sets: 3, Reps: "10-12", Rest: "75s", Tips: "Natural arc movement"},
				{Name: "Lateral Raises", Sets: 4, Reps: "12-15", Rest: "45s", Tips: "Lead with elbows"},
				{Name: "Face Pulls", Sets: 3, Reps: "15-20", Rest: "45s", Tips: "Pull to eye level"},
				{Name: "Rear Delt Flyes", Sets: 3, Reps: "15", Rest: "45s", Tips: "Slight bend in elbows"},
				{Name: "Upright Rows", Sets: 3, Reps: "12-15", Rest: "60s", Tips: "Wide grip for safety"},
			},
		},
		{
			ID:         "5",
			Name:       "Arms Blast",
			Muscle:     "arms",
			Difficulty: models.DifficultyBeginner,
			Duration:   "45 min",
			Exercises: []models.Exercise{
				{Name: "Close-Grip Bench Press", Sets: 4, Reps: "10", Rest: "75s", Tips: "Hands shoulder-width"},
				{Name: "Preacher Curls", Sets: 4, Reps: "10-12", Rest: "60s", Tips: "Full extension at bottom"},
				{Name: "Tricep Dips", Sets: 3, Reps: "12-15", Rest: "60s", Tips: "Keep elbows close"},
				{Name: "Cable Curls", Sets: 3, Reps: "15", Rest: "45s", Tips: "Constant tension"},
				{Name: "Overhead Tricep Extension", Sets: 3, Reps: "12-15", Rest: "60s", Tips: "Keep elbows in"},
				{Name: "21s Bicep Curls", Sets: 3, Reps: "21", Rest: "75s", Tips: "7 bottom, 7 top, 7 full"},
			},
		},
		{
			ID:         "6",
			Name:       "Core Crusher",
			Muscle:     "core",
			Difficulty: models.DifficultyIntermediate,
			Duration:   "30 min",
			Exercises: []models.Exercise{
				{Name: "Plank", Sets: 3, Reps: "60 seconds", Rest: "30s", Tips: "Straight line from head to heels"},
				{Name: "Russian Twists", Sets: 4, Reps: "20", Rest: "45s", Tips: "Keep chest up"},
				{Name: "Leg Raises", Sets: 3, Reps: "15", Rest: "45s", Tips: "Control the descent"},
				{Name: "Ab Wheel", Sets: 3, Reps: "10-12", Rest: "60s", Tips: "Keep core tight throughout"},
				{Name: "Mountain Climbers", Sets: 3, Reps: "30 seconds", Rest: "30s", Tips: "Fast pace, hips low"},
				{Name: "Dead Bug", Sets: 3, Reps: "10 per side", Rest: "45s", Tips: "Lower back pressed to floor"},
			},
		},
		{
			ID:         "7",
			Name:       "Full Body HIIT",
			Muscle:     models.MuscleAll,
			Difficulty: models.DifficultyAdvanced,
			Duration:   "45 min",
			Exercises: []models.Exercise{
				{Name: "Burpees", Sets: 4, Reps: "10", Rest: "45s", Tips: "Explosive jump at top"},
				{Name: "Box Jumps", Sets: 4, Reps: "12", Rest: "60s", Tips: "Land softly, step down"},
				{Name: "Battle Ropes", Sets: 3, Reps: "30 seconds", Rest: "45s", Tips: "Maintain rhythm"},
				{Name: "Kettlebell Swings", Sets: 4, Reps: "15", Rest: "45s", Tips: "Hip hinge, not squat"},
				{Name: "Medicine Ball Slams", Sets: 3, Reps: "15", Rest: "45s", Tips: "Full body engagement"},
				{Name: "Sled Push/Pull", Sets: 3, Reps: "40 yards", Rest: "90s", Tips: "Low body position"},
			},
		},
		{
			ID:         "8",
			Name:       "Push Day - Volume",
			Muscle:     "chest",
			Difficulty: models.DifficultyIntermediate,
			Duration:   "70 min",
			Exercises: []models.Exercise{
				{Name: "Flat Bench Press", Sets: 5, Reps: "10", Rest: "90s", Tips: "Touch chest, full lockout"},
				{Name: "Overhead Press", Sets: 4, Reps: "8-10", Rest: "90s", Tips: "Start from front rack"},
				{Name: "Incline Dumbbell Press", Sets: 4, Reps: "12", Rest: "75s", Tips: "Feel chest stretch"},
				{Name: "Lateral Raises", Sets: 4, Reps: "15", Rest: "45s", Tips: "Control the weight"},
				{Name: "Tricep Pushdowns", Sets: 4, Reps: "15", Rest: "45s", Tips: "Lock out at bottom"},
			},
		},
	}
}

var exerciseNames = map[string][]string{
	"chest": {
		"Barbell Bench Press", "Dumbbell Bench Press", "Incline Bench Press",
		"Decline Bench Press", "Cable Flyes", "Pec Deck", "Push-ups",
		"Dips", "Cable Crossover", "Chest Press Machine", "Dumbbell Flyes",
		"Incline Dumbbell Press", "Decline Dumbbell Press", "Wide-Grip Push-ups",
		"Diamond Push-ups", "Chest Dips", "Landmine Press", "Svend Press",
	},
	"back": {
		"Deadlifts", "Pull-ups", "Chin-ups", "Barbell Rows", "Dumbbell Rows",
		"T-Bar Rows", "Cable Rows", "Lat Pulldowns", "Face Pulls", "Shrugs",
		"Rack Pulls", "Good Mornings", "Hyperextensions", "Reverse Flyes",
		"Straight-Arm Pulldowns", "Pendlay Rows", "Kroc Rows", "Meadows Rows",
	},
	"legs": {
		"Back Squats", "Front Squats", "Leg Press", "Romanian Deadlifts",
		"Leg Curls", "Leg Extensions", "Calf Raises", "Walking Lunges",
		"Bulgarian Split Squats", "Hack Squats", "Goblet Squats", "Box Squats",
		"Stiff-Leg Deadlifts", "Glute Ham Raises", "Step-ups", "Pistol Squats",
		"Nordic Curls", "Leg Press Calf Raises",
	},
	"shoulders": {
		"Military Press", "Dumbbell Shoulder Press", "Arnold Press",
		"Lateral Raises", "Front Raises", "Rear Delt Flyes", "Upright Rows",
		"Face Pulls", "Cable Lateral Raises", "Shoulder Shrugs", "Behind-Neck Press",
		"Bradford Press", "Bus Drivers", "Plate Raises", "Band Pull-Aparts",
		"High Pulls", "Cuban Press", "Y-Raises",
	},
	"arms": {
		"Barbell Curls", "Dumbbell Curls", "Hammer Curls", "Preacher Curls",
		"Cable Curls", "Close-Grip Bench Press", "Tricep Dips", "Overhead Extension",
		"Tricep Pushdowns", "Diamond Push-ups", "Concentration Curls", "21s",
		"Spider Curls", "Drag Curls", "Skull Crushers", "Kickbacks", "French Press",
		"Cable Hammer Curls",
	},
	"core": {
		"Plank", "Side Plank", "Russian Twists", "Leg Raises", "Bicycle Crunches",
		"Ab Wheel", "Mountain Climbers", "Dead Bug", "Bird Dog", "Pallof Press",
		"Hanging Leg Raises", "L-Sits", "Dragon Flags", "Hollow Body Hold",
		"V-Ups", "Cable Crunches", "Wood Chops", "Farmers Walk",
	},
}
