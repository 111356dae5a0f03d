package model

import "time"

type Achievement struct {
	ID           string    `json:"id"`
	Label        string    `json:"label"`
	UnlockedDate time.Time `json:"unlockedDate"`
}

type Milestone struct {
	Count         int
	AchievementID string
	Label         string
}

// Milestones fire when the completed topic count equals Count exactly.
var Milestones = []Milestone{
	{Count: 5, AchievementID: "milestone-5-topics", Label: "Completed 5 Topics"},
	{Count: 10, AchievementID: "milestone-10-topics", Label: "Completed 10 Topics"},
	{Count: 20, AchievementID: "milestone-20-topics", Label: "Completed 20 Topics"},
	{Count: 50, AchievementID: "completed-path", Label: "Completed Full Path"},
}
