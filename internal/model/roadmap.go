package model

type RoleGroup struct {
	Name  string   `json:"name" mapstructure:"name" validate:"required"`
	Roles []string `json:"roles" mapstructure:"roles" validate:"required,min=1,dive,required"`
}

type RoadmapPhase struct {
	Phase    int      `json:"phase" mapstructure:"phase"`
	Name     string   `json:"name" mapstructure:"name" validate:"required"`
	Duration string   `json:"duration" mapstructure:"duration"`
	Topics   []string `json:"topics" mapstructure:"topics"`
}

type Roadmap struct {
	Title      string         `json:"title"`
	Duration   string         `json:"duration"`
	Difficulty Level          `json:"difficulty"`
	Phases     []RoadmapPhase `json:"phases"`
	Resources  []string       `json:"resources"`
}

type WeeklySchedule struct {
	HoursPerWeek int      `json:"hoursPerWeek" mapstructure:"hours_per_week" validate:"required,min=1"`
	TotalWeeks   int      `json:"totalWeeks" mapstructure:"total_weeks" validate:"required,min=1"`
	FocusAreas   []string `json:"focusAreas" mapstructure:"focus_areas"`
}
