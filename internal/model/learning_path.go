package model

// Track identifies a specialist grouping such as Frontend or Backend.
type Track int

type Agent struct {
	ID   Track  `json:"id" mapstructure:"id" validate:"required,min=1"`
	Name string `json:"name" mapstructure:"name" validate:"required"`
}

type SkillInfo struct {
	Track    Track  `json:"track" mapstructure:"track" validate:"required,min=1"`
	Category string `json:"category" mapstructure:"category" validate:"required"`
}

type LearningPath struct {
	Skills   []string `json:"skills" mapstructure:"skills" validate:"required,min=1,dive,required"`
	Tracks   []Track  `json:"tracks" mapstructure:"tracks" validate:"required,min=1"`
	Duration string   `json:"duration" mapstructure:"duration"`
	Level    Level    `json:"level" mapstructure:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
}

type Resource struct {
	Title string `json:"title" mapstructure:"title" validate:"required"`
	URL   string `json:"url" mapstructure:"url" validate:"required,url"`
}

type NextStep struct {
	Step          int      `json:"step"`
	Skill         string   `json:"skill"`
	EstimatedTime string   `json:"estimatedTime"`
	Activities    []string `json:"activities"`
}

type Recommendation struct {
	Goal              string     `json:"goal"`
	Tracks            []Track    `json:"tracks"`
	Duration          string     `json:"duration"`
	Level             Level      `json:"level"`
	RequiredSkills    []string   `json:"requiredSkills"`
	SkillGaps         []string   `json:"skillGaps"`
	CompletionPercent int        `json:"completionPercent"`
	NextSteps         []NextStep `json:"nextSteps"`
	Resources         []Resource `json:"resources"`
}

type CareerSuggestion struct {
	Path       string `json:"path"`
	Difficulty Level  `json:"difficulty"`
	TimeToNext string `json:"timeToNext"`
}
