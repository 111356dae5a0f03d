package model

import (
	"fmt"
	"time"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty accepts only the three known difficulty names.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch d := Difficulty(s); d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return d, true
	default:
		return "", false
	}
}

// TimeLimit returns the time allowed for an assessment, in minutes.
func (d Difficulty) TimeLimit() int {
	switch d {
	case DifficultyEasy:
		return 15
	case DifficultyMedium:
		return 30
	case DifficultyHard:
		return 45
	default:
		panic(fmt.Sprintf("model: unknown difficulty %q", string(d)))
	}
}

type QuestionType string

const (
	QuestionMultipleChoice QuestionType = "multiple-choice"
	QuestionShortAnswer    QuestionType = "short-answer"
)

type Question struct {
	ID            string       `json:"id"`
	Text          string       `json:"text"`
	Type          QuestionType `json:"type"`
	Options       []string     `json:"options"`
	CorrectAnswer string       `json:"correctAnswer"`
}

type Assessment struct {
	ID         string     `json:"id"`
	Topic      string     `json:"topic"`
	Difficulty Difficulty `json:"difficulty"`
	Questions  []Question `json:"questions"`
	CreatedAt  time.Time  `json:"createdAt"`
	TimeLimit  int        `json:"timeLimit"` // Minutes
}

// QuestionKey is the positional answer key for the i-th (zero based) question.
func QuestionKey(i int) string {
	return fmt.Sprintf("q%d", i+1)
}

type QuestionDetail struct {
	QuestionID    string `json:"questionId"`
	UserAnswer    string `json:"userAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
	IsCorrect     bool   `json:"isCorrect"`
}

type EvaluationResult struct {
	AssessmentID   string           `json:"assessmentId"`
	Topic          string           `json:"topic"`
	Score          int              `json:"score"`
	Passed         bool             `json:"passed"`
	CorrectCount   int              `json:"correctCount"`
	TotalQuestions int              `json:"totalQuestions"`
	Details        []QuestionDetail `json:"details"`
	CompletedAt    time.Time        `json:"completedAt"`
	NextSteps      []string         `json:"nextSteps"`
}
