package service

import (
	"strconv"
	"strings"
	"time"

	"skillpath_backend/internal/catalog"
	"skillpath_backend/internal/model"
	"skillpath_backend/internal/repository"
	"skillpath_backend/internal/util"
	"skillpath_backend/pkg/logger"
	"skillpath_backend/pkg/monitoring"

	"go.uber.org/zap"
)

const DefaultQuestionCount = 10

type AssessmentService struct {
	Repo    *repository.AssessmentRepository
	Catalog *catalog.Catalog
}

func NewAssessmentService(repo *repository.AssessmentRepository, cat *catalog.Catalog) *AssessmentService {
	return &AssessmentService{Repo: repo, Catalog: cat}
}

// Generate builds an assessment from the topic's question bank. An empty
// difficulty means medium and a non-positive count means DefaultQuestionCount.
func (s *AssessmentService) Generate(topic, difficulty string, count int) (*model.Assessment, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, util.ErrMissingTopic
	}

	if difficulty == "" {
		difficulty = string(model.DifficultyMedium)
	}
	d, ok := model.ParseDifficulty(difficulty)
	if !ok {
		return nil, util.ErrInvalidDifficulty
	}

	if count <= 0 {
		count = DefaultQuestionCount
	}

	a := &model.Assessment{
		ID:         "assessment_" + model.GenerateUUID(),
		Topic:      topic,
		Difficulty: d,
		Questions:  s.pickQuestions(topic, d, count),
		CreatedAt:  time.Now(),
		TimeLimit:  d.TimeLimit(),
	}
	s.Repo.Create(a)

	monitoring.AssessmentsGenerated.WithLabelValues(string(d)).Inc()
	logger.Log.Info("assessment generated",
		zap.String("assessment_id", a.ID),
		zap.String("topic", topic),
		zap.String("difficulty", string(d)),
		zap.Int("questions", len(a.Questions)))

	return a, nil
}

func (s *AssessmentService) pickQuestions(topic string, d model.Difficulty, count int) []model.Question {
	bank := s.Catalog.QuestionBank(topic)
	questions := make([]model.Question, 0, min(count, len(bank)))
	for _, e := range bank {
		if len(questions) == count {
			break
		}
		if e.Difficulty != d {
			continue
		}
		questions = append(questions, model.Question{
			ID:            model.QuestionKey(len(questions)),
			Text:          e.Text,
			Type:          e.Type,
			Options:       append([]string{}, e.Options...),
			CorrectAnswer: e.CorrectAnswer,
		})
	}
	return questions
}

func (s *AssessmentService) Get(id string) (*model.Assessment, error) {
	return s.Repo.FindByID(id)
}

// Evaluate scores answers keyed by question position ("q1", "q2", ...).
// Answers must match the correct answer exactly.
func (s *AssessmentService) Evaluate(id string, answers map[string]string) (*model.EvaluationResult, error) {
	a, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	correct := 0
	details := make([]model.QuestionDetail, len(a.Questions))
	for i, q := range a.Questions {
		answer := answers[model.QuestionKey(i)]
		isCorrect := answer == q.CorrectAnswer
		if isCorrect {
			correct++
		}
		details[i] = model.QuestionDetail{
			QuestionID:    q.ID,
			UserAnswer:    answer,
			CorrectAnswer: q.CorrectAnswer,
			IsCorrect:     isCorrect,
		}
	}

	score := util.Percent(correct, len(a.Questions))
	passed := score >= model.PassingScore

	res := &model.EvaluationResult{
		AssessmentID:   a.ID,
		Topic:          a.Topic,
		Score:          score,
		Passed:         passed,
		CorrectCount:   correct,
		TotalQuestions: len(a.Questions),
		Details:        details,
		CompletedAt:    time.Now(),
		NextSteps:      NextSteps(a.Topic, score),
	}
	s.Repo.SaveResult(res)

	monitoring.AssessmentsEvaluated.WithLabelValues(strconv.FormatBool(passed)).Inc()
	logger.Log.Info("assessment evaluated",
		zap.String("assessment_id", a.ID),
		zap.Int("score", score),
		zap.Bool("passed", passed))

	return res, nil
}

func (s *AssessmentService) GetResult(id string) (*model.EvaluationResult, error) {
	if _, err := s.Repo.FindByID(id); err != nil {
		return nil, err
	}
	return s.Repo.FindResult(id)
}

// NextSteps returns remediation guidance for a score. The bands are
// [0,50), [50,75), [75,90) and [90,100].
func NextSteps(topic string, score int) []string {
	switch {
	case score < 50:
		return []string{
			"Review fundamentals of " + topic,
			"Take beginner-level practice questions",
			"Watch tutorial videos on core concepts",
			"Re-take assessment after revision",
		}
	case score < model.PassingScore:
		return []string{
			"Focus on weak areas in " + topic,
			"Practice with intermediate exercises",
			"Review best practices",
			"Re-take assessment",
		}
	case score >= model.MasteryScore:
		return []string{
			"Congratulations! Master level achieved",
			"Explore advanced topics in " + topic,
			"Consider mentoring others",
			"Move to next specialization",
		}
	default:
		return []string{
			"Good progress! Continue learning",
			"Explore advanced concepts in " + topic,
			"Work on real-world projects",
			"Consider next skill area",
		}
	}
}
