package service

import (
	"fmt"
	"math"
	"testing"

	"skillpath_backend/internal/catalog"
	"skillpath_backend/internal/model"
	"skillpath_backend/internal/repository"
	"skillpath_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAssessmentService() *AssessmentService {
	return NewAssessmentService(repository.NewAssessmentRepository(), catalog.Default())
}

func TestGenerate_TimeLimitByDifficulty(t *testing.T) {
	s := newAssessmentService()

	tests := []struct {
		difficulty string
		want       int
	}{
		{"easy", 15},
		{"medium", 30},
		{"hard", 45},
		{"", 30},
	}

	for _, tc := range tests {
		a, err := s.Generate("rust", tc.difficulty, 5)
		require.NoError(t, err, tc.difficulty)
		assert.Equal(t, tc.want, a.TimeLimit, "difficulty %q", tc.difficulty)
	}
}

func TestGenerate_RejectsUnknownDifficulty(t *testing.T) {
	s := newAssessmentService()

	for _, d := range []string{"Easy", "expert", "MEDIUM"} {
		_, err := s.Generate("javascript", d, 3)
		require.ErrorIs(t, err, util.ErrInvalidInput, d)
	}
	assert.Equal(t, 0, s.Repo.Count())
}

func TestGenerate_RejectsEmptyTopic(t *testing.T) {
	_, err := newAssessmentService().Generate("  ", "easy", 3)
	require.ErrorIs(t, err, util.ErrMissingTopic)
}

func TestGenerate_QuestionCountBounded(t *testing.T) {
	s := newAssessmentService()

	a, err := s.Generate("javascript", "medium", 2)
	require.NoError(t, err)
	assert.Len(t, a.Questions, 2)

	a, err = s.Generate("javascript", "medium", 10)
	require.NoError(t, err)
	assert.Len(t, a.Questions, 3)

	a, err = s.Generate("javascript", "medium", 1<<40)
	require.NoError(t, err)
	assert.Len(t, a.Questions, 3)

	a, err = s.Generate("react", "hard", 10)
	require.NoError(t, err)
	assert.Empty(t, a.Questions)

	a, err = s.Generate("kotlin", "hard", 0)
	require.NoError(t, err)
	require.Len(t, a.Questions, 1)
	assert.Equal(t, "Expert level question about kotlin?", a.Questions[0].Text)
	assert.Equal(t, model.QuestionShortAnswer, a.Questions[0].Type)
	assert.NotNil(t, a.Questions[0].Options)
}

func TestGenerate_PositionalIDs(t *testing.T) {
	a, err := newAssessmentService().Generate("javascript", "medium", 3)
	require.NoError(t, err)
	for i, q := range a.Questions {
		assert.Equal(t, fmt.Sprintf("q%d", i+1), q.ID)
	}
}

func TestEvaluate_JavascriptScenario(t *testing.T) {
	s := newAssessmentService()
	a, err := s.Generate("javascript", "medium", 3)
	require.NoError(t, err)

	res, err := s.Evaluate(a.ID, map[string]string{
		"q1": "Scope and hoisting",
		"q2": "A function that has access to variables from its outer scope",
		"q3": "Asynchronous operations",
	})
	require.NoError(t, err)
	assert.Equal(t, 100, res.Score)
	assert.True(t, res.Passed)
	assert.Equal(t, 3, res.CorrectCount)
	assert.Equal(t, 3, res.TotalQuestions)
	assert.Equal(t, "Congratulations! Master level achieved", res.NextSteps[0])

	stored, err := s.GetResult(a.ID)
	require.NoError(t, err)
	assert.Same(t, res, stored)
}

func TestEvaluate_ExactMatchOnly(t *testing.T) {
	s := newAssessmentService()
	a, err := s.Generate("javascript", "medium", 3)
	require.NoError(t, err)

	res, err := s.Evaluate(a.ID, map[string]string{
		"q1": "scope and hoisting",
		"q2": "A function that has access to variables from its outer scope ",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, res.CorrectCount)
	assert.Equal(t, 0, res.Score)
	assert.False(t, res.Passed)
	assert.Equal(t, "", res.Details[2].UserAnswer)
	assert.Equal(t, "Review fundamentals of javascript", res.NextSteps[0])
}

func TestEvaluate_ReplacesPreviousResult(t *testing.T) {
	s := newAssessmentService()
	a, err := s.Generate("javascript", "medium", 3)
	require.NoError(t, err)

	_, err = s.Evaluate(a.ID, map[string]string{"q1": "Scope and hoisting"})
	require.NoError(t, err)
	_, err = s.Evaluate(a.ID, map[string]string{
		"q1": "Scope and hoisting",
		"q3": "Asynchronous operations",
	})
	require.NoError(t, err)

	res, err := s.GetResult(a.ID)
	require.NoError(t, err)
	assert.Equal(t, 67, res.Score)
	assert.False(t, res.Passed)
	assert.Equal(t, "Focus on weak areas in javascript", res.NextSteps[0])
}

func TestEvaluate_UnknownAssessment(t *testing.T) {
	_, err := newAssessmentService().Evaluate("nope", nil)
	require.ErrorIs(t, err, util.ErrAssessmentNotFound)
	require.ErrorIs(t, err, util.ErrNotFound)
}

func TestEvaluate_NoQuestionsScoresZero(t *testing.T) {
	s := newAssessmentService()
	a, err := s.Generate("react", "hard", 5)
	require.NoError(t, err)

	res, err := s.Evaluate(a.ID, map[string]string{"q1": "anything"})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Score)
	assert.Equal(t, 0, res.TotalQuestions)
	assert.False(t, res.Passed)
}

func TestGetResult_NotEvaluated(t *testing.T) {
	s := newAssessmentService()
	a, err := s.Generate("sql", "easy", 1)
	require.NoError(t, err)

	_, err = s.GetResult(a.ID)
	require.ErrorIs(t, err, util.ErrResultNotFound)

	_, err = s.GetResult("missing")
	require.ErrorIs(t, err, util.ErrAssessmentNotFound)
}

func TestScoreFormula(t *testing.T) {
	for n := 1; n <= 12; n++ {
		for c := 0; c <= n; c++ {
			want := int(math.Round(100 * float64(c) / float64(n)))
			got := util.Percent(c, n)
			assert.Equal(t, want, got, "%d/%d", c, n)
			assert.True(t, got >= 0 && got <= 100)
		}
	}
	assert.Equal(t, 67, util.Percent(2, 3))
	assert.Equal(t, 33, util.Percent(1, 3))
	assert.Equal(t, 13, util.Percent(1, 8))
	assert.Equal(t, 75, util.Percent(3, 4))
}

func TestNextSteps_Bands(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, "Review fundamentals of go"},
		{49, "Review fundamentals of go"},
		{50, "Focus on weak areas in go"},
		{74, "Focus on weak areas in go"},
		{75, "Good progress! Continue learning"},
		{89, "Good progress! Continue learning"},
		{90, "Congratulations! Master level achieved"},
		{100, "Congratulations! Master level achieved"},
	}

	for _, tc := range tests {
		steps := NextSteps("go", tc.score)
		require.Len(t, steps, 4)
		assert.Equal(t, tc.want, steps[0], "score %d", tc.score)
	}
}
