package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"skillpath_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Validates(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestQuestionBank_KnownTopic(t *testing.T) {
	c := Default()
	bank := c.QuestionBank("javascript")
	require.Len(t, bank, 3)
	assert.Equal(t, "Scope and hoisting", bank[0].CorrectAnswer)
}

func TestQuestionBank_DefaultSubstitutesTopic(t *testing.T) {
	c := Default()
	bank := c.QuestionBank("elixir")
	require.Len(t, bank, 3)
	assert.Equal(t, "What is the basic concept of elixir?", bank[0].Text)
	assert.Equal(t, model.DifficultyHard, bank[2].Difficulty)

	// the shared default table is not rewritten
	assert.Contains(t, c.DefaultBank[0].Text, TopicPlaceholder)
}

func TestSkill_CaseInsensitive(t *testing.T) {
	c := Default()
	info, ok := c.Skill("TypeScript")
	require.True(t, ok)
	assert.Equal(t, TrackFrontend, info.Track)

	_, ok = c.Skill("cobol")
	assert.False(t, ok)
}

func TestSchedule_FallsBackToBeginner(t *testing.T) {
	c := Default()
	assert.Equal(t, 10, c.Schedule("advanced").HoursPerWeek)
	assert.Equal(t, 20, c.Schedule("wizard").HoursPerWeek)
}

func TestTotalRoles(t *testing.T) {
	assert.Equal(t, 68, Default().TotalRoles())
}

func writeCatalog(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_EmptyPathReturnsDefault(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Len(t, c.Paths, 5)
}

func TestLoad_OverridesTables(t *testing.T) {
	path := writeCatalog(t, `
paths:
  go-developer:
    skills: [go, docker]
    tracks: [3, 5]
    duration: 6-8 weeks
    level: intermediate
question_banks:
  go:
    - text: What does defer do?
      type: multiple-choice
      options: [Delays execution until return, Starts a goroutine]
      correct_answer: Delays execution until return
      difficulty: easy
`)

	c, err := Load(path)
	require.NoError(t, err)

	p, ok := c.Path("go-developer")
	require.True(t, ok)
	assert.Equal(t, []string{"go", "docker"}, p.Skills)
	assert.Equal(t, []model.Track{TrackLanguages, TrackCloud}, p.Tracks)

	_, ok = c.Path("full-stack")
	assert.False(t, ok, "paths table is replaced, not merged")

	bank := c.QuestionBank("go")
	require.Len(t, bank, 1)
	assert.Equal(t, model.DifficultyEasy, bank[0].Difficulty)

	// untouched tables keep their defaults
	assert.Len(t, c.Agents, 7)
}

func TestLoad_RejectsUnknownTrack(t *testing.T) {
	path := writeCatalog(t, `
paths:
  broken:
    skills: [go]
    tracks: [42]
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown track")
}

func TestLoad_RejectsInvalidDifficulty(t *testing.T) {
	path := writeCatalog(t, `
question_banks:
  go:
    - text: Q
      type: short-answer
      correct_answer: A
      difficulty: impossible
`)

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
