package service

import (
	"testing"

	"skillpath_backend/internal/catalog"
	"skillpath_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchToTrack(t *testing.T) {
	s := NewSkillService(catalog.Default())

	tests := []struct {
		name   string
		skills []string
		want   model.Track
		ok     bool
	}{
		{"frontend", []string{"javascript", "react", "typescript"}, catalog.TrackFrontend, true},
		{"case insensitive", []string{"Docker", "KUBERNETES"}, catalog.TrackCloud, true},
		{"majority", []string{"python", "aws", "docker"}, catalog.TrackCloud, true},
		{"tie goes to first seen", []string{"sql", "go"}, catalog.TrackDatabases, true},
		{"tie goes to first seen reversed", []string{"go", "sql"}, catalog.TrackLanguages, true},
		{"unknown skipped", []string{"cobol", "flutter"}, catalog.TrackMobile, true},
		{"no match", []string{"cobol", "fortran"}, 0, false},
		{"empty", nil, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := s.MatchToTrack(tc.skills)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRecommendPath_FullStack(t *testing.T) {
	s := NewSkillService(catalog.Default())

	rec, ok := s.RecommendPath("full-stack", []string{"javascript", "react"})
	require.True(t, ok)
	assert.Equal(t, []string{"javascript", "react", "nodejs", "databases"}, rec.RequiredSkills)
	assert.Equal(t, []string{"nodejs", "databases"}, rec.SkillGaps)
	assert.Equal(t, 50, rec.CompletionPercent)
	assert.Equal(t, []model.Track{catalog.TrackFrontend, catalog.TrackBackend}, rec.Tracks)
	assert.Empty(t, rec.Resources)

	require.Len(t, rec.NextSteps, 2)
	assert.Equal(t, 1, rec.NextSteps[0].Step)
	assert.Equal(t, "nodejs", rec.NextSteps[0].Skill)
	assert.Equal(t, "5-7 days", rec.NextSteps[0].EstimatedTime)
	assert.Equal(t, "Learn databases fundamentals", rec.NextSteps[1].Activities[0])
}

func TestRecommendPath_CaseSensitiveGaps(t *testing.T) {
	s := NewSkillService(catalog.Default())

	rec, ok := s.RecommendPath("devops-engineer", []string{"Docker", "kubernetes", "aws"})
	require.True(t, ok)
	assert.Equal(t, []string{"docker", "system-design"}, rec.SkillGaps)
	assert.Equal(t, 50, rec.CompletionPercent)
	assert.Len(t, rec.Resources, 3)
}

func TestRecommendPath_Complete(t *testing.T) {
	s := NewSkillService(catalog.Default())

	rec, ok := s.RecommendPath("ml-engineer", []string{"python", "machine-learning", "data-science", "mlops", "go"})
	require.True(t, ok)
	assert.Empty(t, rec.SkillGaps)
	assert.NotNil(t, rec.SkillGaps)
	assert.Equal(t, 100, rec.CompletionPercent)
	assert.Empty(t, rec.NextSteps)
}

func TestRecommendPath_UnknownGoal(t *testing.T) {
	rec, ok := NewSkillService(catalog.Default()).RecommendPath("astronaut", nil)
	assert.False(t, ok)
	assert.Nil(t, rec)
}

func TestSuggestCareerPaths(t *testing.T) {
	s := NewSkillService(catalog.Default())

	frontend := s.SuggestCareerPaths([]string{"javascript", "react", "typescript"})
	require.Len(t, frontend, 2)
	assert.Equal(t, "frontend-specialist", frontend[0].Path)
	assert.Equal(t, "full-stack", frontend[1].Path)

	cloud := s.SuggestCareerPaths([]string{"docker"})
	require.Len(t, cloud, 1)
	assert.Equal(t, "devops-engineer", cloud[0].Path)

	assert.Empty(t, s.SuggestCareerPaths([]string{"python"}))
	assert.Empty(t, s.SuggestCareerPaths([]string{"cobol"}))
}
