package service

import (
	"testing"

	"skillpath_backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAwardBadge_Idempotent(t *testing.T) {
	s := newProgressService()
	_, err := s.InitializeUser("u1", "react", "")
	require.NoError(t, err)

	assert.True(t, s.Achievements.AwardBadge("u1", "early-bird", "Early Bird"))
	assert.False(t, s.Achievements.AwardBadge("u1", "early-bird", "Early Bird"))

	p, err := s.GetUserProgress("u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"early-bird"}, p.Badges)

	achievements := s.Achievements.GetUserAchievements("u1")
	require.Len(t, achievements, 1)
	assert.Equal(t, "earned-badge-early-bird", achievements[0].ID)
	assert.Equal(t, "Earned Early Bird Badge", achievements[0].Label)
}

func TestAwardBadge_UnknownUserIgnored(t *testing.T) {
	s := newProgressService()
	assert.False(t, s.Achievements.AwardBadge("ghost", "b", "B"))
	assert.Empty(t, s.Achievements.GetUserAchievements("ghost"))
}

func TestCheckMilestones_EqualityOnly(t *testing.T) {
	s := NewAchievementService(repository.NewAchievementRepository(), repository.NewProgressRepository())

	s.CheckMilestones("u1", 4)
	s.CheckMilestones("u1", 6)
	assert.Empty(t, s.GetUserAchievements("u1"), "skipping past 5 does not unlock it")

	s.CheckMilestones("u1", 10)
	s.CheckMilestones("u1", 10)
	got := s.GetUserAchievements("u1")
	require.Len(t, got, 1)
	assert.Equal(t, "milestone-10-topics", got[0].ID)
	assert.Equal(t, "Completed 10 Topics", got[0].Label)
}

func TestTrackAchievement_KeepsFirstUnlock(t *testing.T) {
	s := NewAchievementService(repository.NewAchievementRepository(), repository.NewProgressRepository())

	assert.True(t, s.TrackAchievement("u1", "first-login", "First Login"))
	first := s.GetUserAchievements("u1")[0]

	assert.False(t, s.TrackAchievement("u1", "first-login", "Renamed"))
	got := s.GetUserAchievements("u1")
	require.Len(t, got, 1)
	assert.Equal(t, first, got[0])
}

func TestGetUserAchievements_UnknownUser(t *testing.T) {
	s := NewAchievementService(repository.NewAchievementRepository(), repository.NewProgressRepository())
	got := s.GetUserAchievements("nobody")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
