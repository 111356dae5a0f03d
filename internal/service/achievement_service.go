package service

import (
	"time"

	"skillpath_backend/internal/model"
	"skillpath_backend/internal/repository"
	"skillpath_backend/pkg/logger"
	"skillpath_backend/pkg/monitoring"

	"go.uber.org/zap"
)

type AchievementService struct {
	AchievementRepo *repository.AchievementRepository
	ProgressRepo    *repository.ProgressRepository
}

func NewAchievementService(
	achievementRepo *repository.AchievementRepository,
	progressRepo *repository.ProgressRepository,
) *AchievementService {
	return &AchievementService{
		AchievementRepo: achievementRepo,
		ProgressRepo:    progressRepo,
	}
}

// AwardBadge adds badgeID to the user's badges and unlocks the matching
// earned-badge achievement the first time. It reports whether the badge is
// new; unknown users are ignored.
func (s *AchievementService) AwardBadge(userID, badgeID, badgeName string) bool {
	added := false
	_, err := s.ProgressRepo.Update(userID, func(p *model.UserProgress) error {
		if !p.HasBadge(badgeID) {
			p.Badges = append(p.Badges, badgeID)
			added = true
		}
		return nil
	})
	if err != nil || !added {
		return false
	}

	logger.Log.Info("badge awarded", zap.String("user_id", userID), zap.String("badge_id", badgeID))
	s.TrackAchievement(userID, "earned-badge-"+badgeID, "Earned "+badgeName+" Badge")
	return true
}

// CheckMilestones unlocks the milestone whose threshold equals
// completedCount. Counts that skip past a threshold never unlock it.
func (s *AchievementService) CheckMilestones(userID string, completedCount int) {
	for _, m := range model.Milestones {
		if completedCount == m.Count {
			s.TrackAchievement(userID, m.AchievementID, m.Label)
		}
	}
}

// TrackAchievement records the achievement once per user and reports whether
// this call unlocked it.
func (s *AchievementService) TrackAchievement(userID, achievementID, label string) bool {
	unlocked := s.AchievementRepo.Add(userID, model.Achievement{
		ID:           achievementID,
		Label:        label,
		UnlockedDate: time.Now(),
	})
	if unlocked {
		monitoring.AchievementsUnlocked.Inc()
		logger.Log.Info("achievement unlocked",
			zap.String("user_id", userID),
			zap.String("achievement_id", achievementID))
	}
	return unlocked
}

func (s *AchievementService) GetUserAchievements(userID string) []model.Achievement {
	return s.AchievementRepo.FindByUserID(userID)
}
