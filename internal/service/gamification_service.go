package service

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"learntrack_backend/internal/model"
	"learntrack_backend/internal/repository"
	"learntrack_backend/internal/util"
	"learntrack_backend/pkg/logger"
)

// pointsPerLevel is the flat points-to-level ratio: level 1 starts at 0,
// level 2 at 100, and so on.
const pointsPerLevel = 100

type GamificationService struct {
	AchievementRepo *repository.AchievementRepository
	PointsRepo      *repository.PointsRepository
	UserRepo        *repository.UserRepository
}

func NewGamificationService(achievementRepo *repository.AchievementRepository, pointsRepo *repository.PointsRepository, userRepo *repository.UserRepository) *GamificationService {
	return &GamificationService{
		AchievementRepo: achievementRepo,
		PointsRepo:      pointsRepo,
		UserRepo:        userRepo,
	}
}

// GetUserPoints returns the user's points record, or a zero-points level-1
// view for users who have never earned anything. Nothing is persisted for
// the zero case.
func (s *GamificationService) GetUserPoints(userID uint) (*model.UserPoints, error) {
	points, err := s.PointsRepo.FindByUser(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &model.UserPoints{UserID: userID, Points: 0, Level: 1}, nil
	}
	if err != nil {
		return nil, err
	}
	return points, nil
}

// AddPoints credits the user and recomputes their level from the new total.
func (s *GamificationService) AddPoints(userID uint, delta int) (*model.UserPoints, error) {
	points, err := s.PointsRepo.FindByUser(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		points = &model.UserPoints{UserID: userID, Points: 0, Level: 1}
		if err := s.PointsRepo.Create(points); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	points.Points += delta
	points.Level = points.Points/pointsPerLevel + 1
	if err := s.PointsRepo.Update(points); err != nil {
		return nil, err
	}
	return points, nil
}

func (s *GamificationService) GetAchievements() ([]model.Achievement, error) {
	return s.AchievementRepo.FindAll()
}

// UnlockedAchievement pairs an achievement with the moment the user earned it.
type UnlockedAchievement struct {
	model.Achievement
	UnlockedAt time.Time `json:"unlockedAt"`
}

func (s *GamificationService) GetUserAchievements(userID uint) ([]UnlockedAchievement, error) {
	records, err := s.AchievementRepo.FindUserAchievements(userID)
	if err != nil {
		return nil, err
	}

	unlocked := make([]UnlockedAchievement, 0, len(records))
	for _, r := range records {
		achievement, err := s.AchievementRepo.FindByID(r.AchievementID)
		if err != nil {
			continue
		}
		unlocked = append(unlocked, UnlockedAchievement{Achievement: *achievement, UnlockedAt: r.UnlockedAt})
	}
	return unlocked, nil
}

// UnlockAchievement grants an achievement to a user exactly once. A repeat
// unlock returns the existing record and awards no points.
func (s *GamificationService) UnlockAchievement(userID, achievementID uint) (*model.UserAchievement, error) {
	achievement, err := s.AchievementRepo.FindByID(achievementID)
	if err != nil {
		return nil, util.ErrAchievementNotFound
	}

	existing, err := s.AchievementRepo.FindUserAchievement(userID, achievementID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	record := &model.UserAchievement{
		UserID:        userID,
		AchievementID: achievementID,
		UnlockedAt:    time.Now(),
	}
	if err := s.AchievementRepo.CreateUserAchievement(record); err != nil {
		return nil, err
	}
	if _, err := s.AddPoints(userID, achievement.Points); err != nil {
		return nil, err
	}
	logger.Log.Info("achievement unlocked",
		zap.Uint("userId", userID),
		zap.String("achievement", achievement.Title))
	return record, nil
}

// checkThreshold unlocks every achievement of the given type whose threshold
// the metric has reached. Unlock failures are logged rather than propagated:
// the triggering operation already succeeded.
func (s *GamificationService) checkThreshold(userID uint, achievementType model.AchievementType, metric int) {
	achievements, err := s.AchievementRepo.FindByType(achievementType)
	if err != nil {
		logger.Log.Error("failed to load achievements for check",
			zap.String("type", string(achievementType)), zap.Error(err))
		return
	}
	for _, a := range achievements {
		if metric >= a.Threshold {
			if _, err := s.UnlockAchievement(userID, a.ID); err != nil {
				logger.Log.Error("failed to unlock achievement",
					zap.Uint("userId", userID),
					zap.Uint("achievementId", a.ID),
					zap.Error(err))
			}
		}
	}
}

// CheckStreakAchievements runs after a streak update.
func (s *GamificationService) CheckStreakAchievements(userID uint, currentStreak int) {
	s.checkThreshold(userID, model.AchievementStreak, currentStreak)
}

// CheckTopicAchievements runs after a topic completion with the user's
// lifetime completed-topic count.
func (s *GamificationService) CheckTopicAchievements(userID uint, completedTopics int) {
	s.checkThreshold(userID, model.AchievementTopicCompletion, completedTopics)
}

// CheckCourseAchievements runs when a completion brings a course to 100%.
func (s *GamificationService) CheckCourseAchievements(userID uint, completedCourses int) {
	s.checkThreshold(userID, model.AchievementCourseCompletion, completedCourses)
}

// CheckQuizAchievements runs after a recorded attempt. perfectCount and
// attemptCount are the user's lifetime tallies including the new attempt.
func (s *GamificationService) CheckQuizAchievements(userID uint, perfectCount, attemptCount int) {
	if perfectCount > 0 {
		s.checkThreshold(userID, model.AchievementPerfectScore, perfectCount)
	}
	s.checkThreshold(userID, model.AchievementQuizMastery, attemptCount)
}

// LeaderboardEntry is one row of the points leaderboard.
type LeaderboardEntry struct {
	UserID uint   `json:"userId"`
	Name   string `json:"name"`
	Points int    `json:"points"`
	Level  int    `json:"level"`
}

func (s *GamificationService) GetLeaderboard(limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	top, err := s.PointsRepo.FindTopByPoints(limit)
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(top))
	for _, p := range top {
		name := ""
		if user, err := s.UserRepo.FindByID(p.UserID); err == nil {
			name = user.Name
		}
		entries = append(entries, LeaderboardEntry{
			UserID: p.UserID,
			Name:   name,
			Points: p.Points,
			Level:  p.Level,
		})
	}
	return entries, nil
}
