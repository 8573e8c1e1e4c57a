package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learntrack_backend/internal/model"
)

func TestGetUserPointsDefault(t *testing.T) {
	db := newTestDB(t)
	s := newGamification(db)

	points, err := s.GetUserPoints(1)
	require.NoError(t, err)
	assert.Equal(t, 0, points.Points)
	assert.Equal(t, 1, points.Level)

	// The default view is not persisted.
	var count int64
	require.NoError(t, db.Model(&model.UserPoints{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestAddPointsComputesLevel(t *testing.T) {
	db := newTestDB(t)
	s := newGamification(db)

	points, err := s.AddPoints(1, 250)
	require.NoError(t, err)
	assert.Equal(t, 250, points.Points)
	assert.Equal(t, 3, points.Level)

	points, err = s.AddPoints(1, 60)
	require.NoError(t, err)
	assert.Equal(t, 310, points.Points)
	assert.Equal(t, 4, points.Level)
}

func TestUnlockAchievementIdempotent(t *testing.T) {
	db := newTestDB(t)
	s := newGamification(db)

	achievement := &model.Achievement{
		Title:     "Streak Master",
		Type:      model.AchievementStreak,
		Threshold: 7,
		Points:    100,
	}
	require.NoError(t, db.Create(achievement).Error)

	first, err := s.UnlockAchievement(1, achievement.ID)
	require.NoError(t, err)

	second, err := s.UnlockAchievement(1, achievement.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	// Points were awarded exactly once.
	points, err := s.GetUserPoints(1)
	require.NoError(t, err)
	assert.Equal(t, 100, points.Points)

	var count int64
	require.NoError(t, db.Model(&model.UserAchievement{}).Where("user_id = ?", 1).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUnlockUnknownAchievement(t *testing.T) {
	db := newTestDB(t)
	s := newGamification(db)

	_, err := s.UnlockAchievement(1, 999)
	assert.Error(t, err)
}

func TestCheckStreakAchievementsBelowThreshold(t *testing.T) {
	db := newTestDB(t)
	s := newGamification(db)

	achievement := &model.Achievement{
		Title:     "Streak Master",
		Type:      model.AchievementStreak,
		Threshold: 7,
		Points:    100,
	}
	require.NoError(t, db.Create(achievement).Error)

	s.CheckStreakAchievements(1, 6)
	var count int64
	require.NoError(t, db.Model(&model.UserAchievement{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	s.CheckStreakAchievements(1, 7)
	require.NoError(t, db.Model(&model.UserAchievement{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGetLeaderboard(t *testing.T) {
	db := newTestDB(t)
	s := newGamification(db)

	alice := &model.User{Name: "Alice", Email: "alice@example.com"}
	bob := &model.User{Name: "Bob", Email: "bob@example.com"}
	require.NoError(t, db.Create(alice).Error)
	require.NoError(t, db.Create(bob).Error)

	_, err := s.AddPoints(alice.ID, 120)
	require.NoError(t, err)
	_, err = s.AddPoints(bob.ID, 300)
	require.NoError(t, err)

	entries, err := s.GetLeaderboard(10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Bob", entries[0].Name)
	assert.Equal(t, 300, entries[0].Points)
	assert.Equal(t, "Alice", entries[1].Name)
}
