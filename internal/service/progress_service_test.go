package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"learntrack_backend/internal/model"
	"learntrack_backend/internal/repository"
)

func newProgressService(db *gorm.DB) *ProgressService {
	return NewProgressService(
		repository.NewProgressRepository(db),
		repository.NewStreakRepository(db),
		repository.NewTopicRepository(db),
		repository.NewCourseRepository(db),
		newGamification(db),
	)
}

func TestMarkTopicCompleteUpserts(t *testing.T) {
	db := newTestDB(t)
	s := newProgressService(db)
	course := createCourse(t, db, "Go")
	topic := createTopic(t, db, course.ID, "Basics", 1)

	progress, err := s.MarkTopicComplete(1, topic.ID, true)
	require.NoError(t, err)
	assert.True(t, progress.IsCompleted)
	require.NotNil(t, progress.CompletedAt)

	// Marking again flips the flag on the same row.
	progress, err = s.MarkTopicComplete(1, topic.ID, false)
	require.NoError(t, err)
	assert.False(t, progress.IsCompleted)
	assert.Nil(t, progress.CompletedAt)

	var count int64
	require.NoError(t, db.Model(&model.UserProgress{}).Where("user_id = ?", 1).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestMarkTopicCompleteUnknownTopic(t *testing.T) {
	db := newTestDB(t)
	s := newProgressService(db)

	_, err := s.MarkTopicComplete(1, 999, true)
	assert.Error(t, err)
}

func TestStreakFirstCompletion(t *testing.T) {
	db := newTestDB(t)
	s := newProgressService(db)

	streak, err := s.UpdateStreak(7)
	require.NoError(t, err)
	assert.Equal(t, 1, streak.CurrentStreak)
}

func TestStreakSameDayIsNoOp(t *testing.T) {
	db := newTestDB(t)
	s := newProgressService(db)

	_, err := s.UpdateStreak(7)
	require.NoError(t, err)
	streak, err := s.UpdateStreak(7)
	require.NoError(t, err)
	assert.Equal(t, 1, streak.CurrentStreak)
}

func setLastActive(t *testing.T, db *gorm.DB, userID uint, when time.Time) {
	t.Helper()
	require.NoError(t, db.Model(&model.UserStreak{}).
		Where("user_id = ?", userID).
		Update("last_active", when).Error)
}

func TestStreakConsecutiveDayIncrements(t *testing.T) {
	db := newTestDB(t)
	s := newProgressService(db)

	_, err := s.UpdateStreak(7)
	require.NoError(t, err)
	setLastActive(t, db, 7, time.Now().AddDate(0, 0, -1))

	streak, err := s.UpdateStreak(7)
	require.NoError(t, err)
	assert.Equal(t, 2, streak.CurrentStreak)
}

func TestStreakGapResets(t *testing.T) {
	db := newTestDB(t)
	s := newProgressService(db)

	_, err := s.UpdateStreak(7)
	require.NoError(t, err)
	setLastActive(t, db, 7, time.Now().AddDate(0, 0, -1))
	streak, err := s.UpdateStreak(7)
	require.NoError(t, err)
	require.Equal(t, 2, streak.CurrentStreak)

	setLastActive(t, db, 7, time.Now().AddDate(0, 0, -3))
	streak, err = s.UpdateStreak(7)
	require.NoError(t, err)
	assert.Equal(t, 1, streak.CurrentStreak)
}

func TestGetStreakDefaultsToZero(t *testing.T) {
	db := newTestDB(t)
	s := newProgressService(db)

	streak, err := s.GetStreak(42)
	require.NoError(t, err)
	assert.Equal(t, 0, streak.CurrentStreak)
}

func TestDaysBetween(t *testing.T) {
	loc := time.Local
	morning := time.Date(2026, 3, 10, 0, 5, 0, 0, loc)
	night := time.Date(2026, 3, 10, 23, 55, 0, 0, loc)
	nextDay := time.Date(2026, 3, 11, 0, 5, 0, 0, loc)

	// Calendar days, not 24-hour windows.
	assert.Equal(t, 0, daysBetween(morning, night))
	assert.Equal(t, 1, daysBetween(night, nextDay))
	assert.Equal(t, 3, daysBetween(morning, morning.AddDate(0, 0, 3)))
}

func TestGetInProgressCourses(t *testing.T) {
	db := newTestDB(t)
	s := newProgressService(db)
	course := createCourse(t, db, "Go")
	t1 := createTopic(t, db, course.ID, "Basics", 1)
	createTopic(t, db, course.ID, "Structs", 2)
	createTopic(t, db, course.ID, "Interfaces", 3)
	untouched := createCourse(t, db, "Rust")
	createTopic(t, db, untouched.ID, "Ownership", 1)

	_, err := s.MarkTopicComplete(1, t1.ID, true)
	require.NoError(t, err)

	courses, err := s.GetInProgressCourses(1)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, course.ID, courses[0].Course.ID)
	assert.Equal(t, 1, courses[0].CompletedTopics)
	assert.Equal(t, 3, courses[0].TotalTopics)
	assert.Equal(t, 33, courses[0].Percentage)
}

func TestCompletionUnlocksTopicAchievement(t *testing.T) {
	db := newTestDB(t)
	s := newProgressService(db)
	course := createCourse(t, db, "Go")
	topic := createTopic(t, db, course.ID, "Basics", 1)

	achievement := &model.Achievement{
		Title:     "First Steps",
		Type:      model.AchievementTopicCompletion,
		Threshold: 1,
		Points:    50,
	}
	require.NoError(t, db.Create(achievement).Error)

	_, err := s.MarkTopicComplete(1, topic.ID, true)
	require.NoError(t, err)

	var unlocked int64
	require.NoError(t, db.Model(&model.UserAchievement{}).
		Where("user_id = ? AND achievement_id = ?", 1, achievement.ID).
		Count(&unlocked).Error)
	assert.Equal(t, int64(1), unlocked)

	points, err := s.Gamification.GetUserPoints(1)
	require.NoError(t, err)
	assert.Equal(t, 50, points.Points)
}

func TestCompletionUnlocksCourseAchievement(t *testing.T) {
	db := newTestDB(t)
	s := newProgressService(db)
	course := createCourse(t, db, "Go")
	t1 := createTopic(t, db, course.ID, "Basics", 1)
	t2 := createTopic(t, db, course.ID, "Structs", 2)

	achievement := &model.Achievement{
		Title:     "Course Champion",
		Type:      model.AchievementCourseCompletion,
		Threshold: 1,
		Points:    300,
	}
	require.NoError(t, db.Create(achievement).Error)

	countUnlocked := func() int64 {
		var n int64
		require.NoError(t, db.Model(&model.UserAchievement{}).
			Where("user_id = ? AND achievement_id = ?", 1, achievement.ID).
			Count(&n).Error)
		return n
	}

	// Half the course done: no unlock yet.
	_, err := s.MarkTopicComplete(1, t1.ID, true)
	require.NoError(t, err)
	assert.Equal(t, int64(0), countUnlocked())

	_, err = s.MarkTopicComplete(1, t2.ID, true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), countUnlocked())

	// Re-completing a topic of a finished course must not unlock twice.
	_, err = s.MarkTopicComplete(1, t2.ID, true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), countUnlocked())
}
