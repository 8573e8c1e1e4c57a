package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"learntrack_backend/internal/model"
	"learntrack_backend/internal/repository"
	"learntrack_backend/pkg/logger"
)

func init() {
	logger.Log = zap.NewNop()
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Course{},
		&model.Topic{},
		&model.Resource{},
		&model.CommunityNote{},
		&model.NoteVote{},
		&model.UserProgress{},
		&model.UserStreak{},
		&model.PomodoroSession{},
		&model.Task{},
		&model.Quiz{},
		&model.QuizQuestion{},
		&model.UserQuizAttempt{},
		&model.UserQuizAnswer{},
		&model.Achievement{},
		&model.UserAchievement{},
		&model.UserPoints{},
	))
	return db
}

func newGamification(db *gorm.DB) *GamificationService {
	return NewGamificationService(
		repository.NewAchievementRepository(db),
		repository.NewPointsRepository(db),
		repository.NewUserRepository(db),
	)
}

func createCourse(t *testing.T, db *gorm.DB, title string) *model.Course {
	t.Helper()
	course := &model.Course{Title: title}
	require.NoError(t, db.Create(course).Error)
	return course
}

func createTopic(t *testing.T, db *gorm.DB, courseID uint, title string, order int, prereqs ...uint) *model.Topic {
	t.Helper()
	topic := &model.Topic{
		CourseID:      courseID,
		Title:         title,
		Order:         order,
		Prerequisites: prereqs,
	}
	require.NoError(t, db.Create(topic).Error)
	return topic
}
