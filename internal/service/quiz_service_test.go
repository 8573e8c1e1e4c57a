package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"learntrack_backend/internal/model"
	"learntrack_backend/internal/repository"
)

func newQuizService(db *gorm.DB) *QuizService {
	return NewQuizService(
		repository.NewQuizRepository(db),
		repository.NewTopicRepository(db),
		newGamification(db),
	)
}

func TestGenerateQuizForTopic(t *testing.T) {
	db := newTestDB(t)
	s := newQuizService(db)
	course := createCourse(t, db, "Go")
	topic := createTopic(t, db, course.ID, "Goroutines", 1)

	result, err := s.GenerateQuizForTopic(topic.ID)
	require.NoError(t, err)

	assert.Equal(t, "Quiz on Goroutines", result.Quiz.Title)
	assert.Equal(t, 1, result.Quiz.Difficulty)
	assert.Equal(t, 10, result.Quiz.PointsToEarn)
	require.Len(t, result.Questions, 5)

	for _, q := range result.Questions {
		assert.Equal(t, result.Quiz.ID, q.QuizID)
		assert.Contains(t, q.Options, q.CorrectAnswer)
		switch q.QuestionType {
		case model.TrueFalse:
			assert.Equal(t, []string{"True", "False"}, q.Options)
		case model.MultipleChoice:
			assert.Len(t, q.Options, 4)
		default:
			t.Fatalf("unexpected question type %q", q.QuestionType)
		}
	}
	assert.Contains(t, result.Questions[0].QuestionText, "Goroutines")

	// Each generation produces a fresh quiz.
	again, err := s.GenerateQuizForTopic(topic.ID)
	require.NoError(t, err)
	assert.NotEqual(t, result.Quiz.ID, again.Quiz.ID)
}

func TestGenerateQuizUnknownTopic(t *testing.T) {
	db := newTestDB(t)
	s := newQuizService(db)

	_, err := s.GenerateQuizForTopic(999)
	assert.Error(t, err)
}

func TestRecordAttemptAwardsProportionalPoints(t *testing.T) {
	db := newTestDB(t)
	s := newQuizService(db)
	course := createCourse(t, db, "Go")
	topic := createTopic(t, db, course.ID, "Channels", 1)

	generated, err := s.GenerateQuizForTopic(topic.ID)
	require.NoError(t, err)

	// 3 of 5 on a 10-point quiz rounds to 6 points.
	result, err := s.RecordAttempt(1, generated.Quiz.ID, 3, 5, []AnswerSubmission{
		{QuestionID: generated.Questions[0].ID, UserAnswer: "x", IsCorrect: false},
		{QuestionID: generated.Questions[1].ID, UserAnswer: "True", IsCorrect: true},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Attempt.Score)
	assert.Len(t, result.Answers, 2)

	points, err := s.Gamification.GetUserPoints(1)
	require.NoError(t, err)
	assert.Equal(t, 6, points.Points)
}

func TestRecordAttemptUnknownQuiz(t *testing.T) {
	db := newTestDB(t)
	s := newQuizService(db)

	_, err := s.RecordAttempt(1, 999, 1, 5, nil)
	assert.Error(t, err)
}

func TestPerfectScoreUnlocksAchievement(t *testing.T) {
	db := newTestDB(t)
	s := newQuizService(db)
	course := createCourse(t, db, "Go")
	topic := createTopic(t, db, course.ID, "Slices", 1)

	achievement := &model.Achievement{
		Title:     "Quiz Wizard",
		Type:      model.AchievementPerfectScore,
		Threshold: 2,
		Points:    200,
	}
	require.NoError(t, db.Create(achievement).Error)

	generated, err := s.GenerateQuizForTopic(topic.ID)
	require.NoError(t, err)

	_, err = s.RecordAttempt(1, generated.Quiz.ID, 5, 5, nil)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&model.UserAchievement{}).Count(&count).Error)
	assert.Equal(t, int64(0), count, "one perfect score is below the threshold")

	_, err = s.RecordAttempt(1, generated.Quiz.ID, 5, 5, nil)
	require.NoError(t, err)

	require.NoError(t, db.Model(&model.UserAchievement{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAttemptCountUnlocksQuizMastery(t *testing.T) {
	db := newTestDB(t)
	s := newQuizService(db)
	course := createCourse(t, db, "Go")
	topic := createTopic(t, db, course.ID, "Maps", 1)

	achievement := &model.Achievement{
		Title:     "Quiz Master",
		Type:      model.AchievementQuizMastery,
		Threshold: 3,
		Points:    150,
	}
	require.NoError(t, db.Create(achievement).Error)

	generated, err := s.GenerateQuizForTopic(topic.ID)
	require.NoError(t, err)

	// Imperfect attempts still count toward mastery.
	for i := 0; i < 3; i++ {
		_, err = s.RecordAttempt(1, generated.Quiz.ID, 2, 5, nil)
		require.NoError(t, err)
	}

	var count int64
	require.NoError(t, db.Model(&model.UserAchievement{}).
		Where("achievement_id = ?", achievement.ID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGetUserAttemptsFilter(t *testing.T) {
	db := newTestDB(t)
	s := newQuizService(db)
	course := createCourse(t, db, "Go")
	topic := createTopic(t, db, course.ID, "Errors", 1)

	first, err := s.GenerateQuizForTopic(topic.ID)
	require.NoError(t, err)
	second, err := s.GenerateQuizForTopic(topic.ID)
	require.NoError(t, err)

	_, err = s.RecordAttempt(1, first.Quiz.ID, 1, 5, nil)
	require.NoError(t, err)
	_, err = s.RecordAttempt(1, second.Quiz.ID, 2, 5, nil)
	require.NoError(t, err)

	all, err := s.GetUserAttempts(1, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := s.GetUserAttempts(1, first.Quiz.ID)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, first.Quiz.ID, filtered[0].QuizID)
}
