package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"learntrack_backend/internal/model"
	"learntrack_backend/internal/repository"
	"learntrack_backend/internal/util"
)

type ProgressService struct {
	ProgressRepo *repository.ProgressRepository
	StreakRepo   *repository.StreakRepository
	TopicRepo    *repository.TopicRepository
	CourseRepo   *repository.CourseRepository
	Gamification *GamificationService
}

func NewProgressService(progressRepo *repository.ProgressRepository, streakRepo *repository.StreakRepository, topicRepo *repository.TopicRepository, courseRepo *repository.CourseRepository, gamification *GamificationService) *ProgressService {
	return &ProgressService{
		ProgressRepo: progressRepo,
		StreakRepo:   streakRepo,
		TopicRepo:    topicRepo,
		CourseRepo:   courseRepo,
		Gamification: gamification,
	}
}

func (s *ProgressService) GetTopicProgress(userID, topicID uint) (*model.UserProgress, error) {
	progress, err := s.ProgressRepo.FindByUserAndTopic(userID, topicID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &model.UserProgress{UserID: userID, TopicID: topicID, IsCompleted: false}, nil
	}
	if err != nil {
		return nil, err
	}
	return progress, nil
}

// MarkTopicComplete upserts the user's progress on a topic. A completion also
// advances the day streak and runs the streak, topic-count and course-count
// achievement checks; un-completing only flips the flag.
func (s *ProgressService) MarkTopicComplete(userID, topicID uint, isCompleted bool) (*model.UserProgress, error) {
	topic, err := s.TopicRepo.FindByID(topicID)
	if err != nil {
		return nil, util.ErrTopicNotFound
	}

	progress, err := s.ProgressRepo.FindByUserAndTopic(userID, topicID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		progress = &model.UserProgress{UserID: userID, TopicID: topicID}
		applyCompletion(progress, isCompleted)
		if err := s.ProgressRepo.Create(progress); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		applyCompletion(progress, isCompleted)
		if err := s.ProgressRepo.Update(progress); err != nil {
			return nil, err
		}
	}

	if isCompleted {
		streak, err := s.UpdateStreak(userID)
		if err != nil {
			return nil, err
		}
		s.runCompletionChecks(userID, topic.CourseID, streak.CurrentStreak)
	}
	return progress, nil
}

func applyCompletion(progress *model.UserProgress, isCompleted bool) {
	progress.IsCompleted = isCompleted
	if isCompleted {
		now := time.Now()
		progress.CompletedAt = &now
	} else {
		progress.CompletedAt = nil
	}
}

// UpdateStreak applies the day-streak rule for an activity happening now:
// same calendar day is a no-op, the day after yesterday's activity increments,
// any longer gap resets to 1. A first-ever activity starts at 1.
func (s *ProgressService) UpdateStreak(userID uint) (*model.UserStreak, error) {
	now := time.Now()
	streak, err := s.StreakRepo.FindByUser(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		streak = &model.UserStreak{UserID: userID, CurrentStreak: 1, LastActive: now}
		if err := s.StreakRepo.Create(streak); err != nil {
			return nil, err
		}
		return streak, nil
	}
	if err != nil {
		return nil, err
	}

	switch daysBetween(streak.LastActive, now) {
	case 0:
		// Multiple completions in one day keep the streak as-is.
	case 1:
		streak.CurrentStreak++
	default:
		streak.CurrentStreak = 1
	}
	streak.LastActive = now
	if err := s.StreakRepo.Update(streak); err != nil {
		return nil, err
	}
	return streak, nil
}

// daysBetween counts whole calendar days from a to b in local time.
func daysBetween(a, b time.Time) int {
	aDay := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, a.Location())
	bDay := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, b.Location())
	return int(bDay.Sub(aDay).Hours() / 24)
}

// GetStreak returns the user's streak, or a zero streak for users who have
// never completed a topic.
func (s *ProgressService) GetStreak(userID uint) (*model.UserStreak, error) {
	streak, err := s.StreakRepo.FindByUser(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &model.UserStreak{UserID: userID, CurrentStreak: 0, LastActive: time.Now()}, nil
	}
	if err != nil {
		return nil, err
	}
	return streak, nil
}

func (s *ProgressService) GetCompletedTopics(userID uint) ([]model.UserProgress, error) {
	return s.ProgressRepo.FindCompletedByUser(userID)
}

// CourseProgress summarizes how far a user is through one course.
type CourseProgress struct {
	Course          model.Course `json:"course"`
	CompletedTopics int          `json:"completedTopics"`
	TotalTopics     int          `json:"totalTopics"`
	Percentage      int          `json:"percentage"`
}

// GetInProgressCourses lists the courses the user has touched, with
// completed/total topic counts.
func (s *ProgressService) GetInProgressCourses(userID uint) ([]CourseProgress, error) {
	completed, err := s.ProgressRepo.FindCompletedByUser(userID)
	if err != nil {
		return nil, err
	}

	completedByCourse := make(map[uint]int)
	var courseIDs []uint
	for _, p := range completed {
		topic, err := s.TopicRepo.FindByID(p.TopicID)
		if err != nil {
			continue
		}
		if _, seen := completedByCourse[topic.CourseID]; !seen {
			courseIDs = append(courseIDs, topic.CourseID)
		}
		completedByCourse[topic.CourseID]++
	}
	if len(courseIDs) == 0 {
		return []CourseProgress{}, nil
	}

	courses, err := s.CourseRepo.FindByIDs(courseIDs)
	if err != nil {
		return nil, err
	}

	result := make([]CourseProgress, 0, len(courses))
	for _, course := range courses {
		total, err := s.TopicRepo.CountByCourse(course.ID)
		if err != nil {
			return nil, err
		}
		done := completedByCourse[course.ID]
		percentage := 0
		if total > 0 {
			percentage = done * 100 / int(total)
		}
		result = append(result, CourseProgress{
			Course:          course,
			CompletedTopics: done,
			TotalTopics:     int(total),
			Percentage:      percentage,
		})
	}
	return result, nil
}

// runCompletionChecks feeds the gamification triggers after a completion.
func (s *ProgressService) runCompletionChecks(userID, courseID uint, currentStreak int) {
	s.Gamification.CheckStreakAchievements(userID, currentStreak)

	totalCompleted, err := s.ProgressRepo.CountCompletedByUser(userID)
	if err == nil {
		s.Gamification.CheckTopicAchievements(userID, int(totalCompleted))
	}

	if s.courseFinished(userID, courseID) {
		finished := s.countFinishedCourses(userID)
		s.Gamification.CheckCourseAchievements(userID, finished)
	}
}

func (s *ProgressService) courseFinished(userID, courseID uint) bool {
	topics, err := s.TopicRepo.FindByCourse(courseID)
	if err != nil || len(topics) == 0 {
		return false
	}
	for _, t := range topics {
		progress, err := s.ProgressRepo.FindByUserAndTopic(userID, t.ID)
		if err != nil || !progress.IsCompleted {
			return false
		}
	}
	return true
}

func (s *ProgressService) countFinishedCourses(userID uint) int {
	completed, err := s.ProgressRepo.FindCompletedByUser(userID)
	if err != nil {
		return 0
	}
	courseIDs := make(map[uint]bool)
	for _, p := range completed {
		if topic, err := s.TopicRepo.FindByID(p.TopicID); err == nil {
			courseIDs[topic.CourseID] = true
		}
	}
	count := 0
	for id := range courseIDs {
		if s.courseFinished(userID, id) {
			count++
		}
	}
	return count
}
