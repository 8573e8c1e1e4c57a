package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"learntrack_backend/internal/model"
	"learntrack_backend/internal/repository"
	"learntrack_backend/internal/util"
	"learntrack_backend/pkg/logger"
)

const (
	courseCatalogCacheKey = "courses:catalog"
	courseTopicsCacheKey  = "courses:%d:topics"
	catalogCacheTTL       = 24 * time.Hour
)

type CourseService struct {
	CourseRepo   *repository.CourseRepository
	TopicRepo    *repository.TopicRepository
	ResourceRepo *repository.ResourceRepository
	ProgressRepo *repository.ProgressRepository
	Redis        *redis.Client
}

func NewCourseService(courseRepo *repository.CourseRepository, topicRepo *repository.TopicRepository, resourceRepo *repository.ResourceRepository, progressRepo *repository.ProgressRepository, rdb *redis.Client) *CourseService {
	return &CourseService{
		CourseRepo:   courseRepo,
		TopicRepo:    topicRepo,
		ResourceRepo: resourceRepo,
		ProgressRepo: progressRepo,
		Redis:        rdb,
	}
}

// GetCourses returns the course catalog, served from Redis when warm. The
// catalog only changes on seeding or topic creation, so a long TTL is safe.
func (s *CourseService) GetCourses(ctx context.Context) ([]model.Course, error) {
	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, courseCatalogCacheKey).Result(); err == nil {
			var courses []model.Course
			if err := json.Unmarshal([]byte(cached), &courses); err == nil {
				return courses, nil
			}
		}
	}

	courses, err := s.CourseRepo.FindAll()
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if data, err := json.Marshal(courses); err == nil {
			if err := s.Redis.Set(ctx, courseCatalogCacheKey, data, catalogCacheTTL).Err(); err != nil {
				logger.Log.Warn("failed to cache course catalog", zap.Error(err))
			}
		}
	}
	return courses, nil
}

func (s *CourseService) GetCourse(id uint) (*model.Course, error) {
	course, err := s.CourseRepo.FindByID(id)
	if err != nil {
		return nil, util.ErrCourseNotFound
	}
	return course, nil
}

// GetTopics returns a course's topics in sibling order, cached per course.
func (s *CourseService) GetTopics(ctx context.Context, courseID uint) ([]model.Topic, error) {
	if _, err := s.CourseRepo.FindByID(courseID); err != nil {
		return nil, util.ErrCourseNotFound
	}

	key := fmt.Sprintf(courseTopicsCacheKey, courseID)
	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, key).Result(); err == nil {
			var topics []model.Topic
			if err := json.Unmarshal([]byte(cached), &topics); err == nil {
				return topics, nil
			}
		}
	}

	topics, err := s.TopicRepo.FindByCourse(courseID)
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if data, err := json.Marshal(topics); err == nil {
			if err := s.Redis.Set(ctx, key, data, catalogCacheTTL).Err(); err != nil {
				logger.Log.Warn("failed to cache course topics", zap.Error(err))
			}
		}
	}
	return topics, nil
}

func (s *CourseService) GetTopic(id uint) (*model.Topic, error) {
	topic, err := s.TopicRepo.FindByID(id)
	if err != nil {
		return nil, util.ErrTopicNotFound
	}
	return topic, nil
}

func (s *CourseService) GetResources(topicID uint) ([]model.Resource, error) {
	if _, err := s.TopicRepo.FindByID(topicID); err != nil {
		return nil, util.ErrTopicNotFound
	}
	return s.ResourceRepo.FindByTopic(topicID)
}

type CreateTopicRequest struct {
	Title         string `json:"title" binding:"required"`
	Description   string `json:"description"`
	Order         int    `json:"order"`
	Prerequisites []uint `json:"prerequisites"`
}

// CreateTopic adds a topic to a course. Every prerequisite must name an
// existing topic of the same course, and the resulting edge set must stay
// acyclic.
func (s *CourseService) CreateTopic(ctx context.Context, courseID uint, req CreateTopicRequest) (*model.Topic, error) {
	if _, err := s.CourseRepo.FindByID(courseID); err != nil {
		return nil, util.ErrCourseNotFound
	}

	existing, err := s.TopicRepo.FindByCourse(courseID)
	if err != nil {
		return nil, err
	}
	known := make(map[uint]bool, len(existing))
	for _, t := range existing {
		known[t.ID] = true
	}
	for _, p := range req.Prerequisites {
		if !known[p] {
			return nil, util.ErrUnknownPrerequisite
		}
	}

	topic := &model.Topic{
		CourseID:      courseID,
		Title:         req.Title,
		Description:   req.Description,
		Order:         req.Order,
		Prerequisites: req.Prerequisites,
	}
	if hasCycle(append(existing, *topic)) {
		return nil, util.ErrCyclicPrerequisites
	}

	if err := s.TopicRepo.Create(topic); err != nil {
		return nil, err
	}
	s.invalidateCourseCache(ctx, courseID)
	return topic, nil
}

// GetCourseFlowchart resolves the course's prerequisite graph for a user:
// leveled topics with positions and per-user lock state.
func (s *CourseService) GetCourseFlowchart(ctx context.Context, courseID, userID uint) ([]TopicGraphNode, error) {
	topics, err := s.GetTopics(ctx, courseID)
	if err != nil {
		return nil, err
	}

	progress, err := s.ProgressRepo.FindAllByUser(userID)
	if err != nil {
		return nil, err
	}
	completed := make(map[uint]bool, len(progress))
	for _, p := range progress {
		if p.IsCompleted {
			completed[p.TopicID] = true
		}
	}
	return BuildTopicGraph(topics, completed), nil
}

func (s *CourseService) invalidateCourseCache(ctx context.Context, courseID uint) {
	if s.Redis == nil {
		return
	}
	keys := []string{courseCatalogCacheKey, fmt.Sprintf(courseTopicsCacheKey, courseID)}
	if err := s.Redis.Del(ctx, keys...).Err(); err != nil {
		logger.Log.Warn("failed to invalidate course cache", zap.Error(err))
	}
}
