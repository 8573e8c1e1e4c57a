package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"learntrack_backend/internal/repository"
	"learntrack_backend/internal/util"
)

func newCourseService(db *gorm.DB) *CourseService {
	return NewCourseService(
		repository.NewCourseRepository(db),
		repository.NewTopicRepository(db),
		repository.NewResourceRepository(db),
		repository.NewProgressRepository(db),
		nil, // cache disabled in tests
	)
}

func TestCreateTopicValidatesPrerequisites(t *testing.T) {
	db := newTestDB(t)
	s := newCourseService(db)
	ctx := context.Background()
	course := createCourse(t, db, "Go")
	base := createTopic(t, db, course.ID, "Basics", 1)

	topic, err := s.CreateTopic(ctx, course.ID, CreateTopicRequest{
		Title:         "Structs",
		Order:         2,
		Prerequisites: []uint{base.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, []uint{base.ID}, topic.Prerequisites)

	_, err = s.CreateTopic(ctx, course.ID, CreateTopicRequest{
		Title:         "Bad",
		Prerequisites: []uint{999},
	})
	assert.ErrorIs(t, err, util.ErrUnknownPrerequisite)

	_, err = s.CreateTopic(ctx, 999, CreateTopicRequest{Title: "Orphan"})
	assert.ErrorIs(t, err, util.ErrCourseNotFound)
}

func TestGetTopicsSiblingOrder(t *testing.T) {
	db := newTestDB(t)
	s := newCourseService(db)
	course := createCourse(t, db, "Go")
	createTopic(t, db, course.ID, "Third", 3)
	createTopic(t, db, course.ID, "First", 1)
	createTopic(t, db, course.ID, "Second", 2)

	topics, err := s.GetTopics(context.Background(), course.ID)
	require.NoError(t, err)
	require.Len(t, topics, 3)
	assert.Equal(t, "First", topics[0].Title)
	assert.Equal(t, "Second", topics[1].Title)
	assert.Equal(t, "Third", topics[2].Title)
}

func TestGetCourseFlowchart(t *testing.T) {
	db := newTestDB(t)
	s := newCourseService(db)
	ctx := context.Background()
	course := createCourse(t, db, "Go")
	root := createTopic(t, db, course.ID, "Basics", 1)
	next := createTopic(t, db, course.ID, "Structs", 2, root.ID)

	nodes, err := s.GetCourseFlowchart(ctx, course.ID, 1)
	require.NoError(t, err)
	require.Len(t, nodes, 2)
	assert.False(t, nodes[0].Locked)
	assert.True(t, nodes[1].Locked)

	// Completing the root unlocks its dependent.
	progressRepo := repository.NewProgressRepository(db)
	streakRepo := repository.NewStreakRepository(db)
	topicRepo := repository.NewTopicRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	progress := NewProgressService(progressRepo, streakRepo, topicRepo, courseRepo, newGamification(db))
	_, err = progress.MarkTopicComplete(1, root.ID, true)
	require.NoError(t, err)

	nodes, err = s.GetCourseFlowchart(ctx, course.ID, 1)
	require.NoError(t, err)
	assert.False(t, nodes[1].Locked)
	assert.Equal(t, next.ID, nodes[1].ID)
	assert.Equal(t, 1, nodes[1].Level)

	// Another user still sees it locked.
	nodes, err = s.GetCourseFlowchart(ctx, course.ID, 2)
	require.NoError(t, err)
	assert.True(t, nodes[1].Locked)
}
