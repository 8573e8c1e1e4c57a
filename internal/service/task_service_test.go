package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learntrack_backend/internal/repository"
	"learntrack_backend/internal/util"
)

func TestTaskLifecycle(t *testing.T) {
	db := newTestDB(t)
	s := NewTaskService(repository.NewTaskRepository(db))

	task, err := s.CreateTask(1, CreateTaskRequest{Title: "revise pointers"})
	require.NoError(t, err)
	assert.Equal(t, 1, task.Importance)
	assert.False(t, task.IsCompleted)

	done := true
	title := "revise pointers and slices"
	updated, err := s.UpdateTask(1, task.ID, UpdateTaskRequest{Title: &title, IsCompleted: &done})
	require.NoError(t, err)
	assert.True(t, updated.IsCompleted)
	assert.Equal(t, title, updated.Title)

	tasks, err := s.GetTasks(1)
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	require.NoError(t, s.DeleteTask(1, task.ID))
	tasks, err = s.GetTasks(1)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestTaskOwnership(t *testing.T) {
	db := newTestDB(t)
	s := NewTaskService(repository.NewTaskRepository(db))

	task, err := s.CreateTask(1, CreateTaskRequest{Title: "mine"})
	require.NoError(t, err)

	// Another user cannot touch it.
	done := true
	_, err = s.UpdateTask(2, task.ID, UpdateTaskRequest{IsCompleted: &done})
	assert.ErrorIs(t, err, util.ErrTaskNotFound)
	assert.ErrorIs(t, s.DeleteTask(2, task.ID), util.ErrTaskNotFound)

	tasks, err := s.GetTasks(2)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}
