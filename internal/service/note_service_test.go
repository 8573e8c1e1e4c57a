package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"learntrack_backend/internal/model"
	"learntrack_backend/internal/repository"
)

func newNoteService(db *gorm.DB) *NoteService {
	return NewNoteService(
		repository.NewNoteRepository(db),
		repository.NewTopicRepository(db),
	)
}

func TestCreateAndListNotes(t *testing.T) {
	db := newTestDB(t)
	s := newNoteService(db)
	course := createCourse(t, db, "Go")
	topic := createTopic(t, db, course.ID, "Basics", 1)

	note, err := s.CreateNote(topic.ID, 1, "remember defer runs LIFO")
	require.NoError(t, err)
	assert.Equal(t, 0, note.Likes)
	assert.Equal(t, 0, note.Dislikes)

	notes, err := s.GetNotesByTopic(topic.ID)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "remember defer runs LIFO", notes[0].Content)

	_, err = s.CreateNote(999, 1, "nope")
	assert.Error(t, err)
}

func TestVoteLifecycle(t *testing.T) {
	db := newTestDB(t)
	s := newNoteService(db)
	course := createCourse(t, db, "Go")
	topic := createTopic(t, db, course.ID, "Basics", 1)
	note, err := s.CreateNote(topic.ID, 1, "a note")
	require.NoError(t, err)

	// First like.
	updated, err := s.Vote(note.ID, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Likes)
	assert.Equal(t, 0, updated.Dislikes)

	// Repeating the same vote changes nothing.
	updated, err = s.Vote(note.ID, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Likes)
	assert.Equal(t, 0, updated.Dislikes)

	// Switching to dislike swaps the counters.
	updated, err = s.Vote(note.ID, 2, -1)
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Likes)
	assert.Equal(t, 1, updated.Dislikes)

	// Still exactly one vote row for this user and note.
	var count int64
	require.NoError(t, db.Model(&model.NoteVote{}).
		Where("note_id = ? AND user_id = ?", note.ID, 2).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestVotesFromSeparateUsersAccumulate(t *testing.T) {
	db := newTestDB(t)
	s := newNoteService(db)
	course := createCourse(t, db, "Go")
	topic := createTopic(t, db, course.ID, "Basics", 1)
	note, err := s.CreateNote(topic.ID, 1, "a note")
	require.NoError(t, err)

	_, err = s.Vote(note.ID, 2, 1)
	require.NoError(t, err)
	_, err = s.Vote(note.ID, 3, 1)
	require.NoError(t, err)
	updated, err := s.Vote(note.ID, 4, -1)
	require.NoError(t, err)

	assert.Equal(t, 2, updated.Likes)
	assert.Equal(t, 1, updated.Dislikes)
}

func TestVoteUnknownNote(t *testing.T) {
	db := newTestDB(t)
	s := newNoteService(db)

	_, err := s.Vote(999, 1, 1)
	assert.Error(t, err)
}
