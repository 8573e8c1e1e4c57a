package service

import (
	"errors"

	"gorm.io/gorm"

	"learntrack_backend/internal/model"
	"learntrack_backend/internal/repository"
	"learntrack_backend/internal/util"
)

type NoteService struct {
	NoteRepo  *repository.NoteRepository
	TopicRepo *repository.TopicRepository
}

func NewNoteService(noteRepo *repository.NoteRepository, topicRepo *repository.TopicRepository) *NoteService {
	return &NoteService{NoteRepo: noteRepo, TopicRepo: topicRepo}
}

func (s *NoteService) GetNotesByTopic(topicID uint) ([]model.CommunityNote, error) {
	if _, err := s.TopicRepo.FindByID(topicID); err != nil {
		return nil, util.ErrTopicNotFound
	}
	return s.NoteRepo.FindByTopic(topicID)
}

func (s *NoteService) CreateNote(topicID, userID uint, content string) (*model.CommunityNote, error) {
	if _, err := s.TopicRepo.FindByID(topicID); err != nil {
		return nil, util.ErrTopicNotFound
	}
	note := &model.CommunityNote{
		TopicID: topicID,
		UserID:  userID,
		Content: content,
	}
	if err := s.NoteRepo.Create(note); err != nil {
		return nil, err
	}
	return note, nil
}

// Vote records a like (+1) or dislike (-1) on a note. Each user holds at most
// one vote per note: repeating the same vote is a no-op, a different vote
// swaps — the old counter decrements (never below zero) and the new one
// increments.
func (s *NoteService) Vote(noteID, userID uint, value int) (*model.CommunityNote, error) {
	note, err := s.NoteRepo.FindByID(noteID)
	if err != nil {
		return nil, util.ErrNoteNotFound
	}

	existing, err := s.NoteRepo.FindVote(noteID, userID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		vote := &model.NoteVote{NoteID: noteID, UserID: userID, Vote: value}
		if err := s.NoteRepo.CreateVote(vote); err != nil {
			return nil, err
		}
		applyVote(note, value, +1)
	case err != nil:
		return nil, err
	case existing.Vote == value:
		return note, nil
	default:
		applyVote(note, existing.Vote, -1)
		applyVote(note, value, +1)
		existing.Vote = value
		if err := s.NoteRepo.UpdateVote(existing); err != nil {
			return nil, err
		}
	}

	if err := s.NoteRepo.Update(note); err != nil {
		return nil, err
	}
	return note, nil
}

func applyVote(note *model.CommunityNote, vote, delta int) {
	switch vote {
	case 1:
		note.Likes += delta
	case -1:
		note.Dislikes += delta
	}
	if note.Likes < 0 {
		note.Likes = 0
	}
	if note.Dislikes < 0 {
		note.Dislikes = 0
	}
}
