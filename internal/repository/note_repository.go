package repository

import (
	"learntrack_backend/internal/model"

	"gorm.io/gorm"
)

type NoteRepository struct {
	DB *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{DB: db}
}

func (r *NoteRepository) FindByTopic(topicID uint) ([]model.CommunityNote, error) {
	var notes []model.CommunityNote
	err := r.DB.Where("topic_id = ?", topicID).Order("created_at desc").Find(&notes).Error
	return notes, err
}

func (r *NoteRepository) FindByID(id uint) (*model.CommunityNote, error) {
	var note model.CommunityNote
	err := r.DB.First(&note, id).Error
	return &note, err
}

func (r *NoteRepository) Create(note *model.CommunityNote) error {
	return r.DB.Create(note).Error
}

func (r *NoteRepository) Update(note *model.CommunityNote) error {
	return r.DB.Save(note).Error
}

func (r *NoteRepository) FindVote(noteID, userID uint) (*model.NoteVote, error) {
	var vote model.NoteVote
	err := r.DB.Where("note_id = ? AND user_id = ?", noteID, userID).First(&vote).Error
	return &vote, err
}

func (r *NoteRepository) CreateVote(vote *model.NoteVote) error {
	return r.DB.Create(vote).Error
}

func (r *NoteRepository) UpdateVote(vote *model.NoteVote) error {
	return r.DB.Save(vote).Error
}
