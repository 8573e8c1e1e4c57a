package repository

import (
	"learntrack_backend/internal/model"

	"gorm.io/gorm"
)

type PomodoroRepository struct {
	DB *gorm.DB
}

func NewPomodoroRepository(db *gorm.DB) *PomodoroRepository {
	return &PomodoroRepository{DB: db}
}

func (r *PomodoroRepository) Create(session *model.PomodoroSession) error {
	return r.DB.Create(session).Error
}

func (r *PomodoroRepository) FindByUser(userID uint) ([]model.PomodoroSession, error) {
	var sessions []model.PomodoroSession
	err := r.DB.Where("user_id = ?", userID).Order("start_time desc").Find(&sessions).Error
	return sessions, err
}
