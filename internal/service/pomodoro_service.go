package service

import (
	"time"

	"learntrack_backend/internal/model"
	"learntrack_backend/internal/repository"
)

type PomodoroService struct {
	PomodoroRepo *repository.PomodoroRepository
}

func NewPomodoroService(pomodoroRepo *repository.PomodoroRepository) *PomodoroService {
	return &PomodoroService{PomodoroRepo: pomodoroRepo}
}

type RecordSessionRequest struct {
	StartTime    time.Time `json:"startTime" binding:"required"`
	EndTime      time.Time `json:"endTime" binding:"required"`
	WorkMinutes  int       `json:"workMinutes" binding:"required"`
	BreakMinutes int       `json:"breakMinutes"`
}

func (s *PomodoroService) RecordSession(userID uint, req RecordSessionRequest) (*model.PomodoroSession, error) {
	session := &model.PomodoroSession{
		UserID:       userID,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		WorkMinutes:  req.WorkMinutes,
		BreakMinutes: req.BreakMinutes,
	}
	if err := s.PomodoroRepo.Create(session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *PomodoroService) GetSessions(userID uint) ([]model.PomodoroSession, error) {
	return s.PomodoroRepo.FindByUser(userID)
}
