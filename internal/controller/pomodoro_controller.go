package controller

import (
	"github.com/gin-gonic/gin"

	"learntrack_backend/internal/service"
	"learntrack_backend/internal/util"
)

type PomodoroController struct {
	PomodoroService *service.PomodoroService
}

func NewPomodoroController(pomodoroService *service.PomodoroService) *PomodoroController {
	return &PomodoroController{PomodoroService: pomodoroService}
}

// RecordSession godoc
// @Summary Record a finished pomodoro session
// @Tags pomodoro
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path int true "user id"
// @Param body body service.RecordSessionRequest true "session payload"
// @Success 201 {object} util.Response{data=model.PomodoroSession}
// @Failure 400 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /api/users/{userId}/pomodoro-sessions [post]
func (c *PomodoroController) RecordSession(ctx *gin.Context) {
	userID, ok := pathUserID(ctx)
	if !ok {
		return
	}

	var req service.RecordSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	session, err := c.PomodoroService.RecordSession(userID, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, session)
}

// GetSessions godoc
// @Summary List a user's pomodoro sessions
// @Tags pomodoro
// @Produce json
// @Security BearerAuth
// @Param userId path int true "user id"
// @Success 200 {object} util.Response{data=[]model.PomodoroSession}
// @Failure 403 {object} util.Response
// @Router /api/users/{userId}/pomodoro-sessions [get]
func (c *PomodoroController) GetSessions(ctx *gin.Context) {
	userID, ok := pathUserID(ctx)
	if !ok {
		return
	}

	sessions, err := c.PomodoroService.GetSessions(userID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, sessions)
}
