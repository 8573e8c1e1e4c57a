package controller

import (
	"errors"

	"github.com/gin-gonic/gin"

	"learntrack_backend/internal/service"
	"learntrack_backend/internal/util"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// GetTopicProgress godoc
// @Summary Get a user's progress on a topic
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Param userId path int true "user id"
// @Param topicId path int true "topic id"
// @Success 200 {object} util.Response{data=model.UserProgress}
// @Failure 403 {object} util.Response
// @Router /api/users/{userId}/progress/{topicId} [get]
func (c *ProgressController) GetTopicProgress(ctx *gin.Context) {
	userID, ok := pathUserID(ctx)
	if !ok {
		return
	}
	topicID, ok := util.ParseID(ctx.Param("topicId"))
	if !ok {
		util.BadRequest(ctx, "invalid topic id")
		return
	}

	progress, err := c.ProgressService.GetTopicProgress(userID, topicID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, progress)
}

type MarkProgressRequest struct {
	TopicID     uint  `json:"topicId" binding:"required"`
	IsCompleted *bool `json:"isCompleted" binding:"required"`
}

// MarkTopicProgress godoc
// @Summary Mark a topic complete or incomplete
// @Description Completing a topic advances the day streak and runs achievement checks
// @Tags progress
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path int true "user id"
// @Param body body MarkProgressRequest true "topic and completion flag"
// @Success 200 {object} util.Response{data=model.UserProgress}
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/users/{userId}/progress [post]
func (c *ProgressController) MarkTopicProgress(ctx *gin.Context) {
	userID, ok := pathUserID(ctx)
	if !ok {
		return
	}

	var req MarkProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	progress, err := c.ProgressService.MarkTopicComplete(userID, req.TopicID, *req.IsCompleted)
	if err != nil {
		if errors.Is(err, util.ErrTopicNotFound) {
			util.NotFound(ctx, "Topic not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, progress)
}

// GetStreak godoc
// @Summary Get a user's day streak
// @Description Users with no activity get a zero streak
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Param userId path int true "user id"
// @Success 200 {object} util.Response{data=model.UserStreak}
// @Failure 403 {object} util.Response
// @Router /api/users/{userId}/streak [get]
func (c *ProgressController) GetStreak(ctx *gin.Context) {
	userID, ok := pathUserID(ctx)
	if !ok {
		return
	}

	streak, err := c.ProgressService.GetStreak(userID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, streak)
}

// GetCompletedTopics godoc
// @Summary List a user's completed topics
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Param userId path int true "user id"
// @Success 200 {object} util.Response{data=[]model.UserProgress}
// @Failure 403 {object} util.Response
// @Router /api/users/{userId}/completed-topics [get]
func (c *ProgressController) GetCompletedTopics(ctx *gin.Context) {
	userID, ok := pathUserID(ctx)
	if !ok {
		return
	}

	topics, err := c.ProgressService.GetCompletedTopics(userID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, topics)
}

// GetInProgressCourses godoc
// @Summary List courses a user has started
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Param userId path int true "user id"
// @Success 200 {object} util.Response{data=[]service.CourseProgress}
// @Failure 403 {object} util.Response
// @Router /api/users/{userId}/in-progress-courses [get]
func (c *ProgressController) GetInProgressCourses(ctx *gin.Context) {
	userID, ok := pathUserID(ctx)
	if !ok {
		return
	}

	courses, err := c.ProgressService.GetInProgressCourses(userID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}
