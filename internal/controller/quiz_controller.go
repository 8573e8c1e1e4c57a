package controller

import (
	"errors"

	"github.com/gin-gonic/gin"

	"learntrack_backend/internal/service"
	"learntrack_backend/internal/util"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

// GetQuizzes godoc
// @Summary List a topic's quizzes
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Param topicId path int true "topic id"
// @Success 200 {object} util.Response{data=[]model.Quiz}
// @Failure 404 {object} util.Response
// @Router /api/topics/{topicId}/quizzes [get]
func (c *QuizController) GetQuizzes(ctx *gin.Context) {
	id, ok := util.ParseID(ctx.Param("topicId"))
	if !ok {
		util.BadRequest(ctx, "invalid topic id")
		return
	}

	quizzes, err := c.QuizService.GetQuizzesByTopic(id)
	if err != nil {
		if errors.Is(err, util.ErrTopicNotFound) {
			util.NotFound(ctx, "Topic not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, quizzes)
}

// GetQuiz godoc
// @Summary Get a quiz with its questions
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Param quizId path int true "quiz id"
// @Success 200 {object} util.Response{data=service.QuizWithQuestions}
// @Failure 404 {object} util.Response
// @Router /api/quizzes/{quizId} [get]
func (c *QuizController) GetQuiz(ctx *gin.Context) {
	id, ok := util.ParseID(ctx.Param("quizId"))
	if !ok {
		util.BadRequest(ctx, "invalid quiz id")
		return
	}

	quiz, err := c.QuizService.GetQuiz(id)
	if err != nil {
		if errors.Is(err, util.ErrQuizNotFound) {
			util.NotFound(ctx, "Quiz not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, quiz)
}

// GenerateQuiz godoc
// @Summary Generate a template quiz for a topic
// @Description Creates and persists a five-question quiz parameterized by the topic title
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Param topicId path int true "topic id"
// @Success 201 {object} util.Response{data=service.QuizWithQuestions}
// @Failure 404 {object} util.Response
// @Router /api/topics/{topicId}/generate-quiz [post]
func (c *QuizController) GenerateQuiz(ctx *gin.Context) {
	id, ok := util.ParseID(ctx.Param("topicId"))
	if !ok {
		util.BadRequest(ctx, "invalid topic id")
		return
	}

	result, err := c.QuizService.GenerateQuizForTopic(id)
	if err != nil {
		if errors.Is(err, util.ErrTopicNotFound) {
			util.NotFound(ctx, "Topic not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, result)
}

type AttemptRequest struct {
	Score    *int                       `json:"score" binding:"required"`
	MaxScore int                        `json:"maxScore" binding:"required"`
	Answers  []service.AnswerSubmission `json:"answers" binding:"required"`
}

// SubmitAttempt godoc
// @Summary Record a completed quiz attempt
// @Description Saves the attempt and answers, awards proportional points and runs quiz achievement checks
// @Tags quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param quizId path int true "quiz id"
// @Param body body AttemptRequest true "attempt payload"
// @Success 201 {object} util.Response{data=service.AttemptResult}
// @Failure 404 {object} util.Response
// @Router /api/quizzes/{quizId}/attempt [post]
func (c *QuizController) SubmitAttempt(ctx *gin.Context) {
	id, ok := util.ParseID(ctx.Param("quizId"))
	if !ok {
		util.BadRequest(ctx, "invalid quiz id")
		return
	}
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req AttemptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.QuizService.RecordAttempt(claims.UserID, id, *req.Score, req.MaxScore, req.Answers)
	if err != nil {
		if errors.Is(err, util.ErrQuizNotFound) {
			util.NotFound(ctx, "Quiz not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, result)
}

// GetAttempts godoc
// @Summary List a user's quiz attempts
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Param userId path int true "user id"
// @Param quizId query int false "filter to one quiz"
// @Success 200 {object} util.Response{data=[]model.UserQuizAttempt}
// @Failure 403 {object} util.Response
// @Router /api/users/{userId}/quiz-attempts [get]
func (c *QuizController) GetAttempts(ctx *gin.Context) {
	userID, ok := pathUserID(ctx)
	if !ok {
		return
	}

	var quizID uint
	if raw := ctx.Query("quizId"); raw != "" {
		id, ok := util.ParseID(raw)
		if !ok {
			util.BadRequest(ctx, "invalid quiz id")
			return
		}
		quizID = id
	}

	attempts, err := c.QuizService.GetUserAttempts(userID, quizID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, attempts)
}
