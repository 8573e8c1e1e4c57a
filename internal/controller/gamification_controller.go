package controller

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"learntrack_backend/internal/service"
	"learntrack_backend/internal/util"
)

type GamificationController struct {
	GamificationService *service.GamificationService
}

func NewGamificationController(gamificationService *service.GamificationService) *GamificationController {
	return &GamificationController{GamificationService: gamificationService}
}

// GetAchievements godoc
// @Summary List all achievement definitions
// @Tags gamification
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Achievement}
// @Router /api/achievements [get]
func (c *GamificationController) GetAchievements(ctx *gin.Context) {
	achievements, err := c.GamificationService.GetAchievements()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, achievements)
}

// GetUserAchievements godoc
// @Summary List a user's unlocked achievements
// @Tags gamification
// @Produce json
// @Security BearerAuth
// @Param userId path int true "user id"
// @Success 200 {object} util.Response{data=[]service.UnlockedAchievement}
// @Failure 403 {object} util.Response
// @Router /api/users/{userId}/achievements [get]
func (c *GamificationController) GetUserAchievements(ctx *gin.Context) {
	userID, ok := pathUserID(ctx)
	if !ok {
		return
	}

	unlocked, err := c.GamificationService.GetUserAchievements(userID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, unlocked)
}

// GetUserPoints godoc
// @Summary Get a user's points and level
// @Description Users who never earned points get zero points at level 1
// @Tags gamification
// @Produce json
// @Security BearerAuth
// @Param userId path int true "user id"
// @Success 200 {object} util.Response{data=model.UserPoints}
// @Failure 403 {object} util.Response
// @Router /api/users/{userId}/points [get]
func (c *GamificationController) GetUserPoints(ctx *gin.Context) {
	userID, ok := pathUserID(ctx)
	if !ok {
		return
	}

	points, err := c.GamificationService.GetUserPoints(userID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, points)
}

// GetLeaderboard godoc
// @Summary Get the points leaderboard
// @Tags gamification
// @Produce json
// @Security BearerAuth
// @Param limit query int false "rows to return (default 10, max 100)"
// @Success 200 {object} util.Response{data=[]service.LeaderboardEntry}
// @Router /api/leaderboard [get]
func (c *GamificationController) GetLeaderboard(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))

	entries, err := c.GamificationService.GetLeaderboard(limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}
