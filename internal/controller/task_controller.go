package controller

import (
	"errors"

	"github.com/gin-gonic/gin"

	"learntrack_backend/internal/service"
	"learntrack_backend/internal/util"
)

type TaskController struct {
	TaskService *service.TaskService
}

func NewTaskController(taskService *service.TaskService) *TaskController {
	return &TaskController{TaskService: taskService}
}

// GetTasks godoc
// @Summary List a user's tasks
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param userId path int true "user id"
// @Success 200 {object} util.Response{data=[]model.Task}
// @Failure 403 {object} util.Response
// @Router /api/users/{userId}/tasks [get]
func (c *TaskController) GetTasks(ctx *gin.Context) {
	userID, ok := pathUserID(ctx)
	if !ok {
		return
	}

	tasks, err := c.TaskService.GetTasks(userID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, tasks)
}

// CreateTask godoc
// @Summary Create a task
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path int true "user id"
// @Param body body service.CreateTaskRequest true "task payload"
// @Success 201 {object} util.Response{data=model.Task}
// @Failure 400 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /api/users/{userId}/tasks [post]
func (c *TaskController) CreateTask(ctx *gin.Context) {
	userID, ok := pathUserID(ctx)
	if !ok {
		return
	}

	var req service.CreateTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	task, err := c.TaskService.CreateTask(userID, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, task)
}

// UpdateTask godoc
// @Summary Update a task
// @Description Applies only the fields present in the request body
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param taskId path int true "task id"
// @Param body body service.UpdateTaskRequest true "fields to update"
// @Success 200 {object} util.Response{data=model.Task}
// @Failure 404 {object} util.Response
// @Router /api/tasks/{taskId} [patch]
func (c *TaskController) UpdateTask(ctx *gin.Context) {
	id, ok := util.ParseID(ctx.Param("taskId"))
	if !ok {
		util.BadRequest(ctx, "invalid task id")
		return
	}
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.UpdateTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	task, err := c.TaskService.UpdateTask(claims.UserID, id, req)
	if err != nil {
		if errors.Is(err, util.ErrTaskNotFound) {
			util.NotFound(ctx, "Task not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, task)
}

// DeleteTask godoc
// @Summary Delete a task
// @Tags tasks
// @Security BearerAuth
// @Param taskId path int true "task id"
// @Success 204 "deleted"
// @Failure 404 {object} util.Response
// @Router /api/tasks/{taskId} [delete]
func (c *TaskController) DeleteTask(ctx *gin.Context) {
	id, ok := util.ParseID(ctx.Param("taskId"))
	if !ok {
		util.BadRequest(ctx, "invalid task id")
		return
	}
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.TaskService.DeleteTask(claims.UserID, id); err != nil {
		if errors.Is(err, util.ErrTaskNotFound) {
			util.NotFound(ctx, "Task not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.NoContent(ctx)
}
