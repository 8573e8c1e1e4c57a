package controller

import (
	"errors"

	"github.com/gin-gonic/gin"

	"learntrack_backend/internal/service"
	"learntrack_backend/internal/util"
)

type CourseController struct {
	CourseService *service.CourseService
}

func NewCourseController(courseService *service.CourseService) *CourseController {
	return &CourseController{CourseService: courseService}
}

// GetCourses godoc
// @Summary List the course catalog
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Course}
// @Router /api/courses [get]
func (c *CourseController) GetCourses(ctx *gin.Context) {
	courses, err := c.CourseService.GetCourses(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// GetCourse godoc
// @Summary Get one course
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param courseId path int true "course id"
// @Success 200 {object} util.Response{data=model.Course}
// @Failure 404 {object} util.Response
// @Router /api/courses/{courseId} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	id, ok := util.ParseID(ctx.Param("courseId"))
	if !ok {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	course, err := c.CourseService.GetCourse(id)
	if err != nil {
		util.NotFound(ctx, "Course not found")
		return
	}
	util.Success(ctx, course)
}

// GetTopics godoc
// @Summary List a course's topics in sibling order
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param courseId path int true "course id"
// @Success 200 {object} util.Response{data=[]model.Topic}
// @Failure 404 {object} util.Response
// @Router /api/courses/{courseId}/topics [get]
func (c *CourseController) GetTopics(ctx *gin.Context) {
	id, ok := util.ParseID(ctx.Param("courseId"))
	if !ok {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	topics, err := c.CourseService.GetTopics(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx, "Course not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, topics)
}

// CreateTopic godoc
// @Summary Add a topic to a course
// @Description Prerequisites must reference existing topics of the same course and keep the graph acyclic
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param courseId path int true "course id"
// @Param body body service.CreateTopicRequest true "topic payload"
// @Success 201 {object} util.Response{data=model.Topic}
// @Failure 400 {object} util.Response "unknown prerequisite or cycle"
// @Failure 404 {object} util.Response
// @Router /api/courses/{courseId}/topics [post]
func (c *CourseController) CreateTopic(ctx *gin.Context) {
	id, ok := util.ParseID(ctx.Param("courseId"))
	if !ok {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	var req service.CreateTopicRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	topic, err := c.CourseService.CreateTopic(ctx.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrCourseNotFound):
			util.NotFound(ctx, "Course not found")
		case errors.Is(err, util.ErrUnknownPrerequisite):
			util.BadRequest(ctx, "Prerequisite references an unknown topic")
		case errors.Is(err, util.ErrCyclicPrerequisites):
			util.BadRequest(ctx, "Prerequisites would create a cycle")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, topic)
}

// GetFlowchart godoc
// @Summary Get a course's prerequisite graph for the authenticated user
// @Description Topics annotated with level, position and per-user lock state
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param courseId path int true "course id"
// @Success 200 {object} util.Response{data=[]service.TopicGraphNode}
// @Failure 404 {object} util.Response
// @Router /api/courses/{courseId}/flowchart [get]
func (c *CourseController) GetFlowchart(ctx *gin.Context) {
	id, ok := util.ParseID(ctx.Param("courseId"))
	if !ok {
		util.BadRequest(ctx, "invalid course id")
		return
	}
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	nodes, err := c.CourseService.GetCourseFlowchart(ctx.Request.Context(), id, claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx, "Course not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nodes)
}

// GetTopic godoc
// @Summary Get one topic
// @Tags topics
// @Produce json
// @Security BearerAuth
// @Param topicId path int true "topic id"
// @Success 200 {object} util.Response{data=model.Topic}
// @Failure 404 {object} util.Response
// @Router /api/topics/{topicId} [get]
func (c *CourseController) GetTopic(ctx *gin.Context) {
	id, ok := util.ParseID(ctx.Param("topicId"))
	if !ok {
		util.BadRequest(ctx, "invalid topic id")
		return
	}

	topic, err := c.CourseService.GetTopic(id)
	if err != nil {
		util.NotFound(ctx, "Topic not found")
		return
	}
	util.Success(ctx, topic)
}

// GetResources godoc
// @Summary List a topic's learning resources
// @Tags topics
// @Produce json
// @Security BearerAuth
// @Param topicId path int true "topic id"
// @Success 200 {object} util.Response{data=[]model.Resource}
// @Failure 404 {object} util.Response
// @Router /api/topics/{topicId}/resources [get]
func (c *CourseController) GetResources(ctx *gin.Context) {
	id, ok := util.ParseID(ctx.Param("topicId"))
	if !ok {
		util.BadRequest(ctx, "invalid topic id")
		return
	}

	resources, err := c.CourseService.GetResources(id)
	if err != nil {
		if errors.Is(err, util.ErrTopicNotFound) {
			util.NotFound(ctx, "Topic not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, resources)
}
