package controller

import (
	"errors"

	"github.com/gin-gonic/gin"

	"learntrack_backend/internal/service"
	"learntrack_backend/internal/util"
)

type NoteController struct {
	NoteService *service.NoteService
}

func NewNoteController(noteService *service.NoteService) *NoteController {
	return &NoteController{NoteService: noteService}
}

// GetNotes godoc
// @Summary List a topic's community notes
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Param topicId path int true "topic id"
// @Success 200 {object} util.Response{data=[]model.CommunityNote}
// @Failure 404 {object} util.Response
// @Router /api/topics/{topicId}/notes [get]
func (c *NoteController) GetNotes(ctx *gin.Context) {
	id, ok := util.ParseID(ctx.Param("topicId"))
	if !ok {
		util.BadRequest(ctx, "invalid topic id")
		return
	}

	notes, err := c.NoteService.GetNotesByTopic(id)
	if err != nil {
		if errors.Is(err, util.ErrTopicNotFound) {
			util.NotFound(ctx, "Topic not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, notes)
}

type CreateNoteRequest struct {
	Content string `json:"content" binding:"required"`
}

// CreateNote godoc
// @Summary Post a community note on a topic
// @Tags notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param topicId path int true "topic id"
// @Param body body CreateNoteRequest true "note content"
// @Success 201 {object} util.Response{data=model.CommunityNote}
// @Failure 404 {object} util.Response
// @Router /api/topics/{topicId}/notes [post]
func (c *NoteController) CreateNote(ctx *gin.Context) {
	id, ok := util.ParseID(ctx.Param("topicId"))
	if !ok {
		util.BadRequest(ctx, "invalid topic id")
		return
	}
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CreateNoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	note, err := c.NoteService.CreateNote(id, claims.UserID, req.Content)
	if err != nil {
		if errors.Is(err, util.ErrTopicNotFound) {
			util.NotFound(ctx, "Topic not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, note)
}

type VoteRequest struct {
	Vote int `json:"vote" binding:"required,oneof=1 -1"`
}

// Vote godoc
// @Summary Like or dislike a note
// @Description One vote per user per note; a different vote swaps, the same vote is a no-op
// @Tags notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param noteId path int true "note id"
// @Param body body VoteRequest true "1 for like, -1 for dislike"
// @Success 200 {object} util.Response{data=model.CommunityNote}
// @Failure 404 {object} util.Response
// @Router /api/notes/{noteId}/vote [post]
func (c *NoteController) Vote(ctx *gin.Context) {
	id, ok := util.ParseID(ctx.Param("noteId"))
	if !ok {
		util.BadRequest(ctx, "invalid note id")
		return
	}
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req VoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	note, err := c.NoteService.Vote(id, claims.UserID, req.Vote)
	if err != nil {
		if errors.Is(err, util.ErrNoteNotFound) {
			util.NotFound(ctx, "Note not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, note)
}
