package controller

import (
	"github.com/gin-gonic/gin"

	"learntrack_backend/internal/util"
)

// pathUserID parses the userId path parameter and checks it against the
// token's subject. Per-user resources are only visible to their owner, so a
// mismatch yields 403. Writes the error response itself on failure.
func pathUserID(ctx *gin.Context) (uint, bool) {
	id, ok := util.ParseID(ctx.Param("userId"))
	if !ok {
		util.BadRequest(ctx, "invalid user id")
		return 0, false
	}
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return 0, false
	}
	if claims.UserID != id {
		util.Forbidden(ctx)
		return 0, false
	}
	return id, true
}
