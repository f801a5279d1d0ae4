package controller

import (
	"errors"

	"mlcourse_backend/internal/service"
	"mlcourse_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// Get godoc
// @Summary Current learner's course progress
// @Description Returns the per-level and total progress for the authenticated learner in one call
// @Tags progress
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.Progress} "Success"
// @Failure 404 {object} util.Response "Unknown user"
// @Failure 500 {object} util.Response "Internal error"
// @Router /progress [get]
func (c *ProgressController) Get(ctx *gin.Context) {
	progress, err := c.ProgressService.Snapshot(ctx.Request.Context(), util.GetUserID(ctx))
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, "User not found!")
		} else {
			util.InternalError(ctx, "Unable to retrieve progress", err)
		}
		return
	}

	util.Success(ctx, "Successfully retrieved progress", progress)
}
