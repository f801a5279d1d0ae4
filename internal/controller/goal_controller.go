package controller

import (
	"errors"

	"mlcourse_backend/internal/model"
	"mlcourse_backend/internal/service"
	"mlcourse_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type GoalController struct {
	GoalService *service.GoalService
}

func NewGoalController(goalService *service.GoalService) *GoalController {
	return &GoalController{GoalService: goalService}
}

type CreateGoalRequest struct {
	Text     string       `json:"text" binding:"required"`
	Progress int          `json:"progress"`
	Deadline *int         `json:"deadline"`
	Level    *model.Level `json:"level"`
}

// Create godoc
// @Summary Create a study goal
// @Tags goals
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body CreateGoalRequest true "Goal details"
// @Success 201 {object} util.Response{data=model.Goal} "Created"
// @Failure 400 {object} util.Response "Invalid deadline or level"
// @Failure 500 {object} util.Response "Internal error"
// @Router /goals [post]
func (c *GoalController) Create(ctx *gin.Context) {
	var req CreateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	goal := &model.Goal{
		UserID:   util.GetUserID(ctx),
		Text:     req.Text,
		Progress: req.Progress,
		Deadline: req.Deadline,
		Level:    req.Level,
	}

	if err := c.GoalService.Create(ctx.Request.Context(), goal); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Created(ctx, "Goal successfully created.", goal)
}

// List godoc
// @Summary List the learner's study goals
// @Tags goals
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Goal} "Success"
// @Failure 500 {object} util.Response "Internal error"
// @Router /goals [get]
func (c *GoalController) List(ctx *gin.Context) {
	goals, err := c.GoalService.List(ctx.Request.Context(), util.GetUserID(ctx))
	if err != nil {
		util.InternalError(ctx, "Unable to retrieve goals", err)
		return
	}

	util.Success(ctx, "Successfully retrieved goals", goals)
}

// Update godoc
// @Summary Update a study goal
// @Tags goals
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "Goal id"
// @Param   body body object true "Fields to set"
// @Success 200 {object} util.Response{data=model.Goal} "Success"
// @Failure 400 {object} util.Response "Invalid fields"
// @Failure 404 {object} util.Response "Unknown goal"
// @Failure 500 {object} util.Response "Internal error"
// @Router /goals/{id} [put]
func (c *GoalController) Update(ctx *gin.Context) {
	var fields map[string]interface{}
	if err := ctx.ShouldBindJSON(&fields); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	goal, err := c.GoalService.Update(ctx.Request.Context(), util.GetUserID(ctx), ctx.Param("id"), fields)
	if err != nil {
		if errors.Is(err, util.ErrGoalNotFound) {
			util.NotFound(ctx, "Goal not found")
		} else {
			util.BadRequest(ctx, err.Error())
		}
		return
	}

	util.Success(ctx, "Goal successfully updated.", goal)
}

// Delete godoc
// @Summary Delete a study goal
// @Tags goals
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "Goal id"
// @Success 200 {object} util.Response{data=model.Goal} "Deleted goal"
// @Failure 404 {object} util.Response "Unknown goal"
// @Failure 500 {object} util.Response "Internal error"
// @Router /goals/{id} [delete]
func (c *GoalController) Delete(ctx *gin.Context) {
	goal, err := c.GoalService.Delete(ctx.Request.Context(), util.GetUserID(ctx), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrGoalNotFound) {
			util.NotFound(ctx, "Goal not found")
		} else {
			util.InternalError(ctx, "Unable to delete the goal", err)
		}
		return
	}

	util.Success(ctx, "Goal successfully deleted.", goal)
}
