package controller

import (
	"errors"

	"mlcourse_backend/internal/service"
	"mlcourse_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// List godoc
// @Summary List all learners
// @Tags users
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.User} "Success"
// @Failure 500 {object} util.Response "No users or database failure"
// @Router /user [get]
func (c *UserController) List(ctx *gin.Context) {
	users, err := c.UserService.List(ctx.Request.Context())
	if err != nil {
		util.InternalError(ctx, "Unable to retrieve users from the database!", err)
		return
	}

	util.Success(ctx, "Successfully retrieved users from the database!", users)
}

// Get godoc
// @Summary Get a learner by id
// @Tags users
// @Produce  json
// @Param   id path string true "User id"
// @Success 200 {object} util.Response{data=model.User} "Success"
// @Failure 404 {object} util.Response "Unknown user"
// @Failure 500 {object} util.Response "Internal error"
// @Router /user/{id} [get]
func (c *UserController) Get(ctx *gin.Context) {
	user, err := c.UserService.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, "User not found!")
		} else {
			util.InternalError(ctx, "Unable to get the user from the database", err)
		}
		return
	}

	util.Success(ctx, "Successfully retrieved the user from the database", user)
}

// Update godoc
// @Summary Update a learner
// @Description Applies the request body as a field update; dotted keys may address embedded progress values. The progress total is rederived server-side.
// @Tags users
// @Accept  json
// @Produce  json
// @Param   id path string true "User id"
// @Param   body body object true "Fields to set"
// @Success 200 {object} util.Response{data=model.User} "Success"
// @Failure 400 {object} util.Response "Duplicate key"
// @Failure 404 {object} util.Response "Unknown user"
// @Failure 500 {object} util.Response "Internal error"
// @Router /user/{id} [put]
func (c *UserController) Update(ctx *gin.Context) {
	var fields map[string]interface{}
	if err := ctx.ShouldBindJSON(&fields); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.Update(ctx.Request.Context(), ctx.Param("id"), fields)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx, "User not found.")
		case errors.Is(err, util.ErrUsernameTaken):
			util.BadRequest(ctx, "Duplicate key error. The provided phone number or email is already in use.")
		default:
			util.InternalError(ctx, "Unable to update the user", err)
		}
		return
	}

	util.Success(ctx, "User successfully updated.", user)
}

// Delete godoc
// @Summary Delete a learner
// @Tags users
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "User id"
// @Success 200 {object} util.Response{data=model.User} "Deleted user"
// @Failure 404 {object} util.Response "Unknown user"
// @Failure 500 {object} util.Response "Internal error"
// @Router /user/{id} [delete]
func (c *UserController) Delete(ctx *gin.Context) {
	user, err := c.UserService.Delete(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, "User not found!")
		} else {
			util.InternalError(ctx, "Unable to delete the user", err)
		}
		return
	}

	util.Success(ctx, "User successfully deleted.", user)
}
