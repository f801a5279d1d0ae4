package controller

import (
	"errors"

	"mlcourse_backend/internal/model"
	"mlcourse_backend/internal/service"
	"mlcourse_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// RegisterRequest defines the registration payload. All fields are
// required; validation is done by hand so that a zero age reads as
// missing, the same as an absent field.
type RegisterRequest struct {
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Phone    string `json:"phone"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register godoc
// @Summary Register a new learner
// @Description Creates a learner account with zeroed course progress
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   body body RegisterRequest true "Registration details"
// @Success 201 {object} util.Response{data=model.User} "Created"
// @Failure 400 {object} util.Response "Missing fields or username taken"
// @Failure 500 {object} util.Response "Internal error"
// @Router /user [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Please complete all the required fields.")
		return
	}
	if req.Name == "" || req.Age == 0 || req.Phone == "" || req.Username == "" || req.Password == "" {
		util.BadRequest(ctx, "Please complete all the required fields.")
		return
	}

	user := &model.User{
		Name:     req.Name,
		Age:      req.Age,
		Phone:    req.Phone,
		Username: req.Username,
		Password: req.Password,
	}

	if err := c.AuthService.Register(ctx.Request.Context(), user); err != nil {
		if errors.Is(err, util.ErrUsernameTaken) {
			util.BadRequest(ctx, "Username already exists. Please login")
		} else {
			util.InternalError(ctx, "Unable to create the user", err)
		}
		return
	}

	util.Created(ctx, "User has been successfully registered", user)
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login godoc
// @Summary Authenticate a learner
// @Description Verifies credentials and returns a bearer token valid for 24 hours
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   body body LoginRequest true "Login credentials"
// @Success 200 {object} util.Response{data=string} "Bearer token"
// @Failure 400 {object} util.Response "Missing fields or wrong password"
// @Failure 404 {object} util.Response "Unknown username"
// @Failure 500 {object} util.Response "Internal error"
// @Router /login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Please provide both the username and the password.")
		return
	}
	if req.Username == "" || req.Password == "" {
		util.BadRequest(ctx, "Please provide both the username and the password.")
		return
	}

	token, err := c.AuthService.Login(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx, "User not found")
		case errors.Is(err, util.ErrIncorrectPassword):
			util.BadRequest(ctx, "Your password is incorrect")
		default:
			util.InternalError(ctx, "Unable to login", err)
		}
		return
	}

	util.Success(ctx, "Login successful", "Bearer "+token)
}
