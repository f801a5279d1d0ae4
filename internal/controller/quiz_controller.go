package controller

import (
	"errors"

	"mlcourse_backend/internal/model"
	"mlcourse_backend/internal/service"
	"mlcourse_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

// Get godoc
// @Summary Fetch the quiz for a level
// @Description Returns the question set a learner sits for the given level; correct answers are not included
// @Tags quiz
// @Produce  json
// @Security ApiKeyAuth
// @Param   level path string true "foundation, beginner, intermediate, advance or assessment"
// @Success 200 {object} util.Response{data=model.Quiz} "Success"
// @Failure 404 {object} util.Response "Unknown level"
// @Router /quiz/{level} [get]
func (c *QuizController) Get(ctx *gin.Context) {
	quiz, err := c.QuizService.GetQuiz(model.Level(ctx.Param("level")))
	if err != nil {
		util.NotFound(ctx, "Quiz not found")
		return
	}

	util.Success(ctx, "Successfully retrieved the quiz", quiz)
}

type SubmitQuizRequest struct {
	Answers []string `json:"answers"`
}

// Submit godoc
// @Summary Grade a finished quiz
// @Description Scores the submitted answers. Passing a course level quiz records its progress credit; the readiness assessment returns a recommended entry level instead.
// @Tags quiz
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   level path string true "foundation, beginner, intermediate, advance or assessment"
// @Param   body body SubmitQuizRequest true "Answers in served question order"
// @Success 200 {object} util.Response{data=model.QuizResult} "Graded result"
// @Failure 400 {object} util.Response "Malformed body"
// @Failure 404 {object} util.Response "Unknown level"
// @Failure 500 {object} util.Response "Internal error"
// @Router /quiz/{level}/submit [post]
func (c *QuizController) Submit(ctx *gin.Context) {
	var req SubmitQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	userID := util.GetUserID(ctx)
	result, err := c.QuizService.Submit(ctx.Request.Context(), userID, model.Level(ctx.Param("level")), req.Answers)
	if err != nil {
		if errors.Is(err, util.ErrQuizNotFound) {
			util.NotFound(ctx, "Quiz not found")
		} else {
			util.InternalError(ctx, "Unable to grade the quiz", err)
		}
		return
	}

	util.Success(ctx, "Quiz graded", result)
}
