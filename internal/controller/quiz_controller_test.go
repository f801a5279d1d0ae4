package controller

import (
	"encoding/json"
	"net/http"
	"testing"

	"mlcourse_backend/internal/model"
	"mlcourse_backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuizRouter(repo *fakeUserRepo, userID string) *gin.Engine {
	r := newTestRouter()
	progress := service.NewProgressService(repo, nil)
	quiz := NewQuizController(service.NewQuizService(progress))
	r.GET("/quiz/:level", quiz.Get)
	r.POST("/quiz/:level/submit", injectUser(userID), quiz.Submit)
	return r
}

func TestGetQuizServesTrimmedBankWithoutAnswers(t *testing.T) {
	r := newQuizRouter(newFakeUserRepo(), "u1")

	w := doJSON(t, r, http.MethodGet, "/quiz/foundation", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	assert.Equal(t, "Successfully retrieved the quiz", env.Message)

	var quiz struct {
		TotalQuestion int                      `json:"totalQuestion"`
		Questions     []map[string]interface{} `json:"questions"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &quiz))
	assert.Equal(t, 2, quiz.TotalQuestion)
	require.Len(t, quiz.Questions, 2)
	for _, q := range quiz.Questions {
		assert.NotContains(t, q, "correctAnswer")
	}
}

func TestGetQuizUnknownLevel(t *testing.T) {
	r := newQuizRouter(newFakeUserRepo(), "u1")

	w := doJSON(t, r, http.MethodGet, "/quiz/expert", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "Quiz not found", env.Message)
}

func TestSubmitQuizGradesAndRecordsProgress(t *testing.T) {
	repo := newFakeUserRepo(&model.User{ID: "u1"})
	r := newQuizRouter(repo, "u1")

	bank := model.Quizzes[model.LevelFoundation]
	answers := []string{bank.Questions[0].CorrectAnswer, bank.Questions[1].CorrectAnswer}

	w := doJSON(t, r, http.MethodPost, "/quiz/foundation/submit", gin.H{"answers": answers})
	assert.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	assert.Equal(t, "Quiz graded", env.Message)

	var result model.QuizResult
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, 10, result.Score)
	assert.True(t, result.Passed)
}

func TestSubmitAssessmentReturnsRecommendation(t *testing.T) {
	r := newQuizRouter(newFakeUserRepo(), "u1")

	w := doJSON(t, r, http.MethodPost, "/quiz/assessment/submit", gin.H{"answers": []string{}})
	assert.Equal(t, http.StatusOK, w.Code)

	var result model.QuizResult
	env := decodeEnvelope(t, w)
	require.NoError(t, json.Unmarshal(env.Data, &result))
	require.NotNil(t, result.Recommended)
	assert.Equal(t, model.LevelFoundation, *result.Recommended)
}
