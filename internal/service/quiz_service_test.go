package service

import (
	"context"
	"testing"

	"mlcourse_backend/internal/model"
	"mlcourse_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuizFixture(users ...*model.User) (*QuizService, *memUserRepo, *memProgressCache) {
	repo := newMemUserRepo(users...)
	cache := newMemProgressCache()
	progress := NewProgressService(repo, cache)
	return NewQuizService(progress), repo, cache
}

func courseAnswers(level model.Level, n int) []string {
	quiz := model.Quizzes[level]
	answers := make([]string, n)
	for i := 0; i < n; i++ {
		answers[i] = quiz.Questions[i].CorrectAnswer
	}
	return answers
}

func TestGetQuizTrimsCourseLevels(t *testing.T) {
	svc, _, _ := newQuizFixture()

	quiz, err := svc.GetQuiz(model.LevelFoundation)
	require.NoError(t, err)
	assert.Len(t, quiz.Questions, 2)
	assert.Equal(t, 2, quiz.TotalQuestion)

	// The shared bank must not be mutated by the trim.
	assert.Len(t, model.FoundationQuiz.Questions, 20)
}

func TestGetQuizServesFullAssessment(t *testing.T) {
	svc, _, _ := newQuizFixture()

	quiz, err := svc.GetQuiz(model.LevelAssessment)
	require.NoError(t, err)
	assert.Len(t, quiz.Questions, 10)
	assert.Equal(t, 10, quiz.TotalQuestion)
}

func TestGetQuizUnknownLevel(t *testing.T) {
	svc, _, _ := newQuizFixture()

	_, err := svc.GetQuiz(model.Level("expert"))
	assert.ErrorIs(t, err, util.ErrQuizNotFound)
}

func TestSubmitPassingCourseQuizRecordsCredit(t *testing.T) {
	user := &model.User{ID: "u1", Name: "Ada"}
	svc, repo, _ := newQuizFixture(user)

	result, err := svc.Submit(context.Background(), "u1", model.LevelFoundation, courseAnswers(model.LevelFoundation, 2))
	require.NoError(t, err)

	assert.Equal(t, 10, result.Score)
	assert.Equal(t, 2, result.Correct)
	assert.Equal(t, 0, result.Wrong)
	assert.True(t, result.Passed)
	assert.Nil(t, result.Recommended)

	stored, err := repo.FindByID(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 25, stored.Progress.Foundation)
	assert.Equal(t, 25, stored.Progress.Total)
}

func TestSubmitOneCorrectStillPasses(t *testing.T) {
	user := &model.User{ID: "u1"}
	svc, repo, _ := newQuizFixture(user)

	answers := courseAnswers(model.LevelBeginner, 2)
	answers[1] = "not even close"

	result, err := svc.Submit(context.Background(), "u1", model.LevelBeginner, answers)
	require.NoError(t, err)

	assert.Equal(t, 5, result.Score)
	assert.Equal(t, 1, result.Correct)
	assert.Equal(t, 1, result.Wrong)
	assert.True(t, result.Passed)

	stored, err := repo.FindByID(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 25, stored.Progress.Beginner)
	assert.Equal(t, 25, stored.Progress.Total)
}

func TestSubmitFailingCourseQuizRecordsNothing(t *testing.T) {
	user := &model.User{ID: "u1"}
	svc, repo, _ := newQuizFixture(user)

	result, err := svc.Submit(context.Background(), "u1", model.LevelIntermediate, []string{"wrong", "wrong"})
	require.NoError(t, err)

	assert.Equal(t, 0, result.Score)
	assert.Equal(t, 2, result.Wrong)
	assert.False(t, result.Passed)

	stored, err := repo.FindByID(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, model.Progress{}, stored.Progress)
}

func TestSubmitMissingAnswersCountAsWrong(t *testing.T) {
	user := &model.User{ID: "u1"}
	svc, _, _ := newQuizFixture(user)

	result, err := svc.Submit(context.Background(), "u1", model.LevelFoundation, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Correct)
	assert.Equal(t, 2, result.Wrong)
	assert.False(t, result.Passed)
}

func TestSubmitIsIdempotentOnRepeatPass(t *testing.T) {
	user := &model.User{ID: "u1"}
	svc, repo, _ := newQuizFixture(user)

	answers := courseAnswers(model.LevelAdvance, 2)
	for i := 0; i < 2; i++ {
		_, err := svc.Submit(context.Background(), "u1", model.LevelAdvance, answers)
		require.NoError(t, err)
	}

	stored, err := repo.FindByID(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 25, stored.Progress.Advance)
	assert.Equal(t, 25, stored.Progress.Total)
}

func TestSubmitAssessmentRecommendsLevel(t *testing.T) {
	svc, _, _ := newQuizFixture()

	cases := []struct {
		correct int
		want    model.Level
	}{
		{0, model.LevelFoundation},
		{1, model.LevelFoundation},
		{2, model.LevelBeginner},
		{3, model.LevelBeginner},
		{4, model.LevelIntermediate},
		{5, model.LevelIntermediate},
		{6, model.LevelAdvance},
		{10, model.LevelAdvance},
	}
	for _, tc := range cases {
		answers := make([]string, 10)
		for i := 0; i < tc.correct; i++ {
			answers[i] = model.AssessmentQuiz.Questions[i].CorrectAnswer
		}

		result, err := svc.Submit(context.Background(), "u1", model.LevelAssessment, answers)
		require.NoError(t, err)
		assert.Equal(t, tc.correct*5, result.Score)
		require.NotNil(t, result.Recommended)
		assert.Equal(t, tc.want, *result.Recommended, "correct=%d", tc.correct)
		assert.False(t, result.Passed)
	}
}

func TestSubmitUnknownLevel(t *testing.T) {
	svc, _, _ := newQuizFixture()

	_, err := svc.Submit(context.Background(), "u1", model.Level("expert"), nil)
	assert.ErrorIs(t, err, util.ErrQuizNotFound)
}

func TestSubmitPassingQuizInvalidatesProgressCache(t *testing.T) {
	user := &model.User{ID: "u1"}
	svc, _, cache := newQuizFixture(user)
	cache.Set(context.Background(), "u1", &model.Progress{})

	_, err := svc.Submit(context.Background(), "u1", model.LevelFoundation, courseAnswers(model.LevelFoundation, 2))
	require.NoError(t, err)
	assert.Contains(t, cache.invalidated, "u1")
}
