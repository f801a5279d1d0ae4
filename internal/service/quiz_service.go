package service

import (
	"context"

	"mlcourse_backend/internal/model"
	"mlcourse_backend/internal/util"
	"mlcourse_backend/pkg/monitoring"
)

// courseQuizLength caps the number of questions served per course
// level quiz. The readiness assessment always runs its full bank.
const courseQuizLength = 2

// perQuestionScore is what every correct answer is worth, on course
// quizzes and the readiness assessment alike.
const perQuestionScore = 5

// passScore is the minimum score that records progress for a course
// level quiz.
const passScore = 5

type QuizService struct {
	Progress *ProgressService
}

func NewQuizService(progress *ProgressService) *QuizService {
	return &QuizService{Progress: progress}
}

// GetQuiz returns the quiz served for a level, with the question set
// trimmed to what the learner actually sits. Correct answers are
// stripped by the JSON encoding of Question.
func (s *QuizService) GetQuiz(level model.Level) (*model.Quiz, error) {
	quiz, ok := model.Quizzes[level]
	if !ok {
		return nil, util.ErrQuizNotFound
	}

	presented := *quiz
	presented.Questions = presentedQuestions(quiz)
	presented.TotalQuestion = len(presented.Questions)
	return &presented, nil
}

// Submit grades a finished quiz. Answers line up with the served
// question order; missing or mismatched entries count as wrong. A
// passing course quiz records the level's progress credit, while the
// readiness assessment only maps the score to a recommended entry
// level.
func (s *QuizService) Submit(ctx context.Context, userID string, level model.Level, answers []string) (*model.QuizResult, error) {
	quiz, ok := model.Quizzes[level]
	if !ok {
		return nil, util.ErrQuizNotFound
	}

	questions := presentedQuestions(quiz)
	result := &model.QuizResult{Level: level}
	for i, q := range questions {
		if i < len(answers) && answers[i] == q.CorrectAnswer {
			result.Correct++
			result.Score += perQuestionScore
		} else {
			result.Wrong++
		}
	}

	if level == model.LevelAssessment {
		recommended := recommendLevel(result.Score)
		result.Recommended = &recommended
		monitoring.QuizSubmissions.WithLabelValues(string(level), "assessed").Inc()
		return result, nil
	}

	outcome := "failed"
	if result.Score >= passScore {
		result.Passed = true
		outcome = "passed"
		if _, err := s.Progress.ApplyCredit(ctx, userID, level); err != nil {
			return nil, err
		}
	}
	monitoring.QuizSubmissions.WithLabelValues(string(level), outcome).Inc()
	return result, nil
}

func presentedQuestions(quiz *model.Quiz) []model.Question {
	if quiz.Level == model.LevelAssessment || len(quiz.Questions) <= courseQuizLength {
		return quiz.Questions
	}
	return quiz.Questions[:courseQuizLength]
}

// recommendLevel maps an assessment score to the course tier a learner
// should start from.
func recommendLevel(score int) model.Level {
	switch {
	case score < 10:
		return model.LevelFoundation
	case score < 20:
		return model.LevelBeginner
	case score < 30:
		return model.LevelIntermediate
	default:
		return model.LevelAdvance
	}
}
