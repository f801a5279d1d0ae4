package model

// Level identifies one of the course difficulty tiers, plus the
// readiness assessment which sits outside the tier ladder.
type Level string

const (
	LevelFoundation   Level = "foundation"
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvance      Level = "advance"
	LevelAssessment   Level = "assessment"
)

// CourseLevels lists the tiers that carry progress credit, in order.
var CourseLevels = []Level{LevelFoundation, LevelBeginner, LevelIntermediate, LevelAdvance}

// ProgressCredit is the percentage a level contributes to the overall
// course total once its quiz is passed. Four levels at 25 each make 100.
const ProgressCredit = 25

// Question is a single multiple-choice item. The correct answer never
// leaves the server; it is excluded from JSON responses.
type Question struct {
	Question      string   `json:"question"`
	Choices       []string `json:"choices"`
	Type          string   `json:"type"`
	CorrectAnswer string   `json:"-"`
}

// Quiz is a static question bank for one level.
type Quiz struct {
	Topic            string     `json:"topic"`
	Level            Level      `json:"level"`
	TotalQuestion    int        `json:"totalQuestion"`
	PerQuestionScore int        `json:"perQuestionScore"`
	Questions        []Question `json:"questions"`
}

// QuizResult is the outcome of grading one submission.
type QuizResult struct {
	Level       Level  `json:"level"`
	Score       int    `json:"score"`
	Correct     int    `json:"correctAnswers"`
	Wrong       int    `json:"wrongAnswers"`
	Passed      bool   `json:"passed"`
	Recommended *Level `json:"recommendedLevel,omitempty"`
}
