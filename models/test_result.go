package models

// QuestionResult is the server verdict for one question.
type QuestionResult struct {
	QuestionID   int64  `json:"question_id"`
	IsCorrect    bool   `json:"is_correct"`
	PointsEarned int    `json:"points_earned"`
	Feedback     string `json:"feedback,omitempty"`
}

// TestResult is the final outcome of a completed session. It is produced by
// the server and never modified by the client.
type TestResult struct {
	Score           int              `json:"score"`
	TotalPoints     int              `json:"total_points"`
	Feedback        string           `json:"feedback"`
	QuestionResults []QuestionResult `json:"question_results"`
	DurationMillis  int64            `json:"duration_millis"`
}
