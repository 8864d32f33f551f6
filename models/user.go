package models

// Credentials is the login form payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the sign-up form payload.
type Registration struct {
	Username             string `json:"username"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"-"`
}

// AuthTokens is returned by the auth service after login, registration or
// token refresh.
type AuthTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	Username     string `json:"username,omitempty"`
}

// UserInfo is the public profile of a user as served by the backend.
type UserInfo struct {
	UserID         int64  `json:"user_id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	AvatarURL      string `json:"avatar_url,omitempty"`
	CompletedTests int    `json:"completed_tests"`
	TotalScore     int    `json:"total_score"`
}

// LeaderboardEntry is one ranked row of the global leaderboard.
type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Score    int    `json:"score"`
}
