package adapter

import "github.com/MKhiriev/go-test-prep/models"

// Full method names of the backend services.
const (
	methodLogin    = "/testprep.v1.AuthService/Login"
	methodRegister = "/testprep.v1.AuthService/Register"
	methodRefresh  = "/testprep.v1.AuthService/Refresh"

	methodListTests           = "/testprep.v1.TestsService/ListTests"
	methodStartTestSession    = "/testprep.v1.TestsService/StartTestSession"
	methodGetTestSession      = "/testprep.v1.TestsService/GetTestSession"
	methodSaveAnswer          = "/testprep.v1.TestsService/SaveAnswer"
	methodCompleteTestSession = "/testprep.v1.TestsService/CompleteTestSession"

	methodGetUserInfo       = "/testprep.v1.UserInfoService/GetUserInfo"
	methodGetPreferences    = "/testprep.v1.UserInfoService/GetPreferences"
	methodUpdatePreferences = "/testprep.v1.UserInfoService/UpdatePreferences"
	methodGetLeaderboard    = "/testprep.v1.UserInfoService/GetLeaderboard"

	methodGetArticles       = "/testprep.v1.ArticlesService/GetArticles"
	methodLikeArticle       = "/testprep.v1.ArticlesService/LikeArticle"
	methodMarkArticleViewed = "/testprep.v1.ArticlesService/MarkArticleViewed"
)

type emptyMessage struct{}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// registerRequest is sent instead of models.Registration, which hides the
// confirmation from JSON.
type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type listTestsResponse struct {
	Tests []models.Test `json:"tests"`
}

type startTestSessionRequest struct {
	TestID int64 `json:"test_id"`
}

type sessionRequest struct {
	SessionID string `json:"session_id"`
}

type saveAnswerRequest struct {
	SessionID string        `json:"session_id"`
	Answer    models.Answer `json:"answer"`
}

type leaderboardRequest struct {
	Limit int `json:"limit"`
}

type leaderboardResponse struct {
	Entries []models.LeaderboardEntry `json:"entries"`
}

type articlesResponse struct {
	Articles []models.Article `json:"articles"`
}

type likeArticleRequest struct {
	ArticleID int64 `json:"article_id"`
	Liked     bool  `json:"liked"`
}

type articleRequest struct {
	ArticleID int64 `json:"article_id"`
}
