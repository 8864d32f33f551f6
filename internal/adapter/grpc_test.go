// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-test-prep/internal/config"
	"github.com/MKhiriev/go-test-prep/internal/logger"
	"github.com/MKhiriev/go-test-prep/internal/utils"
	"github.com/MKhiriev/go-test-prep/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func TestNewGRPCServerAdapter_EmptyAddress(t *testing.T) {
	_, err := NewGRPCServerAdapter(config.ClientAdapter{}, config.ClientApp{}, &tokenBox{}, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

// ── Auth ────────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	a := newFakeBackend(t, map[string]unaryHandler{
		methodLogin: func(ctx context.Context, decode func(any) error) (any, error) {
			var creds models.Credentials
			require.NoError(t, decode(&creds))
			assert.Equal(t, "ann@example.com", creds.Email)
			assert.Equal(t, "Secret#123", creds.Password)

			md, _ := metadata.FromIncomingContext(ctx)
			assert.Empty(t, md.Get(authorizationHeader), "login must not carry a token")
			return models.AuthTokens{AccessToken: "access", RefreshToken: "refresh", Username: "ann"}, nil
		},
	})

	tokens, err := a.Login(context.Background(), models.Credentials{Email: "ann@example.com", Password: "Secret#123"})

	require.NoError(t, err)
	assert.Equal(t, models.AuthTokens{AccessToken: "access", RefreshToken: "refresh", Username: "ann"}, tokens)
}

func TestLogin_Unauthenticated(t *testing.T) {
	a := newFakeBackend(t, map[string]unaryHandler{
		methodLogin: func(context.Context, func(any) error) (any, error) {
			return nil, status.Error(codes.Unauthenticated, "bad credentials")
		},
	})

	_, err := a.Login(context.Background(), models.Credentials{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestRegister_SendsPasswordButNotConfirmation(t *testing.T) {
	a := newFakeBackend(t, map[string]unaryHandler{
		methodRegister: func(_ context.Context, decode func(any) error) (any, error) {
			var raw map[string]any
			require.NoError(t, decode(&raw))
			assert.Equal(t, "Secret#123", raw["password"])
			assert.NotContains(t, raw, "password_confirmation")
			return models.AuthTokens{AccessToken: "access"}, nil
		},
	})

	tokens, err := a.Register(context.Background(), models.Registration{
		Username: "ann", Email: "ann@example.com", Password: "Secret#123", PasswordConfirmation: "Secret#123",
	})

	require.NoError(t, err)
	assert.Equal(t, "access", tokens.AccessToken)
}

func TestRegister_Conflict(t *testing.T) {
	a := newFakeBackend(t, map[string]unaryHandler{
		methodRegister: func(context.Context, func(any) error) (any, error) {
			return nil, status.Error(codes.AlreadyExists, "email taken")
		},
	})

	_, err := a.Register(context.Background(), models.Registration{})
	assert.ErrorIs(t, err, ErrConflict)
}

// ── Metadata ────────────────────────────────────────────────────────────────

func TestCalls_CarryTokenRequestIDAndVersion(t *testing.T) {
	tokens := &tokenBox{token: "  tok "}
	a := newFakeBackendWithTokens(t, tokens, map[string]unaryHandler{
		methodGetUserInfo: func(ctx context.Context, decode func(any) error) (any, error) {
			md, ok := metadata.FromIncomingContext(ctx)
			require.True(t, ok)
			assert.Equal(t, []string{"Bearer tok"}, md.Get(authorizationHeader))
			assert.Equal(t, []string{"req-42"}, md.Get(requestIDHeader))
			assert.Equal(t, []string{"1.2.3"}, md.Get(clientVersionHeader))
			return models.UserInfo{UserID: 1, Username: "ann"}, nil
		},
	})
	ctx := utils.WithRequestID(context.Background(), "req-42")
	info, err := a.GetUserInfo(ctx)

	require.NoError(t, err)
	assert.Equal(t, "ann", info.Username)
}

func TestCalls_FollowTokenChanges(t *testing.T) {
	var seen []string
	tokens := &tokenBox{}
	a := newFakeBackendWithTokens(t, tokens, map[string]unaryHandler{
		methodGetUserInfo: func(ctx context.Context, _ func(any) error) (any, error) {
			md, _ := metadata.FromIncomingContext(ctx)
			seen = append(seen, strings.Join(md.Get(authorizationHeader), ","))
			return models.UserInfo{UserID: 1}, nil
		},
	})
	ctx := context.Background()

	_, err := a.GetUserInfo(ctx)
	require.NoError(t, err)
	tokens.Set("first")
	_, err = a.GetUserInfo(ctx)
	require.NoError(t, err)
	tokens.Set("second")
	_, err = a.GetUserInfo(ctx)
	require.NoError(t, err)
	tokens.Set("")
	_, err = a.GetUserInfo(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"", "Bearer first", "Bearer second", ""}, seen)
}

func TestCalls_GenerateRequestID(t *testing.T) {
	a := newFakeBackend(t, map[string]unaryHandler{
		methodListTests: func(ctx context.Context, _ func(any) error) (any, error) {
			md, _ := metadata.FromIncomingContext(ctx)
			require.Len(t, md.Get(requestIDHeader), 1)
			assert.NotEmpty(t, md.Get(requestIDHeader)[0])
			return listTestsResponse{Tests: []models.Test{{TestID: 1, Title: "Go basics"}}}, nil
		},
	})

	tests, err := a.ListTests(context.Background())

	require.NoError(t, err)
	require.Len(t, tests, 1)
	assert.Equal(t, "Go basics", tests[0].Title)
}

// ── Tests service ───────────────────────────────────────────────────────────

func TestGetTestSession_DecodesQuestions(t *testing.T) {
	sample := "fmt.Println(1)"
	want := models.TestSession{
		SessionID: "s-1",
		TestID:    3,
		Questions: []models.Question{
			{ID: 1, Text: "Pick", Type: models.MultipleChoice, Options: []string{"a", "b"}, CorrectOptions: []int{0, 1}, Points: 10},
			{ID: 2, Text: "Explain", Type: models.CodeQuestion, SampleCode: &sample, Points: 15},
		},
		StartedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	a := newFakeBackend(t, map[string]unaryHandler{
		methodGetTestSession: func(_ context.Context, decode func(any) error) (any, error) {
			var req sessionRequest
			require.NoError(t, decode(&req))
			assert.Equal(t, "s-1", req.SessionID)
			return want, nil
		},
	})

	got, err := a.GetTestSession(context.Background(), "s-1")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetTestSession_NotFound(t *testing.T) {
	a := newFakeBackend(t, map[string]unaryHandler{
		methodGetTestSession: func(context.Context, func(any) error) (any, error) {
			return nil, status.Error(codes.NotFound, "no such session")
		},
	})

	_, err := a.GetTestSession(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSaveAnswer_FillsQuestionID(t *testing.T) {
	a := newFakeBackend(t, map[string]unaryHandler{
		methodSaveAnswer: func(_ context.Context, decode func(any) error) (any, error) {
			var req saveAnswerRequest
			require.NoError(t, decode(&req))
			assert.Equal(t, "s-1", req.SessionID)
			assert.Equal(t, []int{0, 1}, req.Answer.SelectedOptions)
			return emptyMessage{}, nil
		},
	})

	feedback, err := a.SaveAnswer(context.Background(), "s-1", models.Answer{QuestionID: 7, SelectedOptions: []int{0, 1}})

	require.NoError(t, err)
	assert.Equal(t, int64(7), feedback.QuestionID)
	assert.Nil(t, feedback.IsCorrect)
}

func TestCompleteTestSession_Success(t *testing.T) {
	a := newFakeBackend(t, map[string]unaryHandler{
		methodCompleteTestSession: func(context.Context, func(any) error) (any, error) {
			return models.TestResult{Score: 25, TotalPoints: 25, Feedback: "Perfect score!"}, nil
		},
	})

	res, err := a.CompleteTestSession(context.Background(), "s-1")

	require.NoError(t, err)
	assert.Equal(t, 25, res.Score)
	assert.Equal(t, "Perfect score!", res.Feedback)
}

// ── Articles / leaderboard ──────────────────────────────────────────────────

func TestArticlesAndLeaderboard(t *testing.T) {
	a := newFakeBackend(t, map[string]unaryHandler{
		methodGetArticles: func(_ context.Context, decode func(any) error) (any, error) {
			var filter models.ArticlesFilter
			require.NoError(t, decode(&filter))
			assert.Equal(t, []models.Direction{models.DirectionBackend}, filter.Directions)
			return articlesResponse{Articles: []models.Article{{ArticleID: 1, Title: "Channels"}}}, nil
		},
		methodLikeArticle: func(_ context.Context, decode func(any) error) (any, error) {
			var req likeArticleRequest
			require.NoError(t, decode(&req))
			assert.Equal(t, likeArticleRequest{ArticleID: 1, Liked: true}, req)
			return emptyMessage{}, nil
		},
		methodGetLeaderboard: func(_ context.Context, decode func(any) error) (any, error) {
			var req leaderboardRequest
			require.NoError(t, decode(&req))
			assert.Equal(t, 10, req.Limit)
			return leaderboardResponse{Entries: []models.LeaderboardEntry{{Rank: 1, Username: "ann", Score: 99}}}, nil
		},
	})
	ctx := context.Background()

	articles, err := a.GetArticles(ctx, models.ArticlesFilter{Directions: []models.Direction{models.DirectionBackend}})
	require.NoError(t, err)
	require.Len(t, articles, 1)

	require.NoError(t, a.LikeArticle(ctx, 1, true))

	entries, err := a.GetLeaderboard(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 99, entries[0].Score)
}

func TestUnknownMethodMapsToInternal(t *testing.T) {
	a := newFakeBackend(t, map[string]unaryHandler{
		methodGetUserInfo: func(context.Context, func(any) error) (any, error) {
			return models.UserInfo{}, nil
		},
	})

	_, err := a.GetPreferences(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)
}
