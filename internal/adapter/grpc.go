package adapter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-test-prep/internal/config"
	"github.com/MKhiriev/go-test-prep/internal/logger"
	"github.com/MKhiriev/go-test-prep/internal/utils"
	"github.com/MKhiriev/go-test-prep/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

type grpcServerAdapter struct {
	conn    *grpc.ClientConn
	timeout time.Duration
	logger  *logger.Logger
}

// NewGRPCServerAdapter constructs the gRPC implementation of [ServerAdapter].
// The connection is created lazily by grpc.NewClient, so an unreachable
// server surfaces as [ErrUnavailable] on the first call, not here.
//
// Every call carries the bearer token tokens holds at that moment.
// Extra dial options are appended after the defaults; tests use them to
// plug in an in-memory listener.
func NewGRPCServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, tokens TokenSource, log *logger.Logger, dialOpts ...grpc.DialOption) (ServerAdapter, error) {
	address := strings.TrimSpace(adapterCfg.GRPCAddress)
	if address == "" {
		return nil, fmt.Errorf("%w: empty grpc address", ErrInvalidAddress)
	}

	a := &grpcServerAdapter{
		timeout: adapterCfg.RequestTimeout,
		logger:  log,
	}

	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(codecName)),
		grpc.WithChainUnaryInterceptor(
			requestIDInterceptor(utils.NewUUIDGenerator()),
			clientVersionInterceptor(appCfg.Version),
			bearerTokenInterceptor(tokens),
			loggingInterceptor(log),
		),
	}
	opts = append(opts, dialOpts...)

	conn, err := grpc.NewClient(address, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	a.conn = conn

	log.Debug().Str("func", "NewGRPCServerAdapter").Str("address", address).Msg("grpc adapter created")

	return a, nil
}

func (g *grpcServerAdapter) Close() error {
	return g.conn.Close()
}

func (g *grpcServerAdapter) Login(ctx context.Context, credentials models.Credentials) (models.AuthTokens, error) {
	var tokens models.AuthTokens
	if err := g.invoke(ctx, methodLogin, credentials, &tokens); err != nil {
		return models.AuthTokens{}, fmt.Errorf("login request: %w", err)
	}
	return tokens, nil
}

func (g *grpcServerAdapter) Register(ctx context.Context, registration models.Registration) (models.AuthTokens, error) {
	req := registerRequest{
		Username: registration.Username,
		Email:    registration.Email,
		Password: registration.Password,
	}

	var tokens models.AuthTokens
	if err := g.invoke(ctx, methodRegister, req, &tokens); err != nil {
		return models.AuthTokens{}, fmt.Errorf("register request: %w", err)
	}
	return tokens, nil
}

func (g *grpcServerAdapter) Refresh(ctx context.Context, refreshToken string) (models.AuthTokens, error) {
	var tokens models.AuthTokens
	if err := g.invoke(ctx, methodRefresh, refreshRequest{RefreshToken: refreshToken}, &tokens); err != nil {
		return models.AuthTokens{}, fmt.Errorf("refresh request: %w", err)
	}
	return tokens, nil
}

func (g *grpcServerAdapter) ListTests(ctx context.Context) ([]models.Test, error) {
	var resp listTestsResponse
	if err := g.invoke(ctx, methodListTests, emptyMessage{}, &resp); err != nil {
		return nil, fmt.Errorf("list tests request: %w", err)
	}
	return resp.Tests, nil
}

func (g *grpcServerAdapter) StartTestSession(ctx context.Context, testID int64) (models.TestSession, error) {
	var session models.TestSession
	if err := g.invoke(ctx, methodStartTestSession, startTestSessionRequest{TestID: testID}, &session); err != nil {
		return models.TestSession{}, fmt.Errorf("start test session request: %w", err)
	}
	return session, nil
}

func (g *grpcServerAdapter) GetTestSession(ctx context.Context, sessionID string) (models.TestSession, error) {
	var session models.TestSession
	if err := g.invoke(ctx, methodGetTestSession, sessionRequest{SessionID: sessionID}, &session); err != nil {
		return models.TestSession{}, fmt.Errorf("get test session request: %w", err)
	}
	return session, nil
}

func (g *grpcServerAdapter) SaveAnswer(ctx context.Context, sessionID string, answer models.Answer) (models.AnswerFeedback, error) {
	var feedback models.AnswerFeedback
	req := saveAnswerRequest{SessionID: sessionID, Answer: answer}
	if err := g.invoke(ctx, methodSaveAnswer, req, &feedback); err != nil {
		return models.AnswerFeedback{}, fmt.Errorf("save answer request: %w", err)
	}
	if feedback.QuestionID == 0 {
		feedback.QuestionID = answer.QuestionID
	}
	return feedback, nil
}

func (g *grpcServerAdapter) CompleteTestSession(ctx context.Context, sessionID string) (models.TestResult, error) {
	var result models.TestResult
	if err := g.invoke(ctx, methodCompleteTestSession, sessionRequest{SessionID: sessionID}, &result); err != nil {
		return models.TestResult{}, fmt.Errorf("complete test session request: %w", err)
	}
	return result, nil
}

func (g *grpcServerAdapter) GetUserInfo(ctx context.Context) (models.UserInfo, error) {
	var info models.UserInfo
	if err := g.invoke(ctx, methodGetUserInfo, emptyMessage{}, &info); err != nil {
		return models.UserInfo{}, fmt.Errorf("get user info request: %w", err)
	}
	return info, nil
}

func (g *grpcServerAdapter) GetPreferences(ctx context.Context) (models.UserPreferences, error) {
	var prefs models.UserPreferences
	if err := g.invoke(ctx, methodGetPreferences, emptyMessage{}, &prefs); err != nil {
		return models.UserPreferences{}, fmt.Errorf("get preferences request: %w", err)
	}
	return prefs, nil
}

func (g *grpcServerAdapter) UpdatePreferences(ctx context.Context, prefs models.UserPreferences) (models.UserPreferences, error) {
	var updated models.UserPreferences
	if err := g.invoke(ctx, methodUpdatePreferences, prefs, &updated); err != nil {
		return models.UserPreferences{}, fmt.Errorf("update preferences request: %w", err)
	}
	return updated, nil
}

func (g *grpcServerAdapter) GetLeaderboard(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	var resp leaderboardResponse
	if err := g.invoke(ctx, methodGetLeaderboard, leaderboardRequest{Limit: limit}, &resp); err != nil {
		return nil, fmt.Errorf("get leaderboard request: %w", err)
	}
	return resp.Entries, nil
}

func (g *grpcServerAdapter) GetArticles(ctx context.Context, filter models.ArticlesFilter) ([]models.Article, error) {
	var resp articlesResponse
	if err := g.invoke(ctx, methodGetArticles, filter, &resp); err != nil {
		return nil, fmt.Errorf("get articles request: %w", err)
	}
	return resp.Articles, nil
}

func (g *grpcServerAdapter) LikeArticle(ctx context.Context, articleID int64, liked bool) error {
	req := likeArticleRequest{ArticleID: articleID, Liked: liked}
	if err := g.invoke(ctx, methodLikeArticle, req, &emptyMessage{}); err != nil {
		return fmt.Errorf("like article request: %w", err)
	}
	return nil
}

func (g *grpcServerAdapter) MarkArticleViewed(ctx context.Context, articleID int64) error {
	if err := g.invoke(ctx, methodMarkArticleViewed, articleRequest{ArticleID: articleID}, &emptyMessage{}); err != nil {
		return fmt.Errorf("mark article viewed request: %w", err)
	}
	return nil
}

// invoke performs one unary call bounded by the configured request timeout
// and maps its failure to a sentinel.
func (g *grpcServerAdapter) invoke(ctx context.Context, method string, req, reply any) error {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	return mapGRPCError(g.conn.Invoke(ctx, method, req, reply))
}
