package adapter

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-test-prep/internal/logger"
	"github.com/MKhiriev/go-test-prep/internal/utils"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

const (
	authorizationHeader = "authorization"
	requestIDHeader     = "x-request-id"
	clientVersionHeader = "x-client-version"
)

// bearerTokenInterceptor attaches the session token to every call. Calls
// made without a token go out unauthenticated.
func bearerTokenInterceptor(tokens TokenSource) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		if token, ok := tokens.GetToken(ctx); ok && strings.TrimSpace(token) != "" {
			ctx = metadata.AppendToOutgoingContext(ctx, authorizationHeader, "Bearer "+strings.TrimSpace(token))
		}
		return invoker(ctx, method, req, reply, cc, opts...)
	}
}

// requestIDInterceptor tags the call with the request id from ctx or a new
// UUIDv7.
func requestIDInterceptor(ids *utils.UUIDGenerator) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		requestID, ok := utils.GetRequestIDFromContext(ctx)
		if !ok {
			requestID = ids.Generate()
			ctx = utils.WithRequestID(ctx, requestID)
		}
		ctx = metadata.AppendToOutgoingContext(ctx, requestIDHeader, requestID)
		return invoker(ctx, method, req, reply, cc, opts...)
	}
}

func clientVersionInterceptor(version string) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		if version != "" {
			ctx = metadata.AppendToOutgoingContext(ctx, clientVersionHeader, version)
		}
		return invoker(ctx, method, req, reply, cc, opts...)
	}
}

// loggingInterceptor logs the start and the outcome of every call.
func loggingInterceptor(log *logger.Logger) grpc.UnaryClientInterceptor {
	opts := []logging.Option{
		logging.WithLogOnEvents(logging.StartCall, logging.FinishCall),
		logging.WithFieldsFromContext(func(ctx context.Context) logging.Fields {
			if requestID, ok := utils.GetRequestIDFromContext(ctx); ok {
				return logging.Fields{"request_id", requestID}
			}
			return nil
		}),
	}

	return logging.UnaryClientInterceptor(log.GRPCLogger(), opts...)
}
