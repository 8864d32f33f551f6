package adapter

import (
	"context"
	"net"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-test-prep/internal/config"
	"github.com/MKhiriev/go-test-prep/internal/logger"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/test/bufconn"
)

// unaryHandler serves one method of the fake backend. decode fills the
// request value; the returned value is sent back through the JSON codec.
type unaryHandler func(ctx context.Context, decode func(any) error) (any, error)

// tokenBox is a settable [TokenSource].
type tokenBox struct {
	mu    sync.Mutex
	token string
}

func (b *tokenBox) Set(token string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.token = token
}

func (b *tokenBox) GetToken(context.Context) (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.token, b.token != ""
}

// newFakeBackend starts an in-memory gRPC server answering the given full
// method names and returns an adapter connected to it.
func newFakeBackend(t *testing.T, handlers map[string]unaryHandler) *grpcServerAdapter {
	t.Helper()
	return newFakeBackendWithTokens(t, &tokenBox{}, handlers)
}

func newFakeBackendWithTokens(t *testing.T, tokens TokenSource, handlers map[string]unaryHandler) *grpcServerAdapter {
	t.Helper()

	listener := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()

	services := map[string]*grpc.ServiceDesc{}
	for fullMethod, handler := range handlers {
		parts := strings.Split(strings.TrimPrefix(fullMethod, "/"), "/")
		require.Len(t, parts, 2, "bad method name %q", fullMethod)

		desc, ok := services[parts[0]]
		if !ok {
			desc = &grpc.ServiceDesc{ServiceName: parts[0], HandlerType: (*any)(nil)}
			services[parts[0]] = desc
		}

		h := handler
		desc.Methods = append(desc.Methods, grpc.MethodDesc{
			MethodName: parts[1],
			Handler: func(_ any, ctx context.Context, dec func(any) error, _ grpc.UnaryServerInterceptor) (any, error) {
				return h(ctx, dec)
			},
		})
	}
	for _, desc := range services {
		srv.RegisterService(desc, struct{}{})
	}

	go func() { _ = srv.Serve(listener) }()
	t.Cleanup(srv.Stop)

	cfg := config.ClientAdapter{GRPCAddress: "passthrough:///bufnet", RequestTimeout: 2 * time.Second}
	a, err := NewGRPCServerAdapter(cfg, config.ClientApp{Version: "1.2.3"}, tokens, logger.Nop(),
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	return a.(*grpcServerAdapter)
}
