package api

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/plfanzen/plfanzen/pkg/metrics"
)

// MetricsInterceptor creates a gRPC unary interceptor that counts and times
// every request. The method label carries the bare method name, the status
// label the canonical gRPC code string.
func MetricsInterceptor() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		timer := metrics.NewTimer()
		resp, err := handler(ctx, req)

		method := methodName(info.FullMethod)
		metrics.APIRequestsTotal.WithLabelValues(method, status.Code(err).String()).Inc()
		timer.ObserveDurationVec(metrics.APIRequestDuration, method)

		return resp, err
	}
}

// methodName extracts the method name from a full path
// (e.g. "/plfanzen_ctf.ChallengesService/ListChallenges" -> "ListChallenges")
func methodName(fullMethod string) string {
	parts := strings.Split(fullMethod, "/")
	if len(parts) < 2 {
		return fullMethod
	}
	return parts[len(parts)-1]
}
