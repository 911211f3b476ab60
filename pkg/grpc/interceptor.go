package grpc

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"liyu1981.xyz/ecotrack-service/pkg/observability"
)

// limiterKey is the request's userId, or the peer address for anonymous
// calls.
func limiterKey(ctx context.Context, req any) string {
	if in, ok := req.(*structpb.Struct); ok {
		if v, ok := in.GetFields()["userId"]; ok && v.GetStringValue() != "" {
			return v.GetStringValue()
		}
	}
	if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
		return "peer:" + p.Addr.String()
	}
	return "peer:unknown"
}

func (fs *FootprintServer) CreateRateLimitInterceptor() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		key := limiterKey(ctx, req)
		if !fs.CheckLimiter(key) {
			grpcLogger(info.FullMethod).Debug("Rate limited", zap.String("key", key))
			return nil, status.Errorf(codes.ResourceExhausted, "rate limit exceeded")
		}

		return handler(ctx, req)
	}
}

func (fs *FootprintServer) CreateMetricsInterceptor() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		resp, err := handler(ctx, req)
		observability.RecordGRPCRequest(info.FullMethod, status.Code(err).String())
		return resp, err
	}
}
