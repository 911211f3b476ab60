package grpc

import (
	"context"

	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"

	"liyu1981.xyz/ecotrack-service/pkg/eco"
)

const ServiceName = "ecotrack.v1.FootprintService"

// FootprintServiceServer exchanges google.protobuf.Struct messages so clients
// need no generated stubs. Field names match the REST JSON bodies.
type FootprintServiceServer interface {
	CalculateEmissions(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	CalculateOffset(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	CalculatePlasticImpact(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	ClassifyWaste(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	GetEmissionFactors(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
}

type structCall func(srv FootprintServiceServer, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(method string, call structCall) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(FootprintServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: "/" + ServiceName + "/" + method,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(FootprintServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var FootprintServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*FootprintServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CalculateEmissions", Handler: unaryHandler("CalculateEmissions", FootprintServiceServer.CalculateEmissions)},
		{MethodName: "CalculateOffset", Handler: unaryHandler("CalculateOffset", FootprintServiceServer.CalculateOffset)},
		{MethodName: "CalculatePlasticImpact", Handler: unaryHandler("CalculatePlasticImpact", FootprintServiceServer.CalculatePlasticImpact)},
		{MethodName: "ClassifyWaste", Handler: unaryHandler("ClassifyWaste", FootprintServiceServer.ClassifyWaste)},
		{MethodName: "GetEmissionFactors", Handler: unaryHandler("GetEmissionFactors", FootprintServiceServer.GetEmissionFactors)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "ecotrack/v1/footprint.proto",
}

func RegisterFootprintServiceServer(s grpc.ServiceRegistrar, srv FootprintServiceServer) {
	s.RegisterService(&FootprintServiceDesc, srv)
}

type FootprintServer struct {
	Eco              *eco.Eco
	RateLimiterStore *eco.RateLimiterStore
}

func (fs *FootprintServer) GetLimiter(key string) *rate.Limiter {
	if fs.RateLimiterStore == nil {
		return nil
	} else {
		return fs.RateLimiterStore.GetLimiter(key)
	}
}

func (fs *FootprintServer) CheckLimiter(key string) bool {
	limiter := fs.GetLimiter(key)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

// NewServer builds a grpc.Server with the footprint service registered behind
// the rate limit interceptor.
func NewServer(fs *FootprintServer, opts ...grpc.ServerOption) *grpc.Server {
	opts = append(opts, grpc.ChainUnaryInterceptor(fs.CreateMetricsInterceptor(), fs.CreateRateLimitInterceptor()))
	server := grpc.NewServer(opts...)
	RegisterFootprintServiceServer(server, fs)
	return server
}

type FootprintServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewFootprintServiceClient(cc grpc.ClientConnInterface) *FootprintServiceClient {
	return &FootprintServiceClient{cc: cc}
}

func (c *FootprintServiceClient) invoke(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *FootprintServiceClient) CalculateEmissions(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, "CalculateEmissions", in, opts...)
}

func (c *FootprintServiceClient) CalculateOffset(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, "CalculateOffset", in, opts...)
}

func (c *FootprintServiceClient) CalculatePlasticImpact(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, "CalculatePlasticImpact", in, opts...)
}

func (c *FootprintServiceClient) ClassifyWaste(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, "ClassifyWaste", in, opts...)
}

func (c *FootprintServiceClient) GetEmissionFactors(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, "GetEmissionFactors", in, opts...)
}
