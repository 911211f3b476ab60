package grpc

import (
	"context"
	"fmt"
	"net"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"liyu1981.xyz/ecotrack-service/pkg/common"
	"liyu1981.xyz/ecotrack-service/pkg/db"
	"liyu1981.xyz/ecotrack-service/pkg/eco"
	"liyu1981.xyz/ecotrack-service/pkg/eco/mocks"
	_ "liyu1981.xyz/ecotrack-service/pkg/testing"
)

const bufSize = 1024 * 1024

func startTestServer(t *testing.T, limiterStore *eco.RateLimiterStore) (*FootprintServiceClient, *FootprintServer) {
	listener := bufconn.Listen(bufSize)

	ecoCore := eco.New(*db.GetInstance(db.UseMemorySqliteDialector()), nil, eco.DefaultThresholds())
	footprintServer := &FootprintServer{Eco: ecoCore, RateLimiterStore: limiterStore}
	server := NewServer(footprintServer)

	go func() {
		_ = server.Serve(listener)
	}()

	conn, err := grpc.DialContext(context.Background(), "bufnet",
		grpc.WithContextDialer(func(ctx context.Context, s string) (net.Conn, error) {
			return listener.Dial()
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		server.Stop()
	})

	return NewFootprintServiceClient(conn), footprintServer
}

func mustStruct(t *testing.T, m map[string]any) *structpb.Struct {
	s, err := structpb.NewStruct(m)
	require.NoError(t, err)
	return s
}

func TestCalculateEmissions(t *testing.T) {
	common.SetTestLoggerNop()
	client, _ := startTestServer(t, nil)

	resp, err := client.CalculateEmissions(context.Background(), mustStruct(t, map[string]any{
		"activityType":  "transportation",
		"transportMode": "car",
		"distance":      100,
	}))
	require.NoError(t, err)
	assert.InDelta(t, 19.2, resp.Fields["carbonEmissions"].GetNumberValue(), 1e-9)

	resp, err = client.CalculateEmissions(context.Background(), mustStruct(t, map[string]any{
		"activityType":  "waste",
		"recycledWaste": 10,
	}))
	require.NoError(t, err)
	assert.Equal(t, 0.0, resp.Fields["carbonEmissions"].GetNumberValue())
}

func TestCalculateEmissions_InvalidArgument(t *testing.T) {
	common.SetTestLoggerNop()
	client, _ := startTestServer(t, nil)

	for _, in := range []map[string]any{
		{},
		{"activityType": "spaceship"},
		{"activityType": "energy", "electricityUsage": -1},
	} {
		_, err := client.CalculateEmissions(context.Background(), mustStruct(t, in))
		require.Error(t, err, "input %v", in)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	}
}

func TestCalculateOffsetAndPlasticImpact(t *testing.T) {
	common.SetTestLoggerNop()
	client, _ := startTestServer(t, nil)

	resp, err := client.CalculateOffset(context.Background(), mustStruct(t, map[string]any{
		"energySource":    "biomass",
		"energyGenerated": 40,
	}))
	require.NoError(t, err)
	assert.InDelta(t, 12.0, resp.Fields["carbonOffset"].GetNumberValue(), 1e-9)

	_, err = client.CalculateOffset(context.Background(), mustStruct(t, map[string]any{"energySource": "coal"}))
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	resp, err = client.CalculatePlasticImpact(context.Background(), mustStruct(t, map[string]any{
		"plasticType": "single_use_plastic",
		"quantity":    3,
		"recycled":    false,
	}))
	require.NoError(t, err)
	assert.InDelta(t, 90.0, resp.Fields["environmentalImpact"].GetNumberValue(), 1e-9)
}

func TestCalculateOffsetAndPlasticImpact_MissingAmount(t *testing.T) {
	common.SetTestLoggerNop()
	client, _ := startTestServer(t, nil)

	_, err := client.CalculateOffset(context.Background(), mustStruct(t, map[string]any{"energySource": "solar"}))
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = client.CalculatePlasticImpact(context.Background(), mustStruct(t, map[string]any{"plasticType": "PET"}))
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	resp, err := client.CalculatePlasticImpact(context.Background(), mustStruct(t, map[string]any{
		"plasticType": "PET",
		"quantity":    0,
	}))
	require.NoError(t, err)
	assert.Equal(t, 0.0, resp.Fields["environmentalImpact"].GetNumberValue())
}

func TestClassifyWaste(t *testing.T) {
	common.SetTestLoggerNop()
	client, fs := startTestServer(t, nil)

	_, err := fs.Eco.Waste.SeedWasteTypes(context.Background())
	require.NoError(t, err)

	resp, err := client.ClassifyWaste(context.Background(), mustStruct(t, map[string]any{
		"wasteDescription": "Batteries",
	}))
	require.NoError(t, err)
	assert.Equal(t, "database", resp.Fields["source"].GetStringValue())
	assert.Equal(t, "hazardous", resp.Fields["category"].GetStringValue())

	_, err = client.ClassifyWaste(context.Background(), mustStruct(t, map[string]any{}))
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestClassifyWaste_StoreError(t *testing.T) {
	common.SetTestLoggerNop()
	client, fs := startTestServer(t, nil)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockIWaste := mocks.NewMockIWaste(ctrl)
	fs.Eco.Waste = mockIWaste
	mockIWaste.EXPECT().
		ClassifyWaste(gomock.Any(), gomock.Eq("mystery")).
		Return(nil, fmt.Errorf("just causing error")).
		Times(1)

	_, err := client.ClassifyWaste(context.Background(), mustStruct(t, map[string]any{
		"wasteDescription": "mystery",
	}))
	assert.Equal(t, codes.Internal, status.Code(err))
}

func TestGetEmissionFactors(t *testing.T) {
	common.SetTestLoggerNop()
	client, _ := startTestServer(t, nil)

	resp, err := client.GetEmissionFactors(context.Background(), &structpb.Struct{})
	require.NoError(t, err)

	transportation := resp.Fields["transportation"].GetStructValue()
	require.NotNil(t, transportation)
	assert.InDelta(t, 0.192, transportation.Fields["car"].GetNumberValue(), 1e-9)
	assert.InDelta(t, -0.3, resp.Fields["renewable"].GetStructValue().Fields["biomass"].GetNumberValue(), 1e-9)
}

func TestRateLimitInterceptor(t *testing.T) {
	common.SetTestLoggerNop()

	limiterStore := eco.NewRateLimiterStore(2, 2) // 2 req/sec per user, burst 2
	client, _ := startTestServer(t, limiterStore)

	ctx := context.Background()
	userID := uuid.NewString()
	req := mustStruct(t, map[string]any{
		"userId":          userID,
		"energySource":    "solar",
		"energyGenerated": 10,
	})

	// First 2 requests should pass
	for i := range 2 {
		_, err := client.CalculateOffset(ctx, req)
		require.NoError(t, err, "expected request %d to pass", i+1)
	}

	// 3rd request should fail immediately
	_, err := client.CalculateOffset(ctx, req)
	require.Error(t, err, "expected third request to be rate limited")
	assert.Equal(t, codes.ResourceExhausted, status.Code(err))

	// another user is unaffected
	_, err = client.CalculateOffset(ctx, mustStruct(t, map[string]any{
		"userId":          uuid.NewString(),
		"energySource":    "solar",
		"energyGenerated": 10,
	}))
	require.NoError(t, err)
}

func TestLimiterKey(t *testing.T) {
	assert.Equal(t, "u1", limiterKey(context.Background(), mustStruct(t, map[string]any{"userId": "u1"})))
	assert.Equal(t, "peer:unknown", limiterKey(context.Background(), mustStruct(t, map[string]any{})))
	assert.Equal(t, "peer:unknown", limiterKey(context.Background(), "not a struct"))
}
