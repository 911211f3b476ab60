package grpc

import (
	"context"
	"encoding/json"
	"errors"

	z "github.com/Oudwins/zog"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"liyu1981.xyz/ecotrack-service/pkg/common"
	"liyu1981.xyz/ecotrack-service/pkg/eco"
	"liyu1981.xyz/ecotrack-service/pkg/footprint"
	"liyu1981.xyz/ecotrack-service/pkg/models"
)

type emissionsRequest struct {
	ActivityType     string
	TransportMode    string
	Distance         float64
	ElectricityUsage float64
	GasUsage         float64
	MeatConsumption  float64
	VegetarianMeals  float64
	WasteGenerated   float64
	RecycledWaste    float64
	WaterUsage       float64
}

func nonNegative() *z.NumberSchema[float64] {
	return z.Float64().GTE(0)
}

var emissionsRequestSchema = z.Struct(z.Shape{
	"activityType":     z.String().Required().OneOf(models.Values(models.AllActivityTypes)),
	"transportMode":    z.String().OneOf(models.Values(models.AllTransportModes)),
	"distance":         nonNegative(),
	"electricityUsage": nonNegative(),
	"gasUsage":         nonNegative(),
	"meatConsumption":  nonNegative(),
	"vegetarianMeals":  nonNegative(),
	"wasteGenerated":   nonNegative(),
	"recycledWaste":    nonNegative(),
	"waterUsage":       nonNegative(),
})

type offsetRequest struct {
	EnergySource    string
	EnergyGenerated float64
}

var offsetRequestSchema = z.Struct(z.Shape{
	"energySource":    z.String().Required().OneOf(models.Values(models.AllEnergySources)),
	"energyGenerated": nonNegative().Required(),
})

type plasticImpactRequest struct {
	PlasticType string
	Quantity    float64
	Recycled    bool
}

var plasticImpactRequestSchema = z.Struct(z.Shape{
	"plasticType": z.String().Required().OneOf(models.Values(models.AllPlasticTypes)),
	"quantity":    nonNegative().Required(),
	"recycled":    z.Bool(),
})

type classifyRequest struct {
	WasteDescription string
}

var classifyRequestSchema = z.Struct(z.Shape{
	"wasteDescription": z.String().Required(),
})

func grpcLogger(method string) *zap.Logger {
	return common.GetLoggerWith(common.LoggerNameGrpcServer, zap.String("method", method))
}

func invalidArgument(issues z.ZogIssueMap) error {
	return status.Errorf(codes.InvalidArgument, "validation error: %v", issues)
}

// toStruct round-trips v through JSON so struct tags decide the field names.
func toStruct(v any) (*structpb.Struct, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode response: %v", err)
	}
	out := &structpb.Struct{}
	if err := protojson.Unmarshal(raw, out); err != nil {
		return nil, status.Errorf(codes.Internal, "encode response: %v", err)
	}
	return out, nil
}

func (fs *FootprintServer) CalculateEmissions(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req emissionsRequest
	if issues := emissionsRequestSchema.Parse(in.AsMap(), &req); issues != nil {
		return nil, invalidArgument(issues)
	}

	emissions := footprint.CalculateCarbonEmissions(&models.Activity{
		ActivityType:     models.ActivityType(req.ActivityType),
		TransportMode:    models.TransportMode(req.TransportMode),
		Distance:         req.Distance,
		ElectricityUsage: req.ElectricityUsage,
		GasUsage:         req.GasUsage,
		MeatConsumption:  req.MeatConsumption,
		VegetarianMeals:  req.VegetarianMeals,
		WasteGenerated:   req.WasteGenerated,
		RecycledWaste:    req.RecycledWaste,
		WaterUsage:       req.WaterUsage,
	})

	return structpb.NewStruct(map[string]any{
		"activityType":    req.ActivityType,
		"carbonEmissions": emissions,
	})
}

func (fs *FootprintServer) CalculateOffset(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req offsetRequest
	if issues := offsetRequestSchema.Parse(in.AsMap(), &req); issues != nil {
		return nil, invalidArgument(issues)
	}

	return structpb.NewStruct(map[string]any{
		"energySource": req.EnergySource,
		"carbonOffset": footprint.CalculateRenewableOffset(req.EnergyGenerated, models.EnergySource(req.EnergySource)),
	})
}

func (fs *FootprintServer) CalculatePlasticImpact(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req plasticImpactRequest
	if issues := plasticImpactRequestSchema.Parse(in.AsMap(), &req); issues != nil {
		return nil, invalidArgument(issues)
	}

	return structpb.NewStruct(map[string]any{
		"plasticType":         req.PlasticType,
		"environmentalImpact": footprint.CalculatePlasticImpact(req.Quantity, models.PlasticType(req.PlasticType), req.Recycled),
	})
}

func (fs *FootprintServer) ClassifyWaste(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req classifyRequest
	if issues := classifyRequestSchema.Parse(in.AsMap(), &req); issues != nil {
		return nil, invalidArgument(issues)
	}

	result, err := fs.Eco.Waste.ClassifyWaste(ctx, req.WasteDescription)
	if errors.Is(err, eco.ErrInvalidInput) {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if err != nil {
		grpcLogger("ClassifyWaste").Error("Failed to classify waste", zap.Error(err))
		return nil, status.Error(codes.Internal, err.Error())
	}

	out, err := toStruct(result)
	if err != nil {
		return nil, err
	}
	out.Fields["source"] = structpb.NewStringValue(result.Source)
	return out, nil
}

func (fs *FootprintServer) GetEmissionFactors(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	return toStruct(footprint.Factors())
}
