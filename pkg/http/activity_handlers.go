package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
	"github.com/gin-gonic/gin"

	"liyu1981.xyz/ecotrack-service/pkg/eco"
	"liyu1981.xyz/ecotrack-service/pkg/footprint"
	"liyu1981.xyz/ecotrack-service/pkg/models"
)

type ActivityRequest struct {
	Date             time.Time `json:"date"`
	ActivityType     string    `json:"activityType"`
	TransportMode    string    `json:"transportMode"`
	Distance         float64   `json:"distance"`
	ElectricityUsage float64   `json:"electricityUsage"`
	GasUsage         float64   `json:"gasUsage"`
	MeatConsumption  float64   `json:"meatConsumption"`
	VegetarianMeals  float64   `json:"vegetarianMeals"`
	WasteGenerated   float64   `json:"wasteGenerated"`
	RecycledWaste    float64   `json:"recycledWaste"`
	WaterUsage       float64   `json:"waterUsage"`
	Description      string    `json:"description"`
}

func nonNegative(field string) *z.NumberSchema[float64] {
	return z.Float64().GTE(0, z.Message(field+" must be a positive number"))
}

func activityShape(typeRequired bool) z.Shape {
	activityType := z.String().OneOf(models.Values(models.AllActivityTypes), z.Message("Invalid activity type"))
	if typeRequired {
		activityType = activityType.Required(z.Message("Activity type is required"))
	}
	return z.Shape{
		"date":             z.Time(),
		"activityType":     activityType,
		"transportMode":    z.String().OneOf(models.Values(models.AllTransportModes), z.Message("Invalid transport mode")),
		"distance":         nonNegative("Distance"),
		"electricityUsage": nonNegative("Electricity usage"),
		"gasUsage":         nonNegative("Gas usage"),
		"meatConsumption":  nonNegative("Meat consumption"),
		"vegetarianMeals":  nonNegative("Vegetarian meals"),
		"wasteGenerated":   nonNegative("Waste generated"),
		"recycledWaste":    nonNegative("Recycled waste"),
		"waterUsage":       nonNegative("Water usage"),
		"description":      z.String().Max(500),
	}
}

var (
	activityRequestSchema = z.Struct(activityShape(true))
	activityPatchSchema   = z.Struct(activityShape(false))
)

func (req *ActivityRequest) toModel() *models.Activity {
	return &models.Activity{
		Date:             req.Date,
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
		Description:      req.Description,
	}
}

// toPatch keeps only the fields named in the request body.
func (req *ActivityRequest) toPatch(present map[string]json.RawMessage) *eco.ActivityPatch {
	patch := &eco.ActivityPatch{}
	has := func(key string) bool { _, ok := present[key]; return ok }

	if has("date") {
		patch.Date = &req.Date
	}
	if has("activityType") {
		t := models.ActivityType(req.ActivityType)
		patch.ActivityType = &t
	}
	if has("transportMode") {
		m := models.TransportMode(req.TransportMode)
		patch.TransportMode = &m
	}
	floats := map[string]**float64{
		"distance":         &patch.Distance,
		"electricityUsage": &patch.ElectricityUsage,
		"gasUsage":         &patch.GasUsage,
		"meatConsumption":  &patch.MeatConsumption,
		"vegetarianMeals":  &patch.VegetarianMeals,
		"wasteGenerated":   &patch.WasteGenerated,
		"recycledWaste":    &patch.RecycledWaste,
		"waterUsage":       &patch.WaterUsage,
	}
	values := map[string]float64{
		"distance":         req.Distance,
		"electricityUsage": req.ElectricityUsage,
		"gasUsage":         req.GasUsage,
		"meatConsumption":  req.MeatConsumption,
		"vegetarianMeals":  req.VegetarianMeals,
		"wasteGenerated":   req.WasteGenerated,
		"recycledWaste":    req.RecycledWaste,
		"waterUsage":       req.WaterUsage,
	}
	for key, dst := range floats {
		if has(key) {
			v := values[key]
			*dst = &v
		}
	}
	if has("description") {
		patch.Description = &req.Description
	}
	return patch
}

func (rs *RestfulServer) PostActivity(c *gin.Context) {
	var req ActivityRequest
	if errs := activityRequestSchema.Parse(zhttp.Request(c.Request), &req); errs != nil {
		failValidation(c, errs)
		return
	}

	activity, err := rs.Eco.Activity.CreateActivity(c.Request.Context(), callerID(c), req.toModel())
	if err != nil {
		failWith(c, err, "Error adding activity")
		return
	}

	succeed(c, http.StatusCreated, gin.H{
		"message":         "Activity added successfully",
		"activity":        activity,
		"carbonEmissions": activity.CarbonEmissions,
	})
}

func (rs *RestfulServer) GetActivities(c *gin.Context) {
	lf, valid := listFilter(c)
	if !valid {
		return
	}

	page, err := rs.Eco.Activity.ListActivities(c.Request.Context(), callerID(c), eco.ActivityFilter{
		ListFilter:   lf,
		ActivityType: models.ActivityType(c.Query("activityType")),
	})
	if err != nil {
		failWith(c, err, "Error fetching activities")
		return
	}

	succeed(c, http.StatusOK, pageBody(page, "activities"))
}

func (rs *RestfulServer) PutActivity(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	var present map[string]json.RawMessage
	if err := json.Unmarshal(body, &present); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(body))

	var req ActivityRequest
	if errs := activityPatchSchema.Parse(zhttp.Request(c.Request), &req); errs != nil {
		failValidation(c, errs)
		return
	}

	activity, err := rs.Eco.Activity.UpdateActivity(c.Request.Context(), callerID(c), id, req.toPatch(present))
	if err != nil {
		failWith(c, err, "Error updating activity")
		return
	}

	succeed(c, http.StatusOK, gin.H{
		"message":  "Activity updated successfully",
		"activity": activity,
	})
}

func (rs *RestfulServer) DeleteActivity(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}

	if err := rs.Eco.Activity.DeleteActivity(c.Request.Context(), callerID(c), id); err != nil {
		failWith(c, err, "Error deleting activity")
		return
	}

	succeed(c, http.StatusOK, gin.H{"message": "Activity deleted successfully"})
}

func (rs *RestfulServer) GetEmissionSummary(c *gin.Context) {
	period := footprint.ParsePeriod(c.DefaultQuery("period", string(footprint.PeriodMonth)))

	summary, err := rs.Eco.Activity.GetEmissionSummary(c.Request.Context(), callerID(c), period)
	if err != nil {
		failWith(c, err, "Error fetching summary")
		return
	}

	succeed(c, http.StatusOK, gin.H{"summary": summary})
}

func (rs *RestfulServer) GetTips(c *gin.Context) {
	activityType := c.Query("activityType")

	tips, err := rs.Eco.Activity.GetReductionTips(c.Request.Context(), callerID(c), activityType)
	if err != nil {
		failWith(c, err, "Error fetching tips")
		return
	}

	succeed(c, http.StatusOK, gin.H{
		"tips":         tips,
		"personalized": activityType == "",
	})
}
