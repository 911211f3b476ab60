package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
	"github.com/gin-gonic/gin"

	"liyu1981.xyz/ecotrack-service/pkg/eco"
)

type GoalsRequest struct {
	CarbonFootprintGoal  float64 `json:"carbonFootprintGoal"`
	PlasticReductionGoal float64 `json:"plasticReductionGoal"`
}

var goalsRequestSchema = z.Struct(z.Shape{
	"carbonFootprintGoal":  nonNegative("Carbon footprint goal"),
	"plasticReductionGoal": nonNegative("Plastic reduction goal"),
})

func (rs *RestfulServer) GetGoals(c *gin.Context) {
	profile, err := rs.Eco.Profile.GetGoals(c.Request.Context(), callerID(c))
	if err != nil {
		failWith(c, err, "Error fetching goals")
		return
	}

	succeed(c, http.StatusOK, gin.H{"goals": profile})
}

func (rs *RestfulServer) PutGoals(c *gin.Context) {
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

	var req GoalsRequest
	if errs := goalsRequestSchema.Parse(zhttp.Request(c.Request), &req); errs != nil {
		failValidation(c, errs)
		return
	}

	patch := &eco.GoalsPatch{}
	if _, found := present["carbonFootprintGoal"]; found {
		patch.CarbonFootprintGoal = &req.CarbonFootprintGoal
	}
	if _, found := present["plasticReductionGoal"]; found {
		patch.PlasticReductionGoal = &req.PlasticReductionGoal
	}

	profile, err := rs.Eco.Profile.UpsertGoals(c.Request.Context(), callerID(c), patch)
	if err != nil {
		failWith(c, err, "Error updating goals")
		return
	}

	succeed(c, http.StatusOK, gin.H{
		"message": "Goals updated successfully",
		"goals":   profile,
	})
}
