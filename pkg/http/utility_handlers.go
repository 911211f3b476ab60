package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"liyu1981.xyz/ecotrack-service/pkg/footprint"
)

var endpointIndex = gin.H{
	"carbonActivities": "/api/carbon-activities",
	"carbonFootprint":  "/api/carbon-footprint",
	"renewableEnergy":  "/api/renewable-energy",
	"plasticUsage":     "/api/plastic-usage",
	"waste":            "/api/waste",
	"notifications":    "/api/notifications",
	"profile":          "/api/profile/goals",
	"activityTypes":    "/api/activities/types",
	"carbonFactors":    "/api/environmental-data/carbon-factors",
	"globalStats":      "/api/stats/global",
}

func (rs *RestfulServer) GetIndex(c *gin.Context) {
	succeed(c, http.StatusOK, gin.H{
		"message":   "Climate Change & Sustainability API",
		"version":   APIVersion,
		"endpoints": endpointIndex,
	})
}

func (rs *RestfulServer) GetActivityTypes(c *gin.Context) {
	succeed(c, http.StatusOK, gin.H{"data": footprint.BuildCatalogue()})
}

func (rs *RestfulServer) GetCarbonFactors(c *gin.Context) {
	succeed(c, http.StatusOK, gin.H{
		"emissionFactors": footprint.Factors(),
		"description":     "Carbon emission factors in kg CO2 per unit",
		"units": gin.H{
			"transportation": "per kilometer",
			"energy": gin.H{
				"electricity": "per kWh",
				"gas":         "per cubic meter",
			},
			"food":      "per kilogram",
			"waste":     "per kilogram",
			"water":     "per liter",
			"renewable": "offset per kWh",
		},
	})
}

func (rs *RestfulServer) GetGlobalStats(c *gin.Context) {
	stats, err := rs.Eco.Stats.GetGlobalStats(c.Request.Context())
	if err != nil {
		failWith(c, err, "Error fetching statistics")
		return
	}

	succeed(c, http.StatusOK, gin.H{"stats": stats})
}

// ServeWS upgrades the caller onto their notification room.
func (rs *RestfulServer) ServeWS(c *gin.Context) {
	if rs.Hub == nil {
		fail(c, http.StatusServiceUnavailable, "Realtime notifications are disabled")
		return
	}

	if err := rs.Hub.ServeWS(c.Writer, c.Request, callerID(c)); err != nil {
		restLogger(c).Warn("Websocket session ended with error", zap.Error(err))
	}
}
