package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"liyu1981.xyz/ecotrack-service/pkg/eco"
	"liyu1981.xyz/ecotrack-service/pkg/notify"
)

const APIVersion = "1.0.0"

type RestfulServer struct {
	Server           *gin.Engine
	Eco              *eco.Eco
	RateLimiterStore *eco.RateLimiterStore
	Hub              *notify.Hub
	// nil means callers identify with the X-User-ID header
	Auth      *Authenticator
	StaticDir string
}

func (rs *RestfulServer) GetLimiter(key string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(key)
	}
}

func (rs *RestfulServer) CheckLimiter(key string) bool {
	limiter := rs.GetLimiter(key)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) SetLimiter(key string, r float64, burst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(key, rate.Limit(r), burst)
}

func (rs *RestfulServer) Setup() {
	rs.Server.Use(RequestID(), Metrics())

	rs.Server.GET("/healthz", rs.HealthCheck)
	rs.Server.GET("/metrics", gin.WrapH(promhttp.Handler()))
	rs.Server.GET("/ws", rs.RequireUser(), rs.ServeWS)

	if rs.StaticDir != "" {
		rs.Server.NoRoute(rs.serveStatic)
	} else {
		rs.Server.NoRoute(routeNotFound)
	}

	api := rs.Server.Group("/api", rs.OptionalUser(), rs.RateLimit())
	{
		api.GET("", rs.GetIndex)
		api.GET("/activities/types", rs.GetActivityTypes)
		api.GET("/environmental-data/carbon-factors", rs.GetCarbonFactors)
		api.GET("/stats/global", rs.GetGlobalStats)
		api.POST("/waste/classify", rs.ClassifyWaste)
		api.GET("/waste/categories", rs.GetWasteCategories)
	}

	private := api.Group("", rs.RequireUser())
	{
		activities := private.Group("/carbon-activities")
		activities.POST("", rs.PostActivity)
		activities.GET("", rs.GetActivities)
		activities.PUT("/:id", rs.PutActivity)
		activities.DELETE("/:id", rs.DeleteActivity)

		footprint := private.Group("/carbon-footprint")
		footprint.GET("/summary", rs.GetEmissionSummary)
		footprint.GET("/tips", rs.GetTips)

		renewable := private.Group("/renewable-energy")
		renewable.POST("", rs.PostRenewableEnergy)
		renewable.GET("", rs.GetRenewableEnergy)
		renewable.GET("/summary", rs.GetRenewableSummary)
		renewable.DELETE("/:id", rs.DeleteRenewableEnergy)

		plastic := private.Group("/plastic-usage")
		plastic.POST("", rs.PostPlasticUsage)
		plastic.GET("", rs.GetPlasticUsage)
		plastic.GET("/summary", rs.GetPlasticSummary)
		plastic.DELETE("/:id", rs.DeletePlasticUsage)

		private.POST("/waste/add-type", rs.PostWasteType)

		notifications := private.Group("/notifications")
		notifications.GET("", rs.GetNotifications)
		notifications.POST("/mark-read/:id", rs.MarkNotificationRead)
		notifications.POST("/mark-all-read", rs.MarkAllNotificationsRead)
		notifications.DELETE("/:id", rs.DeleteNotification)
		notifications.DELETE("", rs.DeleteReadNotifications)

		profile := private.Group("/profile")
		profile.GET("/goals", rs.GetGoals)
		profile.PUT("/goals", rs.PutGoals)
	}
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	if rs.Eco != nil {
		if err := rs.Eco.Db.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (rs *RestfulServer) serveStatic(c *gin.Context) {
	if c.Request.Method != http.MethodGet || strings.HasPrefix(c.Request.URL.Path, "/api/") {
		routeNotFound(c)
		return
	}
	http.FileServer(http.Dir(rs.StaticDir)).ServeHTTP(c.Writer, c.Request)
}

func routeNotFound(c *gin.Context) {
	fail(c, http.StatusNotFound, "Route not found")
}
