package http

import (
	"net/http"
	"time"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
	"github.com/gin-gonic/gin"

	"liyu1981.xyz/ecotrack-service/pkg/eco"
	"liyu1981.xyz/ecotrack-service/pkg/footprint"
	"liyu1981.xyz/ecotrack-service/pkg/models"
)

type RenewableEnergyRequest struct {
	Date             time.Time `json:"date"`
	EnergySource     string    `json:"energySource"`
	EnergyGenerated  float64   `json:"energyGenerated"`
	EnergyUsed       float64   `json:"energyUsed"`
	Location         string    `json:"location"`
	InstallationType string    `json:"installationType"`
	SystemCapacity   float64   `json:"systemCapacity"`
	Cost             float64   `json:"cost"`
	Savings          float64   `json:"savings"`
	Description      string    `json:"description"`
}

var renewableEnergyRequestSchema = z.Struct(z.Shape{
	"date": z.Time(),
	"energySource": z.String().
		Required(z.Message("Energy source is required")).
		OneOf(models.Values(models.AllEnergySources), z.Message("Invalid energy source")),
	"energyGenerated":  nonNegative("Energy generated").Required(z.Message("Energy generated is required")),
	"energyUsed":       nonNegative("Energy used"),
	"location":         z.String().Max(200),
	"installationType": z.String().OneOf(models.Values(models.AllInstallationTypes), z.Message("Invalid installation type")),
	"systemCapacity":   nonNegative("System capacity"),
	"cost":             nonNegative("Cost"),
	"savings":          nonNegative("Savings"),
	"description":      z.String().Max(500),
})

func (rs *RestfulServer) PostRenewableEnergy(c *gin.Context) {
	var req RenewableEnergyRequest
	if errs := renewableEnergyRequestSchema.Parse(zhttp.Request(c.Request), &req); errs != nil {
		failValidation(c, errs)
		return
	}

	record, err := rs.Eco.Renewable.CreateRenewableEnergy(c.Request.Context(), callerID(c), &models.RenewableEnergy{
		Date:             req.Date,
		EnergySource:     models.EnergySource(req.EnergySource),
		EnergyGenerated:  req.EnergyGenerated,
		EnergyUsed:       req.EnergyUsed,
		Location:         req.Location,
		InstallationType: models.InstallationType(req.InstallationType),
		SystemCapacity:   req.SystemCapacity,
		Cost:             req.Cost,
		Savings:          req.Savings,
		Description:      req.Description,
	})
	if err != nil {
		failWith(c, err, "Error logging renewable energy")
		return
	}

	succeed(c, http.StatusCreated, gin.H{
		"message": "Renewable energy data logged successfully",
		"data":    record,
	})
}

func (rs *RestfulServer) GetRenewableEnergy(c *gin.Context) {
	lf, valid := listFilter(c)
	if !valid {
		return
	}

	page, err := rs.Eco.Renewable.ListRenewableEnergy(c.Request.Context(), callerID(c), eco.RenewableFilter{
		ListFilter:   lf,
		EnergySource: models.EnergySource(c.Query("energySource")),
	})
	if err != nil {
		failWith(c, err, "Error fetching renewable energy logs")
		return
	}

	succeed(c, http.StatusOK, pageBody(page, "logs"))
}

func (rs *RestfulServer) GetRenewableSummary(c *gin.Context) {
	period := footprint.ParsePeriod(c.DefaultQuery("period", string(footprint.PeriodMonth)))

	summary, err := rs.Eco.Renewable.GetRenewableSummary(c.Request.Context(), callerID(c), period)
	if err != nil {
		failWith(c, err, "Error fetching renewable energy summary")
		return
	}

	succeed(c, http.StatusOK, gin.H{"summary": summary})
}

func (rs *RestfulServer) DeleteRenewableEnergy(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}

	if err := rs.Eco.Renewable.DeleteRenewableEnergy(c.Request.Context(), callerID(c), id); err != nil {
		failWith(c, err, "Error deleting log")
		return
	}

	succeed(c, http.StatusOK, gin.H{"message": "Log deleted successfully"})
}
