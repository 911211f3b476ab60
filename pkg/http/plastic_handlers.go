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

type PlasticUsageRequest struct {
	Date            time.Time `json:"date"`
	PlasticType     string    `json:"plasticType"`
	ItemType        string    `json:"itemType"`
	Quantity        float64   `json:"quantity"`
	Weight          float64   `json:"weight"`
	Recycled        bool      `json:"recycled"`
	Reused          bool      `json:"reused"`
	Source          string    `json:"source"`
	AlternativeUsed string    `json:"alternativeUsed"`
	Description     string    `json:"description"`
}

var plasticUsageRequestSchema = z.Struct(z.Shape{
	"date": z.Time(),
	"plasticType": z.String().
		Required(z.Message("Plastic type is required")).
		OneOf(models.Values(models.AllPlasticTypes), z.Message("Invalid plastic type")),
	"itemType":        z.String().OneOf(models.Values(models.AllPlasticItemTypes), z.Message("Invalid item type")),
	"quantity":        nonNegative("Quantity").Required(z.Message("Quantity is required")),
	"weight":          nonNegative("Weight"),
	"recycled":        z.Bool(),
	"reused":          z.Bool(),
	"source":          z.String().OneOf(models.Values(models.AllPlasticSources), z.Message("Invalid source")),
	"alternativeUsed": z.String().Max(200),
	"description":     z.String().Max(500),
})

func (rs *RestfulServer) PostPlasticUsage(c *gin.Context) {
	var req PlasticUsageRequest
	if errs := plasticUsageRequestSchema.Parse(zhttp.Request(c.Request), &req); errs != nil {
		failValidation(c, errs)
		return
	}

	record, monthlyTotal, err := rs.Eco.Plastic.CreatePlasticUsage(c.Request.Context(), callerID(c), &models.PlasticUsage{
		Date:            req.Date,
		PlasticType:     models.PlasticType(req.PlasticType),
		ItemType:        models.PlasticItemType(req.ItemType),
		Quantity:        req.Quantity,
		Weight:          req.Weight,
		Recycled:        req.Recycled,
		Reused:          req.Reused,
		Source:          models.PlasticSource(req.Source),
		AlternativeUsed: req.AlternativeUsed,
		Description:     req.Description,
	})
	if err != nil {
		failWith(c, err, "Error logging plastic usage")
		return
	}

	succeed(c, http.StatusCreated, gin.H{
		"message":      "Plastic usage logged successfully",
		"data":         record,
		"monthlyTotal": monthlyTotal,
	})
}

func (rs *RestfulServer) GetPlasticUsage(c *gin.Context) {
	lf, valid := listFilter(c)
	if !valid {
		return
	}

	page, err := rs.Eco.Plastic.ListPlasticUsage(c.Request.Context(), callerID(c), eco.PlasticFilter{
		ListFilter:  lf,
		PlasticType: models.PlasticType(c.Query("plasticType")),
		Recycled:    queryBool(c, "recycled"),
	})
	if err != nil {
		failWith(c, err, "Error fetching plastic usage logs")
		return
	}

	succeed(c, http.StatusOK, pageBody(page, "logs"))
}

func (rs *RestfulServer) GetPlasticSummary(c *gin.Context) {
	period := footprint.ParsePeriod(c.DefaultQuery("period", string(footprint.PeriodMonth)))

	summary, err := rs.Eco.Plastic.GetPlasticSummary(c.Request.Context(), callerID(c), period)
	if err != nil {
		failWith(c, err, "Error fetching plastic usage summary")
		return
	}

	succeed(c, http.StatusOK, gin.H{"summary": summary})
}

func (rs *RestfulServer) DeletePlasticUsage(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}

	if err := rs.Eco.Plastic.DeletePlasticUsage(c.Request.Context(), callerID(c), id); err != nil {
		failWith(c, err, "Error deleting log")
		return
	}

	succeed(c, http.StatusOK, gin.H{"message": "Log deleted successfully"})
}
