package http

import (
	"net/http"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
	"github.com/gin-gonic/gin"

	"liyu1981.xyz/ecotrack-service/pkg/models"
)

type ClassifyWasteRequest struct {
	WasteDescription string `json:"wasteDescription"`
}

var classifyWasteRequestSchema = z.Struct(z.Shape{
	"wasteDescription": z.String().Trim().
		Required(z.Message("Waste description is required")).
		Max(500),
})

type WasteTypeRequest struct {
	Name                 string   `json:"name"`
	Category             string   `json:"category"`
	Description          string   `json:"description"`
	Keywords             []string `json:"keywords"`
	DisposalInstructions string   `json:"disposalInstructions"`
	EnvironmentalImpact  string   `json:"environmentalImpact"`
	RecyclingTips        string   `json:"recyclingTips"`
	DecompositionTime    string   `json:"decompositionTime"`
	Examples             []string `json:"examples"`
}

var wasteTypeRequestSchema = z.Struct(z.Shape{
	"name": z.String().Trim().Required(z.Message("Name is required")).Max(100),
	"category": z.String().
		Required(z.Message("Category is required")).
		OneOf(models.Values(models.AllWasteCategories), z.Message("Invalid category")),
	"description":          z.String(),
	"keywords":             z.Slice(z.String().Trim()),
	"disposalInstructions": z.String(),
	"environmentalImpact":  z.String(),
	"recyclingTips":        z.String(),
	"decompositionTime":    z.String(),
	"examples":             z.Slice(z.String()),
})

func (rs *RestfulServer) ClassifyWaste(c *gin.Context) {
	var req ClassifyWasteRequest
	if errs := classifyWasteRequestSchema.Parse(zhttp.Request(c.Request), &req); errs != nil {
		failValidation(c, errs)
		return
	}

	classification, err := rs.Eco.Waste.ClassifyWaste(c.Request.Context(), req.WasteDescription)
	if err != nil {
		failWith(c, err, "Error classifying waste")
		return
	}

	succeed(c, http.StatusOK, gin.H{
		"classification": classification,
		"source":         classification.Source,
	})
}

func (rs *RestfulServer) GetWasteCategories(c *gin.Context) {
	categories, err := rs.Eco.Waste.GetWasteCategories(c.Request.Context())
	if err != nil {
		failWith(c, err, "Error fetching waste categories")
		return
	}

	succeed(c, http.StatusOK, gin.H{
		"categories": categories.Categories,
		"totalItems": categories.TotalItems,
	})
}

func (rs *RestfulServer) PostWasteType(c *gin.Context) {
	var req WasteTypeRequest
	if errs := wasteTypeRequestSchema.Parse(zhttp.Request(c.Request), &req); errs != nil {
		failValidation(c, errs)
		return
	}

	wasteType, err := rs.Eco.Waste.AddWasteType(c.Request.Context(), &models.WasteType{
		Name:                 req.Name,
		Category:             models.WasteCategory(req.Category),
		Description:          req.Description,
		Keywords:             req.Keywords,
		DisposalInstructions: req.DisposalInstructions,
		EnvironmentalImpact:  req.EnvironmentalImpact,
		RecyclingTips:        req.RecyclingTips,
		DecompositionTime:    req.DecompositionTime,
		Examples:             req.Examples,
	})
	if err != nil {
		failWith(c, err, "Error adding waste type")
		return
	}

	succeed(c, http.StatusCreated, gin.H{
		"message":   "Waste type added successfully",
		"wasteType": wasteType,
	})
}
