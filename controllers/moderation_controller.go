package controllers

import (
	"net/http"

	"github.com/lucsoftsl/alexafit-backoffice-sub000/models"
	"github.com/lucsoftsl/alexafit-backoffice-sub000/services"

	"github.com/gin-gonic/gin"
)

type ModerationController struct {
	Moderation *services.ModerationService
}

func NewModerationController(ms *services.ModerationService) *ModerationController {
	return &ModerationController{Moderation: ms}
}

func (mc *ModerationController) List(c *gin.Context) {
	limit, offset := parsePaging(c)
	items, total, err := mc.Moderation.List(c.Query("status"), c.Query("search"), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "total": total})
}

func (mc *ModerationController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	item, err := mc.Moderation.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

type submitItemReq struct {
	SubscriberID  uint    `json:"subscriber_id"`
	Name          string  `json:"name" binding:"required"`
	Brand         string  `json:"brand"`
	Barcode       string  `json:"barcode"`
	TotalCalories float64 `json:"total_calories"`
	Proteins      float64 `json:"proteins"`
	Carbohydrates float64 `json:"carbohydrates"`
	Fat           float64 `json:"fat"`
	Fibre         float64 `json:"fibre"`
	Sugars        float64 `json:"sugars"`
	Image         string  `json:"image"` // base64 data URL, optional
}

func (mc *ModerationController) Submit(c *gin.Context) {
	var req submitItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := &models.UnapprovedItem{
		SubscriberID:  req.SubscriberID,
		Name:          req.Name,
		Brand:         req.Brand,
		Barcode:       req.Barcode,
		TotalCalories: req.TotalCalories,
		Proteins:      req.Proteins,
		Carbohydrates: req.Carbohydrates,
		Fat:           req.Fat,
		Fibre:         req.Fibre,
		Sugars:        req.Sugars,
	}
	created, err := mc.Moderation.Submit(item, req.Image)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (mc *ModerationController) Approve(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	food, err := mc.Moderation.Approve(id, c.GetUint("adminID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"food": food})
}

func (mc *ModerationController) Reject(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req struct {
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if err := mc.Moderation.Reject(id, c.GetUint("adminID"), req.Reason); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
