package controllers

import (
	"net/http"
	"strconv"

	"github.com/lucsoftsl/alexafit-backoffice-sub000/services"
	"github.com/lucsoftsl/alexafit-backoffice-sub000/utils"

	"github.com/gin-gonic/gin"
)

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

func parsePaging(c *gin.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	return limit, offset
}

func ListSubscribers(c *gin.Context) {
	limit, offset := parsePaging(c)
	subs, total, err := services.ListSubscribers(c.Query("search"), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"subscribers": subs, "total": total})
}

func GetSubscriber(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	sub, err := services.GetSubscriber(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sub)
}

func UpdateSubscriber(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var input services.SubscriberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sub, err := services.UpdateSubscriber(id, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sub)
}

func SetSubscriberDisabled(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req struct {
		Disabled bool `json:"disabled"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if err := services.SetSubscriberDisabled(id, req.Disabled); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"disabled": req.Disabled})
}

func GetGoals(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	goal, err := services.GetNutritionGoal(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, goal)
}

func UpdateGoals(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req struct {
		Calories float64  `json:"calories"`
		Protein  float64  `json:"protein"`
		Carbs    *float64 `json:"carbs"`
		Fat      *float64 `json:"fat"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// missing categories default to 0 = "no goal set"
	carbs, fat := 0.0, 0.0
	if req.Carbs != nil {
		carbs = *req.Carbs
	}
	if req.Fat != nil {
		fat = *req.Fat
	}

	goal, err := services.UpsertNutritionGoal(id, utils.GoalThresholds{
		Calories: req.Calories,
		Protein:  req.Protein,
		Carbs:    carbs,
		Fat:      fat,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, goal)
}
