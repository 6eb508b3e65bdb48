package controllers

import (
	"net/http"
	"time"

	"github.com/lucsoftsl/alexafit-backoffice-sub000/services"

	"github.com/gin-gonic/gin"
)

type DiaryController struct {
	Diary *services.DiaryService
}

func NewDiaryController(d *services.DiaryService) *DiaryController {
	return &DiaryController{Diary: d}
}

func (dc *DiaryController) parseDate(c *gin.Context) (string, bool) {
	dateStr := c.Query("date")
	if dateStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing 'date' query param"})
		return "", false
	}
	if _, err := time.Parse("2006-01-02", dateStr); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return "", false
	}
	return dateStr, true
}

// GET /subscribers/:id/diary?date=YYYY-MM-DD
func (dc *DiaryController) DayReport(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	date, ok := dc.parseDate(c)
	if !ok {
		return
	}

	report, err := dc.Diary.DayReport(id, date)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

// GET /subscribers/:id/diary/summary?date=YYYY-MM-DD
func (dc *DiaryController) DaySummary(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	date, ok := dc.parseDate(c)
	if !ok {
		return
	}

	summary, err := dc.Diary.DaySummary(id, date)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}
