package controllers

import (
	"net/http"

	"github.com/lucsoftsl/alexafit-backoffice-sub000/services"

	"github.com/gin-gonic/gin"
)

type MenuTemplateController struct {
	Templates *services.MenuTemplateService
}

func NewMenuTemplateController(ts *services.MenuTemplateService) *MenuTemplateController {
	return &MenuTemplateController{Templates: ts}
}

func (tc *MenuTemplateController) List(c *gin.Context) {
	limit, offset := parsePaging(c)
	templates, total, err := tc.Templates.List(c.Query("search"), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"templates": templates, "total": total})
}

func (tc *MenuTemplateController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	tpl, err := tc.Templates.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tpl)
}

func (tc *MenuTemplateController) Create(c *gin.Context) {
	var input services.MenuTemplateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	tpl, err := tc.Templates.Create(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, tpl)
}

func (tc *MenuTemplateController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var input services.MenuTemplateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	tpl, err := tc.Templates.Update(id, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tpl)
}

func (tc *MenuTemplateController) SetPublished(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req struct {
		Published bool `json:"published"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if err := tc.Templates.SetPublished(id, req.Published); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"published": req.Published})
}

func (tc *MenuTemplateController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := tc.Templates.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
