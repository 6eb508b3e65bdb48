package controllers

import (
	"net/http"

	"github.com/lucsoftsl/alexafit-backoffice-sub000/services"

	"github.com/gin-gonic/gin"
)

type MessageController struct {
	Messages *services.MessageService
}

func NewMessageController(ms *services.MessageService) *MessageController {
	return &MessageController{Messages: ms}
}

func (mc *MessageController) ListForSubscriber(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	limit, offset := parsePaging(c)
	msgs, total, err := mc.Messages.ListForSubscriber(id, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": msgs, "total": total})
}

func (mc *MessageController) Send(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req struct {
		Title   string `json:"title"`
		Body    string `json:"body"`
		Channel string `json:"channel"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := mc.Messages.Send(id, c.GetUint("adminID"), req.Title, req.Body, req.Channel)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, msg)
}

func (mc *MessageController) MarkRead(c *gin.Context) {
	publicID := c.Param("publicId")
	if publicID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := mc.Messages.MarkRead(publicID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
