package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"warehouse-console/internal/console"
	"warehouse-console/internal/model"
	"warehouse-console/internal/service"
)

func (h *Handler) ConnectHandler(c *gin.Context) {
	var req model.ConnectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	id := h.sessionID(c)
	if _, err := h.registry.Connect(c.Request.Context(), id, req.Credentials); err != nil {
		c.JSON(statusFor(err), gin.H{"error": "Failed to connect: " + service.Describe(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Connected successfully"})
}

func (h *Handler) DisconnectHandler(c *gin.Context) {
	if err := h.registry.Disconnect(h.sessionID(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Disconnected"})
}

func (h *Handler) ConnectForm(c *gin.Context) {
	var creds model.Credentials
	if err := c.ShouldBind(&creds); err != nil {
		h.flash(c, console.Message{Level: console.LevelError, Text: "Invalid login form"})
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	id := h.sessionID(c)
	if _, err := h.registry.Connect(c.Request.Context(), id, creds); err != nil {
		h.flash(c, console.Message{
			Level: console.LevelError,
			Text:  "Connection to the warehouse failed: " + service.Describe(err),
		})
	} else {
		h.flash(c, console.Message{
			Level: console.LevelSuccess,
			Text:  fmt.Sprintf("Connected to account %s.", creds.Account),
		})
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) DisconnectForm(c *gin.Context) {
	if err := h.registry.Disconnect(h.sessionID(c)); err != nil {
		h.flash(c, console.Message{Level: console.LevelError, Text: "Disconnect failed: " + err.Error()})
	} else {
		h.flash(c, console.Message{Level: console.LevelInfo, Text: "Disconnected."})
	}
	c.Redirect(http.StatusSeeOther, "/")
}
