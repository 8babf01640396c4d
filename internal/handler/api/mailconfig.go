package api

import (
	"net/http"

	reqdto "linenhire/internal/handler/dto/request"
	resdto "linenhire/internal/handler/dto/response"
	"linenhire/internal/usecase/commands"
	"linenhire/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type MailConfigHandler struct {
	mailConfigCommands commands.MailConfigCommands
	mailConfigQueries  queries.MailConfigQueries
}

func NewMailConfigHandler(mailConfigCommands commands.MailConfigCommands, mailConfigQueries queries.MailConfigQueries) *MailConfigHandler {
	return &MailConfigHandler{
		mailConfigCommands: mailConfigCommands,
		mailConfigQueries:  mailConfigQueries,
	}
}

// @Summary Get mail settings
// @Description SMTP settings and templates; the password never appears
// @Tags admin
// @Produce json
// @Success 200 {object} resdto.MailConfigResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/mail [get]
func (h *MailConfigHandler) Get(c *gin.Context) {
	view, err := h.mailConfigQueries.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	if view == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Mail is not configured yet",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromMailConfigView(view))
}

// @Summary Update mail settings
// @Description Empty password keeps the stored one
// @Tags admin
// @Accept json
// @Param request body reqdto.UpdateMailConfigRequest true "Mail settings"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /admin/mail [put]
func (h *MailConfigHandler) Update(c *gin.Context) {
	var req reqdto.UpdateMailConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.mailConfigCommands.Update(c.Request.Context(), req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.Status(http.StatusNoContent)
}
