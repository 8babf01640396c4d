package api

import (
	"errors"
	"net/http"

	reqdto "linenhire/internal/handler/dto/request"
	resdto "linenhire/internal/handler/dto/response"
	"linenhire/internal/usecase/commands"
	"linenhire/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type QueryHandler struct {
	queryCommands commands.QueryCommands
	queryQueries  queries.QueryQueries
}

func NewQueryHandler(queryCommands commands.QueryCommands, queryQueries queries.QueryQueries) *QueryHandler {
	return &QueryHandler{
		queryCommands: queryCommands,
		queryQueries:  queryQueries,
	}
}

// @Summary Submit a query
// @Description Contact form submission; lands unread in the admin inbox
// @Tags queries
// @Accept json
// @Produce json
// @Param request body reqdto.SubmitQueryRequest true "Query"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /queries [post]
func (h *QueryHandler) Submit(c *gin.Context) {
	var req reqdto.SubmitQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.queryCommands.Submit(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, commands.ErrDomainValidation) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Name, email and message are required",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary List queries
// @Tags admin
// @Produce json
// @Success 200 {array} resdto.QueryResponse
// @Failure 401 {object} map[string]string
// @Router /admin/queries [get]
func (h *QueryHandler) List(c *gin.Context) {
	views, err := h.queryQueries.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromQueryViews(views))
}

// @Summary Mark query read
// @Tags admin
// @Param id path string true "Query ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/queries/{id}/read [patch]
func (h *QueryHandler) MarkRead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query ID",
		})
		return
	}

	if err := h.queryCommands.MarkRead(c.Request.Context(), id); err != nil {
		h.writeQueryError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete query
// @Tags admin
// @Param id path string true "Query ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/queries/{id} [delete]
func (h *QueryHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query ID",
		})
		return
	}

	if err := h.queryCommands.Delete(c.Request.Context(), id); err != nil {
		h.writeQueryError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *QueryHandler) writeQueryError(c *gin.Context, err error) {
	if errors.Is(err, commands.ErrQueryNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Query not found",
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Internal server error",
	})
}
