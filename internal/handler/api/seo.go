package api

import (
	"errors"
	"net/http"

	reqdto "linenhire/internal/handler/dto/request"
	resdto "linenhire/internal/handler/dto/response"
	"linenhire/internal/infra"
	"linenhire/internal/usecase/commands"
	"linenhire/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SeoHandler struct {
	seoCommands commands.SeoCommands
	seoQueries  queries.SeoQueries
}

func NewSeoHandler(seoCommands commands.SeoCommands, seoQueries queries.SeoQueries) *SeoHandler {
	return &SeoHandler{
		seoCommands: seoCommands,
		seoQueries:  seoQueries,
	}
}

// @Summary Get SEO setting for a route
// @Description Public metadata lookup; the route arrives URL-encoded ("%2F" for "/")
// @Tags seo
// @Produce json
// @Param route path string true "Page route"
// @Success 200 {object} resdto.SeoSettingResponse
// @Failure 404 {object} map[string]string
// @Router /seo/{route} [get]
func (h *SeoHandler) GetByRoute(c *gin.Context) {
	route := c.Param("route")

	view, err := h.seoQueries.GetByRoute(c.Request.Context(), route)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No SEO setting for route",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromSeoSettingView(view))
}

// @Summary List SEO settings
// @Tags admin
// @Produce json
// @Success 200 {array} resdto.SeoSettingResponse
// @Failure 401 {object} map[string]string
// @Router /admin/seo [get]
func (h *SeoHandler) List(c *gin.Context) {
	views, err := h.seoQueries.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromSeoSettingViews(views))
}

// @Summary Upsert SEO setting
// @Description Keyed on page route; saving an existing route edits in place
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.UpsertSeoRequest true "SEO setting"
// @Success 200 {object} resdto.SeoSettingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /admin/seo [put]
func (h *SeoHandler) Upsert(c *gin.Context) {
	var req reqdto.UpsertSeoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.seoCommands.Upsert(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, commands.ErrInvalidSeoRoute) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Page route must start with /",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromSeoSettingView(view))
}
