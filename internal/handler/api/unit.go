package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "stay-client/internal/handler/dto/request"
	resdto "stay-client/internal/handler/dto/response"
	"stay-client/internal/handler/httperr"
	"stay-client/internal/handler/middleware"
	"stay-client/internal/usecase/queries"
)

type UnitHandler struct {
	q queries.UnitQueries
}

func NewUnitHandler(q queries.UnitQueries) *UnitHandler {
	return &UnitHandler{q: q}
}

func (h *UnitHandler) List(c *gin.Context) {
	var query reqdto.UnitListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}
	units, err := h.q.List(c.Request.Context(), middleware.GetSession(c), query.ToDomain())
	if err != nil {
		abortMapped(c, err, queryErrors, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUnits(units))
}

func (h *UnitHandler) Get(c *gin.Context) {
	unit, err := h.q.Get(c.Request.Context(), middleware.GetSession(c), c.Param("id"))
	if err != nil {
		abortMapped(c, err, queryErrors, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUnit(unit))
}
