package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	resdto "stay-client/internal/handler/dto/response"
	"stay-client/internal/handler/middleware"
	"stay-client/internal/usecase/commands"
	"stay-client/internal/usecase/queries"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

func (h *ReservationHandler) List(c *gin.Context) {
	items, err := h.q.ListMine(c.Request.Context(), middleware.GetSession(c))
	if err != nil {
		abortMapped(c, err, queryErrors, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservations(items))
}

func (h *ReservationHandler) Get(c *gin.Context) {
	res, err := h.q.Get(c.Request.Context(), middleware.GetSession(c), c.Param("id"))
	if err != nil {
		abortMapped(c, err, queryErrors, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservation(res))
}

func (h *ReservationHandler) Cancel(c *gin.Context) {
	res, err := h.cmds.Cancel(c.Request.Context(), middleware.GetSession(c), c.Param("id"))
	if err != nil {
		abortMapped(c, err, commandErrors, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservation(res))
}
