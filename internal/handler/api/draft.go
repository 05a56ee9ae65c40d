package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stay-client/internal/domain/booking"
	reqdto "stay-client/internal/handler/dto/request"
	resdto "stay-client/internal/handler/dto/response"
	"stay-client/internal/handler/httperr"
	"stay-client/internal/handler/middleware"
	"stay-client/internal/pkg/errs"
	"stay-client/internal/usecase/drafts"
)

type DraftHandler struct {
	registry *drafts.Registry
}

func NewDraftHandler(registry *drafts.Registry) *DraftHandler {
	return &DraftHandler{registry: registry}
}

func (h *DraftHandler) Open(c *gin.Context) {
	var req reqdto.OpenDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	view, err := h.registry.Open(c.Request.Context(), middleware.GetSession(c), req.UnitID)
	if err != nil {
		abortDraft(c, err, view)
		return
	}
	c.Header("Location", "/api/drafts/"+view.DraftID)
	c.JSON(http.StatusCreated, resdto.FromDraftView(view))
}

func (h *DraftHandler) Get(c *gin.Context) {
	wf, ok := h.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, resdto.FromDraftView(wf.View()))
}

func (h *DraftHandler) Edit(c *gin.Context) {
	wf, ok := h.lookup(c)
	if !ok {
		return
	}
	in, ok := bindDraftInput(c, wf)
	if !ok {
		return
	}
	view, err := wf.Edit(in)
	if err != nil {
		abortDraft(c, err, view)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDraftView(view))
}

// Check applies the body as an edit first when one is sent. An unavailable
// unit is a normal outcome and answers 200 with the draft's notice.
func (h *DraftHandler) Check(c *gin.Context) {
	wf, ok := h.lookup(c)
	if !ok {
		return
	}
	if c.Request.ContentLength != 0 {
		in, ok := bindDraftInput(c, wf)
		if !ok {
			return
		}
		if view, err := wf.Edit(in); err != nil {
			abortDraft(c, err, view)
			return
		}
	}

	view, err := wf.Check(c.Request.Context(), middleware.GetSession(c))
	if err != nil && !errs.Is(err, drafts.ErrUnavailable) {
		abortDraft(c, err, view)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDraftView(view))
}

// Submit answers 201 with the confirmed draft. The draft is gone afterwards.
func (h *DraftHandler) Submit(c *gin.Context) {
	view, err := h.registry.Submit(c.Request.Context(), middleware.GetSession(c), c.Param("id"))
	if err != nil {
		abortDraft(c, err, view)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromDraftView(view))
}

func (h *DraftHandler) Discard(c *gin.Context) {
	if err := h.registry.Discard(middleware.GetSession(c), c.Param("id")); err != nil {
		abortDraft(c, err, drafts.View{})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *DraftHandler) lookup(c *gin.Context) (*drafts.Workflow, bool) {
	wf, err := h.registry.Get(middleware.GetSession(c), c.Param("id"))
	if err != nil {
		abortDraft(c, err, drafts.View{})
		return nil, false
	}
	return wf, true
}

func bindDraftInput(c *gin.Context, wf *drafts.Workflow) (booking.DraftInput, bool) {
	var req reqdto.DraftInputRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", resdto.FromDraftView(wf.View()))
		return booking.DraftInput{}, false
	}
	in, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Dates must use YYYY-MM-DD", resdto.FromDraftView(wf.View()))
		return booking.DraftInput{}, false
	}
	return in, true
}
