package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "stay-client/internal/handler/dto/request"
	resdto "stay-client/internal/handler/dto/response"
	"stay-client/internal/handler/httperr"
	"stay-client/internal/usecase/commands"
)

type AuthHandler struct {
	cmds commands.AuthCommands
}

func NewAuthHandler(cmds commands.AuthCommands) *AuthHandler {
	return &AuthHandler{cmds: cmds}
}

// Login forwards credentials upstream. A 200 with requiresTwoFactor means
// the client must call VerifyTwoFactor with the returned userId.
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	outcome, err := h.cmds.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		abortMapped(c, err, commandErrors, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLoginOutcome(outcome))
}

func (h *AuthHandler) VerifyTwoFactor(c *gin.Context) {
	var req reqdto.VerifyTwoFactorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	outcome, err := h.cmds.VerifyTwoFactor(c.Request.Context(), req.UserID, req.Token)
	if err != nil {
		abortMapped(c, err, commandErrors, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLoginOutcome(outcome))
}

// Register creates the account and signs it in, answering 201 with the same
// body as Login.
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	reg, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	outcome, err := h.cmds.Register(c.Request.Context(), reg)
	if err != nil {
		abortMapped(c, err, accountErrors, nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromLoginOutcome(outcome))
}
