package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"stay-client/internal/domain/account"
	reqdto "stay-client/internal/handler/dto/request"
	resdto "stay-client/internal/handler/dto/response"
	"stay-client/internal/handler/httperr"
	"stay-client/internal/handler/middleware"
	"stay-client/internal/pkg/errs"
	"stay-client/internal/usecase/commands"
)

// ProfileHandler serves the signed-in user's own account. Every route sits
// behind RequireSession.
type ProfileHandler struct {
	cmds commands.AccountCommands
}

func NewProfileHandler(cmds commands.AccountCommands) *ProfileHandler {
	return &ProfileHandler{cmds: cmds}
}

func (h *ProfileHandler) Me(c *gin.Context) {
	user, err := h.cmds.Me(c.Request.Context(), middleware.GetSession(c))
	if err != nil {
		abortMapped(c, err, accountErrors, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUser(user))
}

func (h *ProfileHandler) Get(c *gin.Context) {
	user, err := h.cmds.Profile(c.Request.Context(), middleware.GetSession(c))
	if err != nil {
		abortMapped(c, err, accountErrors, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUser(user))
}

func (h *ProfileHandler) Update(c *gin.Context) {
	var req reqdto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	user, err := h.cmds.UpdateProfile(c.Request.Context(), middleware.GetSession(c), req.ToDomain())
	if err != nil {
		abortMapped(c, err, accountErrors, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUser(user))
}

func (h *ProfileHandler) ChangePassword(c *gin.Context) {
	var req reqdto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	change := account.PasswordChange{Current: req.CurrentPassword, New: req.NewPassword}
	if err := h.cmds.ChangePassword(c.Request.Context(), middleware.GetSession(c), change); err != nil {
		abortMapped(c, err, accountErrors, nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// ChangePhoto takes a multipart upload in the "photo" field. Anything past
// the size limit is left unread and reported as an invalid photo.
func (h *ProfileHandler) ChangePhoto(c *gin.Context) {
	fh, err := c.FormFile("photo")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Photo file is required", nil)
		return
	}
	f, err := fh.Open()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Photo file is unreadable", nil)
		return
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, account.MaxPhotoBytes+1))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Wrap(err, "read photo"), "Photo file is unreadable", nil)
		return
	}
	contentType := fh.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(content)
	}

	photo := account.Photo{Filename: fh.Filename, ContentType: contentType, Content: content}
	user, err := h.cmds.ChangePhoto(c.Request.Context(), middleware.GetSession(c), photo)
	if err != nil {
		abortMapped(c, err, accountErrors, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUser(user))
}

func (h *ProfileHandler) EnableTwoFactor(c *gin.Context) {
	setup, err := h.cmds.EnableTwoFactor(c.Request.Context(), middleware.GetSession(c))
	if err != nil {
		abortMapped(c, err, accountErrors, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTwoFactorSetup(setup))
}

func (h *ProfileHandler) ConfirmTwoFactor(c *gin.Context) {
	var req reqdto.ConfirmTwoFactorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	if err := h.cmds.ConfirmTwoFactor(c.Request.Context(), middleware.GetSession(c), req.Token); err != nil {
		abortMapped(c, err, accountErrors, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"twoFactorEnabled": true})
}

func (h *ProfileHandler) DisableTwoFactor(c *gin.Context) {
	var req reqdto.DisableTwoFactorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	if err := h.cmds.DisableTwoFactor(c.Request.Context(), middleware.GetSession(c), req.Password); err != nil {
		abortMapped(c, err, accountErrors, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"twoFactorEnabled": false})
}
