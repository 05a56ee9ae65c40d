package api

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"stay-client/internal/domain/account"
	"stay-client/internal/domain/booking"
	"stay-client/internal/pkg/errs"
	"stay-client/internal/pkg/ptr"
	"stay-client/internal/pkg/session"
)

const photoField = "foto"

func (c *Client) Register(ctx context.Context, reg account.Registration) (*account.LoginOutcome, error) {
	body := registerBody{
		NombreUsuario: reg.Username,
		Email:         reg.Email,
		Password:      reg.Password,
		Nombres:       reg.FirstName,
		Apellidos:     reg.LastName,
		Cedula:        reg.NationalID,
		Telefono:      ptr.NonEmpty(reg.Phone),
		Direccion:     ptr.NonEmpty(reg.Address),
	}
	if !reg.BirthDate.IsZero() {
		body.FechaNacimiento = ptr.Of(reg.BirthDate.Format(booking.DateLayout))
	}
	return c.authenticate(ctx, call{method: http.MethodPost, path: "/auth/register", body: body})
}

func (c *Client) Me(ctx context.Context, sess session.Session) (*account.User, error) {
	return c.user(ctx, sess, call{method: http.MethodGet, path: "/auth/me"})
}

func (c *Client) GetProfile(ctx context.Context, sess session.Session) (*account.User, error) {
	return c.user(ctx, sess, call{method: http.MethodGet, path: "/usuarios/perfil"})
}

func (c *Client) UpdateProfile(ctx context.Context, sess session.Session, upd account.ProfileUpdate) (*account.User, error) {
	body := profileBody{
		Nombres:   upd.FirstName,
		Apellidos: upd.LastName,
		Telefono:  upd.Phone,
		Direccion: upd.Address,
	}
	return c.user(ctx, sess, call{method: http.MethodPut, path: "/usuarios/perfil", body: body})
}

func (c *Client) ChangePassword(ctx context.Context, sess session.Session, change account.PasswordChange) error {
	body := map[string]string{"passwordActual": change.Current, "passwordNueva": change.New}
	return c.do(ctx, sess, call{method: http.MethodPut, path: "/usuarios/cambiar-password", body: body}, nil)
}

// ChangePhoto forwards the picture as the multipart upload the API expects.
func (c *Client) ChangePhoto(ctx context.Context, sess session.Session, photo account.Photo) (*account.User, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, photoField, photo.Filename))
	header.Set("Content-Type", photo.ContentType)
	part, err := mw.CreatePart(header)
	if err != nil {
		return nil, errs.Wrap(err, "building photo upload")
	}
	if _, err := part.Write(photo.Content); err != nil {
		return nil, errs.Wrap(err, "writing photo upload")
	}
	if err := mw.Close(); err != nil {
		return nil, errs.Wrap(err, "closing photo upload")
	}

	return c.user(ctx, sess, call{
		method:      http.MethodPut,
		path:        "/usuarios/cambiar-foto",
		raw:         &buf,
		contentType: mw.FormDataContentType(),
	})
}

func (c *Client) EnableTwoFactor(ctx context.Context, sess session.Session) (*account.TwoFactorSetup, error) {
	var dto twoFactorSetupDTO
	if err := c.do(ctx, sess, call{method: http.MethodPost, path: "/auth/enable-2fa", body: struct{}{}}, &dto); err != nil {
		return nil, err
	}
	return &account.TwoFactorSetup{QRCode: dto.QRCode, Secret: dto.Secret}, nil
}

func (c *Client) ConfirmTwoFactor(ctx context.Context, sess session.Session, code string) error {
	return c.do(ctx, sess, call{method: http.MethodPost, path: "/auth/confirm-2fa", body: map[string]string{"token": code}}, nil)
}

func (c *Client) DisableTwoFactor(ctx context.Context, sess session.Session, password string) error {
	return c.do(ctx, sess, call{method: http.MethodPost, path: "/auth/disable-2fa", body: map[string]string{"password": password}}, nil)
}

func (c *Client) user(ctx context.Context, sess session.Session, req call) (*account.User, error) {
	var dto userDTO
	if err := c.do(ctx, sess, req, &dto); err != nil {
		return nil, err
	}
	return dto.toDomain(), nil
}
