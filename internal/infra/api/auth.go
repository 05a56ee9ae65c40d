package api

import (
	"context"
	"encoding/json"
	"net/http"

	"stay-client/internal/domain/account"
	"stay-client/internal/infra"
	"stay-client/internal/pkg/session"
)

func (c *Client) Login(ctx context.Context, email, password string) (*account.LoginOutcome, error) {
	body := map[string]string{"email": email, "password": password}
	return c.authenticate(ctx, call{method: http.MethodPost, path: "/auth/login", body: body})
}

func (c *Client) VerifyTwoFactor(ctx context.Context, userID, code string) (*account.LoginOutcome, error) {
	body := map[string]string{"userId": userID, "token": code}
	return c.authenticate(ctx, call{method: http.MethodPost, path: "/auth/verify-2fa", body: body})
}

// The login endpoints put requiresTwoFactor beside the envelope's data, so
// they are decoded here instead of through do.
func (c *Client) authenticate(ctx context.Context, req call) (*account.LoginOutcome, error) {
	raw, status, err := c.send(ctx, session.Anonymous(), req)
	if err != nil {
		return nil, err
	}

	var resp loginResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, infra.WrapRemoteErr(c.logger, infra.KindDecode, status, "malformed response from "+req.path, err)
	}

	switch {
	case resp.RequiresTwoFactor:
		return &account.LoginOutcome{RequiresTwoFactor: true, PendingUserID: resp.UserID}, nil
	case resp.Success && resp.Data != nil && resp.Data.Token != "":
		return &account.LoginOutcome{User: resp.Data.Usuario.toDomain(), Token: resp.Data.Token}, nil
	default:
		return nil, infra.WrapRemoteErr(c.logger, infra.KindUnauthorized, status, nonEmpty(resp.Message, "login rejected"), nil)
	}
}
