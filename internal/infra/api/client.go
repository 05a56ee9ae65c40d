package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"stay-client/internal/infra"
	"stay-client/internal/pkg/config"
	"stay-client/internal/pkg/errs"
	"stay-client/internal/pkg/session"
)

const (
	headerIdempotencyKey = "Idempotency-Key"
	maxErrorBodyBytes    = 64 << 10
)

// Client is a thin wrapper over the hotel REST API. Every response is the
// {success, message, data} envelope except binary downloads.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	logger  *slog.Logger
}

func NewClient(cfg config.APIConfig, logger *slog.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, errs.Wrapf(err, "invalid API_BASE_URL %q", cfg.BaseURL)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, errs.Newf("API_BASE_URL must be absolute, got %q", cfg.BaseURL)
	}
	return &Client{
		baseURL: base,
		http:    &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
	}, nil
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Mensaje string          `json:"mensaje"`
	Data    json.RawMessage `json:"data"`
}

func (e envelope) message() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Mensaje
}

// call describes one request. raw, when set, is sent as is with
// contentType instead of JSON-encoding body.
type call struct {
	method      string
	path        string
	query       url.Values
	body        any
	raw         io.Reader
	contentType string
	headers     map[string]string
}

// do issues the call and decodes the envelope's data into out (when non-nil).
func (c *Client) do(ctx context.Context, sess session.Session, req call, out any) error {
	body, status, err := c.send(ctx, sess, req)
	if err != nil {
		return err
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return infra.WrapRemoteErr(c.logger, infra.KindDecode, status, "malformed response from "+req.path, err)
	}
	if !env.Success {
		return infra.WrapRemoteErr(c.logger, infra.KindValidation, status, nonEmpty(env.message(), "request rejected"), nil)
	}
	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return infra.WrapRemoteErr(c.logger, infra.KindDecode, status, "malformed data from "+req.path, err)
	}
	return nil
}

// send returns the raw body of a 2xx response; anything else becomes a RemoteError.
func (c *Client) send(ctx context.Context, sess session.Session, req call) ([]byte, int, error) {
	httpReq, err := c.newRequest(ctx, sess, req)
	if err != nil {
		return nil, 0, err
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, 0, infra.WrapRemoteErr(c.logger, infra.KindTransport, 0, req.method+" "+req.path+" failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, resp.StatusCode, c.statusError(resp, req)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, infra.WrapRemoteErr(c.logger, infra.KindTransport, resp.StatusCode, "reading response of "+req.path, err)
	}
	return body, resp.StatusCode, nil
}

func (c *Client) newRequest(ctx context.Context, sess session.Session, req call) (*http.Request, error) {
	u := *c.baseURL
	u.Path = c.baseURL.Path + req.path
	if len(req.query) > 0 {
		u.RawQuery = req.query.Encode()
	}

	reader := req.raw
	contentType := req.contentType
	if reader == nil && req.body != nil {
		payload, err := json.Marshal(req.body)
		if err != nil {
			return nil, errs.Wrap(err, "encoding request body")
		}
		reader = bytes.NewReader(payload)
		contentType = "application/json"
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, u.String(), reader)
	if err != nil {
		return nil, errs.Wrap(err, "building request")
	}
	httpReq.Header.Set("Accept", "application/json")
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	if auth := sess.AuthorizationHeader(); auth != "" {
		httpReq.Header.Set("Authorization", auth)
	}
	for k, v := range req.headers {
		httpReq.Header.Set(k, v)
	}
	return httpReq, nil
}

func (c *Client) statusError(resp *http.Response, req call) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	var env envelope
	_ = json.Unmarshal(raw, &env)

	msg := nonEmpty(env.message(), fmt.Sprintf("%s %s returned %d", req.method, req.path, resp.StatusCode))
	return infra.WrapRemoteErr(c.logger, kindForStatus(resp.StatusCode), resp.StatusCode, msg, nil)
}

func kindForStatus(status int) infra.RemoteErrorKind {
	switch {
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return infra.KindUnauthorized
	case status == http.StatusNotFound:
		return infra.KindNotFound
	case status == http.StatusConflict:
		return infra.KindConflict
	case status == http.StatusBadRequest, status == http.StatusUnprocessableEntity:
		return infra.KindValidation
	default:
		return infra.KindServer
	}
}

func nonEmpty(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func escape(id string) string {
	return url.PathEscape(id)
}
