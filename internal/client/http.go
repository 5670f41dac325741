package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"verichain/internal/api"
	"verichain/internal/domain"
	"verichain/internal/qr"
)

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("verichaind: %d %s", e.Code, http.StatusText(e.Code))
	}
	return fmt.Sprintf("verichaind: %s", e.Message)
}

// HTTP is a JSON client for the verichaind API.
type HTTP struct {
	Base string
	HTTP *http.Client
}

// NewHTTP returns a client for base, e.g. "http://127.0.0.1:7600".
func NewHTTP(base string) *HTTP {
	return &HTTP{Base: strings.TrimRight(base, "/"), HTTP: http.DefaultClient}
}

func (c *HTTP) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}

func (c *HTTP) CreateSession(ctx context.Context) (domain.Snapshot, error) {
	var out domain.Snapshot
	return out, c.do(ctx, http.MethodPost, "/sessions", nil, &out)
}

func (c *HTTP) Sessions(ctx context.Context) ([]domain.Snapshot, error) {
	var out []domain.Snapshot
	return out, c.do(ctx, http.MethodGet, "/sessions", nil, &out)
}

func (c *HTTP) Session(ctx context.Context, id domain.SessionID) (domain.Snapshot, error) {
	var out domain.Snapshot
	return out, c.do(ctx, http.MethodGet, sessionPath(id, ""), nil, &out)
}

func (c *HTTP) StartSession(ctx context.Context, id domain.SessionID) (domain.Snapshot, error) {
	var out domain.Snapshot
	return out, c.do(ctx, http.MethodPost, sessionPath(id, "/start"), nil, &out)
}

func (c *HTTP) ResetSession(ctx context.Context, id domain.SessionID) (domain.Snapshot, error) {
	var out domain.Snapshot
	return out, c.do(ctx, http.MethodPost, sessionPath(id, "/reset"), nil, &out)
}

func (c *HTTP) FailSession(ctx context.Context, id domain.SessionID, reason string) (domain.Snapshot, error) {
	var out domain.Snapshot
	return out, c.do(ctx, http.MethodPost, sessionPath(id, "/fail"), api.FailRequest{Reason: reason}, &out)
}

func (c *HTTP) DeleteSession(ctx context.Context, id domain.SessionID) error {
	return c.do(ctx, http.MethodDelete, sessionPath(id, ""), nil, nil)
}

func (c *HTTP) SessionQR(ctx context.Context, id domain.SessionID) (qr.Payload, error) {
	var out qr.Payload
	return out, c.do(ctx, http.MethodGet, sessionPath(id, "/qr"), nil, &out)
}

func (c *HTTP) Wallets(ctx context.Context) ([]domain.WalletProvider, error) {
	var out []domain.WalletProvider
	return out, c.do(ctx, http.MethodGet, "/wallets", nil, &out)
}

func (c *HTTP) WalletState(ctx context.Context) (domain.Connection, error) {
	var out domain.Connection
	return out, c.do(ctx, http.MethodGet, "/wallet", nil, &out)
}

func (c *HTTP) ConnectWallet(ctx context.Context, id domain.WalletID) (domain.Connection, error) {
	var out domain.Connection
	return out, c.do(ctx, http.MethodPost, "/wallet/connect", api.ConnectRequest{WalletID: id}, &out)
}

func (c *HTTP) DisconnectWallet(ctx context.Context) (domain.Connection, error) {
	var out domain.Connection
	return out, c.do(ctx, http.MethodPost, "/wallet/disconnect", nil, &out)
}

func (c *HTTP) Credentials(ctx context.Context) ([]domain.Credential, error) {
	var out []domain.Credential
	return out, c.do(ctx, http.MethodGet, "/credentials", nil, &out)
}

func (c *HTTP) Certificates(ctx context.Context) ([]domain.Certificate, error) {
	var out []domain.Certificate
	return out, c.do(ctx, http.MethodGet, "/certificates", nil, &out)
}

func (c *HTTP) Certificate(ctx context.Context, id domain.CertificateID) (domain.Certificate, error) {
	var out domain.Certificate
	return out, c.do(ctx, http.MethodGet, "/certificates/"+url.PathEscape(id.String()), nil, &out)
}

func sessionPath(id domain.SessionID, suffix string) string {
	return "/sessions/" + url.PathEscape(id.String()) + suffix
}

func (c *HTTP) do(ctx context.Context, method, path string, in, out any) error {
	var body bytes.Buffer
	if in != nil {
		if err := json.NewEncoder(&body).Encode(in); err != nil {
			return err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, c.Base+path, &body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		var apiErr api.ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return &StatusError{Code: resp.StatusCode, Message: apiErr.Error}
	}
	if out != nil && resp.StatusCode != http.StatusNoContent {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
