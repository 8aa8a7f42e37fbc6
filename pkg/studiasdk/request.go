package studiasdk

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/oklog/ulid/v2"

	"github.com/studia-cl/studia-mobile/pkg/credstore"
)

const refreshPath = "/auth/token/refresh/"

// ErrNoRefreshToken reports that an authentication failure could not be
// recovered because no refresh token is stored.
var ErrNoRefreshToken = errors.New("studiasdk: no refresh token stored")

// Request performs one backend call and returns the raw response body.
//
// The request is augmented before dispatch: bearer header when an access
// token is stored, X-Tenant-Schema from the tenant resolver, JSON content
// headers and a ULID request id. A 401 response triggers at most one
// refresh-and-replay cycle; the replayed request's outcome is final. All
// other non-2xx responses surface as *StatusError.
func (c *Client) Request(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("studiasdk: encode request body: %w", err)
		}
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("studiasdk: rate limit wait: %w", err)
		}
	}

	reqID := ulid.Make().String()

	bearer, err := c.creds.Get(ctx, credstore.KeyAccessToken)
	if err != nil && !errors.Is(err, credstore.ErrNotFound) {
		// Treat an unreadable store as "no token"; the backend decides.
		c.logger.Warn("access token read failed", "request_id", reqID, "error", err)
		bearer = ""
	}

	retried := false
	for {
		status, respBody, err := c.dispatch(ctx, method, path, query, payload, bearer, reqID)
		if err != nil {
			return nil, err
		}

		if status == http.StatusUnauthorized && !retried {
			authErr := &StatusError{Code: status, Body: respBody}

			access, refreshErr := c.refreshAccessToken(ctx, reqID)
			if refreshErr != nil {
				c.logger.Info("token refresh failed, credentials cleared",
					"request_id", reqID, "error", refreshErr)
				return nil, authErr
			}

			// Replay exactly once with the new token. Whatever comes
			// back, including another 401, is the final outcome.
			bearer = access
			retried = true
			continue
		}

		if status < 200 || status >= 300 {
			return nil, &StatusError{Code: status, Body: respBody}
		}
		return respBody, nil
	}
}

// dispatch builds and sends a single augmented request.
func (c *Client) dispatch(ctx context.Context, method, path string, query url.Values, payload []byte, bearer, reqID string) (int, []byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var rd io.Reader
	if payload != nil {
		rd = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return 0, nil, fmt.Errorf("studiasdk: create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", reqID)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	if tenant := c.tenant.Tenant(ctx); tenant != "" {
		req.Header.Set("X-Tenant-Schema", tenant)
	}

	c.logger.Debug("request", "request_id", reqID, "method", method, "path", path)

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("studiasdk: send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("studiasdk: read response: %w", err)
	}

	c.logger.Debug("response", "request_id", reqID, "status", resp.StatusCode)
	return resp.StatusCode, respBody, nil
}

// refreshAccessToken runs the refresh protocol: read the refresh token,
// exchange it for a new access token and persist it. Every failure path
// clears the three credential keys so no partial pair survives.
func (c *Client) refreshAccessToken(ctx context.Context, reqID string) (string, error) {
	refresh, err := c.creds.Get(ctx, credstore.KeyRefreshToken)
	if err != nil || refresh == "" {
		c.clearCredentials(ctx)
		return "", ErrNoRefreshToken
	}

	payload, err := json.Marshal(map[string]string{"refresh": refresh})
	if err != nil {
		c.clearCredentials(ctx)
		return "", fmt.Errorf("studiasdk: encode refresh request: %w", err)
	}

	// The refresh call is deliberately bare: no bearer, no tenant header.
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+refreshPath, bytes.NewReader(payload))
	if err != nil {
		c.clearCredentials(ctx)
		return "", fmt.Errorf("studiasdk: create refresh request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", reqID)

	resp, err := c.http.Do(req)
	if err != nil {
		c.clearCredentials(ctx)
		return "", fmt.Errorf("studiasdk: send refresh request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.clearCredentials(ctx)
		return "", fmt.Errorf("studiasdk: read refresh response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.clearCredentials(ctx)
		return "", &StatusError{Code: resp.StatusCode, Body: respBody}
	}

	var tokenResp struct {
		Access string `json:"access"`
	}
	if err := json.Unmarshal(respBody, &tokenResp); err != nil || tokenResp.Access == "" {
		c.clearCredentials(ctx)
		return "", fmt.Errorf("studiasdk: malformed refresh response")
	}

	if err := c.creds.Set(ctx, credstore.KeyAccessToken, tokenResp.Access); err != nil {
		c.clearCredentials(ctx)
		return "", fmt.Errorf("studiasdk: persist access token: %w", err)
	}

	c.logger.Debug("access token refreshed", "request_id", reqID)
	return tokenResp.Access, nil
}

// clearCredentials removes the token pair and cached user. Best-effort:
// a failing store must not mask the original authentication error.
func (c *Client) clearCredentials(ctx context.Context) {
	err := c.creds.Remove(ctx,
		credstore.KeyAccessToken,
		credstore.KeyRefreshToken,
		credstore.KeyUser,
	)
	if err != nil {
		c.logger.Warn("credential clear failed", "error", err)
	}
}

// getJSON issues a GET and decodes the response into target, normalizing
// every failure into an *APIError with the given fallback message.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, target any, fallback string) error {
	raw, err := c.Request(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return newAPIError(err, fallback)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return newAPIError(fmt.Errorf("studiasdk: decode response: %w", err), fallback)
	}
	return nil
}

// postJSON issues a POST and decodes the response into target (which may be
// nil when the body is irrelevant), normalizing failures like getJSON.
func (c *Client) postJSON(ctx context.Context, path string, body, target any, fallback string) error {
	raw, err := c.Request(ctx, http.MethodPost, path, nil, body)
	if err != nil {
		return newAPIError(err, fallback)
	}
	if target == nil {
		return nil
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return newAPIError(fmt.Errorf("studiasdk: decode response: %w", err), fallback)
	}
	return nil
}
