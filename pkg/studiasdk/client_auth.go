package studiasdk

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/studia-cl/studia-mobile/pkg/credstore"
)

// Fallback messages shown when the backend provides nothing usable.
const (
	msgLoginFailed   = "Error al iniciar sesión. Verifica tus credenciales."
	msgProfileFailed = "Error al obtener perfil"
	msgBadLoginReply = "Error en la respuesta del servidor"
	msgLogoutFailed  = "Error al cerrar sesión"
)

// Login authenticates with email and password. On success the token pair
// and user record are persisted; a storage failure clears everything so no
// partial credential set survives.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginData, error) {
	raw, err := c.Request(ctx, http.MethodPost, "/auth/login/", nil, map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, newAPIError(err, msgLoginFailed)
	}

	var reply struct {
		Success bool      `json:"success"`
		Message string    `json:"message"`
		User    User      `json:"user"`
		Tokens  TokenPair `json:"tokens"`
	}
	if err := json.Unmarshal(raw, &reply); err != nil {
		return nil, newAPIError(fmt.Errorf("studiasdk: decode login response: %w", err), msgBadLoginReply)
	}
	if !reply.Success || reply.Tokens.Access == "" || reply.Tokens.Refresh == "" {
		msg := reply.Message
		if msg == "" {
			msg = msgBadLoginReply
		}
		return nil, &APIError{Message: msg}
	}

	if err := c.persistLogin(ctx, reply.Tokens, reply.User); err != nil {
		c.clearCredentials(ctx)
		return nil, newAPIError(err, msgLoginFailed)
	}

	c.logger.Info("login succeeded", "user_id", reply.User.ID)
	return &LoginData{User: reply.User, Tokens: reply.Tokens}, nil
}

func (c *Client) persistLogin(ctx context.Context, tokens TokenPair, user User) error {
	userJSON, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("studiasdk: encode user: %w", err)
	}

	if err := c.creds.Set(ctx, credstore.KeyAccessToken, tokens.Access); err != nil {
		return fmt.Errorf("studiasdk: persist access token: %w", err)
	}
	if err := c.creds.Set(ctx, credstore.KeyRefreshToken, tokens.Refresh); err != nil {
		return fmt.Errorf("studiasdk: persist refresh token: %w", err)
	}
	if err := c.creds.Set(ctx, credstore.KeyUser, string(userJSON)); err != nil {
		return fmt.Errorf("studiasdk: persist user: %w", err)
	}
	return nil
}

// Logout clears the stored credentials. Best-effort: callers must treat the
// session as ended even when this returns an error.
func (c *Client) Logout(ctx context.Context) error {
	err := c.creds.Remove(ctx,
		credstore.KeyAccessToken,
		credstore.KeyRefreshToken,
		credstore.KeyUser,
	)
	if err != nil {
		return newAPIError(err, msgLogoutFailed)
	}
	return nil
}

// Profile fetches the authenticated student's profile from the backend.
func (c *Client) Profile(ctx context.Context) (*User, error) {
	var reply struct {
		Success bool `json:"success"`
		Data    User `json:"data"`
	}
	if err := c.getJSON(ctx, "/auth/perfil/", nil, &reply, msgProfileFailed); err != nil {
		return nil, err
	}
	if !reply.Success {
		return nil, &APIError{Message: msgProfileFailed}
	}
	return &reply.Data, nil
}

// StoredUser returns the locally cached user record, or
// credstore.ErrNotFound when none is stored.
func (c *Client) StoredUser(ctx context.Context) (*User, error) {
	raw, err := c.creds.Get(ctx, credstore.KeyUser)
	if err != nil {
		return nil, err
	}

	var user User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, fmt.Errorf("studiasdk: decode stored user: %w", err)
	}
	return &user, nil
}

// IsAuthenticated reports whether an access token is stored. Storage read
// failures count as unauthenticated.
func (c *Client) IsAuthenticated(ctx context.Context) bool {
	token, err := c.creds.Get(ctx, credstore.KeyAccessToken)
	if err != nil {
		if !errors.Is(err, credstore.ErrNotFound) {
			c.logger.Warn("authentication check failed", "error", err)
		}
		return false
	}
	return token != ""
}
