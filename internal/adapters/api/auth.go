package api

import (
	"context"
	"net/http"

	domainauth "github.com/dms-platform/dms-cli/internal/domain/auth"
	"github.com/dms-platform/dms-cli/internal/domain/model"
	"github.com/dms-platform/dms-cli/internal/ports"
)

var _ ports.AuthProvider = (*Client)(nil)

// signInResponse is the auth service's sign-in payload: credential token
// plus the actor summary.
type signInResponse struct {
	Token    string            `json:"token"`
	ID       int64             `json:"id"`
	Username string            `json:"username"`
	Email    string            `json:"email"`
	Roles    []domainauth.Role `json:"roles"`
}

// SignIn exchanges username/password for a session. Failures surface to the
// caller unchanged; no retry.
func (c *Client) SignIn(ctx context.Context, username, password string) (domainauth.Session, error) {
	body := map[string]string{"username": username, "password": password}

	var resp signInResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/signin", nil, body, &resp); err != nil {
		return domainauth.Session{}, err
	}

	return domainauth.Session{
		Actor: domainauth.Actor{
			ID:       resp.ID,
			Username: resp.Username,
			Email:    resp.Email,
			Roles:    resp.Roles,
		},
		Token: resp.Token,
	}, nil
}

// SignUp creates an account. The endpoint is on the exemption list: an
// unauthorized response here never forces a logout.
func (c *Client) SignUp(ctx context.Context, req model.SignUpRequest) (model.User, error) {
	var user model.User
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/signup", nil, req, &user); err != nil {
		return model.User{}, err
	}
	return user, nil
}
