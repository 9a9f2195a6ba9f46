// Package services contains application services for the newsdesk client.
// Each service composes the REST client with the session: it snapshots the
// current credentials, performs the call and hands failures back to the
// session so that a rejected token ends it.
//
// This file defines the authentication service: login, register, logout,
// re-verification and the liveness probe.
package services

import (
	"context"

	"github.com/dmitrijs2005/newsdesk/internal/client/models"
	"github.com/dmitrijs2005/newsdesk/internal/client/session"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login/Register: authenticate against the server and persist the token.
//   - Logout: forget the session locally.
//   - Refresh: re-verify the current token.
//   - Ping: check server liveness.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.User, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, error)
	Logout(ctx context.Context)
	Refresh(ctx context.Context) error
	Ping(ctx context.Context) error
}

// Pinger probes the API.
type Pinger interface {
	Ping(ctx context.Context) error
}

type authService struct {
	pinger  Pinger
	session *session.Store
}

func NewAuthService(pinger Pinger, sess *session.Store) AuthService {
	return &authService{pinger: pinger, session: sess}
}

func (a *authService) Login(ctx context.Context, email, password string) (*models.User, error) {
	return a.session.Login(ctx, email, password)
}

func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	return a.session.Register(ctx, req)
}

func (a *authService) Logout(ctx context.Context) {
	a.session.Logout(ctx)
}

func (a *authService) Refresh(ctx context.Context) error {
	return a.session.Refresh(ctx)
}

func (a *authService) Ping(ctx context.Context) error {
	return a.pinger.Ping(ctx)
}
