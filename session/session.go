// Package session holds the admin authentication state consumed by the
// admin screens. Credential checking goes through the Verifier
// interface so the transport can change without touching consumers.
package session

import (
	"context"
	"sync"

	"github.com/choihyeonji00/project-kiosk/entity"
	"github.com/choihyeonji00/project-kiosk/gateway"
)

// Result is the credential-check outcome. A wrong password is a result
// with Success false, never an error; errors mean the check itself
// could not run (transport, server down).
type Result struct {
	Success bool
	Message string
	Token   string
	User    *entity.Admin
}

type Verifier interface {
	Verify(ctx context.Context, username, password string) (Result, error)
}

// GatewayVerifier checks credentials against the backend login
// endpoint, credentials in the request body.
type GatewayVerifier struct {
	API *gateway.Client
}

func (v *GatewayVerifier) Verify(ctx context.Context, username, password string) (Result, error) {
	res, err := v.API.AdminLogin(ctx, username, password)
	if err != nil {
		return Result{}, err
	}
	return Result{Success: res.Success, Message: res.Message, Token: res.Token, User: res.User}, nil
}

// AdminSession is the authenticated/unauthenticated flag plus the
// logged-in admin record.
type AdminSession struct {
	mu       sync.Mutex
	verifier Verifier
	user     *entity.Admin
	token    string
}

func New(v Verifier) *AdminSession {
	return &AdminSession{verifier: v}
}

func (s *AdminSession) Login(ctx context.Context, username, password string) (Result, error) {
	res, err := s.verifier.Verify(ctx, username, password)
	if err != nil {
		return Result{}, err
	}
	if res.Success {
		s.mu.Lock()
		s.user = res.User
		s.token = res.Token
		s.mu.Unlock()
	}
	return res, nil
}

func (s *AdminSession) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil
}

func (s *AdminSession) User() *entity.Admin {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

func (s *AdminSession) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *AdminSession) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.token = ""
}
