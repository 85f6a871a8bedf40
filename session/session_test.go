package session

import (
	"context"
	"errors"
	"testing"

	"github.com/choihyeonji00/project-kiosk/entity"
)

type fakeVerifier struct {
	res Result
	err error
}

func (f *fakeVerifier) Verify(ctx context.Context, username, password string) (Result, error) {
	return f.res, f.err
}

func TestAdminSession_Login(t *testing.T) {
	admin := &entity.Admin{Username: "admin", Role: "admin"}
	s := New(&fakeVerifier{res: Result{Success: true, Token: "tok-1", User: admin}})

	res, err := s.Login(context.Background(), "admin", "secret")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if !res.Success || !s.Authenticated() || s.Token() != "tok-1" || s.User() != admin {
		t.Errorf("session = auth:%v token:%q user:%v", s.Authenticated(), s.Token(), s.User())
	}

	s.Logout()
	if s.Authenticated() || s.Token() != "" || s.User() != nil {
		t.Errorf("logout left state behind")
	}
}

func TestAdminSession_FailedLoginIsNotAnError(t *testing.T) {
	s := New(&fakeVerifier{res: Result{Success: false, Message: "Invalid credentials"}})

	res, err := s.Login(context.Background(), "admin", "wrong")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if res.Success || res.Message != "Invalid credentials" {
		t.Errorf("result = %+v", res)
	}
	if s.Authenticated() {
		t.Errorf("failed login authenticated the session")
	}
}

func TestAdminSession_VerifierErrorPassesThrough(t *testing.T) {
	boom := errors.New("server unreachable")
	s := New(&fakeVerifier{err: boom})

	if _, err := s.Login(context.Background(), "a", "b"); !errors.Is(err, boom) {
		t.Fatalf("Login() error = %v, want %v", err, boom)
	}
	if s.Authenticated() {
		t.Errorf("error login authenticated the session")
	}
}
