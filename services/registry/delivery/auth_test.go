package delivery

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"testing"

	"civilregistry/domain"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthUC struct {
	registerHits int
	dupEmail     string
}

func (f *fakeAuthUC) Register(ctx context.Context, payload *domain.RegisterPayload) (*domain.User, error) {
	f.registerHits++
	if payload.Email == f.dupEmail {
		return nil, domain.ErrDuplicateEmail
	}
	role := payload.Role
	if role == "" {
		role = domain.RoleUser
	}
	return &domain.User{ID: 1, Email: payload.Email, Role: role, FullName: payload.FullName}, nil
}

func (f *fakeAuthUC) Login(ctx context.Context, payload *domain.LoginPayload) (*domain.User, error) {
	if payload.Password != "secret1" {
		return nil, domain.ErrInvalidCredentials
	}
	return &domain.User{ID: 1, Email: payload.Email, Role: domain.RoleUser, FullName: "A", BirthPlace: "X", Address: "Y"}, nil
}

func newAuthTestApp(uc domain.AuthUseCase) *fiber.App {
	app := fiber.New()
	NewAuthHandler(app, uc)
	return app
}

func buildJSONRequest(t *testing.T, method, path string, body interface{}) *http.Request {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := sonic.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}, token string) *http.Response {
	t.Helper()
	req := buildJSONRequest(t, http.MethodPost, path, body)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, sonic.Unmarshal(raw, out))
}

func TestRegisterIssuesTokenOnSuccess(t *testing.T) {
	t.Setenv("BYTE_KEY", "test-signing-key")
	uc := &fakeAuthUC{}
	app := newAuthTestApp(uc)

	resp := postJSON(t, app, "/api/auth/register", domain.RegisterPayload{
		Email:      "a@x.com",
		Password:   "secret1",
		FullName:   "A",
		BirthPlace: "X",
		Address:    "Y",
	}, "")

	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var body domain.AuthResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, "a@x.com", body.Email)
	assert.Equal(t, domain.RoleUser, body.Role)
	assert.NotEmpty(t, body.Token)
}

func TestRegisterValidatesBeforeStorage(t *testing.T) {
	uc := &fakeAuthUC{}
	app := newAuthTestApp(uc)

	resp := postJSON(t, app, "/api/auth/register", domain.RegisterPayload{
		Email: "a@x.com",
		// no password, no profile fields
	}, "")

	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, uc.registerHits, "usecase must not run on validation failure")
}

func TestRegisterShortPasswordRejected(t *testing.T) {
	uc := &fakeAuthUC{}
	app := newAuthTestApp(uc)

	resp := postJSON(t, app, "/api/auth/register", domain.RegisterPayload{
		Email:      "a@x.com",
		Password:   "abc",
		FullName:   "A",
		BirthPlace: "X",
		Address:    "Y",
	}, "")

	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, uc.registerHits)
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	uc := &fakeAuthUC{dupEmail: "taken@x.com"}
	app := newAuthTestApp(uc)

	resp := postJSON(t, app, "/api/auth/register", domain.RegisterPayload{
		Email:      "taken@x.com",
		Password:   "secret1",
		FullName:   "A",
		BirthPlace: "X",
		Address:    "Y",
	}, "")

	require.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestLoginWrongPasswordUnauthorized(t *testing.T) {
	uc := &fakeAuthUC{}
	app := newAuthTestApp(uc)

	resp := postJSON(t, app, "/api/auth/login", domain.LoginPayload{
		Email:    "a@x.com",
		Password: "wrong",
	}, "")

	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestLoginReturnsAccountSummaryAndToken(t *testing.T) {
	t.Setenv("BYTE_KEY", "test-signing-key")
	uc := &fakeAuthUC{}
	app := newAuthTestApp(uc)

	resp := postJSON(t, app, "/api/auth/login", domain.LoginPayload{
		Email:    "a@x.com",
		Password: "secret1",
	}, "")

	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body domain.AuthResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, "a@x.com", body.Email)
	assert.Equal(t, "A", body.FullName)
	assert.NotEmpty(t, body.Token)
}
