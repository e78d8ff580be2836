package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"restaurant-reviews/internal/api"
	"restaurant-reviews/internal/database"
	"restaurant-reviews/internal/model"
	"restaurant-reviews/internal/service"
	"restaurant-reviews/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newJSONCtx(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func restore() {
	hashPassword = service.HashPassword
	authenticateUser = service.AuthenticateUser
	issueAccessToken = service.IssueAccessToken
	createUser = store.CreateUser
	getUserByUsername = store.GetUserByUsername
}

func TestRegisterHandler(t *testing.T) {
	e := echo.New()
	e.Validator = api.NewValidator()

	t.Run("bind error", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newJSONCtx(e, "not-json")
		err := RegisterHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "invalid request body")
	})

	t.Run("missing password", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newJSONCtx(e, `{"username":"alice","email":"alice@example.com"}`)
		err := RegisterHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "missing required field: password")
	})

	t.Run("bad email", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newJSONCtx(e, `{"username":"alice","email":"not-an-email","password":"secret"}`)
		err := RegisterHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "invalid email format")
	})

	t.Run("duplicate username", func(t *testing.T) {
		t.Cleanup(restore)
		hashPassword = func(string) (string, error) { return "h", nil }
		createUser = func(context.Context, database.DB, *model.User) (*model.User, error) {
			return nil, store.ErrDuplicate
		}
		ctx, rec := newJSONCtx(e, `{"username":"alice","email":"alice@example.com","password":"secret"}`)
		err := RegisterHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "already exists")
	})

	t.Run("success forces respondent role", func(t *testing.T) {
		t.Cleanup(restore)
		now := time.Now().UTC()
		hashPassword = func(p string) (string, error) { require.Equal(t, "secret", p); return "h", nil }
		var created model.User
		createUser = func(_ context.Context, _ database.DB, u *model.User) (*model.User, error) {
			created = *u
			u.ID = 1
			u.CreatedAt = now
			u.UpdatedAt = now
			return u, nil
		}
		// role 欄位就算塞進 payload 也會被忽略
		ctx, rec := newJSONCtx(e, `{"username":"alice","email":"Alice@EXAMPLE.com","password":"secret","role":"admin"}`)
		err := RegisterHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, rec.Code)
		require.Equal(t, model.RoleRespondent, created.Role)
		require.Equal(t, "alice@example.com", created.Email)
		require.Contains(t, rec.Body.String(), "\"id\":1")
		require.NotContains(t, rec.Body.String(), "password")
	})
}

func TestLoginHandler(t *testing.T) {
	e := echo.New()
	e.Validator = api.NewValidator()

	t.Run("missing username", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newJSONCtx(e, `{"password":"secret"}`)
		err := LoginHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "missing required field: username")
	})

	t.Run("unknown user", func(t *testing.T) {
		t.Cleanup(restore)
		getUserByUsername = func(context.Context, database.DB, string) (*model.User, error) {
			return nil, store.ErrNotFound
		}
		ctx, rec := newJSONCtx(e, `{"username":"ghost","password":"secret"}`)
		err := LoginHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Body.String(), "invalid credentials")
	})

	t.Run("store error", func(t *testing.T) {
		t.Cleanup(restore)
		getUserByUsername = func(context.Context, database.DB, string) (*model.User, error) {
			return nil, errors.New("database fail")
		}
		ctx, rec := newJSONCtx(e, `{"username":"alice","password":"secret"}`)
		err := LoginHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("bad password", func(t *testing.T) {
		t.Cleanup(restore)
		getUserByUsername = func(context.Context, database.DB, string) (*model.User, error) {
			return &model.User{ID: 1, Username: "alice"}, nil
		}
		authenticateUser = func(context.Context, model.User, string) (*model.User, error) {
			return nil, errors.New("invalid password")
		}
		ctx, rec := newJSONCtx(e, `{"username":"alice","password":"wrong"}`)
		err := LoginHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Body.String(), "invalid credentials")
	})

	t.Run("token error", func(t *testing.T) {
		t.Cleanup(restore)
		user := model.User{ID: 1, Username: "alice", Role: model.RoleRespondent}
		getUserByUsername = func(context.Context, database.DB, string) (*model.User, error) { return &user, nil }
		authenticateUser = func(_ context.Context, u model.User, _ string) (*model.User, error) { return &u, nil }
		issueAccessToken = func(model.User, time.Duration) (string, error) { return "", errors.New("no secret") }
		ctx, rec := newJSONCtx(e, `{"username":"alice","password":"secret"}`)
		err := LoginHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		user := model.User{ID: 7, Username: "alice", Email: "alice@example.com", Role: model.RoleRespondent}
		getUserByUsername = func(_ context.Context, _ database.DB, name string) (*model.User, error) {
			require.Equal(t, "alice", name)
			return &user, nil
		}
		authenticateUser = func(_ context.Context, u model.User, pw string) (*model.User, error) {
			require.Equal(t, "secret", pw)
			return &u, nil
		}
		issueAccessToken = func(u model.User, ttl time.Duration) (string, error) {
			require.Equal(t, 7, u.ID)
			require.Equal(t, tokenTTL, ttl)
			return "token-123", nil
		}
		ctx, rec := newJSONCtx(e, `{"username":"alice","password":"secret"}`)
		err := LoginHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "\"access_token\":\"token-123\"")
		require.Contains(t, rec.Body.String(), "\"id\":7")
	})
}
