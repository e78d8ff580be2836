// File: internal/handler/auth/auth.go
package auth

import (
	"errors"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"restaurant-reviews/internal/api"
	"restaurant-reviews/internal/database"
	"restaurant-reviews/internal/model"
	"restaurant-reviews/internal/service"
	"restaurant-reviews/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

var (
	hashPassword      = service.HashPassword
	authenticateUser  = service.AuthenticateUser
	issueAccessToken  = service.IssueAccessToken
	createUser        = store.CreateUser
	getUserByUsername = store.GetUserByUsername
)

const tokenTTL = 24 * time.Hour

// RegisterHandler 自助註冊，角色一律為 respondent
// @Summary     Register a new respondent
// @Description 以 username/email/password 建立帳號，角色固定為 respondent
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body api.RegisterRequest true "registration payload"
// @Success     201 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/register [post]
func RegisterHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: api.ValidationMessage(err)})
		}

		req.Email = strings.ToLower(req.Email)
		if _, err := mail.ParseAddress(req.Email); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid email format"})
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
		}

		user, err := createUser(c.Request().Context(), db, &model.User{
			Username:     req.Username,
			Email:        req.Email,
			PasswordHash: hash,
			Role:         model.RoleRespondent,
		})
		if err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "username or email already exists"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to create user"})
		}

		return c.JSON(http.StatusCreated, api.NewUserResponse(user))
	}
}

// LoginHandler 使用 Username/Password 驗證並回傳 JWT
// @Summary     Log in
// @Description 使用 Username 與 Password 進行驗證，回傳存取令牌與使用者資料
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body api.LoginRequest true "login payload"
// @Success     200 {object} api.LoginResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/login [post]
func LoginHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: api.ValidationMessage(err)})
		}

		user, err := getUserByUsername(c.Request().Context(), db, req.Username)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				logrus.WithField("username", req.Username).Warn("login failed: unknown user")
				return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid credentials"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to load user"})
		}

		authUser, err := authenticateUser(c.Request().Context(), *user, req.Password)
		if err != nil {
			logrus.WithField("username", req.Username).Warn("login failed: bad password")
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid credentials"})
		}

		token, err := issueAccessToken(*authUser, tokenTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue token"})
		}

		return c.JSON(http.StatusOK, api.LoginResponse{
			AccessToken: token,
			User:        api.NewUserResponse(authUser),
		})
	}
}
