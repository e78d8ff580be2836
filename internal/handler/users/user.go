// File: internal/handler/users/user.go
package users

import (
	"errors"
	"net/http"
	"net/mail"
	"strconv"
	"strings"

	"restaurant-reviews/internal/access"
	"restaurant-reviews/internal/api"
	"restaurant-reviews/internal/database"
	"restaurant-reviews/internal/middleware"
	"restaurant-reviews/internal/model"
	"restaurant-reviews/internal/service"
	"restaurant-reviews/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	hashPassword = service.HashPassword
	createUser   = store.CreateUser
	getUserByID  = store.GetUserByID
	listUsers    = store.ListUsers
	updateUser   = store.UpdateUser
	deleteUser   = store.DeleteUser
)

// @Summary     List all users
// @Description 取得所有使用者（僅限管理員）
// @Tags        users
// @Produce     json
// @Success     200 {array} api.UserResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		users, err := listUsers(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to list users"})
		}
		resp := make([]api.UserResponse, 0, len(users))
		for i := range users {
			resp = append(resp, api.NewUserResponse(&users[i]))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Get a user by ID
// @Description 管理員可查任何人，respondent 只能查自己
// @Tags        users
// @Produce     json
// @Param       user_id path int true "使用者 ID"
// @Success     200 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/{user_id} [get]
func GetUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("user_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid user ID"})
		}

		caller := middleware.CallerFromContext(c)
		if err := access.Evaluate(caller, access.OpReadUser, id); err != nil {
			if errors.Is(err, access.ErrUnauthenticated) {
				return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "authentication required"})
			}
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: "access denied"})
		}

		user, err := getUserByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to load user"})
		}
		return c.JSON(http.StatusOK, api.NewUserResponse(user))
	}
}

// @Summary     Create a new user
// @Description 管理員建立帳號，角色必須明確指定
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       body body api.CreateUserRequest true "user payload"
// @Success     201 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users [post]
func CreateUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateUserRequest
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
			Role:         model.Role(req.Role),
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

// @Summary     Update a user by ID
// @Description 管理員部分更新使用者，缺漏欄位保持原值
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       user_id path int true "使用者 ID"
// @Param       body body api.UpdateUserRequest true "fields to update"
// @Success     200 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/{user_id} [put]
func UpdateUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("user_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid user ID"})
		}

		var req api.UpdateUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: api.ValidationMessage(err)})
		}

		user, err := getUserByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to load user"})
		}

		if req.Username != nil {
			user.Username = *req.Username
		}
		if req.Email != nil {
			email := strings.ToLower(*req.Email)
			if _, err := mail.ParseAddress(email); err != nil {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid email format"})
			}
			user.Email = email
		}
		if req.Password != nil {
			hash, err := hashPassword(*req.Password)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
			}
			user.PasswordHash = hash
		}
		if req.Role != nil {
			user.Role = model.Role(*req.Role)
		}

		if err := updateUser(c.Request().Context(), db, user); err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "username or email already exists"})
			}
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to update user"})
		}
		return c.JSON(http.StatusOK, api.NewUserResponse(user))
	}
}

// @Summary     Delete a user by ID
// @Description 管理員刪除使用者，不可刪除自己，評價一併刪除
// @Tags        users
// @Param       user_id path int true "使用者 ID"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/{user_id} [delete]
func DeleteUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("user_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid user ID"})
		}

		caller := middleware.CallerFromContext(c)
		if err := access.Evaluate(caller, access.OpDeleteUser, id); err != nil {
			if errors.Is(err, access.ErrSelfDeletion) {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "cannot delete current user"})
			}
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: "access denied"})
		}

		if err := deleteUser(c.Request().Context(), db, id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to delete user"})
		}
		return c.NoContent(http.StatusNoContent)
	}
}
