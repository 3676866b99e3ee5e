package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Mayursuryawanshi23/CodeX-backend/internal/core/domain"
	"github.com/Mayursuryawanshi23/CodeX-backend/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type signUpRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name"     validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type userResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	CreatedAt  string `json:"created_at"`
	LastActive string `json:"last_active"`
}

type signUpResponse struct {
	Success bool   `json:"success"`
	Msg     string `json:"msg"`
	UserID  string `json:"user_id"`
}

type loginResponse struct {
	Success bool         `json:"success"`
	Msg     string       `json:"msg"`
	Token   string       `json:"token"`
	User    userResponse `json:"user"`
}

type meResponse struct {
	Success bool         `json:"success"`
	Msg     string       `json:"msg"`
	User    userResponse `json:"user"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		CreatedAt:  u.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		LastActive: u.LastActiveAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}

// SignUp creates a new account.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signUpRequest  true  "Account details"
// @Success      201   {object}  signUpResponse
// @Failure      400   {object}  map[string]any
// @Failure      409   {object}  map[string]any
// @Router       /auth/signup [post]
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.SignUp(c.Request().Context(), req.Email, req.Password, req.Name)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, signUpResponse{
		Success: true,
		Msg:     "user created successfully",
		UserID:  user.ID,
	})
}

// Login authenticates an account and returns a signed token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{
		Success: true,
		Msg:     "user logged in successfully",
		Token:   token,
		User:    toUserResponse(user),
	})
}

// Me returns the account matching the bearer token.
//
// @Summary      Get the authenticated account
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  meResponse
// @Failure      401  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	token, err := ctxToken(c)
	if err != nil {
		return err
	}

	user, err := h.authService.GetUser(c.Request().Context(), token)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, meResponse{
		Success: true,
		Msg:     "user data fetched successfully",
		User:    toUserResponse(user),
	})
}
