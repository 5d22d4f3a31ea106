// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"tiffin/internal/delivery/http/middleware"
	"tiffin/internal/delivery/http/response"
	"tiffin/internal/domain/entity"
	"tiffin/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CustomerHandler holds dependencies for customer account handlers.
type CustomerHandler struct {
	uc        usecase.CustomerUsecase
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewCustomerHandler is the constructor for CustomerHandler, injected by Fx.
func NewCustomerHandler(uc usecase.CustomerUsecase, sessionUC usecase.SessionUsecase, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{
		uc:        uc,
		sessionUC: sessionUC,
		logger:    logger,
	}
}

// customerView is the customer representation returned to clients. Credential
// material never leaves the service.
type customerView struct {
	CustomerID    string    `json:"customer_id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name,omitempty"`
	Email         string    `json:"email"`
	ContactNumber string    `json:"contact_number"`
	CreatedAt     time.Time `json:"created_at"`
}

// loginView pairs the issued token with the account it belongs to.
type loginView struct {
	AccessToken string       `json:"access_token"`
	ExpiresAt   time.Time    `json:"expires_at"`
	Customer    customerView `json:"customer"`
}

func toCustomerView(customer *entity.Customer) customerView {
	return customerView{
		CustomerID:    customer.UUID.String(),
		FirstName:     customer.FirstName,
		LastName:      customer.LastName,
		Email:         customer.Email,
		ContactNumber: customer.ContactNumber,
		CreatedAt:     customer.CreatedAt,
	}
}

type signUpRequest struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
	ContactNumber string `json:"contact_number"`
	Password      string `json:"password"`
}

// SignUp handles the account registration request.
func (h *CustomerHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-up input")
	}

	output, err := h.uc.SignUp(c.Request().Context(), usecase.SignUpInput{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		ContactNumber: req.ContactNumber,
		Password:      req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toCustomerView(output.Customer), "Account created successfully")
}

type loginRequest struct {
	ContactNumber string `json:"contact_number"`
	Password      string `json:"password"`
}

// Login handles the customer login request.
func (h *CustomerHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	output, err := h.uc.Authenticate(c.Request().Context(), usecase.AuthenticateInput{
		ContactNumber: req.ContactNumber,
		Password:      req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, loginView{
		AccessToken: output.AccessToken,
		ExpiresAt:   output.ExpiresAt,
		Customer:    toCustomerView(output.Customer),
	}, "Login successful")
}

// Logout closes the session identified by the bearer token.
func (h *CustomerHandler) Logout(c echo.Context) error {
	session, err := h.uc.Logout(c.Request().Context(), middleware.AccessToken(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"session_id": session.UUID.String(),
		"logout_at":  session.LogoutAt,
	}, "Logout successful")
}

// GetProfile returns the profile of the customer owning the bearer token.
func (h *CustomerHandler) GetProfile(c echo.Context) error {
	customer, err := h.uc.CurrentCustomer(c.Request().Context(), middleware.AccessToken(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCustomerView(customer), "Profile retrieved successfully")
}

type updateProfileRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// UpdateProfile handles the profile update request.
func (h *CustomerHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	customer, err := h.uc.UpdateProfile(c.Request().Context(), usecase.UpdateProfileInput{
		AccessToken: middleware.AccessToken(c),
		FirstName:   req.FirstName,
		LastName:    req.LastName,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCustomerView(customer), "Profile updated successfully")
}

type changePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// ChangePassword handles the password change request.
func (h *CustomerHandler) ChangePassword(c echo.Context) error {
	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password input")
	}

	if err := h.uc.ChangePassword(c.Request().Context(), usecase.ChangePasswordInput{
		AccessToken: middleware.AccessToken(c),
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Password changed"}, "Password changed successfully")
}

// Sessions lists the session history of the authenticated customer.
func (h *CustomerHandler) Sessions(c echo.Context) error {
	customer, err := h.uc.CurrentCustomer(c.Request().Context(), middleware.AccessToken(c))
	if err != nil {
		return errors.WithStack(err)
	}

	sessions, err := h.sessionUC.Sessions(c.Request().Context(), customer.UUID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sessions, "Sessions retrieved successfully")
}

// SessionStatistics summarizes the session history of the authenticated customer.
func (h *CustomerHandler) SessionStatistics(c echo.Context) error {
	customer, err := h.uc.CurrentCustomer(c.Request().Context(), middleware.AccessToken(c))
	if err != nil {
		return errors.WithStack(err)
	}

	stats, err := h.sessionUC.SessionStatistics(c.Request().Context(), customer.UUID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "Session statistics retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
