package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tiffin/internal/domain/entity"
	domainerrors "tiffin/internal/domain/errors"
	"tiffin/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCustomerUsecase lets each test plug in just the methods it exercises.
type stubCustomerUsecase struct {
	signUp          func(input usecase.SignUpInput) (*usecase.SignUpOutput, error)
	authenticate    func(input usecase.AuthenticateInput) (*usecase.AuthenticateOutput, error)
	validateSession func(accessToken string) (*entity.Session, error)
	currentCustomer func(accessToken string) (*entity.Customer, error)
	logout          func(accessToken string) (*entity.Session, error)
	updateProfile   func(input usecase.UpdateProfileInput) (*entity.Customer, error)
	changePassword  func(input usecase.ChangePasswordInput) error
}

func (s *stubCustomerUsecase) SignUp(_ context.Context, input usecase.SignUpInput) (*usecase.SignUpOutput, error) {
	return s.signUp(input)
}

func (s *stubCustomerUsecase) Authenticate(_ context.Context, input usecase.AuthenticateInput) (*usecase.AuthenticateOutput, error) {
	return s.authenticate(input)
}

func (s *stubCustomerUsecase) ValidateSession(_ context.Context, accessToken string) (*entity.Session, error) {
	return s.validateSession(accessToken)
}

func (s *stubCustomerUsecase) CurrentCustomer(_ context.Context, accessToken string) (*entity.Customer, error) {
	return s.currentCustomer(accessToken)
}

func (s *stubCustomerUsecase) Logout(_ context.Context, accessToken string) (*entity.Session, error) {
	return s.logout(accessToken)
}

func (s *stubCustomerUsecase) UpdateProfile(_ context.Context, input usecase.UpdateProfileInput) (*entity.Customer, error) {
	return s.updateProfile(input)
}

func (s *stubCustomerUsecase) ChangePassword(_ context.Context, input usecase.ChangePasswordInput) error {
	return s.changePassword(input)
}

func testCustomer() *entity.Customer {
	return &entity.Customer{
		ID:            11,
		UUID:          uuid.New(),
		FirstName:     "Asha",
		LastName:      "Rao",
		Email:         "asha@example.com",
		ContactNumber: "9876543210",
		Password:      "stored-hash",
		Salt:          "stored-salt",
	}
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestCustomerHandler_SignUp(t *testing.T) {
	customer := testCustomer()
	uc := &stubCustomerUsecase{
		signUp: func(input usecase.SignUpInput) (*usecase.SignUpOutput, error) {
			assert.Equal(t, "Asha", input.FirstName)
			assert.Equal(t, "9876543210", input.ContactNumber)
			assert.Equal(t, "Abcd@1234", input.Password)

			return &usecase.SignUpOutput{Customer: customer}, nil
		},
	}
	h := NewCustomerHandler(uc, nil, slog.Default())

	body := `{"first_name":"Asha","last_name":"Rao","email":"asha@example.com","contact_number":"9876543210","password":"Abcd@1234"}`
	c, rec := newTestContext(t, http.MethodPost, "/auth/signup", body)

	require.NoError(t, h.SignUp(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	responseBody := rec.Body.String()
	assert.Contains(t, responseBody, customer.UUID.String())
	assert.Contains(t, responseBody, "asha@example.com")

	// Credential material never reaches the wire.
	assert.NotContains(t, responseBody, "stored-hash")
	assert.NotContains(t, responseBody, "stored-salt")
}

func TestCustomerHandler_SignUp_DomainError(t *testing.T) {
	uc := &stubCustomerUsecase{
		signUp: func(usecase.SignUpInput) (*usecase.SignUpOutput, error) {
			return nil, domainerrors.ErrWeakPassword
		},
	}
	h := NewCustomerHandler(uc, nil, slog.Default())

	body := `{"first_name":"Asha","email":"asha@example.com","contact_number":"9876543210","password":"weak"}`
	c, _ := newTestContext(t, http.MethodPost, "/auth/signup", body)

	err := h.SignUp(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SGR-004", appErr.ErrorCode())
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
}

func TestCustomerHandler_Login(t *testing.T) {
	customer := testCustomer()
	expiresAt := time.Now().Add(8 * time.Hour)
	uc := &stubCustomerUsecase{
		authenticate: func(input usecase.AuthenticateInput) (*usecase.AuthenticateOutput, error) {
			assert.Equal(t, "9876543210", input.ContactNumber)

			return &usecase.AuthenticateOutput{
				AccessToken: "issued-token",
				ExpiresAt:   expiresAt,
				Customer:    customer,
			}, nil
		},
	}
	h := NewCustomerHandler(uc, nil, slog.Default())

	body := `{"contact_number":"9876543210","password":"Abcd@1234"}`
	c, rec := newTestContext(t, http.MethodPost, "/auth/login", body)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "issued-token")
	assert.Contains(t, rec.Body.String(), customer.UUID.String())
}

func TestCustomerHandler_Login_UnknownContact(t *testing.T) {
	uc := &stubCustomerUsecase{
		authenticate: func(usecase.AuthenticateInput) (*usecase.AuthenticateOutput, error) {
			return nil, domainerrors.ErrContactNumberNotRegistered
		},
	}
	h := NewCustomerHandler(uc, nil, slog.Default())

	body := `{"contact_number":"0000000000","password":"Abcd@1234"}`
	c, _ := newTestContext(t, http.MethodPost, "/auth/login", body)

	err := h.Login(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "ATH-001", appErr.ErrorCode())
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
}

func TestHealthCheck(t *testing.T) {
	c, rec := newTestContext(t, http.MethodGet, "/health", "")

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
