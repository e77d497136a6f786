package handler

import (
	"context"
	"io"
	"net/http/httptest"

	"github.com/labstack/echo/v4"

	"github.com/lightbnb/lightbnb-api/internal/api/middleware"
	"github.com/lightbnb/lightbnb-api/internal/core/domain"
)

type stubUserService struct {
	registerFn   func(ctx context.Context, name, email, password string) (*domain.User, error)
	loginFn      func(ctx context.Context, email, password string) (string, *domain.User, error)
	getByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	getByIDFn    func(ctx context.Context, id int64) (*domain.User, error)
}

func (s *stubUserService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	return s.registerFn(ctx, name, email, password)
}

func (s *stubUserService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubUserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.getByEmailFn(ctx, email)
}

func (s *stubUserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.getByIDFn(ctx, id)
}

type stubPropertyService struct {
	listFn func(ctx context.Context, filter domain.PropertyFilter, limit int) ([]domain.Property, error)
	addFn  func(ctx context.Context, p *domain.Property) (*domain.Property, error)
}

func (s *stubPropertyService) List(ctx context.Context, filter domain.PropertyFilter, limit int) ([]domain.Property, error) {
	return s.listFn(ctx, filter, limit)
}

func (s *stubPropertyService) Add(ctx context.Context, p *domain.Property) (*domain.Property, error) {
	return s.addFn(ctx, p)
}

type stubReservationService struct {
	listFn func(ctx context.Context, guestID int64, limit int) ([]domain.Reservation, error)
}

func (s *stubReservationService) ListForGuest(ctx context.Context, guestID int64, limit int) ([]domain.Reservation, error) {
	return s.listFn(ctx, guestID, limit)
}

// newContext builds an echo context with the validator installed. A non-zero
// userID simulates the Auth middleware.
func newContext(method, target string, body io.Reader, userID int64) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != 0 {
		c.Set(middleware.ContextUserID, userID)
	}
	return c, rec
}

// statusOf returns the HTTP status an echo.HTTPError carries, or 0.
func statusOf(err error) int {
	if he, ok := err.(*echo.HTTPError); ok {
		return he.Code
	}
	return 0
}
