package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/lightbnb/lightbnb-api/internal/core/domain"
	"github.com/lightbnb/lightbnb-api/internal/infrastructure/db/memory"
)

const testSecret = "router-secret"

func newTestRouter(t *testing.T) (*echo.Echo, sqlmock.Sqlmock, *memory.PropertyRepository) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	writer := memory.NewPropertyRepository(nil)
	e := NewRouter(Dependencies{
		DB:             sqlx.NewDb(db, "sqlmock"),
		PropertyWriter: writer,
		PropertyStore:  "memory",
		JWTSecret:      testSecret,
		TokenTTL:       time.Hour,
		Logger:         zerolog.Nop(),
	})
	return e, mock, writer
}

func bearer(t *testing.T, userID int64) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": strconv.FormatInt(userID, 10),
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return "Bearer " + signed
}

func serve(e *echo.Echo, method, target, body, auth string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if auth != "" {
		req.Header.Set(echo.HeaderAuthorization, auth)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Health(t *testing.T) {
	e, mock, _ := newTestRouter(t)

	rec := serve(e, http.MethodGet, "/health", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))

	mock.ExpectPing()
	rec = serve(e, http.MethodGet, "/health/ready", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"postgres":{"status":"ok"}`)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRouter_ListProperties(t *testing.T) {
	e, mock, _ := newTestRouter(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM properties LIMIT $1`)).
		WithArgs(domain.DefaultListLimit).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}).AddRow(1, "Speed lamp"))

	rec := serve(e, http.MethodGet, "/properties?city=Vancouver", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Properties []domain.Property `json:"properties"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Properties, 1)
	require.Equal(t, "Speed lamp", resp.Properties[0].Title)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRouter_CreatePropertyGoesToMemoryStore(t *testing.T) {
	e, mock, writer := newTestRouter(t)

	body := `{"title":"Loft","thumbnail_photo_url":"https://x.test/t.jpg","cover_photo_url":"https://x.test/c.jpg",
		"country":"Canada","street":"1 Main","city":"Vancouver","province":"BC","post_code":"V5K"}`
	rec := serve(e, http.MethodPost, "/properties", body, bearer(t, 5))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created domain.Property
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.Equal(t, int64(1), created.ID)
	require.Equal(t, int64(5), created.OwnerID)
	require.Equal(t, 1, writer.Len())

	// No SQL was issued for the write.
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRouter_ReservationsRequireAuth(t *testing.T) {
	e, _, _ := newTestRouter(t)

	rec := serve(e, http.MethodGet, "/reservations", "", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"error":"missing authorization header"}`, rec.Body.String())
}

func TestRouter_ListReservations(t *testing.T) {
	e, mock, _ := newTestRouter(t)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE reservations.guest_id = $1`)).
		WithArgs(int64(2), 3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "start_date", "average_rating"}).
			AddRow(11, "Blank corner", time.Date(2019, 1, 4, 0, 0, 0, 0, time.UTC), 4.0))

	rec := serve(e, http.MethodGet, "/reservations?limit=3", "", bearer(t, 2))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"title":"Blank corner"`)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRouter_MeNotFound(t *testing.T) {
	e, mock, _ := newTestRouter(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE id = $1`)).
		WithArgs(int64(8)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password"}))

	rec := serve(e, http.MethodGet, "/users/me", "", bearer(t, 8))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"error":"user not found"}`, rec.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRouter_LoginUnknownEmail(t *testing.T) {
	e, mock, _ := newTestRouter(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE email = $1`)).
		WithArgs("ghost@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password"}))

	rec := serve(e, http.MethodPost, "/users/login", `{"email":"ghost@example.com","password":"pw"}`, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRouter_Metrics(t *testing.T) {
	e, _, _ := newTestRouter(t)

	_ = serve(e, http.MethodGet, "/health", "", "")
	rec := serve(e, http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "lightbnb_requests_total")
}

func TestRouter_RegisterRejectsOverlongPassword(t *testing.T) {
	e, mock, _ := newTestRouter(t)

	body := `{"name":"A","email":"a@x.com","password":"` + strings.Repeat("a", 80) + `"}`
	rec := serve(e, http.MethodPost, "/users", body, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "password must be at most 72 characters")

	// Rejected before any insert.
	require.NoError(t, mock.ExpectationsWereMet())
}
