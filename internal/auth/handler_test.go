package auth_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/wangserena1960-stack/fitcircle-backend/internal/auth"
	"github.com/wangserena1960-stack/fitcircle-backend/internal/metrics"
	"github.com/wangserena1960-stack/fitcircle-backend/internal/testdb"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthHandler_Shared(t *testing.T) {
	pgContainer := testdb.SetupSharedPostgres(t)
	defer pgContainer.Cleanup(t)

	pgContainer.RunMigrations(t, (*auth.Admin)(nil))

	mockMetrics := metrics.NewMock()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	repo := auth.NewRepository(pgContainer.DB, mockMetrics)
	tokens := auth.NewTokenManager("test-secret-key-for-testing")
	service := auth.NewService(repo, tokens, logger)
	handler := auth.NewHandler(service, logger, mockMetrics)
	router := chi.NewRouter()
	handler.RegisterRoutes(router)

	seedAdmin := func(t *testing.T, email, password string) {
		t.Helper()
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		require.NoError(t, err)
		admin := &auth.Admin{Email: email, Password: string(hashed), Name: "Owner", Role: "owner"}
		_, err = pgContainer.DB.NewInsert().Model(admin).Exec(context.Background())
		require.NoError(t, err)
	}

	t.Run("Login_Success", func(t *testing.T) {
		testdb.CleanupTables(t, pgContainer.DB, "admins")
		seedAdmin(t, auth.DemoEmail, auth.DemoPassword)

		payload := map[string]string{
			"email":    auth.DemoEmail,
			"password": auth.DemoPassword,
		}
		body, _ := json.Marshal(payload)

		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		err := json.NewDecoder(w.Body).Decode(&response)
		require.NoError(t, err)
		assert.Equal(t, true, response["success"])
		assert.NotEmpty(t, response["token"])

		admin, ok := response["admin"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, auth.DemoEmail, admin["email"])
		assert.NotContains(t, admin, "password")

		claims, err := tokens.ValidateAccessToken(response["token"].(string))
		require.NoError(t, err)
		assert.Equal(t, auth.DemoEmail, claims.Email)
		assert.Equal(t, "owner", claims.Role)

		// Token is also set as an HttpOnly cookie
		var foundAuthCookie bool
		for _, cookie := range w.Result().Cookies() {
			if cookie.Name == "token" {
				foundAuthCookie = true
				assert.Equal(t, response["token"], cookie.Value)
				assert.True(t, cookie.HttpOnly)
			}
		}
		assert.True(t, foundAuthCookie, "token cookie should be set")
	})

	t.Run("Login_WrongPassword", func(t *testing.T) {
		testdb.CleanupTables(t, pgContainer.DB, "admins")
		seedAdmin(t, auth.DemoEmail, auth.DemoPassword)

		payload := map[string]string{
			"email":    auth.DemoEmail,
			"password": "not-the-password",
		}
		body, _ := json.Marshal(payload)

		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "invalid email or password")
		assert.NotContains(t, w.Body.String(), "token")
	})

	t.Run("Login_UnknownEmail", func(t *testing.T) {
		testdb.CleanupTables(t, pgContainer.DB, "admins")

		payload := map[string]string{
			"email":    "nobody@fitcircle.dev",
			"password": "whatever",
		}
		body, _ := json.Marshal(payload)

		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		// Same message as a wrong password; does not reveal the email exists
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "invalid email or password")
	})

	t.Run("Login_MissingFields", func(t *testing.T) {
		body := []byte(`{"email": "owner@fitcircle.dev"}`)

		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "email and password are required")
	})

	t.Run("Login_InvalidJSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader([]byte(`{not json`)))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid request body")
	})

	t.Run("LoginDebug_MatchesDemoCredentials", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet,
			"/login-debug?email="+auth.DemoEmail+"&password="+auth.DemoPassword, nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		err := json.NewDecoder(w.Body).Decode(&response)
		require.NoError(t, err)
		assert.Equal(t, true, response["matchDemo"])
		assert.Equal(t, auth.DemoEmail, response["demoEmail"])
	})

	t.Run("EnsureDefaultAdmin_SeedsEmptyTable", func(t *testing.T) {
		testdb.CleanupTables(t, pgContainer.DB, "admins")

		ctx := context.Background()
		require.NoError(t, service.EnsureDefaultAdmin(ctx))

		count, err := pgContainer.DB.NewSelect().Model((*auth.Admin)(nil)).Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		// Idempotent: a second call does not add another row
		require.NoError(t, service.EnsureDefaultAdmin(ctx))
		count, err = pgContainer.DB.NewSelect().Model((*auth.Admin)(nil)).Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		// And the seeded account can actually log in
		body, _ := json.Marshal(map[string]string{
			"email":    auth.DemoEmail,
			"password": auth.DemoPassword,
		})
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
