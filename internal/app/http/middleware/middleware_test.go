package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signed(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return tok
}

func authRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", AuthMiddleware(testSecret), RequireRole("admin"), func(c *gin.Context) {
		id, token := CurrentAdmin(c)
		c.JSON(http.StatusOK, gin.H{"admin_id": id, "token": token})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	exp := time.Now().Add(time.Hour).Unix()
	adminTok := signed(t, jwt.MapClaims{"user_id": "adm-1", "role": "admin", "exp": exp})
	numericTok := signed(t, jwt.MapClaims{"user_id": float64(42), "role": "admin", "exp": exp})
	userTok := signed(t, jwt.MapClaims{"user_id": "u-1", "role": "user", "exp": exp})
	expiredTok := signed(t, jwt.MapClaims{"user_id": "adm-1", "role": "admin", "exp": time.Now().Add(-time.Hour).Unix()})
	noIDTok := signed(t, jwt.MapClaims{"role": "admin", "exp": exp})

	tests := []struct {
		name   string
		header string
		status int
		want   string
	}{
		{"missing header", "", http.StatusUnauthorized, "Authorization header missing"},
		{"not bearer", "Token " + adminTok, http.StatusUnauthorized, "Bearer token malformed"},
		{"expired", "Bearer " + expiredTok, http.StatusUnauthorized, "Invalid or expired token"},
		{"no user id", "Bearer " + noIDTok, http.StatusUnauthorized, "Token carries no user id"},
		{"not admin", "Bearer " + userTok, http.StatusForbidden, "Access denied"},
		{"admin", "Bearer " + adminTok, http.StatusOK, `"admin_id":"adm-1"`},
		{"numeric id", "Bearer " + numericTok, http.StatusOK, `"admin_id":"42"`},
	}

	r := authRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.want)
		})
	}
}

func TestAuthMiddleware_KeepsRawToken(t *testing.T) {
	tok := signed(t, jwt.MapClaims{"user_id": "adm-1", "role": "admin", "exp": time.Now().Add(time.Hour).Unix()})
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	authRouter().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), tok)
}

func TestSanitizeAndCleanInputMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SanitizeAndCleanInputMiddleware())
	r.POST("/echo", func(c *gin.Context) {
		raw, _ := io.ReadAll(c.Request.Body)
		c.Data(http.StatusOK, "application/json", raw)
	})

	body := `{"title":"<script>alert(1)</script>Ujian","content":"<p>Halo<script>x</script></p>","window":{"start":"a"}}`
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, w.Code)
	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Ujian", got["title"])
	assert.Equal(t, "<p>Halo</p>", got["content"])
	assert.Equal(t, map[string]interface{}{"start": "a"}, got["window"])

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("")))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("{nope")))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSanitizeAndCleanInputMiddleware_KeepsPlainTextAndNumbers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SanitizeAndCleanInputMiddleware())
	r.POST("/echo", func(c *gin.Context) {
		raw, _ := io.ReadAll(c.Request.Body)
		c.Data(http.StatusOK, "application/json", raw)
	})

	body := `{"reason":"Refund & chargeback, user said \"stop\"","university_name":"S1 & Profesi <b>UI</b>","discount_amount":12345678901234567}`
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, w.Code)

	assert.Contains(t, w.Body.String(), `"discount_amount":12345678901234567`)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, `Refund & chargeback, user said "stop"`, got["reason"])
	assert.Equal(t, "S1 & Profesi UI", got["university_name"])
}
