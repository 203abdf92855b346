package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"handicraft-server/config"
	"handicraft-server/models"
	"handicraft-server/repositories/repotest"
	"handicraft-server/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const testSecret = "route-test-secret"

type okPinger struct{}

func (okPinger) Ping(context.Context, *readpref.ReadPref) error { return nil }

func testConfig() *config.Config {
	return &config.Config{
		AppEnv: "development",
		Port:   "5000",
		Auth:   config.Auth{AccessTokenSecret: testSecret},
		Features: config.Features{
			Auth:   true,
			Shop:   true,
			Orders: true,
		},
	}
}

func newTestServer(t *testing.T, cfg *config.Config) (*gin.Engine, *repotest.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repos, store := repotest.New()
	router := NewRouter(Options{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Repos:  repos,
		DB:     okPinger{},
	})
	return router, store
}

func do(r http.Handler, method, path string, body interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewBuffer(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r http.Handler, email string) *http.Cookie {
	t.Helper()
	w := do(r, http.MethodPost, "/jwt", gin.H{"email": email})
	require.Equal(t, http.StatusOK, w.Code)
	for _, c := range w.Result().Cookies() {
		if c.Name == utils.TokenCookieName {
			return c
		}
	}
	t.Fatal("token cookie not set")
	return nil
}

func TestRouter_PublicRoutes(t *testing.T) {
	r, _ := newTestServer(t, testConfig())

	w := do(r, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Handicraft Businesses server is running", w.Body.String())

	w = do(r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/shop", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestRouter_GuardedRoutesRequireCookie(t *testing.T) {
	r, _ := newTestServer(t, testConfig())

	guarded := []struct {
		method string
		path   string
		body   interface{}
	}{
		{http.MethodGet, "/users", nil},
		{http.MethodGet, "/users/ana@example.com", nil},
		{http.MethodPatch, "/users", gin.H{"email": "ana@example.com"}},
		{http.MethodPut, "/users/ana@example.com", gin.H{"name": "Ana"}},
		{http.MethodGet, "/order", nil},
		{http.MethodPost, "/order", gin.H{"productId": "p", "quantity": 1, "userEmail": "ana@example.com"}},
		{http.MethodGet, "/order/ana@example.com", nil},
	}

	for _, tc := range guarded {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := do(r, tc.method, tc.path, tc.body)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			var body models.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "unauthorized access", body.Message)
		})
	}

	t.Run("forged token", func(t *testing.T) {
		forged, err := utils.NewTokenManager("another-secret").GenerateToken("ana@example.com", "")
		require.NoError(t, err)

		w := do(r, http.MethodGet, "/users", nil, &http.Cookie{Name: utils.TokenCookieName, Value: forged})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRouter_SignInFlow(t *testing.T) {
	r, _ := newTestServer(t, testConfig())

	w := do(r, http.MethodPost, "/users", gin.H{"email": "ana@example.com", "name": "Ana"})
	require.Equal(t, http.StatusOK, w.Code)

	cookie := login(t, r, "ana@example.com")

	claims, err := utils.NewTokenManager(testSecret).ValidateToken(cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", claims.Email)

	w = do(r, http.MethodGet, "/users", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	var users []models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	require.Len(t, users, 1)
	assert.Equal(t, "Ana", users[0].Name)

	w = do(r, http.MethodPatch, "/users", gin.H{"email": "ana@example.com"}, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodPut, "/users/ana@example.com", gin.H{"phone": "555-0100"}, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	var updated models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "555-0100", updated.Phone)
	assert.NotNil(t, updated.LastLoginAt)
}

func TestRouter_EmailLookupMatchesRequestedUser(t *testing.T) {
	r, _ := newTestServer(t, testConfig())
	do(r, http.MethodPost, "/users", gin.H{"email": "ana@example.com", "name": "Ana"})
	do(r, http.MethodPost, "/users", gin.H{"email": "bo@example.com", "name": "Bo"})

	cookie := login(t, r, "bo@example.com")

	w := do(r, http.MethodGet, "/users/bo@example.com", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	var user models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	assert.Equal(t, "bo@example.com", user.Email)

	w = do(r, http.MethodGet, "/users/nobody@example.com", nil, cookie)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_TokenOutlivesLogout(t *testing.T) {
	r, _ := newTestServer(t, testConfig())
	cookie := login(t, r, "ana@example.com")

	w := do(r, http.MethodGet, "/logout", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/order", nil, cookie)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_ShopLookup(t *testing.T) {
	r, store := newTestServer(t, testConfig())
	id := store.AddShop(bson.M{"name": "Nakshi kantha", "price": 45.0})

	w := do(r, http.MethodGet, "/shop/"+id.Hex(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var shop map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &shop))
	assert.Equal(t, id.Hex(), shop["_id"])
	assert.Equal(t, "Nakshi kantha", shop["name"])

	w = do(r, http.MethodGet, "/shop/"+primitive.NewObjectID().Hex(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_OrderFlow(t *testing.T) {
	r, store := newTestServer(t, testConfig())
	ana := login(t, r, "ana@example.com")
	bo := login(t, r, "bo@example.com")

	w := do(r, http.MethodPost, "/order", gin.H{"productId": "p-1", "quantity": 3, "userEmail": "ana@example.com"}, ana)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodPost, "/order", gin.H{"productId": "p-1", "quantity": 1, "userEmail": "ana@example.com"}, bo)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(r, http.MethodGet, "/order/ana@example.com", nil, ana)
	require.Equal(t, http.StatusOK, w.Code)
	var orders []models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	require.Len(t, orders, 1)
	assert.EqualValues(t, 3, orders[0].Quantity)

	w = do(r, http.MethodGet, "/order/ana@example.com", nil, bo)
	assert.Equal(t, http.StatusForbidden, w.Code)

	assert.Len(t, store.Orders(), 1)
}

func TestRouter_FeatureFlags(t *testing.T) {
	t.Run("shop and orders disabled", func(t *testing.T) {
		cfg := testConfig()
		cfg.Features.Shop = false
		cfg.Features.Orders = false
		r, _ := newTestServer(t, cfg)
		cookie := login(t, r, "ana@example.com")

		assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/shop", nil).Code)
		assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/order", nil, cookie).Code)
		assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/users", nil, cookie).Code)
	})

	t.Run("auth disabled", func(t *testing.T) {
		cfg := testConfig()
		cfg.Features.Auth = false
		cfg.Auth.AccessTokenSecret = ""
		r, _ := newTestServer(t, cfg)

		assert.Equal(t, http.StatusNotFound, do(r, http.MethodPost, "/jwt", gin.H{"email": "ana@example.com"}).Code)
		assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/logout", nil).Code)
		assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/users", nil).Code)
		assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/order/ana@example.com", nil).Code)
	})
}

func TestRouter_CORS(t *testing.T) {
	r, _ := newTestServer(t, testConfig())

	req := httptest.NewRequest(http.MethodOptions, "/shop", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestRouter_AcceptsClientShapedPayloads(t *testing.T) {
	r, store := newTestServer(t, testConfig())

	w := do(r, http.MethodPost, "/users", gin.H{
		"email":     "ana.local",
		"photoURL":  "https://img.example.com/ana.png",
		"createdAt": "2026-10-18",
	})
	require.Equal(t, http.StatusOK, w.Code)

	cookie := login(t, r, "ana.local")

	w = do(r, http.MethodGet, "/users", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	var users []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	require.Len(t, users, 1)
	assert.Equal(t, "ana.local", users[0]["email"])
	assert.Equal(t, "https://img.example.com/ana.png", users[0]["photoURL"])
	assert.Equal(t, "2026-10-18T00:00:00Z", users[0]["createdAt"])

	w = do(r, http.MethodPatch, "/users", gin.H{"email": "ana.local", "lastLoginAt": "Sat, 18 Oct 2026 06:00:00 GMT"}, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, store.Users()[0].LastLoginAt)
	assert.Equal(t, 6, store.Users()[0].LastLoginAt.Hour())

	for _, q := range []interface{}{0, "2"} {
		w = do(r, http.MethodPost, "/order", gin.H{"productId": "p-1", "quantity": q, "userEmail": "ana.local"}, cookie)
		require.Equal(t, http.StatusOK, w.Code, "quantity %v", q)
	}

	w = do(r, http.MethodGet, "/order/ana.local", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	var orders []models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	require.Len(t, orders, 2)
	assert.EqualValues(t, 0, orders[0].Quantity)
	assert.EqualValues(t, 2, orders[1].Quantity)
}

func TestRouter_OwnershipIsCaseSensitive(t *testing.T) {
	r, _ := newTestServer(t, testConfig())
	cookie := login(t, r, "ana@example.com")

	w := do(r, http.MethodGet, "/order/ANA@example.com", nil, cookie)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
