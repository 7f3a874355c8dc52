package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sfadda-dotcom/wedding-planner-platform/internal/auth"
	"github.com/sfadda-dotcom/wedding-planner-platform/internal/common/config"
	"github.com/sfadda-dotcom/wedding-planner-platform/internal/common/database"
	"github.com/sfadda-dotcom/wedding-planner-platform/internal/common/logger"
	"github.com/sfadda-dotcom/wedding-planner-platform/internal/common/mailer"
	"github.com/sfadda-dotcom/wedding-planner-platform/internal/recommend"
	"github.com/sfadda-dotcom/wedding-planner-platform/internal/store"
	"github.com/sfadda-dotcom/wedding-planner-platform/internal/vendorsearch"
)

type testAPI struct {
	router   *gin.Engine
	mock     sqlmock.Sqlmock
	sessions *auth.SessionStore
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	client := &database.PostgresClient{DB: db}

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	log := logger.NewTestLogger(t)
	sessions := auth.NewSessionStore(rdb, time.Hour)

	vendors := vendorsearch.NewService(
		[]vendorsearch.Source{vendorsearch.NewCatalogSource()},
		vendorsearch.NoOpCache{},
		nil,
		time.Second,
		log,
	)

	deps := Deps{
		Config: &config.Config{
			App:  config.AppConfig{Name: "wedding-planner", Version: "test"},
			Auth: config.AuthConfig{ResetTokenTTL: int(time.Hour / time.Millisecond)},
		},
		Logger:      log,
		Users:       store.NewUserStore(client),
		Weddings:    store.NewWeddingStore(client),
		Budgets:     store.NewBudgetStore(client),
		Timelines:   store.NewTimelineStore(client),
		Checklists:  store.NewChecklistStore(client),
		Templates:   store.NewTemplateStore(),
		Searches:    store.NewSearchLogStore(client),
		Sessions:    sessions,
		Hasher:      auth.NewHasher(4, 8),
		Vendors:     vendors,
		Recommender: recommend.NewAIRecommender(nil, recommend.NewRuleEngine(), 0, log),
		Planner:     recommend.NewPlanner(),
		Mailer:      mailer.NewNoOpMailer(log),
	}

	router := gin.New()
	NewAPIHandler(deps).SetupRoutes(router)
	return &testAPI{router: router, mock: mock, sessions: sessions}
}

func (a *testAPI) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func (a *testAPI) signIn(t *testing.T) string {
	t.Helper()
	session, err := a.sessions.Create(context.Background(), "u1", "couple@example.com")
	require.NoError(t, err)
	return session.Token
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func weddingColumnsList() []string {
	return []string{
		"id", "user_id", "partner_one_name", "partner_two_name", "wedding_location",
		"wedding_date", "guest_count", "budget", "currency", "cultural_traditions",
		"religious_traditions", "planned_events", "wedding_style", "venue_type",
		"special_requirements", "created_at", "updated_at",
	}
}

func TestHealthz(t *testing.T) {
	api := newTestAPI(t)
	rec := api.request(t, http.MethodGet, "/healthz", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "wedding-planner", body["service"])
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	api := newTestAPI(t)
	for _, path := range []string{"/api/budget", "/api/timeline", "/api/recommendations"} {
		rec := api.request(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
		assert.Equal(t, "Unauthorized", decodeBody(t, rec)["error"], path)
	}
}

func TestSignupFieldValidation(t *testing.T) {
	api := newTestAPI(t)
	cases := []struct {
		name string
		body map[string]string
		want string
	}{
		{"missing email", map[string]string{"password": "longenough"}, "Email is required"},
		{"missing password", map[string]string{"email": "a@b.com"}, "Password is required"},
		{"missing partner one", map[string]string{"email": "a@b.com", "password": "longenough"}, "Partner one name is required"},
		{"missing partner two", map[string]string{"email": "a@b.com", "password": "longenough", "partnerOneName": "Alex"}, "Partner two name is required"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := api.request(t, http.MethodPost, "/api/signup", "", tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tc.want, decodeBody(t, rec)["error"])
		})
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	api := newTestAPI(t)
	api.mock.ExpectQuery("SELECT EXISTS").
		WithArgs("taken@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	rec := api.request(t, http.MethodPost, "/api/signup", "", map[string]string{
		"email": "taken@example.com", "password": "longenough",
		"partnerOneName": "Alex", "partnerTwoName": "Sam",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "User already exists with this email", decodeBody(t, rec)["error"])
}

func TestSignupCreatesUser(t *testing.T) {
	api := newTestAPI(t)
	now := time.Now()
	api.mock.ExpectQuery("SELECT EXISTS").
		WithArgs("couple@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	api.mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "email", "password_hash", "name", "partner_one_name", "partner_two_name",
			"reset_token", "reset_token_expiry", "created_at", "updated_at",
		}).AddRow("u1", "couple@example.com", "hash", "Alex & Sam", "Alex", "Sam", nil, nil, now, now))

	rec := api.request(t, http.MethodPost, "/api/signup", "", map[string]string{
		"email": "couple@example.com", "password": "longenough",
		"partnerOneName": "Alex", "partnerTwoName": "Sam",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "User created successfully", body["message"])
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "couple@example.com", user["email"])
	assert.Equal(t, "Alex & Sam", user["name"])
}

func TestSigninIssuesToken(t *testing.T) {
	api := newTestAPI(t)
	hasher := auth.NewHasher(4, 8)
	hash, err := hasher.Hash("correct horse")
	require.NoError(t, err)
	now := time.Now()
	api.mock.ExpectQuery("(?s)SELECT (.+) FROM users WHERE email").
		WithArgs("couple@example.com").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "email", "password_hash", "name", "partner_one_name", "partner_two_name",
			"reset_token", "reset_token_expiry", "created_at", "updated_at",
		}).AddRow("u1", "couple@example.com", hash, "Alex & Sam", "Alex", "Sam", nil, nil, now, now))

	rec := api.request(t, http.MethodPost, "/api/signin", "", map[string]string{
		"email": "couple@example.com", "password": "correct horse",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.NotEmpty(t, body["token"])

	authed := api.request(t, http.MethodGet, "/api/vendor-search?action=categories", body["token"].(string), nil)
	assert.Equal(t, http.StatusOK, authed.Code)
}

func TestSigninWrongPassword(t *testing.T) {
	api := newTestAPI(t)
	hasher := auth.NewHasher(4, 8)
	hash, err := hasher.Hash("correct horse")
	require.NoError(t, err)
	now := time.Now()
	api.mock.ExpectQuery("(?s)SELECT (.+) FROM users WHERE email").
		WithArgs("couple@example.com").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "email", "password_hash", "name", "partner_one_name", "partner_two_name",
			"reset_token", "reset_token_expiry", "created_at", "updated_at",
		}).AddRow("u1", "couple@example.com", hash, "Alex & Sam", "Alex", "Sam", nil, nil, now, now))

	rec := api.request(t, http.MethodPost, "/api/signin", "", map[string]string{
		"email": "couple@example.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestForgotPasswordNeverRevealsAccounts(t *testing.T) {
	api := newTestAPI(t)

	// Absent account still gets the generic success message.
	api.mock.ExpectQuery("(?s)SELECT (.+) FROM users WHERE email").
		WithArgs("nobody@example.com").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "email", "password_hash", "name", "partner_one_name", "partner_two_name",
			"reset_token", "reset_token_expiry", "created_at", "updated_at",
		}))

	rec := api.request(t, http.MethodPost, "/api/auth/forgot-password", "", map[string]string{
		"email": "nobody@example.com",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, resetSuccessMessage, decodeBody(t, rec)["message"])
}

func TestVendorSearchMissingFields(t *testing.T) {
	api := newTestAPI(t)
	token := api.signIn(t)

	rec := api.request(t, http.MethodPost, "/api/vendor-search", token, map[string]string{
		"category": "venue",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing required fields: category, location", decodeBody(t, rec)["error"])
}

func TestVendorSearchPipeline(t *testing.T) {
	api := newTestAPI(t)
	token := api.signIn(t)

	api.mock.ExpectExec("INSERT INTO search_logs").
		WillReturnResult(sqlmock.NewResult(0, 1))

	rec := api.request(t, http.MethodPost, "/api/vendor-search", token, map[string]interface{}{
		"category": "venue",
		"location": "London",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Vendor search completed successfully", body["message"])
	assert.NotEmpty(t, body["vendors"])

	meta := body["search_metadata"].(map[string]interface{})
	assert.Equal(t, false, meta["cache_used"])
	assert.Contains(t, meta["sources"], "curated_catalog")
	assert.InDelta(t, len(body["vendors"].([]interface{})), meta["total_results"], 0)
}

func TestVendorSearchCategories(t *testing.T) {
	api := newTestAPI(t)
	token := api.signIn(t)

	rec := api.request(t, http.MethodGet, "/api/vendor-search?action=categories", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	categories := body["categories"].([]interface{})
	require.Len(t, categories, 6)
	first := categories[0].(map[string]interface{})
	assert.Equal(t, "venue", first["id"])
	assert.Equal(t, "Venues", first["label"])
}

func TestVendorSearchInfoDefault(t *testing.T) {
	api := newTestAPI(t)
	token := api.signIn(t)

	rec := api.request(t, http.MethodGet, "/api/vendor-search", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Vendor search API is ready", body["message"])
	assert.NotEmpty(t, body["features"])
}

func TestRecommendationsNeedQuestionnaire(t *testing.T) {
	api := newTestAPI(t)
	token := api.signIn(t)

	api.mock.ExpectQuery("(?s)SELECT (.+) FROM wedding_details").
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(weddingColumnsList()))

	rec := api.request(t, http.MethodGet, "/api/recommendations", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, true, body["needs_questionnaire"])
	assert.Equal(t, "Please complete your wedding questionnaire first", body["error"])
}

func TestRecommendationsFromQuestionnaire(t *testing.T) {
	api := newTestAPI(t)
	token := api.signIn(t)

	now := time.Now()
	api.mock.ExpectQuery("(?s)SELECT (.+) FROM wedding_details").
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(weddingColumnsList()).AddRow(
			"w1", "u1", "Alex", "Sam", "London",
			nil, "51-100", 20000.0, "GBP", "{}", "{}", "{}",
			"classic", "hotel", "", now, now,
		))

	rec := api.request(t, http.MethodGet, "/api/recommendations", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "rules", body["generated_by"])
	assert.NotEmpty(t, body["recommendations"])

	prefs := body["user_preferences"].(map[string]interface{})
	assert.Equal(t, "London", prefs["location"])
	assert.InDelta(t, 51, prefs["guest_count"], 0)
	assert.InDelta(t, 20000, prefs["budget"], 0)
}

func TestMoodboardFromQuestionnaire(t *testing.T) {
	api := newTestAPI(t)
	token := api.signIn(t)

	now := time.Now()
	api.mock.ExpectQuery("(?s)SELECT (.+) FROM wedding_details").
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(weddingColumnsList()).AddRow(
			"w1", "u1", "Alex", "Sam", "London",
			nil, "51-100", 20000.0, "GBP", "{}", "{}", "{}",
			"rustic barn", "barn", "", now, now,
		))

	rec := api.request(t, http.MethodGet, "/api/recommendations/moodboard", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	moodboard := body["moodboard"].(map[string]interface{})
	assert.NotEmpty(t, moodboard["colors"])
}

func TestTemplatesEndpoint(t *testing.T) {
	api := newTestAPI(t)
	token := api.signIn(t)

	rec := api.request(t, http.MethodGet, "/api/templates", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, decodeBody(t, rec)["templates"])
}

func TestGuestCountLowerBound(t *testing.T) {
	assert.Equal(t, 51, guestCountLowerBound("51-100"))
	assert.Equal(t, 200, guestCountLowerBound("200+"))
	assert.Equal(t, 50, guestCountLowerBound(""))
	assert.Equal(t, 50, guestCountLowerBound("lots"))
}
