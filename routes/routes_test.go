package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"backend/models"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestRouter wires the full HTTP surface over an in-memory database.
func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Admin{},
		&models.BMIRecord{},
		&models.DailyTracking{},
		&models.AdminMessage{},
		&models.MotivationalQuote{},
		&models.LoginLog{},
	); err != nil {
		t.Fatalf("failed to migrate test schema: %v", err)
	}
	return SetupRouter(db), db
}

// loginTestUser creates an account and logs it in over the API, returning the
// user and a bearer token.
func loginTestUser(t *testing.T, router *gin.Engine, db *gorm.DB) (*models.User, string) {
	t.Helper()

	hashed, err := utils.HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	user := models.User{
		FullName:     "Test User",
		Email:        "alice@example.com",
		Password:     hashed,
		TargetStatus: models.TargetOngoing,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	body, _ := json.Marshal(gin.H{"email": user.Email, "password": "s3cret-pass"})
	req := httptest.NewRequest(http.MethodPost, "/user/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d, body %s", w.Code, w.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || resp.Token == "" {
		t.Fatalf("login response missing token: %s", w.Body.String())
	}
	return &user, resp.Token
}

func authedRequest(method, target, token string, body []byte) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

/* ─── Inbox read-state tests ─────────────────────────────────────────── */

// TestMarkMessagesRead_Route verifies the endpoint flips the whole inbox to
// read for the authenticated user only.
func TestMarkMessagesRead_Route(t *testing.T) {
	router, db := newTestRouter(t)
	user, token := loginTestUser(t, router, db)

	other := models.User{FullName: "Other", Email: "bob@example.com", Password: "x"}
	if err := db.Create(&other).Error; err != nil {
		t.Fatalf("failed to create second user: %v", err)
	}
	for _, uid := range []uint{user.ID, user.ID, other.ID} {
		if err := db.Create(&models.AdminMessage{AdminID: 1, UserID: uid, Message: "hello"}).Error; err != nil {
			t.Fatalf("failed to insert message: %v", err)
		}
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(http.MethodPost, "/user/messages/read", token, nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var unread int64
	db.Model(&models.AdminMessage{}).Where("user_id = ? AND is_read = ?", user.ID, false).Count(&unread)
	if unread != 0 {
		t.Errorf("own unread count = %d, want 0", unread)
	}
	db.Model(&models.AdminMessage{}).Where("user_id = ? AND is_read = ?", other.ID, false).Count(&unread)
	if unread != 1 {
		t.Errorf("other user's unread count = %d, want 1", unread)
	}
}

// TestMarkMessagesRead_RequiresAuth verifies the endpoint sits behind the
// bearer-token gate.
func TestMarkMessagesRead_RequiresAuth(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/user/messages/read", nil))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

/* ─── Dashboard tests ────────────────────────────────────────────────── */

// TestDashboard_IncludesQuote verifies a healthy store answers 200 with a
// quote in the payload (the fallback, with an empty quote table).
func TestDashboard_IncludesQuote(t *testing.T) {
	router, db := newTestRouter(t)
	_, token := loginTestUser(t, router, db)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(http.MethodGet, "/user/dashboard", token, nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var resp map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if _, ok := resp["quote"]; !ok {
		t.Error("dashboard payload missing quote")
	}
	if _, ok := resp["tracking"]; !ok {
		t.Error("dashboard payload missing tracking")
	}
}

// TestDashboard_QuoteStoreFailure verifies a quote store error fails the
// request like every other store error instead of silently dropping the field.
func TestDashboard_QuoteStoreFailure(t *testing.T) {
	router, db := newTestRouter(t)
	_, token := loginTestUser(t, router, db)

	if err := db.Migrator().DropTable(&models.MotivationalQuote{}); err != nil {
		t.Fatalf("failed to drop quote table: %v", err)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(http.MethodGet, "/user/dashboard", token, nil))
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}
