package handlers_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"critichub/db"
	"critichub/models"
	"critichub/routes"
	"critichub/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTest wires the router against a fresh in-memory database. Handlers go
// through the global db handle, so tests swap it per test.
func setupTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	// single connection keeps the shared in-memory database alive and
	// serializes access for sqlite
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	require.NoError(t, db.Migrate(gdb))
	db.DB = gdb

	return routes.Setup()
}

func doRequest(r http.Handler, method, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// mergeCookies folds any Set-Cookie headers from a response into the jar,
// replacing by name, so session updates survive across requests.
func mergeCookies(jar []*http.Cookie, w *httptest.ResponseRecorder) []*http.Cookie {
	for _, fresh := range w.Result().Cookies() {
		replaced := false
		for i, old := range jar {
			if old.Name == fresh.Name {
				jar[i] = fresh
				replaced = true
				break
			}
		}
		if !replaced {
			jar = append(jar, fresh)
		}
	}
	return jar
}

func parseBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func createUser(t *testing.T, userID, password string) models.User {
	t.Helper()
	hashed, err := utils.HashPassword(password)
	require.NoError(t, err)
	user := models.User{UserID: userID, Password: hashed}
	require.NoError(t, db.DB.Create(&user).Error)
	return user
}

func createAdmin(t *testing.T, adminID, password string) models.Admin {
	t.Helper()
	hashed, err := utils.HashPassword(password)
	require.NoError(t, err)
	admin := models.Admin{AdminID: adminID, Password: hashed}
	require.NoError(t, db.DB.Create(&admin).Error)
	return admin
}

func createGame(t *testing.T, name, genre, releaseDate string) models.Game {
	t.Helper()
	game := models.Game{
		Name:        name,
		Genre:       genre,
		ReleaseDate: releaseDate,
		Developer:   "dev",
		Publisher:   "pub",
		Description: "desc",
	}
	require.NoError(t, db.DB.Create(&game).Error)
	return game
}

func createReview(t *testing.T, userID string, gameID uint, date string, score, helpfulness int) models.Review {
	t.Helper()
	review := models.Review{
		UserID:      userID,
		GameID:      gameID,
		Date:        date,
		Description: "fixture review",
		Score:       score,
		Helpfulness: helpfulness,
	}
	require.NoError(t, db.DB.Create(&review).Error)
	return review
}

// loginUser creates the account and returns the session cookie jar from a
// real login request.
func loginUser(t *testing.T, r http.Handler, userID, password string) []*http.Cookie {
	t.Helper()
	createUser(t, userID, password)
	return login(t, r, "/login", url.Values{"user_id": {userID}, "password": {password}})
}

// loginAdmin creates the admin account and logs in against the admin realm.
func loginAdmin(t *testing.T, r http.Handler, adminID, password string) []*http.Cookie {
	t.Helper()
	createAdmin(t, adminID, password)
	return login(t, r, "/admin/login", url.Values{"admin_id": {adminID}, "password": {password}})
}

func login(t *testing.T, r http.Handler, path string, form url.Values) []*http.Cookie {
	t.Helper()
	w := doRequest(r, http.MethodPost, path, form, nil)
	require.Equal(t, http.StatusSeeOther, w.Code, "login failed: %s", w.Body.String())
	jar := mergeCookies(nil, w)
	require.NotEmpty(t, jar)
	return jar
}

func setAvgScore(gameID uint, score *int) error {
	return db.DB.Model(&models.Game{}).Where("game_id = ?", gameID).Update("avg_score", score).Error
}

func gameAvgScore(t *testing.T, gameID uint) *int {
	t.Helper()
	var game models.Game
	require.NoError(t, db.DB.First(&game, "game_id = ?", gameID).Error)
	return game.AvgScore
}

func reviewHelpfulness(t *testing.T, reviewID uint) int {
	t.Helper()
	var review models.Review
	require.NoError(t, db.DB.First(&review, "review_id = ?", reviewID).Error)
	return review.Helpfulness
}
