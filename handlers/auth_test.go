package handlers_test

import (
	"net/http"
	"net/url"
	"testing"

	"critichub/db"
	"critichub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterCreatesUserAndRedirects(t *testing.T) {
	r := setupTest(t)

	w := doRequest(r, http.MethodPost, "/register", url.Values{
		"user_id":   {"alice"},
		"password":  {"pw1"},
		"password2": {"pw1"},
	}, nil)

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	var user models.User
	require.NoError(t, db.DB.First(&user, "user_id = ?", "alice").Error)
	assert.NotEqual(t, "pw1", user.Password, "password must be stored hashed")
}

func TestRegisterRejectsAdminSubstring(t *testing.T) {
	r := setupTest(t)

	for _, id := range []string{"admin", "Administrator", "myADMINaccount"} {
		w := doRequest(r, http.MethodPost, "/register", url.Values{
			"user_id":   {id},
			"password":  {"pw"},
			"password2": {"pw"},
		}, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code, "id %q should be rejected", id)
		assert.Contains(t, w.Body.String(), "admin")
	}

	var count int64
	require.NoError(t, db.DB.Model(&models.User{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRegisterRejectsProfanity(t *testing.T) {
	r := setupTest(t)

	w := doRequest(r, http.MethodPost, "/register", url.Values{
		"user_id":   {"shitlord"},
		"password":  {"pw"},
		"password2": {"pw"},
	}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "vulgar")
}

func TestRegisterRejectsTakenUsername(t *testing.T) {
	r := setupTest(t)
	createUser(t, "alice", "pw1")

	w := doRequest(r, http.MethodPost, "/register", url.Values{
		"user_id":   {"alice"},
		"password":  {"other"},
		"password2": {"other"},
	}, nil)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already taken")
}

func TestRegisterRejectsMismatchedPasswords(t *testing.T) {
	r := setupTest(t)

	w := doRequest(r, http.MethodPost, "/register", url.Values{
		"user_id":   {"alice"},
		"password":  {"pw1"},
		"password2": {"pw2"},
	}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginUnknownUserGetsGenericError(t *testing.T) {
	r := setupTest(t)

	w := doRequest(r, http.MethodPost, "/login", url.Values{
		"user_id":  {"nobody"},
		"password": {"pw"},
	}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "User ID or password details are incorrect")
}

func TestLoginWrongPasswordGetsSameGenericError(t *testing.T) {
	r := setupTest(t)
	createUser(t, "alice", "pw1")

	w := doRequest(r, http.MethodPost, "/login", url.Values{
		"user_id":  {"alice"},
		"password": {"wrong"},
	}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "User ID or password details are incorrect")
}

func TestLoginHonorsNextURL(t *testing.T) {
	r := setupTest(t)
	createUser(t, "alice", "pw1")

	w := doRequest(r, http.MethodPost, "/login?next=%2Fprofile", url.Values{
		"user_id":  {"alice"},
		"password": {"pw1"},
	}, nil)

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/profile", w.Header().Get("Location"))
}

func TestAuthGateRedirectsAnonymousToLogin(t *testing.T) {
	r := setupTest(t)

	w := doRequest(r, http.MethodGet, "/profile", nil, nil)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login?next="+url.QueryEscape("/profile"), w.Header().Get("Location"))
}

func TestAdminGateRedirectsAnonymousToAdminLogin(t *testing.T) {
	r := setupTest(t)

	w := doRequest(r, http.MethodGet, "/admin", nil, nil)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/login", w.Header().Get("Location"))
}

func TestAdminGateRejectsRegularUser(t *testing.T) {
	r := setupTest(t)
	jar := loginUser(t, r, "alice", "pw1")

	w := doRequest(r, http.MethodGet, "/admin/see-users", nil, jar)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/login", w.Header().Get("Location"))
}

func TestUserGateRejectsAdminSession(t *testing.T) {
	r := setupTest(t)
	jar := loginAdmin(t, r, "root", "adminpw")

	w := doRequest(r, http.MethodGet, "/profile", nil, jar)

	// The admin sentinel is not a user identity
	require.Equal(t, http.StatusFound, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "/login")
}

func TestAdminLoginGrantsConsoleAccess(t *testing.T) {
	r := setupTest(t)
	jar := loginAdmin(t, r, "root", "adminpw")

	w := doRequest(r, http.MethodGet, "/admin", nil, jar)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLogoutClearsSession(t *testing.T) {
	r := setupTest(t)
	jar := loginUser(t, r, "alice", "pw1")

	w := doRequest(r, http.MethodGet, "/logout", nil, jar)
	require.Equal(t, http.StatusFound, w.Code)
	jar = mergeCookies(jar, w)

	w = doRequest(r, http.MethodGet, "/profile", nil, jar)
	assert.Equal(t, http.StatusFound, w.Code)
}
