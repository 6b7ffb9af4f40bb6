package web_test

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoginPageRendersRoleSelection(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/")
	assert.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assertContainsElement(t, doc, "form[action='/auth/login']")
	assertContainsElement(t, doc, "select[name='role']")
	assertContainsText(t, doc, "h1", "Strafenkasse")
}

func TestPlayerLoginNeedsNoCode(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.post("/auth/login", url.Values{"role": {"spieler"}})
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/dashboard", rr.Header().Get("Location"))
	assert.True(t, ts.cookies.hasSession())

	rr = ts.followRedirect(rr)
	assert.Equal(t, http.StatusOK, rr.Code)
	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".flash-success", "Erfolgreich als Spieler angemeldet")
}

func TestTreasurerLoginWithCorrectCode(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.post("/auth/login", url.Values{"role": {"kassier"}, "code": {"1970"}})
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.True(t, ts.cookies.hasSession())

	rr = ts.followRedirect(rr)
	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".flash-success", "Erfolgreich als Kassier angemeldet")
	// Treasurer nav shows the management pages
	assertContainsElement(t, doc, "nav a[href='/players']")
	assertContainsElement(t, doc, "nav a[href='/export']")
}

func TestTreasurerLoginWithWrongCode(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.post("/auth/login", url.Values{"role": {"kassier"}, "code": {"0000"}})
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))
	assert.False(t, ts.cookies.hasSession())

	rr = ts.followRedirect(rr)
	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".flash-error", "Ungültiger Zugangscode")
}

func TestLoginWithoutRoleSelection(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.post("/auth/login", url.Values{})
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.False(t, ts.cookies.hasSession())
}

func TestLogoutClearsSession(t *testing.T) {
	ts := newWebTestServer(t)
	ts.loginAsPlayer()

	rr := ts.post("/auth/logout", nil)
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.False(t, ts.cookies.hasSession())

	// Protected pages redirect back to login now
	rr = ts.get("/dashboard")
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))
}

func TestUnauthenticatedIsRedirectedToLogin(t *testing.T) {
	ts := newWebTestServer(t)

	for _, path := range []string{"/dashboard", "/penalties", "/statistics", "/players", "/export"} {
		rr := ts.get(path)
		assert.Equal(t, http.StatusSeeOther, rr.Code, "path %s", path)
		assert.Equal(t, "/", rr.Header().Get("Location"), "path %s", path)
	}
}

func TestExpiredSessionIsRejected(t *testing.T) {
	ts := newWebTestServer(t)
	ts.loginAsPlayer()

	ts.app.MockClock.Advance(25 * time.Hour)

	rr := ts.get("/dashboard")
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))
}
