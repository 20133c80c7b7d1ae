package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tracedash/models"
	"tracedash/session"
	"tracedash/testutil"
)

func newTestGate() *session.Gate {
	cfg := testutil.GetTestConfig()
	return session.NewGate(cfg.AdminPassword, []byte(cfg.SessionHashKey), false)
}

func authCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	return nil
}

func TestLogin_Success(t *testing.T) {
	h := NewAuthHandler(newTestGate())

	req := testutil.MakeRequest("POST", "/api/auth", models.LoginRequest{Password: "test-password"}, nil)
	w := httptest.NewRecorder()

	h.Login(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.AuthResponse
	testutil.AssertJSON(t, w, &resp)
	if !resp.Success {
		t.Error("Expected success=true")
	}

	cookie := authCookie(w)
	if cookie == nil {
		t.Fatal("Expected auth_token cookie to be set")
	}
	if !cookie.HttpOnly || cookie.SameSite != http.SameSiteStrictMode {
		t.Error("Cookie must be httpOnly and SameSite=Strict")
	}
	if cookie.MaxAge != 86400 {
		t.Errorf("Cookie MaxAge = %d, want 86400", cookie.MaxAge)
	}
}

func TestLogin_InvalidPassword(t *testing.T) {
	h := NewAuthHandler(newTestGate())

	req := testutil.MakeRequest("POST", "/api/auth", models.LoginRequest{Password: "wrong"}, nil)
	w := httptest.NewRecorder()

	h.Login(w, req)

	testutil.AssertStatus(t, w, http.StatusUnauthorized)

	var resp models.AuthResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Success {
		t.Error("Expected success=false")
	}
	if resp.Message != "Invalid password" {
		t.Errorf("Message = %q, want 'Invalid password'", resp.Message)
	}

	if authCookie(w) != nil {
		t.Error("Failed login must not set a session cookie")
	}
}

func TestLogin_MalformedBody(t *testing.T) {
	h := NewAuthHandler(newTestGate())

	req := httptest.NewRequest("POST", "/api/auth", strings.NewReader("{not json"))
	w := httptest.NewRecorder()

	h.Login(w, req)

	testutil.AssertStatus(t, w, http.StatusInternalServerError)

	var resp models.AuthResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Message != "Server error" {
		t.Errorf("Message = %q, want 'Server error'", resp.Message)
	}
}

func TestLogin_AfterFailedAttempt(t *testing.T) {
	// Wrong password, then right one, no reload in between.
	h := NewAuthHandler(newTestGate())

	w := httptest.NewRecorder()
	h.Login(w, testutil.MakeRequest("POST", "/api/auth", models.LoginRequest{Password: "wrong"}, nil))
	testutil.AssertStatus(t, w, http.StatusUnauthorized)

	w = httptest.NewRecorder()
	h.Login(w, testutil.MakeRequest("POST", "/api/auth", models.LoginRequest{Password: "test-password"}, nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	if authCookie(w) == nil {
		t.Error("Expected session cookie after recovery login")
	}
}

func TestLogout(t *testing.T) {
	h := NewAuthHandler(newTestGate())

	req := httptest.NewRequest("DELETE", "/api/auth", nil)
	w := httptest.NewRecorder()

	h.Logout(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.AuthResponse
	testutil.AssertJSON(t, w, &resp)
	if !resp.Success {
		t.Error("Logout must always succeed")
	}

	cookie := authCookie(w)
	if cookie == nil {
		t.Fatal("Expected clearing cookie")
	}
	if cookie.MaxAge >= 0 || cookie.Value != "" {
		t.Errorf("Expected cleared cookie, got MaxAge=%d Value=%q", cookie.MaxAge, cookie.Value)
	}
}

func TestCheck(t *testing.T) {
	gate := newTestGate()
	h := NewAuthHandler(gate)

	t.Run("no session", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.Check(w, httptest.NewRequest("GET", "/api/auth/check", nil))

		testutil.AssertStatus(t, w, http.StatusUnauthorized)

		var resp models.CheckResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.Authenticated {
			t.Error("Expected authenticated=false")
		}
	})

	t.Run("valid session", func(t *testing.T) {
		cookie, err := gate.Login("test-password")
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}
		req := httptest.NewRequest("GET", "/api/auth/check", nil)
		req.AddCookie(cookie)
		w := httptest.NewRecorder()

		h.Check(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.CheckResponse
		testutil.AssertJSON(t, w, &resp)
		if !resp.Authenticated {
			t.Error("Expected authenticated=true")
		}
	})
}
