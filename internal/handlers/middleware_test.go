package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sigma/internal/service"

	"github.com/gin-gonic/gin"
)

// minimal router wiring only the middleware + a protected endpoint
func newMiddlewareOnlyRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(s, nil)
	r.GET("/secure", h.userIdentity, func(c *gin.Context) {
		uid, _ := c.Get(ctxUserID)
		role, _ := c.Get(ctxRole)
		c.JSON(http.StatusOK, gin.H{"ok": true, "userId": uid, "role": role})
	})
	r.GET("/admin", h.userIdentity, h.adminOnly, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestUserIdentity_Errors(t *testing.T) {
	cases := []struct {
		name   string
		header string
		errMsg string
	}{
		{name: "missing header", header: "", errMsg: "missing Authorization header"},
		{name: "invalid scheme", header: "Token abc", errMsg: "invalid Authorization header format"},
		{name: "bearer without token", header: "Bearer", errMsg: "invalid Authorization header format"},
		{name: "expired/invalid token", header: "Bearer expired", errMsg: "invalid or expired token"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := &service.Service{Authorization: newMockAuth()}
			r := newMiddlewareOnlyRouter(s)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/secure", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			r.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Fatalf("status: got %d, want %d (body=%s)", w.Code, http.StatusUnauthorized, w.Body.String())
			}

			var out struct {
				Error string `json:"error"`
			}
			_ = json.Unmarshal(w.Body.Bytes(), &out)
			if out.Error != tc.errMsg {
				t.Fatalf("error message: got %q, want %q", out.Error, tc.errMsg)
			}
		})
	}
}

func TestUserIdentity_SuccessSetsSessionAndProceeds(t *testing.T) {
	auth := newMockAuth()
	r := newMiddlewareOnlyRouter(&service.Service{Authorization: auth})

	w := perform(r, http.MethodGet, "/secure", "", agentToken)
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d; body=%s", w.Code, http.StatusOK, w.Body.String())
	}

	var resp struct {
		OK     bool   `json:"ok"`
		UserID string `json:"userId"`
		Role   string `json:"role"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !resp.OK || resp.UserID != "u-agent" || resp.Role != "AGENT" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if auth.lastParseToken != agentToken {
		t.Fatalf("ParseToken got %q, want %q", auth.lastParseToken, agentToken)
	}
}

func TestAdminOnly(t *testing.T) {
	r := newMiddlewareOnlyRouter(&service.Service{Authorization: newMockAuth()})

	if w := perform(r, http.MethodGet, "/admin", "", agentToken); w.Code != http.StatusForbidden {
		t.Fatalf("agent: got %d, want 403", w.Code)
	}
	if w := perform(r, http.MethodGet, "/admin", "", adminToken); w.Code != http.StatusOK {
		t.Fatalf("admin: got %d, want 200 (body=%s)", w.Code, w.Body.String())
	}
}
