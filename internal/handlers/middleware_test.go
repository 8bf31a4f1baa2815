package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"recipeshare/internal/service"
)

// minimal router wiring only the gate + a protected endpoint
func newGateOnlyRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(s, nil)
	r.GET("/secure", h.authGate, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "userId": callerID(c)})
	})
	return r
}

func TestAuthGate_MissingVsInvalidToken(t *testing.T) {
	cases := []struct {
		name     string
		header   string
		parseErr error
		wantCode int
		wantMsg  string
	}{
		{
			// No token at all: 403, matching the boundary contract.
			name:     "missing header",
			header:   "",
			wantCode: http.StatusForbidden,
			wantMsg:  "no token provided",
		},
		{
			// Present but unverifiable: 401.
			name:     "invalid token",
			header:   "Bearer bad",
			parseErr: service.ErrTokenSignature,
			wantCode: http.StatusUnauthorized,
			wantMsg:  "invalid or expired token",
		},
		{
			name:     "expired token",
			header:   "Bearer old",
			parseErr: service.ErrTokenExpired,
			wantCode: http.StatusUnauthorized,
			wantMsg:  "invalid or expired token",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			users := &mockUsers{parseErr: tc.parseErr}
			r := newGateOnlyRouter(&service.Service{Users: users})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/secure", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			r.ServeHTTP(w, req)

			if w.Code != tc.wantCode {
				t.Fatalf("status: got %d, want %d (body=%s)", w.Code, tc.wantCode, w.Body.String())
			}
			var out struct {
				Error string `json:"error"`
			}
			_ = json.Unmarshal(w.Body.Bytes(), &out)
			if out.Error != tc.wantMsg {
				t.Fatalf("error message: got %q, want %q", out.Error, tc.wantMsg)
			}
		})
	}
}

func TestAuthGate_SuccessSetsUserID(t *testing.T) {
	users := &mockUsers{parseID: 123}
	r := newGateOnlyRouter(&service.Service{Users: users})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, body=%s", w.Code, w.Body.String())
	}
	var resp struct {
		OK     bool `json:"ok"`
		UserID int  `json:"userId"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !resp.OK || resp.UserID != 123 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if users.lastParseToken != "good-token" {
		t.Fatalf("ParseToken got %q, want %q", users.lastParseToken, "good-token")
	}
}

func TestAuthGate_AcceptsBareToken(t *testing.T) {
	users := &mockUsers{parseID: 5}
	r := newGateOnlyRouter(&service.Service{Users: users})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "raw-token")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, body=%s", w.Code, w.Body.String())
	}
	if users.lastParseToken != "raw-token" {
		t.Fatalf("ParseToken got %q, want %q", users.lastParseToken, "raw-token")
	}
}
