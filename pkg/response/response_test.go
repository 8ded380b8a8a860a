package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fekuna/omnipos-report-service/pkg/middleware"
	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type request struct {
	Category string `json:"category" form:"category"`
	Limit    int    `json:"limit" form:"limit" binding:"gte=0"`
}

func TestError_HidesServerCause(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/bad", func(c *gin.Context) { Error(c, http.StatusBadRequest, "Invalid request", errors.New("limit: must be >= 0")) })
	r.GET("/boom", func(c *gin.Context) { Error(c, http.StatusInternalServerError, "Failed", errors.New("dial tcp: refused")) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bad", nil))
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if w.Code != http.StatusBadRequest || body["error"] != "limit: must be >= 0" || body["request_id"] == "" {
		t.Errorf("unexpected 400 body %v", body)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	if strings.Contains(w.Body.String(), "refused") {
		t.Errorf("server error cause leaked: %s", w.Body.String())
	}
}

func TestBind(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		body     string
		wantErr  bool
		category string
		limit    int
	}{
		{name: "query only", target: "/?category=Tools&limit=3", category: "Tools", limit: 3},
		{name: "body overrides query", target: "/?category=Tools", body: `{"category":"Garden","limit":2}`, category: "Garden", limit: 2},
		{name: "empty body", target: "/", category: "", limit: 0},
		{name: "negative limit", target: "/?limit=-1", wantErr: true},
		{name: "wrong json type", target: "/", body: `{"limit":"ten"}`, wantErr: true},
		{name: "malformed json", target: "/", body: `{"category":`, wantErr: true},
		{name: "bad query type", target: "/?limit=ten", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			req := httptest.NewRequest(http.MethodPost, tt.target, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			c.Request = req

			var got request
			err := Bind(c, &got)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Bind() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got.Category != tt.category || got.Limit != tt.limit {
				t.Errorf("got %+v", got)
			}
		})
	}
}
