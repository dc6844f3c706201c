package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type validatedRequest struct {
	Amount *float64 `validate:"required"`
	Type   string   `validate:"required"`
}

func TestValidateRequest(t *testing.T) {
	amount := 0.0
	tests := []struct {
		name       string
		req        validatedRequest
		wantFields []string
	}{
		{name: "valid with zero amount", req: validatedRequest{Amount: &amount, Type: "cars"}},
		{name: "missing amount", req: validatedRequest{Type: "cars"}, wantFields: []string{"Amount"}},
		{name: "missing type", req: validatedRequest{Amount: &amount}, wantFields: []string{"Type"}},
		{name: "missing both", req: validatedRequest{}, wantFields: []string{"Amount", "Type"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateRequest(tt.req)
			if len(errs) != len(tt.wantFields) {
				t.Fatalf("expected %d errors got %d: %+v", len(tt.wantFields), len(errs), errs)
			}
			for i, field := range tt.wantFields {
				if errs[i].Field != field {
					t.Errorf("expected field %s got %s", field, errs[i].Field)
				}
				if errs[i].Type != "required" {
					t.Errorf("expected tag required got %s", errs[i].Type)
				}
			}
		})
	}
}

func TestValidateRequestNonStruct(t *testing.T) {
	errs := ValidateRequest(42)
	if len(errs) != 1 || errs[0].Type != "invalid" {
		t.Fatalf("expected a single invalid entry, got %+v", errs)
	}
}

func TestLoggingMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	r := gin.New()
	r.Use(LoggingMiddleware(logger))
	r.GET("/missing", func(c *gin.Context) {
		RespondWithError(c, http.StatusNotFound, "Transaction not found")
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/missing", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", w.Code)
	}

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("expected one json log line, got %q: %v", buf.String(), err)
	}
	if line["level"] != "warn" {
		t.Errorf("expected warn level got %v", line["level"])
	}
	if line["path"] != "/missing" || line["method"] != http.MethodGet {
		t.Errorf("unexpected log fields: %v", line)
	}
	if status, _ := line["status"].(float64); status != http.StatusNotFound {
		t.Errorf("expected status 404 in log got %v", line["status"])
	}
}

func TestValidateRequestOtherTagMessage(t *testing.T) {
	req := struct {
		Type string `validate:"oneof=cars shopping"`
	}{Type: "boats"}

	errs := ValidateRequest(req)
	if len(errs) != 1 {
		t.Fatalf("expected 1 error got %+v", errs)
	}
	if errs[0].Type != "oneof" || errs[0].Message != "Invalid value" {
		t.Errorf("unexpected entry %+v", errs[0])
	}
}
