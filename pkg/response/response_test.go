package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		handler  gin.HandlerFunc
		wantCode int
		want     Response
	}{
		{
			name:     "success",
			handler:  func(c *gin.Context) { Success(c, "ok") },
			wantCode: http.StatusOK,
			want:     Response{Code: 0, Message: "success", Data: "ok"},
		},
		{
			name:     "bad request",
			handler:  func(c *gin.Context) { BadRequest(c, "Invalid metric", errors.New("unknown metric")) },
			wantCode: http.StatusBadRequest,
			want:     Response{Code: 400, Message: "Invalid metric", Error: "unknown metric"},
		},
		{
			name:     "internal error",
			handler:  func(c *gin.Context) { InternalError(c, "Failed", nil) },
			wantCode: http.StatusInternalServerError,
			want:     Response{Code: 500, Message: "Failed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			tt.handler(c)

			if rec.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantCode)
			}
			var got Response
			if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if got != tt.want {
				t.Fatalf("body = %+v, want %+v", got, tt.want)
			}
		})
	}
}
