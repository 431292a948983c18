package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"berta-backend/domain/model"
	"berta-backend/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestTracking(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tracker := usecase.NewTracker()

	router := gin.New()
	router.Use(Tracking(tracker))
	router.GET("/", func(ctx *gin.Context) { ctx.Status(http.StatusOK) })

	for _, target := range []string{
		"/?resource=video",
		"/?resource=video",
		"/?resource=playlist",
		"/?resource=tracking", // not counted
		"/?resource=bogus",    // not counted
		"/",                   // not counted
	} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	}

	report := tracker.Flush(time.Now())
	assert.Equal(t, int64(2), report.Hits[string(model.ResourceVideo)])
	assert.Equal(t, int64(1), report.Hits[string(model.ResourcePlaylist)])
	assert.Equal(t, int64(3), report.Total)
}
