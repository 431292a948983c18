package middleware

import (
	"berta-backend/domain/model"
	"berta-backend/usecase"

	"github.com/gin-gonic/gin"
)

// Tracking records a hit for every request naming a valid resource type.
// Requests for the tracking resource itself are not counted.
func Tracking(tracker *usecase.Tracker) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if resource, ok := model.ParseResourceType(ctx.Query("resource")); ok && resource != model.ResourceTracking {
			tracker.Record(resource)
		}
		ctx.Next()
	}
}
