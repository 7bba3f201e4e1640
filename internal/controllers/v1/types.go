package v1

import (
	"time"

	"github.com/cofrinho-app/backend/internal/models"
	ez_uuid "github.com/cofrinho-app/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Now returns the current time. Time windowed endpoints use it as the
// reference for "today".
var Now = time.Now

// defaultLimit is the number of resources returned by list endpoints
// when no limit is given.
const defaultLimit = 50

type URIID struct {
	ID ez_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

// Pagination contains information about the pagination for collection endpoint responses.
type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}

// userID returns the ID of the user the request is made for.
//
// The router only calls handlers when the ID has been set.
func userID(c *gin.Context) uuid.UUID {
	return c.MustGet(string(models.DBContextUserID)).(uuid.UUID)
}
