package v1

import (
	"github.com/cofrinho-app/backend/internal/httputil"
	"github.com/cofrinho-app/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type resource interface {
	models.Account | models.Category | models.Transaction | models.Budget
}

// owned returns the resource with the ID if it belongs to the user.
//
// Resources of other users are reported as not found.
func owned[R resource](c *gin.Context, id uuid.UUID) (R, error) {
	var r R
	err := models.DB.
		WithContext(c).
		Where("user_id = ?", userID(c)).
		First(&r, "id = ?", id).Error
	return r, err
}

// resourceOptionsDetail returns the appropriate response for an HTTP OPTIONS request for a specific resource.
func resourceOptionsDetail[R resource](c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	_, err = owned[R](c, uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}
