package root

import (
	"net/http"

	"github.com/cofrinho-app/backend/internal/httputil"
	"github.com/cofrinho-app/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Links Links `json:"links"`
}

// Links point to the service endpoints and to the overviews a client
// typically starts from.
type Links struct {
	Dashboard      string `json:"dashboard" example:"https://example.com/api/v1/dashboard"`              // Summary, balance evolution and expenses by category
	BudgetProgress string `json:"budgetProgress" example:"https://example.com/api/v1/budgets/progress"` // Progress of all budgets
	V1             string `json:"v1" example:"https://example.com/api/v1"`                              // List endpoint for all v1 resources
	Docs           string `json:"docs" example:"https://example.com/api/docs/index.html"`               // Swagger API documentation
	Healthz        string `json:"healthz" example:"https://example.com/api/healthz"`                    // Reports if the database is reachable
	Version        string `json:"version" example:"https://example.com/api/version"`                    // Version of the backend
	Metrics        string `json:"metrics" example:"https://example.com/api/metrics"`                    // Prometheus metrics
}

func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

// @Summary		API root
// @Description	Entrypoint for the API, linking the dashboard, the budget progress and the service endpoints
// @Tags			General
// @Success		200	{object}	Response
// @Router			/ [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Dashboard:      url + "/v1/dashboard",
			BudgetProgress: url + "/v1/budgets/progress",
			V1:             url + "/v1",
			Docs:           url + "/docs/index.html",
			Healthz:        url + "/healthz",
			Version:        url + "/version",
			Metrics:        url + "/metrics",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/ [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
