package v1

import (
	"net/http"

	"github.com/cofrinho-app/backend/internal/aggregation"
	"github.com/cofrinho-app/backend/internal/httputil"
	"github.com/cofrinho-app/backend/internal/models"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RegisterDashboardRoutes registers the routes for the dashboard with
// the RouterGroup that is passed.
func RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsDashboard)
	r.GET("", GetDashboard)
	r.OPTIONS("/summary", OptionsDashboard)
	r.GET("/summary", GetDashboardSummary)
	r.OPTIONS("/balance-evolution", OptionsDashboard)
	r.GET("/balance-evolution", GetBalanceEvolution)
	r.OPTIONS("/expense-by-category", OptionsDashboard)
	r.GET("/expense-by-category", GetExpenseByCategory)
}

// couldNotLoad logs the cause of a failed aggregation and returns the
// message sent to the client.
func couldNotLoad(c *gin.Context, err error, figure string) *string {
	log.Error().Str("request-id", requestid.Get(c)).Str("figure", figure).Err(err).Msg("aggregation failed")

	s := errCouldNotLoad.Error()
	return &s
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Dashboard
// @Success		204
// @Router			/v1/dashboard [options]
// @Router			/v1/dashboard/summary [options]
// @Router			/v1/dashboard/balance-evolution [options]
// @Router			/v1/dashboard/expense-by-category [options]
func OptionsDashboard(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get dashboard
// @Description	Returns the summary, the balance evolution and the expenses by category at once
// @Tags			Dashboard
// @Produce		json
// @Success		200	{object}	DashboardResponse
// @Failure		500	{object}	DashboardResponse
// @Router			/v1/dashboard [get]
func GetDashboard(c *gin.Context) {
	overview, err := aggregation.Overview(models.DB.WithContext(c), userID(c), Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, DashboardResponse{
			Error: couldNotLoad(c, err, "overview"),
		})
		return
	}

	c.JSON(http.StatusOK, DashboardResponse{
		Data: &Dashboard{
			Summary:           newDashboardSummary(overview.Summary),
			BalanceEvolution:  newBalanceEvolution(overview.BalanceEvolution),
			ExpenseByCategory: newExpenseByCategory(overview.ExpenseByCategory),
		},
	})
}

// @Summary		Get dashboard summary
// @Description	Returns the current balance and the revenue and expense totals, all time and for the current month
// @Tags			Dashboard
// @Produce		json
// @Success		200	{object}	DashboardSummaryResponse
// @Failure		500	{object}	DashboardSummaryResponse
// @Router			/v1/dashboard/summary [get]
func GetDashboardSummary(c *gin.Context) {
	summary, err := aggregation.Summary(models.DB.WithContext(c), userID(c), Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, DashboardSummaryResponse{
			Error: couldNotLoad(c, err, "summary"),
		})
		return
	}

	data := newDashboardSummary(summary)
	c.JSON(http.StatusOK, DashboardSummaryResponse{Data: &data})
}

// @Summary		Get balance evolution
// @Description	Returns the balance at the end of each of the last 30 days, today included, oldest first
// @Tags			Dashboard
// @Produce		json
// @Success		200	{object}	BalanceEvolutionResponse
// @Failure		500	{object}	BalanceEvolutionResponse
// @Router			/v1/dashboard/balance-evolution [get]
func GetBalanceEvolution(c *gin.Context) {
	points, err := aggregation.BalanceEvolution(models.DB.WithContext(c), userID(c), Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, BalanceEvolutionResponse{
			Error: couldNotLoad(c, err, "balance evolution"),
		})
		return
	}

	c.JSON(http.StatusOK, BalanceEvolutionResponse{Data: newBalanceEvolution(points)})
}

// @Summary		Get expenses by category
// @Description	Returns the amount spent per category in the current month, largest first. Categories without expenses are omitted.
// @Tags			Dashboard
// @Produce		json
// @Success		200	{object}	ExpenseByCategoryResponse
// @Failure		500	{object}	ExpenseByCategoryResponse
// @Router			/v1/dashboard/expense-by-category [get]
func GetExpenseByCategory(c *gin.Context) {
	slices, err := aggregation.ExpenseByCategory(models.DB.WithContext(c), userID(c), Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ExpenseByCategoryResponse{
			Error: couldNotLoad(c, err, "expense by category"),
		})
		return
	}

	c.JSON(http.StatusOK, ExpenseByCategoryResponse{Data: newExpenseByCategory(slices)})
}
