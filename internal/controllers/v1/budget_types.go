package v1

import (
	"fmt"

	"github.com/cofrinho-app/backend/internal/models"
	"github.com/cofrinho-app/backend/internal/types"
	ez_uuid "github.com/cofrinho-app/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetEditable represents all user configurable parameters
type BudgetEditable struct {
	CategoryID uuid.UUID       `json:"categoryId" example:"2649c965-7999-4873-ae16-89d5d5fa972e"` // ID of the category
	Month      types.Month     `json:"month" example:"2025-11-01"`                                // The month. Any day is truncated to the first day of its month
	Amount     decimal.Decimal `json:"amount" example:"400.00" minimum:"0"`                       // The budgeted amount, must not be negative
}

func (editable BudgetEditable) model(userID uuid.UUID) models.Budget {
	return models.Budget{
		UserID:     userID,
		CategoryID: editable.CategoryID,
		Month:      editable.Month,
		Amount:     types.NewMoney(editable.Amount),
	}
}

func budgetEditable(model models.Budget) BudgetEditable {
	return BudgetEditable{
		CategoryID: model.CategoryID,
		Month:      model.Month,
		Amount:     model.Amount.Decimal,
	}
}

type BudgetLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf"`      // The budget itself
	Category string `json:"category" example:"https://example.com/api/v1/categories/2649c965-7999-4873-ae16-89d5d5fa972e"` // The category of the budget
}

// Budget is the API representation of a Budget.
type Budget struct {
	models.DefaultModel
	BudgetEditable
	Links BudgetLinks `json:"links"`
}

func newBudget(c *gin.Context, model models.Budget) Budget {
	url := c.GetString(string(models.DBContextURL))

	return Budget{
		DefaultModel:   model.DefaultModel,
		BudgetEditable: budgetEditable(model),
		Links: BudgetLinks{
			Self:     fmt.Sprintf("%s/v1/budgets/%s", url, model.ID),
			Category: fmt.Sprintf("%s/v1/categories/%s", url, model.CategoryID),
		},
	}
}

type BudgetListResponse struct {
	Data       []Budget    `json:"data"`                                                          // List of budgets
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type BudgetCreateResponse struct {
	Data  []BudgetResponse `json:"data"`                                                          // List of created budgets or their respective error
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (b *BudgetCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	b.Data = append(b.Data, BudgetResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BudgetResponse struct {
	Data  *Budget `json:"data"`                                                          // Data for the budget
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BudgetQueryFilter struct {
	CategoryID ez_uuid.UUID `form:"category"`                   // By ID of the category
	Month      types.Month  `form:"month" filterField:"false"`  // By month, YYYY-MM
	Offset     uint         `form:"offset" filterField:"false"` // The offset of the first budget returned. Defaults to 0.
	Limit      int          `form:"limit" filterField:"false"`  // Maximum number of budgets to return. Defaults to 50.
}

func (f BudgetQueryFilter) model() models.Budget {
	return models.Budget{
		CategoryID: f.CategoryID.UUID,
	}
}

// BudgetProgress is a budget with the amount spent in its category and
// month. For savings categories, spent is the amount set aside.
type BudgetProgress struct {
	BudgetID     uuid.UUID           `json:"budgetId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"`   // ID of the budget
	CategoryID   uuid.UUID           `json:"categoryId" example:"2649c965-7999-4873-ae16-89d5d5fa972e"` // ID of the category
	CategoryName string              `json:"categoryName" example:"Alimentação"`                        // Name of the category
	CategoryIcon string              `json:"categoryIcon" example:"shopping-cart"`                      // Icon of the category
	CategoryType models.CategoryType `json:"categoryType" example:"expense"`                            // Type of the category
	Month        types.Month         `json:"month" example:"2025-11-01"`                                // The month of the budget
	Budgeted     decimal.Decimal     `json:"budgeted" example:"400"`                                    // The budgeted amount
	Spent        decimal.Decimal     `json:"spent" example:"150"`                                       // The amount spent, never negative
	Remaining    decimal.Decimal     `json:"remaining" example:"250"`                                   // Budgeted minus spent, negative when the budget is exceeded
	Percentage   decimal.Decimal     `json:"percentage" example:"37.5"`                                 // Spent in percent of budgeted, 0 for a zero budget
}

type BudgetProgressListResponse struct {
	Data  []BudgetProgress `json:"data"`                             // Progress of all budgets
	Error *string          `json:"error" example:"could not load data"` // The error, if any occurred
}
