package v1

import (
	"fmt"

	"github.com/cofrinho-app/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CategoryEditable represents all user configurable parameters
type CategoryEditable struct {
	Name string              `json:"name" example:"Alimentação" default:""`  // Name of the category, unique per user
	Icon string              `json:"icon" example:"shopping-cart" default:""` // Icon reference for clients
	Type models.CategoryType `json:"type" example:"expense"`                  // One of revenue, expense, savings
}

func (editable CategoryEditable) model(userID uuid.UUID) models.Category {
	return models.Category{
		UserID: userID,
		Name:   editable.Name,
		Icon:   editable.Icon,
		Type:   editable.Type,
	}
}

func categoryEditable(model models.Category) CategoryEditable {
	return CategoryEditable{
		Name: model.Name,
		Icon: model.Icon,
		Type: model.Type,
	}
}

type CategoryLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f"`                    // The category itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?category=3b1ea324-d438-4419-882a-2fc91d71772f"` // Transactions in this category
	Budgets      string `json:"budgets" example:"https://example.com/api/v1/budgets?category=3b1ea324-d438-4419-882a-2fc91d71772f"`           // Budgets for this category
}

// Category is the API representation of a Category.
type Category struct {
	models.DefaultModel
	CategoryEditable
	Links CategoryLinks `json:"links"`
}

func newCategory(c *gin.Context, model models.Category) Category {
	url := c.GetString(string(models.DBContextURL))

	return Category{
		DefaultModel:     model.DefaultModel,
		CategoryEditable: categoryEditable(model),
		Links: CategoryLinks{
			Self:         fmt.Sprintf("%s/v1/categories/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?category=%s", url, model.ID),
			Budgets:      fmt.Sprintf("%s/v1/budgets?category=%s", url, model.ID),
		},
	}
}

type CategoryListResponse struct {
	Data       []Category  `json:"data"`                                                          // List of categories
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type CategoryCreateResponse struct {
	Data  []CategoryResponse `json:"data"`                                                          // List of created categories or their respective error
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (c *CategoryCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	c.Data = append(c.Data, CategoryResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CategoryResponse struct {
	Data  *Category `json:"data"`                                                          // Data for the category
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryQueryFilter struct {
	Name   string              `form:"name" filterField:"false"`   // By name
	Type   models.CategoryType `form:"type"`                       // By type
	Search string              `form:"search" filterField:"false"` // By string in name
	Offset uint                `form:"offset" filterField:"false"` // The offset of the first category returned. Defaults to 0.
	Limit  int                 `form:"limit" filterField:"false"`  // Maximum number of categories to return. Defaults to 50.
}

func (f CategoryQueryFilter) model() (models.Category, error) {
	if f.Type != "" && !f.Type.Valid() {
		return models.Category{}, models.ErrCategoryTypeInvalid
	}

	return models.Category{
		Type: f.Type,
	}, nil
}
