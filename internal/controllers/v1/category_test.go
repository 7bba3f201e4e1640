package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/cofrinho-app/backend/internal/controllers/v1"
	"github.com/cofrinho-app/backend/internal/models"
	"github.com/cofrinho-app/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCategoriesCreate() {
	category := suite.createTestCategory(v1.CategoryEditable{Name: "Alimentação", Icon: "shopping-cart", Type: models.CategoryTypeExpense})

	assert.Equal(suite.T(), "Alimentação", category.Data.Name)
	assert.Equal(suite.T(), "shopping-cart", category.Data.Icon)
	assert.Equal(suite.T(), models.CategoryTypeExpense, category.Data.Type)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/budgets?category=%s", category.Data.ID), category.Data.Links.Budgets)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/transactions?category=%s", category.Data.ID), category.Data.Links.Transactions)
}

func (suite *TestSuiteStandard) TestCategoriesCreateFails() {
	suite.createTestCategory(v1.CategoryEditable{Name: "Rent"})

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Invalid type", `[{ "name": "Gifts", "type": "gift" }]`, http.StatusBadRequest},
		{"Missing type", `[{ "name": "Gifts" }]`, http.StatusBadRequest},
		{"Duplicate name", `[{ "name": "Rent", "type": "expense" }]`, http.StatusConflict},
		{"Duplicate name with whitespace", `[{ "name": " Rent ", "type": "revenue" }]`, http.StatusConflict},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(http.MethodPost, "http://example.com/v1/categories", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesGetList() {
	suite.createTestCategory(v1.CategoryEditable{Name: "Salary", Type: models.CategoryTypeRevenue})
	suite.createTestCategory(v1.CategoryEditable{Name: "Groceries", Type: models.CategoryTypeExpense})
	suite.createTestCategory(v1.CategoryEditable{Name: "Emergency fund", Type: models.CategoryTypeSavings})

	tests := []struct {
		name   string
		query  string
		status int
		names  []string
	}{
		{"All, ordered by name", "", http.StatusOK, []string{"Emergency fund", "Groceries", "Salary"}},
		{"Type", "type=savings", http.StatusOK, []string{"Emergency fund"}},
		{"Search", "search=cer", http.StatusOK, []string{"Groceries"}},
		{"Search without match", "search=ery", http.StatusOK, []string{}},
		{"Invalid type", "type=gift", http.StatusBadRequest, nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(http.MethodGet, fmt.Sprintf("http://example.com/v1/categories?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status != http.StatusOK {
				return
			}

			var response v1.CategoryListResponse
			test.DecodeResponse(t, &r, &response)

			names := make([]string, 0)
			for _, c := range response.Data {
				names = append(names, c.Name)
			}
			assert.Equal(t, tt.names, names)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesGetOtherUser() {
	category := suite.createTestCategory(v1.CategoryEditable{})

	r := suite.requestAs(uuid.New(), http.MethodGet, category.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCategoriesUpdate() {
	category := suite.createTestCategory(v1.CategoryEditable{Name: "Food", Icon: "fork", Type: models.CategoryTypeExpense})

	r := suite.request(http.MethodPatch, category.Data.Links.Self, `{ "name": "Restaurants" }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Restaurants", response.Data.Name)
	assert.Equal(suite.T(), "fork", response.Data.Icon)
	assert.Equal(suite.T(), models.CategoryTypeExpense, response.Data.Type)

	r = suite.request(http.MethodPatch, category.Data.Links.Self, `{ "type": "loan" }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCategoriesDelete() {
	category := suite.createTestCategory(v1.CategoryEditable{})

	r := suite.request(http.MethodDelete, category.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(http.MethodGet, category.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCategoriesDeleteInUse() {
	withTransaction := suite.createTestCategory(v1.CategoryEditable{})
	suite.createTestTransaction(v1.TransactionEditable{CategoryID: &withTransaction.Data.ID, Amount: money("-10")})

	withBudget := suite.createTestCategory(v1.CategoryEditable{})
	suite.createTestBudget(v1.BudgetEditable{CategoryID: withBudget.Data.ID, Amount: money("100")})

	for _, category := range []v1.CategoryResponse{withTransaction, withBudget} {
		r := suite.request(http.MethodDelete, category.Data.Links.Self, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)
		assert.Contains(suite.T(), r.Body.String(), "the category is in use and cannot be deleted")

		r = suite.request(http.MethodGet, category.Data.Links.Self, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	}
}
