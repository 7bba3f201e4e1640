package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/cofrinho-app/backend/internal/controllers/v1"
	"github.com/cofrinho-app/backend/internal/models"
	"github.com/cofrinho-app/backend/internal/types"
	"github.com/cofrinho-app/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestBudgetsCreate() {
	category := suite.createTestCategory(v1.CategoryEditable{})

	r := suite.request(http.MethodPost, "http://example.com/v1/budgets", fmt.Sprintf(`[{ "categoryId": "%s", "month": "2025-11-17", "amount": "400" }]`, category.Data.ID))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.BudgetCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)

	budget := response.Data[0].Data
	assert.Equal(suite.T(), "2025-11", budget.Month.String(), "Month must be truncated")
	suite.assertDecimal("400", budget.Amount)
	assert.Equal(suite.T(), category.Data.Links.Self, budget.Links.Category)
	assert.Contains(suite.T(), r.Body.String(), `"month":"2025-11-01"`)
}

func (suite *TestSuiteStandard) TestBudgetsCreateFails() {
	category := suite.createTestCategory(v1.CategoryEditable{})
	suite.createTestBudget(v1.BudgetEditable{CategoryID: category.Data.ID, Month: types.NewMonth(2025, 11), Amount: money("100")})

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"Same category and month", fmt.Sprintf(`[{ "categoryId": "%s", "month": "2025-11", "amount": "50" }]`, category.Data.ID), http.StatusConflict},
		{"Negative amount", fmt.Sprintf(`[{ "categoryId": "%s", "month": "2025-12", "amount": "-1" }]`, category.Data.ID), http.StatusBadRequest},
		{"Missing month", fmt.Sprintf(`[{ "categoryId": "%s", "amount": "1" }]`, category.Data.ID), http.StatusBadRequest},
		{"Invalid month", fmt.Sprintf(`[{ "categoryId": "%s", "month": "November", "amount": "1" }]`, category.Data.ID), http.StatusBadRequest},
		{"Unknown category", fmt.Sprintf(`[{ "categoryId": "%s", "month": "2025-12", "amount": "1" }]`, uuid.New()), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(http.MethodPost, "http://example.com/v1/budgets", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsGetList() {
	groceries := suite.createTestCategory(v1.CategoryEditable{Name: "Groceries"})
	rent := suite.createTestCategory(v1.CategoryEditable{Name: "Rent"})

	suite.createTestBudget(v1.BudgetEditable{CategoryID: groceries.Data.ID, Month: types.NewMonth(2025, 10), Amount: money("1")})
	suite.createTestBudget(v1.BudgetEditable{CategoryID: groceries.Data.ID, Month: types.NewMonth(2025, 11), Amount: money("2")})
	suite.createTestBudget(v1.BudgetEditable{CategoryID: rent.Data.ID, Month: types.NewMonth(2025, 11), Amount: money("3")})

	tests := []struct {
		name    string
		query   string
		amounts []string
	}{
		{"All, most recent month first", "", []string{"2", "3", "1"}},
		{"Category", fmt.Sprintf("category=%s", groceries.Data.ID), []string{"2", "1"}},
		{"Month", "month=2025-10", []string{"1"}},
		{"Category and month", fmt.Sprintf("category=%s&month=2025-11", rent.Data.ID), []string{"3"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(http.MethodGet, fmt.Sprintf("http://example.com/v1/budgets?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.BudgetListResponse
			test.DecodeResponse(t, &r, &response)

			amounts := make([]string, 0)
			for _, b := range response.Data {
				amounts = append(amounts, b.Amount.String())
			}
			assert.Equal(t, tt.amounts, amounts)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsUpdate() {
	budget := suite.createTestBudget(v1.BudgetEditable{Amount: money("100")})

	r := suite.request(http.MethodPatch, budget.Data.Links.Self, `{ "amount": "250.50" }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.assertDecimal("250.50", response.Data.Amount)
	assert.Equal(suite.T(), "2025-11", response.Data.Month.String())

	r = suite.request(http.MethodPatch, budget.Data.Links.Self, `{ "amount": "-5" }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestBudgetsUpdateConflict() {
	category := suite.createTestCategory(v1.CategoryEditable{})
	suite.createTestBudget(v1.BudgetEditable{CategoryID: category.Data.ID, Month: types.NewMonth(2025, 10)})
	budget := suite.createTestBudget(v1.BudgetEditable{CategoryID: category.Data.ID, Month: types.NewMonth(2025, 11)})

	r := suite.request(http.MethodPatch, budget.Data.Links.Self, `{ "month": "2025-10" }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)
}

func (suite *TestSuiteStandard) TestBudgetsDelete() {
	budget := suite.createTestBudget(v1.BudgetEditable{})

	r := suite.request(http.MethodDelete, budget.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(http.MethodGet, budget.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestBudgetProgress() {
	account := suite.createTestAccount(v1.AccountEditable{})
	groceries := suite.createTestCategory(v1.CategoryEditable{Name: "Groceries", Icon: "cart", Type: models.CategoryTypeExpense})
	reserve := suite.createTestCategory(v1.CategoryEditable{Name: "Reserve", Type: models.CategoryTypeSavings})

	groceriesBudget := suite.createTestBudget(v1.BudgetEditable{CategoryID: groceries.Data.ID, Month: types.NewMonth(2025, 11), Amount: money("400")})
	suite.createTestBudget(v1.BudgetEditable{CategoryID: reserve.Data.ID, Month: types.NewMonth(2025, 11), Amount: money("0")})

	suite.createTestTransaction(v1.TransactionEditable{AccountID: account.Data.ID, CategoryID: &groceries.Data.ID, Date: types.NewDate(2025, 11, 2), Amount: money("-100")})
	suite.createTestTransaction(v1.TransactionEditable{AccountID: account.Data.ID, CategoryID: &groceries.Data.ID, Date: types.NewDate(2025, 11, 9), Amount: money("-50")})
	suite.createTestTransaction(v1.TransactionEditable{AccountID: account.Data.ID, CategoryID: &reserve.Data.ID, Date: types.NewDate(2025, 11, 9), Amount: money("-300")})

	r := suite.request(http.MethodGet, "http://example.com/v1/budgets/progress", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetProgressListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 2)

	// Savings first
	savings := response.Data[0]
	assert.Equal(suite.T(), "Reserve", savings.CategoryName)
	suite.assertDecimal("300", savings.Spent)
	suite.assertDecimal("-300", savings.Remaining)
	suite.assertDecimal("0", savings.Percentage)

	p := response.Data[1]
	assert.Equal(suite.T(), groceriesBudget.Data.ID, p.BudgetID)
	assert.Equal(suite.T(), "cart", p.CategoryIcon)
	assert.Equal(suite.T(), models.CategoryTypeExpense, p.CategoryType)
	suite.assertDecimal("400", p.Budgeted)
	suite.assertDecimal("150", p.Spent)
	suite.assertDecimal("250", p.Remaining)
	suite.assertDecimal("37.5", p.Percentage)
}

func (suite *TestSuiteStandard) TestBudgetProgressEmpty() {
	r := suite.request(http.MethodGet, "http://example.com/v1/budgets/progress", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	assert.JSONEq(suite.T(), `{ "data": [], "error": null }`, r.Body.String())
}

func (suite *TestSuiteStandard) TestBudgetProgressDatabaseError() {
	suite.CloseDB()

	r := suite.request(http.MethodGet, "http://example.com/v1/budgets/progress", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
	assert.JSONEq(suite.T(), `{ "data": null, "error": "could not load data" }`, r.Body.String())
}
