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

// TransactionEditable represents all user configurable parameters
type TransactionEditable struct {
	AccountID   uuid.UUID  `json:"accountId" example:"fd81dc45-a3a2-468e-a6fa-b2618f30aa45"`  // ID of the account
	CategoryID  *uuid.UUID `json:"categoryId" example:"2649c965-7999-4873-ae16-89d5d5fa972e"` // ID of the category, null for uncategorized transactions
	Date        types.Date `json:"date" example:"2025-11-15"`                                 // Day of the transaction. Defaults to today

	// The maximum value is "999999999999.99999999", swagger unfortunately rounds this.
	Amount decimal.Decimal `json:"amount" example:"-14.03" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // Positive for inflows, negative for outflows and savings contributions

	Description string `json:"description" example:"Lunch" default:""` // A description
}

// model returns the database resource for the API representation of the editable fields
func (editable TransactionEditable) model(userID uuid.UUID) models.Transaction {
	return models.Transaction{
		UserID:      userID,
		AccountID:   editable.AccountID,
		CategoryID:  editable.CategoryID,
		Date:        editable.Date,
		Amount:      types.NewMoney(editable.Amount),
		Description: editable.Description,
	}
}

func transactionEditable(model models.Transaction) TransactionEditable {
	return TransactionEditable{
		AccountID:   model.AccountID,
		CategoryID:  model.CategoryID,
		Date:        model.Date,
		Amount:      model.Amount.Decimal,
		Description: model.Description,
	}
}

type TransactionLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
}

// Transaction is the API representation of a Transaction.
type Transaction struct {
	models.DefaultModel
	TransactionEditable
	Links TransactionLinks `json:"links"`
}

func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	return Transaction{
		DefaultModel:        model.DefaultModel,
		TransactionEditable: transactionEditable(model),
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
		},
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionCreateResponse struct {
	Data  []TransactionResponse `json:"data"`                                                          // List of created transactions or their respective error
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Data  *Transaction `json:"data"`                                                          // Data for the transaction
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TransactionQueryFilter struct {
	AccountID   ez_uuid.UUID `form:"account"`                         // By ID of the account
	CategoryID  ez_uuid.UUID `form:"category" filterField:"false"`    // By ID of the category. Empty for uncategorized transactions
	FromDate    types.Date   `form:"fromDate" filterField:"false"`    // Transactions on and after this date
	UntilDate   types.Date   `form:"untilDate" filterField:"false"`   // Transactions on and before this date
	Description string       `form:"description" filterField:"false"` // Glob pattern for the description, "*" matches any text
	Offset      uint         `form:"offset" filterField:"false"`      // The offset of the first transaction returned. Defaults to 0.
	Limit       int          `form:"limit" filterField:"false"`       // Maximum number of transactions to return. Defaults to 50.
}

func (f TransactionQueryFilter) model() models.Transaction {
	return models.Transaction{
		AccountID: f.AccountID.UUID,
	}
}
