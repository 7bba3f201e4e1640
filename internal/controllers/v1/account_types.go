package v1

import (
	"fmt"

	"github.com/cofrinho-app/backend/internal/models"
	"github.com/cofrinho-app/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AccountEditable represents all user configurable parameters
type AccountEditable struct {
	Name           string          `json:"name" example:"Nubank" default:""`           // Name of the account, unique per user
	Kind           string          `json:"kind" example:"checking" default:""`         // Kind of the account, e.g. checking or wallet
	Note           string          `json:"note" example:"Joint account" default:""`    // A note
	InitialBalance decimal.Decimal `json:"initialBalance" example:"1500.00" default:"0"` // Balance before the first transaction
}

func (editable AccountEditable) model(userID uuid.UUID) models.Account {
	return models.Account{
		UserID:         userID,
		Name:           editable.Name,
		Kind:           editable.Kind,
		Note:           editable.Note,
		InitialBalance: types.NewMoney(editable.InitialBalance),
	}
}

func accountEditable(model models.Account) AccountEditable {
	return AccountEditable{
		Name:           model.Name,
		Kind:           model.Kind,
		Note:           model.Note,
		InitialBalance: model.InitialBalance.Decimal,
	}
}

type AccountLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/accounts/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`                  // The account itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?account=af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // Transactions on this account
}

// Account is the API representation of an Account.
type Account struct {
	models.DefaultModel
	AccountEditable
	Links AccountLinks `json:"links"`

	// This field is computed
	Balance decimal.Decimal `json:"balance" example:"2735.17"` // Initial balance plus all transactions
}

func newAccount(c *gin.Context, db *gorm.DB, model models.Account) (Account, error) {
	url := c.GetString(string(models.DBContextURL))

	balance, err := model.Balance(db)
	if err != nil {
		return Account{}, err
	}

	return Account{
		DefaultModel:    model.DefaultModel,
		AccountEditable: accountEditable(model),
		Links: AccountLinks{
			Self:         fmt.Sprintf("%s/v1/accounts/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?account=%s", url, model.ID),
		},
		Balance: balance,
	}, nil
}

type AccountListResponse struct {
	Data       []Account   `json:"data"`                                                          // List of accounts
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type AccountCreateResponse struct {
	Data  []AccountResponse `json:"data"`                                                          // List of created accounts or their respective error
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (a *AccountCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	a.Data = append(a.Data, AccountResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type AccountResponse struct {
	Data  *Account `json:"data"`                                                          // Data for the account
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type AccountQueryFilter struct {
	Name   string `form:"name" filterField:"false"`   // By name
	Kind   string `form:"kind"`                       // By kind
	Search string `form:"search" filterField:"false"` // By string in name or note
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first account returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of accounts to return. Defaults to 50.
}

func (f AccountQueryFilter) model() models.Account {
	return models.Account{
		Kind: f.Kind,
	}
}
