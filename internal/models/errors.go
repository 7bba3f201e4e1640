package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
	ErrInvalidReference = errors.New("a resource referenced in your request does not exist")
)

// Conflicts with existing data
var (
	ErrAccountNameNotUnique  = errors.New("the account name must be unique")
	ErrCategoryNameNotUnique = errors.New("the category name must be unique")
	ErrBudgetMonthNotUnique  = errors.New("a budget for this category and month already exists")
	ErrCategoryInUse         = errors.New("the category is in use and cannot be deleted")
)

// Validation
var (
	ErrCategoryTypeInvalid  = errors.New("the category type must be one of 'revenue', 'expense', 'savings'")
	ErrBudgetAmountNegative = errors.New("the budgeted amount must not be negative")
	ErrBudgetMonthMissing   = errors.New("the month of the budget must be set")
)
