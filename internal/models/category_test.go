package models_test

import (
	"github.com/cofrinho-app/backend/internal/models"
	"github.com/cofrinho-app/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCategoryTrimWhitespace() {
	category := suite.createTestCategory(models.Category{
		Name: "\t Moradia  ",
		Icon: " home ",
	})

	assert.Equal(suite.T(), "Moradia", category.Name)
	assert.Equal(suite.T(), "home", category.Icon)
}

// TestCategoryNameNormalized verifies that a decomposed name collides with
// its composed form.
func (suite *TestSuiteStandard) TestCategoryNameNormalized() {
	suite.createTestCategory(models.Category{Name: "Alimentação"})

	err := models.DB.Create(&models.Category{
		UserID: suite.userID,
		Name:   "Alimentac\u0327a\u0303o",
		Type:   models.CategoryTypeExpense,
	}).Error
	assert.ErrorIs(suite.T(), err, models.ErrCategoryNameNotUnique)
}

func (suite *TestSuiteStandard) TestCategoryNameUniquePerUser() {
	suite.createTestCategory(models.Category{Name: "Lazer"})

	// Another user may use the same name
	other := suite.createTestCategory(models.Category{Name: "Lazer", UserID: uuid.New()})
	assert.Equal(suite.T(), "Lazer", other.Name)
}

func (suite *TestSuiteStandard) TestCategoryTypeInvalid() {
	err := models.DB.Create(&models.Category{
		UserID: suite.userID,
		Name:   "Invalid",
		Type:   "investment",
	}).Error
	assert.ErrorIs(suite.T(), err, models.ErrCategoryTypeInvalid)
}

func (suite *TestSuiteStandard) TestCategoryDeleteUnused() {
	category := suite.createTestCategory(models.Category{})

	err := models.DB.Delete(&category).Error
	assert.Nil(suite.T(), err)

	err = models.DB.First(&models.Category{}, "id = ?", category.ID).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestCategoryDeleteInUseByTransaction() {
	category := suite.createTestCategory(models.Category{})
	suite.createTestTransaction(models.Transaction{
		CategoryID: &category.ID,
		Amount:     types.NewMoney(decimal.NewFromInt(-10)),
	})

	err := models.DB.Delete(&category).Error
	assert.ErrorIs(suite.T(), err, models.ErrCategoryInUse)

	// The category is still there
	err = models.DB.First(&models.Category{}, "id = ?", category.ID).Error
	assert.Nil(suite.T(), err)
}

func (suite *TestSuiteStandard) TestCategoryDeleteInUseByBudget() {
	category := suite.createTestCategory(models.Category{})
	suite.createTestBudget(models.Budget{
		CategoryID: category.ID,
		Month:      types.NewMonth(2025, 11),
		Amount:     types.NewMoney(decimal.NewFromInt(100)),
	})

	err := models.DB.Delete(&category).Error
	assert.ErrorIs(suite.T(), err, models.ErrCategoryInUse)
}

func (suite *TestSuiteStandard) TestCategoryInUseDBClosed() {
	category := suite.createTestCategory(models.Category{})
	suite.CloseDB()

	_, err := category.InUse(models.DB)
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}
