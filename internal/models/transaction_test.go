package models_test

import (
	"errors"
	"time"

	"github.com/finance-visualizer/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestTransactionFindTimeUTC() {
	tz, _ := time.LoadLocation("Europe/Berlin")

	transaction := models.Transaction{
		Date: time.Date(2000, 1, 2, 3, 4, 5, 6, tz),
	}

	err := transaction.AfterFind(suite.db)
	if err != nil {
		assert.Fail(suite.T(), "transaction.AfterFind failed")
	}

	assert.Equal(suite.T(), time.UTC, transaction.Date.Location(), "Timezone for model is not UTC")
}

func (suite *TestSuiteStandard) TestTransactionBeforeSave() {
	tz, _ := time.LoadLocation("Europe/Berlin")

	transaction := models.Transaction{
		Description: "  Rent \t",
		Date:        time.Date(2000, 1, 2, 3, 4, 5, 6, tz),
	}

	err := transaction.BeforeSave(suite.db)
	if err != nil {
		assert.Fail(suite.T(), "transaction.BeforeSave failed")
	}

	assert.Equal(suite.T(), time.UTC, transaction.Date.Location(), "Timezone for model is not UTC")
	assert.Equal(suite.T(), "Rent", transaction.Description)
}

func (suite *TestSuiteStandard) TestTransactionRoundTrip() {
	created := suite.createTestTransaction(models.Transaction{
		Amount:      decimal.NewFromFloat(-50.25),
		Description: "Groceries",
		Category:    models.CategoryFood,
		Date:        time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
	})
	suite.Assert().NotEqual(uuid.Nil, created.ID)

	var read models.Transaction
	err := suite.db.First(&read, "id = ?", created.ID).Error
	suite.Require().Nil(err)

	suite.Assert().True(created.Amount.Equal(read.Amount), "Amount differs: %s != %s", created.Amount, read.Amount)
	suite.Assert().Equal(created.Description, read.Description)
	suite.Assert().Equal(created.Category, read.Category)
	suite.Assert().True(created.Date.Equal(read.Date))
}

func (suite *TestSuiteStandard) TestTransactionNotFound() {
	var read models.Transaction
	err := suite.db.First(&read, "id = ?", uuid.New()).Error

	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Equal("there is no transaction matching your query", err.Error())
}

func (suite *TestSuiteStandard) TestTransactionDBClosed() {
	suite.CloseDB()

	err := suite.db.Create(&models.Transaction{Description: "Rent", Category: models.CategoryHousing}).Error
	suite.Assert().True(errors.Is(err, models.ErrStorageUnavailable), "Error is %v", err)

	var list []models.Transaction
	err = suite.db.Find(&list).Error
	suite.Assert().ErrorIs(err, models.ErrStorageUnavailable)
}
