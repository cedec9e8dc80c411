package handlers_test

import (
	"net/http"
	"net/url"
)

func (suite *HandlersTestSuite) TestCounter_InitialPage() {
	w := suite.get("/")

	suite.Equal(http.StatusOK, w.Code)
	suite.Require().NotNil(suite.cookie, "a session cookie is issued")
	body := w.Body.String()
	suite.Contains(body, "PEARL CITY HOTEL (PVT) LTD")
	suite.Contains(body, "AUTHORIZED FOREIGN MONEY CHANGER")
	suite.Contains(body, `id="customer"`)
	suite.NotContains(body, `id="exchange"`)
	suite.Contains(body, "Foreign tourists (directly or through Tour Guides)")
}

func (suite *HandlersTestSuite) TestCounter_CustomerStep() {
	suite.get("/")

	w := suite.postForm("/customer", johnDoeForm())
	suite.Equal(http.StatusSeeOther, w.Code)
	suite.Equal("/", w.Header().Get("Location"))

	page := suite.get("/").Body.String()
	suite.Contains(page, `id="exchange"`)
	suite.Contains(page, "Customer information saved")
	suite.Contains(page, `value="John Doe"`)
	suite.Contains(page, "USD - US Dollar")

	again := suite.get("/").Body.String()
	suite.NotContains(again, "Customer information saved", "notices show once")
}

func (suite *HandlersTestSuite) TestCounter_CustomerValidationKeepsInput() {
	suite.get("/")

	w := suite.postForm("/customer", url.Values{
		"name":     {""},
		"idNumber": {"N123"},
		"source":   {"other"},
	})

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	body := w.Body.String()
	suite.Contains(body, "Please enter customer name")
	suite.Contains(body, `value="N123"`)
	suite.Contains(body, `value="other" checked`)
	suite.NotContains(body, `id="exchange"`)
}

func (suite *HandlersTestSuite) TestCounter_FullTransaction() {
	suite.get("/")
	suite.Require().Equal(http.StatusSeeOther, suite.postForm("/customer", johnDoeForm()).Code)

	w := suite.postForm("/exchange", url.Values{
		"currencyCode":   {"USD"},
		"amountReceived": {"100"},
		"rateOffered":    {"300"},
		"action":         {"submit"},
	})
	suite.Equal(http.StatusSeeOther, w.Code)

	page := suite.get("/").Body.String()
	suite.Contains(page, "CUSTOMER RECEIPT")
	suite.Contains(page, "TESTSER01")
	suite.Contains(page, "30000.00")
	suite.Contains(page, "Transaction completed successfully")
	suite.Contains(page, "window.print()")
	suite.Contains(page, "Signature of the Customer")
	suite.NotContains(page, `id="exchange"`)

	export := suite.get("/receipt/export.xlsx")
	suite.Equal(http.StatusOK, export.Code)
	suite.Contains(export.Header().Get("Content-Type"), "spreadsheetml")
	suite.Contains(export.Header().Get("Content-Disposition"), "receipt-TESTSER01.xlsx")
	suite.NotEmpty(export.Body.Bytes())

	reset := suite.postForm("/reset", url.Values{})
	suite.Equal(http.StatusSeeOther, reset.Code)
	page = suite.get("/").Body.String()
	suite.NotContains(page, "CUSTOMER RECEIPT")
	suite.NotContains(page, `value="John Doe"`)
}

func (suite *HandlersTestSuite) TestCounter_ExchangeActions() {
	suite.get("/")
	suite.postForm("/customer", johnDoeForm())

	w := suite.postForm("/exchange", url.Values{
		"currencyCode":   {"USD"},
		"amountReceived": {"1"},
		"rateOffered":    {"150.50"},
		"action":         {"add"},
	})
	suite.Equal(http.StatusSeeOther, w.Code)

	page := suite.get("/").Body.String()
	suite.Contains(page, `value="150.50" readonly`)
	suite.Contains(page, `value="remove-1"`)

	w = suite.postForm("/exchange", url.Values{
		"currencyCode":   {"USD", "EUR"},
		"amountReceived": {"1", "1"},
		"rateOffered":    {"150.50", "49.50"},
		"action":         {"remove-0"},
	})
	suite.Equal(http.StatusSeeOther, w.Code)

	page = suite.get("/").Body.String()
	suite.Contains(page, `value="49.50" readonly`)
	suite.NotContains(page, `value="remove-0"`, "the last row cannot be removed")
}

func (suite *HandlersTestSuite) TestCounter_ExchangeValidation() {
	suite.get("/")
	suite.postForm("/customer", johnDoeForm())

	w := suite.postForm("/exchange", url.Values{
		"currencyCode":   {"USD"},
		"amountReceived": {"100"},
		"rateOffered":    {"0"},
		"action":         {"submit"},
	})

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	body := w.Body.String()
	suite.Contains(body, "Please enter valid rate for exchange 1")
	suite.Contains(body, `id="exchange"`)
	suite.NotContains(body, "CUSTOMER RECEIPT")
}

func (suite *HandlersTestSuite) TestCounter_ExchangeBeforeCustomer() {
	suite.get("/")

	w := suite.postForm("/exchange", url.Values{"action": {"add"}})
	suite.Equal(http.StatusSeeOther, w.Code)

	page := suite.get("/").Body.String()
	suite.Contains(page, "This action is not available at the current step")
}

func (suite *HandlersTestSuite) TestCounter_ExportBeforeReceipt() {
	suite.get("/")

	w := suite.get("/receipt/export.xlsx")
	suite.Equal(http.StatusSeeOther, w.Code)
	suite.Contains(suite.get("/").Body.String(), "No receipt has been issued yet")
}
