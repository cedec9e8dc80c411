package handlers_test

import (
	"net/http"

	"github.com/SscSPs/money_changer_pos/internal/core/domain"
	"github.com/SscSPs/money_changer_pos/internal/dto"
)

const johnDoeJSON = `{"name":"John Doe","idNumber":"N123","source":"tourists"}`

func (suite *HandlersTestSuite) TestSessionAPI_InitialState() {
	w := suite.sendJSON(http.MethodGet, "/api/v1/session", "")
	suite.Require().Equal(http.StatusOK, w.Code)

	var resp dto.SessionResponse
	suite.decode(w, &resp)
	suite.NotEmpty(resp.SessionID)
	suite.Equal(domain.StepCollectingCustomer, resp.Step)
	suite.Nil(resp.Customer)
	suite.Empty(resp.LineItems, "rows start with the exchange step")
	suite.False(resp.ReceiptReady)
	suite.False(resp.CanRemoveRow)
}

func (suite *HandlersTestSuite) TestSessionAPI_CustomerValidation() {
	w := suite.sendJSON(http.MethodPut, "/api/v1/session/customer",
		`{"name":"Jane","idNumber":"X9","source":"other","otherSource":"  "}`)
	suite.Require().Equal(http.StatusUnprocessableEntity, w.Code)

	var resp dto.ErrorResponse
	suite.decode(w, &resp)
	suite.Equal("MissingConditionalField", resp.Kind)
	suite.Equal("otherSource", resp.Field)
	suite.Equal("Please specify other source", resp.Error)
	suite.Zero(resp.Row)
}

func (suite *HandlersTestSuite) TestSessionAPI_MalformedBody() {
	w := suite.sendJSON(http.MethodPut, "/api/v1/session/customer", `{"name":`)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestSessionAPI_ExchangeBeforeCustomer() {
	w := suite.sendJSON(http.MethodPost, "/api/v1/session/rows", "")
	suite.Require().Equal(http.StatusConflict, w.Code)

	var resp dto.ErrorResponse
	suite.decode(w, &resp)
	suite.Equal("InvalidTransition", resp.Kind)

	w = suite.sendJSON(http.MethodGet, "/api/v1/session/receipt", "")
	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlersTestSuite) TestSessionAPI_FullFlow() {
	w := suite.sendJSON(http.MethodPut, "/api/v1/session/customer", johnDoeJSON)
	suite.Require().Equal(http.StatusOK, w.Code)
	var state dto.SessionResponse
	suite.decode(w, &state)
	suite.Equal(domain.StepCollectingExchange, state.Step)
	suite.Require().NotNil(state.Customer)
	suite.Equal("Foreign tourists (directly or through Tour Guides)", state.Customer.SourceLabel)

	for _, edit := range []string{
		`{"field":"currencyCode","value":"USD"}`,
		`{"field":"amountReceived","value":"1"}`,
		`{"field":"rateOffered","value":"150.50"}`,
	} {
		w = suite.sendJSON(http.MethodPatch, "/api/v1/session/rows/0", edit)
		suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	}
	suite.decode(w, &state)
	suite.Equal("150.50", state.LineItems[0].AmountIssued)

	w = suite.sendJSON(http.MethodPost, "/api/v1/session/rows", "")
	suite.Require().Equal(http.StatusCreated, w.Code)
	suite.decode(w, &state)
	suite.Len(state.LineItems, 2)
	suite.True(state.CanRemoveRow)

	for _, edit := range []string{
		`{"field":"currencyCode","value":"EUR"}`,
		`{"field":"amountReceived","value":"1"}`,
		`{"field":"rateOffered","value":"49.50"}`,
	} {
		w = suite.sendJSON(http.MethodPatch, "/api/v1/session/rows/1", edit)
		suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	}

	w = suite.sendJSON(http.MethodPost, "/api/v1/session/exchange", "")
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var receipt dto.ReceiptResponse
	suite.decode(w, &receipt)
	suite.Equal("TESTSER01", receipt.SerialNumber)
	suite.Equal("200.00", receipt.Total)
	suite.Equal("LKR", receipt.TotalCurrency)
	suite.Len(receipt.Lines, 2)
	suite.Equal("John Doe", receipt.Customer.Name)

	w = suite.sendJSON(http.MethodGet, "/api/v1/session/receipt", "")
	suite.Require().Equal(http.StatusOK, w.Code)
	var again dto.ReceiptResponse
	suite.decode(w, &again)
	suite.Equal(receipt.SerialNumber, again.SerialNumber)
	suite.Equal(receipt.Total, again.Total)

	w = suite.sendJSON(http.MethodPost, "/api/v1/session/rows", "")
	suite.Equal(http.StatusConflict, w.Code, "the receipt step is terminal")

	w = suite.sendJSON(http.MethodPost, "/api/v1/session/reset", "")
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.decode(w, &state)
	suite.Equal(domain.StepCollectingCustomer, state.Step)
	suite.Nil(state.Customer)
	suite.Empty(state.LineItems)
}

func (suite *HandlersTestSuite) TestSessionAPI_SubmitInvalidRow() {
	suite.Require().Equal(http.StatusOK, suite.sendJSON(http.MethodPut, "/api/v1/session/customer", johnDoeJSON).Code)

	w := suite.sendJSON(http.MethodPost, "/api/v1/session/exchange", "")
	suite.Require().Equal(http.StatusUnprocessableEntity, w.Code)

	var resp dto.ErrorResponse
	suite.decode(w, &resp)
	suite.Equal("MissingRequiredField", resp.Kind)
	suite.Equal("currencyCode", resp.Field)
	suite.Equal(1, resp.Row)
	suite.Equal("Please select currency type for exchange 1", resp.Error)
}

func (suite *HandlersTestSuite) TestSessionAPI_RowIndexErrors() {
	suite.Require().Equal(http.StatusOK, suite.sendJSON(http.MethodPut, "/api/v1/session/customer", johnDoeJSON).Code)

	w := suite.sendJSON(http.MethodPatch, "/api/v1/session/rows/abc", `{"field":"rateOffered","value":"1"}`)
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.sendJSON(http.MethodPatch, "/api/v1/session/rows/0", `{"field":"amountIssued","value":"1"}`)
	suite.Equal(http.StatusBadRequest, w.Code, "amountIssued is derived")

	w = suite.sendJSON(http.MethodPatch, "/api/v1/session/rows/5", `{"field":"rateOffered","value":"1"}`)
	suite.Equal(http.StatusUnprocessableEntity, w.Code)

	w = suite.sendJSON(http.MethodDelete, "/api/v1/session/rows/0", "")
	suite.Require().Equal(http.StatusOK, w.Code)
	var state dto.SessionResponse
	suite.decode(w, &state)
	suite.Len(state.LineItems, 1, "the last row is kept")
}

func (suite *HandlersTestSuite) TestSessionAPI_OversizedAmount() {
	suite.Require().Equal(http.StatusOK, suite.sendJSON(http.MethodPut, "/api/v1/session/customer", johnDoeJSON).Code)

	for _, edit := range []string{
		`{"field":"currencyCode","value":" USD "}`,
		`{"field":"amountReceived","value":"1e2000000000"}`,
		`{"field":"rateOffered","value":"1e2000000000"}`,
	} {
		w := suite.sendJSON(http.MethodPatch, "/api/v1/session/rows/0", edit)
		suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	}

	w := suite.sendJSON(http.MethodGet, "/api/v1/session", "")
	var state dto.SessionResponse
	suite.decode(w, &state)
	suite.Equal("USD", state.LineItems[0].CurrencyCode)
	suite.Empty(state.LineItems[0].AmountIssued)

	w = suite.sendJSON(http.MethodPost, "/api/v1/session/exchange", "")
	suite.Require().Equal(http.StatusUnprocessableEntity, w.Code)
	var resp dto.ErrorResponse
	suite.decode(w, &resp)
	suite.Equal("InvalidNumericValue", resp.Kind)
	suite.Equal("amountReceived", resp.Field)
	suite.Equal(1, resp.Row)
}

func (suite *HandlersTestSuite) TestCurrencyAPI() {
	w := suite.sendJSON(http.MethodGet, "/api/v1/currencies", "")
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Nil(suite.cookie, "reference data does not open a session")
	var list []dto.CurrencyResponse
	suite.decode(w, &list)
	suite.Len(list, 9)
	suite.Equal("USD", list[0].CurrencyCode)

	w = suite.sendJSON(http.MethodGet, "/api/v1/currencies/eur", "")
	suite.Require().Equal(http.StatusOK, w.Code)
	var eur dto.CurrencyResponse
	suite.decode(w, &eur)
	suite.Equal("EUR", eur.CurrencyCode)

	suite.Equal(http.StatusNotFound, suite.sendJSON(http.MethodGet, "/api/v1/currencies/XYZ", "").Code)
	suite.Equal(http.StatusBadRequest, suite.sendJSON(http.MethodGet, "/api/v1/currencies/DOLLAR", "").Code)
}
