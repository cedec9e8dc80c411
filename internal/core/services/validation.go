package services

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/SscSPs/money_changer_pos/internal/apperrors"
	"github.com/SscSPs/money_changer_pos/internal/core/domain"
	portssvc "github.com/SscSPs/money_changer_pos/internal/core/ports/services"
	"github.com/SscSPs/money_changer_pos/internal/dto"
	"github.com/SscSPs/money_changer_pos/internal/utils/accounting"
	"github.com/go-playground/validator/v10"
)

const (
	msgCustomerName    = "Please enter customer name"
	msgCustomerID      = "Please enter NIC/Passport number"
	msgCustomerSource  = "Please select source of foreign currency"
	msgCustomerOther   = "Please specify other source"
	msgRowCurrencyFmt  = "Please select currency type for exchange %d"
	msgRowAmountFmt    = "Please enter valid amount for exchange %d"
	msgRowRateFmt      = "Please enter valid rate for exchange %d"
	msgRowMissingFmt   = "Exchange %d does not exist"
	msgRowsOutOfDate   = "Exchange rows are out of date, please review and try again"
	msgUnknownFieldFmt = "Unknown exchange field %q"

	tagPositiveDecimal   = "positive_decimal"
	tagSupportedCurrency = "currency"
)

// lineItemInput is the validated shape of an exchange row.
type lineItemInput struct {
	CurrencyCode   string `json:"currencyCode" validate:"required,currency"`
	AmountReceived string `json:"amountReceived" validate:"required,positive_decimal"`
	RateOffered    string `json:"rateOffered" validate:"required,positive_decimal"`
}

func newLineItemInput(item domain.ExchangeLineItem) lineItemInput {
	return lineItemInput{
		CurrencyCode:   strings.TrimSpace(item.CurrencyCode),
		AmountReceived: strings.TrimSpace(item.AmountReceived),
		RateOffered:    strings.TrimSpace(item.RateOffered),
	}
}

// newValidator builds the validator used for both counter steps. Field names in
// errors are the JSON names so they match the API and form field names.
func newValidator(currencies portssvc.CurrencyReaderSvc) *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	// Registration only fails on empty tags or nil funcs.
	_ = v.RegisterValidation(tagPositiveDecimal, func(fl validator.FieldLevel) bool {
		return accounting.IsPositiveAmount(fl.Field().String())
	})
	_ = v.RegisterValidationCtx(tagSupportedCurrency, func(ctx context.Context, fl validator.FieldLevel) bool {
		if currencies == nil {
			return false
		}
		_, err := currencies.GetCurrencyByCode(ctx, fl.Field().String())
		return err == nil
	})
	return v
}

// validateCustomer reports the first failing customer field.
func validateCustomer(ctx context.Context, v *validator.Validate, req dto.CustomerRequest) error {
	err := v.StructCtx(ctx, req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("failed to validate customer: %w", err)
	}

	fe := verrs[0]
	switch fe.Field() {
	case "name":
		return apperrors.NewFieldError(apperrors.ErrMissingRequiredField, fe.Field(), msgCustomerName)
	case "idNumber":
		return apperrors.NewFieldError(apperrors.ErrMissingRequiredField, fe.Field(), msgCustomerID)
	case "source":
		return apperrors.NewFieldError(apperrors.ErrMissingRequiredField, fe.Field(), msgCustomerSource)
	case "otherSource":
		return apperrors.NewFieldError(apperrors.ErrMissingConditionalField, fe.Field(), msgCustomerOther)
	}
	return apperrors.NewFieldError(apperrors.ErrValidation, fe.Field(), fe.Error())
}

// validateLineItems checks rows in order and stops at the first failing row.
func validateLineItems(ctx context.Context, v *validator.Validate, items []domain.ExchangeLineItem) error {
	for i, item := range items {
		row := i + 1
		err := v.StructCtx(ctx, newLineItemInput(item))
		if err == nil {
			continue
		}
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) || len(verrs) == 0 {
			return fmt.Errorf("failed to validate exchange %d: %w", row, err)
		}

		fe := verrs[0]
		kind := apperrors.ErrInvalidNumericValue
		if fe.Tag() == "required" {
			kind = apperrors.ErrMissingRequiredField
		}
		switch fe.Field() {
		case string(domain.FieldCurrencyCode):
			return apperrors.NewRowError(apperrors.ErrMissingRequiredField, row, fe.Field(), fmt.Sprintf(msgRowCurrencyFmt, row))
		case string(domain.FieldAmountReceived):
			return apperrors.NewRowError(kind, row, fe.Field(), fmt.Sprintf(msgRowAmountFmt, row))
		case string(domain.FieldRateOffered):
			return apperrors.NewRowError(kind, row, fe.Field(), fmt.Sprintf(msgRowRateFmt, row))
		}
		return apperrors.NewRowError(apperrors.ErrValidation, row, fe.Field(), fe.Error())
	}
	return nil
}
