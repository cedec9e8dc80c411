package services

import (
	"context"
	"fmt"

	portsrepo "github.com/SscSPs/money_changer_pos/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_changer_pos/internal/core/ports/services"

	"github.com/SscSPs/money_changer_pos/internal/core/domain"
)

type CurrencyService struct {
	BaseService
	currencyRepo portsrepo.CurrencyReader
}

func NewCurrencyService(currencyRepo portsrepo.CurrencyReader) *CurrencyService {
	return &CurrencyService{currencyRepo: currencyRepo}
}

var _ portssvc.CurrencySvcFacade = (*CurrencyService)(nil)

func (s *CurrencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency by code in service: %w", err)
	}
	return currency, nil
}

func (s *CurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list currencies")
		return nil, fmt.Errorf("failed to list currencies in service: %w", err)
	}
	// Return empty slice if no currencies found, not nil
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}
