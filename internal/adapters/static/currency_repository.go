package static

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/SscSPs/money_changer_pos/internal/apperrors"
	"github.com/SscSPs/money_changer_pos/internal/core/domain"
	portsrepo "github.com/SscSPs/money_changer_pos/internal/core/ports/repositories"
	"gopkg.in/yaml.v3"
)

//go:embed currencies.yaml
var defaultCurrenciesYAML []byte

type currencyCatalogue struct {
	Currencies []domain.Currency `yaml:"currencies"`
}

// CurrencyRepository serves the read-only reference table of supported currencies.
type CurrencyRepository struct {
	ordered []domain.Currency
	byCode  map[string]domain.Currency
}

// NewCurrencyRepository loads the built-in currency table.
func NewCurrencyRepository() (*CurrencyRepository, error) {
	return NewCurrencyRepositoryFromYAML(defaultCurrenciesYAML)
}

// NewCurrencyRepositoryFromYAML loads a currency table from a YAML document.
func NewCurrencyRepositoryFromYAML(data []byte) (*CurrencyRepository, error) {
	var cat currencyCatalogue
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("failed to parse currency table: %w", err)
	}

	repo := &CurrencyRepository{byCode: make(map[string]domain.Currency, len(cat.Currencies))}
	for _, c := range cat.Currencies {
		if len(c.CurrencyCode) != 3 {
			return nil, fmt.Errorf("currency code %q must be 3 letters: %w", c.CurrencyCode, apperrors.ErrValidation)
		}
		if _, dup := repo.byCode[c.CurrencyCode]; dup {
			return nil, fmt.Errorf("currency %s listed twice: %w", c.CurrencyCode, apperrors.ErrValidation)
		}
		repo.byCode[c.CurrencyCode] = c
		repo.ordered = append(repo.ordered, c)
	}
	return repo, nil
}

var _ portsrepo.CurrencyReader = (*CurrencyRepository)(nil)

func (r *CurrencyRepository) FindCurrencyByCode(_ context.Context, currencyCode string) (*domain.Currency, error) {
	c, ok := r.byCode[currencyCode]
	if !ok {
		return nil, fmt.Errorf("currency %q: %w", currencyCode, apperrors.ErrNotFound)
	}
	return &c, nil
}

func (r *CurrencyRepository) ListCurrencies(_ context.Context) ([]domain.Currency, error) {
	out := make([]domain.Currency, len(r.ordered))
	copy(out, r.ordered)
	return out, nil
}
