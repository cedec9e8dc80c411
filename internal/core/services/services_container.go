package services

import (
	portsrepo "github.com/SscSPs/money_changer_pos/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_changer_pos/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, sessionOptions ...SessionServiceOption) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Currency = NewCurrencyService(repos.CurrencyRepo)
	container.Session = NewSessionService(repos.SessionRepo, container.Currency, sessionOptions...)
	container.ReceiptExport = NewReceiptExportService(container.Session, repos.ReceiptWriter)

	return container
}
