package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Currency      CurrencySvcFacade
	Session       SessionSvcFacade
	ReceiptExport ReceiptExportSvc
}

// EventTracker receives product analytics events keyed by session.
type EventTracker interface {
	Track(distinctID string, event string, properties map[string]any)
}
