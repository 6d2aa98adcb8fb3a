package services

// ServiceContainer groups the service facades handed to the handler
// layer at startup.
type ServiceContainer struct {
	Transaction TransactionSvcFacade
	Conversion  ConversionSvcFacade
	Currency    CurrencySvcFacade
	User        UserSvcFacade
}
