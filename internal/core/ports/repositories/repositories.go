package repositories

// RepositoryProvider groups the repository implementations handed to
// the service layer at startup.
type RepositoryProvider struct {
	TransactionRepo TransactionRepository
	UserRepo        UserRepository
}
