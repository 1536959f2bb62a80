package repositories

// RepositoryProvider bundles all repositories for wiring into services.
type RepositoryProvider struct {
	UserRepo         UserRepository
	SubscriptionRepo SubscriptionRepository
	VideoRepo        VideoRepository
}
