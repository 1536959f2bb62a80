package services

// ServiceContainer bundles all service facades for handler wiring.
type ServiceContainer struct {
	User    UserSvcFacade
	Token   TokenSvcFacade
	Channel ChannelSvcFacade
	History WatchHistorySvcFacade
}
