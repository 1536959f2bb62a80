package services

import (
	portsrepo "github.com/videotube/videotube_backend/internal/core/ports/repositories"
	portssvc "github.com/videotube/videotube_backend/internal/core/ports/services"
	"github.com/videotube/videotube_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, uploader portssvc.MediaUploader) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo, uploader)
	container.Token = NewTokenService(cfg, repos.UserRepo)
	container.Channel = NewChannelService(repos.UserRepo, repos.SubscriptionRepo)
	container.History = NewWatchHistoryService(repos.VideoRepo)

	return container
}
