package services

import (
	"time"

	portsrepo "github.com/SscSPs/thoughtlog_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/thoughtlog_backend/internal/core/ports/services"
	"github.com/SscSPs/thoughtlog_backend/internal/platform/config"
)

// NewServiceContainer wires all application services against the given
// repositories and configuration. Day bucketing uses loc everywhere.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, cfg *config.Config, loc *time.Location) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Journal = NewJournalService(repos.EntryRepo, loc)
	container.Token = NewTokenService(cfg, container.User)
	container.GoogleOAuth = NewGoogleOAuthHandlerService(cfg)

	return container
}
