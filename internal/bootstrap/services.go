package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	goredis "github.com/redis/go-redis/v9"

	"github.com/dms-platform/dms-cli/config"
	"github.com/dms-platform/dms-cli/internal/adapters/api"
	redisadapter "github.com/dms-platform/dms-cli/internal/adapters/redis"
	"github.com/dms-platform/dms-cli/internal/adapters/sessionfile"
	domainauth "github.com/dms-platform/dms-cli/internal/domain/auth"
	"github.com/dms-platform/dms-cli/internal/domain/model"
	"github.com/dms-platform/dms-cli/internal/ports"
	"github.com/dms-platform/dms-cli/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Auth      *service.AuthService
	Browser   *service.DocumentBrowser
	Uploads   *service.UploadCoordinator
	Directory *service.DirectoryService
	RefData   *service.RefDataLoader
	Gateway   *api.Client

	redisClient goredis.UniversalClient
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config *config.AppConfig
	Logger *slog.Logger
}

// BuildServices wires the session store, gateway, and services. The auth
// service feeds the gateway its token and teardown hooks, so the two are
// constructed together.
func BuildServices(deps ServiceDeps) (*ServiceContainer, error) {
	if deps.Config == nil {
		return nil, fmt.Errorf("config is required")
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	container := &ServiceContainer{}

	sessions, err := buildSessionStore(deps.Config.Session, container)
	if err != nil {
		return nil, err
	}

	// The gateway needs the auth service for its token source and teardown
	// hook; the auth service needs the gateway as its sign-in provider. The
	// provider slot is threaded through a late-bound pointer.
	var gateway *api.Client
	auth := service.NewAuthService(service.AuthServiceOptions{
		Provider: providerFunc(func() ports.AuthProvider { return gateway }),
		Sessions: sessions,
		Logger:   logger,
	})

	gateway = api.NewClient(api.ClientOptions{
		BaseURL:    deps.Config.API.BaseURL,
		HTTPClient: &http.Client{Timeout: deps.Config.API.Timeout},
		Token:      auth.Token,
		Teardown:   auth.Teardown,
		Logger:     logger,
	})

	container.Auth = auth
	container.Gateway = gateway
	container.Browser = service.NewDocumentBrowser(service.BrowserOptions{
		Documents: gateway,
		Directory: gateway,
		Session:   auth,
		Logger:    logger,
	})
	container.Uploads = service.NewUploadCoordinator(service.UploadCoordinatorOptions{
		Storage:   gateway,
		Documents: gateway,
		Session:   auth,
		Logger:    logger,
	})
	container.Directory = service.NewDirectoryService(service.DirectoryServiceOptions{
		Directory: gateway,
		Session:   auth,
	})
	container.RefData = service.NewRefDataLoader(service.RefDataOptions{
		Directory: gateway,
		Session:   auth,
	})

	return container, nil
}

// Close releases connections held by the container.
func (c *ServiceContainer) Close() error {
	if c.redisClient != nil {
		return c.redisClient.Close()
	}
	return nil
}

func buildSessionStore(cfg config.SessionConfig, container *ServiceContainer) (ports.SessionStore, error) {
	switch cfg.Backend {
	case config.SessionBackendRedis:
		client := goredis.NewClient(&goredis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		container.redisClient = client
		return redisadapter.NewSessionStoreWithOptions(client, redisadapter.DefaultKey, cfg.RedisTTL), nil
	default:
		return sessionfile.New(cfg.FilePath), nil
	}
}

// providerFunc defers provider resolution until first use, breaking the
// auth-service/gateway construction cycle.
type providerFunc func() ports.AuthProvider

var _ ports.AuthProvider = (providerFunc)(nil)

func (f providerFunc) SignIn(ctx context.Context, username, password string) (domainauth.Session, error) {
	return f().SignIn(ctx, username, password)
}

func (f providerFunc) SignUp(ctx context.Context, req model.SignUpRequest) (model.User, error) {
	return f().SignUp(ctx, req)
}
