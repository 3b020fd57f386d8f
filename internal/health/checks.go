package health

import (
	"context"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/agroconnect/internal/config"
	"github.com/hellofresh/health-go/v5"
	"github.com/hellofresh/health-go/v5/checks/postgres"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
)

const (
	componentName    = "agroconnect"
	componentVersion = "1.0.0"
)

// Pinger is any dependency that can report its own reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// NewHealthHandler reports the service unavailable while Postgres or Redis
// is down. Object storage only degrades the status since reads keep working
// without it.
func NewHealthHandler(cfg *config.Config, objectStore Pinger) (*health.Health, error) {
	checks := []health.Config{
		{
			Name:    "database",
			Timeout: 3 * time.Second,
			Check:   postgres.New(postgres.Config{DSN: cfg.Database.GetDSN()}),
		},
		{
			Name:    "redis",
			Timeout: 2 * time.Second,
			Check:   healthRedis.New(healthRedis.Config{DSN: cfg.RedisConnect.GetDSN()}),
		},
	}

	if objectStore != nil {
		checks = append(checks, health.Config{
			Name:      "object-storage",
			Timeout:   3 * time.Second,
			SkipOnErr: true,
			Check:     objectStore.Ping,
		})
	}

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    componentName,
			Version: componentVersion,
		}),
		health.WithSystemInfo(),
		health.WithChecks(checks...),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}
