// Package app provides service initialization.
package app

import (
	"github.com/guttosm/carton-service/config"
	"github.com/guttosm/carton-service/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Solver service.Solver
}

// InitializeServices initializes business logic services.
func InitializeServices(cfg config.CacheConfig) *ServiceComponents {
	var opts []service.SolverOption

	if cfg.Size > 0 {
		if cfg.Shards > 1 {
			opts = append(opts, service.WithCacheInterface(service.NewShardedCache(cfg.Size, cfg.TTL, cfg.Shards)))
		} else {
			opts = append(opts, service.WithSolveCache(cfg.Size, cfg.TTL))
		}
	}

	solver := service.NewArrangementSolver(opts...)

	return &ServiceComponents{
		Solver: solver,
	}
}
