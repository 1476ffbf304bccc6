package config

import (
	"github.com/dainhan2k4/HDC-Mobile-sub005/internal/api"
	"github.com/dainhan2k4/HDC-Mobile-sub005/internal/app/coordinator"
	"github.com/dainhan2k4/HDC-Mobile-sub005/internal/usecase/snapshot"
	"github.com/dainhan2k4/HDC-Mobile-sub005/internal/usecase/tradepublisher"
	"github.com/dainhan2k4/HDC-Mobile-sub005/pkg/postgresql"
	"github.com/dainhan2k4/HDC-Mobile-sub005/pkg/redis"
)

// Config is the full service configuration, loaded from environment
// variables grouped by prefix.
type Config struct {
	ServiceName string `env:"SERVICE_NAME" envDefault:"fund-matching"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	Postgres    postgresql.Config     `envPrefix:"POSTGRES_"`
	Redis       redis.Config          `envPrefix:"REDIS_"`
	Publisher   tradepublisher.Config `envPrefix:""`
	Snapshot    snapshot.Config       `envPrefix:""`
	Coordinator coordinator.Config    `envPrefix:""`
	HTTP        api.Config            `envPrefix:""`
}
