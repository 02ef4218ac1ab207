package config

import (
	"log"
	"sync"
	"time"

	"github.com/aiu-lab/facility-service/pkg/kafka"
	"github.com/aiu-lab/facility-service/pkg/logger"
	"github.com/aiu-lab/facility-service/pkg/postgres"
	"github.com/aiu-lab/facility-service/pkg/server"
	"github.com/kelseyhightower/envconfig"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"FACILITY_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"FACILITY_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration `yaml:"writeTimeout" envconfig:"HTTP_WRITE" default:"10s"`
}

func (s HTTPServer) Config() server.Config {
	return server.Config{
		Host:         s.Host,
		Port:         s.Port,
		ReadTimeout:  s.ReadTimeout,
		WriteTimeout: s.WriteTimeout,
	}
}

type Rental struct {
	InstantCheckout bool `yaml:"instantCheckout" envconfig:"RENTAL_INSTANT_CHECKOUT" default:"false"`
	DefaultDuration int  `yaml:"defaultDuration" envconfig:"RENTAL_DEFAULT_DURATION" default:"3"`
}

type Config struct {
	Server   HTTPServer   `yaml:"server"`
	Driver   string       `yaml:"driver" envconfig:"DB_DRIVER" default:"postgres"`
	Database postgres.DB  `yaml:"db"`
	Kafka    kafka.Config `yaml:"kafka"`
	Log      logger.Log   `yaml:"log"`
	Rental   Rental       `yaml:"rental"`

	JWTSecret string `envconfig:"JWT_SECRET"`
	// TimeZone is the deployment zone used by booking guards and sweeps.
	TimeZone      string `envconfig:"FACILITY_TZ" default:"Local"`
	SweepSchedule string `envconfig:"SWEEP_SCHEDULE"`
}

func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.Local
	}
	return loc
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		for _, op := range ops {
			op(&config)
		}
		cfg = &config
	})

	return cfg
}
