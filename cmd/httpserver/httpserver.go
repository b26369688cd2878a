// Package httpserver manages server creation and api routing.
package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-petr/sim-ledger/internal/ledger"
	"github.com/go-petr/sim-ledger/internal/ledgerdelivery"
	"github.com/go-petr/sim-ledger/internal/ledgerservice"
	"github.com/go-petr/sim-ledger/internal/middleware"
	"github.com/go-petr/sim-ledger/internal/scheduler"
	"github.com/go-petr/sim-ledger/internal/seed"
	"github.com/go-petr/sim-ledger/pkg/configpkg"
)

// Server holds the ledger, handlers router and configuration.
type Server struct {
	Engine  *gin.Engine
	Config  configpkg.Config
	Service *ledgerservice.Service
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with a fresh ledger, seeded from config.SeedFile when set.
func New(logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	l := ledger.New(
		ledger.WithCurrency(config.LedgerCurrency),
		ledger.WithOverdraft(config.AllowOverdraft),
	)
	ledgerService := ledgerservice.New(l, scheduler.New(l))

	if config.SeedFile != "" {
		f, err := seed.Load(config.SeedFile)
		if err != nil {
			return nil, fmt.Errorf("cannot load seed: %w", err)
		}

		accounts, err := seed.Apply(f, ledgerService)
		if err != nil {
			return nil, fmt.Errorf("cannot apply seed: %w", err)
		}

		logger.Info().Int("accounts", len(accounts)).Str("file", config.SeedFile).Msg("ledger seeded")
	}

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := ledgerdelivery.RegisterValidators(v); err != nil {
			return nil, errors.New("cannot register ledger validators")
		}
	}

	if config.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	ledgerdelivery.NewHandler(ledgerService).Register(engine)

	server := &Server{
		Engine:  engine,
		Config:  config,
		Service: ledgerService,
	}

	return server, nil
}
