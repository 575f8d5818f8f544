// Package httpserver manages server creation and api routing.
package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-bic/bic-bank/internal/accountdelivery"
	"github.com/go-bic/bic-bank/internal/accountrepo"
	"github.com/go-bic/bic-bank/internal/accountservice"
	"github.com/go-bic/bic-bank/internal/billdelivery"
	"github.com/go-bic/bic-bank/internal/billservice"
	"github.com/go-bic/bic-bank/internal/keyvalidation"
	"github.com/go-bic/bic-bank/internal/loandelivery"
	"github.com/go-bic/bic-bank/internal/loanservice"
	"github.com/go-bic/bic-bank/internal/middleware"
	"github.com/go-bic/bic-bank/internal/pixdelivery"
	"github.com/go-bic/bic-bank/internal/pixservice"
	"github.com/go-bic/bic-bank/internal/transferdelivery"
	"github.com/go-bic/bic-bank/internal/transferservice"
	"github.com/go-bic/bic-bank/pkg/configpkg"
	"github.com/go-bic/bic-bank/pkg/idpkg"
)

// Server holds the engine state, the handlers router and the configuration.
type Server struct {
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates a Server with instantiated domains and routes.
func New(logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	repo := accountrepo.NewRepoMem()
	gen := idpkg.NewRandom()

	accountService := accountservice.New(repo, gen)
	loanService := loanservice.New(repo)
	billService := billservice.New(repo, gen)
	pixService := pixservice.New(repo, keyvalidation.New(), gen)
	transferService := transferservice.New(repo, pixService, gen)

	accountHandler := accountdelivery.NewHandler(accountService)
	loanHandler := loandelivery.NewHandler(loanService)
	billHandler := billdelivery.NewHandler(billService)
	pixHandler := pixdelivery.NewHandler(pixService)
	transferHandler := transferdelivery.NewHandler(transferService)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.POST("/accounts", accountHandler.Create)
	engine.GET("/accounts/:id", accountHandler.Get)
	engine.GET("/accounts", accountHandler.List)
	engine.POST("/accounts/:id/deposits", accountHandler.Deposit)
	engine.POST("/accounts/:id/deposits/reset", accountHandler.ResetDailyDeposits)
	engine.GET("/accounts/:id/history", accountHandler.History)
	engine.GET("/accounts/:id/notifications", accountHandler.Notifications)

	engine.POST("/loans", loanHandler.Create)
	engine.POST("/loans/payments", loanHandler.Pay)

	engine.POST("/bills/payments", billHandler.Pay)

	engine.POST("/keys", pixHandler.Register)
	engine.GET("/keys/resolve", pixHandler.Resolve)

	engine.POST("/transfers", transferHandler.Create)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("tier", accountdelivery.ValidTier); err != nil {
			return nil, errors.New("cannot register tier validator")
		}

		if err := v.RegisterValidation("keykind", pixdelivery.ValidKeyKind); err != nil {
			return nil, errors.New("cannot register keykind validator")
		}
	}

	return &Server{Engine: engine, Config: config}, nil
}
