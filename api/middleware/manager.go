package middleware

import (
	"petshop_server/database"
	"petshop_server/services"
	"petshop_server/structs"

	"github.com/MonkyMars/gecho"
)

type Middleware struct {
	logger      *gecho.Logger
	cfg         *structs.Config
	authService *services.AuthService
}

func NewMiddleware(cfg *structs.Config, logger *gecho.Logger, db *database.DB) *Middleware {
	return &Middleware{
		logger:      logger,
		cfg:         cfg,
		authService: services.NewAuthService(cfg, logger, db),
	}
}
