package service

import (
	"github.com/sunjoo-dev/movein-registry/internal/blob"
	"github.com/sunjoo-dev/movein-registry/internal/config"
	"github.com/sunjoo-dev/movein-registry/internal/crypto"
	"github.com/sunjoo-dev/movein-registry/internal/logger"
	"github.com/sunjoo-dev/movein-registry/internal/store"
	"github.com/sunjoo-dev/movein-registry/internal/validators"
)

type Services struct {
	AuthService   AuthService
	UserService   UserService
	MoveInService MoveInService
}

func NewServices(storages *store.Storages, objectStorage blob.ObjectStorage, cipher *crypto.Cipher, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:   NewAuthService(storages.UserRepository, cfg.App, logger),
		UserService:   NewUserService(storages.UserRepository, storages.FileRepository, objectStorage, cfg.App, logger),
		MoveInService: NewMoveInService(storages.MoveInRepository, cipher, validators.NewNoticeValidator(), logger),
	}
}
