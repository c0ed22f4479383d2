package authfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripmate/internal/repositories"
	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

var Module = fx.Provide(
	provideCredentialRepo, provideAuthService)

func provideCredentialRepo(db *gorm.DB) repositories.CredentialRepository {
	return repositories.NewCredentialRepository(db)
}

func provideAuthService(
	userRepo repositories.UserRepository,
	credRepo repositories.CredentialRepository,
	tokens *utils.TokenMaker,
	verifier utils.SocialVerifier,
) services.AuthService {
	return services.NewAuthService(userRepo, credRepo, tokens, verifier)
}
