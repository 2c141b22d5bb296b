package configs

import (
	"context"

	"github.com/rs/zerolog/log"

	"restaurant/data"
	"restaurant/repository"
	"restaurant/services"
)

// SeedAdmin creates the first admin account from ADMIN_EMAIL/ADMIN_PASSWORD.
func SeedAdmin(ctx context.Context, cfg *Config, auth *services.AuthService) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Warn().Msg("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}
	return auth.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword)
}

// LoadMenu reads MENU_PATH when set, else the catalog compiled into the binary.
func LoadMenu(cfg *Config) (*repository.MenuRepository, error) {
	if cfg.MenuPath != "" {
		return repository.NewMenuRepositoryFromFile(cfg.MenuPath)
	}
	return repository.NewMenuRepository(data.MenuJSON)
}
