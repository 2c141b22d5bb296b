package configs

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant/entity"
	"restaurant/repository"
	"restaurant/services"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "STORE_DRIVER", "ADMIN_AUTH", "STRICT_TRANSITIONS", "JWT_TTL", "CORS_ORIGINS"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	cfg := LoadConfig()
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, StoreJSON, cfg.StoreDriver)
	assert.True(t, cfg.AdminAuth)
	assert.True(t, cfg.StrictTransitions)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "SQLite")
	t.Setenv("ADMIN_AUTH", "false")
	t.Setenv("STRICT_TRANSITIONS", "not-a-bool")
	t.Setenv("JWT_TTL", "90m")
	t.Setenv("FRONTEND_URL", "https://spice.example/")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg := LoadConfig()
	assert.Equal(t, StoreSQLite, cfg.StoreDriver)
	assert.False(t, cfg.AdminAuth)
	assert.True(t, cfg.StrictTransitions)
	assert.Equal(t, 90*time.Minute, cfg.JWTTTL)
	assert.Equal(t, "https://spice.example", cfg.FrontendURL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}

func TestOpenStores(t *testing.T) {
	for _, driver := range []string{StoreJSON, StoreSQLite} {
		t.Run(driver, func(t *testing.T) {
			dir := t.TempDir()
			cfg := &Config{StoreDriver: driver, DataDir: dir, DBSource: filepath.Join(dir, "test.db")}
			stores, err := OpenStores(cfg)
			require.NoError(t, err)
			t.Cleanup(func() { stores.Close() })

			ctx := context.Background()
			o := entity.Order{
				ID: "id-1", Token: "tok-1",
				Items:      []entity.CartEntry{{ItemID: "butter-chicken", Quantity: 2}},
				Customer:   entity.Customer{Name: "A", Email: "a@b.c", Phone: "1"},
				TotalCents: 90000, Status: entity.OrderPending, PaymentMethod: entity.PaymentCard,
				CreatedAt: time.Now().UTC().Truncate(time.Second),
			}
			require.NoError(t, stores.Orders.Insert(ctx, o))

			got, err := stores.Orders.Get(ctx, "tok-1")
			require.NoError(t, err)
			assert.Equal(t, o.Items, got.Items)
			assert.Equal(t, o.Customer, got.Customer)
			assert.Equal(t, int64(90000), got.TotalCents)
			assert.True(t, o.CreatedAt.Equal(got.CreatedAt))
		})
	}

	_, err := OpenStores(&Config{StoreDriver: "redis"})
	assert.Error(t, err)
}

func TestSeedAdminAndLoadMenu(t *testing.T) {
	cfg := &Config{AdminEmail: "admin@example.com", AdminPassword: "pw123456"}
	users := repository.NewUserRepository(repository.NewJSONStore(filepath.Join(t.TempDir(), "users.json"), repository.UserKey))
	auth := services.NewAuthService(users, "s", time.Hour)

	require.NoError(t, SeedAdmin(context.Background(), cfg, auth))
	u, err := users.FindByEmail(context.Background(), "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, u.Role)

	require.NoError(t, SeedAdmin(context.Background(), &Config{}, auth))

	menu, err := LoadMenu(&Config{})
	require.NoError(t, err)
	assert.NotEmpty(t, menu.All())

	path := filepath.Join(t.TempDir(), "menu.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":"x","name":"X","priceCents":100}]`), 0o644))
	menu, err = LoadMenu(&Config{MenuPath: path})
	require.NoError(t, err)
	assert.Len(t, menu.All(), 1)
}
