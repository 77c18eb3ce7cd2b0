package config

import (
	"fmt"
	"reflect"
	"strings"

	"product-gifts/core/cache"
	"product-gifts/core/catalog"
	"product-gifts/core/logger"
	"product-gifts/core/server"
	"product-gifts/core/storage"
	"product-gifts/feature/gifts"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Catalog holds configuration for the upstream catalog queries.
	Catalog catalog.Config `mapstructure:"catalog"`
	// Cache holds configuration for the redis response cache.
	Cache cache.Config `mapstructure:"cache"`
	// Storage holds configuration for the snapshot object storage.
	Storage storage.Config `mapstructure:"storage"`
	// Gifts holds configuration for the gifts feature.
	Gifts gifts.Config `mapstructure:"gifts"`
}

// LoadConfig loads configuration from environment variables and the .env file in path.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. SERVER_PORT -> server.port)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks values that cannot be expressed as struct tag defaults.
func (c *Config) Validate() error {
	if !c.Catalog.IsValidSource() {
		return fmt.Errorf("invalid catalog source %q", c.Catalog.Source)
	}
	if _, err := c.Gifts.MaxVisibleInput(); err != nil {
		return fmt.Errorf("invalid gifts.max_visible_items: %w", err)
	}
	return nil
}

// bindValues walks the struct and registers every 'mapstructure' key in Viper
// with the value of its 'default' tag.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
