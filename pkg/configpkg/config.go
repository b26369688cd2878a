// Package configpkg provides parsing functionality for environment variables.
package configpkg

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/go-petr/sim-ledger/pkg/currencypkg"
)

// Config stores all configuration of the application.
//
// The values are read by viper from a config file or environment variables.
type Config struct {
	ServerAddress   string        `mapstructure:"SERVER_ADDRESS"`
	Environment     string        `mapstructure:"GO_ENV"`
	LedgerCurrency  string        `mapstructure:"LEDGER_CURRENCY"`
	AllowOverdraft  bool          `mapstructure:"ALLOW_OVERDRAFT"`
	SeedFile        string        `mapstructure:"SEED_FILE"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
}

// Load reads configuration from app.env in path, overridden by environment variables.
func Load(path string) (Config, error) {
	var c Config

	v := viper.New()

	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:8080")
	v.SetDefault("GO_ENV", "production")
	v.SetDefault("LEDGER_CURRENCY", currencypkg.USD)
	v.SetDefault("ALLOW_OVERDRAFT", false)
	v.SetDefault("SEED_FILE", "")
	v.SetDefault("SHUTDOWN_TIMEOUT", 5*time.Second)

	v.AutomaticEnv()

	err := v.ReadInConfig()
	if err != nil {
		return c, err
	}

	err = v.Unmarshal(&c)
	if err != nil {
		return c, err
	}

	c.LedgerCurrency = strings.ToUpper(c.LedgerCurrency)
	if !currencypkg.IsSupportedCurrency(c.LedgerCurrency) {
		return c, fmt.Errorf("unsupported LEDGER_CURRENCY %q", c.LedgerCurrency)
	}

	return c, nil
}
