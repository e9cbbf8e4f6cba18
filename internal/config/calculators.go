package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// CalculatorConfig bounds the inputs the calculator endpoints accept. The
// file is optional; defaults keep the calculators usable out of the box.
type CalculatorConfig struct {
	MaxPrincipal   float64 `mapstructure:"maxPrincipal"`
	MaxTermMonths  int     `mapstructure:"maxTermMonths"`
	MaxRatePercent float64 `mapstructure:"maxRatePercent"`
}

func DefaultCalculatorConfig() CalculatorConfig {
	return CalculatorConfig{
		MaxPrincipal:   100_000_000,
		MaxTermMonths:  480,
		MaxRatePercent: 100,
	}
}

// CalculatorConfigHolder serves the current config and hot-reloads it when
// the underlying file changes.
type CalculatorConfigHolder struct {
	current atomic.Value // holds CalculatorConfig
}

func NewCalculatorConfigHolder() (*CalculatorConfigHolder, error) {
	v := viper.New()

	v.SetConfigName("calculators")
	v.SetConfigType("yml")
	v.AddConfigPath("/etc/folio")
	v.AddConfigPath(".")

	v.SetEnvPrefix("FOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultCalculatorConfig()
	v.SetDefault("calculators.maxPrincipal", defaults.MaxPrincipal)
	v.SetDefault("calculators.maxTermMonths", defaults.MaxTermMonths)
	v.SetDefault("calculators.maxRatePercent", defaults.MaxRatePercent)

	fileFound := true
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		fileFound = false
	}

	var cfg CalculatorConfig
	if err := v.UnmarshalKey("calculators", &cfg); err != nil {
		return nil, err
	}
	if err := validateCalculatorConfig(cfg); err != nil {
		return nil, err
	}

	holder := &CalculatorConfigHolder{}
	holder.current.Store(cfg)

	if fileFound {
		v.WatchConfig()
		v.OnConfigChange(func(e fsnotify.Event) {
			var updated CalculatorConfig
			if err := v.UnmarshalKey("calculators", &updated); err != nil {
				log.Printf("[calculator-config] reload failed: %v", err)
				return
			}
			if err := validateCalculatorConfig(updated); err != nil {
				log.Printf("[calculator-config] invalid config ignored: %v", err)
				return
			}
			holder.current.Store(updated)
			log.Printf("[calculator-config] reloaded from %s", e.Name)
		})
	}

	return holder, nil
}

func (h *CalculatorConfigHolder) Current() CalculatorConfig {
	if h == nil {
		return DefaultCalculatorConfig()
	}
	cfg, ok := h.current.Load().(CalculatorConfig)
	if !ok {
		return DefaultCalculatorConfig()
	}
	return cfg
}

func validateCalculatorConfig(cfg CalculatorConfig) error {
	if cfg.MaxPrincipal <= 0 {
		return errors.New("calculators.maxPrincipal must be positive")
	}
	if cfg.MaxTermMonths <= 0 {
		return errors.New("calculators.maxTermMonths must be positive")
	}
	if cfg.MaxRatePercent <= 0 {
		return errors.New("calculators.maxRatePercent must be positive")
	}
	return nil
}
