package config

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	widgeterrors "github.com/alexisbeaulieu97/widgetkit/pkg/errors"
)

// EnvPrefix is prepended to every environment variable read into Settings.
const EnvPrefix = "WIDGETKIT_"

// ErrParsingSettings wraps failures to read Settings from the environment.
var ErrParsingSettings = errors.New("config: failed to parse environment settings")

var dotenvOnce sync.Once

// Settings are process-level options taken from the environment, with a
// .env file in the working directory honoured.
type Settings struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	LogFile  string `env:"LOG_FILE"`
	LogHuman bool   `env:"LOG_HUMAN" envDefault:"true"`
	Theme    string `env:"THEME" validate:"omitempty,theme_mode"`
}

// LoadSettings loads .env once and parses WIDGETKIT_* variables.
func LoadSettings() (Settings, error) {
	dotenvOnce.Do(func() {
		// A missing .env file is fine.
		_ = godotenv.Load()
	})
	return ParseSettings(nil)
}

// ParseSettings parses Settings from environ, or from the process
// environment when environ is nil.
func ParseSettings(environ map[string]string) (Settings, error) {
	var s Settings
	opts := env.Options{Prefix: EnvPrefix, Environment: environ}
	if err := env.ParseWithOptions(&s, opts); err != nil {
		return Settings{}, errors.Join(ErrParsingSettings, err)
	}

	if err := validatorInstance().Struct(s); err != nil {
		return Settings{}, convertSettingsError(err)
	}
	return s, nil
}

func convertSettingsError(err error) error {
	converted := convertValidationError(err)
	var ve *widgeterrors.ValidationError
	if errors.As(converted, &ve) {
		return widgeterrors.NewValidationError(EnvPrefix+ve.Field, ve.Message, err)
	}
	return converted
}
