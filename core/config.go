package core

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

var dotEnvDir = "config" // mockable

type (
	Config struct {
		Env          string
		Debug        bool
		AppName      string
		Build        string
		RollbarToken string
		RosterFile   string // optional; the built-in roster is used when empty
		Console      ConsoleConfig
	}

	ConsoleConfig struct {
		ExitSentinel string
		// MatchAll opens a view for every account matching the credentials
		// instead of stopping at the first one.
		MatchAll     bool
		MaskPassword bool
	}
)

func NewConfig() (*Config, error) {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", false)
	v.SetDefault("appName", "Gradebook")
	v.SetDefault("build", "dev")
	v.SetDefault("rollbarToken", "")
	v.SetDefault("rosterFile", "")
	v.SetDefault("console.exitSentinel", "exit")
	v.SetDefault("console.matchAll", true)
	v.SetDefault("console.maskPassword", true)

	env := strings.ToUpper(os.Getenv("ENV")) // DEV (local; default), TEST, PROD
	if env == "" {
		env = "DEV"
	}
	v.SetEnvPrefix(env)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(dotEnvDir, ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			return nil, errors.Wrapf(err, "loading %s", dotEnvPath)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "stat %s", dotEnvPath)
	}
	v.AutomaticEnv()

	conf := &Config{
		Env:          env,
		Debug:        v.GetBool("debug"),
		AppName:      v.GetString("appName"),
		Build:        v.GetString("build"),
		RollbarToken: v.GetString("rollbarToken"),
		RosterFile:   v.GetString("rosterFile"),
		Console: ConsoleConfig{
			ExitSentinel: v.GetString("console.exitSentinel"),
			MatchAll:     v.GetBool("console.matchAll"),
			MaskPassword: v.GetBool("console.maskPassword"),
		},
	}
	if CleanString(conf.Console.ExitSentinel) == "" {
		return nil, NewValidationError(ErrInvalidData, FieldError{Field: "console.exitSentinel", Error: requiredText})
	}
	return conf, nil
}
