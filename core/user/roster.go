package user

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/trezcool/gradebook/core"
)

type (
	// RosterConfig describes the accounts registered at startup.
	RosterConfig struct {
		Students []StudentSeed `mapstructure:"students" validate:"dive"`
		Teachers []TeacherSeed `mapstructure:"teachers" validate:"dive"`
		Parents  []ParentSeed  `mapstructure:"parents" validate:"dive"`
	}

	StudentSeed struct {
		Login    string `mapstructure:"login" validate:"required"`
		Password string `mapstructure:"password" validate:"required"`
		Grades   []int  `mapstructure:"grades"`
	}

	TeacherSeed struct {
		Login    string   `mapstructure:"login" validate:"required"`
		Password string   `mapstructure:"password" validate:"required"`
		Students []string `mapstructure:"students" validate:"dive,required"`
	}

	ParentSeed struct {
		Login    string `mapstructure:"login" validate:"required"`
		Password string `mapstructure:"password" validate:"required"`
		Child    string `mapstructure:"child" validate:"required"`
	}
)

// DefaultRoster is used when no roster file is configured.
func DefaultRoster() RosterConfig {
	return RosterConfig{
		Students: []StudentSeed{
			{Login: "alice", Password: "123", Grades: []int{4, 5, 3}},
			{Login: "bob", Password: "123", Grades: []int{5, 4, 4}},
		},
		Teachers: []TeacherSeed{
			{Login: "tina", Password: "teach", Students: []string{"alice", "bob"}},
		},
		Parents: []ParentSeed{
			{Login: "paul", Password: "parent", Child: "alice"},
		},
	}
}

// LoadRoster reads a roster file; the format is picked from the extension (yaml, json, toml..).
func LoadRoster(path string) (RosterConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return RosterConfig{}, errors.Wrapf(err, "reading roster %s", path)
	}
	var roster RosterConfig
	if err := v.Unmarshal(&roster); err != nil {
		return RosterConfig{}, errors.Wrapf(err, "decoding roster %s", path)
	}
	return roster, nil
}

func (rc RosterConfig) Validate() error {
	return core.TranslateValidationErrors(core.Validate.Struct(rc))
}
