// Package profiles loads weapon tuning profiles: the stock arsenal, optionally
// overridden or extended by a gunfeel config file (TOML, YAML or JSON).
package profiles

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/Garsondee/Gunfeel/internal/gunfeel"
)

// Load returns the full profile set. path selects an explicit config file; an
// empty path searches the working directory for gunfeel.{toml,yaml,yml,json}
// and quietly falls back to the stock arsenal when none exists.
//
// Config shape:
//
//	[weapons.rifle]          # override any field of a stock profile
//	verticalRecoil = 2.0
//
//	[weapons.lasercarbine]   # or define a new weapon on top of one
//	inherit = "smg"
//	fireRate = 20
//
// Every resulting profile is validated; one bad weapon fails the whole load so
// a broken config never half-applies.
func Load(path string) (map[string]gunfeel.WeaponProfile, error) {
	out := gunfeel.Arsenal()

	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("gunfeel")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return out, nil
		}
		return nil, fmt.Errorf("read weapon config: %w", err)
	}

	for name := range v.GetStringMap("weapons") {
		key := "weapons." + name

		base, stock := out[name]
		if !stock {
			inherit := v.GetString(key + ".inherit")
			if inherit == "" {
				return nil, fmt.Errorf("weapon %q: new weapons must name an inherit base", name)
			}
			parent, ok := gunfeel.ArsenalProfile(inherit)
			if !ok {
				return nil, fmt.Errorf("weapon %q: inherit base %q is not a stock profile", name, inherit)
			}
			base = parent
		}

		if err := v.UnmarshalKey(key, &base); err != nil {
			return nil, fmt.Errorf("weapon %q: %w", name, err)
		}
		base.Name = name
		if err := base.Validate(); err != nil {
			return nil, fmt.Errorf("weapon config %s: %w", v.ConfigFileUsed(), err)
		}
		out[name] = base
	}
	return out, nil
}

// MustLoad is Load for program startup paths where a bad config is fatal
// anyway; it panics instead of returning the error.
func MustLoad(path string) map[string]gunfeel.WeaponProfile {
	ps, err := Load(path)
	if err != nil {
		panic(err)
	}
	return ps
}
