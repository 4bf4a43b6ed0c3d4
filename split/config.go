// SPDX-License-Identifier: MIT

package split

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment overrides:
// LVPREP_SPLIT_TEST_SIZE, LVPREP_SPLIT_TRAIN_SIZE, LVPREP_SPLIT_RANDOM_STATE.
const EnvPrefix = "LVPREP_SPLIT_"

// Config is the file/env form of the sizing inputs. The tables themselves are
// never part of a configuration file.
type Config struct {
	TestSize    Size
	TrainSize   Size
	RandomState int64
}

// Params converts c into a request; callers add X and y.
func (c Config) Params() Params {
	return Params{
		TestSize:    c.TestSize,
		TrainSize:   c.TrainSize,
		RandomState: Seed(c.RandomState),
	}
}

// LoadConfig reads split settings with increasing priority:
//  1. defaults (random_state: 69),
//  2. the YAML file at path, when path is not empty,
//  3. LVPREP_SPLIT_* environment variables.
//
// YAML floats become fractions and YAML integers counts, so
//
//	test_size: 0.25
//	random_state: 7
//
// is a 25% test share shuffled with seed 7. Values are kind-checked with the
// same rules as ConfigureBag (ErrTypeMismatch, ErrValueRange).
func LoadConfig(path string) (Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		KeyRandomState: DefaultRandomState,
	}, "."), nil); err != nil {
		return Config{}, fmt.Errorf("split: load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("split: read config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", func(key, value string) (string, interface{}) {
		return strings.ToLower(strings.TrimPrefix(key, EnvPrefix)), parseScalar(value)
	}), nil); err != nil {
		return Config{}, fmt.Errorf("split: load env vars: %w", err)
	}

	var (
		cfg Config
		err error
	)
	if cfg.TestSize, err = decodeSize(KeyTestSize, k.Get(KeyTestSize)); err != nil {
		return Config{}, err
	}
	if cfg.TrainSize, err = decodeSize(KeyTrainSize, k.Get(KeyTrainSize)); err != nil {
		return Config{}, err
	}
	if cfg.RandomState, err = decodeSeed(k.Get(KeyRandomState)); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// parseScalar gives environment strings the kinds YAML would: integers first,
// then floats; anything else stays a string and fails kind checks later.
func parseScalar(v string) interface{} {
	v = strings.TrimSpace(v)
	if i, err := strconv.ParseInt(v, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return f
	}

	return v
}
