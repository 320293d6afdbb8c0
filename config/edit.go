package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/thumbgrab/thumbgrab/constant"
	"github.com/thumbgrab/thumbgrab/icon"
	"github.com/thumbgrab/thumbgrab/key"
	"github.com/thumbgrab/thumbgrab/where"
)

// ErrUnknownKey is wrapped by every lookup of a key that is not registered.
var ErrUnknownKey = errors.New("unknown key")

// Closest returns the registered key nearest to k by edit distance.
func Closest(k string) string {
	return lo.MinBy(lo.Keys(Default), func(a string, b string) bool {
		return levenshtein.Distance(k, a) < levenshtein.Distance(k, b)
	})
}

// Lookup returns the field registered under k.
func Lookup(k string) (Field, error) {
	field, ok := Default[k]
	if !ok {
		return Field{}, fmt.Errorf("%w %s, did you mean %s?", ErrUnknownKey, k, Closest(k))
	}
	return field, nil
}

// Parse converts the raw command line values to the type of the field's default.
func Parse(k string, raw []string) (any, error) {
	field, err := Lookup(k)
	if err != nil {
		return nil, err
	}

	if len(raw) == 0 {
		return nil, errors.New("value is required")
	}

	switch field.Value.(type) {
	case string:
		if variants := icon.AvailableVariants(); k == key.IconsVariant && !lo.Contains(variants, raw[0]) {
			return nil, fmt.Errorf("invalid icons variant %q, expected one of %v", raw[0], variants)
		}
		return raw[0], nil
	case int:
		v, err := strconv.Atoi(raw[0])
		if err != nil {
			return nil, fmt.Errorf("invalid integer value: %s", raw[0])
		}
		return v, nil
	case bool:
		v, err := strconv.ParseBool(raw[0])
		if err != nil {
			return nil, fmt.Errorf("invalid boolean value: %s", raw[0])
		}
		return v, nil
	case time.Duration:
		v, err := time.ParseDuration(raw[0])
		if err != nil {
			return nil, fmt.Errorf("invalid duration value: %s", raw[0])
		}
		if v < 0 {
			return nil, fmt.Errorf("duration must not be negative: %s", raw[0])
		}
		return v, nil
	case []string:
		return raw, nil
	default:
		return nil, fmt.Errorf("unsupported type for %s", k)
	}
}

// FilePath is where the config file lives.
func FilePath() string {
	return filepath.Join(where.Config(), constant.Thumbgrab+".toml")
}

// Write persists the current values, creating the file when missing.
func Write() error {
	err := viper.WriteConfig()
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		return viper.SafeWriteConfig()
	}
	return err
}
