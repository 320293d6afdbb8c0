package config

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/thumbgrab/thumbgrab/constant"
	"github.com/thumbgrab/thumbgrab/filesystem"
	"github.com/thumbgrab/thumbgrab/key"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.IsSet(name), ShouldBeTrue)
			}
			So(viper.GetString(key.ProbeHost), ShouldEqual, constant.ImageHost)
			So(viper.GetDuration(key.TUICopiedFor), ShouldEqual, 2*time.Second)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("network.chrome_fingerprint")
			So(result, ShouldEqual, "network_chrome_fingerprint")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given a registered field", t, func() {
		field := Default[key.NetworkTimeout]

		Convey("Env should carry the application prefix", func() {
			So(field.Env(), ShouldEqual, "THUMBGRAB_NETWORK_TIMEOUT")
		})

		Convey("typeName should recognise durations", func() {
			So(field.typeName(), ShouldEqual, "duration")
		})

		Convey("Every key should be registered exactly once", func() {
			So(len(Default), ShouldEqual, key.DefinedFieldsCount)
			So(len(EnvExposed), ShouldEqual, key.DefinedFieldsCount)
		})
	})
}
