package log

import (
	"testing"

	logrus "github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/thumbgrab/thumbgrab/filesystem"
	"github.com/thumbgrab/thumbgrab/key"
	"github.com/thumbgrab/thumbgrab/where"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given logging is disabled", t, func() {
		viper.Set(key.LogsWrite, false)

		So(Setup(), ShouldBeNil)

		Convey("WithFields should hand out a silent entry", func() {
			entry := WithFields(logrus.Fields{"batch": "x"})
			So(entry.Logger, ShouldEqual, discard)
		})
	})

	Convey("Given logging is enabled", t, func() {
		viper.Set(key.LogsWrite, true)
		viper.Set(key.LogsLevel, "debug")
		defer viper.Set(key.LogsWrite, false)

		So(Setup(), ShouldBeNil)

		Convey("It should create today's log file", func() {
			files, err := filesystem.API().ReadDir(where.Logs())
			So(err, ShouldBeNil)
			So(files, ShouldNotBeEmpty)
		})

		Convey("It should apply the configured level", func() {
			So(logrus.GetLevel(), ShouldEqual, logrus.DebugLevel)
		})
	})
}
