package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"tripboard/internal/config"

	"github.com/smartystreets/goconvey/convey"
)

var configEnvVars = []string{
	"TRIPBOARD_CONFIG",
	"TRIPBOARD_DIR",
	"TRIPBOARD_LOG_FILE",
	"TRIPBOARD_LOG_LEVEL",
	"TRIPBOARD_FORMAT",
	"TRIPBOARD_PRETTY",
	"TRIPBOARD_NO_COLOR",
}

func clearConfigEnvVars() {
	for _, k := range configEnvVars {
		_ = os.Unsetenv(k)
	}
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "tripboard.yaml")
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return p
}

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config", t, func() {
		cfg := config.New()

		convey.Convey("Then it has usable defaults", func() {
			convey.So(cfg.Dir, convey.ShouldNotBeEmpty)
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.Format, convey.ShouldEqual, "json")
			convey.So(cfg.Pretty, convey.ShouldBeFalse)
			convey.So(cfg.Validate(), convey.ShouldBeNil)
			convey.So(cfg.LogPath(), convey.ShouldEqual, filepath.Join(cfg.Dir, "tripboard.log"))
		})
	})
}

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()
		clearConfigEnvVars()
		defer clearConfigEnvVars()

		convey.Convey("When loading with defaults only", func() {
			cfg, err := config.Load(ctx, "")

			convey.Convey("Then defaults are returned", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Format, convey.ShouldEqual, "json")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			})
		})

		convey.Convey("When loading a YAML file", func() {
			dir := t.TempDir()
			path := writeConfigFile(t, "dir: "+dir+"\nlog_level: debug\nformat: text\npretty: true\n")

			cfg, err := config.Load(ctx, path)

			convey.Convey("Then file values apply", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Dir, convey.ShouldEqual, dir)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
				convey.So(cfg.Format, convey.ShouldEqual, "text")
				convey.So(cfg.Pretty, convey.ShouldBeTrue)
			})
		})

		convey.Convey("When both the file and env vars are set", func() {
			path := writeConfigFile(t, "log_level: debug\nformat: text\n")
			_ = os.Setenv("TRIPBOARD_CONFIG", path)
			_ = os.Setenv("TRIPBOARD_LOG_LEVEL", "warn")
			_ = os.Setenv("TRIPBOARD_NO_COLOR", "true")
			_ = os.Setenv("TRIPBOARD_LOG_FILE", "/tmp/trip.log")

			cfg, err := config.Load(ctx, "")

			convey.Convey("Then env overrides the file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "warn")
				convey.So(cfg.Format, convey.ShouldEqual, "text")
				convey.So(cfg.NoColor, convey.ShouldBeTrue)
				convey.So(cfg.LogPath(), convey.ShouldEqual, "/tmp/trip.log")
			})
		})

		convey.Convey("When the file does not exist", func() {
			cfg, err := config.Load(ctx, "/non/existent/tripboard.yaml")

			convey.Convey("Then loading fails", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When the YAML is malformed", func() {
			path := writeConfigFile(t, "format: [json")

			cfg, err := config.Load(ctx, path)

			convey.Convey("Then loading fails", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When values are invalid", func() {
			_ = os.Setenv("TRIPBOARD_FORMAT", "xml")

			cfg, err := config.Load(ctx, "")

			convey.Convey("Then a validation error is returned", func() {
				convey.So(cfg, convey.ShouldBeNil)
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "xml")
			})
		})

		convey.Convey("When the log level is unknown", func() {
			_ = os.Setenv("TRIPBOARD_LOG_LEVEL", "chatty")

			_, err := config.Load(ctx, "")

			convey.Convey("Then a validation error is returned", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})
	})
}
