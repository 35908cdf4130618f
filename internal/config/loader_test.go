package config_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/okian/footrisk/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()
		clearConfigEnvVars()

		convey.Convey("When loading config with defaults only", func() {
			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
				convey.So(cfg.APIURL, convey.ShouldEqual, config.DefaultAPIURL)
			})
		})

		convey.Convey("When FOOTRISK_API_URL is set", func() {
			_ = os.Setenv("FOOTRISK_API_URL", "https://predict.example.org")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it overrides the fallback base URL", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.APIURL, convey.ShouldEqual, "https://predict.example.org")
			})
		})

		convey.Convey("When FOOTRISK_API_URL is set but empty", func() {
			_ = os.Setenv("FOOTRISK_API_URL", "")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then the fallback base URL is used", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.APIURL, convey.ShouldEqual, config.DefaultAPIURL)
			})
		})

		convey.Convey("When the YAML file leaves api_url blank", func() {
			tmpFile := createTempConfigFile("api_url: \"  \"\n")
			defer func() { _ = os.Remove(tmpFile) }()
			_ = os.Setenv("FOOTRISK_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then the fallback base URL is used", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.APIURL, convey.ShouldEqual, config.DefaultAPIURL)
			})
		})

		convey.Convey("When loading numeric environment variables", func() {
			_ = os.Setenv("FOOTRISK_CLIENT_TIMEOUT_MS", "2500")
			_ = os.Setenv("FOOTRISK_PROBE_INTERVAL_MS", "0")
			_ = os.Setenv("FOOTRISK_PAGE_CACHE_SIZE", "8")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then they are parsed", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.ClientTimeout(), convey.ShouldEqual, 2500*time.Millisecond)
				convey.So(cfg.ProbeInterval(), convey.ShouldEqual, time.Duration(0))
				convey.So(cfg.PageCacheSize, convey.ShouldEqual, 8)
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			tmpFile := createTempConfigFile(`
addr: ":7070"
api_url: "http://backend:5000"
log_level: debug
log_format: json
`)
			defer func() { _ = os.Remove(tmpFile) }()
			_ = os.Setenv("FOOTRISK_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from the file and keep other defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":7070")
				convey.So(cfg.APIURL, convey.ShouldEqual, "http://backend:5000")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
				convey.So(cfg.LogFormat, convey.ShouldEqual, "json")
				convey.So(cfg.PageCacheSize, convey.ShouldEqual, 64)
			})
		})

		convey.Convey("When both file and environment are set", func() {
			tmpFile := createTempConfigFile(`
addr: ":7070"
api_url: "http://backend:5000"
`)
			defer func() { _ = os.Remove(tmpFile) }()
			_ = os.Setenv("FOOTRISK_CONFIG", tmpFile)
			_ = os.Setenv("FOOTRISK_API_URL", "http://override:5000")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables win", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":7070")
				convey.So(cfg.APIURL, convey.ShouldEqual, "http://override:5000")
			})
		})

		convey.Convey("When the YAML file is invalid", func() {
			tmpFile := createTempConfigFile(`invalid: yaml: content: [`)
			defer func() { _ = os.Remove(tmpFile) }()
			_ = os.Setenv("FOOTRISK_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a load error", func() {
				convey.So(cfg, convey.ShouldBeNil)
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the config file does not exist", func() {
			_ = os.Setenv("FOOTRISK_CONFIG", "/non/existent/file.yaml")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a load error", func() {
				convey.So(cfg, convey.ShouldBeNil)
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When addr is empty", func() {
			_ = os.Setenv("FOOTRISK_ADDR", "")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(cfg, convey.ShouldBeNil)
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "addr must not be empty")
			})
		})

		convey.Convey("When api_url is not an http URL", func() {
			_ = os.Setenv("FOOTRISK_API_URL", "localhost:5000")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(cfg, convey.ShouldBeNil)
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "api_url")
			})
		})

		convey.Convey("When a numeric variable is not a number", func() {
			_ = os.Setenv("FOOTRISK_PAGE_CACHE_SIZE", "lots")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When a duration is negative", func() {
			_ = os.Setenv("FOOTRISK_CLIENT_TIMEOUT_MS", "-1")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.Convey("Then validation rejects it", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})
	})
}

// Helper functions.

func clearConfigEnvVars() {
	envVars := []string{
		"FOOTRISK_CONFIG",
		"FOOTRISK_ADDR",
		"FOOTRISK_API_URL",
		"FOOTRISK_LOG_LEVEL",
		"FOOTRISK_LOG_FORMAT",
		"FOOTRISK_CLIENT_TIMEOUT_MS",
		"FOOTRISK_PROBE_INTERVAL_MS",
		"FOOTRISK_PAGE_CACHE_SIZE",
	}
	for _, envVar := range envVars {
		_ = os.Unsetenv(envVar)
	}
}

func createTempConfigFile(content string) string {
	tmpFile, err := os.CreateTemp("", "footrisk-config-*.yaml")
	if err != nil {
		panic(err)
	}
	if _, err := tmpFile.WriteString(content); err != nil {
		panic(err)
	}
	if err := tmpFile.Close(); err != nil {
		panic(err)
	}
	return tmpFile.Name()
}
