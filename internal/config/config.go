// Package config reads the server settings from flags, with defaults taken
// from KAMPUS_* environment variables and an optional .env file.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/erazemk/kampus/internal/geo"
	"github.com/erazemk/kampus/internal/model"
)

// Config holds the server settings.
type Config struct {
	DBPath    string
	Addr      string
	AdminUser string
	LogPath   string
	SeedPath  string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	AMQPURL string

	Fallback model.Coordinates
}

// LoadDotEnv loads path into the process environment without overriding
// variables that are already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

const usage = `Usage: kampus [flags]

Flags:
  -d, -db <path>          SQLite database path (default: kampus.sqlite3)
  -a, -addr <host:port>   listen address (default: :8080)
  -u, -user <name>        admin username on first run (default: Admin)
  -l, -log <path>         log file path (default: no file, stdout/stderr only)
  -seed <path>            JSON campus catalogs (default: built-in sample campus)
  -redis <host:port>      keep the onboarding flag in Redis instead of SQLite
  -amqp <url>             publish lost-and-found events to RabbitMQ
  -fallback-lat <deg>     latitude used when a client cannot be located
  -fallback-lng <deg>     longitude used when a client cannot be located
  -h, -help               show this help and exit

Every flag defaults to the matching KAMPUS_* environment variable
(KAMPUS_DB, KAMPUS_ADDR, KAMPUS_REDIS, ...), which may be set in .env.
KAMPUS_REDIS_PASSWORD and KAMPUS_REDIS_DB configure the Redis client.
`

// Parse reads args on top of the environment defaults. It returns
// flag.ErrHelp when help was requested.
func Parse(args []string, getenv func(string) string, out io.Writer) (*Config, error) {
	env := func(key, def string) string {
		if v := getenv("KAMPUS_" + key); v != "" {
			return v
		}
		return def
	}

	c := &Config{}
	var err error
	if c.Fallback.Lat, err = envFloat(env, "FALLBACK_LAT", geo.DefaultFallback.Lat); err != nil {
		return nil, err
	}
	if c.Fallback.Lng, err = envFloat(env, "FALLBACK_LNG", geo.DefaultFallback.Lng); err != nil {
		return nil, err
	}
	if c.RedisDB, err = strconv.Atoi(env("REDIS_DB", "0")); err != nil {
		return nil, fmt.Errorf("KAMPUS_REDIS_DB: %w", err)
	}
	c.RedisPassword = env("REDIS_PASSWORD", "")

	fset := flag.NewFlagSet("kampus", flag.ContinueOnError)
	fset.SetOutput(out)
	fset.Usage = func() { fmt.Fprint(out, usage) }

	stringVar(fset, &c.DBPath, env("DB", "kampus.sqlite3"), "db", "d")
	stringVar(fset, &c.Addr, env("ADDR", ":8080"), "addr", "a")
	stringVar(fset, &c.AdminUser, env("USER", "Admin"), "user", "u")
	stringVar(fset, &c.LogPath, env("LOG", ""), "log", "l")
	stringVar(fset, &c.SeedPath, env("SEED", ""), "seed")
	stringVar(fset, &c.RedisAddr, env("REDIS", ""), "redis")
	stringVar(fset, &c.AMQPURL, env("AMQP", ""), "amqp")
	fset.Float64Var(&c.Fallback.Lat, "fallback-lat", c.Fallback.Lat, "")
	fset.Float64Var(&c.Fallback.Lng, "fallback-lng", c.Fallback.Lng, "")

	if err := fset.Parse(args); err != nil {
		return nil, err
	}
	if fset.NArg() > 0 {
		fset.Usage()
		return nil, fmt.Errorf("unexpected argument: %s", fset.Arg(0))
	}
	if !geo.Valid(c.Fallback) {
		return nil, fmt.Errorf("fallback position %v,%v out of range", c.Fallback.Lat, c.Fallback.Lng)
	}
	return c, nil
}

func stringVar(fset *flag.FlagSet, p *string, def string, names ...string) {
	for _, n := range names {
		fset.StringVar(p, n, def, "")
	}
}

func envFloat(env func(key, def string) string, key string, def float64) (float64, error) {
	v := env(key, "")
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("KAMPUS_%s: %w", key, err)
	}
	return f, nil
}
