// Package config loads the web server configuration from defaults, a .env
// file, the process environment and explicit overrides, in increasing order
// of precedence.
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultEnvFile          = ".env"
	defaultPort             = "8080"
	defaultReadTimeout      = 15 * time.Second
	defaultWriteTimeout     = 15 * time.Second
	defaultIdleTimeout      = 60 * time.Second
	defaultEnvironment      = "local"
	defaultTemplatesDir     = "templates"
	defaultPublicDir        = "public"
	defaultContentDir       = "content"
	defaultDataFile         = "data/brands.yaml"
	defaultGraphQLURL       = "http://localhost:8000/graphql"
	defaultGraphQLTimeout   = 8 * time.Second
	defaultRaffleTenantID   = "terraza-eden"
	defaultRaffleReferrer   = "rifas-page"
	defaultWhatsApp         = "+573113592535"
	defaultInstagramURL     = "https://www.instagram.com/terrazaeleden/"
	defaultLogLevel         = "info"
	minSessionKeyLength     = 32
	productionEnvironment   = "prod"
	environmentAliasProduct = "production"
)

// Config captures all runtime configuration organised by concern.
type Config struct {
	Server    ServerConfig
	Site      SiteConfig
	Session   SessionConfig
	GraphQL   GraphQLConfig
	Raffle    RaffleConfig
	Analytics AnalyticsConfig
	LogLevel  string
}

// ServerConfig configures HTTP server parameters.
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	Environment  string
	Dev          bool
}

// SiteConfig locates the files the site renders from and the food court's own contact channels.
type SiteConfig struct {
	TemplatesDir string
	PublicDir    string
	ContentDir   string
	DataFile     string
	BaseURL      string
	WhatsApp     string
	InstagramURL string
}

// SessionConfig controls the signed session cookie.
type SessionConfig struct {
	SigningKey string
}

// GraphQLConfig points at the promotions backend.
type GraphQLConfig struct {
	URL     string
	Timeout time.Duration
	// Local replaces the backend with an in-process signer that accepts every signup.
	Local bool
}

// RaffleConfig tags raffle signups.
type RaffleConfig struct {
	TenantID string
	Referrer string
}

// AnalyticsConfig holds optional tracking ids.
type AnalyticsConfig struct {
	GAMeasurementID string
	GTMContainerID  string
}

// Addr returns the listen address.
func (c Config) Addr() string {
	return ":" + c.Server.Port
}

// Production reports whether the server runs in the production environment.
func (c Config) Production() bool {
	return c.Server.Environment == productionEnvironment
}

// ValidationError is returned when required configuration fields are missing or invalid.
type ValidationError struct {
	fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: missing or invalid fields [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the missing/invalid field list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// Option customises Load behaviour.
type Option func(*loaderOptions)

type loaderOptions struct {
	envFile      string
	envMap       map[string]string
	useSystemEnv bool
}

// WithEnvFile overrides the .env file path. An empty path disables the file.
func WithEnvFile(path string) Option {
	return func(o *loaderOptions) {
		o.envFile = path
	}
}

// WithEnvMap injects explicit values that take precedence over the system environment.
func WithEnvMap(values map[string]string) Option {
	return func(o *loaderOptions) {
		o.envMap = values
	}
}

// WithoutSystemEnv disables os.LookupEnv, relying only on provided maps and .env files.
func WithoutSystemEnv() Option {
	return func(o *loaderOptions) {
		o.useSystemEnv = false
	}
}

// Load assembles the configuration. ctx is accepted for parity with loaders
// that resolve remote values and is currently unused.
func Load(_ context.Context, opts ...Option) (Config, error) {
	options := loaderOptions{
		envFile:      defaultEnvFile,
		useSystemEnv: true,
	}
	for _, opt := range opts {
		opt(&options)
	}

	dotEnvValues, err := loadDotEnv(options.envFile)
	if err != nil {
		return Config{}, err
	}

	lookup := func(key string) (string, bool) {
		if options.envMap != nil {
			if value, ok := options.envMap[key]; ok {
				return value, true
			}
		}
		if options.useSystemEnv {
			if value, ok := os.LookupEnv(key); ok {
				return value, true
			}
		}
		if dotEnvValues != nil {
			if value, ok := dotEnvValues[key]; ok {
				return value, true
			}
		}
		return "", false
	}

	port := stringWithDefault(lookup, "TERRAZA_WEB_PORT", "")
	if port == "" {
		port = stringWithDefault(lookup, "PORT", defaultPort)
	}

	cfg := Config{
		Server: ServerConfig{
			Port:         strings.TrimPrefix(strings.TrimSpace(port), ":"),
			ReadTimeout:  durationWithDefault(lookup, "TERRAZA_WEB_READ_TIMEOUT", defaultReadTimeout),
			WriteTimeout: durationWithDefault(lookup, "TERRAZA_WEB_WRITE_TIMEOUT", defaultWriteTimeout),
			IdleTimeout:  durationWithDefault(lookup, "TERRAZA_WEB_IDLE_TIMEOUT", defaultIdleTimeout),
			Environment:  normalizeEnvironment(stringWithDefault(lookup, "TERRAZA_WEB_ENV", defaultEnvironment)),
			Dev:          boolWithDefault(lookup, "TERRAZA_WEB_DEV", false),
		},
		Site: SiteConfig{
			TemplatesDir: stringWithDefault(lookup, "TERRAZA_WEB_TEMPLATES_DIR", defaultTemplatesDir),
			PublicDir:    stringWithDefault(lookup, "TERRAZA_WEB_PUBLIC_DIR", defaultPublicDir),
			ContentDir:   stringWithDefault(lookup, "TERRAZA_WEB_CONTENT_DIR", defaultContentDir),
			DataFile:     stringWithDefault(lookup, "TERRAZA_WEB_DATA_FILE", defaultDataFile),
			BaseURL:      strings.TrimRight(stringWithDefault(lookup, "TERRAZA_WEB_BASE_URL", ""), "/"),
			WhatsApp:     stringWithDefault(lookup, "TERRAZA_WHATSAPP", defaultWhatsApp),
			InstagramURL: stringWithDefault(lookup, "TERRAZA_INSTAGRAM_URL", defaultInstagramURL),
		},
		Session: SessionConfig{
			SigningKey: stringWithDefault(lookup, "TERRAZA_WEB_SESSION_SIGNING_KEY", ""),
		},
		GraphQL: GraphQLConfig{
			URL:     stringWithDefault(lookup, "TERRAZA_GRAPHQL_URL", defaultGraphQLURL),
			Timeout: durationWithDefault(lookup, "TERRAZA_GRAPHQL_TIMEOUT", defaultGraphQLTimeout),
			Local:   boolWithDefault(lookup, "TERRAZA_GRAPHQL_LOCAL", false),
		},
		Raffle: RaffleConfig{
			TenantID: stringWithDefault(lookup, "TERRAZA_RAFFLE_TENANT_ID", defaultRaffleTenantID),
			Referrer: stringWithDefault(lookup, "TERRAZA_RAFFLE_REFERRER", defaultRaffleReferrer),
		},
		Analytics: AnalyticsConfig{
			GAMeasurementID: stringWithDefault(lookup, "TERRAZA_WEB_GA_MEASUREMENT_ID", ""),
			GTMContainerID:  stringWithDefault(lookup, "TERRAZA_WEB_GTM_CONTAINER_ID", ""),
		},
		LogLevel: strings.ToLower(stringWithDefault(lookup, "LOG_LEVEL", defaultLogLevel)),
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validateConfig(cfg Config) error {
	var invalid []string
	if p, err := strconv.Atoi(cfg.Server.Port); err != nil || p <= 0 || p > 65535 {
		invalid = append(invalid, "Server.Port")
	}
	if cfg.Server.ReadTimeout <= 0 {
		invalid = append(invalid, "Server.ReadTimeout")
	}
	if cfg.Server.WriteTimeout <= 0 {
		invalid = append(invalid, "Server.WriteTimeout")
	}
	if cfg.Server.IdleTimeout <= 0 {
		invalid = append(invalid, "Server.IdleTimeout")
	}
	if strings.TrimSpace(cfg.Site.DataFile) == "" {
		invalid = append(invalid, "Site.DataFile")
	}
	if !cfg.GraphQL.Local {
		u, err := url.Parse(cfg.GraphQL.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			invalid = append(invalid, "GraphQL.URL")
		}
	}
	if cfg.GraphQL.Timeout <= 0 {
		invalid = append(invalid, "GraphQL.Timeout")
	}
	if cfg.Production() && len(cfg.Session.SigningKey) < minSessionKeyLength {
		invalid = append(invalid, "Session.SigningKey")
	}
	if len(invalid) > 0 {
		return &ValidationError{fields: invalid}
	}
	return nil
}

func normalizeEnvironment(env string) string {
	env = strings.ToLower(strings.TrimSpace(env))
	if env == environmentAliasProduct {
		return productionEnvironment
	}
	return env
}

// loadDotEnv reads path with godotenv. A missing file is not an error.
func loadDotEnv(path string) (map[string]string, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: failed parsing %s: %w", path, err)
	}
	return values, nil
}

func stringWithDefault(lookup func(string) (string, bool), key, fallback string) string {
	if value, ok := lookup(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func durationWithDefault(lookup func(string) (string, bool), key string, fallback time.Duration) time.Duration {
	if value, ok := lookup(key); ok && value != "" {
		d, err := time.ParseDuration(strings.TrimSpace(value))
		if err == nil {
			return d
		}
	}
	return fallback
}

func boolWithDefault(lookup func(string) (string, bool), key string, fallback bool) bool {
	if value, ok := lookup(key); ok && value != "" {
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "true", "1", "yes", "on":
			return true
		case "false", "0", "no", "off":
			return false
		}
	}
	return fallback
}
