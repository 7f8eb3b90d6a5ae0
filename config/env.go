package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/duccv/jotspot/internal/token"
	"github.com/spf13/viper"
)

// ErrMissingAuthentication is returned when any of the signing secret, issuer
// or audience is not configured.
var ErrMissingAuthentication = errors.New("authentication settings are missing")

const envPrefix = "jotspot"

type (
	AppConfig struct {
		Name        string `mapstructure:"name"`
		Version     string `mapstructure:"version"`
		Port        int    `mapstructure:"port"`
		Environment string `mapstructure:"environment"`
		Timeout     int    `mapstructure:"timeout"` // Request timeout in seconds, 0 disables it
		PathPrefix  string `mapstructure:"path_prefix"`
	}

	LoggerConfig struct {
		Level       string `mapstructure:"level"`
		FilePath    string `mapstructure:"filepath"`
		MaxSize     int    `mapstructure:"max_size"`
		MaxAge      int    `mapstructure:"max_age"`
		MaxBackups  int    `mapstructure:"max_backups"`
		Compress    bool   `mapstructure:"compress"`
		LocalTime   bool   `mapstructure:"localTime"`
		Environment string
	}

	CORSConfig struct {
		Enabled          bool     `mapstructure:"enabled"`
		AllowedOrigins   []string `mapstructure:"allowed_origins"`
		AllowedMethods   []string `mapstructure:"allowed_methods"`
		AllowedHeaders   []string `mapstructure:"allowed_headers"`
		ExposedHeaders   []string `mapstructure:"exposed_headers"`
		AllowCredentials bool     `mapstructure:"allow_credentials"`
		MaxAge           int      `mapstructure:"max_age"`
	}

	MetricsConfig struct {
		Enabled bool   `mapstructure:"enabled"`
		Path    string `mapstructure:"path"`
	}

	SwaggerConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	AuthConfig struct {
		SecretKey string `mapstructure:"secret_key"`
		Issuer    string `mapstructure:"issuer"`
		Audience  string `mapstructure:"audience"`
	}

	StoreConfig struct {
		Type string `mapstructure:"type"` // memory or redis
	}

	RedisConfig struct {
		Type       string `mapstructure:"type"` // NORMAL or SENTINEL
		Addr       string `mapstructure:"addr"` // space separated sentinel addresses for SENTINEL
		MasterName string `mapstructure:"master_name"`
		Password   string `mapstructure:"password"`
		DB         int    `mapstructure:"db"`
		KeyPrefix  string `mapstructure:"key_prefix"`
	}
)

type Env struct {
	AppConfig     AppConfig     `mapstructure:"app"`
	LoggerConfig  LoggerConfig  `mapstructure:"logging"`
	CORSConfig    CORSConfig    `mapstructure:"cors"`
	MetricsConfig MetricsConfig `mapstructure:"metrics"`
	SwaggerConfig SwaggerConfig `mapstructure:"swagger"`
	AuthConfig    AuthConfig    `mapstructure:"authentication"`
	StoreConfig   StoreConfig   `mapstructure:"store"`
	RedisConfig   RedisConfig   `mapstructure:"redis"`
}

// Load reads <name>.yaml from the given directories (./config when none are
// given) and applies JOTSPOT_* environment overrides, e.g.
// JOTSPOT_AUTHENTICATION_SECRET_KEY for authentication.secret_key.
// A missing config file is not an error; missing authentication settings are.
func Load(name string, paths ...string) (*Env, error) {
	v := viper.New()
	v.SetConfigName(name)
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{"./config"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix(envPrefix) // will be uppercased automatically
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, name)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config %q: %w", name, err)
		}
	}

	var env Env
	if err := v.Unmarshal(&env); err != nil {
		return nil, fmt.Errorf("decode config %q: %w", name, err)
	}
	env.LoggerConfig.Environment = env.AppConfig.Environment
	if env.AppConfig.Environment == "production" {
		env.LoggerConfig.Level = "info" // Default to info level in production
	}

	if err := env.Validate(); err != nil {
		return nil, err
	}
	return &env, nil
}

// Validate checks the settings the services cannot start without.
func (e *Env) Validate() error {
	var missing []string
	if e.AuthConfig.SecretKey == "" {
		missing = append(missing, "authentication.secret_key")
	}
	if e.AuthConfig.Issuer == "" {
		missing = append(missing, "authentication.issuer")
	}
	if e.AuthConfig.Audience == "" {
		missing = append(missing, "authentication.audience")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingAuthentication, strings.Join(missing, ", "))
	}
	return nil
}

// Every key needs a default so AutomaticEnv can override it during Unmarshal.
func setDefaults(v *viper.Viper, name string) {
	v.SetDefault("app.name", name)
	v.SetDefault("app.version", "dev")
	v.SetDefault("app.port", 8080)
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.timeout", 5)
	v.SetDefault("app.path_prefix", "/api")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.filepath", "")
	v.SetDefault("logging.max_size", 100)
	v.SetDefault("logging.max_age", 7)
	v.SetDefault("logging.max_backups", 3)
	v.SetDefault("logging.compress", false)
	v.SetDefault("logging.localTime", true)

	v.SetDefault("cors.enabled", false)
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("cors.allowed_methods", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{"Origin", "Content-Type", "Accept", "Authorization"})
	v.SetDefault("cors.exposed_headers", []string{"Location", "ETag", "X-Correlation-ID"})
	v.SetDefault("cors.allow_credentials", false)
	v.SetDefault("cors.max_age", 43200)

	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.path", "/metrics")

	v.SetDefault("swagger.enabled", true)

	v.SetDefault("authentication.secret_key", "")
	v.SetDefault("authentication.issuer", "")
	v.SetDefault("authentication.audience", "")

	v.SetDefault("store.type", "memory")

	v.SetDefault("redis.type", "NORMAL")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.master_name", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.key_prefix", "jots")
}

// PrintStartupConfig writes a short banner with non-secret settings.
func PrintStartupConfig(env *Env) {
	line := strings.Repeat("=", 40)
	fmt.Println(line)
	fmt.Println("🚀 Application Configuration")
	fmt.Println(line)

	fmt.Printf("%-15s: %s\n", "App Name", env.AppConfig.Name)
	fmt.Printf("%-15s: %s\n", "Version", env.AppConfig.Version)
	fmt.Printf("%-15s: %s\n", "Environment", env.AppConfig.Environment)
	fmt.Printf("%-15s: %d\n", "Port", env.AppConfig.Port)
	fmt.Printf("%-15s: %s\n", "Log Level", env.LoggerConfig.Level)
	fmt.Printf("%-15s: %s\n", "Issuer", env.AuthConfig.Issuer)
	fmt.Printf("%-15s: %s\n", "Audience", env.AuthConfig.Audience)
	fmt.Printf("%-15s: %s\n", "Store", env.StoreConfig.Type)

	fmt.Println(line)
}

// Settings converts the authentication section into token settings.
func (a AuthConfig) Settings() token.Settings {
	return token.Settings{
		Secret:   []byte(a.SecretKey),
		Issuer:   a.Issuer,
		Audience: a.Audience,
	}
}
