// Package config provides application configuration loading from environment variables.
package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cli/go-gh/pkg/auth"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/mishasvintus/pr_range_explorer/internal/service"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	GitHub     GitHubConfig
	Credential CredentialConfig
	Log        LogConfig
	CORS       CORSConfig
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host            string
	Port            string
	ShutdownTimeout time.Duration
}

// GitHubConfig contains upstream API settings.
type GitHubConfig struct {
	APIURL    string
	Token     string
	UseGHAuth bool
	Timeout   time.Duration
	MaxPages  int
}

// CredentialConfig selects where request tokens come from.
type CredentialConfig struct {
	Mode     service.CredentialMode
	Required bool
}

type LogConfig struct {
	Level  string
	Format string
}

type CORSConfig struct {
	AllowedOrigins []string
}

// tokenForHost looks a token up in the gh CLI configuration.
var tokenForHost = auth.TokenForHost

// Load reads configuration from envFile (if present), the environment and
// the optional file named by CONFIG_FILE. An empty envFile means ".env".
func Load(envFile string) (*Config, error) {
	if envFile == "" {
		_ = godotenv.Load()
	} else if err := godotenv.Load(envFile); err != nil {
		return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	if path := v.GetString("CONFIG_FILE"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	mode, err := service.NewCredentialMode(v.GetString("CREDENTIAL_MODE"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:            v.GetString("SERVER_HOST"),
			Port:            v.GetString("SERVER_PORT"),
			ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
		},
		GitHub: GitHubConfig{
			APIURL:    v.GetString("GITHUB_API_URL"),
			Token:     v.GetString("GITHUB_TOKEN"),
			UseGHAuth: v.GetBool("GITHUB_USE_GH_AUTH"),
			Timeout:   v.GetDuration("UPSTREAM_TIMEOUT"),
			MaxPages:  v.GetInt("MAX_PAGES"),
		},
		Credential: CredentialConfig{
			Mode:     mode,
			Required: v.GetBool("REQUIRE_CREDENTIAL"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
	}

	if cfg.GitHub.Token == "" && cfg.GitHub.UseGHAuth {
		cfg.GitHub.Token, _ = tokenForHost(cfg.GitHub.Host())
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", "3000")
	v.SetDefault("SHUTDOWN_TIMEOUT", 5*time.Second)

	v.SetDefault("GITHUB_API_URL", "https://api.github.com/")
	v.SetDefault("GITHUB_TOKEN", "")
	v.SetDefault("GITHUB_USE_GH_AUTH", false)
	v.SetDefault("UPSTREAM_TIMEOUT", 30*time.Second)
	v.SetDefault("MAX_PAGES", 100)

	v.SetDefault("CREDENTIAL_MODE", string(service.CredentialModeServer))
	v.SetDefault("REQUIRE_CREDENTIAL", false)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")

	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("CONFIG_FILE", "")
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Server.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid SERVER_PORT %q: must be a number between 1 and 65535", c.Server.Port)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", c.Server.ShutdownTimeout)
	}

	u, err := url.Parse(c.GitHub.APIURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid GITHUB_API_URL %q", c.GitHub.APIURL)
	}
	if c.GitHub.Timeout <= 0 {
		return fmt.Errorf("UPSTREAM_TIMEOUT must be positive, got %s", c.GitHub.Timeout)
	}
	if c.GitHub.MaxPages < 0 {
		return fmt.Errorf("MAX_PAGES must not be negative, got %d", c.GitHub.MaxPages)
	}

	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid LOG_FORMAT %q (must be one of: text, json)", c.Log.Format)
	}

	for _, origin := range c.CORS.AllowedOrigins {
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("invalid CORS origin %q: must be * or start with http:// or https://", origin)
		}
	}

	return nil
}

// Address returns the host:port the server listens on.
func (c *ServerConfig) Address() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// Host returns the GitHub host the API URL belongs to, as the gh CLI names it.
func (c *GitHubConfig) Host() string {
	u, err := url.Parse(c.APIURL)
	if err != nil || u.Hostname() == "" {
		return "github.com"
	}
	if u.Hostname() == "api.github.com" {
		return "github.com"
	}
	return u.Hostname()
}

// CredentialPolicy returns the policy applied to incoming requests.
func (c *Config) CredentialPolicy() service.CredentialPolicy {
	return service.CredentialPolicy{
		Mode:        c.Credential.Mode,
		ServerToken: c.GitHub.Token,
		Required:    c.Credential.Required,
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
