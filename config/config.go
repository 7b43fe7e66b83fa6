package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v2"
)

var PortalConfig *Config

type (
	// Config -.
	Config struct {
		App      `yaml:"app"`
		HTTP     `yaml:"http"`
		Log      `yaml:"logger"`
		Secrets  `yaml:"secrets"`
		DB       `yaml:"db"`
		Redis    `yaml:"redis"`
		RouterOS `yaml:"routeros"`
		Portal   `yaml:"portal"`
		Tiers    `yaml:"tiers"`
		Auth     `yaml:"auth"`
	}

	// App -.
	App struct {
		Name    string `env-required:"true" yaml:"name" env:"APP_NAME"`
		Repo    string `env-required:"true" yaml:"repo" env:"APP_REPO"`
		Version string `env-required:"true"`
	}

	// HTTP -.
	HTTP struct {
		Host           string   `env-required:"true" yaml:"host" env:"HTTP_HOST"`
		Port           string   `env-required:"true" yaml:"port" env:"HTTP_PORT"`
		AllowedOrigins []string `env-required:"true" yaml:"allowed_origins" env:"HTTP_ALLOWED_ORIGINS"`
		AllowedHeaders []string `env-required:"true" yaml:"allowed_headers" env:"HTTP_ALLOWED_HEADERS"`
		TLS            TLS      `yaml:"tls"`
	}

	// TLS -.
	TLS struct {
		Enabled  bool   `yaml:"enabled" env:"HTTP_TLS_ENABLED"`
		CertFile string `yaml:"certFile" env:"HTTP_TLS_CERT_FILE"`
		KeyFile  string `yaml:"keyFile" env:"HTTP_TLS_KEY_FILE"`
	}

	// Log -.
	Log struct {
		Level string `env-required:"true" yaml:"log_level" env:"LOG_LEVEL"`
	}

	// Secrets -.
	Secrets struct {
		Address string `yaml:"address" env:"SECRETS_ADDR"`
		Token   string `yaml:"token" env:"SECRETS_TOKEN"`
		Path    string `yaml:"path" env:"SECRETS_PATH"`
	}

	// DB -.
	DB struct {
		PoolMax int    `env-required:"true" yaml:"pool_max" env:"DB_POOL_MAX"`
		URL     string `env:"DB_URL"`
	}

	// Redis holds the optional shared session store; empty URL selects the
	// in-process store.
	Redis struct {
		URL string `yaml:"url" env:"REDIS_URL"`
	}

	// RouterOS is the management endpoint of the gym's router. Username and
	// password may instead come from the secret store when configured.
	RouterOS struct {
		URL      string        `yaml:"url" env:"ROUTEROS_URL"`
		Username string        `yaml:"username" env:"ROUTEROS_USERNAME"`
		Password string        `yaml:"password" env:"ROUTEROS_PASSWORD"`
		Timeout  time.Duration `yaml:"timeout" env:"ROUTEROS_TIMEOUT"`
	}

	// Portal -.
	Portal struct {
		BootstrapWindow time.Duration `yaml:"bootstrap_window" env:"PORTAL_BOOTSTRAP_WINDOW"`
		SweepInterval   time.Duration `yaml:"sweep_interval" env:"PORTAL_SWEEP_INTERVAL"`
		RedirectURL     string        `yaml:"redirect_url" env:"PORTAL_REDIRECT_URL"`
		// GymID is the tenant this portal instance fronts when the router
		// redirect does not carry a gym code.
		GymID string `yaml:"gym_id" env:"PORTAL_GYM_ID"`

		// BrandingTTL bounds how long a gym's login-page branding is served
		// from cache. Zero disables the cache.
		BrandingTTL time.Duration `yaml:"branding_ttl" env:"PORTAL_BRANDING_TTL"`
	}

	// Tier describes one membership class. Duration and rates are billing
	// relevant and deliberately live in config rather than code.
	Tier struct {
		DurationMinutes int     `yaml:"duration_minutes"`
		DownloadMbps    int     `yaml:"download_mbps"`
		UploadMbps      int     `yaml:"upload_mbps"`
		DailyGB         float64 `yaml:"daily_gb"`
		MonthlyGB       float64 `yaml:"monthly_gb"`
	}

	// Tiers -.
	Tiers struct {
		Basic   Tier `yaml:"basic"`
		Premium Tier `yaml:"premium"`
		VIP     Tier `yaml:"vip"`
	}

	// Auth protects the admin API, not the captive portal itself.
	Auth struct {
		Disabled      bool          `yaml:"disabled" env:"AUTH_DISABLED"`
		AdminUsername string        `yaml:"adminUsername" env:"AUTH_ADMIN_USERNAME"`
		AdminPassword string        `yaml:"adminPassword" env:"AUTH_ADMIN_PASSWORD"`
		JWTKey        string        `env-required:"true" yaml:"jwtKey" env:"AUTH_JWT_KEY"`
		JWTExpiration time.Duration `yaml:"jwtExpiration" env:"AUTH_JWT_EXPIRATION"`
		ClientID      string        `yaml:"clientId" env:"AUTH_CLIENT_ID"`
		Issuer        string        `yaml:"issuer" env:"AUTH_ISSUER"`
	}
)

// defaultConfig constructs the in-memory default configuration.
func defaultConfig() *Config {
	return &Config{
		App: App{
			Name:    "portal",
			Repo:    "gym-network-toolkit/portal",
			Version: "DEVELOPMENT",
		},
		HTTP: HTTP{
			Host:           "localhost",
			Port:           "8181",
			AllowedOrigins: []string{"*"},
			AllowedHeaders: []string{"*"},
			TLS: TLS{
				Enabled:  false,
				CertFile: "",
				KeyFile:  "",
			},
		},
		Log: Log{
			Level: "info",
		},
		Secrets: Secrets{
			Address: "",
			Token:   "",
			Path:    "secret/data/portal",
		},
		DB: DB{
			PoolMax: 2,
			URL:     "",
		},
		Redis: Redis{
			URL: "",
		},
		RouterOS: RouterOS{
			URL:      "https://192.168.88.1",
			Username: "",
			Password: "",
			Timeout:  10 * time.Second,
		},
		Portal: Portal{
			BootstrapWindow: 5 * time.Minute,
			SweepInterval:   5 * time.Minute,
			RedirectURL:     "http://www.google.com",
			GymID:           "",
			BrandingTTL:     5 * time.Minute,
		},
		Tiers: Tiers{
			Basic:   Tier{DurationMinutes: 120, DownloadMbps: 10, UploadMbps: 5, DailyGB: 1, MonthlyGB: 10},
			Premium: Tier{DurationMinutes: 480, DownloadMbps: 50, UploadMbps: 20, DailyGB: 5, MonthlyGB: 50},
			VIP:     Tier{DurationMinutes: 1440, DownloadMbps: 100, UploadMbps: 50, DailyGB: 20, MonthlyGB: 200},
		},
		Auth: Auth{
			AdminUsername: "standalone",
			AdminPassword: "",
			JWTKey:        "your_secret_jwt_key",
			JWTExpiration: 24 * time.Hour,
			// OAUTH CONFIG, if provided will not use basic auth
			ClientID: "",
			Issuer:   "",
		},
	}
}

// resolveConfigPath determines the effective config file path based on a flag value or default location.
func resolveConfigPath(configPathFlag string) (string, error) {
	if configPathFlag != "" {
		return configPathFlag, nil
	}

	ex, err := os.Executable()
	if err != nil {
		return "", err
	}

	exPath := filepath.Dir(ex)

	return filepath.Join(exPath, "config", "config.yml"), nil
}

// readOrInitConfig attempts to read the config file; if it doesn't exist, writes the provided cfg to disk.
func readOrInitConfig(configPath string, cfg *Config) error {
	err := cleanenv.ReadConfig(configPath, cfg)
	if err == nil {
		return nil
	}

	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		// Write config file out to disk
		configDir := filepath.Dir(configPath)
		if mkErr := os.MkdirAll(configDir, os.ModePerm); mkErr != nil {
			return mkErr
		}

		file, cErr := os.Create(configPath)
		if cErr != nil {
			return cErr
		}
		defer file.Close()

		encoder := yaml.NewEncoder(file)
		defer encoder.Close()

		if encErr := encoder.Encode(cfg); encErr != nil {
			return encErr
		}

		return nil
	}

	return err
}

// NewConfig returns app config.
func NewConfig() (*Config, error) {
	// set defaults
	PortalConfig = defaultConfig()

	// Define a command line flag for the config path
	var configPathFlag string
	if flag.Lookup("config") == nil {
		flag.StringVar(&configPathFlag, "config", "", "path to config file")
	}

	if !flag.Parsed() {
		flag.Parse()
	}

	// Determine the config path
	configPath, err := resolveConfigPath(configPathFlag)
	if err != nil {
		return nil, err
	}

	if err := readOrInitConfig(configPath, PortalConfig); err != nil {
		return nil, err
	}

	if err := cleanenv.ReadEnv(PortalConfig); err != nil {
		return nil, err
	}

	return PortalConfig, nil
}
