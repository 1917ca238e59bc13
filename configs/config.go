package configs

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	App struct {
		Name     string `koanf:"name"`
		HTTPAddr string `koanf:"http_addr"`
	} `koanf:"app"`

	HTTP struct {
		ReadTimeout  time.Duration `koanf:"read_timeout"`
		WriteTimeout time.Duration `koanf:"write_timeout"`
		IdleTimeout  time.Duration `koanf:"idle_timeout"`
	} `koanf:"http"`

	Storage struct {
		// "memory" or "file"
		Backend string `koanf:"backend"`
		DataDir string `koanf:"data_dir"`
	} `koanf:"storage"`

	Redis struct {
		Addr     string `koanf:"addr"`
		Password string `koanf:"password"`
	} `koanf:"redis"`

	Kafka struct {
		Broker      string `koanf:"broker"`
		TopicEvents string `koanf:"topic_events"`
	} `koanf:"kafka"`

	Security struct {
		JWTSecret  string        `koanf:"jwt_secret"`
		AccessTTL  time.Duration `koanf:"access_ttl"`
		RefreshTTL time.Duration `koanf:"refresh_ttl"`
		// Frontend origin that password-reset links point at.
		ResetBaseURL string `koanf:"reset_base_url"`
	} `koanf:"security"`

	Seller struct {
		Email    string `koanf:"email"`
		Password string `koanf:"password"`
		Name     string `koanf:"name"`
	} `koanf:"seller"`

	Payment struct {
		// Simulated gateway latency; stands in for the network round-trip a
		// real PSP would take.
		SimulatedDelay time.Duration `koanf:"simulated_delay"`

		MidtransServerKey    string `koanf:"midtrans_server_key"`
		MidtransIsProduction bool   `koanf:"midtrans_is_production"`
	} `koanf:"payment"`

	Cloudinary struct {
		CloudName string `koanf:"cloud_name"`
		APIKey    string `koanf:"api_key"`
		APISecret string `koanf:"api_secret"`
		Folder    string `koanf:"folder"`
	} `koanf:"cloudinary"`

	Email struct {
		ResendAPIKey string `koanf:"resend_api_key"`
		FromEmail    string `koanf:"from_email"`
	} `koanf:"email"`
}

// Load reads <pathDir>/base.yaml, overlays <pathDir>/<envName>.yaml when it
// exists, then environment variables (prefix SHOPEASE_, nested with __,
// e.g. SHOPEASE_SECURITY__JWT_SECRET).
func Load(pathDir, envName string) (Config, error) {
	k := koanf.New(".")

	if err := k.Load(file.Provider(fmt.Sprintf("%s/base.yaml", pathDir)), yaml.Parser()); err != nil {
		return Config{}, fmt.Errorf("load base: %w", err)
	}

	_ = k.Load(file.Provider(fmt.Sprintf("%s/%s.yaml", pathDir, envName)), yaml.Parser())

	if err := k.Load(env.Provider("SHOPEASE_", ".", func(s string) string {
		s = strings.TrimPrefix(s, "SHOPEASE_")
		s = strings.ReplaceAll(s, "__", ".")
		return strings.ToLower(s)
	}), nil); err != nil {
		return Config{}, fmt.Errorf("env overlay: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.App.HTTPAddr == "" {
		return fmt.Errorf("app.http_addr required")
	}
	if c.Security.JWTSecret == "" {
		return fmt.Errorf("security.jwt_secret required")
	}
	if c.Storage.Backend == "file" && c.Storage.DataDir == "" {
		return fmt.Errorf("storage.data_dir required for file backend")
	}
	return nil
}
