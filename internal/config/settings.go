package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	PoolSize int    `mapstructure:"pool_size"`
}

func (d DBConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.Username, d.Password, d.Host, d.Port, d.Name)
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
}

// StorageConfig selects the persistence driver and the on-disk layout the
// file driver writes to.
type StorageConfig struct {
	Driver            string `mapstructure:"driver"` // file | mysql
	SettingsDir       string `mapstructure:"settings_dir"`
	TranscriptionsDir string `mapstructure:"transcriptions_dir"`
	RecordingsDir     string `mapstructure:"recordings_dir"`
	OutputsDir        string `mapstructure:"outputs_dir"`
}

type STTConfig struct {
	Provider  string `mapstructure:"provider"` // openai | server
	ServerURL string `mapstructure:"server_url"`
}

type LLMKeysConfig struct {
	OpenAIAPIKey string   `mapstructure:"openai_api_key"`
	GeminiAPIKey string   `mapstructure:"gemini_api_key"`
	OllamaURLs   []string `mapstructure:"ollama_urls"`
}

type GoogleCalendarConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	RefreshToken string `mapstructure:"refresh_token"`
	SyncInterval int    `mapstructure:"sync_interval_minutes"`
}

type AuthConfig struct {
	JWTSecret          string `mapstructure:"jwt_secret"`
	TokenTTLMinutes    int    `mapstructure:"token_ttl_minutes"`
	AccessPasswordHash string `mapstructure:"access_password_hash"` // bcrypt; empty disables the password check
}

func (a AuthConfig) TokenTTL() time.Duration {
	if a.TokenTTLMinutes <= 0 {
		return time.Hour
	}
	return time.Duration(a.TokenTTLMinutes) * time.Minute
}

type Settings struct {
	Port    int                  `mapstructure:"port"`
	Env     string               `mapstructure:"env"`
	Debug   bool                 `mapstructure:"debug"`
	DB      DBConfig             `mapstructure:"database"`
	Redis   RedisConfig          `mapstructure:"redis"`
	Storage StorageConfig        `mapstructure:"storage"`
	STT     STTConfig            `mapstructure:"stt"`
	LLMKeys LLMKeysConfig        `mapstructure:"llm_keys"`
	GCal    GoogleCalendarConfig `mapstructure:"google_calendar"`
	Auth    AuthConfig           `mapstructure:"auth"`
}

func Load() (*Settings, error) {
	viper.SetConfigName("config_" + genEnv())
	viper.AddConfigPath(".")
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var settings Settings
	if err := viper.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	settings.applyDefaults()

	return &settings, nil
}

func (s *Settings) applyDefaults() {
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.Storage.Driver == "" {
		s.Storage.Driver = "file"
	}
	if s.Storage.SettingsDir == "" {
		s.Storage.SettingsDir = "settings"
	}
	if s.Storage.TranscriptionsDir == "" {
		s.Storage.TranscriptionsDir = "transcriptions"
	}
	if s.Storage.RecordingsDir == "" {
		s.Storage.RecordingsDir = "recordings"
	}
	if s.Storage.OutputsDir == "" {
		s.Storage.OutputsDir = "outputs"
	}
	if s.STT.Provider == "" {
		s.STT.Provider = "openai"
	}
	if s.GCal.SyncInterval <= 0 {
		s.GCal.SyncInterval = 30
	}
}

func genEnv() string {
	env := viper.GetString("ENV")
	if env == "" {
		return "dev"
	}
	return env
}
