package config

import (
	"os"
	"path"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

// ApprovalPolicy decides who may approve a pending moderator request.
type ApprovalPolicy string

const (
	// the user named on the request, the default
	ApproveBySelf ApprovalPolicy = "self"
	// board owner or an active moderator of the requested board
	ApproveByBoard ApprovalPolicy = "board"
)

type Public struct {
	LogLevel           string         `yaml:"log_level"`
	LogJSON            bool           `yaml:"log_json"`
	HTTPAddr           string         `yaml:"http_addr" validate:"required"`
	RequestTimeout     time.Duration  `yaml:"request_timeout" validate:"required"` // seconds
	CORSAllowedOrigins []string       `yaml:"cors_allowed_origins"`
	SecureHeaders      bool           `yaml:"secure_headers"` // adds HSTS, enable behind https
	ModerationApproval ApprovalPolicy `yaml:"moderation_approval" validate:"omitempty,oneof=board self"`
}

type Private struct {
	Pg       Pg     `yaml:"pg" validate:"required"`
	TokenKey string `yaml:"token_key" validate:"required"`
}

type Pg struct {
	Host     string `yaml:"host" validate:"required"`
	Port     int    `yaml:"port" validate:"required"`
	User     string `yaml:"user" validate:"required"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname" validate:"required"`
}

func (s *Config) TokenKey() string {
	return s.Private.TokenKey
}

func (s *Config) RequestTimeout() time.Duration {
	return s.Public.RequestTimeout * time.Second
}

func (s *Config) ApprovalPolicy() ApprovalPolicy {
	if s.Public.ModerationApproval == "" {
		return ApproveBySelf
	}
	return s.Public.ModerationApproval
}

func mustLoadPath(configPath string, output interface{}) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file: " + configPath)
	}

	if err = yaml.UnmarshalStrict(configFile, output); err != nil {
		panic("can't unmarshal config file " + configPath + ": " + err.Error())
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{Public: public, Private: private}
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(cfg); err != nil {
		panic("invalid config: " + err.Error())
	}
	return cfg
}
