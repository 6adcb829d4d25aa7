package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Env       string `yaml:"env"`
	Port      int    `yaml:"port"`
	GinMode   string `yaml:"gin_mode"`
	ClientURL string `yaml:"client_url"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type JWTConfig struct {
	AccessSecret  string `yaml:"access_secret"`
	RefreshSecret string `yaml:"refresh_secret"`
	Issuer        string `yaml:"issuer"`
	AccessTTL     string `yaml:"access_ttl"`
	RefreshTTL    string `yaml:"refresh_ttl"`
}

type PasswordConfig struct {
	BcryptCost int `yaml:"bcrypt_cost"`
}

type SecretsConfig struct {
	OTPLength       int    `yaml:"otp_length"`
	OTPTTL          string `yaml:"otp_ttl"`
	ResetTokenTTL   string `yaml:"reset_token_ttl"`
	VerificationTTL string `yaml:"verification_ttl"`
	EmailChangeTTL  string `yaml:"email_change_ttl"`
}

type MailConfig struct {
	SMTPHost  string `yaml:"smtp_host"`
	SMTPPort  int    `yaml:"smtp_port"`
	SMTPUser  string `yaml:"smtp_user"`
	SMTPPass  string `yaml:"smtp_pass"`
	FromEmail string `yaml:"from_email"`
	QueueSize int    `yaml:"queue_size"`
	Workers   int    `yaml:"workers"`
}

type SeedConfig struct {
	AdminEmail    string `yaml:"admin_email"`
	AdminPassword string `yaml:"admin_password"`
}

type CasbinConfig struct {
	ModelPath string `yaml:"model_path"`
}

type ConfigFile struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	JWT      JWTConfig      `yaml:"jwt"`
	Password PasswordConfig `yaml:"password"`
	Secrets  SecretsConfig  `yaml:"secrets"`
	Mail     MailConfig     `yaml:"mail"`
	Seed     SeedConfig     `yaml:"seed"`
	Casbin   CasbinConfig   `yaml:"casbin"`
}

// Config is the immutable runtime configuration, constructed once at
// process start and passed by reference into each component.
type Config struct {
	Env       string
	Port      string
	GinMode   string
	ClientURL string

	DSN string

	JWTAccessSecret  string
	JWTRefreshSecret string
	JWTIssuer        string
	AccessTTL        time.Duration
	RefreshTTL       time.Duration

	BcryptCost int

	OTPLength       int
	OTPTTL          time.Duration
	ResetTokenTTL   time.Duration
	VerificationTTL time.Duration
	EmailChangeTTL  time.Duration

	SMTPHost      string
	SMTPPort      int
	SMTPUser      string
	SMTPPass      string
	FromEmail     string
	MailQueueSize int
	MailWorkers   int

	SeedAdminEmail    string
	SeedAdminPassword string

	CasbinModelPath string
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads config/config.yml, applies environment overrides for
// secrets, and parses duration strings.
func Load() (*Config, error) {
	return LoadFrom("config/config.yml")
}

// LoadFrom reads configuration from an explicit path.
func LoadFrom(path string) (*Config, error) {
	configFile, err := loadConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	accTTL, err := time.ParseDuration(configFile.JWT.AccessTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT access TTL: %w", err)
	}
	refTTL, err := time.ParseDuration(configFile.JWT.RefreshTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT refresh TTL: %w", err)
	}
	otpTTL, err := time.ParseDuration(configFile.Secrets.OTPTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid OTP TTL: %w", err)
	}
	resetTTL, err := time.ParseDuration(configFile.Secrets.ResetTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid reset token TTL: %w", err)
	}
	verifyTTL, err := time.ParseDuration(configFile.Secrets.VerificationTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid verification TTL: %w", err)
	}
	changeTTL, err := time.ParseDuration(configFile.Secrets.EmailChangeTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid email change TTL: %w", err)
	}

	cfg := &Config{
		Env:       env("APP_ENV", configFile.App.Env),
		Port:      fmt.Sprintf("%d", configFile.App.Port),
		GinMode:   configFile.App.GinMode,
		ClientURL: env("CLIENT_URL", configFile.App.ClientURL),

		DSN: env("DATABASE_DSN", configFile.Database.DSN),

		JWTAccessSecret:  env("JWT_ACCESS_SECRET", configFile.JWT.AccessSecret),
		JWTRefreshSecret: env("JWT_REFRESH_SECRET", configFile.JWT.RefreshSecret),
		JWTIssuer:        configFile.JWT.Issuer,
		AccessTTL:        accTTL,
		RefreshTTL:       refTTL,

		BcryptCost: configFile.Password.BcryptCost,

		OTPLength:       configFile.Secrets.OTPLength,
		OTPTTL:          otpTTL,
		ResetTokenTTL:   resetTTL,
		VerificationTTL: verifyTTL,
		EmailChangeTTL:  changeTTL,

		SMTPHost:      configFile.Mail.SMTPHost,
		SMTPPort:      configFile.Mail.SMTPPort,
		SMTPUser:      configFile.Mail.SMTPUser,
		SMTPPass:      env("SMTP_PASS", configFile.Mail.SMTPPass),
		FromEmail:     configFile.Mail.FromEmail,
		MailQueueSize: configFile.Mail.QueueSize,
		MailWorkers:   configFile.Mail.Workers,

		SeedAdminEmail:    env("SUPER_ADMIN_EMAIL", configFile.Seed.AdminEmail),
		SeedAdminPassword: env("SUPER_ADMIN_PASSWORD", configFile.Seed.AdminPassword),

		CasbinModelPath: configFile.Casbin.ModelPath,
	}

	if cfg.JWTAccessSecret == "" || cfg.JWTRefreshSecret == "" {
		return nil, fmt.Errorf("JWT secrets must be configured")
	}
	if cfg.JWTAccessSecret == cfg.JWTRefreshSecret {
		return nil, fmt.Errorf("access and refresh secrets must differ")
	}
	if cfg.OTPLength <= 0 {
		cfg.OTPLength = 6
	}
	if cfg.MailQueueSize <= 0 {
		cfg.MailQueueSize = 128
	}
	if cfg.MailWorkers <= 0 {
		cfg.MailWorkers = 2
	}

	return cfg, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}
