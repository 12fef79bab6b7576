package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type PostgreSQLConfig struct {
	DBHost     string
	DBName     string
	DBPort     string
	DBUsername string
	DBPassword string
}

type JWTConfig struct {
	Secret        string
	Issuer        string
	Audience      string
	ExpiryMinutes int
}

type VerificationConfig struct {
	PersonalNumberHost string
	PhoneHost          string
	PhoneAPIKey        string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Sender   string
	Password string
}

type TracingConfig struct {
	CollectorHost string
}

type Config struct {
	ServicePort        string
	MetricsPort        string
	Environment        string
	JobInitialStatus   string
	PostgreSQLConfig   PostgreSQLConfig
	JWTConfig          JWTConfig
	VerificationConfig VerificationConfig
	SMTPConfig         SMTPConfig
	TracingConfig      TracingConfig
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		ServicePort:      os.Getenv("SERVICE_PORT"),
		MetricsPort:      os.Getenv("METRICS_PORT"),
		Environment:      os.Getenv("ENVIRONMENT"),
		JobInitialStatus: os.Getenv("JOB_INITIAL_STATUS"),
		PostgreSQLConfig: PostgreSQLConfig{
			DBHost:     os.Getenv("DB_HOST"),
			DBName:     os.Getenv("DB_NAME"),
			DBPort:     os.Getenv("DB_PORT"),
			DBUsername: os.Getenv("DB_USERNAME"),
			DBPassword: os.Getenv("DB_PASSWORD"),
		},
		JWTConfig: JWTConfig{
			Secret:   os.Getenv("JWT_SECRET"),
			Issuer:   os.Getenv("JWT_ISSUER"),
			Audience: os.Getenv("JWT_AUDIENCE"),
		},
		VerificationConfig: VerificationConfig{
			PersonalNumberHost: os.Getenv("PERSONAL_NUMBER_VERIFICATION_HOST"),
			PhoneHost:          os.Getenv("PHONE_VALIDATION_HOST"),
			PhoneAPIKey:        os.Getenv("PHONE_VALIDATION_API_KEY"),
		},
		SMTPConfig: SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Sender:   os.Getenv("SMTP_SENDER"),
			Password: os.Getenv("SMTP_PASSWORD"),
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
	}

	if conf.JobInitialStatus == "" {
		conf.JobInitialStatus = "draft"
	}

	expiryMinutes, err := strconv.Atoi(os.Getenv("JWT_EXPIRY_MINUTES"))
	if err != nil || expiryMinutes <= 0 {
		expiryMinutes = 60
	}
	conf.JWTConfig.ExpiryMinutes = expiryMinutes

	smtpPort, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		smtpPort = 587
	}
	conf.SMTPConfig.Port = smtpPort

	return &conf
}
