package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Source tells where the database configuration came from. The switch is
// all-or-nothing: if DB_HOST is set in the environment the whole database
// block comes from environment variables, otherwise the whole of it comes
// from config.json.
type Source string

const (
	SourceEnv  Source = "env"
	SourceFile Source = "file"
)

const (
	defaultPort         = 3000
	defaultDBPort       = 3306
	defaultMaxOpenConns = 5
)

type Config struct {
	Source Source
	Server ServerConfig
	DB     DBConfig
}

type ServerConfig struct {
	Port int
}

type DBConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	User         string `mapstructure:"user"`
	Password     string `mapstructure:"password"`
	Name         string `mapstructure:"database"`
	SSL          bool   `mapstructure:"ssl"`
	MaxOpenConns int    `mapstructure:"maxOpenConns"`
}

// Load resolves the configuration once at startup. A .env file is applied
// to the environment first when present, then the source is picked on the
// presence of DB_HOST.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{Port: serverPort()},
	}

	if os.Getenv("DB_HOST") != "" {
		cfg.Source = SourceEnv
		cfg.DB = dbFromEnv()
	} else {
		cfg.Source = SourceFile
		db, err := dbFromFile()
		if err != nil {
			return nil, err
		}
		cfg.DB = db
	}

	if cfg.DB.Port == 0 {
		cfg.DB.Port = defaultDBPort
	}
	if cfg.DB.MaxOpenConns == 0 {
		cfg.DB.MaxOpenConns = defaultMaxOpenConns
	}

	return cfg, nil
}

func serverPort() int {
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			return p
		}
	}
	return defaultPort
}

func dbFromEnv() DBConfig {
	port, _ := strconv.Atoi(os.Getenv("DB_PORT"))
	return DBConfig{
		Host:     os.Getenv("DB_HOST"),
		Port:     port,
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     os.Getenv("DB_NAME"),
		SSL:      os.Getenv("DB_SSL") == "true",
	}
}

func dbFromFile() (DBConfig, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath("./")
	v.AddConfigPath("/etc/servicetrack/")

	if err := v.ReadInConfig(); err != nil {
		return DBConfig{}, fmt.Errorf("failed to read config.json: %w", err)
	}

	var file struct {
		Database DBConfig `mapstructure:"database"`
	}
	if err := v.Unmarshal(&file); err != nil {
		return DBConfig{}, fmt.Errorf("failed to unmarshal config.json: %w", err)
	}

	return file.Database, nil
}
