package config

import (
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	devConfigPath = "config/dev"
	defaultName   = "config"
)

type Config struct {
	Server ServerConfig    `mapstructure:"server"`
	Store  FileStoreConfig `mapstructure:"filestore"`
	Log    LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host" validate:"required"`
	Port string `mapstructure:"port" validate:"required"`
}

// FileStoreConfig selects and parameterizes the storage backend. Root is the
// flat directory served by the disk backend ("." serves the process working
// directory); the remaining fields configure the s3 backend.
type FileStoreConfig struct {
	Backend   string `mapstructure:"backend" validate:"required,oneof=disk s3"`
	Root      string `mapstructure:"root" validate:"required_if=Backend disk"`
	Endpoint  string `mapstructure:"endpoint" validate:"required_if=Backend s3"`
	AccessKey string `mapstructure:"access_key" validate:"required_if=Backend s3"`
	SecretKey string `mapstructure:"secret_key" validate:"required_if=Backend s3"`
	Bucket    string `mapstructure:"bucket" validate:"required_if=Backend s3"`
	UseSSL    bool   `mapstructure:"use_ssl"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

// NewConfig loads the YAML config named by CONFIG_PATH/CONFIG_NAME (default
// config/dev/config.yaml). Any key can be overridden through the environment,
// dots replaced by underscores (filestore.root -> FILESTORE_ROOT).
func NewConfig() (Config, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = devConfigPath
	}
	name := os.Getenv("CONFIG_NAME")
	if name == "" {
		name = defaultName
	}

	v := viper.New()
	v.AddConfigPath(configPath)
	v.SetConfigName(name)
	v.SetConfigType("yaml")

	v.AutomaticEnv()
	v.SetEnvPrefix("")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	var config Config
	if err := v.ReadInConfig(); err != nil {
		return config, err
	}
	if err := v.Unmarshal(&config); err != nil {
		return config, err
	}

	return config, validator.New().Struct(config)
}
