package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port     string `envconfig:"PORT" default:"8080"`
	AppEnv   string `envconfig:"APP_ENV" default:"development"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// postgres, sqlite, dynamodb
	StoreDriver string `envconfig:"STORE_DRIVER" default:"sqlite"`
	DatabaseDSN string `envconfig:"DATABASE_DSN" default:"admin.db"`
	AutoMigrate bool   `envconfig:"AUTO_MIGRATE" default:"true"`

	AWSRegion        string `envconfig:"AWS_REGION" default:"ap-northeast-2"`
	DynamoDBEndpoint string `envconfig:"DYNAMODB_ENDPOINT"`
	ProductTableName string `envconfig:"PRODUCT_TABLE_NAME" default:"products-table"`
	OrderTableName   string `envconfig:"ORDER_TABLE_NAME" default:"orders-table"`
	UserTableName    string `envconfig:"USER_TABLE_NAME" default:"users-table"`
	LocalMode        bool   `envconfig:"LOCAL_MODE" default:"true"` // static credentials for DynamoDB Local

	StorageConfig

	KafkaBrokers string `envconfig:"KAFKA_BROKERS"`
	KafkaTopic   string `envconfig:"KAFKA_TOPIC" default:"product-events"`
}

type StorageConfig struct {
	Root string `envconfig:"STORAGE_ROOT" default:"."`

	// Purchasable files are kept out of the public tree.
	PrivateDir string `envconfig:"STORAGE_PRIVATE_DIR" default:"products"`
	PublicDir  string `envconfig:"STORAGE_PUBLIC_DIR" default:"public"`
	// URL prefix of preview images, also the subdirectory under PublicDir.
	ImagePrefix string `envconfig:"STORAGE_IMAGE_PREFIX" default:"products"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
