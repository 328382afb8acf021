package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env          string             `yaml:"env" env-default:"local"`
	Gateway      HTTPConfig         `yaml:"gateway"`
	Order        HTTPConfig         `yaml:"order"`
	Inventory    InventoryConfig    `yaml:"inventory"`
	Notification NotificationConfig `yaml:"notification"`
	Endpoints    EndpointsConfig    `yaml:"endpoints"`
	Kafka        KafkaConfig        `yaml:"kafka"`
	Postgres     PostgresConfig     `yaml:"postgres"`
}

type HTTPConfig struct {
	Port int `yaml:"port"`
}

type InventoryConfig struct {
	Port int `yaml:"port"`
	// NotifyTransport selects how the inventory service reaches the
	// notification service: "broker" publishes to the queue, "http" posts
	// straight to its /notify ingress. Both sides honor the same contract.
	NotifyTransport string `yaml:"notify_transport" env-default:"broker"`
}

type NotificationConfig struct {
	Port int `yaml:"port"`
}

// EndpointsConfig holds the base URLs services use to reach each other.
type EndpointsConfig struct {
	Gateway       string        `yaml:"gateway"`
	Order         string        `yaml:"order"`
	Inventory     string        `yaml:"inventory"`
	Notification  string        `yaml:"notification"`
	ClientTimeout time.Duration `yaml:"client_timeout" env-default:"5s"`
}

type KafkaConfig struct {
	BrokerList        []string `yaml:"broker_list"`
	NotificationTopic string   `yaml:"notification_topic" env-default:"notification-order"`
	ConsumerGroup     string   `yaml:"consumer_group" env-default:"notification-service"`
}

type PostgresConfig struct {
	Port    string `yaml:"port"`
	Host    string `yaml:"host"`
	DbName  string `yaml:"db_name"`
	User    string `yaml:"user"`
	Pwd     string `yaml:"password"`
	SslMode string `yaml:"sslmode"`
}

func InitConfig() Config {
	configPath := getConfigPath()

	if configPath == "" {
		panic("config path is not set")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("empty config path: " + err.Error())
	}

	return cfg
}

func getConfigPath() string {
	var path string

	flag.StringVar(&path, "config", "", "path to config file")
	flag.Parse()

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	return path
}
