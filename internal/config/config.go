package config

import (
	"log"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env              string     `yaml:"env" env-default:"local"`
	StoragePath      string     `yaml:"storage_path" env:"STORAGE_PATH" env-required:"true"`
	SessionStorePath string     `yaml:"session_store_path" env-default:"sessions.db"`
	HTTP             HTTPConfig `yaml:"http"`
	JWT              JWTConfig  `yaml:"jwt"`
}

type HTTPConfig struct {
	Port int `yaml:"port" env-default:"8082"`
}

type JWTConfig struct {
	Secret string `yaml:"secret" env:"JWT_SECRET" env-required:"true"`
}

func Load(path string) *Config {
	var config Config
	err := cleanenv.ReadConfig(path, &config)
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return &config
}
