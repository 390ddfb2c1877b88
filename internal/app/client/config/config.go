package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultStoreAddress = "localhost:3000"
	defaultLogLevel     = "info"
	defaultEnv          = "local"
	defaultConfigDir    = ".boxmate"
)

type Config struct {
	Env          string `mapstructure:"app_env"`
	StoreAddress string `mapstructure:"store_address"`
	LogLevel     string `mapstructure:"log_level"`
	ConfigDir    string `mapstructure:"config_dir"`
	TokenPath    string `mapstructure:"token_path"`
	UserPath     string `mapstructure:"user_path"`
	CachePath    string `mapstructure:"cache_path"`
	EnableTLS    bool   `mapstructure:"enable_tls"`
}

// MustLoad загружает конфигурацию клиента
func MustLoad() *Config {
	// Определяем путь к .env файлу (относительно места запуска)
	envPath := ".env"
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		// Пробуем найти .env в родительской директории
		envPath = "../.env"
	}

	// Загружаем .env файл если существует
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			fmt.Printf("Ошибка загрузки .env файла: %v\n", err)
		}
	}

	viper.AutomaticEnv()

	// Устанавливаем значения по умолчанию
	viper.SetDefault("APP_ENV", defaultEnv)
	viper.SetDefault("STORE_ADDRESS", defaultStoreAddress)
	viper.SetDefault("LOG_LEVEL", defaultLogLevel)
	viper.SetDefault("CONFIG_DIR", defaultConfigDir)
	viper.SetDefault("ENABLE_TLS", false)

	// Получаем домашнюю директорию пользователя
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	// Вычисляем пути для хранения данных
	configDir := viper.GetString("CONFIG_DIR")
	if configDir == defaultConfigDir {
		configDir = filepath.Join(homeDir, configDir)
	}

	// Создаем директории если их нет
	if err := os.MkdirAll(configDir, 0700); err != nil {
		fmt.Printf("Ошибка создания директории конфигурации: %v\n", err)
	}

	config := &Config{
		Env:          viper.GetString("APP_ENV"),
		StoreAddress: viper.GetString("STORE_ADDRESS"),
		LogLevel:     viper.GetString("LOG_LEVEL"),
		ConfigDir:    configDir,
		TokenPath:    filepath.Join(configDir, "token"),
		UserPath:     filepath.Join(configDir, "user.json"),
		CachePath:    filepath.Join(configDir, "snapshot.db"),
		EnableTLS:    viper.GetBool("ENABLE_TLS"),
	}

	// Валидация конфигурации
	if err := config.validate(); err != nil {
		panic(fmt.Sprintf("Ошибка конфигурации: %v", err))
	}

	return config
}

func (c *Config) validate() error {
	if c.StoreAddress == "" {
		return fmt.Errorf("store_address не может быть пустым")
	}
	return nil
}

// IsProd проверяет, prod ли окружение
func (c *Config) IsProd() bool {
	return c.Env == "prod"
}

// IsLocal проверяет, local ли окружение
func (c *Config) IsLocal() bool {
	return c.Env == "local" || c.Env == ""
}
