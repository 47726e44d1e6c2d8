package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisTaskDB   int    `mapstructure:"REDIS_TASK_DB"`

	// Shift windows, minutes from midnight. One canonical table for the
	// whole deployment.
	MorningShiftStart int `mapstructure:"MORNING_SHIFT_START"`
	MorningShiftEnd   int `mapstructure:"MORNING_SHIFT_END"`
	EveningShiftStart int `mapstructure:"EVENING_SHIFT_START"`
	EveningShiftEnd   int `mapstructure:"EVENING_SHIFT_END"`

	// Turnaround gap enforced between consecutive bookings for the same
	// technician, in minutes.
	TurnaroundBufferMin int `mapstructure:"TURNAROUND_BUFFER_MIN"`

	// Cron spec for the daily rotation-queue pre-initialization task.
	QueueInitCronSpec string `mapstructure:"QUEUE_INIT_CRON_SPEC"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_TASK_DB", 1)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "padoo")
	viper.SetDefault("MORNING_SHIFT_START", 600) // 10:00
	viper.SetDefault("MORNING_SHIFT_END", 1320)  // 22:00
	viper.SetDefault("EVENING_SHIFT_START", 720) // 12:00
	viper.SetDefault("EVENING_SHIFT_END", 1380)  // 23:00
	viper.SetDefault("TURNAROUND_BUFFER_MIN", 10)
	viper.SetDefault("QUEUE_INIT_CRON_SPEC", "5 9 * * *") // daily, before opening

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// ShiftWindowTable returns the canonical (start, end) minute offsets per shift.
func ShiftWindowTable() map[string][2]int {
	return map[string][2]int{
		"morning": {AppConfig.MorningShiftStart, AppConfig.MorningShiftEnd},
		"evening": {AppConfig.EveningShiftStart, AppConfig.EveningShiftEnd},
	}
}
