package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config содержит параметры конфигурации бота.
type Config struct {
	TelegramBot struct {
		Token string `yaml:"token"`
	} `yaml:"telegram_bot"`
	Admin struct {
		ID         int64   `yaml:"id"`          // Telegram ID администратора
		TeacherIDs []int64 `yaml:"teacher_ids"` // пользователи, получающие роль преподавателя при регистрации
	} `yaml:"admin"`
	RequiredChannels []string `yaml:"required_channels"` // каналы, подписка на которые обязательна
	Database         struct {
		Host     string `yaml:"host"`
		Port     string `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Name     string `yaml:"dbname"`
	} `yaml:"database"`
	Debug bool `yaml:"debug"`
}

// LoadConfig загружает конфигурацию из YAML-файла. Переменные окружения
// (в том числе из файла .env) имеют приоритет над значениями из файла.
func LoadConfig(filename string) (*Config, error) {
	_ = godotenv.Load()

	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}

	defer func(f *os.File) {
		if err := f.Close(); err != nil {
			fmt.Println("f.Close() failed ", err)
		}
	}(f)

	config := &Config{}
	if err := yaml.NewDecoder(f).Decode(config); err != nil {
		return nil, err
	}

	applyEnvOverrides(config)

	if config.TelegramBot.Token == "" {
		return nil, fmt.Errorf("telegram bot token is not set")
	}

	return config, nil
}

// applyEnvOverrides накладывает значения из переменных окружения.
func applyEnvOverrides(c *Config) {
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		c.TelegramBot.Token = token
	}
	if adminStr := os.Getenv("ADMIN_ID"); adminStr != "" {
		if id, err := strconv.ParseInt(strings.TrimSpace(adminStr), 10, 64); err == nil {
			c.Admin.ID = id
		}
	}
	if teacherStr := os.Getenv("TEACHER_IDS"); teacherStr != "" {
		var ids []int64
		for _, s := range strings.Split(teacherStr, ",") {
			if id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil {
				ids = append(ids, id)
			}
		}
		c.Admin.TeacherIDs = ids
	}
	if channels := os.Getenv("REQUIRED_CHANNELS"); channels != "" {
		c.RequiredChannels = strings.Split(channels, ",")
	}
}

// IsAdmin сообщает, является ли пользователь администратором.
func (c *Config) IsAdmin(telegramID int64) bool {
	return telegramID == c.Admin.ID
}

// IsListedTeacher сообщает, входит ли пользователь в список преподавателей
// из конфигурации. Администратор считается преподавателем.
func (c *Config) IsListedTeacher(telegramID int64) bool {
	if c.IsAdmin(telegramID) {
		return true
	}
	for _, id := range c.Admin.TeacherIDs {
		if telegramID == id {
			return true
		}
	}
	return false
}
