package main

import (
	"log"
	"os"

	"github.com/IT-Aziz/testchecker/internal/app"
)

func main() {
	log.SetPrefix("[testchecker] ")

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}

	application, err := app.NewApp(configPath)
	if err != nil {
		log.Fatalf("Не удалось инициализировать приложение: %v", err)
	}

	if err := application.ListenAndServe(); err != nil {
		log.Fatalf("Бот завершился с ошибкой: %v", err)
	}
}
