package middleware

import (
	"encoding/json"
	"log"

	"gopkg.in/telebot.v4"
)

// Logger возвращает middleware, логирующее входящие обновления Telegram в
// формате JSON. Если логгер не передан, используется log.Default().
func Logger(logger ...*log.Logger) telebot.MiddlewareFunc {
	var l *log.Logger
	if len(logger) > 0 {
		l = logger[0]
	} else {
		l = log.Default()
	}
	return func(next telebot.HandlerFunc) telebot.HandlerFunc {
		return func(c telebot.Context) error {
			data, _ := json.MarshalIndent(c.Update(), "", "  ")
			l.Println(string(data))
			return next(c)
		}
	}
}
