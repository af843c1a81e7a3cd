package middleware

import (
	"github.com/IT-Aziz/testchecker/internal/infra/sequencer"
	"gopkg.in/telebot.v4"
)

// Sequenced возвращает middleware, пропускающее обновления каждого
// пользователя через его личную очередь: сообщения одного человека
// обрабатываются строго по одному в порядке прихода, разные люди друг
// друга не задерживают.
//
// Обработчик выполняется асинхронно, поэтому его ошибка не может быть
// возвращена боту обычным путём и передаётся в onError.
func Sequenced(seq *sequencer.Sequencer, onError func(error, telebot.Context)) telebot.MiddlewareFunc {
	return func(next telebot.HandlerFunc) telebot.HandlerFunc {
		return func(c telebot.Context) error {
			sender := c.Sender()
			if sender == nil {
				return next(c)
			}
			seq.Do(sender.ID, func() {
				if err := next(c); err != nil && onError != nil {
					onError(err, c)
				}
			})
			return nil
		}
	}
}
