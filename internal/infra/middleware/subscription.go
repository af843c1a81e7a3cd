package middleware

import (
	"log"
	"strings"

	"github.com/IT-Aziz/testchecker/internal/messages"
	"gopkg.in/telebot.v4"
)

// channel оборачивает username канала в telebot.Recipient.
type channel string

func (ch channel) Recipient() string { return string(ch) }

// RequireSubscription возвращает middleware, пропускающее обновление только
// если отправитель состоит во всех перечисленных каналах. Пользователи, для
// которых isExempt вернул true, проверку не проходят. При ошибке Telegram API
// обновление пропускается: недоступность канала не должна блокировать бота.
func RequireSubscription(bot *telebot.Bot, channels []string, isExempt func(int64) bool) telebot.MiddlewareFunc {
	return func(next telebot.HandlerFunc) telebot.HandlerFunc {
		return func(c telebot.Context) error {
			if len(channels) == 0 {
				return next(c)
			}
			sender := c.Sender()
			if sender == nil || (isExempt != nil && isExempt(sender.ID)) {
				return next(c)
			}

			for _, ch := range channels {
				name := strings.TrimSpace(ch)
				if name == "" {
					continue
				}
				if !strings.HasPrefix(name, "@") {
					name = "@" + name
				}
				member, err := bot.ChatMemberOf(channel(name), sender)
				if err != nil {
					log.Printf("subscription check failed for %s: %v", name, err)
					continue
				}
				switch member.Role {
				case telebot.Creator, telebot.Administrator, telebot.Member, telebot.Restricted:
					continue
				default:
					return c.Send(messages.SubscriptionRequired + name)
				}
			}
			return next(c)
		}
	}
}
