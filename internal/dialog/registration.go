package dialog

import (
	"context"
	"strings"

	"github.com/IT-Aziz/testchecker/internal/domain/model"
	"github.com/IT-Aziz/testchecker/internal/messages"
	"gopkg.in/telebot.v4"
)

// StartRegistration начинает диалог регистрации: имя, фамилия, контакт.
func (e *Engine) StartRegistration(c telebot.Context) error {
	e.sessions.Set(c.Sender().ID, Session{Kind: KindRegistration, Step: 0})
	return c.Send(messages.AskFirstName, messages.RemoveKeyboard())
}

func (e *Engine) stepFirstName(c telebot.Context, sess Session) error {
	name := strings.TrimSpace(c.Text())
	if name == "" {
		return c.Send(messages.NeedTextFirstName)
	}

	sess.Data["first_name"] = name
	sess.Step = 1
	e.sessions.Set(c.Sender().ID, sess)
	return c.Send(messages.AskLastName)
}

func (e *Engine) stepLastName(c telebot.Context, sess Session) error {
	name := strings.TrimSpace(c.Text())
	if name == "" {
		return c.Send(messages.NeedTextLastName)
	}

	sess.Data["last_name"] = name
	sess.Step = 2
	e.sessions.Set(c.Sender().ID, sess)
	return c.Send(messages.AskContact, messages.ContactKeyboard())
}

// stepContactPrompt срабатывает, если на шаге контакта пришёл текст вместо
// контакта: напоминаем про кнопку, шаг не меняется.
func (e *Engine) stepContactPrompt(c telebot.Context, _ Session) error {
	return c.Send(messages.NeedContactButton, messages.ContactKeyboard())
}

func (e *Engine) stepContact(c telebot.Context, sess Session) error {
	contact := c.Message().Contact
	if contact == nil {
		return c.Send(messages.NeedContactButton, messages.ContactKeyboard())
	}
	// Принимаем только собственный контакт отправителя: пересланный чужой
	// контакт привязал бы к анкете чужой номер.
	if contact.UserID != c.Sender().ID {
		return c.Send(messages.NeedOwnContact, messages.ContactKeyboard())
	}

	role := model.RoleStudent
	if e.cfg.IsListedTeacher(c.Sender().ID) {
		role = model.RoleTeacher
	}

	user := model.User{
		TelegramID:  c.Sender().ID,
		FirstName:   sess.Data["first_name"],
		LastName:    sess.Data["last_name"],
		PhoneNumber: contact.PhoneNumber,
		Role:        role,
	}

	if err := e.users.Register(context.Background(), user); err != nil {
		if err == model.ErrAlreadyRegistered {
			e.sessions.Reset(c.Sender().ID)
			return c.Send(messages.AlreadyRegistered, e.menuFor(c))
		}
		return c.Send(messages.RegistrationFailed)
	}

	e.sessions.Reset(c.Sender().ID)

	done := messages.RegisteredStudent
	if role == model.RoleTeacher {
		done = messages.RegisteredTeacher
	}
	return c.Send(done, messages.MainMenu(role, e.cfg.IsAdmin(c.Sender().ID)))
}
