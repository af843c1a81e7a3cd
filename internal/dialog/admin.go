package dialog

import (
	"context"
	"strconv"
	"strings"

	"github.com/IT-Aziz/testchecker/internal/domain/model"
	"github.com/IT-Aziz/testchecker/internal/messages"
	"gopkg.in/telebot.v4"
)

// StartTeacherAssign начинает диалог назначения преподавателя. Только для администратора.
func (e *Engine) StartTeacherAssign(c telebot.Context) error {
	if !e.cfg.IsAdmin(c.Sender().ID) {
		return c.Send(messages.AdminOnly)
	}
	e.sessions.Set(c.Sender().ID, Session{Kind: KindAwaitTeacherID, Step: 0})
	return c.Send(messages.AskTeacherID)
}

// StartTeacherRemoval начинает диалог снятия роли преподавателя. Только для администратора.
func (e *Engine) StartTeacherRemoval(c telebot.Context) error {
	if !e.cfg.IsAdmin(c.Sender().ID) {
		return c.Send(messages.AdminOnly)
	}
	e.sessions.Set(c.Sender().ID, Session{Kind: KindAwaitTeacherRemoval, Step: 0})
	return c.Send(messages.AskRemoveID)
}

func (e *Engine) stepAssignTeacher(c telebot.Context, _ Session) error {
	return e.changeRole(c, model.RoleTeacher, messages.TeacherAssigned)
}

func (e *Engine) stepRemoveTeacher(c telebot.Context, _ Session) error {
	return e.changeRole(c, model.RoleStudent, messages.TeacherRemoved)
}

func (e *Engine) changeRole(c telebot.Context, role string, done string) error {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Text()), 10, 64)
	if err != nil {
		return c.Send(messages.BadUserID)
	}
	// Роль администратора фиксирована конфигурацией, менять её в базе бессмысленно.
	if e.cfg.IsAdmin(id) {
		e.sessions.Reset(c.Sender().ID)
		return c.Send(messages.CannotChangeAdmin, e.menuFor(c))
	}

	if err := e.users.SetRole(context.Background(), id, role); err != nil {
		if err == model.ErrNotFound {
			e.sessions.Reset(c.Sender().ID)
			return c.Send(messages.UserNotFound, e.menuFor(c))
		}
		return c.Send(messages.GenericError)
	}

	e.sessions.Reset(c.Sender().ID)
	return c.Send(done, e.menuFor(c))
}
