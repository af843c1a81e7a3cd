package dialog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/IT-Aziz/testchecker/internal/domain/model"
	"github.com/IT-Aziz/testchecker/internal/messages"
	"github.com/IT-Aziz/testchecker/internal/scoring"
	"gopkg.in/telebot.v4"
)

// StartAuthoring начинает диалог создания теста. Доступен только
// зарегистрированным преподавателям и администратору.
func (e *Engine) StartAuthoring(c telebot.Context) error {
	user, err := e.users.GetByTelegramID(context.Background(), c.Sender().ID)
	if err != nil {
		return err
	}
	if user == nil {
		return c.Send(messages.NotRegistered)
	}
	if user.Role != model.RoleTeacher && !e.cfg.IsAdmin(user.TelegramID) {
		return c.Send(messages.NoTeacherRights)
	}

	e.sessions.Set(c.Sender().ID, Session{Kind: KindAuthoring, Step: 0})
	return c.Send(messages.AskTestTitle, messages.RemoveKeyboard())
}

func (e *Engine) stepTestTitle(c telebot.Context, sess Session) error {
	title := strings.TrimSpace(c.Text())
	if title == "" {
		return c.Send(messages.NeedTestTitle)
	}

	sess.Data["title"] = title
	sess.Step = 1
	e.sessions.Set(c.Sender().ID, sess)
	return c.Send(messages.AskTestAnswers)
}

func (e *Engine) stepTestAnswers(c telebot.Context, sess Session) error {
	answers := scoring.ParseAnswers(c.Text())
	if len(answers) == 0 {
		return c.Send(messages.BadAnswersFormat)
	}

	sess.Data["answers"] = strings.Join(answers, "\n")
	sess.Step = 2
	e.sessions.Set(c.Sender().ID, sess)
	return c.Send(messages.AskTestDeadline)
}

func (e *Engine) stepTestDeadline(c telebot.Context, sess Session) error {
	deadline, err := time.Parse(model.DeadlineLayout, strings.TrimSpace(c.Text()))
	if err != nil {
		return c.Send(messages.BadDeadline)
	}

	test := model.Test{
		Title:     sess.Data["title"],
		Answers:   strings.Split(sess.Data["answers"], "\n"),
		Deadline:  deadline,
		CreatedBy: c.Sender().ID,
	}

	testID, err := e.tests.Create(context.Background(), test)
	if err != nil {
		return c.Send(messages.GenericError)
	}

	e.sessions.Reset(c.Sender().ID)

	if err := c.Send(messages.TestCreated, e.menuFor(c)); err != nil {
		return err
	}

	author := ""
	if user, err := e.users.GetByTelegramID(context.Background(), c.Sender().ID); err == nil && user != nil {
		author = user.FullName()
	}
	card := fmt.Sprintf(messages.TestCardFmt,
		test.Title, author, len(test.Answers), deadline.Format(model.DeadlineLayout))
	return c.Send(card, messages.ManageKeyboard(testID))
}
