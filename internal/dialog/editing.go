package dialog

import (
	"context"
	"strings"
	"time"

	"github.com/IT-Aziz/testchecker/internal/domain/model"
	"github.com/IT-Aziz/testchecker/internal/messages"
	"github.com/IT-Aziz/testchecker/internal/scoring"
	"gopkg.in/telebot.v4"
)

// StartEditing начинает диалог редактирования теста. Чужие тесты может
// править только администратор.
func (e *Engine) StartEditing(c telebot.Context, testID int) error {
	test, err := e.tests.GetByID(context.Background(), testID)
	if err != nil {
		return err
	}
	if test == nil {
		return c.Send(messages.TestNotFound)
	}
	if test.CreatedBy != c.Sender().ID && !e.cfg.IsAdmin(c.Sender().ID) {
		return c.Send(messages.EditForbidden)
	}

	e.sessions.Set(c.Sender().ID, Session{Kind: KindEditing, Step: 0, TestID: testID})
	return c.Send(messages.EditIntro, messages.EditChoiceKeyboard())
}

func (e *Engine) stepEditChoice(c telebot.Context, sess Session) error {
	var prompt string
	switch strings.TrimSpace(c.Text()) {
	case "1":
		prompt = messages.AskNewTitle
	case "2":
		prompt = messages.AskNewAnswers
	case "3":
		prompt = messages.AskNewDeadline
	default:
		return c.Send(messages.BadEditChoice)
	}

	sess.Data["choice"] = strings.TrimSpace(c.Text())
	sess.Step = 1
	e.sessions.Set(c.Sender().ID, sess)
	return c.Send(prompt, messages.RemoveKeyboard())
}

// stepEditValue проверяет новое значение и применяет ровно одну правку:
// остальные поля теста остаются нетронутыми.
func (e *Engine) stepEditValue(c telebot.Context, sess Session) error {
	var update model.TestUpdate
	switch sess.Data["choice"] {
	case "1":
		title := strings.TrimSpace(c.Text())
		if title == "" {
			return c.Send(messages.NeedTestTitle)
		}
		update.Title = &title
	case "2":
		answers := scoring.ParseAnswers(c.Text())
		if len(answers) == 0 {
			return c.Send(messages.BadAnswersFormat)
		}
		update.Answers = answers
	case "3":
		deadline, err := time.Parse(model.DeadlineLayout, strings.TrimSpace(c.Text()))
		if err != nil {
			return c.Send(messages.BadDeadline)
		}
		update.Deadline = &deadline
	}

	if err := e.tests.Update(context.Background(), sess.TestID, update); err != nil {
		if err == model.ErrNotFound {
			e.sessions.Reset(c.Sender().ID)
			return c.Send(messages.TestNotFound, e.menuFor(c))
		}
		return c.Send(messages.GenericError)
	}

	e.sessions.Reset(c.Sender().ID)
	return c.Send(messages.TestUpdated, e.menuFor(c))
}
