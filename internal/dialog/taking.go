package dialog

import (
	"context"
	"fmt"
	"time"

	"github.com/IT-Aziz/testchecker/internal/domain/model"
	"github.com/IT-Aziz/testchecker/internal/messages"
	"github.com/IT-Aziz/testchecker/internal/scoring"
	"github.com/IT-Aziz/testchecker/internal/stats"
	"gopkg.in/telebot.v4"
)

// StartTaking начинает сдачу теста. Все ограничения проверяются до того,
// как студенту будет предложено ввести ответы: истёкший срок и повторная
// сдача отклоняются сразу.
func (e *Engine) StartTaking(c telebot.Context, testID int) error {
	user, err := e.users.GetByTelegramID(context.Background(), c.Sender().ID)
	if err != nil {
		return err
	}
	if user == nil {
		return c.Send(messages.NotRegistered)
	}

	test, err := e.tests.GetByID(context.Background(), testID)
	if err != nil {
		return err
	}
	if test == nil {
		return c.Send(messages.TestNotFound)
	}
	if time.Now().After(test.Deadline) {
		return c.Send(messages.TestExpired)
	}

	taken, err := e.results.Exists(context.Background(), testID, c.Sender().ID)
	if err != nil {
		return err
	}
	if taken {
		return c.Send(messages.AlreadyTaken)
	}

	e.sessions.Set(c.Sender().ID, Session{Kind: KindAwaitingAnswers, Step: 0, TestID: testID})
	intro := fmt.Sprintf(messages.TakeIntroFmt,
		test.Title, len(test.Answers), test.Deadline.Format(model.DeadlineLayout))
	return c.Send(intro, messages.RemoveKeyboard())
}

// stepSubmitAnswers принимает ответы одним сообщением, проверяет их по
// актуальному состоянию теста и фиксирует результат. Пересчёт после
// последующих правок ключа не выполняется.
func (e *Engine) stepSubmitAnswers(c telebot.Context, sess Session) error {
	// Тест перечитывается: пока студент отвечал, тест могли удалить
	// или срок мог истечь.
	test, err := e.tests.GetByID(context.Background(), sess.TestID)
	if err != nil {
		return err
	}
	if test == nil {
		e.sessions.Reset(c.Sender().ID)
		return c.Send(messages.TestNotFound, e.menuFor(c))
	}
	if time.Now().After(test.Deadline) {
		e.sessions.Reset(c.Sender().ID)
		return c.Send(messages.TestExpired, e.menuFor(c))
	}

	answers := scoring.ParseAnswers(c.Text())
	if len(answers) != len(test.Answers) {
		return c.Send(fmt.Sprintf(messages.SubmitBadCount, len(test.Answers), len(answers)))
	}

	score, err := scoring.Score(answers, test.Answers)
	if err != nil {
		return c.Send(messages.GenericError)
	}

	result := model.Result{
		TestID:       sess.TestID,
		UserID:       c.Sender().ID,
		Answers:      answers,
		Score:        score.Percent,
		CorrectCount: score.Correct,
		WrongCount:   score.Wrong,
	}
	if err := e.results.Create(context.Background(), result); err != nil {
		if err == model.ErrDuplicateResult {
			e.sessions.Reset(c.Sender().ID)
			return c.Send(messages.AlreadyTaken, e.menuFor(c))
		}
		return c.Send(messages.GenericError)
	}

	e.sessions.Reset(c.Sender().ID)

	marker := stats.BandFor(score.Percent).Marker()
	summary := fmt.Sprintf(messages.SubmitResultFmt,
		marker, marker, score.Percent, score.Correct, score.Wrong)
	return c.Send(summary, e.menuFor(c))
}
