package dialog

import (
	"context"

	"github.com/IT-Aziz/testchecker/internal/domain/model"
	"github.com/IT-Aziz/testchecker/internal/infra/config"
	"github.com/IT-Aziz/testchecker/internal/messages"
	"gopkg.in/telebot.v4"
)

// Users — операции над пользователями, нужные диалогам.
type Users interface {
	Register(ctx context.Context, user model.User) error
	GetByTelegramID(ctx context.Context, telegramID int64) (*model.User, error)
	SetRole(ctx context.Context, telegramID int64, role string) error
}

// Tests — операции над тестами, нужные диалогам.
type Tests interface {
	Create(ctx context.Context, test model.Test) (int, error)
	GetByID(ctx context.Context, id int) (*model.Test, error)
	Update(ctx context.Context, id int, update model.TestUpdate) error
}

// Results — операции над результатами, нужные диалогам.
type Results interface {
	Create(ctx context.Context, result model.Result) error
	Exists(ctx context.Context, testID int, userID int64) (bool, error)
}

// stepKey адресует один шаг диалога: вид диалога и номер шага в нём.
type stepKey struct {
	kind Kind
	step int
}

type stepFunc func(e *Engine, c telebot.Context, sess Session) error

// steps — таблица переходов. Каждое текстовое сообщение пользователя с
// активным диалогом обрабатывается ровно одной функцией из этой таблицы.
var steps = map[stepKey]stepFunc{
	{KindRegistration, 0}: (*Engine).stepFirstName,
	{KindRegistration, 1}: (*Engine).stepLastName,
	{KindRegistration, 2}: (*Engine).stepContactPrompt,

	{KindAuthoring, 0}: (*Engine).stepTestTitle,
	{KindAuthoring, 1}: (*Engine).stepTestAnswers,
	{KindAuthoring, 2}: (*Engine).stepTestDeadline,

	{KindEditing, 0}: (*Engine).stepEditChoice,
	{KindEditing, 1}: (*Engine).stepEditValue,

	{KindAwaitingAnswers, 0}: (*Engine).stepSubmitAnswers,

	{KindAwaitTeacherID, 0}:      (*Engine).stepAssignTeacher,
	{KindAwaitTeacherRemoval, 0}: (*Engine).stepRemoveTeacher,
}

// Engine ведёт пошаговые диалоги: регистрацию, создание и редактирование
// тестов, сдачу ответов и назначение преподавателей. Диалоги разных
// пользователей не пересекаются.
type Engine struct {
	cfg      *config.Config
	sessions *SessionStore
	users    Users
	tests    Tests
	results  Results
}

// NewEngine создает новый экземпляр Engine
func NewEngine(cfg *config.Config, sessions *SessionStore, users Users, tests Tests, results Results) *Engine {
	return &Engine{
		cfg:      cfg,
		sessions: sessions,
		users:    users,
		tests:    tests,
		results:  results,
	}
}

// HandleText обрабатывает текстовое сообщение в рамках активного диалога.
// Возвращает false, если активного диалога нет и сообщение должно уйти
// в обычную маршрутизацию по меню.
func (e *Engine) HandleText(c telebot.Context) (bool, error) {
	sess := e.sessions.GetOrCreate(c.Sender().ID)
	if sess.Kind == KindNone {
		return false, nil
	}

	if c.Text() == messages.BtnCancel {
		return true, e.cancel(c)
	}

	fn, ok := steps[stepKey{sess.Kind, sess.Step}]
	if !ok {
		// Сессия в неизвестном состоянии: сбрасываем, чтобы пользователь не застрял.
		e.sessions.Reset(c.Sender().ID)
		return false, nil
	}
	return true, fn(e, c, sess)
}

// HandleContact обрабатывает присланный контакт. Контакт ожидается только
// на последнем шаге регистрации, в остальных случаях он игнорируется.
func (e *Engine) HandleContact(c telebot.Context) (bool, error) {
	sess := e.sessions.GetOrCreate(c.Sender().ID)
	if sess.Kind != KindRegistration || sess.Step != 2 {
		return false, nil
	}
	return true, e.stepContact(c, sess)
}

// Cancel обрабатывает явную отмену (/cancel). Если диалога нет, сообщает об этом.
func (e *Engine) Cancel(c telebot.Context) error {
	sess := e.sessions.GetOrCreate(c.Sender().ID)
	if sess.Kind == KindNone {
		return c.Send(messages.NothingToDo)
	}
	return e.cancel(c)
}

// Abandon молча сбрасывает активный диалог пользователя. Вызывается, когда
// пользователь вместо ответа на шаг отправляет команду или кнопку: команда
// побеждает, недоведённый диалог забывается.
func (e *Engine) Abandon(userID int64) {
	e.sessions.Reset(userID)
}

func (e *Engine) cancel(c telebot.Context) error {
	e.sessions.Reset(c.Sender().ID)
	return c.Send(messages.Cancelled, e.menuFor(c))
}

// menuFor возвращает главное меню по роли отправителя. Для незарегистрированных
// пользователей клавиатура просто убирается.
func (e *Engine) menuFor(c telebot.Context) *telebot.ReplyMarkup {
	user, err := e.users.GetByTelegramID(context.Background(), c.Sender().ID)
	if err != nil || user == nil {
		return messages.RemoveKeyboard()
	}
	return messages.MainMenu(user.Role, e.cfg.IsAdmin(user.TelegramID))
}
