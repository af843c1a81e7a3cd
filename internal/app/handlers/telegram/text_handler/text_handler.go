package text_handler

import (
	"context"
	"fmt"
	"strings"

	"github.com/IT-Aziz/testchecker/internal/dialog"
	"github.com/IT-Aziz/testchecker/internal/domain/model"
	resultsService "github.com/IT-Aziz/testchecker/internal/domain/results/service"
	testsService "github.com/IT-Aziz/testchecker/internal/domain/tests/service"
	usersService "github.com/IT-Aziz/testchecker/internal/domain/users/service"
	"github.com/IT-Aziz/testchecker/internal/infra/config"
	"github.com/IT-Aziz/testchecker/internal/messages"
	"github.com/IT-Aziz/testchecker/internal/stats"
	"gopkg.in/telebot.v4"
)

// bandMarker возвращает цветовой маркер для балла.
func bandMarker(score float64) string {
	return stats.BandFor(score).Marker()
}

// TextHandler маршрутизирует произвольный текст: сначала активному диалогу,
// затем по кнопкам главного меню.
type TextHandler struct {
	cfg           *config.Config
	engine        *dialog.Engine
	userService   *usersService.UserService
	testService   *testsService.TestService
	resultService *resultsService.ResultService
}

// NewTextHandler возвращает структуру обработчика
func NewTextHandler(
	cfg *config.Config,
	engine *dialog.Engine,
	userService *usersService.UserService,
	testService *testsService.TestService,
	resultService *resultsService.ResultService,
) *TextHandler {
	return &TextHandler{
		cfg:           cfg,
		engine:        engine,
		userService:   userService,
		testService:   testService,
		resultService: resultService,
	}
}

// Handle обрабатывает текстовое сообщение
func (h *TextHandler) Handle(c telebot.Context) error {
	// Активный диалог получает сообщение первым.
	handled, err := h.engine.HandleText(c)
	if handled {
		return err
	}

	ctx := context.Background()
	user, err := h.userService.GetByTelegramID(ctx, c.Sender().ID)
	if err != nil {
		return err
	}
	if user == nil {
		return c.Send(messages.NotRegistered)
	}

	isTeacher := user.Role == model.RoleTeacher || h.cfg.IsAdmin(user.TelegramID)

	switch c.Text() {
	case messages.BtnCreateTest:
		return h.engine.StartAuthoring(c)
	case messages.BtnManageTests:
		if !isTeacher {
			return c.Send(messages.NoTeacherRights)
		}
		return h.sendOwnerTests(c, messages.ManageKeyboard)
	case messages.BtnViewResults:
		if !isTeacher {
			return c.Send(messages.NoTeacherRights)
		}
		return h.sendOwnerTests(c, messages.ResultsKeyboard)
	case messages.BtnAvailableTests:
		return h.sendAvailableTests(c)
	case messages.BtnMyResults:
		return h.sendMyResults(c)
	case messages.BtnManageUsers:
		if !h.cfg.IsAdmin(c.Sender().ID) {
			return c.Send(messages.AdminOnly)
		}
		return h.sendUsers(c)
	}

	return c.Send(messages.MenuHint, messages.MainMenu(user.Role, h.cfg.IsAdmin(user.TelegramID)))
}

// sendOwnerTests показывает тесты преподавателя, по карточке на тест.
// Клавиатура карточки зависит от того, из какого пункта меню пришли.
func (h *TextHandler) sendOwnerTests(c telebot.Context, keyboard func(int) *telebot.ReplyMarkup) error {
	ctx := context.Background()
	tests, err := h.testService.ListByOwner(ctx, c.Sender().ID)
	if err != nil {
		return err
	}
	if len(tests) == 0 {
		return c.Send(messages.NoTests)
	}

	for _, test := range tests {
		count, err := h.resultService.CountByTest(ctx, test.ID)
		if err != nil {
			return err
		}
		card := fmt.Sprintf(messages.ManagedTestFmt,
			test.Title, len(test.Answers), count, test.CreatedAt.Format(model.DeadlineLayout))
		if err := c.Send(card, keyboard(test.ID)); err != nil {
			return err
		}
	}
	return nil
}

// sendAvailableTests показывает ученику тесты с неистёкшим сроком сдачи.
// Уже сданные тесты помечаются баллом и не получают кнопку прохождения.
func (h *TextHandler) sendAvailableTests(c telebot.Context) error {
	ctx := context.Background()
	tests, err := h.testService.ListActive(ctx)
	if err != nil {
		return err
	}
	if len(tests) == 0 {
		return c.Send(messages.NoAvailableTests)
	}

	// Баллы по уже сданным тестам.
	taken := make(map[int]float64)
	results, err := h.resultService.ListByUser(ctx, c.Sender().ID)
	if err != nil {
		return err
	}
	for _, r := range results {
		taken[r.TestID] = r.Score
	}

	authors := make(map[int64]string)
	for _, test := range tests {
		author, ok := authors[test.CreatedBy]
		if !ok {
			if u, err := h.userService.GetByTelegramID(ctx, test.CreatedBy); err == nil && u != nil {
				author = u.FullName()
			}
			authors[test.CreatedBy] = author
		}

		status := messages.StatusNew
		if score, ok := taken[test.ID]; ok {
			status = fmt.Sprintf(messages.StatusDoneFmt, score)
		}
		card := fmt.Sprintf(messages.AvailableTestFmt,
			test.Title, author, len(test.Answers),
			test.Deadline.Format(model.DeadlineLayout), status)

		if _, ok := taken[test.ID]; ok {
			err = c.Send(card)
		} else {
			err = c.Send(card, messages.TakeKeyboard(test.ID, messages.BtnTakeTest))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// sendMyResults показывает ученику его результаты, свежие первыми.
func (h *TextHandler) sendMyResults(c telebot.Context) error {
	results, err := h.resultService.ListByUser(context.Background(), c.Sender().ID)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		return c.Send(messages.NoOwnResults)
	}

	var b strings.Builder
	b.WriteString(messages.MyResultsHeader)
	for _, r := range results {
		b.WriteString(fmt.Sprintf(messages.MyResultFmt,
			r.TestTitle, bandMarker(r.Score), r.Score,
			r.SubmittedAt.Format(model.DeadlineLayout)))
	}
	return c.Send(b.String())
}

// sendUsers показывает администратору всех пользователей и кнопки
// управления преподавателями.
func (h *TextHandler) sendUsers(c telebot.Context) error {
	users, err := h.userService.ListAll(context.Background())
	if err != nil {
		return err
	}
	if len(users) == 0 {
		return c.Send(messages.NoUsers, messages.UsersKeyboard())
	}

	var b strings.Builder
	b.WriteString(messages.UsersHeader)
	for _, u := range users {
		marker := "👤"
		if u.Role == model.RoleTeacher {
			marker = "👨‍🏫"
		}
		b.WriteString(fmt.Sprintf(messages.UserLineFmt, marker, u.FullName(), u.TelegramID))
	}
	return c.Send(b.String(), messages.UsersKeyboard())
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc
func (h *TextHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
