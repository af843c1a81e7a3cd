package start_handler

import (
	"context"

	"github.com/IT-Aziz/testchecker/internal/dialog"
	usersService "github.com/IT-Aziz/testchecker/internal/domain/users/service"
	"github.com/IT-Aziz/testchecker/internal/infra/config"
	"github.com/IT-Aziz/testchecker/internal/messages"
	"gopkg.in/telebot.v4"
)

// StartHandler структура для обработки команды /start
type StartHandler struct {
	cfg         *config.Config
	engine      *dialog.Engine
	userService *usersService.UserService
}

// NewStartHandler возвращает структуру обработчика
func NewStartHandler(cfg *config.Config, engine *dialog.Engine, userService *usersService.UserService) *StartHandler {
	return &StartHandler{cfg: cfg, engine: engine, userService: userService}
}

// Handle обрабатывает команду /start: для новых пользователей начинает
// регистрацию, для зарегистрированных показывает главное меню. Активный
// диалог при этом сбрасывается: команда важнее недоведённого шага.
func (h *StartHandler) Handle(c telebot.Context) error {
	h.engine.Abandon(c.Sender().ID)

	user, err := h.userService.GetByTelegramID(context.Background(), c.Sender().ID)
	if err != nil {
		return err
	}
	if user == nil {
		if err := c.Send(messages.Welcome); err != nil {
			return err
		}
		return h.engine.StartRegistration(c)
	}

	menu := messages.MainMenu(user.Role, h.cfg.IsAdmin(user.TelegramID))
	return c.Send(messages.MainMenuTitle, menu)
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc
func (h *StartHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
