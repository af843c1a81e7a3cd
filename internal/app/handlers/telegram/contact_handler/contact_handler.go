package contact_handler

import (
	"github.com/IT-Aziz/testchecker/internal/dialog"
	"github.com/IT-Aziz/testchecker/internal/messages"
	"gopkg.in/telebot.v4"
)

// ContactHandler структура для обработки присланных контактов
type ContactHandler struct {
	engine *dialog.Engine
}

// NewContactHandler возвращает структуру обработчика
func NewContactHandler(engine *dialog.Engine) *ContactHandler {
	return &ContactHandler{engine: engine}
}

// Handle передаёт контакт активному диалогу регистрации. Контакт вне
// регистрации ни к чему не привязан.
func (h *ContactHandler) Handle(c telebot.Context) error {
	handled, err := h.engine.HandleContact(c)
	if handled {
		return err
	}
	return c.Send(messages.MenuHint)
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc
func (h *ContactHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
