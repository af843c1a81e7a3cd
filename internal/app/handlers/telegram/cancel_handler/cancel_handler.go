package cancel_handler

import (
	"github.com/IT-Aziz/testchecker/internal/dialog"
	"gopkg.in/telebot.v4"
)

// CancelHandler структура для обработки команды /cancel
type CancelHandler struct {
	engine *dialog.Engine
}

// NewCancelHandler возвращает структуру обработчика
func NewCancelHandler(engine *dialog.Engine) *CancelHandler {
	return &CancelHandler{engine: engine}
}

// Handle прерывает активный диалог пользователя
func (h *CancelHandler) Handle(c telebot.Context) error {
	return h.engine.Cancel(c)
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc
func (h *CancelHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
