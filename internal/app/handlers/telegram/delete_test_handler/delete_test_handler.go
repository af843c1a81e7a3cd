package delete_test_handler

import (
	"context"
	"strconv"

	"github.com/IT-Aziz/testchecker/internal/dialog"
	"github.com/IT-Aziz/testchecker/internal/domain/model"
	testsService "github.com/IT-Aziz/testchecker/internal/domain/tests/service"
	"github.com/IT-Aziz/testchecker/internal/infra/config"
	"github.com/IT-Aziz/testchecker/internal/messages"
	"gopkg.in/telebot.v4"
)

// DeleteTestHandler структура для обработки кнопки «Удалить»
type DeleteTestHandler struct {
	cfg         *config.Config
	engine      *dialog.Engine
	testService *testsService.TestService
}

// NewDeleteTestHandler возвращает структуру обработчика
func NewDeleteTestHandler(cfg *config.Config, engine *dialog.Engine, testService *testsService.TestService) *DeleteTestHandler {
	return &DeleteTestHandler{cfg: cfg, engine: engine, testService: testService}
}

// Handle удаляет тест вместе с результатами. Чужой тест может удалить
// только администратор.
func (h *DeleteTestHandler) Handle(c telebot.Context) error {
	if err := c.Respond(); err != nil {
		return err
	}

	testID, err := strconv.Atoi(c.Data())
	if err != nil {
		return c.Send(messages.TestNotFound)
	}

	ctx := context.Background()
	test, err := h.testService.GetByID(ctx, testID)
	if err != nil {
		return err
	}
	if test == nil {
		return c.Send(messages.TestNotFound)
	}
	if test.CreatedBy != c.Sender().ID && !h.cfg.IsAdmin(c.Sender().ID) {
		return c.Send(messages.DeleteForbidden)
	}

	h.engine.Abandon(c.Sender().ID)

	if err := h.testService.Delete(ctx, testID); err != nil {
		if err == model.ErrNotFound {
			return c.Send(messages.TestNotFound)
		}
		return err
	}
	return c.Send(messages.TestDeleted)
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc
func (h *DeleteTestHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
