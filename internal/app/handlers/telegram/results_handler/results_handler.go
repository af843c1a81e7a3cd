package results_handler

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	resultsRepo "github.com/IT-Aziz/testchecker/internal/domain/results/repository"
	resultsService "github.com/IT-Aziz/testchecker/internal/domain/results/service"
	testsService "github.com/IT-Aziz/testchecker/internal/domain/tests/service"
	"github.com/IT-Aziz/testchecker/internal/infra/config"
	"github.com/IT-Aziz/testchecker/internal/messages"
	"github.com/IT-Aziz/testchecker/internal/stats"
	"gopkg.in/telebot.v4"
)

// ResultsHandler структура для обработки кнопки «Результаты» карточки теста
type ResultsHandler struct {
	cfg           *config.Config
	testService   *testsService.TestService
	resultService *resultsService.ResultService
}

// NewResultsHandler возвращает структуру обработчика
func NewResultsHandler(cfg *config.Config, testService *testsService.TestService, resultService *resultsService.ResultService) *ResultsHandler {
	return &ResultsHandler{cfg: cfg, testService: testService, resultService: resultService}
}

// Handle показывает результаты теста, свежие сдачи первыми. Чужие тесты
// доступны только администратору.
func (h *ResultsHandler) Handle(c telebot.Context) error {
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
		return c.Send(messages.ResultsForbidden)
	}

	results, err := h.resultService.ListByTest(ctx, testID, resultsRepo.BySubmittedDesc)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		return c.Send(messages.NoResultsYet)
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf(messages.ResultsHeaderFmt, test.Title))
	for _, r := range results {
		marker := stats.BandFor(r.Score).Marker()
		name := strings.TrimSpace(r.FirstName + " " + r.LastName)
		b.WriteString(fmt.Sprintf(messages.ResultLineFmt, marker, name, r.Score))
	}
	return c.Send(b.String(), messages.ResultsKeyboard(testID))
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc
func (h *ResultsHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
