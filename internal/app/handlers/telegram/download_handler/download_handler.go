package download_handler

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"time"

	resultsRepo "github.com/IT-Aziz/testchecker/internal/domain/results/repository"
	resultsService "github.com/IT-Aziz/testchecker/internal/domain/results/service"
	testsService "github.com/IT-Aziz/testchecker/internal/domain/tests/service"
	usersService "github.com/IT-Aziz/testchecker/internal/domain/users/service"
	"github.com/IT-Aziz/testchecker/internal/infra/config"
	"github.com/IT-Aziz/testchecker/internal/messages"
	"github.com/IT-Aziz/testchecker/internal/report"
	"github.com/IT-Aziz/testchecker/internal/stats"
	"gopkg.in/telebot.v4"
)

// DownloadHandler структура для обработки кнопки «Скачать результаты»
type DownloadHandler struct {
	cfg           *config.Config
	userService   *usersService.UserService
	testService   *testsService.TestService
	resultService *resultsService.ResultService
}

// NewDownloadHandler возвращает структуру обработчика
func NewDownloadHandler(
	cfg *config.Config,
	userService *usersService.UserService,
	testService *testsService.TestService,
	resultService *resultsService.ResultService,
) *DownloadHandler {
	return &DownloadHandler{
		cfg:           cfg,
		userService:   userService,
		testService:   testService,
		resultService: resultService,
	}
}

// Handle формирует PDF-отчёт по тесту и отправляет его файлом.
// Чужие тесты доступны только администратору.
func (h *DownloadHandler) Handle(c telebot.Context) error {
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

	if err := c.Send(messages.PreparingDownload); err != nil {
		return err
	}

	rows, err := h.resultService.ListByTest(ctx, testID, resultsRepo.ByScoreDesc)
	if err != nil {
		return err
	}

	scores := make([]float64, 0, len(rows))
	for _, r := range rows {
		scores = append(scores, r.Score)
	}
	summary, _ := stats.Aggregate(scores)

	author := ""
	if u, err := h.userService.GetByTelegramID(ctx, test.CreatedBy); err == nil && u != nil {
		author = u.FullName()
	}

	pdf, err := report.Generate(report.Data{
		Test:    *test,
		Author:  author,
		Rows:    rows,
		Summary: summary,
	})
	if err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}

	now := time.Now()
	doc := &telebot.Document{
		File:     telebot.FromReader(bytes.NewReader(pdf)),
		FileName: report.Filename(test.Title, now),
		Caption: fmt.Sprintf(messages.ReportCaptionFmt,
			test.Title, now.Format("02.01.2006 15:04")),
	}
	return c.Send(doc)
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc
func (h *DownloadHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
