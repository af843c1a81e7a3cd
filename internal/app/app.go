package app

import (
	"fmt"
	"log"
	"time"

	"github.com/IT-Aziz/testchecker/internal/app/handlers/telegram/add_teacher_handler"
	"github.com/IT-Aziz/testchecker/internal/app/handlers/telegram/cancel_handler"
	"github.com/IT-Aziz/testchecker/internal/app/handlers/telegram/contact_handler"
	"github.com/IT-Aziz/testchecker/internal/app/handlers/telegram/delete_test_handler"
	"github.com/IT-Aziz/testchecker/internal/app/handlers/telegram/download_handler"
	"github.com/IT-Aziz/testchecker/internal/app/handlers/telegram/edit_test_handler"
	"github.com/IT-Aziz/testchecker/internal/app/handlers/telegram/remove_teacher_handler"
	"github.com/IT-Aziz/testchecker/internal/app/handlers/telegram/results_handler"
	"github.com/IT-Aziz/testchecker/internal/app/handlers/telegram/start_handler"
	"github.com/IT-Aziz/testchecker/internal/app/handlers/telegram/take_test_handler"
	"github.com/IT-Aziz/testchecker/internal/app/handlers/telegram/text_handler"
	"github.com/IT-Aziz/testchecker/internal/dialog"
	resultsRepo "github.com/IT-Aziz/testchecker/internal/domain/results/repository"
	resultsService "github.com/IT-Aziz/testchecker/internal/domain/results/service"
	testsRepo "github.com/IT-Aziz/testchecker/internal/domain/tests/repository"
	testsService "github.com/IT-Aziz/testchecker/internal/domain/tests/service"
	"github.com/IT-Aziz/testchecker/internal/domain/users/repository"
	"github.com/IT-Aziz/testchecker/internal/domain/users/service"
	"github.com/IT-Aziz/testchecker/internal/infra/config"
	"github.com/IT-Aziz/testchecker/internal/infra/middleware"
	"github.com/IT-Aziz/testchecker/internal/infra/sequencer"
	"github.com/IT-Aziz/testchecker/internal/messages"
	"github.com/jackc/pgx/v5/pgxpool"
	"gopkg.in/telebot.v4"
)

type Services struct {
	userService   *service.UserService
	testService   *testsService.TestService
	resultService *resultsService.ResultService
}

type App struct {
	config   *config.Config
	bot      *telebot.Bot
	db       *pgxpool.Pool
	sessions *dialog.SessionStore
	engine   *dialog.Engine
	seq      *sequencer.Sequencer

	Services
}

func NewApp(configPath string) (*App, error) {
	configImpl, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("config.LoadConfig: %w", err)
	}

	db, err := InitDatabase(configImpl)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	app := &App{
		config:   configImpl,
		db:       db,
		sessions: dialog.NewSessionStore(),
		seq:      sequencer.New(),
	}

	app.initServices()

	return app, nil
}

// Функция для инициализации сервисов и репозиториев
func (app *App) initServices() {
	// Инициализация репозиториев
	userRepo := repository.NewUserRepository(app.db)
	testRepo := testsRepo.NewTestRepository(app.db)
	resultRepo := resultsRepo.NewResultRepository(app.db)

	// Инициализация сервисов
	app.userService = service.NewUserService(userRepo)
	app.testService = testsService.NewTestService(testRepo, resultRepo)
	app.resultService = resultsService.NewResultService(resultRepo)

	// Движок диалогов работает поверх сервисов.
	app.engine = dialog.NewEngine(app.config, app.sessions,
		app.userService, app.testService, app.resultService)
}

// ListenAndServe запускает Telegram-бота и блокируется до его остановки.
func (app *App) ListenAndServe() error {
	bot, err := telebot.NewBot(telebot.Settings{
		Token: app.config.TelegramBot.Token,
		// Диспетчеризация выполняется в одной горутине: очередь каждого
		// пользователя наполняется строго в порядке прихода обновлений.
		Synchronous: true,
		OnError:     app.onError,
		Poller:      &telebot.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		return fmt.Errorf("telebot.NewBot: %w", err)
	}
	app.bot = bot

	app.bootstrapHandlers()

	log.Println("Bot started")
	app.bot.Start()
	return nil
}

// bootstrapHandlers регистрирует middleware и обработчики бота
func (app *App) bootstrapHandlers() {
	// Очередь на пользователя ставится первой: всё остальное выполняется
	// уже внутри очереди.
	app.bot.Use(middleware.Sequenced(app.seq, app.onError))
	app.bot.Use(middleware.Recover())
	if app.config.Debug {
		app.bot.Use(middleware.Logger())
	}
	if len(app.config.RequiredChannels) > 0 {
		app.bot.Use(middleware.RequireSubscription(app.bot, app.config.RequiredChannels, app.config.IsAdmin))
	}

	app.bot.Handle("/start", start_handler.NewStartHandler(app.config, app.engine, app.userService).GetHandlerFunc())
	app.bot.Handle("/cancel", cancel_handler.NewCancelHandler(app.engine).GetHandlerFunc())

	app.bot.Handle(telebot.OnText, text_handler.NewTextHandler(
		app.config, app.engine, app.userService, app.testService, app.resultService).GetHandlerFunc())
	app.bot.Handle(telebot.OnContact, contact_handler.NewContactHandler(app.engine).GetHandlerFunc())

	app.bot.Handle(&telebot.InlineButton{Unique: messages.UniqueTakeTest},
		take_test_handler.NewTakeTestHandler(app.engine).GetHandlerFunc())
	app.bot.Handle(&telebot.InlineButton{Unique: messages.UniqueEditTest},
		edit_test_handler.NewEditTestHandler(app.engine).GetHandlerFunc())
	app.bot.Handle(&telebot.InlineButton{Unique: messages.UniqueDeleteTest},
		delete_test_handler.NewDeleteTestHandler(app.config, app.engine, app.testService).GetHandlerFunc())
	app.bot.Handle(&telebot.InlineButton{Unique: messages.UniqueTestResults},
		results_handler.NewResultsHandler(app.config, app.testService, app.resultService).GetHandlerFunc())
	app.bot.Handle(&telebot.InlineButton{Unique: messages.UniqueDownload},
		download_handler.NewDownloadHandler(app.config, app.userService, app.testService, app.resultService).GetHandlerFunc())
	app.bot.Handle(&telebot.InlineButton{Unique: messages.UniqueAddTeacher},
		add_teacher_handler.NewAddTeacherHandler(app.engine).GetHandlerFunc())
	app.bot.Handle(&telebot.InlineButton{Unique: messages.UniqueRemoveTeacher},
		remove_teacher_handler.NewRemoveTeacherHandler(app.engine).GetHandlerFunc())
}

// onError логирует ошибку обработчика и сообщает пользователю о сбое.
func (app *App) onError(err error, c telebot.Context) {
	log.Printf("handler error: %v", err)
	if c != nil {
		_ = c.Send(messages.GenericError)
	}
}
