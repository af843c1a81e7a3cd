package messages

// Тексты сообщений бота. Вся локализация собрана здесь,
// обработчики и движок диалогов оперируют только константами.
const (
	Welcome       = "👋 Добро пожаловать!"
	MainMenuTitle = "📱 Главное меню:"
	MenuHint      = "Выберите действие в меню ниже."
	NotRegistered = "Сначала зарегистрируйтесь — отправьте /start."

	SubscriptionRequired = "📢 Для работы с ботом подпишитесь на канал "
	GenericError  = "❌ Произошла ошибка. Попробуйте ещё раз."
	Cancelled     = "Действие отменено."
	NothingToDo   = "Активных действий нет."

	// Регистрация.
	AskFirstName       = "Введите ваше имя:"
	NeedTextFirstName  = "❌ Пожалуйста, отправьте имя текстом."
	AskLastName        = "Введите вашу фамилию:"
	NeedTextLastName   = "❌ Пожалуйста, отправьте фамилию текстом."
	AskContact         = "📱 Нажмите кнопку «Отправить номер телефона»:"
	NeedContactButton  = "❌ Пожалуйста, воспользуйтесь кнопкой «Отправить номер телефона»."
	NeedOwnContact     = "❌ Пожалуйста, отправьте свой собственный номер телефона."
	RegisteredTeacher  = "✅ Вы зарегистрированы как преподаватель!"
	RegisteredStudent  = "✅ Вы зарегистрированы как ученик!"
	AlreadyRegistered  = "Вы уже зарегистрированы."
	RegistrationFailed = "❌ Не удалось завершить регистрацию. Попробуйте ещё раз."

	// Создание теста.
	NoTeacherRights  = "❌ У вас нет прав преподавателя."
	AskTestTitle     = "📝 Введите название теста:"
	NeedTestTitle    = "❌ Название не может быть пустым. Введите название теста:"
	AskTestAnswers   = "📋 Введите ключ ответов (каждый ответ с новой строки, например:\n1-a\n2-b\n3-c\n...)"
	BadAnswersFormat = "❌ Неверный формат. Введите ответы заново (например: 1-a)."
	AskTestDeadline  = "⏰ Введите срок сдачи теста (в формате DD.MM.YYYY HH:mm):"
	BadDeadline      = "❌ Неверный формат даты. Введите заново (DD.MM.YYYY HH:mm):"
	TestCreated      = "✅ Тест успешно создан!"

	// Редактирование теста.
	EditIntro = "📝 Редактирование теста\n\nЧто вы хотите изменить?\n\n" +
		"1. Название\n2. Ключ ответов\n3. Срок сдачи\n\nВыберите номер или нажмите «Отмена»."
	BadEditChoice  = "❌ Неверный выбор. Отправьте 1, 2 или 3, либо нажмите «Отмена»."
	AskNewTitle    = "📝 Введите новое название теста:"
	AskNewAnswers  = "📋 Введите новый ключ ответов (каждый ответ с новой строки):\nНапример:\n1-a\n2-b\n3-c"
	AskNewDeadline = "⏰ Введите новый срок сдачи (DD.MM.YYYY HH:mm):"
	TestUpdated    = "✅ Тест успешно обновлён!"

	// Управление тестами.
	TestNotFound      = "❌ Тест не найден."
	EditForbidden     = "❌ Вы можете редактировать только свои тесты."
	DeleteForbidden   = "❌ Вы можете удалять только свои тесты."
	ResultsForbidden  = "❌ Вы можете смотреть результаты только своих тестов."
	TestDeleted       = "✅ Тест удалён вместе с результатами."
	NoTests           = "📭 Тестов пока нет."
	NoAvailableTests  = "📭 Доступных тестов пока нет."
	NoResultsYet      = "📭 Результатов по этому тесту пока нет."
	NoOwnResults      = "📭 У вас пока нет результатов."
	PreparingDownload = "📊 Готовлю отчёт с результатами..."
	ReportReady       = "✅ Отчёт сформирован!"

	// Прохождение теста.
	TestExpired    = "⌛️ Срок сдачи этого теста истёк."
	AlreadyTaken   = "Вы уже сдавали этот тест."
	SubmitBadCount = "❌ Вы ответили не на все вопросы.\nВопросов в тесте: %d\nВаших ответов: %d"

	// Администрирование.
	AdminOnly         = "❌ Это действие доступно только администратору."
	AskTeacherID      = "Отправьте Telegram ID пользователя, которого нужно сделать преподавателем:"
	AskRemoveID       = "Отправьте Telegram ID пользователя, у которого нужно снять роль преподавателя:"
	BadUserID         = "❌ Неверный формат ID. Отправьте целое число:"
	UserNotFound      = "❌ Пользователь с таким ID не найден."
	TeacherAssigned   = "✅ Пользователь назначен преподавателем."
	TeacherRemoved    = "✅ Роль преподавателя снята."
	CannotChangeAdmin = "❌ Роль администратора изменить нельзя."
	NoUsers           = "📭 Пользователей пока нет."
	UsersHeader       = "👥 Список пользователей:\n\n"
)

// Форматные строки.
const (
	TestCardFmt = "📋 Тест: %s\n👨‍🏫 Преподаватель: %s\n📝 Вопросов: %d\n⏰ Срок: %s"

	AvailableTestFmt = "📋 Тест: %s\n👨‍🏫 Преподаватель: %s\n📝 Вопросов: %d\n⏰ Срок: %s\n📊 Статус: %s"
	StatusDoneFmt    = "✅ Пройден (%.1f%%)"
	StatusNew        = "🆕 Новый"

	ManagedTestFmt = "📋 %s\n📝 Вопросов: %d\n✍️ Сдали: %d\n📅 Создан: %s"

	TakeIntroFmt = "📝 Тест «%s».\n\nВопросов: %d\n⏰ Срок сдачи: %s\n\n" +
		"Отправьте ответы в формате:\n1-a\n2-b\n3-c\n...\n\n" +
		"Внимание: все ответы нужно отправить одним сообщением!"

	SubmitResultFmt = "%s Результат теста:\n\n%s Балл: %.1f%%\n✅ Верных ответов: %d\n❌ Неверных ответов: %d"

	ResultsHeaderFmt = "📊 %s — результаты:\n\n"
	ResultLineFmt    = "%s %s: %.1f%%\n"

	MyResultsHeader = "🎯 Ваши результаты:\n\n"
	MyResultFmt     = "📋 %s\n%s Балл: %.1f%%\n📅 Сдан: %s\n\n"

	UserLineFmt = "%s %s\n🆔 %d\n\n"

	ReportCaptionFmt = "📄 %s\n📅 %s"
)

// Подписи кнопок.
const (
	BtnSendContact = "📱 Отправить номер телефона"
	BtnCancel      = "Отмена"

	BtnCreateTest     = "📝 Создать тест"
	BtnManageTests    = "📊 Мои тесты"
	BtnViewResults    = "📈 Результаты"
	BtnAvailableTests = "📚 Доступные тесты"
	BtnMyResults      = "🎯 Мои результаты"
	BtnManageUsers    = "👥 Пользователи"

	BtnTakeTest    = "✍️ Пройти тест"
	BtnEditTest    = "✏️ Редактировать"
	BtnTestResults = "📊 Результаты"
	BtnDeleteTest  = "🗑 Удалить"
	BtnDownload    = "📥 Скачать результаты"

	BtnAddTeacher    = "➕ Назначить преподавателя"
	BtnRemoveTeacher = "➖ Снять преподавателя"
)
