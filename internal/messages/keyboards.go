package messages

import (
	"strconv"

	"github.com/IT-Aziz/testchecker/internal/domain/model"
	"gopkg.in/telebot.v4"
)

// Уникальные имена inline-кнопок. Данные callback несут ID теста.
const (
	UniqueTakeTest      = "take_test"
	UniqueEditTest      = "edit_test"
	UniqueDeleteTest    = "delete_test"
	UniqueTestResults   = "test_results"
	UniqueDownload      = "download_results"
	UniqueAddTeacher    = "add_teacher"
	UniqueRemoveTeacher = "remove_teacher"
)

// MainMenu строит постоянную клавиатуру главного меню по роли пользователя.
func MainMenu(role string, isAdmin bool) *telebot.ReplyMarkup {
	rm := &telebot.ReplyMarkup{ResizeKeyboard: true}
	var rows []telebot.Row
	if role == model.RoleTeacher || isAdmin {
		rows = append(rows,
			rm.Row(rm.Text(BtnCreateTest)),
			rm.Row(rm.Text(BtnManageTests)),
			rm.Row(rm.Text(BtnViewResults)),
		)
		if isAdmin {
			rows = append(rows, rm.Row(rm.Text(BtnManageUsers)))
		}
	} else {
		rows = append(rows,
			rm.Row(rm.Text(BtnAvailableTests)),
			rm.Row(rm.Text(BtnMyResults)),
		)
	}
	rm.Reply(rows...)
	return rm
}

// ContactKeyboard строит клавиатуру с кнопкой отправки собственного контакта.
func ContactKeyboard() *telebot.ReplyMarkup {
	rm := &telebot.ReplyMarkup{ResizeKeyboard: true, OneTimeKeyboard: true}
	rm.Reply(rm.Row(rm.Contact(BtnSendContact)))
	return rm
}

// EditChoiceKeyboard строит клавиатуру выбора редактируемого поля.
func EditChoiceKeyboard() *telebot.ReplyMarkup {
	rm := &telebot.ReplyMarkup{ResizeKeyboard: true, OneTimeKeyboard: true}
	rm.Reply(
		rm.Row(rm.Text("1"), rm.Text("2"), rm.Text("3")),
		rm.Row(rm.Text(BtnCancel)),
	)
	return rm
}

// ManageKeyboard строит inline-кнопки карточки теста для владельца.
func ManageKeyboard(testID int) *telebot.ReplyMarkup {
	rm := &telebot.ReplyMarkup{}
	id := strconv.Itoa(testID)
	rm.Inline(
		rm.Row(
			rm.Data(BtnEditTest, UniqueEditTest, id),
			rm.Data(BtnTestResults, UniqueTestResults, id),
			rm.Data(BtnDeleteTest, UniqueDeleteTest, id),
		),
		rm.Row(rm.Data(BtnDownload, UniqueDownload, id)),
	)
	return rm
}

// TakeKeyboard строит inline-кнопку начала прохождения теста.
func TakeKeyboard(testID int, label string) *telebot.ReplyMarkup {
	rm := &telebot.ReplyMarkup{}
	rm.Inline(rm.Row(rm.Data(label, UniqueTakeTest, strconv.Itoa(testID))))
	return rm
}

// ResultsKeyboard строит inline-кнопку выгрузки результатов.
func ResultsKeyboard(testID int) *telebot.ReplyMarkup {
	rm := &telebot.ReplyMarkup{}
	rm.Inline(rm.Row(rm.Data(BtnDownload, UniqueDownload, strconv.Itoa(testID))))
	return rm
}

// UsersKeyboard строит inline-кнопки управления преподавателями.
func UsersKeyboard() *telebot.ReplyMarkup {
	rm := &telebot.ReplyMarkup{}
	rm.Inline(
		rm.Row(rm.Data(BtnAddTeacher, UniqueAddTeacher, "add")),
		rm.Row(rm.Data(BtnRemoveTeacher, UniqueRemoveTeacher, "remove")),
	)
	return rm
}

// RemoveKeyboard убирает постоянную клавиатуру.
func RemoveKeyboard() *telebot.ReplyMarkup {
	return &telebot.ReplyMarkup{RemoveKeyboard: true}
}
