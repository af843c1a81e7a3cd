package dialog

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/IT-Aziz/testchecker/internal/domain/model"
	"github.com/IT-Aziz/testchecker/internal/infra/config"
	"github.com/IT-Aziz/testchecker/internal/messages"
	"gopkg.in/telebot.v4"
)

type fakeUsers struct {
	users map[int64]model.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{users: make(map[int64]model.User)}
}

func (f *fakeUsers) Register(_ context.Context, user model.User) error {
	if _, ok := f.users[user.TelegramID]; ok {
		return model.ErrAlreadyRegistered
	}
	f.users[user.TelegramID] = user
	return nil
}

func (f *fakeUsers) GetByTelegramID(_ context.Context, telegramID int64) (*model.User, error) {
	user, ok := f.users[telegramID]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (f *fakeUsers) SetRole(_ context.Context, telegramID int64, role string) error {
	user, ok := f.users[telegramID]
	if !ok {
		return model.ErrNotFound
	}
	user.Role = role
	f.users[telegramID] = user
	return nil
}

type fakeTests struct {
	tests  map[int]model.Test
	nextID int
}

func newFakeTests() *fakeTests {
	return &fakeTests{tests: make(map[int]model.Test), nextID: 1}
}

func (f *fakeTests) Create(_ context.Context, test model.Test) (int, error) {
	test.ID = f.nextID
	f.nextID++
	f.tests[test.ID] = test
	return test.ID, nil
}

func (f *fakeTests) GetByID(_ context.Context, id int) (*model.Test, error) {
	test, ok := f.tests[id]
	if !ok {
		return nil, nil
	}
	return &test, nil
}

func (f *fakeTests) Update(_ context.Context, id int, update model.TestUpdate) error {
	test, ok := f.tests[id]
	if !ok {
		return model.ErrNotFound
	}
	switch {
	case update.Title != nil:
		test.Title = *update.Title
	case update.Answers != nil:
		test.Answers = update.Answers
	case update.Deadline != nil:
		test.Deadline = *update.Deadline
	}
	f.tests[id] = test
	return nil
}

type resultKey struct {
	testID int
	userID int64
}

type fakeResults struct {
	results map[resultKey]model.Result
}

func newFakeResults() *fakeResults {
	return &fakeResults{results: make(map[resultKey]model.Result)}
}

func (f *fakeResults) Create(_ context.Context, result model.Result) error {
	key := resultKey{result.TestID, result.UserID}
	if _, ok := f.results[key]; ok {
		return model.ErrDuplicateResult
	}
	f.results[key] = result
	return nil
}

func (f *fakeResults) Exists(_ context.Context, testID int, userID int64) (bool, error) {
	_, ok := f.results[resultKey{testID, userID}]
	return ok, nil
}

// testContext подменяет только используемые движком методы telebot.Context.
// Вызов любого другого метода обрушит тест, и это намеренно.
type testContext struct {
	telebot.Context
	sender *telebot.User
	msg    *telebot.Message
	sent   []string
}

func (c *testContext) Sender() *telebot.User     { return c.sender }
func (c *testContext) Message() *telebot.Message { return c.msg }

func (c *testContext) Text() string {
	if c.msg == nil {
		return ""
	}
	return c.msg.Text
}

func (c *testContext) Send(what interface{}, _ ...interface{}) error {
	c.sent = append(c.sent, fmt.Sprint(what))
	return nil
}

func (c *testContext) last() string {
	if len(c.sent) == 0 {
		return ""
	}
	return c.sent[len(c.sent)-1]
}

func textCtx(userID int64, text string) *testContext {
	return &testContext{
		sender: &telebot.User{ID: userID},
		msg:    &telebot.Message{Text: text},
	}
}

func contactCtx(userID int64, contact *telebot.Contact) *testContext {
	return &testContext{
		sender: &telebot.User{ID: userID},
		msg:    &telebot.Message{Contact: contact},
	}
}

func newTestEngine() (*Engine, *fakeUsers, *fakeTests, *fakeResults) {
	cfg := &config.Config{}
	cfg.Admin.ID = 99
	cfg.Admin.TeacherIDs = []int64{55}

	users := newFakeUsers()
	tests := newFakeTests()
	results := newFakeResults()
	return NewEngine(cfg, NewSessionStore(), users, tests, results), users, tests, results
}

func sendText(t *testing.T, e *Engine, userID int64, text string) *testContext {
	t.Helper()
	c := textCtx(userID, text)
	handled, err := e.HandleText(c)
	if err != nil {
		t.Fatalf("HandleText(%q): %v", text, err)
	}
	if !handled {
		t.Fatalf("HandleText(%q): message not handled by dialog", text)
	}
	return c
}

func TestRegistrationFlow(t *testing.T) {
	e, users, _, _ := newTestEngine()
	const userID = int64(1)

	c := textCtx(userID, "/start")
	if err := e.StartRegistration(c); err != nil {
		t.Fatalf("StartRegistration: %v", err)
	}
	if c.last() != messages.AskFirstName {
		t.Errorf("expected first name prompt, got %q", c.last())
	}

	if c := sendText(t, e, userID, "  "); c.last() != messages.NeedTextFirstName {
		t.Errorf("blank first name not rejected: %q", c.last())
	}
	if c := sendText(t, e, userID, "Иван"); c.last() != messages.AskLastName {
		t.Errorf("expected last name prompt, got %q", c.last())
	}
	if c := sendText(t, e, userID, "Петров"); c.last() != messages.AskContact {
		t.Errorf("expected contact prompt, got %q", c.last())
	}

	// Текст вместо контакта на последнем шаге.
	if c := sendText(t, e, userID, "+79990000000"); c.last() != messages.NeedContactButton {
		t.Errorf("text at contact step not rejected: %q", c.last())
	}

	// Чужой контакт отклоняется, шаг не сбрасывается.
	c = contactCtx(userID, &telebot.Contact{PhoneNumber: "+7111", UserID: 777})
	handled, err := e.HandleContact(c)
	if err != nil || !handled {
		t.Fatalf("HandleContact(foreign) = %v, %v", handled, err)
	}
	if c.last() != messages.NeedOwnContact {
		t.Errorf("foreign contact not rejected: %q", c.last())
	}

	// Собственный контакт завершает регистрацию.
	c = contactCtx(userID, &telebot.Contact{PhoneNumber: "+7999", UserID: userID})
	if _, err := e.HandleContact(c); err != nil {
		t.Fatalf("HandleContact: %v", err)
	}
	if c.last() != messages.RegisteredStudent {
		t.Errorf("expected student confirmation, got %q", c.last())
	}

	user, _ := users.GetByTelegramID(context.Background(), userID)
	if user == nil {
		t.Fatal("user was not registered")
	}
	if user.FirstName != "Иван" || user.LastName != "Петров" || user.PhoneNumber != "+7999" {
		t.Errorf("unexpected profile: %+v", user)
	}
	if user.Role != model.RoleStudent {
		t.Errorf("expected STUDENT role, got %q", user.Role)
	}

	// После завершения диалога текст уходит в обычную маршрутизацию.
	handled, err = e.HandleText(textCtx(userID, "привет"))
	if err != nil || handled {
		t.Errorf("dialog not finished: handled=%v err=%v", handled, err)
	}
}

func TestRegistrationAssignsTeacherFromConfig(t *testing.T) {
	e, users, _, _ := newTestEngine()
	const userID = int64(55) // в списке преподавателей конфигурации

	if err := e.StartRegistration(textCtx(userID, "/start")); err != nil {
		t.Fatalf("StartRegistration: %v", err)
	}
	sendText(t, e, userID, "Анна")
	sendText(t, e, userID, "Сидорова")

	c := contactCtx(userID, &telebot.Contact{PhoneNumber: "+7000", UserID: userID})
	if _, err := e.HandleContact(c); err != nil {
		t.Fatalf("HandleContact: %v", err)
	}
	if c.last() != messages.RegisteredTeacher {
		t.Errorf("expected teacher confirmation, got %q", c.last())
	}

	user, _ := users.GetByTelegramID(context.Background(), userID)
	if user.Role != model.RoleTeacher {
		t.Errorf("expected TEACHER role, got %q", user.Role)
	}
}

func TestAuthoringRequiresTeacher(t *testing.T) {
	e, users, _, _ := newTestEngine()
	users.users[1] = model.User{TelegramID: 1, Role: model.RoleStudent}

	c := textCtx(1, messages.BtnCreateTest)
	if err := e.StartAuthoring(c); err != nil {
		t.Fatalf("StartAuthoring: %v", err)
	}
	if c.last() != messages.NoTeacherRights {
		t.Errorf("student not rejected: %q", c.last())
	}

	c = textCtx(2, messages.BtnCreateTest)
	if err := e.StartAuthoring(c); err != nil {
		t.Fatalf("StartAuthoring: %v", err)
	}
	if c.last() != messages.NotRegistered {
		t.Errorf("unregistered user not rejected: %q", c.last())
	}
}

func TestAuthoringFlow(t *testing.T) {
	e, users, tests, _ := newTestEngine()
	const userID = int64(10)
	users.users[userID] = model.User{TelegramID: userID, FirstName: "Олег", Role: model.RoleTeacher}

	if err := e.StartAuthoring(textCtx(userID, messages.BtnCreateTest)); err != nil {
		t.Fatalf("StartAuthoring: %v", err)
	}

	if c := sendText(t, e, userID, " "); c.last() != messages.NeedTestTitle {
		t.Errorf("blank title not rejected: %q", c.last())
	}
	if c := sendText(t, e, userID, "Алгебра"); c.last() != messages.AskTestAnswers {
		t.Errorf("expected answers prompt, got %q", c.last())
	}
	if c := sendText(t, e, userID, "просто текст"); c.last() != messages.BadAnswersFormat {
		t.Errorf("bad answer key not rejected: %q", c.last())
	}
	if c := sendText(t, e, userID, "1-A\n2-b\nмусор"); c.last() != messages.AskTestDeadline {
		t.Errorf("expected deadline prompt, got %q", c.last())
	}
	if c := sendText(t, e, userID, "завтра"); c.last() != messages.BadDeadline {
		t.Errorf("bad deadline not rejected: %q", c.last())
	}
	sendText(t, e, userID, "31.12.2030 18:00")

	test, _ := tests.GetByID(context.Background(), 1)
	if test == nil {
		t.Fatal("test was not created")
	}
	if test.Title != "Алгебра" {
		t.Errorf("unexpected title %q", test.Title)
	}
	// Ключ приведён к нижнему регистру, невалидные строки отброшены.
	if len(test.Answers) != 2 || test.Answers[0] != "1-a" || test.Answers[1] != "2-b" {
		t.Errorf("unexpected answer key %v", test.Answers)
	}
	want, _ := time.Parse(model.DeadlineLayout, "31.12.2030 18:00")
	if !test.Deadline.Equal(want) {
		t.Errorf("unexpected deadline %v", test.Deadline)
	}
	if test.CreatedBy != userID {
		t.Errorf("unexpected author %d", test.CreatedBy)
	}

	if handled, _ := e.HandleText(textCtx(userID, "ещё")); handled {
		t.Error("dialog not finished after creation")
	}
}

func TestEditingChangesSingleField(t *testing.T) {
	e, users, tests, _ := newTestEngine()
	const userID = int64(10)
	users.users[userID] = model.User{TelegramID: userID, Role: model.RoleTeacher}

	deadline, _ := time.Parse(model.DeadlineLayout, "01.06.2030 12:00")
	testID, _ := tests.Create(context.Background(), model.Test{
		Title: "Физика", Answers: []string{"1-a", "2-b"}, Deadline: deadline, CreatedBy: userID,
	})

	if err := e.StartEditing(textCtx(userID, ""), testID); err != nil {
		t.Fatalf("StartEditing: %v", err)
	}

	if c := sendText(t, e, userID, "7"); c.last() != messages.BadEditChoice {
		t.Errorf("bad choice not rejected: %q", c.last())
	}
	if c := sendText(t, e, userID, "3"); c.last() != messages.AskNewDeadline {
		t.Errorf("expected new deadline prompt, got %q", c.last())
	}
	if c := sendText(t, e, userID, "15.07.2030 09:30"); c.last() != messages.TestUpdated {
		t.Errorf("expected update confirmation, got %q", c.last())
	}

	test, _ := tests.GetByID(context.Background(), testID)
	want, _ := time.Parse(model.DeadlineLayout, "15.07.2030 09:30")
	if !test.Deadline.Equal(want) {
		t.Errorf("deadline not updated: %v", test.Deadline)
	}
	// Остальные поля не тронуты.
	if test.Title != "Физика" || len(test.Answers) != 2 || test.Answers[0] != "1-a" {
		t.Errorf("other fields changed: %+v", test)
	}
}

func TestEditingForbiddenForOthers(t *testing.T) {
	e, _, tests, _ := newTestEngine()
	testID, _ := tests.Create(context.Background(), model.Test{Title: "Чужой", CreatedBy: 10})

	c := textCtx(20, "")
	if err := e.StartEditing(c, testID); err != nil {
		t.Fatalf("StartEditing: %v", err)
	}
	if c.last() != messages.EditForbidden {
		t.Errorf("foreign test edit not rejected: %q", c.last())
	}

	// Администратору чужой тест доступен.
	c = textCtx(99, "")
	if err := e.StartEditing(c, testID); err != nil {
		t.Fatalf("StartEditing(admin): %v", err)
	}
	if c.last() != messages.EditIntro {
		t.Errorf("admin edit not allowed: %q", c.last())
	}
}

func TestCancelButtonAbortsDialog(t *testing.T) {
	e, users, tests, _ := newTestEngine()
	const userID = int64(10)
	users.users[userID] = model.User{TelegramID: userID, Role: model.RoleTeacher}
	testID, _ := tests.Create(context.Background(), model.Test{Title: "Химия", CreatedBy: userID})

	if err := e.StartEditing(textCtx(userID, ""), testID); err != nil {
		t.Fatalf("StartEditing: %v", err)
	}
	if c := sendText(t, e, userID, messages.BtnCancel); c.last() != messages.Cancelled {
		t.Errorf("expected cancellation, got %q", c.last())
	}
	if handled, _ := e.HandleText(textCtx(userID, "3")); handled {
		t.Error("dialog survived cancellation")
	}

	test, _ := tests.GetByID(context.Background(), testID)
	if test.Title != "Химия" {
		t.Errorf("test changed after cancellation: %q", test.Title)
	}
}

func TestCancelCommandWithoutDialog(t *testing.T) {
	e, _, _, _ := newTestEngine()
	c := textCtx(1, "/cancel")
	if err := e.Cancel(c); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if c.last() != messages.NothingToDo {
		t.Errorf("expected nothing-to-do reply, got %q", c.last())
	}
}

func TestTakingFlow(t *testing.T) {
	e, users, tests, results := newTestEngine()
	const userID = int64(3)
	users.users[userID] = model.User{TelegramID: userID, Role: model.RoleStudent}

	deadline := time.Now().Add(24 * time.Hour)
	testID, _ := tests.Create(context.Background(), model.Test{
		Title: "Геометрия", Answers: []string{"1-a", "2-b"}, Deadline: deadline, CreatedBy: 10,
	})

	c := textCtx(userID, "")
	if err := e.StartTaking(c, testID); err != nil {
		t.Fatalf("StartTaking: %v", err)
	}
	if !strings.Contains(c.last(), "Геометрия") {
		t.Errorf("expected intro with test title, got %q", c.last())
	}

	// Количество ответов должно совпадать с ключом.
	c = sendText(t, e, userID, "1-a")
	if c.last() != fmt.Sprintf(messages.SubmitBadCount, 2, 1) {
		t.Errorf("count mismatch not reported: %q", c.last())
	}

	// Один верный из двух.
	c = sendText(t, e, userID, "1-a\n2-c")
	if !strings.Contains(c.last(), "50.0%") {
		t.Errorf("expected 50.0%% in summary, got %q", c.last())
	}

	saved, _ := results.results[resultKey{testID, userID}]
	if saved.Score != 50.0 || saved.CorrectCount != 1 || saved.WrongCount != 1 {
		t.Errorf("unexpected saved result: %+v", saved)
	}

	// Повторная сдача отклоняется на входе.
	c = textCtx(userID, "")
	if err := e.StartTaking(c, testID); err != nil {
		t.Fatalf("StartTaking(again): %v", err)
	}
	if c.last() != messages.AlreadyTaken {
		t.Errorf("second attempt not rejected: %q", c.last())
	}
	if got := results.results[resultKey{testID, userID}]; got.Score != 50.0 {
		t.Errorf("first result was modified: %+v", got)
	}
}

func TestTakingExpiredTest(t *testing.T) {
	e, users, tests, _ := newTestEngine()
	const userID = int64(3)
	users.users[userID] = model.User{TelegramID: userID, Role: model.RoleStudent}

	testID, _ := tests.Create(context.Background(), model.Test{
		Title: "Старый", Answers: []string{"1-a"}, Deadline: time.Now().Add(-time.Hour), CreatedBy: 10,
	})

	c := textCtx(userID, "")
	if err := e.StartTaking(c, testID); err != nil {
		t.Fatalf("StartTaking: %v", err)
	}
	if c.last() != messages.TestExpired {
		t.Errorf("expired test not rejected: %q", c.last())
	}
	if handled, _ := e.HandleText(textCtx(userID, "1-a")); handled {
		t.Error("dialog started for expired test")
	}
}

func TestTakingDeadlinePassesMidDialog(t *testing.T) {
	e, users, tests, results := newTestEngine()
	const userID = int64(3)
	users.users[userID] = model.User{TelegramID: userID, Role: model.RoleStudent}

	testID, _ := tests.Create(context.Background(), model.Test{
		Title: "Срочный", Answers: []string{"1-a"}, Deadline: time.Now().Add(time.Hour), CreatedBy: 10,
	})
	if err := e.StartTaking(textCtx(userID, ""), testID); err != nil {
		t.Fatalf("StartTaking: %v", err)
	}

	// Срок истекает, пока студент набирает ответы.
	expired := time.Now().Add(-time.Minute)
	if err := tests.Update(context.Background(), testID, model.TestUpdate{Deadline: &expired}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	if c := sendText(t, e, userID, "1-a"); c.last() != messages.TestExpired {
		t.Errorf("late submission not rejected: %q", c.last())
	}
	if len(results.results) != 0 {
		t.Error("late submission was saved")
	}
}

func TestAdminAssignAndRemoveTeacher(t *testing.T) {
	e, users, _, _ := newTestEngine()
	const adminID = int64(99)
	users.users[adminID] = model.User{TelegramID: adminID, Role: model.RoleTeacher}
	users.users[5] = model.User{TelegramID: 5, Role: model.RoleStudent}

	// Не администратор.
	c := textCtx(5, "")
	if err := e.StartTeacherAssign(c); err != nil {
		t.Fatalf("StartTeacherAssign: %v", err)
	}
	if c.last() != messages.AdminOnly {
		t.Errorf("non-admin not rejected: %q", c.last())
	}

	if err := e.StartTeacherAssign(textCtx(adminID, "")); err != nil {
		t.Fatalf("StartTeacherAssign: %v", err)
	}
	if c := sendText(t, e, adminID, "abc"); c.last() != messages.BadUserID {
		t.Errorf("bad ID not rejected: %q", c.last())
	}
	if c := sendText(t, e, adminID, "404"); c.last() != messages.UserNotFound {
		t.Errorf("unknown user not reported: %q", c.last())
	}

	if err := e.StartTeacherAssign(textCtx(adminID, "")); err != nil {
		t.Fatalf("StartTeacherAssign: %v", err)
	}
	if c := sendText(t, e, adminID, "5"); c.last() != messages.TeacherAssigned {
		t.Errorf("expected assignment confirmation, got %q", c.last())
	}
	if user, _ := users.GetByTelegramID(context.Background(), 5); user.Role != model.RoleTeacher {
		t.Errorf("role not updated: %q", user.Role)
	}

	// Снятие роли с самого администратора запрещено.
	if err := e.StartTeacherRemoval(textCtx(adminID, "")); err != nil {
		t.Fatalf("StartTeacherRemoval: %v", err)
	}
	if c := sendText(t, e, adminID, "99"); c.last() != messages.CannotChangeAdmin {
		t.Errorf("admin self-removal not rejected: %q", c.last())
	}

	if err := e.StartTeacherRemoval(textCtx(adminID, "")); err != nil {
		t.Fatalf("StartTeacherRemoval: %v", err)
	}
	if c := sendText(t, e, adminID, "5"); c.last() != messages.TeacherRemoved {
		t.Errorf("expected removal confirmation, got %q", c.last())
	}
	if user, _ := users.GetByTelegramID(context.Background(), 5); user.Role != model.RoleStudent {
		t.Errorf("role not reverted: %q", user.Role)
	}
}

func TestDialogsAreIndependentPerUser(t *testing.T) {
	e, users, tests, _ := newTestEngine()
	users.users[10] = model.User{TelegramID: 10, Role: model.RoleTeacher}
	users.users[3] = model.User{TelegramID: 3, Role: model.RoleStudent}

	testID, _ := tests.Create(context.Background(), model.Test{
		Title: "Общий", Answers: []string{"1-a"}, Deadline: time.Now().Add(time.Hour), CreatedBy: 10,
	})

	if err := e.StartAuthoring(textCtx(10, "")); err != nil {
		t.Fatalf("StartAuthoring: %v", err)
	}
	if err := e.StartTaking(textCtx(3, ""), testID); err != nil {
		t.Fatalf("StartTaking: %v", err)
	}

	// Сообщение преподавателя относится к его диалогу, не к чужому.
	if c := sendText(t, e, 10, "Новый тест"); c.last() != messages.AskTestAnswers {
		t.Errorf("teacher dialog broken: %q", c.last())
	}
	if c := sendText(t, e, 3, "1-a"); !strings.Contains(c.last(), "100.0%") {
		t.Errorf("student dialog broken: %q", c.last())
	}
}
