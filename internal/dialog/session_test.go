package dialog

import (
	"sync"
	"testing"
)

// TestSessionStore_GetOrCreate проверяет ленивое создание и изоляцию копий.
func TestSessionStore_GetOrCreate(t *testing.T) {
	store := NewSessionStore()

	sess := store.GetOrCreate(42)
	if sess.UserID != 42 || sess.Kind != KindNone || sess.Step != 0 {
		t.Errorf("новая сессия не пуста: %+v", sess)
	}

	// Изменение копии не должно попадать в хранилище без Set.
	sess.Data["title"] = "черновик"
	again := store.GetOrCreate(42)
	if _, ok := again.Data["title"]; ok {
		t.Error("изменение копии сессии просочилось в хранилище")
	}
}

// TestSessionStore_SetAndReset проверяет сохранение и полную очистку.
func TestSessionStore_SetAndReset(t *testing.T) {
	store := NewSessionStore()

	sess := store.GetOrCreate(1)
	sess.Kind = KindAuthoring
	sess.Step = 2
	sess.Data["title"] = "Алгебра"
	store.Set(1, sess)

	got := store.GetOrCreate(1)
	if got.Kind != KindAuthoring || got.Step != 2 || got.Data["title"] != "Алгебра" {
		t.Errorf("сессия сохранилась неверно: %+v", got)
	}

	store.Reset(1)
	got = store.GetOrCreate(1)
	if got.Kind != KindNone || got.Step != 0 || len(got.Data) != 0 || got.TestID != 0 {
		t.Errorf("Reset не очистил сессию: %+v", got)
	}
}

// TestSessionStore_Clear проверяет, что удаление последнего поля сбрасывает
// вид диалога, а частичная очистка — нет.
func TestSessionStore_Clear(t *testing.T) {
	store := NewSessionStore()

	sess := store.GetOrCreate(7)
	sess.Kind = KindAuthoring
	sess.Step = 3
	sess.Data["title"] = "Физика"
	sess.Data["answers"] = "1-a"
	store.Set(7, sess)

	store.Clear(7, "answers")
	got := store.GetOrCreate(7)
	if got.Kind != KindAuthoring {
		t.Error("Clear сбросил вид диалога, пока оставались данные")
	}
	if _, ok := got.Data["answers"]; ok {
		t.Error("Clear не удалил поле answers")
	}

	store.Clear(7, "title")
	got = store.GetOrCreate(7)
	if got.Kind != KindNone || got.Step != 0 {
		t.Errorf("Clear не сбросил пустую сессию: %+v", got)
	}
}

// TestSessionStore_IndependentUsers проверяет независимость записей разных
// пользователей при конкурентном доступе.
func TestSessionStore_IndependentUsers(t *testing.T) {
	store := NewSessionStore()

	var wg sync.WaitGroup
	for id := int64(1); id <= 10; id++ {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				sess := store.GetOrCreate(userID)
				sess.Step = i
				store.Set(userID, sess)
			}
		}(id)
	}
	wg.Wait()

	for id := int64(1); id <= 10; id++ {
		if got := store.GetOrCreate(id); got.Step != 99 {
			t.Errorf("пользователь %d: Step = %d, ожидалось 99", id, got.Step)
		}
	}
}
