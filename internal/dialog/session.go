package dialog

import "sync"

// Kind — вид активного диалога пользователя.
type Kind int

const (
	KindNone Kind = iota
	KindRegistration
	KindAuthoring
	KindEditing
	KindAwaitingAnswers
	KindAwaitTeacherID
	KindAwaitTeacherRemoval
)

// Session — контекст разговора одного пользователя: какой диалог активен,
// на каком он шаге и что уже введено. Живёт только в памяти процесса,
// при перезапуске незавершённые диалоги теряются.
type Session struct {
	UserID int64
	Kind   Kind
	Step   int
	TestID int               // тест, который редактируется или выполняется
	Data   map[string]string // накопленные поля активного диалога
}

// SessionStore хранит контексты разговоров. Одна запись на пользователя,
// записи разных пользователей независимы.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[int64]Session
}

// NewSessionStore создаёт пустое хранилище сессий.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[int64]Session)}
}

// GetOrCreate возвращает копию сессии пользователя, создавая пустую при
// первом обращении.
func (s *SessionStore) GetOrCreate(userID int64) Session {
	s.mu.RLock()
	sess, ok := s.sessions[userID]
	s.mu.RUnlock()
	if ok {
		return copySession(sess)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok = s.sessions[userID]; !ok {
		sess = Session{UserID: userID, Data: make(map[string]string)}
		s.sessions[userID] = sess
	}
	return copySession(sess)
}

// Set сохраняет сессию целиком.
func (s *SessionStore) Set(userID int64, sess Session) {
	sess.UserID = userID
	if sess.Data == nil {
		sess.Data = make(map[string]string)
	}
	s.mu.Lock()
	s.sessions[userID] = copySession(sess)
	s.mu.Unlock()
}

// Clear удаляет перечисленные поля из накопленных данных. Если после этого
// не осталось ни данных, ни ссылки на тест, вид диалога сбрасывается.
func (s *SessionStore) Clear(userID int64, fields ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[userID]
	if !ok {
		return
	}
	sess = copySession(sess)
	for _, f := range fields {
		delete(sess.Data, f)
	}
	if len(sess.Data) == 0 && sess.TestID == 0 {
		sess.Kind = KindNone
		sess.Step = 0
	}
	s.sessions[userID] = sess
}

// Reset полностью очищает сессию: завершение диалога или его отмена.
func (s *SessionStore) Reset(userID int64) {
	s.mu.Lock()
	s.sessions[userID] = Session{UserID: userID, Data: make(map[string]string)}
	s.mu.Unlock()
}

// copySession копирует сессию вместе с картой данных, чтобы вызывающая
// сторона не могла изменить хранимое состояние в обход Set.
func copySession(sess Session) Session {
	data := make(map[string]string, len(sess.Data))
	for k, v := range sess.Data {
		data[k] = v
	}
	sess.Data = data
	return sess
}
