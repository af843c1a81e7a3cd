package sequencer

import "sync"

// Sequencer выполняет задания строго по очереди в пределах одного
// пользователя, не блокируя при этом пользователей друг другом.
// Обновления одного отправителя обрабатываются в порядке поступления,
// общего замка на время выполнения задания нет.
type Sequencer struct {
	mu     sync.Mutex
	queues map[int64]*queue
}

type queue struct {
	jobs []func()
}

// New создаёт Sequencer без активных очередей.
func New() *Sequencer {
	return &Sequencer{queues: make(map[int64]*queue)}
}

// Do ставит задание в очередь пользователя. Первое задание в пустой очереди
// запускает горутину-обработчик; она забирает задания по одному и завершается,
// когда очередь опустела.
func (s *Sequencer) Do(userID int64, job func()) {
	s.mu.Lock()
	q, running := s.queues[userID]
	if !running {
		q = &queue{}
		s.queues[userID] = q
	}
	q.jobs = append(q.jobs, job)
	s.mu.Unlock()

	if !running {
		go s.drain(userID, q)
	}
}

// drain последовательно выполняет задания очереди. Очередь удаляется из карты
// под тем же замком, под которым проверяется её пустота, поэтому задание,
// добавленное параллельно, либо попадёт в текущую очередь, либо создаст новую.
func (s *Sequencer) drain(userID int64, q *queue) {
	for {
		s.mu.Lock()
		if len(q.jobs) == 0 {
			delete(s.queues, userID)
			s.mu.Unlock()
			return
		}
		job := q.jobs[0]
		q.jobs = q.jobs[1:]
		s.mu.Unlock()

		job()
	}
}
