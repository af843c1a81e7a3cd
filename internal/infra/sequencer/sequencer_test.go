package sequencer

import (
	"sync"
	"testing"
	"time"
)

// TestSequencer_OrderPerUser проверяет, что задания одного пользователя
// выполняются строго в порядке постановки, сколько бы заданий других
// пользователей ни перемежалось с ними.
func TestSequencer_OrderPerUser(t *testing.T) {
	seq := New()

	const jobs = 200
	var mu sync.Mutex
	got := make(map[int64][]int)

	var wg sync.WaitGroup
	wg.Add(3 * jobs)
	for i := 0; i < jobs; i++ {
		i := i
		for _, userID := range []int64{1, 2, 3} {
			userID := userID
			seq.Do(userID, func() {
				defer wg.Done()
				mu.Lock()
				got[userID] = append(got[userID], i)
				mu.Unlock()
			})
		}
	}
	wg.Wait()

	for userID, order := range got {
		if len(order) != jobs {
			t.Fatalf("пользователь %d: выполнено %d заданий из %d", userID, len(order), jobs)
		}
		for i, v := range order {
			if v != i {
				t.Fatalf("пользователь %d: задание %d выполнено на позиции %d", userID, v, i)
			}
		}
	}
}

// TestSequencer_UsersDoNotBlockEachOther проверяет, что долгое задание одного
// пользователя не задерживает другого.
func TestSequencer_UsersDoNotBlockEachOther(t *testing.T) {
	seq := New()

	release := make(chan struct{})
	fastDone := make(chan struct{})

	seq.Do(1, func() { <-release })
	seq.Do(2, func() { close(fastDone) })

	select {
	case <-fastDone:
	case <-time.After(2 * time.Second):
		t.Fatal("задание второго пользователя ждало первого")
	}
	close(release)
}

// TestSequencer_QueueRestarts проверяет, что после опустошения очереди
// новые задания того же пользователя снова выполняются.
func TestSequencer_QueueRestarts(t *testing.T) {
	seq := New()

	var wg sync.WaitGroup
	count := 0
	var mu sync.Mutex
	for round := 0; round < 3; round++ {
		wg.Add(1)
		seq.Do(5, func() {
			defer wg.Done()
			mu.Lock()
			count++
			mu.Unlock()
		})
		wg.Wait()
	}
	if count != 3 {
		t.Errorf("выполнено %d заданий, ожидалось 3", count)
	}
}
