package service

import (
	"context"
	"testing"
	"time"

	"github.com/IT-Aziz/testchecker/internal/domain/model"
	"github.com/IT-Aziz/testchecker/internal/stats"
)

type fakeTestStore struct {
	tests  map[int]model.Test
	nextID int
}

func newFakeTestStore() *fakeTestStore {
	return &fakeTestStore{tests: make(map[int]model.Test), nextID: 1}
}

func (f *fakeTestStore) CreateTest(_ context.Context, test model.Test) (int, error) {
	test.ID = f.nextID
	f.nextID++
	f.tests[test.ID] = test
	return test.ID, nil
}

func (f *fakeTestStore) GetTestByID(_ context.Context, id int) (*model.Test, error) {
	test, ok := f.tests[id]
	if !ok {
		return nil, nil
	}
	return &test, nil
}

func (f *fakeTestStore) UpdateTitle(_ context.Context, id int, title string) error {
	test, ok := f.tests[id]
	if !ok {
		return model.ErrNotFound
	}
	test.Title = title
	f.tests[id] = test
	return nil
}

func (f *fakeTestStore) UpdateAnswers(_ context.Context, id int, answers []string) error {
	test, ok := f.tests[id]
	if !ok {
		return model.ErrNotFound
	}
	test.Answers = answers
	f.tests[id] = test
	return nil
}

func (f *fakeTestStore) UpdateDeadline(_ context.Context, id int, deadline time.Time) error {
	test, ok := f.tests[id]
	if !ok {
		return model.ErrNotFound
	}
	test.Deadline = deadline
	f.tests[id] = test
	return nil
}

func (f *fakeTestStore) DeleteTest(_ context.Context, id int) error {
	if _, ok := f.tests[id]; !ok {
		return model.ErrNotFound
	}
	delete(f.tests, id)
	return nil
}

func (f *fakeTestStore) GetTestsByOwner(_ context.Context, ownerID int64) ([]model.Test, error) {
	var tests []model.Test
	for _, t := range f.tests {
		if t.CreatedBy == ownerID {
			tests = append(tests, t)
		}
	}
	return tests, nil
}

func (f *fakeTestStore) GetActiveTests(_ context.Context, now time.Time) ([]model.Test, error) {
	var tests []model.Test
	for _, t := range f.tests {
		if t.Deadline.After(now) {
			tests = append(tests, t)
		}
	}
	return tests, nil
}

// fakeResultStore хранит баллы результатов по тестам.
type fakeResultStore struct {
	scores map[int][]float64
}

func newFakeResultStore() *fakeResultStore {
	return &fakeResultStore{scores: make(map[int][]float64)}
}

func (f *fakeResultStore) DeleteResultsByTest(_ context.Context, testID int) error {
	delete(f.scores, testID)
	return nil
}

func TestDeleteCascadesToResults(t *testing.T) {
	ctx := context.Background()
	testStore := newFakeTestStore()
	resultStore := newFakeResultStore()
	svc := NewTestService(testStore, resultStore)

	testID, err := svc.Create(ctx, model.Test{Title: "История", Answers: []string{"1-a"}, CreatedBy: 10})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	resultStore.scores[testID] = []float64{90, 70, 50}

	if err := svc.Delete(ctx, testID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	// Тест и все его результаты исчезли.
	test, err := svc.GetByID(ctx, testID)
	if err != nil || test != nil {
		t.Errorf("test survived deletion: %v, %v", test, err)
	}
	if _, ok := resultStore.scores[testID]; ok {
		t.Error("results survived deletion")
	}

	// Сводка по удалённому тесту — «нет данных», а не ошибка.
	if _, ok := stats.Aggregate(resultStore.scores[testID]); ok {
		t.Error("aggregation over deleted test reports data")
	}
}

func TestDeleteMissingTest(t *testing.T) {
	ctx := context.Background()
	testStore := newFakeTestStore()
	resultStore := newFakeResultStore()
	resultStore.scores[7] = []float64{80}
	svc := NewTestService(testStore, resultStore)

	if err := svc.Delete(ctx, 7); err != model.ErrNotFound {
		t.Fatalf("Delete(missing) = %v, want ErrNotFound", err)
	}
	// Результаты не трогаются, если тест не был удалён.
	if len(resultStore.scores[7]) != 1 {
		t.Error("results deleted for missing test")
	}
}
