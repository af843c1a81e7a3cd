package scoring

import (
	"errors"
	"reflect"
	"testing"
)

// TestParseAnswers проверяет разбор текста с ответами: невалидные строки
// отбрасываются, валидные приводятся к нижнему регистру с сохранением порядка.
func TestParseAnswers(t *testing.T) {
	text := "1-a\n  2-B \nmusor\n3\n4-e\n10-c"
	got := ParseAnswers(text)
	want := []string{"1-a", "2-b", "10-c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseAnswers() = %v, ожидалось %v", got, want)
	}
}

// TestParseAnswers_Idempotent проверяет, что повторный разбор той же строки
// даёт идентичную последовательность.
func TestParseAnswers_Idempotent(t *testing.T) {
	text := "1-A\n2-b\n3-C"
	first := ParseAnswers(text)
	second := ParseAnswers(text)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("повторный разбор дал другой результат: %v != %v", first, second)
	}
}

// TestParseAnswers_NoMatches проверяет, что текст без единой валидной строки
// даёт пустой результат, а не «пустой ключ».
func TestParseAnswers_NoMatches(t *testing.T) {
	if got := ParseAnswers("privet\n1_a\na-1\n5-x"); len(got) != 0 {
		t.Errorf("ожидался пустой результат, получено %v", got)
	}
}

// TestScore проверяет детерминированность подсчёта баллов.
func TestScore(t *testing.T) {
	tests := []struct {
		name        string
		submitted   []string
		key         []string
		wantPercent float64
		wantCorrect int
	}{
		{
			name:        "один из двух",
			submitted:   []string{"1-a", "2-b"},
			key:         []string{"1-a", "2-c"},
			wantPercent: 50.0,
			wantCorrect: 1,
		},
		{
			name:        "регистр не важен",
			submitted:   []string{"1-A", "2-B"},
			key:         []string{"1-a", "2-b"},
			wantPercent: 100.0,
			wantCorrect: 2,
		},
		{
			name:        "порядок не важен",
			submitted:   []string{"2-b", "1-a"},
			key:         []string{"1-a", "2-b"},
			wantPercent: 100.0,
			wantCorrect: 2,
		},
		{
			name:        "округление до одного знака",
			submitted:   []string{"1-a", "2-b", "3-c"},
			key:         []string{"1-a", "2-x", "3-x"},
			wantPercent: 33.3,
			wantCorrect: 1,
		},
		{
			name:        "ни одного верного",
			submitted:   []string{"1-b", "2-c"},
			key:         []string{"1-a", "2-b"},
			wantPercent: 0.0,
			wantCorrect: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Score(tt.submitted, tt.key)
			if err != nil {
				t.Fatalf("Score() вернул ошибку: %v", err)
			}
			if got.Percent != tt.wantPercent {
				t.Errorf("Percent = %.1f, ожидалось %.1f", got.Percent, tt.wantPercent)
			}
			if got.Correct != tt.wantCorrect {
				t.Errorf("Correct = %d, ожидалось %d", got.Correct, tt.wantCorrect)
			}
			if got.Wrong != got.Total-got.Correct {
				t.Errorf("Wrong = %d не согласуется с Total=%d и Correct=%d", got.Wrong, got.Total, got.Correct)
			}
		})
	}
}

// TestScore_CountMismatch проверяет, что несовпадение количества ответов с
// длиной ключа отклоняется до подсчёта.
func TestScore_CountMismatch(t *testing.T) {
	_, err := Score([]string{"1-a"}, []string{"1-a", "2-b"})
	if !errors.Is(err, ErrCountMismatch) {
		t.Errorf("ожидался ErrCountMismatch, получено %v", err)
	}
}

// TestScore_EmptyKey проверяет, что пустой ключ отклоняется.
func TestScore_EmptyKey(t *testing.T) {
	_, err := Score(nil, nil)
	if !errors.Is(err, ErrEmptyKey) {
		t.Errorf("ожидался ErrEmptyKey, получено %v", err)
	}
}
