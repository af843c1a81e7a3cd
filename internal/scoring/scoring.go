package scoring

import (
	"errors"
	"math"
	"regexp"
	"strings"
)

// answerLine — допустимая строка ответа: номер вопроса, дефис, буква a–d.
var answerLine = regexp.MustCompile(`^(?i)\d+-[a-d]$`)

// Ошибки проверки, возвращаемые Score.
var (
	ErrEmptyKey      = errors.New("answer key is empty")
	ErrCountMismatch = errors.New("submitted answer count differs from key length")
)

// Result — итог проверки одной сдачи.
type Result struct {
	Percent float64 // 0–100, один знак после запятой
	Correct int
	Wrong   int
	Total   int
}

// ParseAnswers разбирает текст с ответами: текст режется по переводам строк,
// строки обрезаются, остаются только строки вида "1-a" (регистр не важен),
// результат приводится к нижнему регистру. Порядок строк сохраняется.
func ParseAnswers(text string) []string {
	var answers []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if answerLine.MatchString(line) {
			answers = append(answers, strings.ToLower(line))
		}
	}
	return answers
}

// Score сравнивает сданные ответы с ключом. Ответ засчитывается, если он
// встречается в ключе (сравнение по множеству, не по позиции). Вызывающая
// сторона обязана заранее убедиться, что количество ответов совпадает с
// длиной ключа; несовпадение — ошибка, а не ноль баллов.
func Score(submitted, key []string) (Result, error) {
	if len(key) == 0 {
		return Result{}, ErrEmptyKey
	}
	if len(submitted) != len(key) {
		return Result{}, ErrCountMismatch
	}

	keySet := make(map[string]struct{}, len(key))
	for _, a := range key {
		keySet[strings.ToLower(a)] = struct{}{}
	}

	correct := 0
	for _, a := range submitted {
		if _, ok := keySet[strings.ToLower(a)]; ok {
			correct++
		}
	}

	percent := math.Round(float64(correct)/float64(len(key))*1000) / 10
	return Result{
		Percent: percent,
		Correct: correct,
		Wrong:   len(key) - correct,
		Total:   len(key),
	}, nil
}
