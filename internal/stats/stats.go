package stats

import "math"

// Пороговые значения категорий оценок.
const (
	excellentFrom = 80.0
	goodFrom      = 60.0
)

// Band — категория балла.
type Band int

const (
	BandPoor Band = iota
	BandGood
	BandExcellent
)

// BandFor возвращает категорию для балла: ≥80 — отлично, ≥60 — хорошо, иначе плохо.
func BandFor(score float64) Band {
	switch {
	case score >= excellentFrom:
		return BandExcellent
	case score >= goodFrom:
		return BandGood
	default:
		return BandPoor
	}
}

// Marker возвращает цветовой маркер категории для сообщений.
func (b Band) Marker() string {
	switch b {
	case BandExcellent:
		return "🟢"
	case BandGood:
		return "🟡"
	default:
		return "🔴"
	}
}

// Label возвращает название категории.
func (b Band) Label() string {
	switch b {
	case BandExcellent:
		return "Отлично"
	case BandGood:
		return "Хорошо"
	default:
		return "Неудовлетворительно"
	}
}

// BandCounts — количество результатов в каждой категории.
type BandCounts struct {
	Excellent int
	Good      int
	Poor      int
}

// Summary — сводная статистика по результатам одного теста.
type Summary struct {
	Count int
	Mean  float64
	Max   float64
	Min   float64
	Bands BandCounts
}

// Aggregate вычисляет сводку по баллам. Второе значение false означает
// отсутствие данных: по пустому набору сводка не вычисляется.
func Aggregate(scores []float64) (Summary, bool) {
	if len(scores) == 0 {
		return Summary{}, false
	}

	s := Summary{Count: len(scores), Max: scores[0], Min: scores[0]}
	var sum float64
	for _, score := range scores {
		sum += score
		if score > s.Max {
			s.Max = score
		}
		if score < s.Min {
			s.Min = score
		}
		switch BandFor(score) {
		case BandExcellent:
			s.Bands.Excellent++
		case BandGood:
			s.Bands.Good++
		default:
			s.Bands.Poor++
		}
	}
	s.Mean = math.Round(sum/float64(len(scores))*10) / 10
	return s, true
}
