package stats

import "testing"

// TestAggregate проверяет сводку по набору баллов из трёх категорий.
func TestAggregate(t *testing.T) {
	summary, ok := Aggregate([]float64{90, 70, 50})
	if !ok {
		t.Fatal("Aggregate() вернул ok=false для непустого набора")
	}
	if summary.Mean != 70.0 {
		t.Errorf("Mean = %.1f, ожидалось 70.0", summary.Mean)
	}
	if summary.Max != 90.0 {
		t.Errorf("Max = %.1f, ожидалось 90.0", summary.Max)
	}
	if summary.Min != 50.0 {
		t.Errorf("Min = %.1f, ожидалось 50.0", summary.Min)
	}
	want := BandCounts{Excellent: 1, Good: 1, Poor: 1}
	if summary.Bands != want {
		t.Errorf("Bands = %+v, ожидалось %+v", summary.Bands, want)
	}
	if summary.Count != 3 {
		t.Errorf("Count = %d, ожидалось 3", summary.Count)
	}
}

// TestAggregate_Empty проверяет, что пустой набор не вычисляется.
func TestAggregate_Empty(t *testing.T) {
	if _, ok := Aggregate(nil); ok {
		t.Error("Aggregate(nil) вернул ok=true, ожидалось false")
	}
}

// TestAggregate_MeanRounding проверяет округление среднего до одного знака.
func TestAggregate_MeanRounding(t *testing.T) {
	summary, ok := Aggregate([]float64{100, 0, 0})
	if !ok {
		t.Fatal("Aggregate() вернул ok=false")
	}
	if summary.Mean != 33.3 {
		t.Errorf("Mean = %.1f, ожидалось 33.3", summary.Mean)
	}
}

// TestBandFor проверяет границы категорий.
func TestBandFor(t *testing.T) {
	tests := []struct {
		score float64
		want  Band
	}{
		{100, BandExcellent},
		{80, BandExcellent},
		{79.9, BandGood},
		{60, BandGood},
		{59.9, BandPoor},
		{0, BandPoor},
	}
	for _, tt := range tests {
		if got := BandFor(tt.score); got != tt.want {
			t.Errorf("BandFor(%.1f) = %v, ожидалось %v", tt.score, got, tt.want)
		}
	}
}
