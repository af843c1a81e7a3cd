package report

import (
	"bytes"
	"fmt"
	"regexp"
	"time"

	"github.com/IT-Aziz/testchecker/internal/domain/model"
	"github.com/IT-Aziz/testchecker/internal/stats"
	"github.com/jung-kurt/gofpdf"
)

// Data содержит данные для формирования отчёта по одному тесту.
type Data struct {
	Test    model.Test
	Author  string
	Rows    []model.ResultWithUser // от лучшего балла к худшему
	Summary stats.Summary
}

// fontDir — каталог со шрифтами DejaVu (DejaVuSans.ttf, DejaVuSans-Bold.ttf).
// Шрифты не входят в репозиторий и кладутся рядом с бинарником при деплое,
// путь разрешается относительно рабочего каталога процесса.
const fontDir = "assets/fonts"

// unsafeChars — символы, недопустимые в имени файла отчёта.
var (
	unsafeChars    = regexp.MustCompile(`[^\p{L}\p{N}]+`)
	edgeUnderscore = regexp.MustCompile(`^_+|_+$`)
)

// Generate формирует PDF-отчёт с результатами теста и возвращает его содержимое.
func Generate(d Data) ([]byte, error) {
	// Создаем новый PDF документ формата A4.
	pdf := gofpdf.New("P", "mm", "A4", "")

	// Регистрируем UTF-8 шрифты, поддерживающие кириллицу.
	pdf.AddUTF8Font("DejaVu", "", fontDir+"/DejaVuSans.ttf")
	pdf.AddUTF8Font("DejaVu", "B", fontDir+"/DejaVuSans-Bold.ttf")

	pdf.SetFont("DejaVu", "", 14)
	pdf.AddPage()

	// Заголовок отчёта.
	pdf.SetFont("DejaVu", "B", 16)
	pdf.MultiCell(0, 10, "Отчет по результатам теста", "", "L", false)
	pdf.Ln(4)

	// Карточка теста.
	pdf.SetFont("DejaVu", "", 12)
	info := fmt.Sprintf("Тест: %s\nПреподаватель: %s\nВопросов: %d\nСрок сдачи: %s\nСдали: %d\n",
		d.Test.Title, d.Author, len(d.Test.Answers),
		d.Test.Deadline.Format(model.DeadlineLayout), d.Summary.Count)
	pdf.MultiCell(0, 8, info, "", "L", false)
	pdf.Ln(4)

	if d.Summary.Count > 0 {
		// Сводная статистика.
		pdf.SetFont("DejaVu", "B", 12)
		pdf.MultiCell(0, 8, "Статистика:", "", "L", false)
		pdf.SetFont("DejaVu", "", 12)
		summary := fmt.Sprintf("Средний балл: %.1f%%\nЛучший: %.1f%%\nХудший: %.1f%%\n"+
			"Отлично (80%%+): %d\nХорошо (60–79%%): %d\nНеудовлетворительно: %d\n",
			d.Summary.Mean, d.Summary.Max, d.Summary.Min,
			d.Summary.Bands.Excellent, d.Summary.Bands.Good, d.Summary.Bands.Poor)
		pdf.MultiCell(0, 8, summary, "", "L", false)
		pdf.Ln(4)

		// Результаты по ученикам.
		pdf.SetFont("DejaVu", "B", 12)
		pdf.MultiCell(0, 8, "Результаты:", "", "L", false)
		pdf.SetFont("DejaVu", "", 12)
		for i, row := range d.Rows {
			line := fmt.Sprintf("%d. %s %s — %.1f%% (%s), верных %d, неверных %d, сдан %s",
				i+1, row.FirstName, row.LastName, row.Score,
				stats.BandFor(row.Score).Label(),
				row.CorrectCount, row.WrongCount,
				row.SubmittedAt.Format(model.DeadlineLayout))
			pdf.MultiCell(0, 8, line, "", "L", false)
		}
	} else {
		pdf.MultiCell(0, 8, "Результатов пока нет.", "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// Filename строит имя файла отчёта из названия теста и момента выгрузки.
// Всё, кроме букв и цифр, заменяется подчёркиванием.
func Filename(title string, now time.Time) string {
	safe := unsafeChars.ReplaceAllString(title, "_")
	safe = edgeUnderscore.ReplaceAllString(safe, "")
	if safe == "" {
		safe = "report"
	}
	return fmt.Sprintf("%s_%s.pdf", safe, now.Format("02_01_2006_15_04"))
}
