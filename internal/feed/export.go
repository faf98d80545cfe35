package feed

import (
	"bytes"
	"time"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/language"

	"github.com/derWhity/greentable/internal/models"
	"github.com/derWhity/greentable/internal/schedule"
)

// Names of the sheets inside the exported workbook
const (
	SheetTournaments = "Torneios"
	SheetWeek        = "Semana"
)

var exportHeader = []interface{}{"Nome", "Data", "Dia", "Horário", "Buy-in", "Premiação", "Vagas", "Observações"}

// Workbook writes the schedule into an XLSX workbook.
// The first sheet lists all tournaments sorted by date, the second one shows the names of the tournaments per weekday
func Workbook(events []models.Tournament, loc *time.Location, lang language.Tag) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), SheetTournaments); err != nil {
		return nil, errors.Wrap(err, "Workbook: Failed to name sheet")
	}
	if err := writeRow(f, SheetTournaments, 1, exportHeader); err != nil {
		return nil, err
	}
	for i, ev := range schedule.SortByDate(events, loc) {
		row := []interface{}{
			ev.Name,
			ev.Date,
			schedule.DayLabel(ev, loc, lang),
			ev.Time,
			ev.BuyIn,
			ev.Prize,
			ev.MaxPlayers,
			ev.SpecialFeatures,
		}
		if err := writeRow(f, SheetTournaments, i+2, row); err != nil {
			return nil, err
		}
	}

	if _, err := f.NewSheet(SheetWeek); err != nil {
		return nil, errors.Wrap(err, "Workbook: Failed to create week sheet")
	}
	week := schedule.PartitionByWeekday(events, loc)
	for day, bucket := range week {
		col := []interface{}{schedule.WeekdayLabel(time.Weekday(day), lang)}
		for _, ev := range bucket {
			col = append(col, ev.Name)
		}
		cell, err := excelize.CoordinatesToCellName(day+1, 1)
		if err != nil {
			return nil, errors.Wrap(err, "Workbook: Invalid cell")
		}
		if err := f.SetSheetCol(SheetWeek, cell, &col); err != nil {
			return nil, errors.Wrap(err, "Workbook: Failed to write week column")
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, errors.Wrap(err, "Workbook: Failed to write workbook")
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return errors.Wrap(err, "writeRow: Invalid cell")
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return errors.Wrapf(err, "writeRow: Failed to write row %d", row)
	}
	return nil
}
