// Package export renders a barber's day schedule as an Excel workbook for
// the admin UI.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"barberbook/internal/model"
)

var dayScheduleColumns = []string{"Time", "Duration (min)", "Client", "Service", "Status", "Price", "Notes"}

// WriteDaySchedule writes the appointments for one barber and date as an
// .xlsx workbook to w. Appointments are written in the order given.
func WriteDaySchedule(w io.Writer, barberName, date string, appointments []model.Appointment) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := sheetName(barberName, date)
	f.SetSheetName("Sheet1", sheet)

	for i, col := range dayScheduleColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return err
		}
	}

	// Bold header row.
	if style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		startCell, _ := excelize.CoordinatesToCellName(1, 1)
		endCell, _ := excelize.CoordinatesToCellName(len(dayScheduleColumns), 1)
		_ = f.SetCellStyle(sheet, startCell, endCell, style)
	}

	for rowIdx, apt := range appointments {
		values := []any{apt.Time, apt.Duration, apt.ClientName, apt.ServiceName, string(apt.Status), apt.Price, apt.Notes}
		for colIdx, val := range values {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, val); err != nil {
				return err
			}
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// sheetName builds a sheet title within Excel's 31 character limit.
func sheetName(barberName, date string) string {
	name := fmt.Sprintf("%s %s", barberName, date)
	if len(name) > 31 {
		name = name[:31]
	}
	return name
}
