package export

import (
	"bytes"
	"fmt"

	"salon/internal/domains/reservation/engine"
	"salon/internal/domains/reservation/model"
	"salon/shared/constant"
	"salon/shared/timezone"

	"github.com/xuri/excelize/v2"
)

const (
	SheetName      = "派遣予約一覧"
	fileNameLayout = "20060102-1504"
)

var ReservationHeader = []string{
	"予約ID",
	"クライアント",
	"店舗",
	"利用者",
	"開始",
	"状態",
}

var columnWidths = []float64{14, 24, 20, 16, 18, 12}

// FileName names an export after the reference time it was taken at.
func FileName(ref int64) string {
	return fmt.Sprintf("reservations-%s.xlsx", timezone.FormatMillis(ref, fileNameLayout))
}

// Reservations writes one row per joined reservation, in the order given, below a frozen header row.
func Reservations(items []model.JoinedReservation) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	if err = f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to delete default sheet: %w", err)
	}

	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, header := range ReservationHeader {
		if err = setCell(f, col+1, 1, header); err != nil {
			return nil, err
		}

		name, _ := excelize.ColumnNumberToName(col + 1)
		if err = f.SetColWidth(SheetName, name, name, columnWidths[col]); err != nil {
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	if err = f.SetCellStyle(SheetName, "A1", lastHeaderCell(), headerStyle); err != nil {
		return nil, fmt.Errorf("failed to set header style: %w", err)
	}

	for i, item := range items {
		row := i + 2

		clientName := constant.Empty
		if item.Client != nil {
			clientName = item.Client.Name
		}

		values := []string{
			item.Reservation.ID,
			clientName,
			item.Store.Name,
			item.User.Name,
			timezone.FormatMillis(item.Slot.StartAt, constant.CivilDateFormat),
			engine.Classify(item.Reservation.Status).Label,
		}

		for col, value := range values {
			if err = setCell(f, col+1, row, value); err != nil {
				return nil, err
			}
		}
	}

	if err = f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("failed to freeze panes: %w", err)
	}

	var buf bytes.Buffer
	if _, err = f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	return buf.Bytes(), nil
}

func setCell(f *excelize.File, col, row int, value string) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("failed to convert coordinates: %w", err)
	}

	if err = f.SetCellValue(SheetName, cell, value); err != nil {
		return fmt.Errorf("failed to set cell %s: %w", cell, err)
	}

	return nil
}

func lastHeaderCell() string {
	cell, _ := excelize.CoordinatesToCellName(len(ReservationHeader), 1)

	return cell
}
