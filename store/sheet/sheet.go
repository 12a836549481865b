/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
// Package sheet imports rosters from and exports pairings/standings to
// XLSX workbooks, the format the club and most USCF tournament
// software exchange rosters and wallcharts in. It follows
// frolf-bot's parseXLSXCore: open the reader, grab the first sheet,
// walk GetRows, and turn missing/malformed cells into a wrapped error
// rather than a panic.
package sheet

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/mikeb26/swisstd/swiss"
)

// header names expected in row 1 of a roster workbook.
const (
	colID     = "ID"
	colName   = "Name"
	colRating = "Rating"
	colUSCF   = "USCFID"
)

// ImportRoster parses an XLSX roster sheet (header row: ID, Name,
// Rating, USCFID) into a slice of swiss.Player ready for
// Section.RegisterPlayer.
func ImportRoster(data []byte) ([]swiss.Player, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("opening roster workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("roster workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("roster sheet %q has no data rows", sheets[0])
	}

	col, err := columnIndex(rows[0])
	if err != nil {
		return nil, err
	}

	players := make([]swiss.Player, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rowNum := i + 2
		id := cellAt(row, col[colID])
		name := cellAt(row, col[colName])
		if id == "" || name == "" {
			continue // blank trailing row
		}
		rating, err := strconv.Atoi(cellAt(row, col[colRating]))
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid rating: %w", rowNum, err)
		}
		players = append(players, swiss.Player{
			ID:     swiss.PlayerID(id),
			Name:   name,
			Rating: rating,
			USCFID: cellAt(row, col[colUSCF]),
		})
	}
	return players, nil
}

func columnIndex(header []string) (map[string]int, error) {
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[h] = i
	}
	for _, required := range []string{colID, colName, colRating} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("roster sheet missing required column %q", required)
		}
	}
	return col, nil
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// ExportStandings renders standings as an XLSX workbook, one row per
// StandingRow, in rank order.
func ExportStandings(rows []swiss.StandingRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()
	const sheetName = "Standings"
	f.SetSheetName(f.GetSheetName(0), sheetName)

	headers := []string{"Rank", "PlayerID", "Name", "Score", "Buchholz", "Median", "SonnebornBerger", "Cumulative"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, h)
	}
	for r, row := range rows {
		values := []any{row.Rank, string(row.PlayerID), row.Name, row.Score.Float(), row.Buchholz.Float(), row.Median.Float(), row.SonnebornBerger.Float(), row.Cumulative.Float()}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			f.SetCellValue(sheetName, cell, v)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("writing standings workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportPairings renders one round's pairings as an XLSX workbook.
func ExportPairings(round swiss.Round, roster func(swiss.PlayerID) string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()
	sheetName := fmt.Sprintf("Round %d", round.Number)
	f.SetSheetName(f.GetSheetName(0), sheetName)

	headers := []string{"Board", "White", "Black", "Result"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, h)
	}
	for r, p := range round.Pairings {
		black := "BYE"
		if p.BlackID != nil {
			black = roster(*p.BlackID)
		}
		result := ""
		if p.Result != nil {
			result = string(*p.Result)
		}
		values := []any{p.Board, roster(p.WhiteID), black, result}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			f.SetCellValue(sheetName, cell, v)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("writing pairings workbook: %w", err)
	}
	return buf.Bytes(), nil
}
