/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package sheet

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/mikeb26/swisstd/swiss"
)

func buildRosterWorkbook(t *testing.T, rows [][]string) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheetName := f.GetSheetName(0)
	for r, row := range rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
			f.SetCellValue(sheetName, cell, v)
		}
	}
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("building test workbook: %v", err)
	}
	return buf.Bytes()
}

func TestImportRoster(t *testing.T) {
	data := buildRosterWorkbook(t, [][]string{
		{"ID", "Name", "Rating", "USCFID"},
		{"A", "Alice", "1800", "12345678"},
		{"B", "Bob", "1600", ""},
	})

	players, err := ImportRoster(data)
	if err != nil {
		t.Fatalf("ImportRoster: %v", err)
	}
	if len(players) != 2 {
		t.Fatalf("len(players) = %d, want 2", len(players))
	}
	if players[0].ID != "A" || players[0].Rating != 1800 || players[0].USCFID != "12345678" {
		t.Errorf("players[0] = %+v, want A/1800/12345678", players[0])
	}
	if players[1].ID != "B" || players[1].Rating != 1600 {
		t.Errorf("players[1] = %+v, want B/1600", players[1])
	}
}

func TestImportRosterMissingColumnErrors(t *testing.T) {
	data := buildRosterWorkbook(t, [][]string{
		{"ID", "Name"},
		{"A", "Alice"},
	})
	if _, err := ImportRoster(data); err == nil {
		t.Fatal("ImportRoster with no Rating column should fail")
	}
}

func TestExportStandingsRoundTrips(t *testing.T) {
	rows := []swiss.StandingRow{
		{Rank: 1, PlayerID: "A", Name: "Alice", Score: swiss.Full},
	}
	data, err := ExportStandings(rows)
	if err != nil {
		t.Fatalf("ExportStandings: %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("reopening exported workbook: %v", err)
	}
	defer f.Close()
	got, err := f.GetCellValue("Standings", "B2")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if got != "A" {
		t.Errorf("B2 = %q, want %q", got, "A")
	}
}
