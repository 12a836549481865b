/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package importer

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/mikeb26/swisstd/swiss"
	"github.com/mikeb26/swisstd/uschess"
)

var errBoom = fmt.Errorf("boom")

type fakeLookup struct {
	rating string
	err    error
}

func (f fakeLookup) FetchPlayer(_ context.Context, memberID uschess.MemID) (*uschess.Player, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &uschess.Player{MemberID: memberID, RegRating: f.rating}, nil
}

const sampleRegistrationHTML = `
<html><body>
<table id="members"><tbody>
<tr><td>A1</td><td>alice smith</td><td>1800</td><td>12345678</td><td>2026-01-01</td></tr>
<tr><td>B2</td><td>bob jones</td><td>1650</td><td>87654321</td><td>2026-01-02</td></tr>
<tr><td></td><td></td></tr>
</tbody></table>
</body></html>
`

func TestParseRegistrations(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(sampleRegistrationHTML))
	if err != nil {
		t.Fatalf("NewDocumentFromReader: %v", err)
	}

	rows, err := ParseRegistrations(doc)
	if err != nil {
		t.Fatalf("ParseRegistrations: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	if rows[0].Player.ID != "A1" || rows[0].Player.Rating != 1800 || rows[0].Player.USCFID != "12345678" {
		t.Errorf("rows[0] = %+v", rows[0].Player)
	}
	if rows[0].RegistrationDate.IsZero() {
		t.Error("expected a parsed registration date")
	}
}

func TestParseRegistrationsMissingTable(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<html><body></body></html>"))
	if err != nil {
		t.Fatalf("NewDocumentFromReader: %v", err)
	}
	if _, err := ParseRegistrations(doc); err == nil {
		t.Error("expected an error when the registration table is absent")
	}
}

func TestRegisterAll(t *testing.T) {
	sec := swiss.NewSection("Open", 3)
	rows := []RegistrationRow{
		{Player: swiss.Player{ID: "A1", Name: "Alice", Rating: 1800}},
		{Player: swiss.Player{ID: "B2", Name: "Bob", Rating: 1650}},
	}
	if err := RegisterAll(sec, rows); err != nil {
		t.Fatalf("RegisterAll: %v", err)
	}
	if len(sec.Players) != 2 {
		t.Fatalf("len(sec.Players) = %d, want 2", len(sec.Players))
	}
}

func TestEnrichWithUSCFRatingsFillsMissingRating(t *testing.T) {
	rows := []RegistrationRow{
		{Player: swiss.Player{ID: "A1", Name: "Alice", Rating: 0, USCFID: "12345678"}},
		{Player: swiss.Player{ID: "B2", Name: "Bob", Rating: 1700, USCFID: "87654321"}},
	}
	EnrichWithUSCFRatings(context.Background(), rows, fakeLookup{rating: "1850"})

	if rows[0].Player.Rating != 1850 {
		t.Errorf("rows[0].Player.Rating = %d, want 1850", rows[0].Player.Rating)
	}
	if rows[1].Player.Rating != 1700 {
		t.Errorf("rows[1].Player.Rating = %d, want unchanged 1700", rows[1].Player.Rating)
	}
}

func TestEnrichWithUSCFRatingsSkipsLookupFailure(t *testing.T) {
	rows := []RegistrationRow{
		{Player: swiss.Player{ID: "A1", Name: "Alice", Rating: 0, USCFID: "12345678"}},
	}
	EnrichWithUSCFRatings(context.Background(), rows, fakeLookup{err: errBoom})

	if rows[0].Player.Rating != 0 {
		t.Errorf("rows[0].Player.Rating = %d, want unchanged 0 on lookup failure", rows[0].Player.Rating)
	}
}

func TestRegisterAllStopsOnDuplicate(t *testing.T) {
	sec := swiss.NewSection("Open", 3)
	rows := []RegistrationRow{
		{Player: swiss.Player{ID: "A1", Name: "Alice", Rating: 1800}},
		{Player: swiss.Player{ID: "A1", Name: "Alice Dup", Rating: 1800}},
	}
	if err := RegisterAll(sec, rows); err == nil {
		t.Error("expected an error registering a duplicate id")
	}
}
