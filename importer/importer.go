/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
// Package importer fetches and parses a club's HTML registration export
// into swiss.Player rows, in the same fetch-then-goquery-scrape idiom
// bcc/tournament.go uses for the "table#members" entries table: an
// http.Client backed by S3 httpcache, a goquery.Document, a per-row
// cell walk with graceful skips for malformed rows.
package importer

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/mikeb26/swisstd/internal"
	"github.com/mikeb26/swisstd/internal/httpcache"
	"github.com/mikeb26/swisstd/swiss"
	"github.com/mikeb26/swisstd/uschess"
)

// RegistrationRow is one parsed entry from a registration export: a
// candidate swiss.Player plus the raw registration timestamp, which
// callers may use to break ties for late-entry byes but which
// RegisterPlayer itself doesn't need.
type RegistrationRow struct {
	Player           swiss.Player
	RegistrationDate time.Time
}

// Client fetches registration pages through a 1-day cached http.Client,
// matching uschess.Client's cache lifetime for frequently-refreshed pages.
type Client struct {
	httpClient *http.Client
}

// NewClient builds a Client backed by internal's S3 httpcache.
func NewClient(ctx context.Context) *Client {
	return &Client{httpClient: httpcache.NewCachedHttpClient(ctx, 24*time.Hour)}
}

// FetchRegistrations retrieves and parses the registration export page at
// url into RegistrationRows.
func (c *Client) FetchRegistrations(url string) ([]RegistrationRow, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating registration request: %w", err)
	}
	req.Header.Set("User-Agent", internal.UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching registration page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected registration page status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing registration HTML: %w", err)
	}
	return ParseRegistrations(doc)
}

// ParseRegistrations walks a "table#members tbody tr" registration table
// and returns one RegistrationRow per well-formed row, skipping rows
// that don't have enough cells to contain an id, name, rating, and USCF
// id the way parsePlayers skips malformed tournament-entry rows.
func ParseRegistrations(doc *goquery.Document) ([]RegistrationRow, error) {
	rows := doc.Find("table#members tbody tr")
	if rows.Length() == 0 {
		return nil, fmt.Errorf("registration table not found")
	}

	var out []RegistrationRow
	rows.Each(func(_ int, s *goquery.Selection) {
		cells := s.Find("td")
		if cells.Length() < 4 {
			return
		}

		id := strings.TrimSpace(cells.Eq(0).Text())
		name := internal.NormalizeName(strings.TrimSpace(cells.Eq(1).Text()))
		if id == "" || name == "" {
			return
		}
		rating, _ := strconv.Atoi(strings.TrimSpace(cells.Eq(2).Text()))
		uscfID := strings.TrimSpace(cells.Eq(3).Text())

		regDate := time.Time{}
		if cells.Length() >= 5 {
			regDate, _ = internal.ParseDateOrZero(strings.TrimSpace(cells.Eq(4).Text()))
		}

		out = append(out, RegistrationRow{
			Player: swiss.Player{
				ID:     swiss.PlayerID(id),
				Name:   name,
				Rating: rating,
				USCFID: uscfID,
			},
			RegistrationDate: regDate,
		})
	})

	return out, nil
}

// RegisterAll applies every parsed row to sec via RegisterPlayer,
// stopping at the first error so a partially-garbled export doesn't
// silently half-populate the roster.
func RegisterAll(sec *swiss.Section, rows []RegistrationRow) error {
	for _, row := range rows {
		if err := sec.RegisterPlayer(row.Player); err != nil {
			return fmt.Errorf("registering %s: %w", row.Player.ID, err)
		}
	}
	return nil
}

// USCFLookup fetches a member's current regular rating, the seam
// EnrichWithUSCFRatings calls into — satisfied by *uschess.Client.
type USCFLookup interface {
	FetchPlayer(ctx context.Context, memberID uschess.MemID) (*uschess.Player, error)
}

// EnrichWithUSCFRatings fills in Rating for any row whose registration
// export left it at zero but carries a numeric USCFID, looking the
// player up through lookup (typically a uschess.Client). A row is left
// untouched if its USCFID doesn't parse, the lookup fails, or the
// member turns out to be unrated; enrichment is best-effort and never
// fails the whole batch over one bad id.
func EnrichWithUSCFRatings(ctx context.Context, rows []RegistrationRow, lookup USCFLookup) {
	for i := range rows {
		row := &rows[i]
		if row.Player.Rating != 0 || row.Player.USCFID == "" {
			continue
		}
		memID, err := strconv.Atoi(row.Player.USCFID)
		if err != nil {
			continue
		}
		player, err := lookup.FetchPlayer(ctx, uschess.MemID(memID))
		if err != nil {
			continue
		}
		if rating, err := strconv.Atoi(player.RegRating); err == nil {
			row.Player.Rating = rating
		}
	}
}
