/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package discord

import (
	"context"
	"log/slog"
	"testing"

	"github.com/bwmarrin/discordgo"

	"github.com/mikeb26/swisstd/store/memory"
	"github.com/mikeb26/swisstd/swiss"
)

func newTestBot() *Bot {
	return New(memory.New(), slog.Default(), nil)
}

func registerInteraction(sub string, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.Interaction {
	inter := &discordgo.Interaction{Type: discordgo.InteractionApplicationCommand}
	data := discordgo.ApplicationCommandInteractionData{
		Options: []*discordgo.ApplicationCommandInteractionDataOption{
			{Name: sub, Options: opts},
		},
	}
	inter.Data = data
	return inter
}

func strOpt(name, val string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Value: val}
}

func TestRegisterAndStandingsHandlers(t *testing.T) {
	b := newTestBot()
	ctx := context.Background()

	inter := registerInteraction(string(CmdRegister),
		strOpt("section", "Open"),
		strOpt("id", "A"),
		strOpt("name", "Alice"),
		strOpt("rating", "1800"),
	)
	resp := b.dispatch(ctx, inter)
	if resp.Data == nil || resp.Data.Content == "" {
		t.Fatal("register handler returned empty response")
	}

	sec, err := b.store.Load(ctx, "Open")
	if err != nil || sec == nil || len(sec.Players) != 1 {
		t.Fatalf("Load after register = %+v, err=%v", sec, err)
	}

	standingsInter := registerInteraction(string(CmdStandings), strOpt("section", "Open"))
	resp = b.dispatch(ctx, standingsInter)
	if resp.Data == nil {
		t.Fatal("standings handler returned no data")
	}
}

func TestPairingsHandlerNoRoundsYet(t *testing.T) {
	b := newTestBot()
	ctx := context.Background()

	if err := b.store.Save(ctx, swissSectionWithNoRounds()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	inter := registerInteraction(string(CmdPairings), strOpt("section", "Open"))
	resp := b.dispatch(ctx, inter)
	if resp.Data == nil {
		t.Fatal("pairings handler returned no data")
	}
}

func swissSectionWithNoRounds() *swiss.Section {
	return swiss.NewSection("Open", 3)
}

func TestHelpHandlerIsDefaultForUnknownSubcommand(t *testing.T) {
	b := newTestBot()
	inter := registerInteraction("bogus")
	resp := b.dispatch(context.Background(), inter)
	if resp.Data == nil || resp.Data.Content == "" {
		t.Fatal("help fallback returned empty response")
	}
}
