/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
// Package discord serves the swiss engine over a Discord slash-command
// webhook: verify the interaction's ed25519 signature, dispatch on
// subcommand name through a CmdHandler map, and reply with an ephemeral
// message truncated to Discord's content limit.
package discord

import (
	"context"
	"crypto/ed25519"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/mikeb26/swisstd/swiss"
)

const msgLimit = 1988 // keep space for newlines and markdown

// Store is the persistence seam the bot needs, identical in shape to
// transport/http's.
type Store interface {
	Load(ctx context.Context, name string) (*swiss.Section, error)
	Save(ctx context.Context, sec *swiss.Section) error
	Mutate(ctx context.Context, name string, fn func(*swiss.Section) error) error
}

// SubCommand names a "/swiss <sub>" slash command.
type SubCommand string

const (
	CmdPairings  SubCommand = "pairings"
	CmdStandings SubCommand = "standings"
	CmdResult    SubCommand = "result"
	CmdRegister  SubCommand = "register"
	CmdLock      SubCommand = "lock"
	CmdHelp      SubCommand = "help"
)

// CmdHandler answers one interaction, in the teacher's signature.
type CmdHandler func(ctx context.Context, inter *discordgo.Interaction) *discordgo.InteractionResponse

// Bot dispatches "/swiss" slash-command interactions against a Store.
type Bot struct {
	store     Store
	logger    *slog.Logger
	pubKey    ed25519.PublicKey
	subCmdHdlrs map[SubCommand]CmdHandler
}

// New builds a Bot verifying interactions against pubKey.
func New(store Store, logger *slog.Logger, pubKey ed25519.PublicKey) *Bot {
	b := &Bot{store: store, logger: logger, pubKey: pubKey}
	b.subCmdHdlrs = map[SubCommand]CmdHandler{
		CmdPairings:  b.pairingsHandler,
		CmdStandings: b.standingsHandler,
		CmdResult:    b.resultHandler,
		CmdRegister:  b.registerHandler,
		CmdLock:      b.lockHandler,
		CmdHelp:      b.helpHandler,
	}
	return b
}

// InteractionHandler is the http.HandlerFunc Discord's webhook config
// points at.
func (b *Bot) InteractionHandler(w http.ResponseWriter, r *http.Request) {
	if !discordgo.VerifyInteraction(r, b.pubKey) {
		b.logger.Warn("discord: failed interaction verification")
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var inter discordgo.Interaction
	if err := inter.UnmarshalJSON(body); err != nil {
		b.logger.Error("discord: failed to unmarshal interaction", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if inter.Type == discordgo.InteractionPing {
		writeResponse(w, &discordgo.InteractionResponse{Type: discordgo.InteractionResponsePong})
		return
	}

	resp := b.dispatch(r.Context(), &inter)
	writeResponse(w, resp)
}

func writeResponse(w http.ResponseWriter, resp *discordgo.InteractionResponse) {
	raw, err := json.Marshal(resp)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(raw)
}

func (b *Bot) dispatch(ctx context.Context, inter *discordgo.Interaction) *discordgo.InteractionResponse {
	data := inter.ApplicationCommandData()
	hdlr := b.helpHandler
	if len(data.Options) > 0 {
		if h, ok := b.subCmdHdlrs[SubCommand(data.Options[0].Name)]; ok {
			hdlr = h
		}
	}
	return hdlr(ctx, inter)
}

func ephemeral(content string) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: truncate(content),
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	}
}

func truncate(s string) string {
	runes := []rune(s)
	if len(runes) > msgLimit {
		s = fmt.Sprintf("%v...", string(runes[:msgLimit]))
	}
	return s
}

func stringOption(inter *discordgo.Interaction, name string) (string, bool) {
	data := inter.ApplicationCommandData()
	if len(data.Options) == 0 {
		return "", false
	}
	for _, opt := range data.Options[0].Options {
		if opt.Name == name {
			return opt.StringValue(), true
		}
	}
	return "", false
}

func intOption(inter *discordgo.Interaction, name string) (int64, bool) {
	data := inter.ApplicationCommandData()
	if len(data.Options) == 0 {
		return 0, false
	}
	for _, opt := range data.Options[0].Options {
		if opt.Name == name {
			return opt.IntValue(), true
		}
	}
	return 0, false
}

func (b *Bot) helpHandler(_ context.Context, _ *discordgo.Interaction) *discordgo.InteractionResponse {
	return ephemeral("Available: /swiss pairings <section>, standings <section>, " +
		"result <section> <round> <board> <token>, register <section> <id> <name> <rating>, lock <section>")
}

func (b *Bot) pairingsHandler(ctx context.Context, inter *discordgo.Interaction) *discordgo.InteractionResponse {
	section, ok := stringOption(inter, "section")
	if !ok {
		return ephemeral("Please provide a section name.")
	}
	sec, err := b.store.Load(ctx, section)
	if err != nil || sec == nil || len(sec.Rounds) == 0 {
		return ephemeral(fmt.Sprintf("No pairings yet for section %q.", section))
	}
	round := sec.Rounds[len(sec.Rounds)-1]

	var sb strings.Builder
	fmt.Fprintf(&sb, "**%s — Round %d**\n", section, round.Number)
	for _, p := range round.Pairings {
		if p.IsBye {
			fmt.Fprintf(&sb, "Board %d: %s — BYE\n", p.Board, nameOf(sec, p.WhiteID))
			continue
		}
		fmt.Fprintf(&sb, "Board %d: %s vs %s\n", p.Board, nameOf(sec, p.WhiteID), nameOf(sec, *p.BlackID))
	}
	return ephemeral(sb.String())
}

func (b *Bot) standingsHandler(ctx context.Context, inter *discordgo.Interaction) *discordgo.InteractionResponse {
	section, ok := stringOption(inter, "section")
	if !ok {
		return ephemeral("Please provide a section name.")
	}
	sec, err := b.store.Load(ctx, section)
	if err != nil || sec == nil {
		return ephemeral(fmt.Sprintf("Section %q not found.", section))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "**%s — Standings**\n", section)
	for _, row := range swiss.ComputeStandings(sec) {
		fmt.Fprintf(&sb, "%d. %s — %s\n", row.Rank, row.Name, row.Score.String())
	}
	return ephemeral(sb.String())
}

func (b *Bot) resultHandler(ctx context.Context, inter *discordgo.Interaction) *discordgo.InteractionResponse {
	section, ok := stringOption(inter, "section")
	if !ok {
		return ephemeral("Please provide a section name.")
	}
	round, ok := intOption(inter, "round")
	if !ok {
		return ephemeral("Please provide a round number.")
	}
	board, ok := intOption(inter, "board")
	if !ok {
		return ephemeral("Please provide a board number.")
	}
	tokenStr, ok := stringOption(inter, "token")
	if !ok {
		return ephemeral("Please provide a result (1-0, 0-1, or 0.5-0.5).")
	}

	err := b.store.Mutate(ctx, section, func(sec *swiss.Section) error {
		return swiss.ApplyResult(sec, int(round), int(board), swiss.ResultToken(tokenStr))
	})
	if err != nil {
		return ephemeral(fmt.Sprintf("Error recording result: %v", err))
	}
	return ephemeral(fmt.Sprintf("Recorded round %d board %d: %s", round, board, tokenStr))
}

func (b *Bot) registerHandler(ctx context.Context, inter *discordgo.Interaction) *discordgo.InteractionResponse {
	section, ok := stringOption(inter, "section")
	if !ok {
		return ephemeral("Please provide a section name.")
	}
	id, ok := stringOption(inter, "id")
	if !ok {
		return ephemeral("Please provide a player id.")
	}
	name, _ := stringOption(inter, "name")
	ratingStr, _ := stringOption(inter, "rating")
	rating, _ := strconv.Atoi(ratingStr)

	err := b.store.Mutate(ctx, section, func(sec *swiss.Section) error {
		return sec.RegisterPlayer(swiss.Player{ID: swiss.PlayerID(id), Name: name, Rating: rating})
	})
	if err != nil {
		return ephemeral(fmt.Sprintf("Error registering player: %v", err))
	}
	return ephemeral(fmt.Sprintf("Registered %s (%s) in %s", name, id, section))
}

func (b *Bot) lockHandler(ctx context.Context, inter *discordgo.Interaction) *discordgo.InteractionResponse {
	section, ok := stringOption(inter, "section")
	if !ok {
		return ephemeral("Please provide a section name.")
	}
	err := b.store.Mutate(ctx, section, func(sec *swiss.Section) error {
		sec.Lock()
		return nil
	})
	if err != nil {
		return ephemeral(fmt.Sprintf("Error locking section: %v", err))
	}
	return ephemeral(fmt.Sprintf("Section %s locked.", section))
}

func nameOf(sec *swiss.Section, id swiss.PlayerID) string {
	if p := sec.Player(id); p != nil {
		return p.Name
	}
	return string(id)
}
