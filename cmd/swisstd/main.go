/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	"crypto/ed25519"
	"encoding/hex"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/mikeb26/swisstd/config"
	"github.com/mikeb26/swisstd/frontend/discord"
	"github.com/mikeb26/swisstd/importer"
	"github.com/mikeb26/swisstd/logging"
	"github.com/mikeb26/swisstd/store/memory"
	"github.com/mikeb26/swisstd/store/realtime"
	"github.com/mikeb26/swisstd/swiss"
	httptransport "github.com/mikeb26/swisstd/transport/http"
	"github.com/mikeb26/swisstd/uschess"
)

// cmdHandler defines the signature for command handler functions.
type cmdHandler func(ctx context.Context, args []string) error

// commands maps command names to their respective handler functions.
var commands = map[string]cmdHandler{
	"help":   handleHelp,
	"serve":  handleServe,
	"import": handleImport,
}

func main() {
	ctx := context.Background()

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	cmd := os.Args[1]
	handler, ok := commands[cmd]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		usage()
		os.Exit(1)
	}
	if err := handler(ctx, os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", cmd, err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Printf(`Usage: %s <command> [args]

Commands:
  serve    run the REST API and Discord webhook server
  import   fetch and register a section's roster from an HTML export
  help     show this message
`, os.Args[0])
}

func handleHelp(_ context.Context, _ []string) error {
	usage()
	return nil
}

func handleServe(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	configPath := fs.String("config", "swisstd.yaml", "path to the YAML config file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	zlog, err := logging.New()
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer zlog.Sync()
	slogger := slog.Default()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing store: %w", err)
	}

	apiHandler := httptransport.NewHandler(store, slogger)

	mux := http.NewServeMux()
	mux.Handle("/", apiHandler.Router())

	if cfg.Discord.PublicKey != "" {
		pubKey, err := decodePublicKey(cfg.Discord.PublicKey)
		if err != nil {
			return fmt.Errorf("decoding discord public key: %w", err)
		}
		bot := discord.New(store, slogger, pubKey)
		mux.HandleFunc("/discord/interactions", bot.InteractionHandler)
		zlog.Info("discord webhook route mounted")
	}

	zlog.Sugar().Infof("listening on %s", cfg.HTTP.Addr)
	return http.ListenAndServe(cfg.HTTP.Addr, mux)
}

func handleImport(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	configPath := fs.String("config", "swisstd.yaml", "path to the YAML config file")
	section := fs.String("section", "", "section name to register players into")
	url := fs.String("url", "", "registration export URL to fetch")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *section == "" || *url == "" {
		fs.Usage()
		return fmt.Errorf("--section and --url are required")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	store, err := buildStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing store: %w", err)
	}

	client := importer.NewClient(ctx)
	rows, err := client.FetchRegistrations(*url)
	if err != nil {
		return fmt.Errorf("fetching registrations: %w", err)
	}
	importer.EnrichWithUSCFRatings(ctx, rows, uschess.NewClient(ctx))

	err = store.Mutate(ctx, *section, func(sec *swiss.Section) error {
		return importer.RegisterAll(sec, rows)
	})
	if err != nil {
		return fmt.Errorf("registering players: %w", err)
	}

	fmt.Printf("registered %d players into section %q\n", len(rows), *section)
	return nil
}

// decodePublicKey parses a hex-encoded ed25519 public key, the format
// Discord's developer portal displays for an application's key.
func decodePublicKey(hexKey string) (ed25519.PublicKey, error) {
	raw, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("invalid hex: %w", err)
	}
	if len(raw) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("expected %d byte key, got %d", ed25519.PublicKeySize, len(raw))
	}
	return ed25519.PublicKey(raw), nil
}

// buildStore wires the configured Store backend. "memory" is the
// default, non-durable choice; "redis" persists to the realtime store
// so a section survives a process restart.
func buildStore(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.Storage.Backend {
	case "redis":
		return realtime.New(ctx, realtime.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   cfg.Redis.Prefix,
		})
	case "memory", "":
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
