package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/renamarr/renamarr/internal/config"
	"github.com/renamarr/renamarr/internal/logger"
	"github.com/renamarr/renamarr/internal/metadata/tmdb"
	"github.com/renamarr/renamarr/internal/organizer"
	"github.com/renamarr/renamarr/internal/planner"
)

func main() {
	// Optional .env for local development; environment wins over it.
	_ = godotenv.Load()

	configPath := flag.String("config", "", "Path to config file")
	apply := flag.Bool("apply", false, "Apply the rename plan instead of previewing it")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}
	root := flag.Arg(0)

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		Path:       cfg.Logging.Path,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
		Compress:   cfg.Logging.Compress,
	})
	defer log.Close()

	client := tmdb.NewClient(cfg.TMDB, log.Logger)
	if !client.IsConfigured() {
		log.Fatal().Msg("TMDB API key is not configured; set RENAMARR_TMDB_API_KEY or tmdb.api_key in the config file")
	}

	engine := planner.NewEngine(client, log.Logger)
	plan, err := engine.Scan(context.Background(), root)
	if err != nil {
		log.Fatal().Err(err).Str("root", root).Msg("scan failed")
	}

	printPlan(plan)

	if !*apply {
		fmt.Println()
		fmt.Println("Preview only; pass -apply to rename.")
		return
	}

	errs := organizer.NewService(log.Logger).Apply(root, plan)
	if len(errs) > 0 {
		for _, e := range errs {
			log.Error().Err(e.Err).Str("item", e.Label).Msg("rename failed")
		}
		log.Error().Int("failed", len(errs)).Msg("rename finished with errors")
		os.Exit(1)
	}

	log.Info().
		Int("folders", len(plan.Folders)).
		Int("files", len(plan.Files)).
		Msg("rename finished")
}

// printPlan lists folder renames first, then file renames, old and new side
// by side.
func printPlan(plan *planner.Plan) {
	for _, entry := range plan.Folders {
		fmt.Printf("folder  %s  ->  %s\n", entry.OldRelPath, entry.NewRelPath)
	}
	for _, entry := range plan.Files {
		if entry.OldRelPath == entry.NewRelPath {
			fmt.Printf("file    %s  (unchanged)\n", entry.OldRelPath)
			continue
		}
		fmt.Printf("file    %s  ->  %s\n", entry.OldRelPath, entry.NewRelPath)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: renamarr [flags] <directory>

Scans a movie or show directory, previews normalized names resolved against
TMDB, and optionally applies them.

Flags:
`)
	flag.PrintDefaults()
}
