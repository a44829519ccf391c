package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"gopkg.in/yaml.v3"

	"zosiaprint/internal/config"
	"zosiaprint/internal/dataset"
	"zosiaprint/internal/dates"
	"zosiaprint/internal/enrich"
	appLog "zosiaprint/internal/log"
	"zosiaprint/internal/model"
	"zosiaprint/internal/render"
	"zosiaprint/internal/schedule"
)

// flagConfig holds CLI flag values.
type flagConfig struct {
	configPath   string
	place        string
	schedulePath string
	dataPath     string
	blanks       int
	renderTarget string
	htmlOutput   bool
	debug        bool
}

func main() {
	appLog.Info("zosiaprint starting", "version", "1.0.0")

	flags := parseFlags()
	if flags.debug {
		appLog.SetLevel(appLog.LevelDebug)
	}

	conf, err := config.Load(flags.configPath)
	if err != nil {
		appLog.Error("failed to load config", err, "config_path", flags.configPath)
		os.Exit(1)
	}

	// CLI overrides.
	if flags.blanks >= 0 {
		conf.Blanks = flags.blanks
	}

	appLog.Info("effective config",
		"places_path", conf.PlacesPath,
		"templates_path", conf.TemplatesPath,
		"target_dir", conf.TargetDir,
		"locale", conf.Locale,
		"blanks", conf.Blanks,
		"render", flags.renderTarget,
		"html", flags.htmlOutput,
	)

	// Root context with cancellation on SIGINT/SIGTERM so a stuck Chromium
	// never wedges the batch.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		appLog.Info("signal received, shutting down", "signal", sig.String())
		cancel()
	}()

	if err := run(ctx, conf, flags); err != nil {
		appLog.Error("generation failed", err)
		os.Exit(1)
	}
	appLog.Info("zosiaprint done", "target_dir", conf.TargetDir)
}

func run(ctx context.Context, conf *config.Config, flags flagConfig) error {
	// Load everything up front: a load failure must abort before any
	// output file is touched.
	ds, err := dataset.Load(flags.dataPath)
	if err != nil {
		return err
	}

	place, err := loadPlace(conf.PlacesPath, flags.place)
	if err != nil {
		return err
	}

	days, err := loadSchedule(flags.schedulePath, conf.Locale)
	if err != nil {
		return err
	}

	campDate := dates.FormatInterval(ds.StartDate, ds.EndDate, conf.Locale)
	appLog.Info("camp edition", "edition", dates.Edition(time.Now()), "camp_date", campDate)

	enricher := &enrich.Enricher{
		Lectures: ds.Lectures,
		Sponsors: ds.SponsorIndex(),
	}
	enriched := enricher.Enrich(days)

	engine := &render.Engine{
		TemplatesDir: conf.TemplatesPath,
		TargetDir:    conf.TargetDir,
		HTMLOnly:     flags.htmlOutput,
		Debug:        flags.debug,
		PDF:          conf.PDF,
	}
	if err := engine.Start(); err != nil {
		return err
	}
	defer engine.Close()

	renderAll := flags.renderTarget == "all"

	if renderAll || strings.HasPrefix(flags.renderTarget, "book") {
		appLog.Info("rendering book")
		if err := engine.RenderDocument(ctx, "book", render.Context{
			"days":      enriched,
			"place":     place,
			"contacts":  ds.Contacts,
			"camp_date": campDate,
			"sponsors":  ds.Sponsors,
		}); err != nil {
			return err
		}
	}

	if renderAll || strings.HasPrefix(flags.renderTarget, "schedule") {
		appLog.Info("rendering schedule")
		if err := engine.RenderDocument(ctx, "schedule", render.Context{
			"days": enriched,
		}); err != nil {
			return err
		}

		// Web-facing exports for the website.
		if err := render.WriteWebSchedule(filepath.Join(conf.TargetDir, "web_schedule.json"), enriched); err != nil {
			return err
		}
		if err := render.WriteICS(filepath.Join(conf.TargetDir, "schedule.ics"), enriched, ds.StartDate); err != nil {
			return err
		}
	}

	if renderAll || strings.HasPrefix(flags.renderTarget, "identifier") {
		appLog.Info("rendering identifiers")
		opts := enrich.IdentifierOptions{Sponsors: ds.SponsorIndex()}
		if conf.PaidOnly {
			opts.Filter = enrich.PaymentAcceptedOnly
		}
		prefs := enrich.BuildIdentifierList(ds.Preferences, conf.Blanks, opts)

		if err := engine.RenderDocument(ctx, "identifier", render.Context{
			"prefs":     prefs,
			"camp_date": campDate,
			"location":  place["localization"],
		}); err != nil {
			return err
		}
	}

	return nil
}

// loadPlace reads the venue descriptor for the given place name. The
// descriptor is free-form YAML consumed verbatim by the templates.
func loadPlace(placesPath, place string) (map[string]any, error) {
	if place == "" {
		return nil, fmt.Errorf("place is required (available: %s)", strings.Join(placeOptions(placesPath), ", "))
	}

	path := filepath.Join(placesPath, place+".yaml")
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load place %q: %w", place, err)
	}

	var out map[string]any
	if err := yaml.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("parse place %q: %w", place, err)
	}
	return out, nil
}

// placeOptions lists available venue descriptors for the usage message.
func placeOptions(placesPath string) []string {
	entries, err := os.ReadDir(placesPath)
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".yaml"); ok {
			names = append(names, name)
		}
	}
	return names
}

// loadSchedule picks the parser by file extension: .yaml/.yml for the
// day-structured form, anything else is treated as the spreadsheet CSV.
func loadSchedule(path, locale string) ([]model.ScheduleDay, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return schedule.LoadYAML(path)
	default:
		return schedule.LoadCSV(path, dates.Weekdays(locale))
	}
}

func parseFlags() flagConfig {
	var cfg flagConfig

	flag.StringVar(&cfg.configPath, "config", "./zosiaprint.yaml", "Path to config file")
	flag.StringVar(&cfg.place, "place", "", "Name of the venue descriptor (data/places/<name>.yaml)")
	flag.StringVar(&cfg.schedulePath, "schedule", "", "Path to the schedule file (.yaml or spreadsheet .csv)")
	flag.StringVar(&cfg.dataPath, "data", "data.json", "Path to the JSON dataset exported by the website")
	flag.IntVar(&cfg.blanks, "blanks", -1, "Number of blank identifiers (overrides config if >= 0)")
	flag.StringVar(&cfg.renderTarget, "render", "all", "Object to render: book, schedule, identifier or all")
	flag.BoolVar(&cfg.htmlOutput, "html", false, "Render HTML only; skip PDF rasterization")
	flag.BoolVar(&cfg.debug, "debug", false, "Verbose logging plus HTML output next to each PDF")

	flag.Parse()

	return cfg
}
