package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/EdmanJohan/TimeEditAPI/internal/config"
	"github.com/EdmanJohan/TimeEditAPI/internal/export"
	appLog "github.com/EdmanJohan/TimeEditAPI/internal/log"
	"github.com/EdmanJohan/TimeEditAPI/internal/model"
	"github.com/EdmanJohan/TimeEditAPI/internal/timeedit"
)

type flagConfig struct {
	configPath string
	course     string
	baseURL    string
	icsPath    string
	watch      string
}

func main() {
	flags := parseFlags()

	if flags.course == "" {
		fmt.Fprintln(os.Stderr, "usage: timeedit -course <code> [-config <path>] [-ics <path>] [-watch <cron>]")
		os.Exit(2)
	}

	// .env is optional; system environment wins in production setups.
	if err := godotenv.Load(); err != nil {
		appLog.Debug("no .env file loaded", "err", err)
	}

	conf, err := config.Load(flags.configPath)
	if err != nil {
		appLog.Error("failed to load config", err, "config_path", flags.configPath)
		os.Exit(1)
	}

	// CLI flag, then environment, then config file.
	if flags.baseURL != "" {
		conf.BaseURL = flags.baseURL
	} else if env := os.Getenv("TIMEEDIT_BASE_URL"); env != "" {
		conf.BaseURL = env
	}

	client, err := timeedit.NewClient(timeedit.Options{
		BaseURL:          conf.BaseURL,
		FilterEmpty:      conf.FilterEmpty,
		FilterToSemester: conf.FilterToSemester,
		StartDate:        conf.StartDate,
		EndDate:          conf.EndDate,
		UseEndDate:       conf.UseEndDate,
		UseKTHPlaces:     conf.UseKTHPlaces,
	})
	if err != nil {
		appLog.Error("failed to build client", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		appLog.Info("signal received, shutting down", "signal", sig.String())
		cancel()
	}()

	run := func() {
		events, err := client.Schedule(ctx, flags.course)
		if err != nil {
			appLog.Error("schedule fetch failed", err, "course", flags.course)
			return
		}
		if err := emit(events, flags); err != nil {
			appLog.Error("failed to write schedule", err, "course", flags.course)
		}
	}

	if flags.watch == "" {
		run()
		return
	}

	sched := cron.New()
	if _, err := sched.AddFunc(flags.watch, run); err != nil {
		appLog.Error("invalid watch schedule", err, "spec", flags.watch)
		os.Exit(1)
	}

	appLog.Info("watching schedule", "course", flags.course, "cron", flags.watch)
	run()
	sched.Start()

	<-ctx.Done()
	<-sched.Stop().Done()
}

// emit writes events as an ICS file when -ics is set, otherwise as
// plain lines on stdout.
func emit(events []model.Event, flags flagConfig) error {
	if flags.icsPath != "" {
		doc := export.ICS(events, flags.course)
		return os.WriteFile(flags.icsPath, []byte(doc), 0o644)
	}

	for _, ev := range events {
		fmt.Printf("%s - %s  %-16s %s  %s\n",
			ev.StartDate.Format("2006-01-02 15:04"),
			ev.EndDate.Format("15:04"),
			ev.Type,
			strings.Join(ev.Location, ", "),
			strings.Join(ev.Lecturers, ", "),
		)
	}
	return nil
}

func parseFlags() flagConfig {
	var cfg flagConfig

	flag.StringVar(&cfg.configPath, "config", "timeedit.yaml", "Path to config file")
	flag.StringVar(&cfg.course, "course", "", "Course code to look up (e.g. DD1337)")
	flag.StringVar(&cfg.baseURL, "base-url", "", "TimeEdit instance URL (overrides config if set)")
	flag.StringVar(&cfg.icsPath, "ics", "", "Write the schedule as an ICS file to this path")
	flag.StringVar(&cfg.watch, "watch", "", "Cron schedule for periodic refetch (e.g. \"0 * * * *\")")

	flag.Parse()

	return cfg
}
