package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"roomdesign/internal/infra"
)

var runMigrations = infra.RunMigrations

func main() {
	_ = godotenv.Load()
	if err := run(os.Args[1:], os.Getenv, os.Stdout); err != nil {
		exitWithError(err)
	}
}

func run(args []string, getenv func(string) string, out io.Writer) error {
	fs := flag.NewFlagSet("migrate", flag.ContinueOnError)
	var (
		dbURLFlag   string
		timeoutFlag time.Duration
	)
	fs.StringVar(&dbURLFlag, "database-url", "", "database URL (defaults to DATABASE_URL)")
	fs.DurationVar(&timeoutFlag, "timeout", time.Minute, "overall migration timeout")
	fs.SetOutput(out)
	fs.Usage = func() {
		fmt.Fprintln(out, "usage: migrate [flags] up|down|status")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	command := strings.ToLower(strings.TrimSpace(fs.Arg(0)))
	if command == "" {
		command = infra.MigrateStatus
	}
	if fs.NArg() > 1 {
		return errors.New("exactly one command is accepted")
	}

	dbURL := strings.TrimSpace(dbURLFlag)
	if dbURL == "" {
		dbURL = strings.TrimSpace(getenv("DATABASE_URL"))
	}
	if dbURL == "" {
		return errors.New("DATABASE_URL is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeoutFlag)
	defer cancel()

	if err := runMigrations(ctx, dbURL, command); err != nil {
		return err
	}
	fmt.Fprintf(out, "migrate %s: ok\n", command)
	return nil
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
