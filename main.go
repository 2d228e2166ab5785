// Package main is the entry point for the ExpenseBuddy command line client.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/setiawand/expensebuddy/internal/api"
	"github.com/setiawand/expensebuddy/internal/config"
	"github.com/setiawand/expensebuddy/internal/logger"
	"github.com/setiawand/expensebuddy/internal/session"
	"github.com/setiawand/expensebuddy/internal/store"
	"github.com/setiawand/expensebuddy/internal/view"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const usage = `Usage: expensebuddy <command>

Commands:
  list               show all expenses and the running total (default)
  add <amount> <description>
  rm <id>            delete an expense
  get <id>           show a single expense
  upload <path>      upload a receipt image for extraction
  version            print build information`

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("expensebuddy %s (commit: %s, built: %s)\n", version, commit, date)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to load config")
	}
	logger.SetLevel(cfg.LogLevel)

	client := api.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout())
	expenses := store.New(client)

	// The identity provider lives outside this client; the session value is
	// handed in explicitly rather than read from ambient context.
	sess := session.Anonymous
	if name := strings.TrimSpace(os.Getenv("EXPENSE_USER")); name != "" {
		sess = session.Session{Authenticated: true, DisplayName: name}
	}

	command := "list"
	args := []string{}
	if len(os.Args) > 1 {
		command = os.Args[1]
		args = os.Args[2:]
	}

	ctx := context.Background()
	switch command {
	case "list":
		runList(ctx, cfg, expenses, sess)
	case "add":
		runAdd(ctx, cfg, expenses, args)
	case "rm":
		runRemove(ctx, expenses, args)
	case "get":
		runGet(ctx, cfg, client, args)
	case "upload":
		runUpload(ctx, cfg, expenses, args)
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
}

// runList shows the collection. A load failure here is deliberately
// swallowed with a diagnostic log: the user sees an empty list, and the
// remote store stays the source of truth for the next attempt.
func runList(ctx context.Context, cfg *config.Config, expenses *store.Store, sess session.Session) {
	if err := expenses.Load(ctx); err != nil {
		logger.Log.Warn().Err(err).Msg("Failed to load expenses")
	}

	fmt.Println(sess.Greeting())
	all := expenses.Expenses()
	for _, exp := range all {
		fmt.Println(view.Line(exp, cfg.DisplayCurrency))
	}
	fmt.Println(view.Summary(all, cfg.DisplayCurrency))
}

func runAdd(ctx context.Context, cfg *config.Config, expenses *store.Store, args []string) {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: expensebuddy add <amount> <description>")
		os.Exit(2)
	}

	amount, err := decimal.NewFromString(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid amount %q\n", args[0])
		os.Exit(2)
	}
	description := strings.Join(args[1:], " ")
	if strings.TrimSpace(description) == "" {
		fmt.Fprintln(os.Stderr, "Description must not be empty")
		os.Exit(2)
	}

	created, err := expenses.Add(ctx, description, amount)
	if err != nil {
		// Input is echoed back so the user can retry without retyping.
		fmt.Fprintf(os.Stderr, "Failed to add %q %s: %v\n", description, amount, err)
		os.Exit(1)
	}
	fmt.Printf("Added %s (%s)\n", view.Line(created, cfg.DisplayCurrency), created.ID)
}

func runRemove(ctx context.Context, expenses *store.Store, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: expensebuddy rm <id>")
		os.Exit(2)
	}

	if err := expenses.Remove(ctx, args[0]); err != nil {
		logger.Log.Warn().Err(err).Str("id", args[0]).Msg("Failed to remove expense")
		return
	}
	fmt.Printf("Removed %s\n", args[0])
}

func runGet(ctx context.Context, cfg *config.Config, client *api.Client, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: expensebuddy get <id>")
		os.Exit(2)
	}

	exp, err := client.GetExpense(ctx, args[0])
	if errors.Is(err, api.ErrExpenseNotFound) {
		fmt.Fprintf(os.Stderr, "No expense with id %s\n", args[0])
		os.Exit(1)
	}
	if err != nil {
		logger.Log.Error().Err(err).Msg("Failed to fetch expense")
		os.Exit(1)
	}
	fmt.Printf("%s (%s, %s)\n", view.Line(exp, cfg.DisplayCurrency), exp.ID, exp.Date)
}

func runUpload(ctx context.Context, cfg *config.Config, expenses *store.Store, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: expensebuddy upload <path>")
		os.Exit(2)
	}

	file, err := os.Open(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cannot open %s: %v\n", args[0], err)
		os.Exit(2)
	}
	defer func() { _ = file.Close() }()

	err = expenses.UploadReceipt(ctx, filepath.Base(args[0]), file)

	var rejected *api.ReceiptRejectedError
	switch {
	case errors.As(err, &rejected):
		// The server's rejection detail is the one error shown verbatim.
		fmt.Fprintf(os.Stderr, "Receipt rejected: %s\n", rejected.Detail)
		os.Exit(1)
	case errors.Is(err, store.ErrReloadFailed):
		logger.Log.Warn().Err(err).Msg("Receipt stored but reload failed")
		fmt.Println("Receipt uploaded; run list to see the extracted expenses")
		return
	case err != nil:
		fmt.Fprintf(os.Stderr, "Upload failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Receipt uploaded")
	all := expenses.Expenses()
	fmt.Println(view.Summary(all, cfg.DisplayCurrency))
}
