// Package cli implements the command handlers behind the tagihan binary.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jankerzone/tagihan-serampangan-v2/internal/budget"
	"github.com/jankerzone/tagihan-serampangan-v2/internal/iocli"
	"github.com/jankerzone/tagihan-serampangan-v2/internal/session"
	"github.com/jankerzone/tagihan-serampangan-v2/internal/storage"
)

// Cli bundles the dependencies shared by every command.
type Cli struct {
	io       iocli.IO
	kv       storage.KV
	users    *budget.UserStore
	sessions *session.Manager
	logger   *slog.Logger
}

// New creates the command handler set.
func New(io iocli.IO, kv storage.KV, users *budget.UserStore, sessions *session.Manager, logger *slog.Logger) *Cli {
	return &Cli{
		io:       io,
		kv:       kv,
		users:    users,
		sessions: sessions,
		logger:   logger,
	}
}

// Run dispatches a command. Errors are printed to stderr and exit the
// process with status 1.
func (c *Cli) Run(ctx context.Context, command string, args []string) {
	var err error

	switch command {
	case "register":
		err = c.runRegister(ctx)
	case "login":
		err = c.runLogin(ctx)
	case "logout":
		err = c.runLogout(ctx)
	case "status":
		err = c.runStatus(ctx)
	case "show":
		err = c.runShow(ctx)
	case "income":
		err = c.runIncome(ctx, args)
	case "saving":
		err = c.runSaving(ctx, args)
	case "budget":
		err = c.runBudget(ctx, args)
	case "month":
		err = c.runMonth(ctx, args)
	case "category":
		err = c.runCategory(ctx, args)
	case "settings":
		err = c.runSettings(ctx, args)
	case "profile":
		err = c.runProfile(ctx, args)
	case "export":
		err = c.runExport(ctx, args)
	case "import":
		err = c.runImport(ctx, args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		PrintUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// PrintUsage prints the command overview.
func PrintUsage() {
	fmt.Print(usageTemplate)
}

const usageTemplate = `
Tagihan Serampangan

Usage:
  tagihan [OPTIONS] COMMAND [ARGS]

Options:
  --version   Show version information
  --db PATH   Path to local database (default: tagihan.db, or TAGIHAN_DB_PATH)

Account:
  register                          Create an account and log in
  login                             Log in
  logout                            Log out
  status                            Show session and store status
  profile show|name|avatar|password Manage profile

Budgeting (all operate on the currently selected month):
  show                              Dashboard: totals and all lists
  month set MONTH [YEAR]            Select the working month
  month copy-prev                   Copy last month's data into this month
  income add NAME AMOUNT            Add an income source
  income delete ID                  Delete an income source
  saving add money NAME AMOUNT      Add a cash saving
  saving add TYPE NAME QTY PRICE [UNIT [TICKER]]
                                    Add a gold|crypto|stock saving
  saving delete ID                  Delete a saving
  budget add NAME ALLOCATION [CATEGORY]
                                    Add a budget line
  budget delete ID                  Delete a budget line
  budget realize ID AMOUNT          Set a line's realization
  budget realize-all PERCENT        Set every realization to PERCENT of allocation
  budget bulk [FILE]                Bulk-add lines (tab-separated; stdin without FILE)

Configuration:
  category add|rename|delete        Manage expense categories
  settings show                     Show settings
  settings lang en|id               Switch language
  settings color PANEL TOKEN        Set a dashboard color token

Data:
  export [FILE]                     Export the current month
  import FILE                       Import into the current month (overwrites)
`
