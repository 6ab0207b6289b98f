// Command pairshare is a small CLI over the ledger: import a CSV of
// expenses straight into the store and show the current balance.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"

	"github.com/pairshare/pairshare/internal/storage/sqlite"
	"github.com/pairshare/pairshare/pkg/logging"
)

var dbPath = flag.String("db", "./data/pairshare.db", "Path to the SQLite database file")

func openStore() (*sqlite.SQLiteStore, error) {
	return sqlite.New(*dbPath)
}

func main() {
	logging.Setup()

	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(&importCmd{}, "ledger")
	subcommands.Register(&balanceCmd{}, "ledger")

	flag.Parse()
	os.Exit(int(subcommands.Execute(context.Background())))
}
