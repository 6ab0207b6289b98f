package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/pairshare/pairshare/internal/service"
	"github.com/pairshare/pairshare/internal/textnorm"
)

// balanceCmd holds the flags for the 'balance' subcommand.
type balanceCmd struct{}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "show the current net balance" }
func (*balanceCmd) Usage() string {
	return `pairshare balance

  Recomputes and prints the net balance from the full ledger history.
`
}

func (*balanceCmd) SetFlags(*flag.FlagSet) {}

func (*balanceCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	ledger := service.NewLedgerService(store, nil)
	balance, err := ledger.Balance(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("partner1 paid: %s\n", textnorm.FormatMinorUnits(balance.PartyATotalPaid))
	fmt.Printf("partner2 paid: %s\n", textnorm.FormatMinorUnits(balance.PartyBTotalPaid))
	switch {
	case balance.Net > 0:
		fmt.Printf("partner2 owes partner1 %s\n", textnorm.FormatMinorUnits(balance.Net))
	case balance.Net < 0:
		fmt.Printf("partner1 owes partner2 %s\n", textnorm.FormatMinorUnits(-balance.Net))
	default:
		fmt.Println("all settled up")
	}
	return subcommands.ExitSuccess
}
