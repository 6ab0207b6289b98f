package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/pairshare/pairshare/internal/service"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	partnerA    string
	partnerB    string
	skipInvalid bool
	dryRun      bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import expenses from a CSV file" }
func (*importCmd) Usage() string {
	return `pairshare import [-a <name>] [-b <name>] [-skip-invalid] [-dry-run] <file.csv>

  Parses the CSV, validates every row and commits the valid drafts.
  With -dry-run, prints the preview counts and row errors without writing.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.partnerA, "a", "partner1", "Partner A name for the paid-by heuristic")
	f.StringVar(&c.partnerB, "b", "partner2", "Partner B name for the paid-by heuristic")
	f.BoolVar(&c.skipInvalid, "skip-invalid", true, "Skip invalid rows instead of refusing the import")
	f.BoolVar(&c.dryRun, "dry-run", false, "Preview only, do not write")
}

func (c *importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}

	text, err := os.ReadFile(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	imports := service.NewImportService(store, c.partnerA, c.partnerB)

	if c.dryRun {
		preview, err := imports.Preview(string(text), nil)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("rows: %d valid: %d invalid: %d\n", preview.Total, preview.Valid, preview.Invalid)
		for _, row := range preview.Rows {
			if len(row.Errors) > 0 {
				fmt.Printf("  row %d: %v\n", row.RowNumber, row.Errors)
			}
		}
		return subcommands.ExitSuccess
	}

	result, err := imports.Commit(ctx, string(text), nil, nil, c.skipInvalid)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("created: %d failed: %d skipped: %d\n", result.Created, result.Failed, result.Skipped)
	return subcommands.ExitSuccess
}
