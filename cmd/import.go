package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/invtrack/invtrack"
	toml "github.com/pelletier/go-toml/v2"
)

// importCmd maps a broker JSON export into the trade log.
type importCmd struct {
	file    string
	mapping string
	dryRun  bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import trades from a broker JSON export" }
func (*importCmd) Usage() string {
	return `itk import -file <export.json> -mapping <mapping.toml> [-n]

  Maps an arbitrary broker JSON export into trade events using the jsonpath
  expressions declared in the mapping file, and appends them to the log.
  See 'itk topic importing' for the mapping format.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "Broker JSON export to import. Required.")
	f.StringVar(&c.mapping, "mapping", "", "TOML mapping file of jsonpath expressions. Required.")
	f.BoolVar(&c.dryRun, "n", false, "Parse and report only, do not write the log.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" || c.mapping == "" {
		fmt.Fprintln(os.Stderr, "Error: flags -file and -mapping are required")
		return subcommands.ExitUsageError
	}

	cfg, err := appConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	data, err := os.ReadFile(c.mapping)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading mapping: %v\n", err)
		return subcommands.ExitFailure
	}
	var mapping invtrack.ImportMapping
	if err := toml.Unmarshal(data, &mapping); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing mapping %q: %v\n", c.mapping, err)
		return subcommands.ExitFailure
	}

	export, err := os.Open(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening export: %v\n", err)
		return subcommands.ExitFailure
	}
	defer export.Close()

	events, err := mapping.Import(export, cfg.Currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}
	if len(events) == 0 {
		fmt.Println("Nothing to import.")
		return subcommands.ExitSuccess
	}

	if c.dryRun {
		fmt.Printf("Would import %d trades from %s\n", len(events), c.file)
		return subcommands.ExitSuccess
	}

	log, err := invtrack.LoadTradeLog(cfg.StorageDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	log.Append(events...)
	if err := invtrack.SaveTradeLog(cfg.StorageDir, log); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Imported %d trades from %s\n", len(events), c.file)
	return subcommands.ExitSuccess
}
