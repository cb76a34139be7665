package runner

import (
	"os"

	"github.com/logrusorgru/aurora/v4"
	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/formatter"
	"github.com/projectdiscovery/gologger/levels"

	"github.com/nordpick/nordpick/pkg/types"
	"github.com/nordpick/nordpick/pkg/version"
)

var au *aurora.Aurora

// Options contains the configuration options for one selection run.
type Options struct {
	Filters    goflags.StringSlice
	Count      int
	UseAddress bool

	ListCountries    bool
	ListTechnologies bool
	ListGroups       bool

	ClearCache bool

	Verbose bool
	Silent  bool
	NoColor bool
	Version bool
}

// ParseOptions parses the command line flags provided by a user
func ParseOptions() *Options {
	options := &Options{}
	flagSet := goflags.NewFlagSet()

	flagSet.SetDescription(`nordpick selects the least loaded NordVPN servers matching a set of country, technology and server group filters`)

	flagSet.CreateGroup("filter", "Filter",
		flagSet.StringSliceVarP(&options.Filters, "filter", "f", nil, "filters to apply: country name/code, technology or server group (comma separated)", goflags.NormalizedStringSliceOptions),
		flagSet.IntVarP(&options.Count, "count", "n", 1, "number of servers to select"),
	)

	flagSet.CreateGroup("list", "List",
		flagSet.BoolVarP(&options.ListCountries, "list-countries", "lc", false, "list available countries"),
		flagSet.BoolVarP(&options.ListTechnologies, "list-technologies", "lt", false, "list available technologies"),
		flagSet.BoolVarP(&options.ListGroups, "list-groups", "lg", false, "list available server groups"),
	)

	flagSet.CreateGroup("cache", "Cache",
		flagSet.BoolVarP(&options.ClearCache, "clear-cache", "cc", false, "clear the reference data cache"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.BoolVarP(&options.UseAddress, "address", "a", false, "print server ip address instead of hostname"),
		flagSet.BoolVar(&options.Silent, "silent", false, "show only results in output"),
		flagSet.BoolVarP(&options.NoColor, "no-color", "nc", false, "disable output content coloring (ANSI escape codes)"),
		flagSet.BoolVarP(&options.Verbose, "verbose", "v", false, "show verbose output"),
		flagSet.BoolVar(&options.Version, "version", false, "show version of the project"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("%s\n", err)
	}

	// configure aurora for logging
	au = aurora.New(aurora.WithColors(true))

	options.configureOutput()

	showBanner()

	if options.Version {
		gologger.Info().Msgf("Current Version: %s\n", version.GetVersion())
		os.Exit(0)
	}

	if options.Count < 1 {
		gologger.Fatal().Msgf("%s\n", types.ErrInvalidCount)
	}

	return options
}

// configureOutput configures the output on the screen
func (options *Options) configureOutput() {
	// If the user desires verbose output, show verbose output
	if options.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	if options.NoColor {
		gologger.DefaultLogger.SetFormatter(formatter.NewCLI(true))
		au = aurora.New(aurora.WithColors(false))
	}
	if options.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	}
}
