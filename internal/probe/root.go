package probe

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Aleph-Alpha/s3connect/v1/logger"
	"github.com/Aleph-Alpha/s3connect/v1/s3config"
)

// KeyBucket is the settings key consulted when check is run without arguments.
const KeyBucket = "s3.bucket"

type options struct {
	configFile string
	envDir     string
	dsn        string
	table      string
	logLevel   string
	verbose    bool
	timeout    time.Duration
	parallel   int
}

// app carries what every command needs once flags are parsed.
type app struct {
	opts  *options
	out   io.Writer
	log   *logger.Logger
	viper *viper.Viper
}

// NewRootCommand builds the s3probe command tree writing results to out.
func NewRootCommand(out io.Writer) *cobra.Command {
	opts := &options{}
	a := &app{opts: opts, out: out}

	root := &cobra.Command{
		Use:   "s3probe",
		Short: "Resolve object-storage settings and check buckets",
		Long: `s3probe resolves storage client settings the same way services do
(config file, environment, .env and optionally a database settings table),
builds the client and checks that buckets are reachable.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			if a.log != nil {
				_ = a.log.Zap.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "settings file (yaml, json or toml)")
	flags.StringVar(&opts.envDir, "env-dir", ".", "directory containing an optional .env file")
	flags.StringVar(&opts.dsn, "db-dsn", "", "postgres DSN of a settings table to read as the lowest layer")
	flags.StringVar(&opts.table, "db-table", "", "settings table name (default \"variable\")")
	flags.StringVar(&opts.logLevel, "log-level", logger.Warning, "log level: debug, info, warning, error")
	flags.BoolVar(&opts.verbose, "verbose", false, "trace storage HTTP requests to stderr")
	flags.DurationVar(&opts.timeout, "timeout", 30*time.Second, "timeout per bucket check")
	flags.IntVar(&opts.parallel, "parallel", 4, "number of buckets checked concurrently")

	root.AddCommand(newCheckCommand(a), newWhoamiCommand(a))
	return root
}

func (a *app) init() error {
	if a.log == nil {
		a.log = logger.NewLoggerClient(logger.Config{
			Level:       a.opts.logLevel,
			ServiceName: "s3probe",
		})
	}

	keys := append(s3config.SettingsKeys(), KeyBucket)
	v, err := loadViper(a.opts.envDir, a.opts.configFile, keys...)
	if err != nil {
		return err
	}
	a.viper = v
	return nil
}

// Execute runs the command tree against os.Args and exits non-zero on failure.
func Execute() {
	root := NewRootCommand(os.Stdout)
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
