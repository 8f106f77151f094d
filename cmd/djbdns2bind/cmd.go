package main

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"djbdns2bind/internal/config"
	"djbdns2bind/internal/logging"
)

// stdinPath makes --file read standard input
const stdinPath = "-"

// options collects command line flags.
type options struct {
	run        bool
	file       string
	check      bool
	configPath string
	defaultTTL string
	logFormat  string
	logLevel   string
}

func bindFlags(fs *pflag.FlagSet, o *options) {
	fs.BoolVar(&o.run, "run", false, "Run the translation (required)")
	fs.StringVar(&o.file, "file", "", "Path to the tinydns data file (- for stdin)")
	fs.BoolVar(&o.check, "check", false, "Verify the generated zone parses as BIND syntax before printing it")
	fs.StringVar(&o.configPath, "config", "", "Path to a YAML configuration file")
	fs.StringVar(&o.defaultTTL, "default-ttl", "", "Zone TTL used when the SOA line has none (default 3600)")
	fs.StringVar(&o.logFormat, "log-format", "", "Log format (human|text|json)")
	fs.StringVar(&o.logLevel, "log-level", "", "Log level (debug|info|warn|error)")
}

// loadConfig reads the configuration file, if any, and applies flags on top of it.
func loadConfig(fs *pflag.FlagSet, o *options) (*config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return nil, err
		}
	}

	if fs.Changed("check") {
		cfg.Check = o.check
	}
	if fs.Changed("default-ttl") {
		cfg.DefaultTTL = o.defaultTTL
	}
	if fs.Changed("log-format") {
		cfg.Log.Format = o.logFormat
	}
	if fs.Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	return cfg, cfg.Validate()
}

func newRootCmd() *cobra.Command {
	o := &options{}
	var cfg *config.Config

	cmd := &cobra.Command{
		Use:           "djbdns2bind --run [--file /path/to/djbdns.zone]",
		Short:         "Translate tinydns data into a BIND9 zone file",
		Long:          "Reads Z, &, @, + and C lines from a tinydns data file and prints the equivalent BIND9 zone file on standard output.",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	bindFlags(cmd.Flags(), o)

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		c.PrintErr(c.UsageString())
		return usageError(err)
	})

	cmd.PersistentPreRunE = func(c *cobra.Command, _ []string) error {
		var err error
		if cfg, err = loadConfig(c.Flags(), o); err != nil {
			return usageError(err)
		}
		level, err := logging.ParseLevel(cfg.Log.Level)
		if err != nil {
			return usageError(err)
		}
		l, err := logging.NewWithWriter(cfg.Log.Format, level, c.ErrOrStderr())
		if err != nil {
			return usageError(err)
		}
		c.SetContext(logging.WithLogger(c.Context(), l))
		return nil
	}

	cmd.RunE = func(c *cobra.Command, _ []string) error {
		if !o.run {
			c.PrintErr(c.UsageString())
			return usageError(errors.New("--run is required"))
		}

		in, err := openInput(c, o.file)
		if err != nil {
			c.PrintErr(c.UsageString())
			return usageError(err)
		}
		defer in.Close()

		return translate(c.Context(), in, c.OutOrStdout(), cfg)
	}

	return cmd
}

// openInput returns the reader for --file. Without a file there is no input.
func openInput(c *cobra.Command, path string) (io.ReadCloser, error) {
	switch path {
	case "":
		return io.NopCloser(strings.NewReader("")), nil
	case stdinPath:
		return io.NopCloser(c.InOrStdin()), nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid input file %s", path)
	}
	if info.IsDir() {
		return nil, errors.Errorf("invalid input file %s: is a directory", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid input file %s", path)
	}
	return f, nil
}
