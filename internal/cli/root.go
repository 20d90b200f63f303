package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	clog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mordilloSan/go-filelogger/logger"
)

// Environment fallbacks for the flags of the same name.
const (
	envFile  = "LOGGER_FILE"
	envLevel = "LOGGER_LEVEL"
)

var errNoFile = errors.New("no log file given: set --file or " + envFile)

type rootOptions struct {
	file    string
	level   string
	tag     string
	utc     bool
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := rootOptions{
		file:  os.Getenv(envFile),
		level: os.Getenv(envLevel),
	}
	if opts.level == "" {
		opts.level = logger.InfoLevel.String()
	}

	cmd := &cobra.Command{
		Use:   "filelog [flags] [message...]",
		Short: "filelog – append timestamped, level-tagged lines to a log file",
		Long: "filelog truncates the target file and writes one line per message argument.\n" +
			"Without arguments it writes one line per line read from stdin.",
		// Messages are free-form; a message that collides with a subcommand name goes after "--".
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, opts, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	f := cmd.Flags()
	f.StringVarP(&opts.file, "file", "f", opts.file, "log file to write (env "+envFile+")")
	f.StringVarP(&opts.level, "level", "l", opts.level, "level stored on the logger (env "+envLevel+")")
	f.StringVarP(&opts.tag, "tag", "t", "", "level each line is tagged with, name or number (default: --level)")
	f.BoolVar(&opts.utc, "utc", true, "render timestamps in UTC instead of local time")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "report what was written on stderr")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func runRoot(cmd *cobra.Command, opts rootOptions, args []string) error {
	diag := clog.NewWithOptions(cmd.ErrOrStderr(), clog.Options{
		ReportTimestamp: true,
	})
	if opts.verbose {
		diag.SetLevel(clog.DebugLevel)
	}

	if opts.file == "" {
		return errNoFile
	}
	level, err := logger.ParseLevel(opts.level)
	if err != nil {
		return fmt.Errorf("--level: %w", err)
	}
	tag := level
	if opts.tag != "" {
		if tag, err = parseTag(opts.tag); err != nil {
			return fmt.Errorf("--tag: %w", err)
		}
	}

	// Execute reports the open error, so the logger's own diagnostic is dropped.
	loggerOpts := []logger.Option{logger.WithDiagnostics(io.Discard)}
	if !opts.utc {
		loggerOpts = append(loggerOpts, logger.WithLocation(time.Local))
	}

	written := 0
	err = logger.With(level, opts.file, func(l *logger.Logger) error {
		if len(args) > 0 {
			for _, msg := range args {
				if err := l.Output(tag, msg); err != nil {
					return err
				}
				written++
			}
			return nil
		}

		return writeLines(l, tag, cmd.InOrStdin(), &written)
	}, loggerOpts...)
	if err != nil {
		return err
	}

	diag.Debug("wrote lines", "file", opts.file, "count", written, "tag", tag)
	return nil
}

// writeLines writes one line per newline-terminated line of r, with no length limit.
// A final line without a newline is written too.
func writeLines(l *logger.Logger, tag logger.Level, r io.Reader, written *int) error {
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		if err == io.EOF && line == "" {
			return nil
		}
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		if werr := l.Output(tag, line); werr != nil {
			return werr
		}
		*written++
		if err == io.EOF {
			return nil
		}
	}
}

// parseTag accepts a level name or its integer value.
// Integers outside the enumeration are allowed and produce the invalid level tag.
func parseTag(s string) (logger.Level, error) {
	level, err := logger.ParseLevel(s)
	if err == nil {
		return level, nil
	}
	n, convErr := strconv.Atoi(s)
	if convErr != nil {
		return 0, err
	}
	return logger.Level(n), nil
}

// Execute runs the CLI.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		clog.NewWithOptions(os.Stderr, clog.Options{ReportTimestamp: true}).Error(err)
		os.Exit(1)
	}
}
