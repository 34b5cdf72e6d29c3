package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"braces.dev/errtrace"
	"github.com/spf13/cobra"

	"github.com/ghettovoice/goseq/internal/check"
	"github.com/ghettovoice/goseq/internal/errorutil"
	"github.com/ghettovoice/goseq/internal/log"
)

const errChecksFailed errorutil.Error = "checks failed"

type options struct {
	logFormat  string
	logLevel   string
	configPath string
}

func (o *options) logger(w io.Writer) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(o.logLevel)); err != nil {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError(err))
	}
	return errtrace.Wrap2(log.New(log.Format(o.logFormat), lvl, w))
}

func (o *options) suite(w io.Writer) (*check.Suite, error) {
	logger, err := o.logger(w)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	cfg, err := LoadConfig(o.configPath)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	s := check.NewSuite("seqcheck", logger)
	addBuiltinChecks(s)
	cfg.addChecks(s)
	return s, nil
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "seqcheck",
		Short: "Validate sequence value semantics",
		Long: `seqcheck runs the built-in sequence checks and the concatenation
scenarios listed in the optional config file, then prints true when all of them pass.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runChecks(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), &opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.logFormat, "log-format", string(log.FormatConsole), "log output format: console, dev or json")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "minimal log level: debug, info, warn or error")
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML file with extra concatenation scenarios")

	cmd.AddCommand(newListCmd(&opts))
	return cmd
}

func runChecks(ctx context.Context, out, logOut io.Writer, opts *options) error {
	s, err := opts.suite(logOut)
	if err != nil {
		return errtrace.Wrap(err)
	}

	rep := s.Run(ctx)
	for _, res := range rep.Results {
		fmt.Fprintf(out, "%s: %t\n", res.Name, res.State == check.StatePassed)
	}
	fmt.Fprintln(out, rep.OK())

	if !rep.OK() {
		fmt.Fprintln(logOut, rep.Err())
		return errtrace.Wrap(errChecksFailed)
	}
	return nil
}

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the checks without running them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := opts.suite(cmd.ErrOrStderr())
			if err != nil {
				return errtrace.Wrap(err)
			}
			for _, name := range s.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
