// Package cli implements the contacts command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/contacts/internal/shell"
	"github.com/mesh-intelligence/contacts/pkg/contacts"
	"github.com/mesh-intelligence/contacts/pkg/store"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	backend   string
	logLevel  string
}

var flags rootFlags

// NewRootCmd creates the top-level "contacts" command with global flags
// and all subcommands registered. Running it without a subcommand starts
// the interactive menu.
func NewRootCmd() *cobra.Command {
	flags = rootFlags{}

	root := &cobra.Command{
		Use:   "contacts",
		Short: "An interactive in-memory contact list",
		Long: "Contacts manages a list of users and phone numbers through a text menu.\n" +
			"The list lives in memory and is discarded on exit.",
		Version: contacts.Version,
		Args:    cobra.NoArgs,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
		RunE:         runShell,
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/contacts)")
	root.PersistentFlags().StringVar(&flags.backend, "backend", "", "store backend: memory or sqlite (default: memory)")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error (default: warn)")

	root.AddCommand(newVersionCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.ExecuteContext(context.Background()); err != nil {
		os.Exit(exitCode(err))
	}
	os.Exit(exitSuccess)
}

func runShell(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return userError(err)
	}

	logger, err := newLogger(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return userError(err)
	}
	defer func() { _ = logger.Sync() }()
	log := logger.Sugar()

	s, err := store.New(cfg, log)
	if err != nil {
		return sysError(fmt.Errorf("open store: %w", err))
	}
	defer s.Close()

	log.Infow("session started", "backend", cfg.Backend)
	sh := shell.New(s, cmd.InOrStdin(), cmd.OutOrStdout(),
		shell.WithSeparator(cfg.Separator),
		shell.WithLogger(log),
	)
	if err := sh.Run(cmd.Context()); err != nil && !errors.Is(err, context.Canceled) {
		return sysError(err)
	}
	log.Infow("session ended", "components", s.Count())
	return nil
}

// codedError carries the process exit code for an error.
type codedError struct {
	code int
	err  error
}

func (e *codedError) Error() string { return e.err.Error() }
func (e *codedError) Unwrap() error { return e.err }

func userError(err error) error { return &codedError{code: exitUserError, err: err} }
func sysError(err error) error  { return &codedError{code: exitSysError, err: err} }

// exitCode returns the exit code carried by err. Errors raised by cobra
// itself (unknown flags, extra arguments) are user errors.
func exitCode(err error) int {
	var ce *codedError
	if errors.As(err, &ce) {
		return ce.code
	}
	return exitUserError
}
