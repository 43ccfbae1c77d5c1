// medimind is a local health companion: a chat-style symptom
// assistant, a symptom checker, medication reminders and a health
// profile, all persisted on this machine. Run without arguments to
// start the interactive interface.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"medimind/cmd/medimind/app"
	"medimind/internal/account"
	"medimind/internal/config"
	"medimind/internal/logging"
	"medimind/internal/store"
)

var (
	// Global flags
	dataDir   string
	ephemeral bool
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "medimind",
	Short: "MediMind - your personal health companion",
	Long: `MediMind is a local health companion with a chat-style symptom
assistant, a checklist symptom checker, medication reminders and a
health profile dashboard.

Everything stays on this machine. MediMind gives general pointers
only; it performs no medical inference and is not a doctor.

Run without arguments to start the interactive interface.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive()
	},
}

// openEnv assembles the shared pieces every command needs: resolved
// data directory, config, logger, store and account service. The
// caller owns closing the returned store.
func openEnv() (store.Store, *account.Service, config.Config, string, *zap.Logger, error) {
	dir := dataDir
	if dir == "" {
		var err error
		dir, err = config.Dir()
		if err != nil {
			return nil, nil, config.Config{}, "", nil, err
		}
	}

	cfg, err := config.Load(dir)
	if err != nil {
		return nil, nil, config.Config{}, "", nil, err
	}

	log, err := logging.New(dir, verbose || cfg.Debug)
	if err != nil {
		// The app works fine without logs; degrade rather than die.
		log = zap.NewNop()
	}

	var st store.Store
	if ephemeral {
		st = store.NewMemStore()
	} else {
		st, err = store.Open(filepath.Join(dir, "medimind.db"), log)
		if err != nil {
			return nil, nil, config.Config{}, "", nil, err
		}
	}

	return st, account.NewService(st, log), cfg, dir, log, nil
}

func runInteractive() error {
	st, accounts, cfg, dir, log, err := openEnv()
	if err != nil {
		return err
	}
	defer st.Close()
	defer log.Sync()

	opts := app.Options{
		Accounts: accounts,
		Config:   cfg,
		Logger:   log,
	}

	// Live theme reload is best effort; a broken watcher should never
	// stop the app from starting.
	if !ephemeral {
		if w, werr := config.Watch(dir, log); werr == nil {
			defer w.Close()
			opts.ConfigEvents = w.Events()
		} else {
			log.Warn("config watcher unavailable", zap.Error(werr))
		}
	}

	m, err := app.New(opts)
	if err != nil {
		return err
	}

	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func main() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (default ~/.medimind, or MEDIMIND_DATA_DIR)")
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "keep all records in memory, touch nothing on disk")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(signupCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
