package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/tartampluch/go-contacts/internal/book"
	"github.com/tartampluch/go-contacts/internal/bot"
	"github.com/tartampluch/go-contacts/internal/config"
	"github.com/tartampluch/go-contacts/internal/storage"
)

var (
	bookPath string
	debug    bool
	lang     string

	logCloser io.Closer
)

// Execute builds the command tree and runs it. The root command with no
// subcommand starts the interactive assistant.
func Execute(ctx context.Context) error {
	root := &cobra.Command{
		Use:     "go-contacts",
		Short:   "Line-oriented personal address book with birthday reminders",
		Version: config.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logCloser = setupLogging(debug)
			logStartupInfo()
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logCloser != nil {
				_ = logCloser.Close() // Best effort close
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAssistant(cmd)
		},
	}

	root.PersistentFlags().StringVar(&bookPath, config.FlagFile, "", config.FlagDescFile)
	root.PersistentFlags().BoolVar(&debug, config.FlagDebug, false, config.FlagDescDebug)
	root.PersistentFlags().StringVar(&lang, config.FlagLang, config.DefaultLanguage, config.FlagDescLang)
	root.SetVersionTemplate(fmt.Sprintf(config.MsgVersionOutput,
		config.AppName, config.Version, runtime.GOOS, runtime.GOARCH))

	root.AddCommand(exportCmd())
	return root.ExecuteContext(ctx)
}

// runAssistant loads the book, runs the command loop and relies on the loop
// to save on the way out.
func runAssistant(cmd *cobra.Command) error {
	ctx := cmd.Context()

	store, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	b, err := store.Load(ctx)
	if err != nil {
		return err
	}

	assistant := bot.New(b, store, book.RealClock{}, bot.NewMessages(lang),
		cmd.InOrStdin(), cmd.OutOrStdout())
	return assistant.Run(ctx)
}

// openStore resolves the address book path (flag or per-user default) and
// opens the matching backend.
func openStore() (storage.Store, error) {
	path := bookPath
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", config.ErrHomeDir, err)
		}
		dir := filepath.Join(home, config.DataDirName)
		if err := os.MkdirAll(dir, config.DirPermUserRWX); err != nil {
			return nil, fmt.Errorf("%s: %w", config.ErrCreateDir, err)
		}
		path = filepath.Join(dir, config.DefaultBookFile)
	}
	return storage.Open(path)
}

// setupLogging configures the default slog logger. Logs always go to a file
// in the user cache dir so the interactive prompt stays clean; debug mode
// mirrors them to stderr.
func setupLogging(debugMode bool) io.Closer {
	var writers []io.Writer
	var logFile *os.File

	if debugMode {
		writers = append(writers, os.Stderr)
	}

	if logPath, err := getLogFilePath(); err == nil {
		// O_TRUNC resets logs on restart to prevent indefinite growth.
		f, err := os.OpenFile(logPath, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, config.FilePermUserRW)
		if err == nil {
			writers = append(writers, f)
			logFile = f
		} else {
			fmt.Fprintf(os.Stderr, config.MsgLogWarning, config.ErrLogFile, logPath, err)
		}
	}

	if len(writers) == 0 {
		writers = append(writers, io.Discard)
	}

	level := slog.LevelInfo
	if debugMode {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: debugMode,
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(io.MultiWriter(writers...), opts)))

	if logFile == nil {
		return nil
	}
	return logFile
}

// getLogFilePath determines the platform-specific cache directory for logs.
func getLogFilePath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCacheDir, err)
	}

	appDir := filepath.Join(cacheDir, config.AppID)
	if err := os.MkdirAll(appDir, config.DirPermUserRWX); err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}
	return filepath.Join(appDir, config.LogFileName), nil
}

// logStartupInfo logs environment details useful for debugging.
func logStartupInfo() {
	slog.Info(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
		),
	)
}
