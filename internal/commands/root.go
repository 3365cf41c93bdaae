// Package commands implements the taskcall CLI.
package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/taskcall/taskcall"
	"github.com/taskcall/taskcall/tasks"
)

const envPrefix = "TASKCALL"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "taskcall",
	Short: "taskcall dispatches invocation strings to registered tasks",
	Long: `taskcall parses invocation strings such as "backupDatabase()" or
"params('x', 1, true)", resolves the named task, and runs its handler.

Configuration is read from the config file, environment variables with the
TASKCALL_ prefix, and flags, in increasing order of precedence.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default taskcall.yaml in the working directory)")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.String("log-file", "", "log to this file with rotation instead of stderr")
	pf.Bool("strict-args", false, "reject invocations whose argument list cannot be decoded")
	pf.Duration("call-timeout", 0, "deadline applied to each handler execution (0 disables)")

	_ = viper.BindPFlag("log.level", pf.Lookup("log-level"))
	_ = viper.BindPFlag("log.file", pf.Lookup("log-file"))
	_ = viper.BindPFlag("strict_args", pf.Lookup("strict-args"))
	_ = viper.BindPFlag("call_timeout", pf.Lookup("call-timeout"))

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(serveCmd)
}

func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("taskcall")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("addr", ":8080")
	viper.SetDefault("temp_dir", os.TempDir())
	viper.SetDefault("backup_dir", "backups")

	if err := viper.ReadInConfig(); err != nil {
		// Missing config file is fine; flags and env cover everything.
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return nil
}

func buildLogger() *slog.Logger {
	var w io.Writer = os.Stderr
	if file := viper.GetString("log.file"); file != "" {
		w = &lumberjack.Logger{
			Filename:   file,
			MaxSize:    50, // MB
			MaxBackups: 3,
			MaxAge:     7, // days
		}
	}

	level := slog.LevelInfo
	switch strings.ToLower(viper.GetString("log.level")) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// buildDispatcher assembles a dispatcher with the builtin task set, the
// configured policies, and any extra options the caller supplies.
func buildDispatcher(logger *slog.Logger, extra ...taskcall.Option) (*taskcall.Dispatcher, error) {
	opts := []taskcall.Option{taskcall.WithLogger(logger)}
	opts = append(opts, extra...)
	if viper.GetBool("strict_args") {
		opts = append(opts, taskcall.WithStrictArguments())
	}
	if timeout := viper.GetDuration("call_timeout"); timeout > 0 {
		opts = append(opts, taskcall.WithCallTimeout(timeout))
	}

	d, err := taskcall.New(opts...)
	if err != nil {
		return nil, err
	}

	builtin := tasks.Builtin(logger, tasks.Options{
		TempDir:   viper.GetString("temp_dir"),
		BackupDir: viper.GetString("backup_dir"),
	})
	for _, desc := range builtin {
		if err := d.Register(desc); err != nil {
			return nil, fmt.Errorf("register builtin task: %w", err)
		}
	}
	return d, nil
}
