package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"dirtree/internal/config"
	"dirtree/internal/observ"
	"dirtree/internal/trace"
	"dirtree/internal/tree"
)

func runList(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) > 0 && args[0] != "" {
		root = args[0]
	}

	flags := cmd.Root().PersistentFlags()
	colorFlag, err := flags.GetString("color")
	if err != nil {
		return err
	}
	mode, err := readColorMode(colorFlag)
	if err != nil {
		return err
	}
	quiet, err := flags.GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	timings, err := flags.GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	summary, err := cmd.Flags().GetBool("summary")
	if err != nil {
		return fmt.Errorf("failed to get summary flag: %w", err)
	}

	stopProfiling, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer stopProfiling()

	tracer, cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	span := trace.Begin(tracer, trace.ScopeDriver, "dirtree", 0)
	defer span.End("")

	timer := observ.NewTimer()
	stop := timer.Start("config")
	cfg, err := loadConfig(cmd)
	stop(cfg.Path)
	if err != nil {
		trace.Error(tracer, trace.ScopeDriver, "config", err, span.ID())
		return err
	}

	opts, err := cfg.Options(shouldUseColor(mode, cmd.OutOrStdout()))
	if err != nil {
		return err
	}
	opts.Tracer = tracer

	stop = timer.Start("walk")
	stats, err := tree.New(cmd.OutOrStdout(), opts).List(root)
	stop(pluralize(stats.Lines(), "line", "lines"))
	if err != nil {
		return err
	}

	if summary && !quiet {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "\n%s, %s\n",
			pluralize(stats.Dirs, "directory", "directories"),
			pluralize(stats.Files, "file", "files")); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
	}
	if timings && !quiet {
		if err := printTimings(cmd.ErrOrStderr(), timer); err != nil {
			return err
		}
	}
	return nil
}

// loadConfig reads --config or the nearest dirtree.toml, then applies the
// layout flags that were set explicitly.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to get config flag: %w", err)
	}
	var cfg config.Config
	if path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.Discover(".")
	}
	if err != nil {
		return config.Config{}, err
	}

	overrides := []struct {
		flag   string
		target *string
	}{
		{"sort", &cfg.Layout.Sort},
		{"indent", &cfg.Layout.Indent},
		{"marker", &cfg.Layout.DirMarker},
	}
	for _, o := range overrides {
		if !cmd.Flags().Changed(o.flag) {
			continue
		}
		value, err := cmd.Flags().GetString(o.flag)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to get %s flag: %w", o.flag, err)
		}
		*o.target = value
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}
