package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/embedkit/hostlog/bridge"
	"github.com/embedkit/hostlog/config"
)

var version = "dev"

// app carries the state shared between the root command and its
// subcommands.
type app struct {
	configPath string
	sinkKind   string
	output     string
	minLevel   string
	capacity   int
	showStats  bool

	fwd *bridge.Forwarder
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "hostlog",
		Short: "Bounded printf-style log forwarding",
		Long:  "hostlog renders printf-style messages into a bounded buffer and forwards\nthem to a configurable sink.\n\nExit codes:\n  0 - Success\n  1 - General error",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path := a.configPath
			if path == "" {
				path = config.FindConfigFile()
			}
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			if a.sinkKind != "" {
				cfg.Sink.Kind = a.sinkKind
			}
			if a.output != "" {
				cfg.Sink.Output = a.output
			}
			if a.minLevel != "" {
				cfg.MinLevel = a.minLevel
			}
			if a.capacity > 0 {
				cfg.RenderCapacity = a.capacity
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			a.fwd, err = cfg.NewForwarder()
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.fwd == nil {
				return nil
			}
			return a.fwd.Close()
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&a.sinkKind, "sink", "", "Sink kind: writer, json, slog, zap, zerolog or discard")
	rootCmd.PersistentFlags().StringVarP(&a.output, "output", "o", "", "Output: stdout, stderr or a file path")
	rootCmd.PersistentFlags().StringVar(&a.minLevel, "min-level", "", "Drop messages below this level")
	rootCmd.PersistentFlags().IntVar(&a.capacity, "capacity", 0, "Render buffer capacity in bytes (default from config)")

	rootCmd.AddCommand(newEmitCmd(a))
	rootCmd.AddCommand(newRelayCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newEmitCmd(a *app) *cobra.Command {
	var levelName string

	emitCmd := &cobra.Command{
		Use:   "emit [message...]",
		Short: "Forward a single message",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := bridge.ParseLevelStrict(levelName)
			if err != nil {
				return err
			}
			a.fwd.Forward(level, "%s", strings.Join(args, " "))
			return nil
		},
	}
	emitCmd.Flags().StringVarP(&levelName, "level", "l", "notice", "Level to forward at: debug, verbose, notice or warning")

	return emitCmd
}

func newRelayCmd(a *app) *cobra.Command {
	relayCmd := &cobra.Command{
		Use:   "relay",
		Short: "Forward lines read from stdin",
		Long:  "Forward lines read from stdin until EOF.\n\nA line starting with a level name followed by a space is forwarded at\nthat level; every other line is forwarded as a notice.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				relayLine(a.fwd, scanner.Text())
			}
			if err := scanner.Err(); err != nil {
				return err
			}
			if a.showStats {
				s := a.fwd.Stats()
				fmt.Fprintf(cmd.ErrOrStderr(), "forwarded=%d truncated=%d\n",
					s.GetTotalForwarded(), s.GetTruncated())
			}
			return nil
		},
	}
	relayCmd.Flags().BoolVar(&a.showStats, "stats", false, "Print forwarding counters to stderr on EOF")

	return relayCmd
}

// relayLine forwards one line. A leading level token selects the level,
// anything else rides through as a notice.
func relayLine(fwd *bridge.Forwarder, line string) {
	level := bridge.NoticeLevel
	message := line

	if sp := strings.IndexByte(line, ' '); sp > 0 {
		if parsed, err := bridge.ParseLevelStrict(line[:sp]); err == nil {
			level = parsed
			message = line[sp+1:]
		}
	} else if parsed, err := bridge.ParseLevelStrict(line); err == nil {
		level = parsed
		message = ""
	}

	fwd.Forward(level, "%s", message)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "hostlog version %s\n", version)
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
