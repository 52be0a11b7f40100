// main.go bootstraps oslab: it builds the root Cobra command, wires env/config
// binding, and executes with a signal-aware context.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	rootCmd := newRootCommand()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		handleError(err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	logLevel := "info"
	colorMode := "auto"
	cmd := &cobra.Command{
		Use:   "oslab",
		Short: "Classic OS and data-structures exercises in one CLI",
		Long: strings.TrimSpace(`
oslab bundles the classic coursework programs: a bounded-stack demo, an
FCFS/SCAN disk head scheduling simulator, and the two expression stack
machines (infix-to-postfix conversion and prefix evaluation). Each
subcommand is self-contained and reads the same input its original
program did.`),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", logLevel, "Log level for oslab diagnostics (debug, info, warn, error)")
	cmd.PersistentFlags().StringVarP(&colorMode, "color", "m", colorMode, "Force set color output. 'auto': colorize if tty attached, 'always': always colorize, 'never': never colorize")

	stackCmd := newStackCommand(&logLevel, &colorMode)
	diskCmd := newDiskCommand(&logLevel, &colorMode)
	exprCmd := newExprCommand(&logLevel)
	cmd.AddCommand(stackCmd, diskCmd, exprCmd, newVersionCommand())

	cmd.Example = `  # Run both disk policies over the classic workload
  oslab disk --head 53 --requests 98,183,37,122,14,124,65,67

  # Feed the original stdin wire format (n, cylinders, head)
  printf '8 98 183 37 122 14 124 65 67 53' | oslab disk --policy scan

  # Convert an infix expression
  oslab expr postfix 'A+B*C'`

	bindViper(cmd, stackCmd, diskCmd, exprCmd)
	return cmd
}

func bindViper(commands ...*cobra.Command) {
	if len(commands) == 0 {
		return
	}
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.SetEnvPrefix("OSLAB")
	v.AutomaticEnv()
	configFile := os.Getenv("OSLAB_CONFIG")
	configureConfigFile(v, configFile)

	cobra.OnInitialize(func() {
		for _, cmd := range commands {
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				cobra.CheckErr(err)
			}
			if err := v.BindPFlags(cmd.PersistentFlags()); err != nil {
				cobra.CheckErr(err)
			}
		}
		if err := readConfigFile(v, configFile != ""); err != nil {
			cobra.CheckErr(err)
		}
		for _, cmd := range commands {
			flagSets := []*pflag.FlagSet{cmd.Flags(), cmd.PersistentFlags()}
			for _, fs := range flagSets {
				fs.VisitAll(func(f *pflag.Flag) {
					if f.Changed {
						return
					}
					if !v.IsSet(f.Name) {
						return
					}
					val := fmt.Sprintf("%v", v.Get(f.Name))
					if val != "" {
						_ = f.Value.Set(val)
					}
				})
			}
		}
	})
}

func configureConfigFile(v *viper.Viper, explicitPath string) {
	if explicitPath != "" {
		v.SetConfigFile(explicitPath)
		return
	}
	v.SetConfigName("oslab")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "oslab"))
	}
}

func readConfigFile(v *viper.Viper, strict bool) error {
	if err := v.ReadInConfig(); err != nil {
		var cfgErr viper.ConfigFileNotFoundError
		if errors.As(err, &cfgErr) && !strict {
			return nil
		}
		return err
	}
	return nil
}

func handleError(err error) {
	if err == nil || errors.Is(err, pflag.ErrHelp) {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %s\n", err)
}
