// stack.go drives the bounded-stack demo: the classic push/pop walkthrough
// plus a scripted mode that reads operations from stdin.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/example/oslab/internal/bounded"
	"github.com/example/oslab/internal/logging"
	"github.com/example/oslab/internal/ui"
)

// defaultStackCapacity matches the fixed array of the original exercise.
const defaultStackCapacity = 100

func newStackCommand(logLevel *string, colorMode *string) *cobra.Command {
	capacity := defaultStackCapacity
	mode := "normal"
	cmd := &cobra.Command{
		Use:   "stack",
		Short: "Drive the bounded stack demo",
		Long: strings.TrimSpace(`
Exercises a fixed-capacity integer stack. Modes:
  normal     push five values, then pop them back in LIFO order
  overflow   push past capacity to trigger the overflow diagnostic
  underflow  pop an empty stack to trigger the underflow diagnostic
  script     read whitespace-separated operations from stdin:
             'push N', 'pop', 'peek'`),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStack(cmd, capacity, mode, *logLevel, *colorMode)
		},
	}
	cmd.Flags().IntVarP(&capacity, "capacity", "c", capacity, "Fixed stack capacity")
	cmd.Flags().StringVar(&mode, "mode", mode, "Demo mode (normal, overflow, underflow, script)")
	return cmd
}

func runStack(cmd *cobra.Command, capacity int, mode string, logLevel, colorMode string) error {
	logger, err := logging.New(logLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	st, err := bounded.New[int](capacity)
	if err != nil {
		return err
	}
	console := ui.NewConsole(cmd.OutOrStdout(), colorMode)
	logger.Debug("stack demo starting", zap.String("mode", mode), zap.Int("capacity", capacity))

	switch strings.ToLower(mode) {
	case "normal":
		for i := 1; i <= 5; i++ {
			demoPush(console, st, i*10)
		}
		for i := 0; i < 5; i++ {
			demoPop(console, st)
		}
	case "overflow":
		for i := 1; i <= capacity+5; i++ {
			demoPush(console, st, i)
		}
	case "underflow":
		for i := 0; i < 5; i++ {
			demoPop(console, st)
		}
	case "script":
		if err := runStackScript(cmd, console, st); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown stack mode %q (expected normal, overflow, underflow, or script)", mode)
	}
	return nil
}

func runStackScript(cmd *cobra.Command, console *ui.Console, st *bounded.Stack[int]) error {
	scanner := bufio.NewScanner(cmd.InOrStdin())
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "push":
			if len(fields) != 2 {
				return fmt.Errorf("line %d: push takes exactly one integer", line)
			}
			v, err := strconv.Atoi(fields[1])
			if err != nil {
				return fmt.Errorf("line %d: invalid integer %q: %w", line, fields[1], err)
			}
			demoPush(console, st, v)
		case "pop":
			demoPop(console, st)
		case "peek":
			top, err := st.Peek()
			if errors.Is(err, bounded.ErrUnderflow) {
				console.Warnf("Stack is empty!")
				continue
			}
			console.Printf("Top = %d\n", top)
		default:
			return fmt.Errorf("line %d: unknown operation %q (expected push, pop, or peek)", line, fields[0])
		}
	}
	return scanner.Err()
}

func demoPush(console *ui.Console, st *bounded.Stack[int], v int) {
	if err := st.Push(v); errors.Is(err, bounded.ErrOverflow) {
		console.Warnf("Stack Overflow! Cannot push.")
		return
	}
	console.Printf("Pushed %d\n", v)
}

func demoPop(console *ui.Console, st *bounded.Stack[int]) {
	v, err := st.Pop()
	if errors.Is(err, bounded.ErrUnderflow) {
		console.Warnf("Stack Underflow! Cannot pop.")
		return
	}
	console.Printf("Popped %d\n", v)
}
