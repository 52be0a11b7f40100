// expr.go exposes the two expression stack machines: infix-to-postfix
// conversion and prefix evaluation.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/example/oslab/internal/expr"
	"github.com/example/oslab/internal/logging"
)

func newExprCommand(logLevel *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expr",
		Short: "Expression notation tools",
		Long: strings.TrimSpace(`
Single-pass stack machines over expression strings: convert infix to
postfix notation, or evaluate a prefix expression of single-digit
operands. The expression comes from the argument or, when omitted, from
one whitespace-delimited stdin token.`),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newPostfixCommand(logLevel), newPrefixCommand(logLevel))
	return cmd
}

func newPostfixCommand(logLevel *string) *cobra.Command {
	return &cobra.Command{
		Use:           "postfix [EXPRESSION]",
		Short:         "Convert an infix expression to postfix notation",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(*logLevel)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			input, err := exprInput(cmd, args)
			if err != nil {
				return err
			}
			logger.Debug("converting infix expression", zap.String("infix", input))
			postfix, err := expr.InfixToPostfix(input)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Postfix expression: %s\n", postfix)
			return nil
		},
	}
}

func newPrefixCommand(logLevel *string) *cobra.Command {
	return &cobra.Command{
		Use:           "prefix [EXPRESSION]",
		Short:         "Evaluate a prefix expression of single-digit operands",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(*logLevel)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			input, err := exprInput(cmd, args)
			if err != nil {
				return err
			}
			logger.Debug("evaluating prefix expression", zap.String("prefix", input))
			result, err := expr.EvalPrefix(input)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Result = %d\n", result)
			return nil
		},
	}
}

// exprInput takes the expression from argv or reads one whitespace-delimited
// token from stdin, like the original programs did.
func exprInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	var token string
	if _, err := fmt.Fscan(cmd.InOrStdin(), &token); err != nil {
		return "", fmt.Errorf("read expression: %w", err)
	}
	return token, nil
}
