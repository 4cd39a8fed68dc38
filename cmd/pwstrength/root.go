package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for pwstrength.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pwstrength",
		Short: "Rate password strength and explain how to improve it",
		Long: `pwstrength rates passwords from Very Weak to Excellent using length,
character variety, common-password and keyboard-pattern checks, repetition and
sequence detection, and Shannon entropy.

Every rating comes with feedback describing what helped and what hurt.
Nothing is stored and nothing leaves the machine.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(NewCheckCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
