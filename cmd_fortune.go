package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"fortune-cloud/fortune"
)

var fortuneCmd = &cobra.Command{
	Use:   "fortune <thoughts...>",
	Short: "Print one fortune for the given thoughts",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFortune,
}

func init() {
	rootCmd.AddCommand(fortuneCmd)
}

func runFortune(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	svc := fortune.NewService(cfg.Fortune())
	out, err := svc.Generate(cmd.Context(), &fortune.ThoughtsRequest{Thoughts: strings.Join(args, " ")})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), out.Fortune)
	return nil
}
