package cmd

import (
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/thumbgrab/thumbgrab/config"
	"github.com/thumbgrab/thumbgrab/style"
	"github.com/thumbgrab/thumbgrab/where"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Display only environment variables that are currently defined")
	envCmd.Flags().BoolP("unset-only", "u", false, "Display only environment variables that are currently undefined")

	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
}

// envCmd displays the current process values for all supported environment variables.
var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Display the collection of supported environment variables",
	Long:  `Display the collection of supported environment variables and their current process values.`,
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))
		unsetOnly := lo.Must(cmd.Flags().GetBool("unset-only"))

		names := lo.Map(lo.Values(config.Default), func(f config.Field, _ int) string {
			return f.Env()
		})
		names = append(names, where.EnvConfigPath)
		slices.Sort(names)

		p := palette()
		for _, env := range names {
			value, present := os.LookupEnv(env)

			if (setOnly && !present) || (unsetOnly && present) {
				continue
			}

			cmd.Print(style.New().Bold(true).Foreground(p.Accent).Render(env))
			cmd.Print("=")

			if present {
				cmd.Println(style.Fg(p.Success)(value))
			} else {
				cmd.Println(style.Fg(p.Error)("unset"))
			}
		}
	},
}
