package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}
	app := &app{}

	rootCmd := &cobra.Command{
		Use:           "gmn",
		Short:         "Guess My Number: a terminal client for the number guessing game",
		Long:          "gmn plays the Guess My Number game against a remote game service. Every wrong guess costs a point; guess right before your score runs out to set a highscore.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			wired, err := wireApp(cmd, flags)
			if err != nil {
				return err
			}
			*app = *wired
			return nil
		},
	}

	flags.register(rootCmd)

	rootCmd.AddCommand(
		newVersionCmd(),
		newPlayCmd(app),
		newBoundsCmd(app),
		newConfigCmd(flags),
	)

	return rootCmd
}
