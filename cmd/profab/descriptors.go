package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Sametle06/ProFAB/internal/descriptor"
)

var descriptorsCmd = &cobra.Command{
	Use:   "descriptors",
	Short: "List every descriptor the extract command accepts",
	Run: func(cmd *cobra.Command, args []string) {
		heading := color.New(color.FgGreen, color.Bold)
		alias := color.New(color.FgYellow)

		heading.Println("POSSUM descriptors (computed from PSSM matrices)")
		alias.Printf("  %s expands to all of:\n", descriptor.AllPOSSUM)
		for _, name := range descriptor.Names(descriptor.FamilyPOSSUM) {
			fmt.Printf("    %s\n", name)
		}
		fmt.Println()
		heading.Println("iFeature descriptors (computed from the sequence)")
		alias.Printf("  %s expands to all of:\n", descriptor.AllIFeature)
		for _, name := range descriptor.Names(descriptor.FamilyIFeature) {
			fmt.Printf("    %s\n", name)
		}
	},
}

func init() {
	rootCmd.AddCommand(descriptorsCmd)
}
