package cmd

import (
	"fmt"
	"os"

	"github.com/Haufan/annotator-analysis/pipeline"
	"github.com/Haufan/annotator-analysis/rst"
	"github.com/spf13/cobra"
)

// treeCmd represents the tree command
var treeCmd = &cobra.Command{
	Use:   "tree [rs3_file]",
	Short: "Print the report for a single RS3 file",
	Long:  `Parse one RS3 file and print its discourse tree and relation analysis to stdout instead of writing a report file.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		f, err := os.Open(args[0])
		if err != nil {
			fmt.Printf("Error opening file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()

		doc, err := rst.ParseDocument(f)
		if err != nil {
			fmt.Printf("Error parsing file: %v\n", err)
			os.Exit(1)
		}

		root, err := rst.BuildTree(doc)
		if err != nil {
			fmt.Printf("Error building tree: %v\n", err)
			os.Exit(1)
		}

		pipeline.WriteReport(os.Stdout, root, rst.Analyze(root))
	},
}

func init() {
	rootCmd.AddCommand(treeCmd)
}
