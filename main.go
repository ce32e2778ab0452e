// Copyright 2025 Quercus Lab
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

func main() {
	asciiLogo := `
████████╗██████╗ ███████╗███████╗██████╗ ███████╗███╗   ██╗ ██████╗██╗  ██╗
╚══██╔══╝██╔══██╗██╔════╝██╔════╝██╔══██╗██╔════╝████╗  ██║██╔════╝██║  ██║
   ██║   ██████╔╝█████╗  █████╗  ██████╔╝█████╗  ██╔██╗ ██║██║     ███████║
   ██║   ██╔══██╗██╔══╝  ██╔══╝  ██╔══██╗██╔══╝  ██║╚██╗██║██║     ██╔══██║
   ██║   ██║  ██║███████╗███████╗██████╔╝███████╗██║ ╚████║╚██████╗██║  ██║
   ╚═╝   ╚═╝  ╚═╝╚══════╝╚══════╝╚═════╝ ╚══════╝╚═╝  ╚═══╝ ╚═════╝╚═╝  ╚═╝
AVL vs BST: height, comparisons, rotations and timing across input shapes [Version: %s%s%s]

`

	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	var cmdRun = &cobra.Command{
		Use:   "run",
		Short: "Run the full experiment suite and print comparison reports",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Run builds a BST and an AVL tree from every configured dataset and compares them`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfigWithFlags(cmd)

			opts := ExperimentOptions{
				Progress:  true,
				Verify:    config.Experiment.Verify,
				ShowTrees: config.Experiment.ShowTrees,
			}

			results, err := runSuite(config, opts)
			if err != nil {
				log.Fatalf("Experiment failed: %v", err)
			}

			for _, res := range results {
				if config.Report.Markdown {
					out, err := renderMarkdownToTerminal(renderMarkdownRunReport(res))
					if err != nil {
						log.Fatalf("Error rendering report: %v", err)
					}
					fmt.Println(out)
				} else {
					fmt.Println(renderRunReport(res))
				}
			}

			if outPath, _ := cmd.Flags().GetString("out"); outPath != "" {
				if err := WriteReportFile(reportFs, outPath, renderMarkdownSuiteReport(results)); err != nil {
					log.Fatalf("Error writing report: %v", err)
				}
				fmt.Printf("✅ Report written to %s\n", outPath)
			}

			if doCopy, _ := cmd.Flags().GetBool("copy"); doCopy {
				if err := copyReport(renderMarkdownSuiteReport(results)); err != nil {
					log.Fatalf("Error copying report: %v", err)
				}
				fmt.Println("✅ Report copied to clipboard!")
			}
		},
	}
	addExperimentFlags(cmdRun)
	cmdRun.Flags().String("out", "", "write the suite report (markdown) to a file")
	cmdRun.Flags().Bool("copy", false, "copy the suite report to the clipboard")

	var cmdChart = &cobra.Command{
		Use:   "chart",
		Short: "Show bar charts comparing both engines per arrangement",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Chart runs the suite and draws height and comparison bar charts in the terminal`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfigWithFlags(cmd)

			results, err := runSuite(config, ExperimentOptions{Verify: config.Experiment.Verify})
			if err != nil {
				log.Fatalf("Experiment failed: %v", err)
			}
			runChart(results)
		},
	}
	addExperimentFlags(cmdChart)

	var cmdBrowse = &cobra.Command{
		Use:   "browse",
		Short: "Browse experiment results interactively",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Browse runs the suite and opens the results in an interactive viewer`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfigWithFlags(cmd)

			results, err := runSuite(config, ExperimentOptions{Verify: config.Experiment.Verify})
			if err != nil {
				log.Fatalf("Experiment failed: %v", err)
			}
			if err := runBrowser(results); err != nil {
				log.Fatalf("Browser failed: %v", err)
			}
		},
	}
	addExperimentFlags(cmdBrowse)

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Display current configuration settings",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings()
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print the Treebench usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the treebench usage guide`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print the Treebench version",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "treebench",
		Version: version,
		Long:    asciiLogo,
		Run: func(cmd *cobra.Command, args []string) {
			// Default to the run command when no subcommand is provided
			config := loadConfigWithFlags(cmd)

			results, err := runSuite(config, ExperimentOptions{
				Progress:  true,
				Verify:    config.Experiment.Verify,
				ShowTrees: config.Experiment.ShowTrees,
			})
			if err != nil {
				log.Fatalf("Experiment failed: %v", err)
			}
			for _, res := range results {
				fmt.Println(renderRunReport(res))
			}
		},
	}
	rootCmd.AddCommand(cmdRun, cmdChart, cmdBrowse, cmdSettings, cmdUsage, cmdVersion)
	rootCmd.Execute()
}

// addExperimentFlags registers the flags shared by every command that
// runs the suite.
func addExperimentFlags(cmd *cobra.Command) {
	cmd.Flags().IntSlice("sizes", nil, "dataset sizes to run (default from config)")
	cmd.Flags().StringSlice("modes", nil, "dataset modes to run (default from config)")
	cmd.Flags().Int64("seed", 0, "random seed; 0 draws one from the clock")
	cmd.Flags().Bool("verify", false, "re-check tree invariants after every build")
	cmd.Flags().Bool("show-trees", false, "print tree shapes for tiny datasets")
	cmd.Flags().Bool("markdown", false, "render reports as markdown")
}

// loadConfigWithFlags loads ~/.treebench.yaml and lets command-line
// flags override individual settings.
func loadConfigWithFlags(cmd *cobra.Command) *Config {
	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
		cfg := defaultConfig
		config = &cfg
	}

	if cmd.Flags().Changed("sizes") {
		config.Experiment.Sizes, _ = cmd.Flags().GetIntSlice("sizes")
	}
	if cmd.Flags().Changed("modes") {
		config.Experiment.Modes, _ = cmd.Flags().GetStringSlice("modes")
	}
	if cmd.Flags().Changed("seed") {
		config.Experiment.Seed, _ = cmd.Flags().GetInt64("seed")
	}
	if cmd.Flags().Changed("verify") {
		config.Experiment.Verify, _ = cmd.Flags().GetBool("verify")
	}
	if cmd.Flags().Changed("show-trees") {
		config.Experiment.ShowTrees, _ = cmd.Flags().GetBool("show-trees")
	}
	if cmd.Flags().Changed("markdown") {
		config.Report.Markdown, _ = cmd.Flags().GetBool("markdown")
	}

	return config
}
