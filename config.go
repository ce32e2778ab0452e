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
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type ExperimentConfig struct {
	Sizes      []int    `yaml:"sizes"`
	Modes      []string `yaml:"modes"`
	Sortedness float64  `yaml:"sortedness"`
	Seed       int64    `yaml:"seed"` // 0 means seed from the clock
	Verify     bool     `yaml:"verify"`
	ShowTrees  bool     `yaml:"show_trees"`
}

type ReportConfig struct {
	Markdown bool `yaml:"markdown"`
}

type Config struct {
	Experiment ExperimentConfig `yaml:"experiment"`
	Report     ReportConfig     `yaml:"report"`
}

var defaultConfig = Config{
	Experiment: ExperimentConfig{
		Sizes:      []int{100, 1000, 5000},
		Modes:      []string{"random", "sorted", "reverse", "nearly-sorted"},
		Sortedness: 0.9,
		Seed:       0,
		Verify:     false,
		ShowTrees:  false,
	},
	Report: ReportConfig{
		Markdown: false,
	},
}

// LoadConfig reads ~/.treebench.yaml. Any failure (no home, no file,
// broken YAML) falls back to the defaults rather than aborting a run.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		cfg := defaultConfig
		return &cfg, nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := defaultConfig
		return &cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		cfg := defaultConfig
		return &cfg, nil
	}

	cfg := defaultConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		cfg = defaultConfig
		return &cfg, nil
	}

	return &cfg, nil
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".treebench.yaml"), nil
}

func createDefaultConfigFile() error {
	configPath, err := getConfigPath()
	if err != nil {
		return errors.Wrap(err, "failed to get config path")
	}

	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return errors.Wrap(err, "failed to marshal default config")
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}

	return nil
}

func displaySettings() {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Printf("❌ Failed to get config path: %v\n", err)
		return
	}

	config, err := LoadConfig()
	if err != nil {
		fmt.Printf("❌ Failed to load configuration: %v\n", err)
		return
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(); err != nil {
			fmt.Printf("❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	fmt.Printf("🔧 Treebench Configuration Settings\n")
	fmt.Printf("═══════════════════════════════════\n\n")

	if configExists {
		fmt.Printf("📍 Config file: %s\n", configPath)
	} else {
		fmt.Printf("📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Printf("📊 Current settings:\n\n")

	fmt.Printf("🌲 %sExperiment:%s\n", Green, Reset)
	fmt.Printf("  • %ssizes%s: %v\n", Green, Reset, config.Experiment.Sizes)
	fmt.Printf("  • %smodes%s: %s\n", Green, Reset, strings.Join(config.Experiment.Modes, ", "))
	fmt.Printf("  • %ssortedness%s: %.2f\n", Green, Reset, config.Experiment.Sortedness)
	if config.Experiment.Seed == 0 {
		fmt.Printf("  • %sseed%s: 0 (a fresh seed is drawn from the clock each run)\n", Green, Reset)
	} else {
		fmt.Printf("  • %sseed%s: %d (runs are reproducible)\n", Green, Reset, config.Experiment.Seed)
	}
	fmt.Printf("  • %sverify%s: %v (re-check tree invariants after every build)\n", Green, Reset, config.Experiment.Verify)
	fmt.Printf("  • %sshow_trees%s: %v (print tree shapes for datasets of 32 keys or fewer)\n\n", Green, Reset, config.Experiment.ShowTrees)

	fmt.Printf("📄 %sReport:%s\n", Green, Reset)
	fmt.Printf("  • %smarkdown%s: %v\n\n", Green, Reset, config.Report.Markdown)

	fmt.Printf("💡 To pin a dataset across runs, edit %s:\n", configPath)
	fmt.Printf("   experiment:\n     seed: 42\n\n")
}
