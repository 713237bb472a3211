package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/D3V3LOP3R-wizard/consist/internal/config"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to consist!")
	fmt.Println()

	// 1. Data file location
	fmt.Println("  1. Data file location")
	fmt.Printf("     Where to keep your habit data [%s]\n", config.DataFile(cfg))
	fmt.Print("     > ")
	dataFile, _ := reader.ReadString('\n')
	dataFile = strings.TrimSpace(dataFile)
	if dataFile != "" {
		cfg.General.DataFile = dataFile
	}
	fmt.Println()

	// 2. Chart window
	fmt.Println("  2. Daily chart window")
	fmt.Println("     (1) 7 days [default]")
	fmt.Println("     (2) 14 days")
	fmt.Println("     (3) 30 days")
	fmt.Println("     or any number of days")
	fmt.Print("     > ")
	choice, _ := reader.ReadString('\n')
	choice = strings.TrimSpace(choice)
	switch choice {
	case "", "1":
		cfg.General.ChartDays = 7
	case "2":
		cfg.General.ChartDays = 14
	case "3":
		cfg.General.ChartDays = 30
	default:
		if n, err := strconv.Atoi(choice); err == nil && n > 0 {
			cfg.General.ChartDays = n
		} else {
			cfg.General.ChartDays = 7
		}
	}
	fmt.Println()

	// 3. Theme
	fmt.Println("  3. Color theme")
	fmt.Println("     (1) Flexoki Dark [default]")
	fmt.Println("     (2) Catppuccin Mocha")
	fmt.Println("     (3) Tokyo Night")
	fmt.Println("     (4) Terminal (ANSI 16)")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	themeChoice = strings.TrimSpace(themeChoice)
	switch themeChoice {
	case "2":
		cfg.Appearance.Theme = "catppuccin-mocha"
	case "3":
		cfg.Appearance.Theme = "tokyo-night"
	case "4":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "flexoki-dark"
	}

	// Save
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `consist setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
