package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"taxfile/internal/classifier"
	"taxfile/internal/config"
	"taxfile/internal/domain"
	"taxfile/internal/tui"
)

func main() {
	policyPath := flag.String("policy", "", "tax-policy YAML file (default: built-in 2025 tables)")
	classifierName := flag.String("classifier", "tree", "deduction classifier (tree, rule)")
	flag.Parse()

	policy := domain.Policy2025()
	if *policyPath != "" {
		loaded, err := config.NewInputParser().LoadPolicy(*policyPath)
		if err != nil {
			fmt.Printf("Error loading policy: %v\n", err)
			os.Exit(1)
		}
		policy = loaded
	}

	predictor, err := classifier.New(*classifierName, policy)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	model := tui.NewModel(policy, predictor)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
