package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"taxfile/internal/calculation"
	"taxfile/internal/classifier"
	"taxfile/internal/config"
	"taxfile/internal/output"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "taxfile %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

var rootCmd = &cobra.Command{
	Use:   "taxfile",
	Short: "Personal income tax calculator CLI",
	Long:  "Computes federal income-tax liability for a batch of filings under a progressive bracket schedule, choosing itemized or standard deductions per filer.",
}

var calculateCmd = &cobra.Command{
	Use:   "calculate [input-file]",
	Short: "Calculate tax liability for a batch of filings",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inputFile := args[0]

		parser := config.NewInputParser()
		batch, err := parser.LoadFromFile(inputFile)
		if err != nil {
			log.Fatal(err)
		}

		// An external policy file overrides anything inline in the batch.
		policyFile, _ := cmd.Flags().GetString("policy")
		if policyFile != "" {
			policy, err := parser.LoadPolicy(policyFile)
			if err != nil {
				log.Fatal(err)
			}
			batch.Policy = policy
		}

		classifierName, _ := cmd.Flags().GetString("classifier")
		if classifierName == "" {
			classifierName = batch.Classifier
		}
		predictor, err := classifier.New(classifierName, batch.Policy)
		if err != nil {
			log.Fatal(err)
		}

		engine := calculation.NewEngine(batch.Policy, predictor)
		debugMode, _ := cmd.Flags().GetBool("debug")
		if debugMode {
			engine.SetLogger(simpleCLILogger{})
		}

		results, err := engine.ProcessBatch(batch.Filings)
		if err != nil {
			log.Fatal(err)
		}

		outputFormat, _ := cmd.Flags().GetString("format")
		f := output.GetFormatterByName(outputFormat)
		if f == nil {
			log.Fatalf("Unknown output format: %s (valid: console, csv, json)", outputFormat)
		}
		rendered, err := f.Format(results)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(rendered)
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [input-file]",
	Short: "Validate a filings input file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inputFile := args[0]

		parser := config.NewInputParser()
		batch, err := parser.LoadFromFile(inputFile)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Printf("Input file %s is valid (%d filings, policy year %d)\n",
			inputFile, len(batch.Filings), batch.Policy.Year)
	},
}

func init() {
	calculateCmd.Flags().StringP("format", "f", "console", "Output format (console, csv, json)")
	calculateCmd.Flags().String("policy", "", "Path to a tax-policy YAML file overriding the built-in tables")
	calculateCmd.Flags().String("classifier", "", "Deduction classifier to use (tree, rule)")
	calculateCmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
