package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/linkvet/linkvet/internal/analyzer"
	"github.com/linkvet/linkvet/internal/logging"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check <url>",
	Short: "Analyze a single URL and print its risk verdict",
	Long: `Check runs the full analysis pipeline against one URL: blacklist
membership, shortener detection, lexical features, and the weighted
risk score.

Examples:
  linkvet check bit.ly/3xyzzy
  linkvet check https://login-example.xyz/verify
  linkvet check -o json http://198.51.100.7/account`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	raw := args[0]

	level := viper.GetString("log_level")
	if quiet {
		level = "error"
	}

	logger := logging.Init(level, viper.GetString("log_format"))

	if !analyzer.IsValid(raw) {
		return fmt.Errorf("invalid URL: %q", raw)
	}

	a := buildAnalyzer(cmd.Context(), logger)

	result, err := a.Analyze(cmd.Context(), raw)
	if err != nil {
		return fmt.Errorf("failed to analyze %s: %w", raw, err)
	}

	return outputResult(result)
}

func outputResult(result *analyzer.Result) error {
	switch strings.ToLower(output) {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		return encoder.Encode(result)
	case "human", "":
		return outputHuman(result)
	default:
		return fmt.Errorf("unsupported output format: %s", output)
	}
}

func outputHuman(result *analyzer.Result) error {
	verdict := result.Analysis["verdict"]

	marker := "✅"
	if result.RiskScore >= analyzer.DefaultThresholds().Medium {
		marker = "⚠️"
	}

	fmt.Printf("🔗 URL: %s\n", result.URL)
	fmt.Printf("%s Risk: %.2f (%s)\n", marker, result.RiskScore, verdict)
	fmt.Printf("   Shortened: %t | Blacklisted: %t\n", result.IsShortened, result.IsPhishing)

	signals := make([]string, 0, len(result.Analysis))

	for name := range result.Analysis {
		if name != "verdict" {
			signals = append(signals, name)
		}
	}

	if len(signals) > 0 {
		sort.Strings(signals)
		fmt.Println("   Signals:")

		for _, name := range signals {
			fmt.Printf("   - %s: %s\n", name, result.Analysis[name])
		}
	}

	return nil
}
