package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/linkvet/linkvet/internal/logging"
	"github.com/linkvet/linkvet/internal/scanner"
)

var scanWorkers int

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan <file>",
	Short: "Analyze a file of URLs in parallel",
	Long: `Scan reads newline-separated URLs from a file (blank lines and
#-comments are skipped) and analyzes them with a bounded worker pool,
writing one JSON result per line to stdout. Rejected inputs are reported
on stderr and do not stop the run.

Examples:
  linkvet scan urls.txt
  linkvet scan --workers 16 urls.txt > results.jsonl`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().IntVar(&scanWorkers, "workers", runtime.NumCPU(), "number of parallel workers")
}

func runScan(cmd *cobra.Command, args []string) error {
	level := viper.GetString("log_level")
	if quiet {
		level = "error"
	}

	logger := logging.Init(level, viper.GetString("log_format"))

	file, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer file.Close()

	a := buildAnalyzer(cmd.Context(), logger)

	pool := scanner.NewPool(a, scanWorkers)
	pool.Start()

	go func() {
		defer pool.Close()

		line := 0
		fileScanner := bufio.NewScanner(file)

		for fileScanner.Scan() {
			line++

			raw := strings.TrimSpace(fileScanner.Text())
			if raw == "" || strings.HasPrefix(raw, "#") {
				continue
			}

			pool.Submit(scanner.Task{Raw: raw, Line: line})
		}
	}()

	go pool.Wait()

	encoder := json.NewEncoder(os.Stdout)
	rejected := 0

	for res := range pool.Results() {
		if res.Err != nil {
			rejected++
			fmt.Fprintln(os.Stderr, res.Err)

			continue
		}

		if err := encoder.Encode(res.Result); err != nil {
			pool.Stop()
			return fmt.Errorf("write result: %w", err)
		}
	}

	if rejected > 0 && !quiet {
		fmt.Fprintf(os.Stderr, "%d input(s) rejected\n", rejected)
	}

	return nil
}
