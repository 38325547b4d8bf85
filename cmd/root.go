package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	quiet   bool
	output  string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "linkvet",
	Short: "A service and CLI for classifying URLs as phishing, shortened, or benign",
	Long: `Linkvet inspects URLs for phishing indicators. It normalizes the input,
extracts lexical features, matches against local and remote blacklists,
detects known link shorteners, and combines everything into a bounded
risk score with a three-tier verdict.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.linkvet.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "quiet output (suppress verbose messages)")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "human", "output format (human, json)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// .env files are optional; ignore a missing one.
	_ = godotenv.Load()

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".linkvet" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".linkvet")
	}

	viper.SetEnvPrefix("linkvet")
	viper.AutomaticEnv() // read in environment variables that match

	viper.SetDefault("listen", ":8080")
	viper.SetDefault("local_list", "filters/caught.json")
	viper.SetDefault("feed_url", "https://feeds.linkvet.dev/denied.json")
	viper.SetDefault("fetch_timeout_seconds", 10)
	viper.SetDefault("log_level", "info")
	viper.SetDefault("log_format", "text")

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil && !quiet {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
