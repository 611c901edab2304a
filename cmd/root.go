/*
Copyright © 2026 The linguarelay authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "linguarelay",
	Short: "Per-conversation chat translation relay",
	Long: `linguarelay is the translation core of a chat-client plugin: it splits
messages into clause-sized units, translates each unit through the free
Google Translate web endpoint, and reassembles the results, keeping the
original text for any unit that fails.

The commands below drive the same pipeline the plugin uses, from the
terminal.`,
	Version: version,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("endpoint", "", "Translation endpoint base URL (default is the Google web endpoint)")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Per-unit read timeout (default 5s)")
	rootCmd.PersistentFlags().String("db", "", "Translation memory database path (empty disables the memory)")

	viper.BindPFlag("endpoint", rootCmd.PersistentFlags().Lookup("endpoint"))
	viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	viper.BindPFlag("db", rootCmd.PersistentFlags().Lookup("db"))
}

// initConfig reads ~/.linguarelay.yaml and LINGUARELAY_* environment
// variables; flags take precedence.
func initConfig() {
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".linguarelay")
	}

	viper.SetEnvPrefix("linguarelay")
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()
}
