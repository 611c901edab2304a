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
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/linguarelay/linguarelay/internal/langs"
	"github.com/linguarelay/linguarelay/internal/observability"
	"github.com/linguarelay/linguarelay/internal/pipeline"
	"github.com/linguarelay/linguarelay/internal/store"
	"github.com/linguarelay/linguarelay/internal/translator"
)

var (
	sourceLang string
	targetLang string
)

var translateCmd = &cobra.Command{
	Use:   "translate <message...>",
	Short: "Translate one message through the unit pipeline",
	Long: `Translate a message the way the plugin would: split it into units,
translate each unit independently, and print the reassembled result. Units
that fail keep their original text and the distinct errors are listed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, ok := langs.Find(sourceLang)
		if !ok {
			return fmt.Errorf("unsupported source language %q", sourceLang)
		}
		tgt, ok := langs.Find(targetLang)
		if !ok {
			return fmt.Errorf("unsupported target language %q", targetLang)
		}
		if src.Code == tgt.Code {
			return fmt.Errorf("source and target languages must differ")
		}

		var memory pipeline.Memory
		if dbPath := viper.GetString("db"); dbPath != "" {
			db, err := store.New(dbPath)
			if err != nil {
				return fmt.Errorf("failed to open translation memory: %w", err)
			}
			defer db.Close()
			memory = db
		}

		client := translator.NewClient(viper.GetString("endpoint"), viper.GetDuration("timeout"))
		pipe := pipeline.New(client, memory, observability.WithFields("component", "pipeline"))

		agg := pipe.TranslateMessage(context.Background(), strings.Join(args, " "), src.Code, tgt.Code)

		fmt.Println(agg.Text)
		if !agg.Clean() {
			fmt.Printf("Partially untranslated: %s\n", agg.ErrorSummary())
		}
		if agg.RateLimited {
			fmt.Println("The endpoint reported a rate limit; further requests will be rejected for a while.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().StringVarP(&sourceLang, "source", "s", "", "Source language name or code (required)")
	translateCmd.Flags().StringVarP(&targetLang, "target", "t", "", "Target language name or code (required)")

	translateCmd.MarkFlagRequired("source")
	translateCmd.MarkFlagRequired("target")
}
