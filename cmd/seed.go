/*
Copyright © 2025 docusage
*/
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/docusage/docusage-be/config"
	"github.com/docusage/docusage-be/service"
	"github.com/docusage/docusage-be/types"
	"github.com/spf13/cobra"
)

// seedCmd represents the seed command
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Reset the knowledge base from a fixture file",
	Long: `Replaces the entire knowledge base with the documents in a JSON
fixture file (an array of {source, name, content} objects). Every record
is assigned a fresh id. Existing documents are discarded.`,
	Run: func(cmd *cobra.Command, args []string) {
		filePath, _ := cmd.Flags().GetString("file")

		cfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		store, err := newDocumentStore(cfg)
		if err != nil {
			log.Fatalf("Failed to open document store: %v", err)
		}
		ingestService := service.NewIngestService(store, recognizedSources(cfg))

		data, err := os.ReadFile(filePath)
		if err != nil {
			log.Fatalf("Failed to read fixture file: %v", err)
		}
		var inputs []types.DocumentInput
		if err := json.Unmarshal(data, &inputs); err != nil {
			log.Fatalf("Failed to parse fixture file: %v", err)
		}

		if err := ingestService.Seed(context.Background(), inputs); err != nil {
			log.Fatalf("Failed to seed knowledge base: %v", err)
		}
		fmt.Printf("Seeded knowledge base with %d documents\n", len(inputs))
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)

	seedCmd.Flags().StringP("file", "f", "", "Path to the JSON fixture file")
}
