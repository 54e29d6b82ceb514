/*
Copyright © 2025 docusage
*/
package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/docusage/docusage-be/config"
	"github.com/docusage/docusage-be/service"
	"github.com/spf13/cobra"
)

// ingestDocumentCmd represents the ingest command
var ingestDocumentCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Ingest a single document into the knowledge base",
	Long: `Reads an extracted text file and appends it to the knowledge base.
The source must be one of the recognized source systems (see the
recognized_sources config, default Notion, Google Docs, Confluence).`,
	Run: func(cmd *cobra.Command, args []string) {
		source, _ := cmd.Flags().GetString("source")
		name, _ := cmd.Flags().GetString("name")
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

		content, err := os.ReadFile(filePath)
		if err != nil {
			log.Fatalf("Failed to read file: %v", err)
		}
		if name == "" {
			name = strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
		}

		result := ingestService.Ingest(context.Background(), source, name, string(content))
		if !result.Success {
			log.Fatalf("Failed to ingest %s", filePath)
		}
		fmt.Println("Ingested", name)
	},
}

func init() {
	rootCmd.AddCommand(ingestDocumentCmd)

	ingestDocumentCmd.Flags().StringP("file", "f", "", "Path to the extracted text file to ingest")
	ingestDocumentCmd.Flags().StringP("source", "s", "Notion", "Source system of the document")
	ingestDocumentCmd.Flags().StringP("name", "n", "", "Document name (defaults to the file name)")
}
