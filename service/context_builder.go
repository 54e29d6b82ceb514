package service

import (
	"fmt"
	"strings"

	"github.com/docusage/docusage-be/types"
)

// BuildContext renders the corpus into the single context blob passed to the
// completion service: one block per document, blank line between blocks,
// input order preserved. The whole corpus is always included; there is no
// ranking or truncation, which caps this at small corpora.
func BuildContext(docs []types.Document) string {
	if len(docs) == 0 {
		return ""
	}
	blocks := make([]string, 0, len(docs))
	for _, doc := range docs {
		blocks = append(blocks, fmt.Sprintf("Source: %s - %s\nContent: %s", doc.Source, doc.Name, doc.Content))
	}
	return strings.Join(blocks, "\n\n")
}
