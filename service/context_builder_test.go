package service

import (
	"strings"
	"testing"

	"github.com/docusage/docusage-be/types"
	"github.com/stretchr/testify/assert"
)

func TestBuildContext_Empty(t *testing.T) {
	assert.Equal(t, "", BuildContext(nil))
	assert.Equal(t, "", BuildContext([]types.Document{}))
}

func TestBuildContext_Deterministic(t *testing.T) {
	docs := []types.Document{
		{Source: types.SourceNotion, Name: "Onboarding Guide", Content: "Day one checklist."},
		{Source: types.SourceConfluence, Name: "Security Policy", Content: "Use the password manager."},
	}

	first := BuildContext(docs)
	second := BuildContext(docs)
	assert.Equal(t, first, second)

	assert.Contains(t, first, "Onboarding Guide")
	assert.Contains(t, first, "Security Policy")
	assert.Contains(t, first, "Day one checklist.")
}

func TestBuildContext_BlockFormat(t *testing.T) {
	docs := []types.Document{
		{Source: types.SourceNotion, Name: "A", Content: "alpha"},
		{Source: types.SourceGoogleDocs, Name: "B", Content: "beta"},
	}

	blob := BuildContext(docs)
	blocks := strings.Split(blob, "\n\n")
	assert.Len(t, blocks, 2)
	assert.Equal(t, "Source: Notion - A\nContent: alpha", blocks[0])
	assert.Equal(t, "Source: Google Docs - B\nContent: beta", blocks[1])
}
