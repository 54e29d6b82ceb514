package types

// Source is the origin system a document was extracted from. The set of
// recognized sources is closed and only extensible through configuration.
type Source string

const (
	SourceNotion     Source = "Notion"
	SourceGoogleDocs Source = "Google Docs"
	SourceConfluence Source = "Confluence"
)

// DefaultSources is the recognized source set when the config does not
// override it.
var DefaultSources = []Source{SourceNotion, SourceGoogleDocs, SourceConfluence}

// ParseSource matches s against the recognized set. Matching is exact and
// case-sensitive.
func ParseSource(s string, recognized []Source) (Source, bool) {
	for _, r := range recognized {
		if Source(s) == r {
			return r, true
		}
	}
	return "", false
}

// Document is a single indexed knowledge base entry.
type Document struct {
	ID          string `bson:"_id" json:"id"`
	Source      Source `bson:"source" json:"source"`
	Name        string `bson:"name" json:"name"`
	Content     string `bson:"content" json:"content"`
	LastIndexed int64  `bson:"last_indexed" json:"last_indexed"`
}

// DocumentInput carries the caller-supplied fields of a document; id and
// last_indexed are assigned by the store at write time.
type DocumentInput struct {
	Source  Source `json:"source"`
	Name    string `json:"name"`
	Content string `json:"content"`
}
