package scoring

import (
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/gjson"
)

// defaultKeywordSets maps a lower-cased job title to the keywords scored
// against it. Titles not listed here score 0.
var defaultKeywordSets = map[string][]string{
	"software engineer":    {"javascript", "python", "react", "node.js", "sql", "git", "api", "database"},
	"data scientist":       {"python", "sql", "machine learning", "pandas", "numpy", "tableau", "statistics"},
	"marketing manager":    {"marketing", "seo", "social media", "analytics", "campaign", "brand"},
	"product manager":      {"product", "roadmap", "agile", "scrum", "analytics", "user experience"},
	"sales representative": {"sales", "crm", "lead generation", "negotiation", "customer service"},
}

// LoadKeywordSets reads a keyword-set override file. The file is a JSON
// object mapping job titles to keyword arrays:
//
//	{"software engineer": ["go", "sql"], ...}
//
// Titles and keywords are lower-cased on load.
func LoadKeywordSets(path string) (map[string][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keywords file: %w", err)
	}

	parsed := gjson.ParseBytes(data)
	if !parsed.IsObject() {
		return nil, fmt.Errorf("keywords file %s: expected a JSON object", path)
	}

	sets := make(map[string][]string)
	parsed.ForEach(func(title, list gjson.Result) bool {
		var keywords []string
		for _, kw := range list.Array() {
			keywords = append(keywords, strings.ToLower(kw.String()))
		}
		sets[strings.ToLower(title.String())] = keywords
		return true
	})
	return sets, nil
}
