package domain

// Caps for the categorized excerpt lists of ParsedContent. Truncation always
// keeps the first N items found in a single left-to-right scan of the text.
const (
	MaxHeadings    = 15
	MaxKeyPoints   = 10
	MaxConcepts    = 12
	MaxDefinitions = 10
	MaxFacts       = 8
	MaxExamples    = 6
	MaxSections    = 10
	MaxVocabulary  = 15
	MaxProcesses   = 8
	MaxStatistics  = 6
)

// DefaultTitle is used when neither a heading nor a usable first line exists.
const DefaultTitle = "Course Content"

// ParsedContent is the analyzed form of one uploaded document. Every list is
// duplicate-free and capped; it is produced once per upload and never
// mutated afterwards.
type ParsedContent struct {
	RawText     string   `json:"raw_text"`
	Title       string   `json:"title,omitempty"`
	Headings    []string `json:"headings"`
	KeyPoints   []string `json:"key_points"`
	Concepts    []string `json:"concepts"`
	Definitions []string `json:"definitions"`
	Facts       []string `json:"facts"`
	Examples    []string `json:"examples"`
	Sections    []string `json:"sections"`
	Vocabulary  []string `json:"vocabulary"`
	Processes   []string `json:"processes"`
	Statistics  []string `json:"statistics"`
}

// IsEmpty reports whether analysis found nothing usable beyond raw text.
func (p *ParsedContent) IsEmpty() bool {
	return p.Title == "" &&
		len(p.Headings) == 0 &&
		len(p.KeyPoints) == 0 &&
		len(p.Concepts) == 0
}
