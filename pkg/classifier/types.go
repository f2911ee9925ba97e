package classifier

// Unknown is the language reported when no signature scores above zero.
const Unknown = "unknown"

// Result represents the outcome of a single analysis pass.
type Result struct {
	Language   string   `json:"language"`
	Confidence float64  `json:"confidence"`
	Framework  string   `json:"framework,omitempty"`
	Evidence   []string `json:"evidence"`
}
