package models

// Rule is one entry of the house-rules catalogue, already resolved to a
// single language.
type Rule struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
}

// Penalty is a fixed charge listed under the rules. Amount zero means the
// charge is assessed case by case.
type Penalty struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Amount int64  `json:"amount"`
	Text   string `json:"text"`
}
