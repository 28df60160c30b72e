package model

// CultureItem is a highlight shown in the advantages section. Detail is
// markdown.
type CultureItem struct {
	Icon   string `yaml:"icon" json:"icon"`
	Title  string `yaml:"title" json:"title"`
	Detail string `yaml:"detail" json:"detail"`
}
