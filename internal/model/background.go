package model

// ColorResponse represents one palette color.
type ColorResponse struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Hex   string `json:"hex"`
}

// SelectColorRequest represents a background change.
type SelectColorRequest struct {
	Color string `json:"color"`
}
