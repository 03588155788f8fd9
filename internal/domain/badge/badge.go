// Package badge holds the presentation triple the admin UI renders for a status.
package badge

type Color string

const (
	ColorSuccess Color = "success"
	ColorPrimary Color = "primary"
	ColorDefault Color = "default"
	ColorDanger  Color = "danger"
)

type Badge struct {
	Color Color  `json:"color"`
	Icon  string `json:"icon"`
	Label string `json:"label"`
}
