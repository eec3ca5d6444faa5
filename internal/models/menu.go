// Package models defines the core data types for nahw.
package models

// MenuItem is one entry of a lesson menu. Color is a loosely typed color
// token: a semantic role ("primary"), a palette class ("orange-600") or a
// literal ("#EA580C").
type MenuItem struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Icon     string `json:"icon,omitempty"`
	Color    string `json:"color,omitempty"`
}

// MenuSection groups a main item with the sub-items it reveals.
type MenuSection struct {
	Main     MenuItem   `json:"main"`
	SubItems []MenuItem `json:"sub_items,omitempty"`
}

// FindItem returns the item with the given ID.
func FindItem(items []MenuItem, id string) (MenuItem, bool) {
	for _, item := range items {
		if item.ID == id {
			return item, true
		}
	}
	return MenuItem{}, false
}
