package models

// Destination is one navigable sidebar entry. PathTemplate may contain
// the {role} placeholder, resolved to the session's department when the
// registry is consulted.
type Destination struct {
	Label        string `json:"label"`
	PathTemplate string `json:"path"`
	Icon         string `json:"icon"`
}

// MenuEntry is a resolved destination ready for rendering, with the
// entry matching the current path flagged active.
type MenuEntry struct {
	Label  string `json:"label"`
	Path   string `json:"path"`
	Icon   string `json:"icon"`
	Active bool   `json:"active"`
}
