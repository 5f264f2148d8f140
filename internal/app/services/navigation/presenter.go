package navigation

import "medicapp-gateway/internal/app/models"

// BuildMenu renders the registry for a role, flagging the entry that
// matches the current path. The original sidebar highlighted on exact
// pathname equality; kept as is.
func BuildMenu(role models.Department, currentPath string) []models.MenuEntry {
	destinations := DestinationsFor(role)
	entries := make([]models.MenuEntry, len(destinations))
	for i, destination := range destinations {
		entries[i] = models.MenuEntry{
			Label:  destination.Label,
			Path:   destination.PathTemplate,
			Icon:   destination.Icon,
			Active: destination.PathTemplate == currentPath,
		}
	}
	return entries
}
