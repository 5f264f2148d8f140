package responses

import "medicapp-gateway/internal/app/models"

type Menu struct {
	Role    string             `json:"role"`
	Entries []models.MenuEntry `json:"entries"`
}

// Resolution is the outcome of a dashboard navigation attempt.
type Resolution struct {
	Role string `json:"role"`
	Path string `json:"path"`
}
