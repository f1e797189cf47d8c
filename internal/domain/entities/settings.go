package entities

// SettingsID is the fixed key of the settings singleton record.
const SettingsID = "settings"

// Settings holds the workshop display data used on rendered documents.
// EmailAPIKey is a stored credential placeholder; no delivery logic exists.
type Settings struct {
	ID           string `json:"id"`
	WorkshopName string `json:"workshop_name"`
	WhatsApp     string `json:"whatsapp,omitempty"`
	Email        string `json:"email,omitempty"`
	EmailAPIKey  string `json:"email_api_key,omitempty"`
	Address      string `json:"address,omitempty"`
}

// DefaultSettings is the record lazily created on first read.
func DefaultSettings() Settings {
	return Settings{
		ID:           SettingsID,
		WorkshopName: "IBS Auto Center",
	}
}
