package domain

type Language string

const (
	LanguageFrench  Language = "fr"
	LanguageEnglish Language = "en"
)

// Preferences representa as preferências de interface do usuário persistidas
// pelo agente e refletidas no dashboard.
type Preferences struct {
	DarkMode    bool     `json:"darkMode"`
	SidebarOpen bool     `json:"sidebarOpen"`
	Language    Language `json:"language"`
}

// DefaultPreferences retorna o estado inicial antes de qualquer reidratação
func DefaultPreferences() Preferences {
	return Preferences{
		DarkMode:    false,
		SidebarOpen: true,
		Language:    LanguageFrench,
	}
}
