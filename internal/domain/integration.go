package domain

import "time"

// Provider identifica uma rede social suportada pelo produto. O conjunto é
// fechado: o registro de integrações é pré-semeado com todos os provedores.
type Provider string

const (
	ProviderTwitter   Provider = "twitter"
	ProviderLinkedIn  Provider = "linkedin"
	ProviderFacebook  Provider = "facebook"
	ProviderInstagram Provider = "instagram"
)

// AllProviders retorna os provedores suportados na ordem de exibição
func AllProviders() []Provider {
	return []Provider{
		ProviderTwitter,
		ProviderLinkedIn,
		ProviderFacebook,
		ProviderInstagram,
	}
}

// ValidProvider indica se o identificador pertence ao conjunto suportado
func ValidProvider(p Provider) bool {
	switch p {
	case ProviderTwitter, ProviderLinkedIn, ProviderFacebook, ProviderInstagram:
		return true
	}
	return false
}

// Integration representa o estado de conexão OAuth de um provedor. É uma
// simulação local: nenhuma chamada externa é feita ao conectar.
type Integration struct {
	Provider    Provider   `json:"provider"`
	Connected   bool       `json:"connected"`
	AccountName string     `json:"accountName,omitempty"`
	AccountID   string     `json:"accountId,omitempty"`
	ConnectedAt *time.Time `json:"connectedAt,omitempty"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty"`
	Scopes      []string   `json:"scopes,omitempty"`
}

// IntegrationAccount carrega os metadados opcionais informados ao conectar
type IntegrationAccount struct {
	AccountName string   `json:"accountName,omitempty"`
	AccountID   string   `json:"accountId,omitempty"`
	Scopes      []string `json:"scopes,omitempty"`
}
