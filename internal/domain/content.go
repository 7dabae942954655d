package domain

import "fmt"

type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusApproved  PostStatus = "approved"
	PostStatusScheduled PostStatus = "scheduled"
	PostStatusPublished PostStatus = "published"
)

// ProposedPost é a visão editável de um DailyPost do plano ativo. O conteúdo
// base é recalculado a cada mudança de estratégia ou de data; o que o usuário
// aprovou ou editou sobrevive via PostOverride, nunca no próprio plano.
type ProposedPost struct {
	ID            string     `json:"id"`
	Key           string     `json:"key"`
	Date          string     `json:"date"`
	Platform      string     `json:"platform"`
	Pillar        string     `json:"pillar"`
	Topic         string     `json:"topic"`
	Content       string     `json:"content"`
	Status        PostStatus `json:"status"`
	ScheduledTime string     `json:"scheduledTime,omitempty"`
	Edited        bool       `json:"edited"`
}

// PostOverride é a camada persistida de aprovações e edições locais,
// chaveada pela identidade do post para sobreviver à recomputação.
type PostOverride struct {
	Key           string     `json:"key"`
	Status        PostStatus `json:"status"`
	Content       string     `json:"content,omitempty"`
	ScheduledTime string     `json:"scheduledTime,omitempty"`
}

// PostKey deriva a identidade estável de um post do calendário. Um plano não
// contém dois posts da mesma plataforma na mesma data para a mesma marca.
func PostKey(brandName, date string, platform PlanPlatform) string {
	return fmt.Sprintf("%s|%s|%s", brandName, date, platform)
}
