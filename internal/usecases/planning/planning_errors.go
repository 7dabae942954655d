package planning

import "errors"

var (
	// ErrPlanNotReady indica que o backend aceitou a geração mas o plano
	// ainda não estava disponível após as tentativas de busca. Falha
	// branda: o chamador decide entre reapresentar ou aguardar.
	ErrPlanNotReady = errors.New("a estratégia ainda não está disponível")

	// ErrMissingBrandIdentity indica que o perfil do projeto ainda não tem
	// identidade de marca para direcionar a geração
	ErrMissingBrandIdentity = errors.New("o perfil do projeto não tem identidade de marca")

	// ErrNoActiveStrategy indica que não há estratégia corrente nem em
	// cache nem no backend
	ErrNoActiveStrategy = errors.New("nenhuma estratégia ativa para a marca")
)
