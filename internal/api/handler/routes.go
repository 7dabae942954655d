package handler

import (
	"net/http"

	"github.com/startpost/agent/infrastructure/integrator/startpost/startpostclient"
	"github.com/startpost/agent/internal/api/handler/router"
	"github.com/startpost/agent/internal/store"
	"github.com/startpost/agent/internal/usecases/analyzing"
	"github.com/startpost/agent/internal/usecases/onboarding"
	"github.com/startpost/agent/internal/usecases/orchestrating"
	"github.com/startpost/agent/internal/usecases/planning"
)

func Healthcheck(client startpostclient.Client) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/v1/backend/health",
			Method:  http.MethodGet,
			Handler: BackendHealthHandler(client),
		},
		{
			Path:    "/v1/backend/metrics",
			Method:  http.MethodGet,
			Handler: BackendMetricsHandler(client),
		},
	}
}

func Preferences(preferenceStore *store.PreferenceStore) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/preferences",
			Method:  http.MethodGet,
			Handler: GetPreferences(preferenceStore),
		},
		{
			Path:    "/v1/preferences",
			Method:  http.MethodPut,
			Handler: UpdatePreferences(preferenceStore),
		},
		{
			Path:    "/v1/preferences/dark-mode/toggle",
			Method:  http.MethodPost,
			Handler: ToggleDarkMode(preferenceStore),
		},
		{
			Path:    "/v1/preferences/sidebar/toggle",
			Method:  http.MethodPost,
			Handler: ToggleSidebar(preferenceStore),
		},
		{
			Path:    "/v1/preferences/language/toggle",
			Method:  http.MethodPost,
			Handler: ToggleLanguage(preferenceStore),
		},
	}
}

func Integrations(integrationStore *store.IntegrationStore) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/integrations",
			Method:  http.MethodGet,
			Handler: ListIntegrations(integrationStore),
		},
		{
			Path:    "/v1/integrations/:provider",
			Method:  http.MethodGet,
			Handler: GetIntegration(integrationStore),
		},
		{
			Path:    "/v1/integrations/:provider/connect",
			Method:  http.MethodPost,
			Handler: ConnectIntegration(integrationStore),
		},
		{
			Path:    "/v1/integrations/:provider/disconnect",
			Method:  http.MethodPost,
			Handler: DisconnectIntegration(integrationStore),
		},
	}
}

func Project(projectStore *store.ProjectStore, integrationStore *store.IntegrationStore) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/project",
			Method:  http.MethodGet,
			Handler: GetProject(projectStore),
		},
		{
			Path:    "/v1/project/brand",
			Method:  http.MethodPut,
			Handler: SetBrandIdentity(projectStore),
		},
		{
			Path:    "/v1/project/goals",
			Method:  http.MethodPut,
			Handler: SetGoals(projectStore, integrationStore),
		},
		{
			Path:    "/v1/project/step",
			Method:  http.MethodPut,
			Handler: SetCurrentStep(projectStore),
		},
		{
			Path:    "/v1/project/complete",
			Method:  http.MethodPost,
			Handler: CompleteSetup(projectStore),
		},
		{
			Path:    "/v1/project/reset",
			Method:  http.MethodPost,
			Handler: ResetProject(projectStore),
		},
	}
}

func Strategy(service planning.Planner) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/strategy/generate",
			Method:  http.MethodPost,
			Handler: GenerateStrategy(service),
		},
		{
			Path:    "/v1/strategy/generate-from-profile",
			Method:  http.MethodPost,
			Handler: GenerateStrategyFromProfile(service),
		},
		{
			Path:    "/v1/strategies",
			Method:  http.MethodGet,
			Handler: ListStrategies(service),
		},
		{
			Path:    "/v1/strategy/active/:brandName",
			Method:  http.MethodGet,
			Handler: GetActiveStrategy(service),
		},
		{
			Path:    "/v1/strategy/:brandName",
			Method:  http.MethodDelete,
			Handler: DeleteStrategy(service),
		},
		{
			Path:    "/v1/strategy/planned/:brandName/:date",
			Method:  http.MethodGet,
			Handler: GetPlannedPosts(service),
		},
		{
			Path:    "/v1/strategy/posts/:date",
			Method:  http.MethodGet,
			Handler: GetProposedPosts(service),
		},
		{
			Path:    "/v1/strategy/posts",
			Method:  http.MethodPut,
			Handler: UpdateProposedPost(service),
		},
	}
}

func Orchestration(service orchestrating.Orchestrator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/orchestrator/daily",
			Method:  http.MethodPost,
			Handler: ExecuteDailyOrchestration(service),
		},
		{
			Path:    "/v1/orchestrator/status",
			Method:  http.MethodGet,
			Handler: GetOrchestratorStatus(service),
		},
		{
			Path:    "/v1/orchestrator/retry",
			Method:  http.MethodPost,
			Handler: RetryPost(service),
		},
	}
}

func Analytics(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/analytics/performance",
			Method:  http.MethodGet,
			Handler: GetPerformanceMetrics(service),
		},
		{
			Path:    "/v1/analytics/yesterday",
			Method:  http.MethodGet,
			Handler: GetYesterdayAnalytics(service),
		},
	}
}

func Onboarding(service onboarding.Onboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/onboarding/analyze",
			Method:  http.MethodPost,
			Handler: AnalyzeLandingPage(service),
		},
		{
			Path:    "/v1/onboarding/prefill",
			Method:  http.MethodPost,
			Handler: PrefillBrandIdentity(service),
		},
		{
			Path:    "/v1/onboarding/complete",
			Method:  http.MethodPost,
			Handler: CompleteOnboarding(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: CronStatus(services),
		},
	}
}
