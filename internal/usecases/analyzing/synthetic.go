package analyzing

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/startpost/agent/internal/domain"
	"github.com/startpost/agent/pkg/utils"
)

// Plataformas cobertas pelo gerador quando a consulta não filtra nenhuma
var syntheticPlatforms = []string{
	string(domain.PlanPlatformLinkedIn),
	string(domain.PlanPlatformFacebook),
	string(domain.PlanPlatformTwitter),
}

// GenerateSyntheticAnalytics produz um registro plausível por dia e por
// plataforma dentro do intervalo. Todo registro sai carimbado com a origem
// sintética para que a camada de cima não o confunda com dado real.
func GenerateSyntheticAnalytics(start, end time.Time, platforms []string) []domain.AnalyticsData {
	if end.Before(start) {
		return nil
	}

	if len(platforms) == 0 {
		platforms = syntheticPlatforms
	}

	var records []domain.AnalyticsData

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		for _, platform := range platforms {
			impressions := 500 + rand.Intn(4500)
			engagements := rand.Intn(impressions / 5)
			clicks := rand.Intn(engagements + 1)
			shares := rand.Intn(engagements/4 + 1)
			comments := rand.Intn(engagements/3 + 1)
			likes := engagements - shares - comments
			if likes < 0 {
				likes = 0
			}

			rate := 0.0
			if impressions > 0 {
				rate = utils.RoundRate(float64(engagements) / float64(impressions) * 100)
			}

			records = append(records, domain.AnalyticsData{
				PostID:         fmt.Sprintf("synthetic_%s_%s", platform, utils.FormatDate(day)),
				Platform:       platform,
				Impressions:    impressions,
				Engagements:    engagements,
				Clicks:         clicks,
				Shares:         shares,
				Comments:       comments,
				Likes:          likes,
				EngagementRate: rate,
				MeasuredAt:     day.Format(time.RFC3339),
				Source:         domain.AnalyticsSourceSynthetic,
			})
		}
	}

	return records
}
