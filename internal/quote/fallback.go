package quote

import (
	"time"

	"github.com/julianstephens/zenone/internal/models"
)

// fallbackQuotes is the fixed local list used whenever the provider fails.
var fallbackQuotes = []models.QuoteData{
	{Text: "一切有为法，如梦幻泡影，如露亦如电，应作如是观。", Source: "《金刚经》"},
	{Text: "应无所住，而生其心。", Source: "《金刚经》"},
	{Text: "色不异空，空不异色；色即是空，空即是色。", Source: "《心经》"},
	{Text: "心无挂碍，无挂碍故，无有恐怖。", Source: "《心经》"},
	{Text: "菩提本无树，明镜亦非台。", Source: "《六祖坛经》"},
	{Text: "狂心顿歇，歇即菩提。", Source: "《楞严经》"},
	{Text: "制心一处，无事不办。", Source: "《遗教经》"},
}

// Fallback returns one entry from the local list, rotated by calendar day so
// repeated failures on the same day surface the same quote.
func Fallback(now time.Time) models.QuoteData {
	q := fallbackQuotes[int(now.Unix()/86400)%len(fallbackQuotes)]
	q.FetchedAt = now
	return q
}
