package availability

import "freecast/models"

// AggregateCastSupport folds per-platform casting matrices into a single
// capability vector: a protocol is supported if any resolved platform
// supports it. Order-independent and idempotent.
func AggregateCastSupport(entries []models.PlatformAvailability) models.CastSupport {
	var agg models.CastSupport
	for _, e := range entries {
		if e.CastSupport.Chromecast {
			agg.Chromecast = true
		}
		if e.CastSupport.Airplay {
			agg.Airplay = true
		}
		if e.CastSupport.DLNA {
			agg.DLNA = true
		}
	}
	return agg
}
