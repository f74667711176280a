package obs

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Time records the duration and outcome of a named operation on the
// context's logger. Use with a deferred call and a pointer to the
// function's named error return:
//
//	defer obs.Time(ctx, "fleet.ListParcels")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	return func(errp *error) {
		log := zerolog.Ctx(ctx)
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Warn().Str("op", name).Dur("dur", dur).Err(*errp).Msg("operation failed")
			return
		}
		log.Debug().Str("op", name).Dur("dur", dur).Msg("operation complete")
	}
}
