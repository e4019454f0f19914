package timezone

import (
	"fmt"
	"time"

	"github.com/ringsaturn/tzf"
	"github.com/rs/zerolog/log"
)

// LoadFinder builds the tzf finder from the dataset embedded in the binary.
// It is slow and memory hungry, so call it once at startup.
func LoadFinder() (tzf.F, error) {
	start := time.Now()

	finder, err := tzf.NewDefaultFinder()
	if err != nil {
		return nil, fmt.Errorf("load timezone finder: %w", err)
	}

	log.Info().
		Str("data_version", finder.DataVersion()).
		Int("zones", len(finder.TimezoneNames())).
		Dur("took", time.Since(start)).
		Msg("Timezone boundary dataset loaded")

	return finder, nil
}
