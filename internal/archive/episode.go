package archive

import (
	"context"

	"github.com/czmj/ambridge/internal/driver"
)

// GetEpisodeByDate fetches the episode broadcast on the given date
// (YYYY-MM-DD), with its scenes in ordinal order and each scene's
// participants. At most one episode exists per date. No episode for the
// date is (nil, nil), not an error.
func (s *Service) GetEpisodeByDate(ctx context.Context, date string) (*EpisodeDetail, error) {
	result, err := s.Driver.ExecuteQuery(ctx, driver.EpisodeByDateQuery, map[string]interface{}{
		"date": date,
	})
	if err != nil {
		return nil, err
	}
	if len(result.Records) == 0 {
		return nil, nil
	}

	rec := result.Records[0]
	return &EpisodeDetail{
		PID:      asString(recordValue(rec, "pid")),
		Date:     asDateString(recordValue(rec, "date")),
		Synopsis: asString(recordValue(rec, "synopsis")),
		Scenes:   decodeScenes(recordValue(rec, "scenes")),
	}, nil
}
