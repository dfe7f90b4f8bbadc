package archive

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"golang.org/x/sync/errgroup"

	"github.com/czmj/ambridge/internal/driver"
)

type TimelineParams struct {
	Page     int
	PageSize int
	Sort     SortOrder
	// Slug, when set, restricts the timeline to episodes containing at
	// least one scene the focal character appears in.
	Slug string
}

func (p *TimelineParams) applyDefaults() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 10
	}
	if p.Sort != SortAsc && p.Sort != SortDesc {
		p.Sort = SortDesc
	}
}

// GetTimeline returns one page of episodes with their scenes and
// co-occurring characters, plus the total number of qualifying episodes.
// Pagination counts distinct episodes, never scenes or rows. The count
// and the page are two independent read traversals over the same
// predicate and run concurrently; a write landing between them can make
// them briefly inconsistent, which is accepted as self-correcting
// staleness rather than guarded against.
func (s *Service) GetTimeline(ctx context.Context, params TimelineParams) (*TimelineResult, error) {
	params.applyDefaults()
	skip := int64(params.Page-1) * int64(params.PageSize)

	countQuery := driver.TimelineCountQuery
	dataQuery := fmt.Sprintf(driver.TimelineDataQuery, params.Sort.Keyword())
	countParams := map[string]interface{}{}
	dataParams := map[string]interface{}{
		"skip":  skip,
		"limit": int64(params.PageSize),
	}
	if params.Slug != "" {
		countQuery = driver.TimelineCountByCharacterQuery
		dataQuery = fmt.Sprintf(driver.TimelineDataByCharacterQuery, params.Sort.Keyword())
		countParams["slug"] = params.Slug
		dataParams["slug"] = params.Slug
	}

	var totalCount int64
	var episodes []TimelineEpisode

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		result, err := s.Driver.ExecuteQuery(gctx, countQuery, countParams)
		if err != nil {
			return err
		}
		if len(result.Records) > 0 {
			totalCount = asInt64(recordValue(result.Records[0], "totalCount"))
		}
		return nil
	})
	g.Go(func() error {
		result, err := s.Driver.ExecuteQuery(gctx, dataQuery, dataParams)
		if err != nil {
			return err
		}
		episodes = decodeEpisodes(result.Records)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &TimelineResult{
		Episodes:   episodes,
		TotalCount: totalCount,
	}, nil
}

func decodeEpisodes(records []*neo4j.Record) []TimelineEpisode {
	episodes := []TimelineEpisode{}
	for _, rec := range records {
		episodes = append(episodes, TimelineEpisode{
			PID:    asString(recordValue(rec, "pid")),
			Date:   asDateString(recordValue(rec, "date")),
			Scenes: decodeScenes(recordValue(rec, "scenes")),
		})
	}
	return episodes
}
