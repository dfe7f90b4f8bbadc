package archive

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
)

func isCountQuery(query string) bool {
	return strings.Contains(query, "count(DISTINCT e)")
}

func episodeRecord(pid string, date time.Time, scenes []interface{}) *neo4j.Record {
	return record(
		[]string{"pid", "date", "scenes"},
		[]interface{}{pid, neo4j.DateOf(date), scenes},
	)
}

func timelineFixture(totalCount int64, episodes ...*neo4j.Record) func(string, map[string]interface{}) (neo4j.EagerResult, error) {
	return func(query string, params map[string]interface{}) (neo4j.EagerResult, error) {
		if isCountQuery(query) {
			return result(record([]string{"totalCount"}, []interface{}{totalCount})), nil
		}
		return result(episodes...), nil
	}
}

func TestGetTimeline_Defaults(t *testing.T) {
	mock := &MockDriver{
		Respond: timelineFixture(12,
			episodeRecord("p2", time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC), nil),
			episodeRecord("p1", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), nil),
		),
	}
	svc := NewService(mock)

	res, err := svc.GetTimeline(context.Background(), TimelineParams{})
	assert.NoError(t, err)
	assert.Equal(t, int64(12), res.TotalCount)
	assert.Len(t, res.Episodes, 2)
	assert.Equal(t, "p2", res.Episodes[0].PID)
	assert.Equal(t, "2024-02-02", res.Episodes[0].Date)

	assert.Len(t, mock.Queries, 2)
	for i, q := range mock.Queries {
		if isCountQuery(q) {
			continue
		}
		assert.Contains(t, q, "ORDER BY e.date DESC")
		assert.Equal(t, int64(0), mock.Params[i]["skip"])
		assert.Equal(t, int64(10), mock.Params[i]["limit"])
	}
}

func TestGetTimeline_PaginationParams(t *testing.T) {
	mock := &MockDriver{Respond: timelineFixture(0)}
	svc := NewService(mock)

	_, err := svc.GetTimeline(context.Background(), TimelineParams{Page: 3, PageSize: 5, Sort: SortAsc})
	assert.NoError(t, err)

	for i, q := range mock.Queries {
		if isCountQuery(q) {
			continue
		}
		assert.Contains(t, q, "ORDER BY e.date ASC")
		assert.Equal(t, int64(10), mock.Params[i]["skip"])
		assert.Equal(t, int64(5), mock.Params[i]["limit"])
	}
}

func TestGetTimeline_InvalidInputsFallBackToDefaults(t *testing.T) {
	mock := &MockDriver{Respond: timelineFixture(0)}
	svc := NewService(mock)

	_, err := svc.GetTimeline(context.Background(), TimelineParams{Page: -2, PageSize: 0, Sort: "sideways"})
	assert.NoError(t, err)

	for i, q := range mock.Queries {
		if isCountQuery(q) {
			continue
		}
		assert.Contains(t, q, "DESC")
		assert.Equal(t, int64(0), mock.Params[i]["skip"])
		assert.Equal(t, int64(10), mock.Params[i]["limit"])
	}
}

func TestGetTimeline_FocalCharacterVariant(t *testing.T) {
	mock := &MockDriver{Respond: timelineFixture(3)}
	svc := NewService(mock)

	_, err := svc.GetTimeline(context.Background(), TimelineParams{Slug: "eddie-grundy"})
	assert.NoError(t, err)

	for i, q := range mock.Queries {
		assert.Contains(t, q, "slug: $slug")
		assert.Equal(t, "eddie-grundy", mock.Params[i]["slug"])
	}
}

func TestGetTimeline_NoEpisodesIsNotAnError(t *testing.T) {
	mock := &MockDriver{
		Respond: func(query string, params map[string]interface{}) (neo4j.EagerResult, error) {
			return result(), nil
		},
	}
	svc := NewService(mock)

	res, err := svc.GetTimeline(context.Background(), TimelineParams{})
	assert.NoError(t, err)
	assert.Equal(t, int64(0), res.TotalCount)
	assert.NotNil(t, res.Episodes)
	assert.Empty(t, res.Episodes)
}

func TestGetTimeline_DriverErrorPropagates(t *testing.T) {
	mock := &MockDriver{Err: fmt.Errorf("engine down")}
	svc := NewService(mock)

	_, err := svc.GetTimeline(context.Background(), TimelineParams{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "engine down")
}

func TestGetTimeline_SceneAndCharacterDecoding(t *testing.T) {
	scenes := []interface{}{
		map[string]interface{}{
			"sceneId": int64(1),
			"text":    "Morning at the farm.",
			"characters": []interface{}{
				map[string]interface{}{"name": "Eddie Grundy", "slug": "eddie-grundy"},
				map[string]interface{}{"name": nil, "slug": nil},
			},
		},
		map[string]interface{}{
			"sceneId":    int64(2),
			"text":       "Later, at the pub.",
			"characters": []interface{}{},
		},
	}
	mock := &MockDriver{
		Respond: timelineFixture(1,
			episodeRecord("p1", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), scenes)),
	}
	svc := NewService(mock)

	res, err := svc.GetTimeline(context.Background(), TimelineParams{})
	assert.NoError(t, err)
	assert.Len(t, res.Episodes, 1)

	got := res.Episodes[0].Scenes
	assert.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].SceneID)
	assert.Equal(t, int64(2), got[1].SceneID)
	// The null-slug entry from an absent optional match never survives.
	assert.Len(t, got[0].Characters, 1)
	assert.Equal(t, "eddie-grundy", got[0].Characters[0].Slug)
	assert.Empty(t, got[1].Characters)
}

func TestSortOrderKeyword(t *testing.T) {
	assert.Equal(t, "ASC", SortAsc.Keyword())
	assert.Equal(t, "DESC", SortDesc.Keyword())
	assert.Equal(t, "DESC", SortOrder("DROP TABLE").Keyword())
}
