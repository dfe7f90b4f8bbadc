package archive

import (
	"strconv"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
)

// The driver hands back loosely-typed values: strings and int64s for
// plain properties, dbtype.Date for date() properties, nested
// []interface{} / map[string]interface{} for collected sub-structures.
// These helpers pin them down without panicking on absent or null values.

func recordValue(rec *neo4j.Record, key string) interface{} {
	v, found := rec.Get(key)
	if !found {
		return nil
	}
	return v
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asInt64(v interface{}) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	}
	return 0
}

// asDateString renders a date value as ISO-8601 (YYYY-MM-DD), the form
// the episode routes key on.
func asDateString(v interface{}) string {
	switch d := v.(type) {
	case dbtype.Date:
		return d.Time().Format("2006-01-02")
	case time.Time:
		return d.Format("2006-01-02")
	case string:
		return d
	}
	return ""
}

// asYearString reduces a date value to year-only granularity. Partial
// dates upstream are fine; only the year survives downstream.
func asYearString(v interface{}) string {
	switch d := v.(type) {
	case dbtype.Date:
		return strconv.Itoa(d.Time().Year())
	case time.Time:
		return strconv.Itoa(d.Year())
	case int64:
		return strconv.FormatInt(d, 10)
	case string:
		if len(d) >= 4 {
			return d[:4]
		}
		return d
	}
	return ""
}

func asMap(v interface{}) map[string]interface{} {
	m, _ := v.(map[string]interface{})
	return m
}

func asSlice(v interface{}) []interface{} {
	s, _ := v.([]interface{})
	return s
}

// decodeCharacterRefs flattens a collected list of {name, slug} maps,
// dropping entries with a missing slug. The queries already filter those
// out; this is the defensive second pass against absent optional matches.
func decodeCharacterRefs(v interface{}) []CharacterRef {
	refs := []CharacterRef{}
	for _, item := range asSlice(v) {
		m := asMap(item)
		slug := asString(m["slug"])
		if slug == "" {
			continue
		}
		refs = append(refs, CharacterRef{
			Name: asString(m["name"]),
			Slug: slug,
		})
	}
	return refs
}

// decodeScenes flattens a collected list of {sceneId, text, characters}
// maps. Scene order is whatever the query produced, which is always
// ordinal ascending.
func decodeScenes(v interface{}) []TimelineScene {
	scenes := []TimelineScene{}
	for _, item := range asSlice(v) {
		m := asMap(item)
		scenes = append(scenes, TimelineScene{
			SceneID:    asInt64(m["sceneId"]),
			Text:       asString(m["text"]),
			Characters: decodeCharacterRefs(m["characters"]),
		})
	}
	return scenes
}
