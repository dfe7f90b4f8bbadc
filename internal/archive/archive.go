// Package archive is the query and result-normalization core of the
// service: it traverses the character/scene/episode graph through the
// driver and flattens the results into page-shaped structures for the
// presentation layer. All operations are read-only and request-scoped.
package archive

import (
	"github.com/czmj/ambridge/internal/driver"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Keyword returns the Cypher direction keyword. Anything that is not
// explicitly ascending sorts descending, so an attacker-supplied sort
// parameter can only ever yield one of two tokens.
func (s SortOrder) Keyword() string {
	if s == SortAsc {
		return "ASC"
	}
	return "DESC"
}

type Service struct {
	Driver driver.GraphDriver
}

func NewService(d driver.GraphDriver) *Service {
	return &Service{Driver: d}
}
