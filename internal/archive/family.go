package archive

import (
	"context"
	"log"
	"sort"
	"strings"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/czmj/ambridge/internal/driver"
)

// familyMaxHops bounds the traversal from the focal character. Three
// hops covers grandparents-in-law either way without dragging in the
// whole village.
const familyMaxHops = 3

type familyPerson struct {
	Slug   string
	Name   string
	Gender string
	DOB    string
	DOD    string
}

type familyEdge struct {
	From    string
	To      string
	RelType string
	Status  string
}

// GetFamilyTree resolves the family around a focal character: a
// breadth-limited expansion over parentage and partnership edges
// collects the relevant set, one induced-subgraph query fetches every
// edge inside it, and a reconstruction pass shapes the result for the
// tree renderer. A character with no recorded relations (or an unknown
// slug) yields (nil, nil).
func (s *Service) GetFamilyTree(ctx context.Context, slug string) ([]FamilyNode, error) {
	focal, err := s.GetCharacterProfile(ctx, slug)
	if err != nil {
		return nil, err
	}
	if focal == nil {
		return nil, nil
	}

	people := map[string]familyPerson{
		focal.Slug: {
			Slug:   focal.Slug,
			Name:   focal.Name,
			Gender: focal.Gender,
			DOB:    yearOnly(focal.DOB),
			DOD:    yearOnly(focal.DOD),
		},
	}

	frontier := []string{focal.Slug}
	for hop := 0; hop < familyMaxHops && len(frontier) > 0; hop++ {
		result, err := s.Driver.ExecuteQuery(ctx, driver.FamilyNeighboursQuery, map[string]interface{}{
			"slugs": frontier,
		})
		if err != nil {
			return nil, err
		}

		var next []string
		for _, rec := range result.Records {
			p := decodeFamilyPerson(rec)
			if p.Slug == "" {
				continue
			}
			if _, seen := people[p.Slug]; seen {
				continue
			}
			people[p.Slug] = p
			next = append(next, p.Slug)
		}
		frontier = next
	}

	if len(people) <= 1 {
		return nil, nil
	}

	slugs := make([]string, 0, len(people))
	for member := range people {
		slugs = append(slugs, member)
	}

	result, err := s.Driver.ExecuteQuery(ctx, driver.FamilyEdgesQuery, map[string]interface{}{
		"slugs": slugs,
	})
	if err != nil {
		return nil, err
	}

	edges := make([]familyEdge, 0, len(result.Records))
	for _, rec := range result.Records {
		edges = append(edges, familyEdge{
			From:    asString(recordValue(rec, "from")),
			To:      asString(recordValue(rec, "to")),
			RelType: asString(recordValue(rec, "relType")),
			Status:  asString(recordValue(rec, "status")),
		})
	}

	return buildFamilyNodes(focal.Slug, people, edges), nil
}

func decodeFamilyPerson(rec *neo4j.Record) familyPerson {
	return familyPerson{
		Slug:   asString(recordValue(rec, "slug")),
		Name:   asString(recordValue(rec, "name")),
		Gender: asString(recordValue(rec, "gender")),
		DOB:    asYearString(recordValue(rec, "dob")),
		DOD:    asYearString(recordValue(rec, "dod")),
	}
}

type partnerDetail struct {
	Slug   string
	Status string
}

// buildFamilyNodes reconstructs per-person relationship lists from the
// induced edge set. Partner statuses merge in a fixed order: derived
// coparent entries first as defaults, recorded spouse statuses last so
// a spouse status always wins for the same partner slug.
func buildFamilyNodes(focalSlug string, people map[string]familyPerson, edges []familyEdge) []FamilyNode {
	parents := map[string][]string{}
	children := map[string][]string{}
	spouses := map[string][]partnerDetail{}

	parentage := map[[2]string]bool{}
	spousePair := map[[2]string]map[string]bool{}

	for _, e := range edges {
		if _, ok := people[e.From]; !ok {
			continue
		}
		if _, ok := people[e.To]; !ok {
			continue
		}
		switch e.RelType {
		case "CHILD_OF":
			// A pair recorded as each other's parent is a data anomaly,
			// not a reason to fail the whole tree.
			if parentage[[2]string{e.To, e.From}] {
				log.Printf("parentage cycle between %s and %s, dropping edge", e.From, e.To)
				continue
			}
			if parentage[[2]string{e.From, e.To}] {
				continue
			}
			parentage[[2]string{e.From, e.To}] = true
			parents[e.From] = append(parents[e.From], e.To)
			children[e.To] = append(children[e.To], e.From)
		case "SPOUSE":
			// Historical edges between the same pair may coexist; keep
			// one entry per distinct status.
			key := [2]string{e.From, e.To}
			if key[0] > key[1] {
				key = [2]string{e.To, e.From}
			}
			if spousePair[key] == nil {
				spousePair[key] = map[string]bool{}
			}
			if spousePair[key][e.Status] {
				continue
			}
			spousePair[key][e.Status] = true
			spouses[e.From] = append(spouses[e.From], partnerDetail{Slug: e.To, Status: e.Status})
			spouses[e.To] = append(spouses[e.To], partnerDetail{Slug: e.From, Status: e.Status})
		}
	}

	ordered := make([]string, 0, len(people))
	for slug := range people {
		if slug != focalSlug {
			ordered = append(ordered, slug)
		}
	}
	sort.Strings(ordered)
	ordered = append([]string{focalSlug}, ordered...)

	nodes := make([]FamilyNode, 0, len(people))
	for _, slug := range ordered {
		p := people[slug]

		spouseSet := map[string]bool{}
		spouseSlugs := []string{}
		for _, d := range spouses[slug] {
			if !spouseSet[d.Slug] {
				spouseSet[d.Slug] = true
				spouseSlugs = append(spouseSlugs, d.Slug)
			}
		}
		sort.Strings(spouseSlugs)

		statuses := map[string]string{}
		for _, child := range children[slug] {
			for _, other := range parents[child] {
				if other == slug || spouseSet[other] {
					continue
				}
				statuses[other] = "coparent"
			}
		}
		for _, d := range spouses[slug] {
			statuses[d.Slug] = d.Status
		}
		if len(statuses) == 0 {
			statuses = nil
		}

		parentSlugs := append([]string{}, parents[slug]...)
		childSlugs := append([]string{}, children[slug]...)
		sort.Strings(parentSlugs)
		sort.Strings(childSlugs)

		nodes = append(nodes, FamilyNode{
			ID: slug,
			Data: FamilyData{
				Name:            p.Name,
				Gender:          genderCode(p.Gender),
				DOB:             p.DOB,
				DOD:             p.DOD,
				PartnerStatuses: statuses,
			},
			Rels: FamilyRels{
				Parents:  parentSlugs,
				Spouses:  spouseSlugs,
				Children: childSlugs,
			},
		})
	}

	return nodes
}

// genderCode collapses the source attribute to the two codes the tree
// renderer understands. A deliberate binary simplification for this
// renderer, not a general model.
func genderCode(gender string) string {
	if strings.EqualFold(gender, "female") {
		return "F"
	}
	return "M"
}

func yearOnly(date string) string {
	if len(date) >= 4 {
		return date[:4]
	}
	return date
}
