package archive

// Everything in this package is built fresh per request from the current
// graph state and thrown away after serialization. Nothing is cached.

type CharacterRef struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type CharacterProfile struct {
	Slug   string `json:"slug"`
	Name   string `json:"name"`
	Gender string `json:"gender,omitempty"`
	DOB    string `json:"dob,omitempty"`
	DOD    string `json:"dod,omitempty"`
}

type TimelineScene struct {
	SceneID    int64          `json:"sceneId"`
	Text       string         `json:"text"`
	Characters []CharacterRef `json:"characters"`
}

type TimelineEpisode struct {
	PID    string          `json:"pid"`
	Date   string          `json:"date"`
	Scenes []TimelineScene `json:"scenes"`
}

type TimelineResult struct {
	Episodes   []TimelineEpisode `json:"episodes"`
	TotalCount int64             `json:"totalCount"`
}

type EpisodeDetail struct {
	PID      string          `json:"pid"`
	Date     string          `json:"date"`
	Synopsis string          `json:"synopsis,omitempty"`
	Scenes   []TimelineScene `json:"scenes"`
}

// FamilyNode is the tree-ready shape the family chart consumes. Consumers
// index nodes by ID; only the focal node's position (first) is promised.
type FamilyNode struct {
	ID   string     `json:"id"`
	Data FamilyData `json:"data"`
	Rels FamilyRels `json:"rels"`
}

type FamilyData struct {
	Name   string `json:"name"`
	Gender string `json:"gender"`
	DOB    string `json:"dob,omitempty"`
	DOD    string `json:"dod,omitempty"`
	// PartnerStatuses annotates partners by slug: a recorded partnership
	// status, or "coparent" for a shared-child link with no partnership.
	PartnerStatuses map[string]string `json:"partnerStatuses,omitempty"`
}

type FamilyRels struct {
	Parents  []string `json:"parents"`
	Spouses  []string `json:"spouses"`
	Children []string `json:"children"`
}
