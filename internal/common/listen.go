package common

import (
	"fmt"
	"time"
)

// ListenAgainLink points at the broadcaster's programme page. Episodes
// stream for 30 days after their 19:15 broadcast; after that the page
// only documents the episode, so the label flips to "Archived".
type ListenAgainLink struct {
	URL   string `json:"url"`
	Label string `json:"label"`
}

const listenAgainWindow = 30 * 24 * time.Hour

func ListenAgain(pid, date string, now time.Time) *ListenAgainLink {
	if pid == "" {
		return nil
	}

	link := &ListenAgainLink{
		URL:   fmt.Sprintf("https://www.bbc.co.uk/programmes/%s", pid),
		Label: "Archived",
	}

	broadcast, err := ParseDate(date)
	if err != nil {
		return link
	}
	airTime := broadcast.Add(19*time.Hour + 15*time.Minute)
	if now.Sub(airTime) <= listenAgainWindow {
		link.Label = "Listen again"
	}
	return link
}
