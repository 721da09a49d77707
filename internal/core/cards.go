package core

import (
	"time"

	"github.com/3-lines-studio/launchboard/internal/types"
)

type Card struct {
	Key   string
	Href  string
	Title string
	Date  string
}

// BuildCards maps every launch to a card, in input order. It never drops or
// caps records; the query limit is the only bound on the list.
func BuildCards(launches []types.Launch, loc *time.Location) []Card {
	cards := make([]Card, 0, len(launches))
	for _, launch := range launches {
		cards = append(cards, Card{
			Key:   launch.ID,
			Href:  launch.Links.VideoLink,
			Title: launch.MissionName,
			Date:  FormatLaunchDate(launch.LaunchDateLocal, loc),
		})
	}
	return cards
}

// DuplicateKeys returns ids that appear more than once, in first-seen order.
func DuplicateKeys(launches []types.Launch) []string {
	seen := make(map[string]int, len(launches))
	var dups []string
	for _, launch := range launches {
		seen[launch.ID]++
		if seen[launch.ID] == 2 {
			dups = append(dups, launch.ID)
		}
	}
	return dups
}
