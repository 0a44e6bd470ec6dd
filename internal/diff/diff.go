// package diff compares two email multisets.
package diff

import (
	"sort"

	"github.com/desertthunder/emaildiff/internal/models"
)

// Compare builds the sets, frequency maps and sorted one-sided differences of two email multisets.
func Compare(oldEmails, newEmails []string) *models.Comparison {
	oldSet, oldCount := tally(oldEmails)
	newSet, newCount := tally(newEmails)

	c := &models.Comparison{
		TotalOld: len(oldEmails),
		TotalNew: len(newEmails),
		OldSet:   oldSet,
		NewSet:   newSet,
		OldCount: oldCount,
		NewCount: newCount,
		Both:     []string{},
		OnlyNew:  []string{},
		OnlyOld:  []string{},
	}

	for email := range newSet {
		if _, ok := oldSet[email]; ok {
			c.Both = append(c.Both, email)
		} else {
			c.OnlyNew = append(c.OnlyNew, email)
		}
	}
	for email := range oldSet {
		if _, ok := newSet[email]; !ok {
			c.OnlyOld = append(c.OnlyOld, email)
		}
	}

	sort.Strings(c.Both)
	sort.Strings(c.OnlyNew)
	sort.Strings(c.OnlyOld)
	return c
}

func tally(emails []string) (map[string]struct{}, map[string]int) {
	set := make(map[string]struct{}, len(emails))
	count := make(map[string]int, len(emails))
	for _, email := range emails {
		set[email] = struct{}{}
		count[email]++
	}
	return set, count
}
