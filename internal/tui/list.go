package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-zone-keeper/models"
)

// groupEntry is one selectable row of the group list.
type groupEntry struct {
	scope models.Scope
	group models.RecordGroup
}

// flattenGroups orders private groups before shared ones, matching the
// on-screen order.
func flattenGroups(state models.SyncState) []groupEntry {
	entries := make([]groupEntry, 0, len(state.PrivateGroups)+len(state.SharedGroups))
	for _, g := range state.PrivateGroups {
		entries = append(entries, groupEntry{scope: models.ScopePrivate, group: g})
	}
	for _, g := range state.SharedGroups {
		entries = append(entries, groupEntry{scope: models.ScopeShared, group: g})
	}
	return entries
}

func renderGroups(state models.SyncState, cursor int) string {
	var b strings.Builder
	idx := 0

	section := func(title string, groups []models.RecordGroup, scope models.Scope) {
		b.WriteString(sectionStyle.Render(title))
		b.WriteString("\n")
		if len(groups) == 0 {
			b.WriteString(helpStyle.Render("  (none)"))
			b.WriteString("\n")
		}
		for _, g := range groups {
			line := groupLine(g, scope)
			if idx == cursor {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
			for _, c := range g.Contacts {
				b.WriteString("      " + contactLine(c) + "\n")
			}
			idx++
		}
	}

	section("My groups", state.PrivateGroups, models.ScopePrivate)
	b.WriteString("\n")
	section("Shared with me", state.SharedGroups, models.ScopeShared)

	return strings.TrimRight(b.String(), "\n")
}

func groupLine(g models.RecordGroup, scope models.Scope) string {
	line := fmt.Sprintf("%s (%d)", g.Name(), len(g.Contacts))
	if scope == models.ScopeShared && g.Zone.ID.OwnerName != "" {
		line += " from " + g.Zone.ID.OwnerName
	}
	if scope == models.ScopePrivate && g.Zone.Share != nil {
		line += " [shared]"
	}
	return line
}

func contactLine(c models.Contact) string {
	if c.PhoneNumber == "" {
		return fitText(c.Name, 60)
	}
	return fitText(c.Name+"  "+c.PhoneNumber, 60)
}
