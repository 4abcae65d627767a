// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/danielhkuo/legitrack/models"
)

// sectionDefs is the fixed section taxonomy in canonical render order.
// Calendar types outside this list produce no section.
var sectionDefs = []struct {
	Type  string
	Title string
}{
	{models.CalFirstReading, "First Reading"},
	{models.CalCommitteeReport, "Second Reading"},
	{models.CalThirdReading, "Third Reading"},
	{models.CalSpecialOrder, "Special Order"},
	{models.CalLaidOver, "Laid Over"},
	{models.CalVetoed, "Vetoed"},
}

// hideCodes maps the short codes accepted by the hideCalendars report filter
// onto calendar types.
var hideCodes = map[string]string{
	"first":     models.CalFirstReading,
	"second":    models.CalCommitteeReport,
	"third":     models.CalThirdReading,
	"special":   models.CalSpecialOrder,
	"laid_over": models.CalLaidOver,
	"vetoed":    models.CalVetoed,
}

// ParseHiddenCalendars turns the comma-separated hideCalendars parameter
// ("first,laid_over") into the set of hidden calendar types. Unknown codes
// are ignored.
func ParseHiddenCalendars(csv string) map[string]bool {
	hidden := make(map[string]bool)
	for _, code := range strings.Split(csv, ",") {
		if t, ok := hideCodes[strings.ToLower(strings.TrimSpace(code))]; ok {
			hidden[t] = true
		}
	}
	return hidden
}

// OrganizeOptions are the report-level filters applied before grouping.
type OrganizeOptions struct {
	// HiddenTypes removes entries of these calendar types before grouping.
	HiddenTypes map[string]bool
	// FlaggedOnly keeps only items whose bill is flagged.
	FlaggedOnly bool
}

// ReportGroup is one heading plus its position-ordered rows.
type ReportGroup struct {
	Heading string
	Items   []models.CalendarItem
}

// ReportSection is one calendar-type section of the report. A section with
// zero groups is valid output and renders as "No Bills on this calendar".
type ReportSection struct {
	Title        string
	CalendarType string
	DateLabel    string
	Groups       []ReportGroup
}

// OrganizeFloorCalendars groups a flat list of calendar entries into ordered
// sections and groups for sequential rendering.
//
// Committee-report entries group by (committee label, report number, consent
// number); all other types group by calendar number within their type.
// A group may aggregate items from several raw calendar rows sharing the same
// key; its items are the position-sorted union. A hidden section is omitted
// only when it also ended up with no groups; a hidden section that still has
// bills renders anyway, so data never silently disappears behind a filter.
func OrganizeFloorCalendars(entries []models.CalendarEntry, opts OrganizeOptions) []ReportSection {
	var sections []ReportSection
	for _, def := range sectionDefs {
		var matching []models.CalendarEntry
		for _, e := range entries {
			if e.CalendarType == def.Type {
				matching = append(matching, e)
			}
		}

		groups := buildGroups(matching, def.Type == models.CalCommitteeReport, opts)
		if opts.HiddenTypes[def.Type] && len(groups) == 0 {
			continue
		}
		sections = append(sections, ReportSection{
			Title:        def.Title,
			CalendarType: def.Type,
			DateLabel:    SectionDateLabel(entries, def.Type),
			Groups:       groups,
		})
	}
	return sections
}

type groupKey struct {
	label   string
	num     int
	consent int
}

type group struct {
	key     groupKey
	heading string
	items   []models.CalendarItem
}

func buildGroups(entries []models.CalendarEntry, committeeReport bool, opts OrganizeOptions) []ReportGroup {
	byKey := make(map[groupKey]*group)
	var ordered []*group // insertion order so the first entry's heading wins deterministically

	for _, e := range entries {
		key, heading := groupingFor(&e, committeeReport)
		g, ok := byKey[key]
		if !ok {
			g = &group{key: key, heading: heading}
			byKey[key] = g
			ordered = append(ordered, g)
		}
		for _, it := range e.Items {
			if it.Bill == nil {
				// Dangling bill reference; nothing to render for this row.
				continue
			}
			if opts.FlaggedOnly && !it.Bill.IsFlagged {
				continue
			}
			g.items = append(g.items, it)
		}
	}

	var kept []*group
	for _, g := range ordered {
		if opts.FlaggedOnly && len(g.items) == 0 {
			continue
		}
		sort.SliceStable(g.items, func(i, j int) bool {
			return g.items[i].Position < g.items[j].Position
		})
		kept = append(kept, g)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		a, b := kept[i], kept[j]
		if committeeReport {
			// Alphabetical by committee, then report number, then consent
			// number; headings break any remaining tie.
			la, lb := strings.ToLower(a.key.label), strings.ToLower(b.key.label)
			if la != lb {
				return la < lb
			}
			if a.key.num != b.key.num {
				return a.key.num < b.key.num
			}
			if a.key.consent != b.key.consent {
				return a.key.consent < b.key.consent
			}
		} else {
			// Purely numeric for non-committee calendars.
			if a.key.num != b.key.num {
				return a.key.num < b.key.num
			}
		}
		return a.heading < b.heading
	})

	groups := make([]ReportGroup, 0, len(kept))
	for _, g := range kept {
		groups = append(groups, ReportGroup{Heading: g.heading, Items: g.items})
	}
	return groups
}

func groupingFor(e *models.CalendarEntry, committeeReport bool) (groupKey, string) {
	if committeeReport {
		label := committeeLabel(e.Committee)
		consent := 0
		if e.Metadata != nil {
			consent = e.Metadata.ConsentCalendarNumber.Or(0)
		}
		key := groupKey{label: label, num: e.CalendarNumber.Or(0), consent: consent}

		heading := label
		if e.CalendarNumber.Valid {
			heading = fmt.Sprintf("%s - Report %d", label, e.CalendarNumber.Int)
		}
		if e.Metadata != nil && e.Metadata.ConsentCalendarNumber.Valid {
			heading = fmt.Sprintf("%s, Consent Calendar %d", heading, e.Metadata.ConsentCalendarNumber.Int)
		}
		return key, heading
	}

	key := groupKey{num: e.CalendarNumber.Or(0)}
	heading := e.CalendarName
	if heading == "" {
		heading = fmt.Sprintf("Calendar Number %d", e.CalendarNumber.Or(0))
	}
	return key, heading
}

func committeeLabel(c *models.Committee) string {
	switch {
	case c == nil:
		return "Committee"
	case c.Name != "":
		return c.Name
	case c.Abbreviation != "":
		return c.Abbreviation
	default:
		return "Committee"
	}
}
