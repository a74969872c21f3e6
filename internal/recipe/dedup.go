package recipe

import (
	"sort"

	"recettes/internal/domain"
)

// FindDuplicates computes both duplicate relations over a full record set:
// exact duplicates share a normalized title, near duplicates share a
// deduplication key while their normalized titles differ. Groups are sorted
// by key for stable output.
func FindDuplicates(records []domain.RecipeRecord) domain.DuplicateReport {
	byNorm := make(map[string][]domain.DuplicateEntry)
	byKey := make(map[string][]domain.DuplicateEntry)

	for _, r := range records {
		entry := domain.DuplicateEntry{
			Title:           r.Title,
			FileID:          r.FileID,
			FullPath:        r.FullPath,
			NormalizedTitle: r.NormalizedTitle,
			TitleKey:        r.TitleKey,
		}
		if r.NormalizedTitle != "" {
			byNorm[r.NormalizedTitle] = append(byNorm[r.NormalizedTitle], entry)
		}
		if r.TitleKey != "" {
			byKey[r.TitleKey] = append(byKey[r.TitleKey], entry)
		}
	}

	var report domain.DuplicateReport
	for norm, entries := range byNorm {
		if len(entries) > 1 {
			report.Exact = append(report.Exact, domain.DuplicateGroup{Key: norm, Entries: entries})
		}
	}
	for key, entries := range byKey {
		if len(entries) <= 1 {
			continue
		}
		norms := make(map[string]struct{}, len(entries))
		for _, e := range entries {
			norms[e.NormalizedTitle] = struct{}{}
		}
		if len(norms) > 1 {
			report.Near = append(report.Near, domain.DuplicateGroup{Key: key, Entries: entries})
		}
	}

	sortGroups(report.Exact)
	sortGroups(report.Near)
	return report
}

func sortGroups(groups []domain.DuplicateGroup) {
	sort.Slice(groups, func(i, j int) bool { return groups[i].Key < groups[j].Key })
}
