package merge

import "novel-hub/feature/novel/models"

// Stability classifies how trustworthy a provider's stable chapter
// identifiers are across refetches.
type Stability int

const (
	// Stable providers keep chapter identifiers fixed across refetches, so
	// identifier sets can be compared exactly.
	Stable Stability = iota
	// Unstable providers are known to renumber or reassign identifiers, so
	// size and title heuristics substitute for exact set comparison.
	Unstable
)

// Audit reasons attached to merges that warrant moderator review.
const (
	ReasonChaptersRemoved        = "chapters were removed"
	ReasonUnknownChaptersRemoved = "unknown chapters were removed"
	ReasonChapterTitlesChanged   = "chapter titles changed"
)

// Result is the outcome of reconciling a remote TOC against the local one.
type Result struct {
	// Toc is the merged table of contents, in remote presentation order.
	Toc []models.TocItem
	// Changed is the merge verdict: whether the remote content differs from
	// the local state in a user-visible way.
	Changed bool
	// AuditReason is non-empty when the merge warrants review. It is data,
	// never an error; a reason can appear even when Changed is false.
	AuditReason string
}

// Merge reconciles a remote TOC snapshot against the local one. It is pure:
// inputs are never mutated and no I/O happens here, so the join strategy can
// be swapped without touching orchestration.
func Merge(remote, local []models.TocItem, stability Stability) Result {
	merged := preserveTranslatedTitles(remote, local)

	if stability == Stable {
		return mergeStable(merged, local)
	}
	return mergeUnstable(merged, local)
}

// preserveTranslatedTitles copies human-translated titles from local items
// onto remote items with an exactly matching source title. The join is keyed
// by title, not identifier: it tolerates identifier churn as long as the
// source title is unchanged, and intentionally loses the translation when
// the source title itself changed.
func preserveTranslatedTitles(remote, local []models.TocItem) []models.TocItem {
	translated := make(map[string]string, len(local))
	for _, item := range local {
		if item.TitleZh == "" {
			continue
		}
		if _, ok := translated[item.Title]; !ok {
			translated[item.Title] = item.TitleZh
		}
	}

	merged := make([]models.TocItem, len(remote))
	copy(merged, remote)
	for i := range merged {
		merged[i].TitleZh = translated[merged[i].Title]
	}
	return merged
}

// mergeStable compares the stable identifier sets on both sides. Removals
// are flagged for review; additions alone are not.
func mergeStable(merged, local []models.TocItem) Result {
	remoteIDs := idSet(merged)
	localIDs := idSet(local)

	changed := len(remoteIDs) != len(localIDs)
	if !changed {
		for id := range localIDs {
			if _, ok := remoteIDs[id]; !ok {
				changed = true
				break
			}
		}
	}

	reason := ""
	for id := range localIDs {
		if _, ok := remoteIDs[id]; !ok {
			reason = ReasonChaptersRemoved
			break
		}
	}

	return Result{Toc: merged, Changed: changed, AuditReason: reason}
}

// mergeUnstable falls back to identifier-count and title heuristics.
// Reordering without a count change can go unnoticed; that is an accepted
// approximation for providers whose identifiers cannot be trusted.
func mergeUnstable(merged, local []models.TocItem) Result {
	remoteTitles := idTitleMap(merged)
	localTitles := idTitleMap(local)

	if len(remoteTitles) < len(localTitles) {
		return Result{
			Toc:         merged,
			Changed:     true,
			AuditReason: ReasonUnknownChaptersRemoved,
		}
	}

	result := Result{
		Toc:     merged,
		Changed: len(remoteTitles) != len(localTitles),
	}
	for id, localTitle := range localTitles {
		if remoteTitle, ok := remoteTitles[id]; ok && remoteTitle != localTitle {
			result.AuditReason = ReasonChapterTitlesChanged
			break
		}
	}
	return result
}

// idSet collects the stable identifiers present in a TOC. Items without an
// identifier are excluded from comparison, never from the merged output.
func idSet(toc []models.TocItem) map[string]struct{} {
	ids := make(map[string]struct{}, len(toc))
	for _, item := range toc {
		if item.ChapterID != "" {
			ids[item.ChapterID] = struct{}{}
		}
	}
	return ids
}

func idTitleMap(toc []models.TocItem) map[string]string {
	m := make(map[string]string, len(toc))
	for _, item := range toc {
		if item.ChapterID != "" {
			m[item.ChapterID] = item.Title
		}
	}
	return m
}
