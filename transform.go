package docsearch

import "strings"

// Documentation locations. Page paths are taken relative to SourceRoot and
// published under DocsBaseURL.
const (
	SourceRoot  = "content/en-us/"
	DocsBaseURL = "https://create.roblox.com/docs/"
)

var sourceExtensions = []string{".md", ".yaml"}

// Transform flattens metadata into search entries, preserving input order.
// Each page is followed by its subitems in their original order.
//
// Pages whose path is not a source file under SourceRoot are dropped along
// with their subitems. A page with a blank title is omitted but its
// subitems are still emitted; VisibleEntries removes blank subitems later.
func Transform(metadata []MetadataEntry) []SearchEntry {
	entries := make([]SearchEntry, 0, len(metadata))

	for _, item := range metadata {
		docPath, ok := extractDocPath(item.Path)
		if !ok {
			continue
		}
		url := DocsBaseURL + docPath

		if strings.TrimSpace(item.Title) != "" {
			entries = append(entries, SearchEntry{
				Title: item.Title,
				Type:  item.Type,
				URL:   url,
			})
		}

		for _, sub := range item.Subitems {
			subURL := url
			if anchor, ok := extractAnchor(sub.Title); ok {
				subURL = url + "#" + anchor
			}

			typ := item.Type
			if sub.Type != "" {
				typ = item.Type + " " + sub.Type
			}

			entries = append(entries, SearchEntry{
				Title: sub.Title,
				Type:  typ,
				URL:   subURL,
			})
		}
	}

	return entries
}

// VisibleEntries returns the entries whose title is not blank.
func VisibleEntries(entries []SearchEntry) []SearchEntry {
	visible := make([]SearchEntry, 0, len(entries))
	for _, e := range entries {
		if strings.TrimSpace(e.Title) == "" {
			continue
		}
		visible = append(visible, e)
	}
	return visible
}

// extractDocPath returns the part of p between SourceRoot and a trailing
// source extension, with a trailing "/index" segment removed.
func extractDocPath(p string) (string, bool) {
	// A match never spans lines, so only the last line can end the path.
	if i := strings.LastIndexByte(p, '\n'); i >= 0 {
		p = p[i+1:]
	}

	i := strings.Index(p, SourceRoot)
	if i < 0 {
		return "", false
	}
	rest := p[i+len(SourceRoot):]

	for _, ext := range sourceExtensions {
		name, ok := strings.CutSuffix(rest, ext)
		if !ok || name == "" {
			continue
		}
		name, _ = strings.CutSuffix(name, "/index")
		return name, true
	}
	return "", false
}

// extractAnchor returns the text after the last ':' or '.' in title,
// provided it is not empty.
func extractAnchor(title string) (string, bool) {
	if len(title) < 2 {
		return "", false
	}
	i := strings.LastIndexAny(title[:len(title)-1], ":.")
	if i < 0 {
		return "", false
	}
	return title[i+1:], true
}
