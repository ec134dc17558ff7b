package domain

// Domain contains core models shared across packages.

// News holds the displayable metadata of one article.
type News struct {
	URL       string
	Title     string
	Section   string
	Date      string // raw webPublicationDate, "" when the API omits it
	Authors   []string
	Thumbnail string
	TrailText string
}

// Equal reports whether two records carry the same values.
func (n News) Equal(o News) bool {
	if n.URL != o.URL || n.Title != o.Title || n.Section != o.Section || n.Date != o.Date ||
		n.Thumbnail != o.Thumbnail || n.TrailText != o.TrailText {
		return false
	}
	if len(n.Authors) != len(o.Authors) {
		return false
	}
	for i := range n.Authors {
		if n.Authors[i] != o.Authors[i] {
			return false
		}
	}
	return true
}
