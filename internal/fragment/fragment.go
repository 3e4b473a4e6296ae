package fragment

// TextFragment is one positioned run of text with font metadata, as yielded
// by the extraction engine. One fragment per run, in reading order.
type TextFragment struct {
	Text   string  // Raw text payload
	FontID string  // Font resource identifier from the source document
	Height float64 // Rendered glyph height in points
}

// Classified is a styling lens over a TextFragment. It answers whether the
// fragment is a region banner, an entry title, or (neither flag set) plain
// body text. The two flags are independent facets; when both match, region
// banner takes precedence at the driver level.
type Classified struct {
	Text           string
	IsRegionBanner bool
	IsEntryTitle   bool
}

// StyleRules holds the document-template-specific styling constants that
// drive classification. They vary per source template, so they are
// configuration, not code.
type StyleRules struct {
	BannerFontID    string  // Font of top-level section banners
	TitleFontID     string  // Font of glossary entry titles
	TitleMinHeight  float64 // Minimum height for a run to count as a title
	RegionStartText string  // Banner text that opens the glossary region
}

// DefaultStyleRules matches the rulebook template glossdex was built for.
func DefaultStyleRules() StyleRules {
	return StyleRules{
		BannerFontID:    "MyriadPro-BoldCond",
		TitleFontID:     "MinionPro-BoldDisp",
		TitleMinHeight:  18,
		RegionStartText: "GLOSSARY",
	}
}

// Classify derives the styling facets of a fragment. Pure: any field values
// are accepted, and unrecognized fonts simply classify as body text.
func (r StyleRules) Classify(f TextFragment) Classified {
	return Classified{
		Text:           f.Text,
		IsRegionBanner: f.FontID == r.BannerFontID,
		IsEntryTitle:   f.FontID == r.TitleFontID && f.Height >= r.TitleMinHeight,
	}
}
