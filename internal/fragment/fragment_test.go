package fragment

import "testing"

func TestClassify_Banner(t *testing.T) {
	rules := DefaultStyleRules()
	c := rules.Classify(TextFragment{Text: "GLOSSARY", FontID: rules.BannerFontID, Height: 24})
	if !c.IsRegionBanner {
		t.Error("expected banner font to classify as region banner")
	}
	if c.IsEntryTitle {
		t.Error("banner font must not classify as entry title")
	}
	if c.Text != "GLOSSARY" {
		t.Errorf("expected text %q, got %q", "GLOSSARY", c.Text)
	}
}

func TestClassify_Title(t *testing.T) {
	rules := DefaultStyleRules()

	c := rules.Classify(TextFragment{Text: "ABILITIES", FontID: rules.TitleFontID, Height: 20})
	if !c.IsEntryTitle {
		t.Error("expected title font at height 20 to classify as entry title")
	}

	// Exactly at the threshold still counts.
	c = rules.Classify(TextFragment{Text: "ACTION", FontID: rules.TitleFontID, Height: rules.TitleMinHeight})
	if !c.IsEntryTitle {
		t.Error("expected title font at threshold height to classify as entry title")
	}
}

func TestClassify_SmallTitleFontIsBody(t *testing.T) {
	rules := DefaultStyleRules()
	c := rules.Classify(TextFragment{Text: "see page 12", FontID: rules.TitleFontID, Height: 11})
	if c.IsEntryTitle {
		t.Error("title font below threshold height must classify as body text")
	}
	if c.IsRegionBanner {
		t.Error("title font must not classify as banner")
	}
}

func TestClassify_UnknownFontIsBody(t *testing.T) {
	rules := DefaultStyleRules()
	c := rules.Classify(TextFragment{Text: "plain prose", FontID: "Garamond-Regular", Height: 30})
	if c.IsRegionBanner || c.IsEntryTitle {
		t.Errorf("unknown font should classify as body text, got %+v", c)
	}
}

func TestClassify_CustomRules(t *testing.T) {
	rules := StyleRules{
		BannerFontID:    "F5",
		TitleFontID:     "F9",
		TitleMinHeight:  14,
		RegionStartText: "TERMS",
	}
	c := rules.Classify(TextFragment{Text: "TERMS", FontID: "F5", Height: 22})
	if !c.IsRegionBanner {
		t.Error("expected custom banner font to classify as region banner")
	}
	c = rules.Classify(TextFragment{Text: "AEGIS", FontID: "F9", Height: 15})
	if !c.IsEntryTitle {
		t.Error("expected custom title font above custom threshold to classify as entry title")
	}
}
