package model

// SectionTemplate is a reusable markup skeleton with {{token}} placeholders and
// a default value for every token. Templates are immutable after catalog load.
type SectionTemplate struct {
	ID             string            `json:"id" yaml:"id" validate:"required"`
	Name           string            `json:"name" yaml:"name" validate:"required"`
	Category       string            `json:"category" yaml:"category" validate:"required"`
	Description    string            `json:"description" yaml:"description"`
	HTML           string            `json:"html" yaml:"html" validate:"required"`
	DefaultContent map[string]string `json:"defaultContent" yaml:"defaultContent"`
}

// PageImage is an uploaded image owned exclusively by one section.
type PageImage struct {
	ID       string `json:"id" yaml:"id"`
	FileName string `json:"fileName" yaml:"fileName"`
	Src      string `json:"src" yaml:"src"`
	Alt      string `json:"alt,omitempty" yaml:"alt,omitempty"`
}

// HeroVariant selects which side of the advanced hero the image sits on.
type HeroVariant string

const (
	HeroImageLeft  HeroVariant = "image-left"
	HeroImageRight HeroVariant = "image-right"
)

// CarouselStyle selects the visual treatment of the product carousel track.
type CarouselStyle string

const (
	CarouselAutoScroll CarouselStyle = "auto-scroll"
	CarouselRail       CarouselStyle = "rail"
	CarouselGrid       CarouselStyle = "grid"
	CarouselGlowing    CarouselStyle = "glowing"
)

// SectionLayout carries optional per-section configuration interpreted only by
// specific template renderers. ShowButton is a pointer so renderers can apply
// a per-template default when the field was never set.
type SectionLayout struct {
	Variant       HeroVariant   `json:"variant,omitempty" yaml:"variant,omitempty"`
	CarouselStyle CarouselStyle `json:"carouselStyle,omitempty" yaml:"carouselStyle,omitempty"`
	ShowButton    *bool         `json:"showButton,omitempty" yaml:"showButton,omitempty"`
	ButtonLabel   string        `json:"buttonLabel,omitempty" yaml:"buttonLabel,omitempty"`
	ButtonHref    string        `json:"buttonHref,omitempty" yaml:"buttonHref,omitempty"`
	ThemeID       string        `json:"themeId,omitempty" yaml:"themeId,omitempty"`
}

// Clone returns a deep copy of the layout.
func (l *SectionLayout) Clone() *SectionLayout {
	if l == nil {
		return nil
	}
	out := *l
	if l.ShowButton != nil {
		v := *l.ShowButton
		out.ShowButton = &v
	}
	return &out
}

// PageSection is one instantiated block of the page. Content is sparse: keys
// missing here fall back to the template default at render time. A templateId
// with no catalog entry is a valid state and renders as an empty fragment.
type PageSection struct {
	ID         string            `json:"id" yaml:"id"`
	TemplateID string            `json:"templateId" yaml:"templateId"`
	Order      int               `json:"order" yaml:"order"`
	Content    map[string]string `json:"content" yaml:"content"`
	Images     []PageImage       `json:"images,omitempty" yaml:"images,omitempty"`
	Layout     *SectionLayout    `json:"layout,omitempty" yaml:"layout,omitempty"`
}

// Clone returns a deep copy of the section, used for edit drafts.
func (s PageSection) Clone() PageSection {
	out := s
	out.Content = CloneContent(s.Content)
	if s.Images != nil {
		out.Images = make([]PageImage, len(s.Images))
		copy(out.Images, s.Images)
	}
	out.Layout = s.Layout.Clone()
	return out
}

// CloneContent copies a content mapping. A nil map clones to nil.
func CloneContent(content map[string]string) map[string]string {
	if content == nil {
		return nil
	}
	out := make(map[string]string, len(content))
	for k, v := range content {
		out[k] = v
	}
	return out
}
