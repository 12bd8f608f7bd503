package render

import (
	"fmt"
	"strings"

	"github.com/pagentum/pagentum/internal/model"
)

// Each advanced template gets its own option struct so per-kind field
// requirements and defaults live next to the markup that consumes them,
// instead of one shared bag of optionals interpreted by convention.

type heroOptions struct {
	Variant     model.HeroVariant
	Image       *model.PageImage
	ShowButton  bool
	ButtonLabel string
	ButtonHref  string
}

func heroOptionsFrom(content map[string]string, images []model.PageImage, layout *model.SectionLayout) heroOptions {
	opts := heroOptions{
		Variant:     model.HeroImageRight,
		ShowButton:  true,
		ButtonLabel: "Get Started",
		ButtonHref:  "#",
	}
	if len(images) > 0 {
		opts.Image = &images[0]
	}
	if label := content["ctaText"]; label != "" {
		opts.ButtonLabel = label
	}
	if layout != nil {
		if layout.Variant != "" {
			opts.Variant = layout.Variant
		}
		if layout.ShowButton != nil {
			opts.ShowButton = *layout.ShowButton
		}
		if layout.ButtonLabel != "" {
			opts.ButtonLabel = layout.ButtonLabel
		}
		if layout.ButtonHref != "" {
			opts.ButtonHref = layout.ButtonHref
		}
	}
	return opts
}

func renderHeroAdvanced(content map[string]string, images []model.PageImage, layout *model.SectionLayout) string {
	opts := heroOptionsFrom(content, images, layout)

	direction := "lg:flex-row-reverse"
	if opts.Variant == model.HeroImageLeft {
		direction = "lg:flex-row"
	}

	var button string
	if opts.ShowButton {
		button = fmt.Sprintf(`<a href="%s" class="inline-block bg-blue-600 text-white px-8 py-4 rounded-lg font-semibold hover:bg-blue-700 transition-colors">%s</a>`,
			opts.ButtonHref, opts.ButtonLabel)
	}

	var image string
	if opts.Image != nil {
		alt := opts.Image.Alt
		if alt == "" {
			alt = content["title"]
		}
		image = fmt.Sprintf(`<img src="%s" alt="%s" class="w-full max-w-md lg:max-w-lg h-64 lg:h-80 object-cover rounded-2xl shadow-2xl" />`,
			opts.Image.Src, alt)
	} else {
		image = `<div class="w-full max-w-md lg:max-w-lg h-64 lg:h-80 bg-gray-200 rounded-2xl flex items-center justify-center">
          <span class="text-gray-500">Image</span>
        </div>`
	}

	return fmt.Sprintf(`<section class="hero-advanced py-20 px-4 max-w-7xl mx-auto">
  <div class="hero-inner flex flex-col lg:flex-row lg:items-center gap-8 lg:gap-16 %s">
    <div class="hero-text flex-1 text-center lg:text-left">
      <h1 class="text-4xl lg:text-5xl font-bold mb-6">%s</h1>
      <p class="text-xl text-gray-600 mb-8 max-w-lg">%s</p>
      %s
    </div>
    <div class="hero-image flex-1 flex justify-center lg:justify-end">
      %s
    </div>
  </div>
</section>`, direction, content["title"], content["subtitle"], button, image)
}

type carouselOptions struct {
	Style       model.CarouselStyle
	ShowButton  bool
	ButtonLabel string
	ButtonHref  string
}

func carouselOptionsFrom(layout *model.SectionLayout) carouselOptions {
	opts := carouselOptions{
		Style:       model.CarouselAutoScroll,
		ShowButton:  false,
		ButtonLabel: "Buy Now",
		ButtonHref:  "#",
	}
	if layout != nil {
		if layout.CarouselStyle != "" {
			opts.Style = layout.CarouselStyle
		}
		if layout.ShowButton != nil {
			opts.ShowButton = *layout.ShowButton
		}
		if layout.ButtonLabel != "" {
			opts.ButtonLabel = layout.ButtonLabel
		}
		if layout.ButtonHref != "" {
			opts.ButtonHref = layout.ButtonHref
		}
	}
	return opts
}

// carouselTrackClasses maps the visual style to the track class list. The
// glowing style has no dedicated treatment and falls back to the rail classes.
func carouselTrackClasses(style model.CarouselStyle) string {
	switch style {
	case model.CarouselAutoScroll:
		return "flex overflow-hidden [scroll-behavior:smooth] snap-x snap-mandatory scrollbar-hide animate-auto-scroll"
	case model.CarouselRail:
		return "flex overflow-x-auto snap-x snap-mandatory scrollbar-hide pb-4"
	case model.CarouselGrid:
		return "grid grid-cols-2 md:grid-cols-3 lg:grid-cols-4 gap-6"
	default:
		return "flex overflow-x-auto snap-x snap-mandatory scrollbar-hide pb-4"
	}
}

func renderProductCarousel(content map[string]string, images []model.PageImage, layout *model.SectionLayout) string {
	opts := carouselOptionsFrom(layout)

	var cards strings.Builder
	for i, img := range images {
		n := i + 1
		title := content[fmt.Sprintf("product%dTitle", n)]
		if title == "" {
			title = fmt.Sprintf("Product %d", n)
		}
		price := content[fmt.Sprintf("product%dPrice", n)]
		if price == "" {
			price = "$99"
		}
		description := content[fmt.Sprintf("product%dDescription", n)]
		if description == "" {
			description = "Amazing product"
		}
		alt := img.Alt
		if alt == "" {
			alt = fmt.Sprintf("Product %d", n)
		}

		var button string
		if opts.ShowButton {
			button = fmt.Sprintf(`<a href="%s" class="mt-auto inline-block bg-green-600 text-white px-6 py-3 rounded-lg font-semibold hover:bg-green-700 transition-colors text-center">%s</a>`,
				opts.ButtonHref, opts.ButtonLabel)
		}

		fmt.Fprintf(&cards, `    <div class="product-card flex flex-col min-w-[280px] mx-2 snap-center">
      <div class="product-image mb-4">
        <img src="%s" alt="%s" class="w-full h-48 object-cover rounded-xl shadow-lg" />
      </div>
      <div class="product-info p-4 flex-1 flex flex-col">
        <h3 class="font-bold text-lg mb-2">%s</h3>
        <p class="text-2xl font-bold text-blue-600 mb-3">%s</p>
        <p class="text-gray-600 mb-4 flex-1">%s</p>
        %s
      </div>
    </div>
`, img.Src, alt, title, price, description, button)
	}

	track := cards.String()
	if track == "" {
		track = `    <div class="w-full text-center py-12">
      <span class="text-gray-500">Upload product images</span>
    </div>
`
	}

	return fmt.Sprintf(`<section class="product-carousel py-20 px-4 max-w-7xl mx-auto">
  <div class="text-center mb-12">
    <h2 class="text-3xl lg:text-4xl font-bold mb-4">%s</h2>
    <p class="text-xl text-gray-600">%s</p>
  </div>
  <div class="product-track %s">
%s  </div>
</section>`, content["title"], content["subtitle"], carouselTrackClasses(opts.Style), track)
}

type navbarOptions struct {
	Logo *model.PageImage
}

func renderNavbar(content map[string]string, images []model.PageImage, _ *model.SectionLayout) string {
	var opts navbarOptions
	if len(images) > 0 {
		opts.Logo = &images[0]
	}

	var brand string
	if opts.Logo != nil {
		alt := opts.Logo.Alt
		if alt == "" {
			alt = content["logoAlt"]
		}
		if alt == "" {
			alt = "Logo"
		}
		brand = fmt.Sprintf(`<img src="%s" alt="%s" class="h-10 w-auto" />`, opts.Logo.Src, alt)
	} else {
		brand = `<div class="h-10 w-10 bg-gray-200 rounded-lg flex items-center justify-center">
        <span class="text-sm font-bold">LOGO</span>
      </div>`
	}

	var links strings.Builder
	for n := 1; n <= 3; n++ {
		label := content[fmt.Sprintf("nav%dLabel", n)]
		if label == "" {
			continue
		}
		href := content[fmt.Sprintf("nav%dHref", n)]
		if href == "" {
			href = "#"
		}
		fmt.Fprintf(&links, `<a href="%s" class="text-gray-700 hover:text-blue-600 font-medium transition-colors">%s</a>`, href, label)
	}

	return fmt.Sprintf(`<header class="site-navbar bg-white shadow-sm sticky top-0 z-50">
  <div class="nav-inner max-w-7xl mx-auto px-4 py-4 flex items-center justify-between">
    <div class="nav-brand flex items-center space-x-3">
      %s
      <span class="text-xl font-bold text-gray-900">%s</span>
    </div>
    <nav class="nav-links flex space-x-6">%s</nav>
  </div>
</header>`, brand, content["siteName"], links.String())
}
