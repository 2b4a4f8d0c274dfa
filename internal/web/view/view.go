// Package view rebuilds the page controllers of one visitor from the session
// and derives everything the home template shows.
package view

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dseza/portal/internal/content"
	"github.com/dseza/portal/internal/site"
	"github.com/dseza/portal/internal/web/navigation"
	"github.com/dseza/portal/internal/web/session"
)

// Page holds the controllers of one visitor's page.
type Page struct {
	Bar       *navigation.Bar
	News      *content.NewsSection
	Resources *content.ResourcesSection
}

// Restore builds the page controllers and applies a saved state. Saved keys
// that are no longer known fall back to the defaults.
func Restore(menu []navigation.MenuItem, lib *content.Library, state session.ViewState) (*Page, error) {
	if lib == nil {
		lib = &content.Library{}
	}

	news, err := content.NewNewsSection(content.NewsCategories, lib.News)
	if err != nil {
		return nil, err
	}

	resources, err := content.NewResourcesSection(content.ResourceTabs, lib.Resources)
	if err != nil {
		return nil, err
	}

	bar := navigation.NewBar(menu)
	if state.Menu != nil {
		bar.Expand(*state.Menu)
	}

	if news.Keys().Known(state.News) {
		news.Select(state.News)
	}

	if tab := content.MediaType(state.Resource); resources.Keys().Known(tab) {
		resources.Select(tab)
	}

	return &Page{Bar: bar, News: news, Resources: resources}, nil
}

// Load restores the page of the requesting visitor.
func Load(c *fiber.Ctx, menu []navigation.MenuItem, lib *content.Library) (*Page, error) {
	state, err := session.Load(c)
	if err != nil {
		return nil, err
	}

	return Restore(menu, lib, state)
}

// Save stores the page selection in the visitor session.
func (p *Page) Save(c *fiber.Ctx) error {
	return session.Save(c, p.State())
}

// State returns the session form of the page selection.
func (p *Page) State() session.ViewState {
	state := session.ViewState{
		News:     p.News.Active(),
		Resource: string(p.Resources.Active()),
	}

	if index, ok := p.Bar.State(); ok {
		state.Menu = &index
	}

	return state
}

// CategoryTab is a rendered news category button.
type CategoryTab struct {
	ID     string
	Name   string
	Active bool
}

// ResourceTab is a rendered resources tab button.
type ResourceTab struct {
	ID     string
	Label  string
	Icon   string
	Active bool
}

// NewsBlock is the news section as the template sees it.
type NewsBlock struct {
	Categories []CategoryTab
	Layout     content.NewsLayout
	Active     string
}

// ResourcesBlock is the resources section as the template sees it.
type ResourcesBlock struct {
	Tabs []ResourceTab
	// Kind is content.KindImages or content.KindPlaceholder.
	Kind string
	// Images is set for the images display mode.
	Images []content.ResourceItem
	// Placeholder is set for the coming-soon display mode.
	Placeholder *content.PlaceholderMode
	Active      string
}

// Home is the data of the home template.
type Home struct {
	Menu      navigation.Rendered
	News      NewsBlock
	Resources ResourcesBlock
}

// Home derives the home page data in the visitor language.
func (p *Page) Home(sc *site.Context) Home {
	resolver := navigation.NewResolver(sc.Language, sc.Translator)

	return Home{
		Menu:      p.Bar.Render(resolver),
		News:      p.newsBlock(sc),
		Resources: p.resourcesBlock(sc),
	}
}

func (p *Page) newsBlock(sc *site.Context) NewsBlock {
	block := NewsBlock{
		Layout: p.News.Layout(),
		Active: p.News.Active(),
	}

	for _, c := range p.News.Categories() {
		block.Categories = append(block.Categories, CategoryTab{
			ID:     c.ID,
			Name:   sc.T(c.NameKey),
			Active: p.News.IsActive(c.ID),
		})
	}

	return block
}

func (p *Page) resourcesBlock(sc *site.Context) ResourcesBlock {
	block := ResourcesBlock{
		Active: string(p.Resources.Active()),
	}

	for _, t := range p.Resources.Tabs() {
		block.Tabs = append(block.Tabs, ResourceTab{
			ID:     string(t.ID),
			Label:  sc.T(t.LabelKey),
			Icon:   t.Icon,
			Active: p.Resources.IsActive(t.ID),
		})
	}

	mode := p.Resources.Mode()
	block.Kind = mode.Kind()

	switch mode := mode.(type) {
	case content.ImagesMode:
		block.Images = mode.Items
	case content.PlaceholderMode:
		block.Placeholder = &mode
	}

	return block
}
