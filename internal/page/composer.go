package page

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"net/url"

	"golang.org/x/sync/errgroup"

	"github.com/folio-dev/portfolio/internal/assets"
	"github.com/folio-dev/portfolio/internal/catalog"
	"github.com/folio-dev/portfolio/internal/contact"
	"github.com/folio-dev/portfolio/internal/logging"
)

// Profile holds the owner's links. Empty fields are left off the page.
type Profile struct {
	GitHubURL   string
	TwitterURL  string
	LinkedInURL string
	Email       string
	ResumeURL   string
}

// Options configures a Composer.
type Options struct {
	HeroImageURL    string
	AnimationURL    string
	AnimationHeight int
	Profile         Profile
	Contact         contact.Form
	// ImageWorkers bounds concurrent project image fetches.
	ImageWorkers int
}

// Composer builds a Page per request.
type Composer struct {
	fetcher *assets.Fetcher
	cache   *assets.Cache
	catalog *catalog.Catalog
	opts    Options
	logger  *slog.Logger
}

func NewComposer(fetcher *assets.Fetcher, cache *assets.Cache, cat *catalog.Catalog, opts Options, logger *slog.Logger) *Composer {
	if opts.HeroImageURL == "" {
		opts.HeroImageURL = DefaultHeroImageURL
	}
	if opts.AnimationURL == "" {
		opts.AnimationURL = DefaultAnimationURL
	}
	if opts.AnimationHeight <= 0 {
		opts.AnimationHeight = 260
	}
	if opts.Contact == (contact.Form{}) {
		opts.Contact = contact.DefaultForm
	}
	if opts.ImageWorkers <= 0 {
		opts.ImageWorkers = 4
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Composer{
		fetcher: fetcher,
		cache:   cache,
		catalog: cat,
		opts:    opts,
		logger:  logger,
	}
}

// Compose assembles the page. It never fails: every decorative asset that
// cannot be loaded is left out.
func (c *Composer) Compose(ctx context.Context) *Page {
	return &Page{
		Title:      Title,
		Icon:       Icon,
		Hero:       c.hero(ctx),
		Grid:       Layout(c.cards(ctx), Columns),
		About:      AboutMe,
		Timeline:   Timeline,
		Contact:    c.opts.Contact,
		QuickLinks: c.quickLinks(),
	}
}

// attempt runs fetch and hands any error, or a recovered panic, to fallback.
func attempt[T any](fetch func() (T, error), fallback func(error) T) (out T) {
	defer func() {
		if r := recover(); r != nil {
			out = fallback(fmt.Errorf("panic: %v", r))
		}
	}()
	v, err := fetch()
	if err != nil {
		return fallback(err)
	}
	return v
}

func (c *Composer) omit(ctx context.Context, slot, assetURL string, err error) {
	c.logger.Debug("decorative asset omitted",
		"request_id", logging.RequestID(ctx),
		"slot", slot,
		"url", assetURL,
		"error", err,
	)
}

func (c *Composer) hero(ctx context.Context) Hero {
	h := Hero{
		Headline: Headline,
		Subtitle: Subtitle,
		Links:    c.heroLinks(),
	}

	imageURL := c.opts.HeroImageURL
	h.Image = attempt(func() (ImageView, error) {
		b, err := c.fetcher.FetchBytes(ctx, imageURL)
		if err != nil {
			return ImageView{}, err
		}
		img, err := assets.DecodeImage(b)
		if err != nil {
			return ImageView{}, err
		}
		return ImageView{Src: img.DataURI(), Alt: Headline, Width: img.Width, Height: img.Height}, nil
	}, func(err error) ImageView {
		c.omit(ctx, "hero image", imageURL, err)
		return ImageView{Src: passthroughURL(imageURL), Alt: Headline}
	})

	animationURL := c.opts.AnimationURL
	h.Animation = attempt(func() (*Animation, error) {
		data, err := c.cache.JSON(ctx, animationURL)
		if err != nil {
			return nil, err
		}
		return &Animation{Data: data, Height: c.opts.AnimationHeight}, nil
	}, func(err error) *Animation {
		c.omit(ctx, "hero animation", animationURL, err)
		return nil
	})

	return h
}

func (c *Composer) cards(ctx context.Context) []Card {
	projects := c.catalog.List()
	cards := make([]Card, len(projects))

	var g errgroup.Group
	g.SetLimit(c.opts.ImageWorkers)
	for i, p := range projects {
		g.Go(func() error {
			cards[i] = c.card(ctx, i, p)
			return nil
		})
	}
	_ = g.Wait()

	return cards
}

func (c *Composer) card(ctx context.Context, index int, p catalog.Project) Card {
	card := Card{
		Index:       index,
		Title:       CardGlyph + " " + p.Title,
		Description: p.Description,
		Tags:        p.Tags,
		Link:        p.RepoLink,
		LinkLabel:   CardLinkLabel,
	}
	if p.ImageURL == "" {
		return card
	}

	card.Image = attempt(func() (*ImageView, error) {
		b, err := c.cache.Bytes(ctx, p.ImageURL)
		if err != nil {
			return nil, err
		}
		img, err := assets.DecodeImage(b)
		if err != nil {
			return nil, err
		}
		return &ImageView{Src: img.DataURI(), Alt: p.Title, Width: img.Width, Height: img.Height}, nil
	}, func(err error) *ImageView {
		c.omit(ctx, "project image", p.ImageURL, err)
		return nil
	})
	return card
}

func (c *Composer) heroLinks() []Link {
	var links []Link
	if c.opts.Profile.ResumeURL != "" {
		links = append(links, Link{Label: "Resume", URL: c.opts.Profile.ResumeURL})
	}
	if c.opts.Profile.Email != "" {
		links = append(links, Link{Label: "✉️ Email", URL: "mailto:" + c.opts.Profile.Email})
	}
	return links
}

func (c *Composer) quickLinks() []Link {
	candidates := []Link{
		{Label: "🐙 GitHub", URL: c.opts.Profile.GitHubURL},
		{Label: "🐦 Twitter", URL: c.opts.Profile.TwitterURL},
		{Label: "💼 LinkedIn", URL: c.opts.Profile.LinkedInURL},
	}
	var links []Link
	for _, l := range candidates {
		if l.URL != "" {
			links = append(links, l)
		}
	}
	return links
}

// passthroughURL lets the browser try an http(s) URL the server could not
// load itself.
func passthroughURL(raw string) template.URL {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return ""
	}
	return template.URL(u.String())
}
