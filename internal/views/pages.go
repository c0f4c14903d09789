package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"modern-podcast/internal/faq"
	"modern-podcast/internal/markdown"
	"modern-podcast/internal/models"
	"modern-podcast/internal/search"
)

// HomePage renders the hero and the featured episode.
func HomePage(site Site, featured *models.Episode, total int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)

		h.open("section", "class", "hero")
		h.element("h1", site.Title)
		h.element("p", site.Tagline, "class", "tagline")
		h.close("section")

		if featured != nil {
			h.open("section", "class", "featured", "aria-labelledby", "featured-title")
			h.element("span", "Featured Episode", "class", "featured-label")
			h.element("h2", featured.Title, "id", "featured-title")
			h.open("div", "class", "episode-meta")
			h.element("span", Badge(*featured))
			h.element("span", FormatDate(featured.PublishDate))
			h.element("span", featured.Duration)
			h.close("div")
			h.element("p", featured.Description, "class", "episode-description")
			h.component(AudioPlayer(*featured))
			h.close("section")
		}

		h.open("section", "class", "cta")
		h.element("a", "Browse All "+itoa(total)+" Episodes", "href", "/episodes", "class", "button")
		h.element("a", "Learn More About Us", "href", "/about", "class", "button secondary")
		h.close("section")
		return h.err
	})
}

// EpisodesPageData is the input of EpisodesPage.
type EpisodesPageData struct {
	Results []models.Episode
	Total   int
	Playing *models.Episode
	State   ViewState
}

// EpisodesPage renders the searchable episode list.
func EpisodesPage(data EpisodesPageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)
		state := data.State

		h.open("header", "class", "page-header")
		h.element("h1", "All Episodes")
		h.element("p", "Explore our complete collection of "+itoa(data.Total)+" episodes")
		h.close("header")

		h.open("form", "class", "search", "method", "get", "action", "/episodes", "role", "search")
		h.raw("<input")
		h.attr("type", "text")
		h.attr("name", "q")
		h.attr("value", state.Query)
		h.attr("placeholder", "Search episodes by title or topic...")
		h.attr("aria-label", "Search episodes")
		h.raw(">")
		h.element("button", "Search", "type", "submit")
		if state.Query != "" {
			h.element("a", "✕", "href", state.WithQuery("").Href(""), "aria-label", "Clear search", "class", "search-clear")
		}
		h.close("form")

		if state.Query != "" {
			h.element("p", search.ResultSummary(len(data.Results)), "class", "search-summary", "role", "status")
		}

		if data.Playing != nil {
			h.open("section", "id", "audio-player", "class", "now-playing")
			h.element("h2", "Now Playing")
			h.component(AudioPlayer(*data.Playing))
			h.close("section")
		}

		h.open("section", "class", "episode-list")
		h.open("div", "class", "episode-list-header")
		heading := "All Episodes"
		if state.Query != "" {
			heading = "Search Results"
		}
		h.element("h2", heading)
		h.element("span", "Sorted by newest first")
		h.close("div")

		if len(data.Results) > 0 {
			for _, ep := range data.Results {
				h.component(EpisodeCard(ep, state))
			}
		} else {
			h.open("div", "class", "empty-state")
			if state.Query != "" {
				h.element("h3", `No episodes found matching "`+state.Query+`"`)
				h.element("p", "Try adjusting your search terms")
			} else {
				h.element("h3", "No episodes found")
			}
			h.element("a", "Clear search", "href", state.WithQuery("").Href(""), "class", "button")
			h.close("div")
		}
		h.close("section")
		return h.err
	})
}

// AboutPage renders the mission, story, hosts and contact details.
func AboutPage(about models.AboutContent) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)

		mission, err := markdown.Render(about.Mission)
		if err != nil {
			return err
		}
		story, err := markdown.Render(about.Story)
		if err != nil {
			return err
		}

		h.open("header", "class", "page-header")
		h.element("h1", "About "+about.Title)
		h.element("p", about.Tagline, "class", "tagline")
		h.close("header")

		h.open("section", "id", "mission")
		h.element("h2", "Our Mission")
		h.raw(mission)
		h.close("section")

		h.open("section", "id", "story")
		h.element("h2", "Our Story")
		h.raw(story)
		h.close("section")

		h.open("section", "id", "hosts")
		h.element("h2", "Meet the Hosts")
		for _, host := range about.Hosts {
			h.open("article", "class", "host")
			if host.Photo != "" {
				h.raw("<img")
				h.attr("src", string(templ.URL(host.Photo)))
				h.attr("alt", "Photo of "+host.Name)
				h.attr("loading", "lazy")
				h.raw(">")
			}
			h.element("h3", host.Name)
			h.element("p", host.Role, "class", "host-role")
			h.element("p", host.Bio)
			h.close("article")
		}
		h.close("section")

		h.open("section", "id", "contact")
		h.element("h2", "Get in Touch")
		if about.Contact.Email != "" {
			h.open("p")
			h.text("Email us at ")
			h.element("a", about.Contact.Email, "href", "mailto:"+about.Contact.Email)
			h.close("p")
		}
		h.open("ul", "class", "social")
		for _, link := range socialLinks(about.Contact.Social) {
			h.open("li")
			h.element("a", link.Label, "href", link.Href, "rel", "noopener noreferrer", "target", "_blank")
			h.close("li")
		}
		h.close("ul")
		h.close("section")
		return h.err
	})
}

func socialLinks(s models.SocialLinks) []NavLink {
	var links []NavLink
	for _, l := range []NavLink{
		{Href: s.Twitter, Label: "Twitter"},
		{Href: s.Instagram, Label: "Instagram"},
		{Href: s.Facebook, Label: "Facebook"},
		{Href: s.LinkedIn, Label: "LinkedIn"},
	} {
		if l.Href != "" {
			links = append(links, l)
		}
	}
	return links
}

// FAQPage renders the grouped FAQ with its accordion.
func FAQPage(sections []faq.Section, state ViewState) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)

		h.open("header", "class", "page-header")
		h.element("h1", "Frequently Asked Questions")
		h.element("p", "Find answers to common questions about our podcast")
		h.close("header")

		for _, section := range sections {
			h.open("section", "class", "faq-category", "id", "faq-"+string(section.Category))
			h.element("h2", section.Label)
			for _, entry := range section.Entries {
				if err := writeFAQEntry(h, entry, state); err != nil {
					return err
				}
			}
			h.close("section")
		}

		h.open("section", "class", "cta")
		h.element("h2", "Still have questions?")
		h.element("p", "Can't find the answer you're looking for? Feel free to reach out to us directly.")
		h.element("a", "Contact Us", "href", "/about#contact", "class", "button")
		h.close("section")
		return h.err
	})
}

func writeFAQEntry(h *htmlWriter, entry faq.Entry, state ViewState) error {
	id := itoa(entry.Item.ID)
	open := state.Open.IsOpen(entry.Index)

	answer, err := markdown.Render(entry.Item.Answer)
	if err != nil {
		return err
	}

	expanded := "false"
	if open {
		expanded = "true"
	}

	h.open("div", "class", "faq-item", "id", "faq-"+id)
	h.element("a", entry.Item.Question,
		"href", state.WithFAQ(entry.Index).Href("faq-"+id),
		"class", "faq-question",
		"role", "button",
		"aria-expanded", expanded,
		"aria-controls", "faq-answer-"+id,
	)
	h.raw("<div")
	h.attr("id", "faq-answer-"+id)
	h.attr("class", "faq-answer")
	if !open {
		h.raw(" hidden")
	}
	h.raw(">")
	h.raw(answer)
	h.raw("</div>")
	h.close("div")
	return nil
}

// NotFoundPage renders the 404 page.
func NotFoundPage() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)
		h.open("section", "class", "not-found")
		h.element("h1", "404")
		h.element("h2", "Page Not Found")
		h.element("p", "Oops! The page you're looking for seems to have vanished into the digital void.")
		h.open("div", "class", "cta")
		h.element("a", "Go Home", "href", "/", "class", "button")
		h.element("a", "Browse Episodes", "href", "/episodes", "class", "button secondary")
		h.close("div")
		h.open("p", "class", "helpful-links")
		h.text("Or check out: ")
		h.element("a", "About", "href", "/about")
		h.text(" · ")
		h.element("a", "FAQ", "href", "/faq")
		h.close("p")
		h.close("section")
		return h.err
	})
}
