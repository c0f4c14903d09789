package views

// Site carries the site-wide settings every page needs.
type Site struct {
	Title       string
	Tagline     string
	Description string
	URL         string
	Language    string
}

// PageMeta carries per-page <head> metadata.
type PageMeta struct {
	Title       string
	Description string
	Path        string
}

// NavLink is an entry of the primary navigation.
type NavLink struct {
	Href  string
	Label string
}

// NavLinks is the primary navigation shown on every page.
var NavLinks = []NavLink{
	{Href: "/", Label: "Home"},
	{Href: "/episodes", Label: "Episodes"},
	{Href: "/about", Label: "About"},
	{Href: "/faq", Label: "FAQ"},
}
