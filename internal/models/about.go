package models

// Host is one of the people presenting the show.
type Host struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Bio   string `json:"bio"`
	Photo string `json:"photo,omitempty"`
}

// SocialLinks holds optional profile URLs.
type SocialLinks struct {
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
}

// ContactInfo lists the ways listeners can reach the show.
type ContactInfo struct {
	Email  string      `json:"email,omitempty"`
	Social SocialLinks `json:"social"`
}

// AboutContent is the singleton record rendered on the about page.
type AboutContent struct {
	Title   string      `json:"title"`
	Tagline string      `json:"tagline"`
	Mission string      `json:"mission"`
	Story   string      `json:"story"`
	Hosts   []Host      `json:"hosts"`
	Contact ContactInfo `json:"contact"`
}
