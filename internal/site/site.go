package site

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Site holds the content shared by every page: branding, navigation and the
// home page sections.
type Site struct {
	Name         string        `yaml:"name"`
	Tagline      string        `yaml:"tagline"`
	ContactEmail string        `yaml:"contactEmail"`
	Nav          []NavLink     `yaml:"nav"`
	Stats        []Stat        `yaml:"stats"`
	Testimonials []Testimonial `yaml:"testimonials"`
}

type NavLink struct {
	Label  string `yaml:"label"`
	Href   string `yaml:"href"`
	Page   string `yaml:"page"`
	Active bool   `yaml:"-"`
}

type Stat struct {
	Label  string `yaml:"label"`
	Value  int    `yaml:"value"`
	Suffix string `yaml:"suffix"`
}

type Testimonial struct {
	Quote  string `yaml:"quote"`
	Author string `yaml:"author"`
	Role   string `yaml:"role"`
}

// Default is used when no site file is configured or the file is absent.
func Default() *Site {
	return &Site{
		Name:    "Amblitz Design",
		Tagline: "Architecture and interiors built around the people who use them.",
		Nav: []NavLink{
			{Label: "Home", Href: "/", Page: "home"},
			{Label: "Projects", Href: "/projects", Page: "projects"},
			{Label: "Contact", Href: "/contact", Page: "contact"},
		},
	}
}

// Load reads the site file at path. A missing file yields Default.
func Load(path string) (*Site, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read site file: %w", err)
	}

	s := Default()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse site file: %w", err)
	}
	if s.Name == "" {
		return nil, fmt.Errorf("site file %s: name is required", path)
	}
	return s, nil
}

// PageTitle formats a document title for a page of this site.
func (s *Site) PageTitle(title string) string {
	if title == "" {
		return s.Name
	}
	return title + " | " + s.Name
}

// ActiveNav returns a copy of links with Active set on every link matching
// currentPath: an exact match, a path ending in the link's href, or the home
// link on "/" or an index.html path.
func ActiveNav(links []NavLink, currentPath string) []NavLink {
	out := make([]NavLink, len(links))
	for i, link := range links {
		link.Active = currentPath == link.Href ||
			(link.Href != "" && link.Href != "/" && strings.HasSuffix(currentPath, link.Href)) ||
			(link.Page == "home" && (currentPath == "/" || strings.HasSuffix(currentPath, "index.html")))
		out[i] = link
	}
	return out
}
