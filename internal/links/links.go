// Package links resolves workshop routes of the public site.
package links

import (
	"fmt"
	"net/url"
	"strings"
)

// Resolver maps a (year, workshop name) pair to site URLs.
type Resolver interface {
	WorkshopPage(year int, name string) string
	WorkshopEdit(year int, name string) string
}

// Site builds URLs below a base such as "https://example.org". An empty base
// yields root-relative paths.
type Site struct {
	base string
}

func NewSite(base string) Site {
	return Site{base: strings.TrimRight(base, "/")}
}

func (s Site) WorkshopPage(year int, name string) string {
	return fmt.Sprintf("%s/%d/%s/", s.base, year, url.PathEscape(name))
}

func (s Site) WorkshopEdit(year int, name string) string {
	return fmt.Sprintf("%s/%d/%s/edit/", s.base, year, url.PathEscape(name))
}
