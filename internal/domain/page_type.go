package domain

import (
	"strings"

	domainerrors "github.com/listenupapp/readconfig/internal/errors"
)

// PageType is the strategy used to transition between reading pages.
type PageType string

const (
	PageTypeCurl   PageType = "curl"   // simulated paper curl
	PageTypeSlide  PageType = "slide"  // horizontal slide
	PageTypeCover  PageType = "cover"  // next page slides over the current one
	PageTypeScroll PageType = "scroll" // continuous vertical scroll
	PageTypeNone   PageType = "none"   // instant switch, no animation
)

// PageTypes returns every supported page type in display order.
func PageTypes() []PageType {
	return []PageType{PageTypeCurl, PageTypeSlide, PageTypeCover, PageTypeScroll, PageTypeNone}
}

// IsValid reports whether p is a member of the supported set.
func (p PageType) IsValid() bool {
	switch p {
	case PageTypeCurl, PageTypeSlide, PageTypeCover, PageTypeScroll, PageTypeNone:
		return true
	default:
		return false
	}
}

func (p PageType) String() string {
	return string(p)
}

// ParsePageType converts a raw value from storage or the UI into a PageType.
// Matching is case-insensitive; unknown values yield an invalid enum error.
func ParsePageType(raw string) (PageType, error) {
	p := PageType(strings.ToLower(strings.TrimSpace(raw)))
	if !p.IsValid() {
		return "", domainerrors.InvalidEnumValuef("unknown page type %q", raw)
	}
	return p, nil
}
