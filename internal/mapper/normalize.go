// Package mapper translates decoded Airtable records into the canonical
// agent and property rows. Every function here is pure.
package mapper

import (
	"math"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"listing_sync/internal/domain"
)

// PlaceholderMarker is what Airtable operators put in a photo field when the
// real asset is still missing, e.g. "[Requiere foto profesional]".
const PlaceholderMarker = "[Requiere"

const slugSuffixLen = 6

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9\s-]`)
	whitespaceRun    = regexp.MustCompile(`\s+`)
	hyphenRun        = regexp.MustCompile(`-+`)
)

// stripDiacritics decomposes s (NFD) and drops the combining marks.
func stripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Slug builds a URL-safe slug from text and appends the last six characters
// of externalID so that equal titles from different records never collide.
func Slug(text, externalID string) string {
	base := strings.ToLower(text)
	base = stripDiacritics(base)
	base = slugInvalidChars.ReplaceAllString(base, "")
	base = whitespaceRun.ReplaceAllString(strings.TrimSpace(base), "-")
	base = hyphenRun.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-")

	suffix := lastRunes(externalID, slugSuffixLen)
	switch {
	case base == "":
		return suffix
	case suffix == "":
		return base
	}
	return base + "-" + suffix
}

func lastRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[len(r)-n:])
}

// NormalizeStatus maps the free-text transaction type onto the listing status
// vocabulary. Anything unrecognised, including an empty value, is a sale.
func NormalizeStatus(transactionType string) string {
	t := strings.ToLower(transactionType)
	hasRent := strings.Contains(t, "arriendo")

	switch {
	case hasRent && strings.Contains(t, "venta"):
		return domain.StatusSaleAndRent
	case hasRent || strings.Contains(t, "renta"):
		return domain.StatusRent
	default:
		return domain.StatusSale
	}
}

// propertyTypeKeywords is checked in order and the first hit wins.
var propertyTypeKeywords = []struct {
	keywords []string
	value    string
}{
	{[]string{"casa"}, domain.PropertyTypeHouse},
	{[]string{"oficina"}, domain.PropertyTypeOffice},
	{[]string{"local"}, domain.PropertyTypeCommercial},
	{[]string{"lote", "terreno"}, domain.PropertyTypeLot},
	{[]string{"finca"}, domain.PropertyTypeFarm},
	{[]string{"bodega"}, domain.PropertyTypeWarehouse},
	{[]string{"consultorio"}, domain.PropertyTypeConsultancy},
}

func NormalizePropertyType(raw string) string {
	t := strings.ToLower(raw)
	for _, entry := range propertyTypeKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(t, kw) {
				return entry.value
			}
		}
	}
	return domain.PropertyTypeApartment
}

// NormalizeAmenities turns display labels ("Piscina Climatizada") into
// stable tokens ("piscina_climatizada"). Blank labels are dropped.
func NormalizeAmenities(amenities []string) []string {
	out := make([]string, 0, len(amenities))
	for _, a := range amenities {
		token := stripDiacritics(strings.ToLower(strings.TrimSpace(a)))
		if token == "" {
			continue
		}
		out = append(out, whitespaceRun.ReplaceAllString(token, "_"))
	}
	return out
}

// IsPlaceholder reports whether a photo field holds no usable URL.
func IsPlaceholder(value string) bool {
	v := strings.TrimSpace(value)
	return v == "" || strings.Contains(v, PlaceholderMarker)
}

// CollectImages returns the usable photo URLs, main photo first.
func CollectImages(main string, extras ...string) []string {
	images := make([]string, 0, 1+len(extras))
	for _, candidate := range append([]string{main}, extras...) {
		if IsPlaceholder(candidate) {
			continue
		}
		images = append(images, strings.TrimSpace(candidate))
	}
	return images
}

// SplitFullName returns the first token as the given name and the rest as
// the family name.
func SplitFullName(fullName string) (first, last string) {
	parts := strings.Fields(fullName)
	if len(parts) == 0 {
		return "Sin", "Nombre"
	}
	return parts[0], strings.Join(parts[1:], " ")
}

func intOrZero(v *float64) int {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return 0
	}
	return int(math.Round(*v))
}

func floatOrZero(v *float64) float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return 0
	}
	return *v
}

func floatOrNil(v *float64) *float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return nil
	}
	out := *v
	return &out
}

func stringOrNil(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	return stringOrNil(*s)
}
