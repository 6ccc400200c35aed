package slug

import (
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Spanish product names carry accents; fold them instead of dropping
// whole letters ("arcoíris" -> "arcoiris", not "arco-ris").
var accents = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u",
	"ü", "u", "ñ", "n",
)

func FromName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = accents.Replace(s)
	s = nonAlnum.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "product"
	}
	return s
}
