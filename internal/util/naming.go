package util

import (
	"regexp"
	"strconv"
	"strings"
)

var invalidServiceChars = regexp.MustCompile(`[^a-z0-9_.-]`)

// ServiceName derives a compose service name from an instance's local
// name: lower-cased, with suffix removed (case-insensitive) and any
// character compose rejects dropped.
func ServiceName(name, suffix string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	if suffix != "" {
		s = strings.TrimSuffix(s, strings.ToLower(suffix))
	}
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = invalidServiceChars.ReplaceAllString(s, "")
	if s == "" {
		return "unknown"
	}
	return s
}

// GeneratedName builds an output file name like
// "kubernetes-deployment1.generated.yml". An index below 1 is omitted.
func GeneratedName(stem string, index int) string {
	if index < 1 {
		return stem + ".generated.yml"
	}
	return stem + strconv.Itoa(index) + ".generated.yml"
}
