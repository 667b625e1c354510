// Package region translates Riot platform codes into the continental routing
// values used by the account and match endpoints.
package region

import (
	"strings"

	"rift-scout/internal/constants"
)

var platformToContinental = map[string]string{
	"na1":  "americas",
	"br1":  "americas",
	"la1":  "americas",
	"la2":  "americas",
	"kr":   "asia",
	"jp1":  "asia",
	"euw1": "europe",
	"eun1": "europe",
	"tr1":  "europe",
	"ru":   "europe",
}

// Continental never fails: unknown platforms route to americas.
func Continental(platform string) string {
	if c, ok := platformToContinental[strings.ToLower(platform)]; ok {
		return c
	}
	return constants.DefaultContinental
}

// platforms lists every Riot platform id. Platforms missing from
// platformToContinental still route to the default continental.
var platforms = map[string]bool{
	"na1": true, "br1": true, "la1": true, "la2": true, "oc1": true,
	"kr": true, "jp1": true,
	"euw1": true, "eun1": true, "tr1": true, "ru": true, "me1": true,
	"ph2": true, "sg2": true, "th2": true, "tw2": true, "vn2": true,
}

var continentals = map[string]bool{
	"americas": true,
	"asia":     true,
	"europe":   true,
	"sea":      true,
}

// Platform normalizes the raw region query value. Empty and unrecognized
// values fall back to the default platform.
func Platform(raw string) string {
	p := strings.ToLower(strings.TrimSpace(raw))
	if !IsPlatform(p) {
		return constants.DefaultPlatform
	}
	return p
}

func IsPlatform(value string) bool {
	return platforms[strings.ToLower(value)]
}

// Routable reports whether value may be used as an upstream host label.
func Routable(value string) bool {
	v := strings.ToLower(value)
	return platforms[v] || continentals[v]
}
