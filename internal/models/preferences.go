// Dietprefs - Dietary Preference Vendor Discovery
// Copyright 2026 The Dietprefs Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dietprefs/dietprefs

package models

import "strings"

// Preference identifies one boolean menu-item attribute.
//
// The set is closed: clients select from these names and nothing else.
// Values double as indexes into Item.Attributes, so the order here must
// match the column order used by the store.
type Preference int

const (
	// Dietary
	PrefVegetarian Preference = iota
	PrefPescetarian
	PrefVegan
	PrefKeto
	PrefOrganic
	PrefGMOFree
	PrefLocallySourced
	PrefRaw
	PrefKosher
	PrefHalal

	// Meat
	PrefBeef
	PrefChicken
	PrefPork
	PrefSeafood
	PrefNoPorkProducts
	PrefNoRedMeat

	// Allergen
	PrefNoMilk
	PrefNoEggs
	PrefNoFish
	PrefNoShellfish
	PrefNoPeanuts
	PrefNoTreenuts
	PrefGlutenFree
	PrefNoSoy
	PrefNoSesame
	PrefNoMSG
	PrefNoAlliums

	// Nutritional
	PrefLowSugar
	PrefHighProtein
	PrefLowCarb

	// Classification
	PrefEntree
	PrefSweet

	// NumPreferences is the size of the closed attribute set.
	NumPreferences
)

// preferenceNames holds the canonical snake_case name for each Preference,
// indexed by the Preference value itself.
var preferenceNames = [NumPreferences]string{
	PrefVegetarian:     "vegetarian",
	PrefPescetarian:    "pescetarian",
	PrefVegan:          "vegan",
	PrefKeto:           "keto",
	PrefOrganic:        "organic",
	PrefGMOFree:        "gmo_free",
	PrefLocallySourced: "locally_sourced",
	PrefRaw:            "raw",
	PrefKosher:         "kosher",
	PrefHalal:          "halal",
	PrefBeef:           "beef",
	PrefChicken:        "chicken",
	PrefPork:           "pork",
	PrefSeafood:        "seafood",
	PrefNoPorkProducts: "no_pork_products",
	PrefNoRedMeat:      "no_red_meat",
	PrefNoMilk:         "no_milk",
	PrefNoEggs:         "no_eggs",
	PrefNoFish:         "no_fish",
	PrefNoShellfish:    "no_shellfish",
	PrefNoPeanuts:      "no_peanuts",
	PrefNoTreenuts:     "no_treenuts",
	PrefGlutenFree:     "gluten_free",
	PrefNoSoy:          "no_soy",
	PrefNoSesame:       "no_sesame",
	PrefNoMSG:          "no_msg",
	PrefNoAlliums:      "no_alliums",
	PrefLowSugar:       "low_sugar",
	PrefHighProtein:    "high_protein",
	PrefLowCarb:        "low_carb",
	PrefEntree:         "entree",
	PrefSweet:          "sweet",
}

// preferencesByName is the reverse lookup, built once at init.
var preferencesByName = func() map[string]Preference {
	m := make(map[string]Preference, NumPreferences)
	for p, name := range preferenceNames {
		m[name] = Preference(p)
	}
	return m
}()

// String returns the canonical snake_case name.
func (p Preference) String() string {
	if p < 0 || p >= NumPreferences {
		return "unknown"
	}
	return preferenceNames[p]
}

// ParsePreference resolves a client-supplied name to a Preference.
// Matching is case-insensitive over the canonical names; the second
// return value reports whether the name was recognized.
func ParsePreference(name string) (Preference, bool) {
	p, ok := preferencesByName[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}

// AllPreferences returns every Preference in declaration order.
func AllPreferences() []Preference {
	prefs := make([]Preference, NumPreferences)
	for i := range prefs {
		prefs[i] = Preference(i)
	}
	return prefs
}

// PreferenceColumns returns the canonical names in declaration order.
// The store uses this to keep SQL column order aligned with Preference
// values.
func PreferenceColumns() []string {
	return append([]string(nil), preferenceNames[:]...)
}
