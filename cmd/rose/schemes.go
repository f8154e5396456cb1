package main

import (
	"fmt"
	"sort"
)

type ColorScheme struct {
	FillColors  [2]string // small, large
	StrokeColor string
	ArcColors   [2]string
}

const DEFAULT_SCHEME = "red"

var schemes = map[string]ColorScheme{
	"red": {
		FillColors:  [2]string{"#97332b", "#c05150"},
		StrokeColor: "#ffffff",
		ArcColors:   [2]string{"#50d35b", "#30bbe5"},
	},
	"green": {
		FillColors:  [2]string{"#2c6e49", "#4c956c"},
		StrokeColor: "#ffffff",
		ArcColors:   [2]string{"#d17432", "#8d31ce"},
	},
	"blue": {
		FillColors:  [2]string{"#1f4a77", "#416d9f"},
		StrokeColor: "#ffffff",
		ArcColors:   [2]string{"#d13232", "#a9d132"},
	},
	"purple": {
		FillColors:  [2]string{"#674593", "#915eae"},
		StrokeColor: "#ffffff",
		ArcColors:   [2]string{"#a9d132", "#d17432"},
	},
	"grey": {
		FillColors:  [2]string{"#404040", "#545454"},
		StrokeColor: "#ffffff",
		ArcColors:   [2]string{"#000000", "#202020"},
	},
	"yellow": {
		FillColors:  [2]string{"#e0be4e", "#f9d96d"},
		StrokeColor: "#9b6a01",
		ArcColors:   [2]string{"#4e5de0", "#884ee0"},
	},
}

func schemeNames() []string {
	names := make([]string, 0, len(schemes))
	for name := range schemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func schemeByName(name string) (ColorScheme, error) {
	s, found := schemes[name]
	if !found {
		return ColorScheme{}, fmt.Errorf("%s: unknown color scheme, want one of %v", name, schemeNames())
	}
	return s, nil
}
