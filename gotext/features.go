package gotext

import (
	"fmt"
	"strconv"
	"strings"

	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/shaping"
)

// ParseFeatures parses a comma separated feature list such as
// "kern=0,+liga,-calt". A bare or '+' prefixed tag enables the feature,
// a '-' prefix disables it and "tag=n" sets the value n.
func ParseFeatures(s string) ([]shaping.FontFeature, error) {
	var out []shaping.FontFeature
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		ft, err := parseFeature(item)
		if err != nil {
			return nil, err
		}
		out = append(out, ft)
	}
	return out, nil
}

func parseFeature(item string) (shaping.FontFeature, error) {
	tag, value := item, uint32(1)
	switch item[0] {
	case '+':
		tag = item[1:]
	case '-':
		tag, value = item[1:], 0
	}
	if name, v, ok := strings.Cut(tag, "="); ok {
		n, err := strconv.ParseUint(strings.TrimSpace(v), 10, 32)
		if err != nil {
			return shaping.FontFeature{}, fmt.Errorf("%w %q: bad value", ErrInvalidFeature, item)
		}
		tag, value = strings.TrimSpace(name), uint32(n)
	}
	if len(tag) != 4 {
		return shaping.FontFeature{}, fmt.Errorf("%w %q: tag must be 4 characters", ErrInvalidFeature, item)
	}
	return shaping.FontFeature{Tag: ot.MustNewTag(tag), Value: value}, nil
}
