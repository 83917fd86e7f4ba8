package colorspace

import (
	"strconv"
	"strings"

	"github.com/ironsheep/avatar-tools-mcp/internal/errors"
)

// ParseColor reads a color written as hex ("#9c3564", "9c3564", "#fff"),
// as rgb(r, g, b) with 0-255 components, or as hsl(h, s, l) where s and l
// are fractions or percentages ("hsl(332, 0.49, 35%)").
func ParseColor(s string) (Color, error) {
	text := strings.ToLower(strings.TrimSpace(s))

	switch {
	case strings.HasPrefix(text, "rgb(") && strings.HasSuffix(text, ")"):
		args, err := functionArgs(text, "rgb(")
		if err != nil {
			return Color{}, err
		}
		var comp [3]int
		for i, arg := range args {
			v, err := strconv.Atoi(arg)
			if err != nil {
				return Color{}, errors.Wrap(err, errors.CodeInvalidFormat, "invalid rgb component "+strconv.Quote(arg))
			}
			comp[i] = v
		}
		return FromRGB(comp[0], comp[1], comp[2])

	case strings.HasPrefix(text, "hsl(") && strings.HasSuffix(text, ")"):
		args, err := functionArgs(text, "hsl(")
		if err != nil {
			return Color{}, err
		}
		h, err := strconv.ParseFloat(strings.TrimSuffix(args[0], "deg"), 64)
		if err != nil {
			return Color{}, errors.Wrap(err, errors.CodeInvalidFormat, "invalid hue "+strconv.Quote(args[0]))
		}
		sat, err := parseFraction(args[1])
		if err != nil {
			return Color{}, err
		}
		light, err := parseFraction(args[2])
		if err != nil {
			return Color{}, err
		}
		return FromHSL(h, sat, light)
	}

	return FromHex(text)
}

func functionArgs(text, prefix string) ([]string, error) {
	inner := strings.TrimSuffix(strings.TrimPrefix(text, prefix), ")")
	args := strings.Split(inner, ",")
	if len(args) != 3 {
		return nil, errors.InvalidFormat("invalid color %q: want 3 components", text)
	}
	for i := range args {
		args[i] = strings.TrimSpace(args[i])
	}
	return args, nil
}

func parseFraction(s string) (float64, error) {
	percent := strings.HasSuffix(s, "%")
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	if err != nil {
		return 0, errors.Wrap(err, errors.CodeInvalidFormat, "invalid component "+strconv.Quote(s))
	}
	if percent {
		v /= 100
	}
	return v, nil
}
