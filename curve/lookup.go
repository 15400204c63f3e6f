package curve

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/fogleman/ease"
)

var named = map[string]Operator{
	"linear":       Linear,
	"ease":         Ease,
	"easeIn":       EaseIn,
	"easeOut":      EaseOut,
	"elasticIn":    ElasticIn,
	"elasticOut":   ElasticOut,
	"bounceIn":     BounceIn,
	"bounceOut":    BounceOut,
	"overshootIn":  OvershootIn,
	"overshootOut": OvershootOut,

	"inQuad":       ease.InQuad,
	"outQuad":      ease.OutQuad,
	"inOutQuad":    ease.InOutQuad,
	"inCubic":      ease.InCubic,
	"outCubic":     ease.OutCubic,
	"inOutCubic":   ease.InOutCubic,
	"inSine":       ease.InSine,
	"outSine":      ease.OutSine,
	"inOutSine":    ease.InOutSine,
	"inExpo":       ease.InExpo,
	"outExpo":      ease.OutExpo,
	"inOutExpo":    ease.InOutExpo,
	"inCirc":       ease.InCirc,
	"outCirc":      ease.OutCirc,
	"inOutCirc":    ease.InOutCirc,
	"inBack":       ease.InBack,
	"outBack":      ease.OutBack,
	"inOutBack":    ease.InOutBack,
	"inBounce":     ease.InBounce,
	"outBounce":    ease.OutBounce,
	"inOutBounce":  ease.InOutBounce,
	"inElastic":    ease.InElastic,
	"outElastic":   ease.OutElastic,
	"inOutElastic": ease.InOutElastic,
}

// Lookup finds an operator by name. Besides the fixed names listed by Names,
// it understands the parameterised forms "sharpIncline(v)" and
// "overshoot(s)".
func Lookup(name string) (Operator, error) {
	name = strings.TrimSpace(name)
	if f, ok := named[name]; ok {
		return f, nil
	}

	open := strings.IndexByte(name, '(')
	if open < 0 || !strings.HasSuffix(name, ")") {
		return nil, fmt.Errorf("unknown curve %q", name)
	}
	arg, err := strconv.ParseFloat(strings.TrimSpace(name[open+1:len(name)-1]), 64)
	if err != nil {
		return nil, fmt.Errorf("curve %q: %w", name, err)
	}
	switch name[:open] {
	case "sharpIncline":
		return SharpIncline(arg), nil
	case "overshoot":
		return Overshoot(arg), nil
	}
	return nil, fmt.Errorf("unknown curve %q", name)
}

// Names lists the fixed operator names Lookup accepts, sorted.
func Names() []string {
	names := make([]string, 0, len(named))
	for n := range named {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
