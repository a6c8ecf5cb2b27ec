package main

import (
	"fmt"
	"strings"

	"github.com/joshuapare/lnkkit/pkg/lnk"
)

// flagsWithValue take the following argument as their value.
var flagsWithValue = map[string]bool{
	"--type": true, "-t": true,
	"--codepage": true,
	"--config":   true,
}

// normalizeArgs rewrites the legacy Windows-style switches into cobra
// flags: "/C" becomes --console and "/PF" becomes --type=PF. Switches may
// start with '/', '\' or "--" and are case-insensitive. Only one field
// switch is allowed.
//
// An argument starting with '/' or '\' that contains another separator or
// a dot is a path, so absolute Unix paths are left alone.
func normalizeArgs(args []string) ([]string, error) {
	out := make([]string, 0, len(args))
	var field string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if flagsWithValue[arg] && i+1 < len(args) {
			out = append(out, arg, args[i+1])
			i++
			continue
		}
		name, legacy := legacySwitch(arg)
		if !legacy {
			out = append(out, arg)
			continue
		}
		switch upper := strings.ToUpper(name); {
		case upper == "C":
			out = append(out, "--console")
		default:
			f, ok := lnk.ParseField(upper)
			if !ok {
				if strings.HasPrefix(arg, "--") {
					// An ordinary long flag; cobra validates it.
					out = append(out, arg)
					continue
				}
				return nil, fmt.Errorf("unknown switch %q", arg)
			}
			if field != "" {
				return nil, fmt.Errorf("only one field switch may be given, got %s and %s", field, f.Code())
			}
			field = f.Code()
			out = append(out, "--type="+field)
		}
	}
	return out, nil
}

// legacySwitch reports whether arg looks like a legacy switch and returns
// its name without the prefix.
func legacySwitch(arg string) (string, bool) {
	var name string
	switch {
	case strings.HasPrefix(arg, "--"):
		name = arg[2:]
	case strings.HasPrefix(arg, "/"), strings.HasPrefix(arg, `\`):
		name = arg[1:]
	default:
		return "", false
	}
	if name == "" || strings.ContainsAny(name, `/\.=`) {
		return "", false
	}
	return name, true
}
