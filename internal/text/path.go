package text

import "strings"

// TakeFilename returns the part of p after the last '\' or '/'.
func TakeFilename(p string) string {
	if i := strings.LastIndexAny(p, `\/`); i >= 0 {
		return p[i+1:]
	}
	return p
}

// TakePathname returns the part of p before the last '\' or '/', without
// the separator. A path with no separator has an empty directory part.
func TakePathname(p string) string {
	if i := strings.LastIndexAny(p, `\/`); i >= 0 {
		return p[:i]
	}
	return ""
}
