package compare

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

var (
	defaultComparer   = sync.OnceValue(func() *Comparer { return newShared(currentLocale()) })
	invariantComparer = sync.OnceValue(func() *Comparer { return newShared(language.Und) })
)

// Default returns the process-wide Comparer bound to the locale of the
// environment at the time of the first call.
func Default() *Comparer {
	return defaultComparer()
}

// DefaultInvariant returns the process-wide Comparer bound to the root
// collation, which does not depend on the environment.
func DefaultInvariant() *Comparer {
	return invariantComparer()
}

func currentLocale() language.Tag {
	return localeFromEnv(os.Getenv)
}

// localeFromEnv resolves the collation locale the way POSIX does: the first
// non-empty of LC_ALL, LC_COLLATE and LANG wins. Unusable values resolve to
// the invariant locale.
func localeFromEnv(getenv func(string) string) language.Tag {
	for _, key := range []string{"LC_ALL", "LC_COLLATE", "LANG"} {
		v := getenv(key)
		if v == "" {
			continue
		}
		tag, err := ParsePosixLocale(v)
		if err != nil {
			return language.Und
		}
		return tag
	}
	return language.Und
}

// ParsePosixLocale turns names like "sv_SE.UTF-8@euro" into a language tag.
// BCP 47 names are accepted as well. "C" and "POSIX" are the invariant
// locale.
func ParsePosixLocale(name string) (language.Tag, error) {
	if i := strings.IndexAny(name, ".@"); i >= 0 {
		name = name[:i]
	}
	switch name {
	case "":
		return language.Und, fmt.Errorf("%w: locale is required", ErrInvalidArgument)
	case "C", "POSIX":
		return language.Und, nil
	}
	tag, err := language.Parse(strings.ReplaceAll(name, "_", "-"))
	if err != nil {
		return language.Und, fmt.Errorf("%w: locale %q: %v", ErrInvalidArgument, name, err)
	}
	return tag, nil
}
