package compare

import (
	cache "github.com/omelentyev/runtime/collections/lru-cache"
)

const RegistryCapacity = 64

var registry cache.Cache[string, *Comparer] = cache.NewLRUCache[string, *Comparer](RegistryCapacity)

// ForLocale is New with memoization: comparers for recently used locale
// names are shared instead of being rebuilt. Shared comparers refuse to be
// decoded into.
func ForLocale(locale string) (*Comparer, error) {
	return registry.Get(locale, func() (*Comparer, int64, error) {
		c, err := New(locale)
		if err != nil {
			return nil, 0, err
		}
		c.shared = true
		return c, 1, nil
	})
}
