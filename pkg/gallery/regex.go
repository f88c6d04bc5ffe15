package gallery

import (
	"container/list"
	"regexp"
	"sync"
)

// cacheEntry holds a compiled pattern plus its position in the eviction list
type cacheEntry struct {
	pattern string
	regex   *regexp.Regexp
	node    *list.Element
}

// RegexCache is a thread-safe LRU cache for compiled regular expressions
type RegexCache struct {
	mu       sync.Mutex
	capacity int
	cache    map[string]*cacheEntry
	lru      *list.List
}

/**************************************************************************************************
** NewRegexCache creates a bounded LRU cache for compiled regular expressions. The search
** pattern table compiles through it at startup, and ad-hoc patterns supplied at the CLI
** reuse compilations across calls without unbounded growth.
**
** @param capacity - Maximum number of cached patterns before evicting the LRU entry
** @return *RegexCache - Initialized cache instance
**************************************************************************************************/
func NewRegexCache(capacity int) *RegexCache {
	return &RegexCache{
		capacity: capacity,
		cache:    make(map[string]*cacheEntry),
		lru:      list.New(),
	}
}

/**************************************************************************************************
** Get retrieves a compiled regex from the cache and marks it as most recently used.
**
** @param pattern - Regex pattern string key
** @return *regexp.Regexp - Compiled regex if present
** @return bool - True if found in cache
**************************************************************************************************/
func (c *RegexCache) Get(pattern string) (*regexp.Regexp, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.cache[pattern]; ok {
		c.lru.MoveToFront(entry.node)
		return entry.regex, true
	}
	return nil, false
}

/**************************************************************************************************
** Put inserts or updates a compiled regex in the cache, evicting the least recently used
** entry if at capacity.
**
** @param pattern - Regex pattern string key
** @param regex - Compiled regex to store
**************************************************************************************************/
func (c *RegexCache) Put(pattern string, regex *regexp.Regexp) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.cache[pattern]; ok {
		entry.regex = regex
		c.lru.MoveToFront(entry.node)
		return
	}

	if len(c.cache) >= c.capacity {
		c.evictLRU()
	}

	node := c.lru.PushFront(pattern)
	c.cache[pattern] = &cacheEntry{
		pattern: pattern,
		regex:   regex,
		node:    node,
	}
}

func (c *RegexCache) evictLRU() {
	node := c.lru.Back()
	if node == nil {
		return
	}
	delete(c.cache, node.Value.(string))
	c.lru.Remove(node)
}

// Default cache instance. 256 entries covers the fixed pattern table many times over while
// keeping ad-hoc CLI patterns bounded.
var defaultCache = NewRegexCache(256)

/**************************************************************************************************
** RegexCompile compiles a case-insensitive regular expression and caches the result in the
** default LRU cache, avoiding repeated compilation of the same pattern.
**
** @param pattern - The regex pattern to compile (case-insensitivity is applied here)
** @return *regexp.Regexp - Compiled regex
** @return error - Compilation error, if any
**************************************************************************************************/
func RegexCompile(pattern string) (*regexp.Regexp, error) {
	if re, ok := defaultCache.Get(pattern); ok {
		return re, nil
	}

	re, err := regexp.Compile(`(?i)` + pattern)
	if err != nil {
		return nil, err
	}

	defaultCache.Put(pattern, re)
	return re, nil
}
