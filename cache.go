package magickit

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
)

// ============================================================================
// Cache Interface
// ============================================================================

// Cache defines the interface for identification-result cache backends.
// This interface is deliberately simple and backend-agnostic.
//
// Implementations must be thread-safe.
type Cache interface {
	// Get retrieves a value from the cache.
	// Returns the value and true if found, empty string and false otherwise.
	Get(key string) (string, bool)

	// Set stores a value in the cache with the given TTL.
	// A TTL of 0 means no expiration.
	Set(key string, value string, ttl time.Duration)

	// Delete removes a value from the cache.
	Delete(key string)

	// Clear removes all values from the cache.
	Clear()
}

// CacheStats provides statistics about cache usage.
// Implementations may optionally support this interface.
type CacheStats interface {
	// Stats returns cache statistics.
	Stats() CacheStatistics
}

// CacheStatistics contains cache performance metrics.
type CacheStatistics struct {
	Hits      int64
	Misses    int64
	Size      int64
	Evictions int64
	HitRate   float64
}

// ============================================================================
// In-Memory Cache Implementation
// ============================================================================

// cacheEntry represents a single cache entry with expiration.
type cacheEntry struct {
	value      string
	expiration time.Time
	hasExpiry  bool
}

// MemoryCache is a simple in-memory cache implementation.
// It is thread-safe and supports TTL-based expiration and an optional
// entry limit.
type MemoryCache struct {
	mu         sync.RWMutex
	entries    map[string]*cacheEntry
	maxEntries int
	hits       int64
	misses     int64
	evictions  int64
}

// NewMemoryCache creates a new in-memory cache without an entry limit.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]*cacheEntry),
	}
}

// NewMemoryCacheWithLimit creates an in-memory cache holding at most
// maxEntries entries. Inserting beyond the limit evicts expired
// entries first, then an arbitrary entry. maxEntries <= 0 means
// no limit.
func NewMemoryCacheWithLimit(maxEntries int) *MemoryCache {
	return &MemoryCache{
		entries:    make(map[string]*cacheEntry),
		maxEntries: maxEntries,
	}
}

// Get retrieves a value from the cache.
func (c *MemoryCache) Get(key string) (string, bool) {
	c.mu.RLock()
	entry, exists := c.entries[key]
	c.mu.RUnlock()

	if !exists {
		c.mu.Lock()
		c.misses++
		c.mu.Unlock()
		return "", false
	}

	// Check expiration
	if entry.hasExpiry && time.Now().After(entry.expiration) {
		c.mu.Lock()
		delete(c.entries, key)
		c.misses++
		c.mu.Unlock()
		return "", false
	}

	c.mu.Lock()
	c.hits++
	c.mu.Unlock()
	return entry.value, true
}

// Set stores a value in the cache.
func (c *MemoryCache) Set(key string, value string, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.maxEntries > 0 {
		if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxEntries {
			c.evictLocked()
		}
	}

	entry := &cacheEntry{value: value}
	if ttl > 0 {
		entry.expiration = time.Now().Add(ttl)
		entry.hasExpiry = true
	}
	c.entries[key] = entry
}

// Delete removes a value from the cache.
func (c *MemoryCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Clear removes all values from the cache.
func (c *MemoryCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cacheEntry)
}

// Stats returns cache statistics.
func (c *MemoryCache) Stats() CacheStatistics {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := c.hits + c.misses
	var hitRate float64
	if total > 0 {
		hitRate = float64(c.hits) / float64(total)
	}

	return CacheStatistics{
		Hits:      c.hits,
		Misses:    c.misses,
		Size:      int64(len(c.entries)),
		Evictions: c.evictions,
		HitRate:   hitRate,
	}
}

// evictLocked frees room for one insertion: expired entries go first,
// then an arbitrary entry. Callers must hold c.mu.
func (c *MemoryCache) evictLocked() {
	now := time.Now()
	for key, entry := range c.entries {
		if entry.hasExpiry && now.After(entry.expiration) {
			delete(c.entries, key)
			c.evictions++
		}
	}
	if len(c.entries) < c.maxEntries {
		return
	}
	for key := range c.entries {
		delete(c.entries, key)
		c.evictions++
		return
	}
}

// Cleanup removes expired entries from the cache.
// Call this periodically to prevent memory growth from expired entries.
func (c *MemoryCache) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for key, entry := range c.entries {
		if entry.hasExpiry && now.After(entry.expiration) {
			delete(c.entries, key)
		}
	}
}

// Ensure MemoryCache implements Cache and CacheStats
var (
	_ Cache      = (*MemoryCache)(nil)
	_ CacheStats = (*MemoryCache)(nil)
)

// ============================================================================
// CachingIdentifier Decorator
// ============================================================================

// CachingIdentifier wraps an Identifier to cache identification results.
// Useful when the same files or payloads are classified repeatedly, for
// example by a directory watcher re-checking files on change events.
//
// File results are keyed by path plus size and modification time, so a
// rewritten file misses the cache and is re-identified. Buffer results
// are keyed by an xxhash of the content.
//
// Example:
//
//	m, _ := magickit.New()
//	cached := magickit.NewCachingIdentifier(m, magickit.NewMemoryCache(),
//	    magickit.WithCacheTTL(5 * time.Minute),
//	)
//
//	// First call hits libmagic
//	desc, _ := cached.File("report.pdf")
//
//	// Second call returns the cached result
//	desc, _ = cached.File("report.pdf")
type CachingIdentifier struct {
	ident Identifier
	cache Cache
	opts  CacheOptions
}

// CacheOptions configures the CachingIdentifier behavior.
type CacheOptions struct {
	// TTL is the default time-to-live for cache entries.
	// Default: 5 minutes
	TTL time.Duration
}

// CacheOption configures a CachingIdentifier.
type CacheOption func(*CacheOptions)

// WithCacheTTL sets the time-to-live for cached results.
func WithCacheTTL(ttl time.Duration) CacheOption {
	return func(o *CacheOptions) {
		o.TTL = ttl
	}
}

// NewCachingIdentifier creates a caching wrapper around an Identifier.
func NewCachingIdentifier(ident Identifier, cache Cache, opts ...CacheOption) *CachingIdentifier {
	options := CacheOptions{
		TTL: 5 * time.Minute,
	}
	for _, opt := range opts {
		opt(&options)
	}

	return &CachingIdentifier{
		ident: ident,
		cache: cache,
		opts:  options,
	}
}

// File returns the cached result for path when the file is unchanged
// since it was cached, otherwise delegates to the wrapped Identifier.
func (c *CachingIdentifier) File(path string) (string, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return "", err
	}

	key := fileKey(path, fi.Size(), fi.ModTime())
	if desc, ok := c.cache.Get(key); ok {
		return desc, nil
	}

	desc, err := c.ident.File(path)
	if err != nil {
		return "", err
	}
	c.cache.Set(key, desc, c.opts.TTL)
	return desc, nil
}

// Buffer returns the cached result for the content, keyed by its hash,
// otherwise delegates to the wrapped Identifier.
func (c *CachingIdentifier) Buffer(data []byte) (string, error) {
	key := bufferKey(data)
	if desc, ok := c.cache.Get(key); ok {
		return desc, nil
	}

	desc, err := c.ident.Buffer(data)
	if err != nil {
		return "", err
	}
	c.cache.Set(key, desc, c.opts.TTL)
	return desc, nil
}

// Close clears the cache and closes the wrapped Identifier.
func (c *CachingIdentifier) Close() error {
	c.cache.Clear()
	return c.ident.Close()
}

// Cache returns the underlying cache, e.g. to read statistics.
func (c *CachingIdentifier) Cache() Cache {
	return c.cache
}

func fileKey(path string, size int64, modTime time.Time) string {
	h := xxhash.New()
	fmt.Fprintf(h, "%s\x00%d\x00%d", path, size, modTime.UnixNano())
	return fmt.Sprintf("file:%016x", h.Sum64())
}

func bufferKey(data []byte) string {
	return fmt.Sprintf("buf:%016x", xxhash.Sum64(data))
}

// Ensure CachingIdentifier implements Identifier
var _ Identifier = (*CachingIdentifier)(nil)
