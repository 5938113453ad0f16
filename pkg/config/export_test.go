package config

// ResetCacheForTest drops every cached configuration.
func ResetCacheForTest() {
	cacheMu.Lock()
	cache = make(map[string]any)
	cacheMu.Unlock()
}
