// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = 10 * time.Minute

// BarberCachePrefix is the prefix used for cached barber profiles.
const BarberCachePrefix = "barber:"

// BarberCacheTTL is the time-to-live for cached barber profiles.
const BarberCacheTTL = 5 * time.Minute
