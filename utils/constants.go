// File: utils/constants.go
package utils

import "time"

// AnalyticsCacheKey is the Redis key holding the cached analytics summary.
const AnalyticsCacheKey = "analytics:summary"

// DefaultTokenTTL is used when TOKEN_TTL is not configured.
const DefaultTokenTTL = 72 * time.Hour

// MaxProofUploadBytes bounds proof-of-payment uploads.
const MaxProofUploadBytes = 5 << 20
