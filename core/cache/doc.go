// Package cache provides the Redis client used for short-lived caches.
//
// The only consumer today is the rank feature, which caches provider rank
// listings under a TTL so repeated listing requests do not hammer provider
// sites. The cache is advisory: a missing Redis connection disables caching
// but never disables the feature.
package cache
