package constants

const (
	CacheKeyRevokedToken = "site:auth:revoked:%s" // %s -> jti
)
