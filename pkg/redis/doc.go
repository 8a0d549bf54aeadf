// Package redis provides the Redis plumbing for the session store: a
// Connect helper with retry, environment-driven configuration and a
// health-check probe over the go-redis client.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil { ... }
//	defer client.Close()
//
//	store := session.NewRedisStore(client)
package redis
