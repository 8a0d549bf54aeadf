// Package session binds the opaque identifiers carried in browser cookies
// to server-side user ids. It is the glue between the cookie manager and
// the user store: the cookie transports only a random token, the store maps
// the token to a user id, and the user record itself stays in the user
// store.
//
// # Architecture
//
// A Manager composes a Store (the token→user binding) with a
// cookie.Manager (the browser side). Two stores ship out of the box: an
// in-process MemoryStore with a cleanup ticker, and a RedisStore that
// leans on per-key TTLs and keeps a per-user token set for whole-account
// revocation.
//
// # Usage
//
//	cookies, _ := cookie.New()
//	mgr, _ := session.New(session.NewMemoryStore(5*time.Minute), cookies)
//
//	// login, after userstore.LoadUser succeeded
//	sess, err := mgr.Issue(ctx, w, user.ID)
//
//	// each request
//	sess, err := mgr.Resolve(ctx, r)
//	user, err := store.LoadUserByID(ctx, sess.UserID)
//
//	// logout
//	_ = mgr.Destroy(ctx, w, r)
//
// Middleware and RequireAuth integrate the same flow into net/http
// handler chains, with FromContext / UserIDFromContext as accessors.
//
// # Error Handling
//
// Missing and expired sessions are sentinel errors (ErrSessionNotFound,
// ErrSessionExpired) since both are expected outcomes of normal browsing,
// not failures.
package session
