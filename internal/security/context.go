package security

// ctxKey is an unexported type to prevent collisions with context keys
// from other packages.
type ctxKey string

// CtxKeyUserID is the context key under which the middleware stores the
// authenticated caller's user ID.
const CtxKeyUserID ctxKey = "signed_request_user_id"
