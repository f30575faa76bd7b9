package common

import "time"

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// caller's access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// ServiceName identifies the server in logs and traces.
const ServiceName = "keysafe"

// DefaultTokenTTL is the lifetime of tokens minted by keysafectl.
const DefaultTokenTTL = time.Hour
