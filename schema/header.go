package schema

// RequestIDHeader carries a per request correlation id
const RequestIDHeader = "X-Request-Id"
