// Package ginrender sends outcomes over gin. It is encoding glue only:
// routing, middleware and request parsing stay with the application.
//
// The operational log for server failures is resolved per request: the
// "logger" gin context key when middleware set one, else the zerolog
// logger attached to the request context, else a disabled logger.
//
// Highlights:
// - Respond: encode an outcome onto a gin context
// - Wrap: adapt an outcome-returning handler body to gin.HandlerFunc
package ginrender
