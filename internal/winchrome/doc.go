// Package winchrome implements the frameless chrome backend and message
// interceptor for Win32 windows: it subclasses the window procedure,
// answers hit-testing and frame-geometry queries through the portable
// chrome layer, and re-applies DWM composition attributes. On other
// platforms it compiles to stubs that report the platform as
// unsupported.
package winchrome
