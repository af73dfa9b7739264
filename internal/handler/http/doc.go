// Package http implements the host's read API over HTTP. It exposes the
// resolved configuration, the raw override tree, the persisted document, and
// the server version; all mutation travels over the dispatcher instead.
// Tracing, request logging, and optional bearer authentication are handled
// at this layer before requests reach the service layer.
package http
