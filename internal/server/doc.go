// Package server wires and runs the host's transport servers.
//
// The read API and the socket.io dispatcher share a single HTTP listener;
// this package mounts both on one router and orchestrates startup, signal
// handling, and graceful shutdown.
package server
