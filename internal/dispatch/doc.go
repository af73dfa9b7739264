// Package dispatch is the cross-process action channel between the host and
// its front-ends. It carries tagged actions over socket.io, using the action
// type string as the event name: config:UPDATE requests inbound and
// config:SET confirmations broadcast outbound.
//
// The dispatcher is a transport only: payloads pass through opaque, delivery
// is at-most-once, ordering holds per sender but not across senders, and a
// request that the host decides to drop produces no reply of any kind.
package dispatch
