// Package notify pushes evaluated tables to live grid clients. The
// socket.io publisher emits each table on a configurable event; the no-op
// publisher is used when no push endpoint is configured.
package notify
