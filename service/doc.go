// Package service orchestrates the order lifecycle around the pure
// matching core: idempotent admission, durable commit of executions,
// outbox handoff and restore after restart.
package service
