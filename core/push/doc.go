// Package push delivers change notifications through an external push
// gateway.
//
// The gateway accepts {channel, message, metadata} documents over HTTP and
// fans them out asynchronously to every subscriber of the channel. Delivery
// is fire-and-forget from the reconciler's perspective: a failed dispatch is
// logged and never fails a synchronization run.
//
// The Dispatcher interface keeps the gateway mockable in tests (see
// core/push/mocks). When no endpoint is configured, NewDispatcher returns a
// no-op implementation.
package push
