package kv

import "go.uber.org/fx"

// Module provides the storage backend with the general and secure stores built on it.
var Module = fx.Options(
	fx.Provide(
		NewBackend,
		NewKeyValueStore,
		NewSecureStoreFromConfig,
	),
)
