// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package queue

// config collects construction options for [New].
type config[T any] struct {
	drop func(T)
}

// Option configures a queue created by [New].
type Option[T any] func(*config[T])

// WithDrop installs a hook invoked once per element removed by
// [Unbounded.Drain]. Use it to release resources held by undelivered
// values.
func WithDrop[T any](drop func(T)) Option[T] {
	return func(c *config[T]) {
		c.drop = drop
	}
}
