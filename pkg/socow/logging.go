package socow

import "github.com/go-kit/log/level"

// logf emits a debug-level trace of a storage-mode transition when a
// logger was attached via WithLogger. Vectors built without one log
// nothing, so this is safe to sprinkle through every detach/grow path.
func (v *Vector[T, A]) logf(msg string, args ...any) {
	if v.logger == nil {
		return
	}
	kvs := make([]any, 0, len(args)+2)
	kvs = append(kvs, "msg", msg)
	kvs = append(kvs, args...)
	_ = level.Debug(v.logger).Log(kvs...)
}
