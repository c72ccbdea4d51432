// Package logging provides the default Logger implementation for the LaCAM
// solver, backed by the leveled glog-style sink the rest of the retrieved
// pack uses for the same purpose.
package logging

import "github.com/plan-systems/klog"

// KlogSink adapts algo.Logger to klog's verbosity-gated Infof, matching the
// level-filtered sink design note in spec §9. The solver only ever sees the
// Logger interface, so swapping this out never touches solver code.
type KlogSink struct{}

// Logf reports through klog.V(level), which klog itself gates against the
// process's "-v" flag.
func (KlogSink) Logf(level int, format string, args ...any) {
	klog.V(klog.Level(level)).Infof(format, args...)
}
