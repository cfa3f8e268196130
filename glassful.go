// Package glassful translates a small Rust-like shader language into GLSL.
//
//	out, err := glassful.Translate(`
//	    #![version = "330"]
//	    fn main() { gl_FragColor = vec4(1.0, 0.0, 0.0, 1.0); }
//	`)
//
// Translate reports user mistakes as an error whose concrete type is
// *driver.Error; internal faults panic. TryTranslate runs the translation
// on its own goroutine and turns both kinds of failure into ok == false.
package glassful

import (
	"context"

	"glassful/internal/driver"
)

// SourceName is the file name diagnostics refer to.
const SourceName = "<input>"

// Translate converts src to GLSL. Diagnostics are returned as an error.
func Translate(src string) (string, error) {
	return driver.Translate(context.Background(), SourceName, src)
}

// TranslateContext is Translate with cancellation and tracing from ctx.
func TranslateContext(ctx context.Context, src string) (string, error) {
	return driver.Translate(ctx, SourceName, src)
}

// TryTranslate converts src to GLSL, isolating internal faults.
// It returns ("", false) on any failure.
func TryTranslate(src string) (string, bool) {
	return driver.TryTranslate(context.Background(), SourceName, src)
}
