package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB, ограничение для тестового корпуса
	maxFuzzInput = 1 << 16  // 64 KiB
)

// grammarSeeds cover every construct the parser knows, translatable or not.
var grammarSeeds = []string{
	"",
	"#![version = \"330\"]\n",
	"static X: f32 = 1.0;\nconst Y: i32 = 0x1f;\n",
	"fn main() { gl_FragColor = vec4(1.0, 0.0, 0.0, 1.0); }\n",
	"fn f(a: f32, b: f32) -> f32 { return a + b * 2.0; }\n",
	"fn f() { if a { b; } else if c { d; } else { e; } }\n",
	"fn f() { let m: f32 = mod_(a, b); let l: u32 = line!(); }\n",
	"pub unsafe extern \"C\" fn f<T>(mut a: &T, ...) {}\n",
	"struct S { a: f32 }\nuse a::b::c;\nfoo!{ x }\n",
	"fn f() { while x { loop { break; continue; } } x += 1; a[0] as f32; (a, b); [1, 2]; }\n",
	"fn f() { 'c'; \"s\\n\"; true; 1e3f64; 0b1010_u8; /* /* nested */ */ }\n",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range grammarSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.glsl.rs файлы
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() {
			return nil
		}
		if !strings.HasSuffix(path, ".glsl.rs") {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
	if err != nil {
		return
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}
