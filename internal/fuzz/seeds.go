package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const maxSeedBytes = 64 << 10 // 64 KiB

var inlineSeeds = []string{
	"",
	"service TestApi {}",
	"service TestApi { method do {}: {} }",
	"[http(url: \"https://x/\")] service A { data B { x: map<string[]>[]; } }",
	"service A { enum E { a, [obsolete] b, } errors F { c } }",
	"/// Summary.\nservice A {}\n\n# A\n\nRemarks.\n",
	"service A {}\n# B\n# B\n",
	"service A { method m { id: string; }: { id: string; } ",
	"service \"A\" {}",
	"////\nservice A {}",
	"\ufeffservice A {}\r\n",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range inlineSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".fsd" {
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
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
