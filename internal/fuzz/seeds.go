package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB — ограничение для тестового корпуса
)

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	for _, seed := range builtinSeeds {
		f.Add([]byte(seed))
	}
}

var builtinSeeds = []string{
	"",
	"467..114..",
	"617*......",
	"...456",
	"*123",
	"..\n..\n",
	"1\n2\n3",
	"99999999999999999999",
	"12 34",
	"ab\x00c",
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata", "grids")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по testdata/grids, добавляем все *.txt файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".txt" {
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
