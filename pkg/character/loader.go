package character

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shouni/go-webtoon-kit/pkg/domain"
	"gopkg.in/yaml.v3"
)

// LoadFile は YAML（JSON も可）で記述されたキャラクター定義を読み込みます。
func LoadFile(path string) (domain.CharacterDescriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.CharacterDescriptor{}, fmt.Errorf("キャラクターファイルの読み込みに失敗しました: %w", err)
	}
	return Parse(data)
}

// Parse は YAML のバイト列からキャラクター記述子を生成します。
func Parse(data []byte) (domain.CharacterDescriptor, error) {
	var c domain.CharacterDescriptor
	if err := yaml.Unmarshal(data, &c); err != nil {
		return domain.CharacterDescriptor{}, fmt.Errorf("キャラクター設定のデコードに失敗しました: %w", err)
	}
	c = c.Normalize()
	if err := c.Validate(); err != nil {
		return domain.CharacterDescriptor{}, err
	}
	return c, nil
}

// LoadDir はディレクトリ直下の *.yaml / *.yml / *.json を読み込んでライブラリに登録し、登録した件数を返します。
// 1件でも読み込めなければエラーを返します。
func LoadDir(store *Store, dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("キャラクターライブラリの読み込みに失敗しました: %w", err)
	}

	n := 0
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".yaml", ".yml", ".json":
		default:
			continue
		}

		path := filepath.Join(dir, e.Name())
		c, err := LoadFile(path)
		if err != nil {
			return n, fmt.Errorf("%s: %w", path, err)
		}
		if c.ID == "" {
			c.ID = KeyFor(strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())))
		}
		if _, err := store.Save(c); err != nil {
			return n, fmt.Errorf("%s: %w", path, err)
		}
		n++
	}
	return n, nil
}
