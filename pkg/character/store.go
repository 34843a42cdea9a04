// Package character は、キャラクター記述子を保持するライブラリを提供します。
package character

import (
	"fmt"
	"sort"
	"strings"

	"github.com/patrickmn/go-cache"
	"github.com/shouni/go-webtoon-kit/pkg/domain"
)

// Lookup はキャラクターの読み取り専用の参照です。
type Lookup interface {
	Get(id string) (domain.CharacterDescriptor, bool)
}

// Store はプロセス内で共有するキャラクターライブラリです。
// 生成時に作られ、呼び出し側から注入して使います。
type Store struct {
	items *cache.Cache
}

// NewStore は空のライブラリを生成します。登録したキャラクターは期限切れになりません。
func NewStore() *Store {
	return &Store{items: cache.New(cache.NoExpiration, 0)}
}

// Save はキャラクターを登録または更新し、使用したキーを返します。
// ID が空の場合は名前から生成します。
func (s *Store) Save(c domain.CharacterDescriptor) (string, error) {
	c = c.Normalize()
	if err := c.Validate(); err != nil {
		return "", fmt.Errorf("キャラクターの保存に失敗しました: %w", err)
	}
	if c.ID == "" {
		c.ID = KeyFor(c.Name.String())
	}
	s.items.Set(key(c.ID), c, cache.NoExpiration)
	return c.ID, nil
}

// Get は ID（大文字小文字は区別しない）でキャラクターを取得します。
func (s *Store) Get(id string) (domain.CharacterDescriptor, bool) {
	v, ok := s.items.Get(key(id))
	if !ok {
		return domain.CharacterDescriptor{}, false
	}
	c, ok := v.(domain.CharacterDescriptor)
	return c, ok
}

// Delete はキャラクターを削除します。
func (s *Store) Delete(id string) {
	s.items.Delete(key(id))
}

// List は登録済みのキャラクターを ID 順に返します。
func (s *Store) List() []domain.CharacterDescriptor {
	items := s.items.Items()
	out := make([]domain.CharacterDescriptor, 0, len(items))
	for _, item := range items {
		if c, ok := item.Object.(domain.CharacterDescriptor); ok {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// KeyFor は名前からライブラリのキーを生成します。
func KeyFor(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "_")
}

func key(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}
