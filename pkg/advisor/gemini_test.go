package advisor

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestGeminiAdvisor_ExtractCharacter(t *testing.T) {
	const reply = `{"name": "Elena", "gender": "female", "hair": "silver hair"}`

	t.Run("同じ本文でも同時呼び出しはそれぞれ API を呼ぶこと", func(t *testing.T) {
		const callers = 2
		var calls atomic.Int32
		arrived := make(chan struct{}, callers)
		release := make(chan struct{})

		a := &GeminiAdvisor{
			model: "test-model",
			call: func(ctx context.Context, prompt string) (string, error) {
				calls.Add(1)
				arrived <- struct{}{}
				select {
				case <-release:
				case <-time.After(time.Second):
				}
				return reply, nil
			},
		}

		var wg sync.WaitGroup
		results := make([]bool, callers)
		for i := 0; i < callers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				c, ok := a.ExtractCharacter(context.Background(), "Elena had silver hair.")
				results[i] = ok && c.Name == "Elena"
			}(i)
		}

		// 両方の呼び出しが API に到達するまで待つ。まとめられていれば1件しか届かない
		for i := 0; i < callers; i++ {
			select {
			case <-arrived:
			case <-time.After(time.Second):
				t.Fatalf("%d 件目の呼び出しが API に到達しませんでした", i+1)
			}
		}
		close(release)
		wg.Wait()

		if got := calls.Load(); got != callers {
			t.Errorf("期待値 %d, 実際の値 %d", callers, got)
		}
		for i, ok := range results {
			if !ok {
				t.Errorf("呼び出し %d の結果が不正です", i+1)
			}
		}
	})

	t.Run("API エラーは false として返すこと", func(t *testing.T) {
		a := &GeminiAdvisor{
			model: "test-model",
			call: func(context.Context, string) (string, error) {
				return "", errors.New("unavailable")
			},
		}
		if _, ok := a.ExtractCharacter(context.Background(), "text"); ok {
			t.Error("エラー時に true が返されました")
		}
	})

	t.Run("本文は上限の文字数で切り詰めて送ること", func(t *testing.T) {
		var sent string
		a := &GeminiAdvisor{
			model: "test-model",
			call: func(_ context.Context, prompt string) (string, error) {
				sent = prompt
				return reply, nil
			},
		}
		long := make([]rune, characterInputLimit+100)
		for i := range long {
			long[i] = 'あ'
		}
		a.ExtractCharacter(context.Background(), string(long))

		if got := len([]rune(sent)) - len([]rune(characterPromptTemplate)) + len("%s"); got != characterInputLimit {
			t.Errorf("期待値 %d, 実際の値 %d", characterInputLimit, got)
		}
	})
}
