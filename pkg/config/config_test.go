package config

import "testing"

func TestWithDefaults(t *testing.T) {
	t.Run("ゼロ値はデフォルト値で埋められること", func(t *testing.T) {
		got := Config{}.WithDefaults()
		want := DefaultConfig()
		if got.MaxPanels != want.MaxPanels || got.MinWords != want.MinWords || got.MaxWords != want.MaxWords {
			t.Errorf("期待値 %+v, 実際の値 %+v", want, got)
		}
		if got.MaxJobs != DefaultMaxJobs || got.MaxInputChars != DefaultMaxInputChars {
			t.Errorf("容量の既定値が設定されていません: %+v", got)
		}
	})

	t.Run("最大語数が最小語数を下回る場合は補正されること", func(t *testing.T) {
		got := Config{MinWords: 200, MaxWords: 10}.WithDefaults()
		if got.MaxWords < got.MinWords {
			t.Errorf("最大語数 %d が最小語数 %d を下回っています", got.MaxWords, got.MinWords)
		}
	})

	t.Run("指定済みの値は保持されること", func(t *testing.T) {
		got := Config{MinWords: 5, MaxWords: 20, MaxPanels: 3}.WithDefaults()
		if got.MinWords != 5 || got.MaxWords != 20 || got.MaxPanels != 3 {
			t.Errorf("指定した値が上書きされています: %+v", got)
		}
	})
}
