package domain

import (
	"errors"
	"fmt"
)

// 入力・ジョブ処理で利用するエラー定義です。
var (
	ErrInvalidInput = errors.New("invalid chapter text")
	ErrNoScenes     = errors.New("no scenes detected")
	ErrRenderFailed = errors.New("panel rendering failed")
	ErrJobNotFound  = errors.New("job not found")
)

// 入力検証エラーは errors.Is(err, ErrInvalidInput) でまとめて判定できます。
var (
	ErrEmptyInput    = fmt.Errorf("%w: text is empty", ErrInvalidInput)
	ErrInputTooLarge = fmt.Errorf("%w: text is too long", ErrInvalidInput)
)
