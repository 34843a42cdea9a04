package builder

import (
	"github.com/shouni/go-webtoon-kit/internal/config"
	"github.com/shouni/go-webtoon-kit/pkg/advisor"
	"github.com/shouni/go-webtoon-kit/pkg/character"
	"github.com/shouni/go-webtoon-kit/pkg/domain"
	"github.com/shouni/go-webtoon-kit/pkg/prompts"
	"github.com/shouni/go-webtoon-kit/pkg/segmenter"

	"github.com/shouni/go-gemini-client/pkg/gemini"
	"github.com/shouni/go-http-kit/pkg/httpkit"
)

// AppContext は、アプリケーション実行に必要な共通コンテキストを保持する
// これを各Build関数に渡すことで、依存関係の注入を簡素化します。
type AppContext struct {
	Config      *config.Config              // Configは、環境変数とフラグから組み立てた設定です。
	Options     config.GenerateOptions      // Optionsは、コマンドラインから渡された実行時の設定です。
	Advisor     advisor.Advisor             // Advisorは、利用できない場合 advisor.Nop になります。
	Characters  *character.Store            // Charactersは、プロセス内で共有するキャラクターライブラリです。
	Character   *domain.CharacterDescriptor // Characterは、--character で明示されたキャラクターです。
	Segmenter   *segmenter.Segmenter
	Synthesizer *prompts.Synthesizer    // Synthesizerは、--style の画風で組み立てたものです。
	aiClient    gemini.GenerativeModel  // aiClient はGeminiの通信に使う共通クライアント
	httpClient  httpkit.ClientInterface // httpClient は画像取得に使う共通クライアント
}

// NewAppContext は AppContext の新しいインスタンスを生成する
func NewAppContext(
	cfg *config.Config,
	httpClient httpkit.ClientInterface,
	aiClient gemini.GenerativeModel,
	adv advisor.Advisor,
	characters *character.Store,
	explicit *domain.CharacterDescriptor,
	synth *prompts.Synthesizer,
) AppContext {
	return AppContext{
		Config:      cfg,
		Options:     cfg.Options,
		Advisor:     adv,
		Characters:  characters,
		Character:   explicit,
		Segmenter:   segmenter.New(cfg.Core),
		Synthesizer: synth,
		aiClient:    aiClient,
		httpClient:  httpClient,
	}
}
