package prompts

import "github.com/shouni/go-webtoon-kit/pkg/domain"

const (
	// BaseStyle はすべてのパネルに共通する画風タグです。
	BaseStyle = "Korean manhwa webtoon style, clean lineart, full color, highly detailed, professional digital art"

	// QualitySuffix はプロンプト末尾に付与する形式・品質タグです。
	QualitySuffix = "vertical webtoon panel, masterpiece, best quality, sharp focus"

	// NegativePrompt はシーンやキャラクターに関係なく常に使うネガティブプロンプトです。
	NegativePrompt = "low quality, blurry, distorted, deformed, ugly, bad anatomy, " +
		"bad proportions, watermark, text, signature, low resolution, " +
		"jpeg artifacts, duplicate, cropped, out of frame"

	// characterPrefix はキャラクター記述の前置きです。
	characterPrefix = "main character: "

	// DefaultMaxSceneChars は本文を要約する際の最大文字数です。
	DefaultMaxSceneChars = 100

	ellipsis = "..."
)

// CameraAngles はカメラアングルの一覧です。
var CameraAngles = []string{
	"eye level view",
	"slightly low angle",
	"dynamic angle",
	"close-up shot",
	"medium shot",
	"wide shot",
}

// LightingMoods は mood に対応する照明がない場合に使う照明の一覧です。
var LightingMoods = []string{
	"dramatic lighting",
	"soft natural light",
	"cinematic lighting",
	"moody shadows",
	"bright daylight",
}

// cameraByActionType はシーン種別ごとのカメラアングル候補です。
// description は CameraAngles 全体から選びます。
var cameraByActionType = map[domain.ActionType][]string{
	domain.ActionTypeAction:   {"dynamic angle", "slightly low angle"},
	domain.ActionTypeDialogue: {"eye level view", "medium shot", "close-up shot"},
}

// lightingByMood は mood ごとの照明です。neutral は含みません。
var lightingByMood = map[domain.Mood]string{
	domain.MoodTense:      "dramatic lighting, deep shadows",
	domain.MoodPeaceful:   "soft natural light, warm tones",
	domain.MoodExciting:   "cinematic lighting, vibrant colors",
	domain.MoodSad:        "moody shadows, desaturated colors",
	domain.MoodHappy:      "bright daylight, warm vivid colors",
	domain.MoodMysterious: "low-key lighting, misty atmosphere",
}

// pick はシーン番号から決定論的に候補を1つ選びます。
func pick(candidates []string, index int) string {
	if len(candidates) == 0 {
		return ""
	}
	i := (index - 1) % len(candidates)
	if i < 0 {
		i += len(candidates)
	}
	return candidates[i]
}

// CameraAngle はシーン種別と番号からカメラアングルを選びます。
func CameraAngle(scene domain.Scene) string {
	candidates, ok := cameraByActionType[scene.ActionType]
	if !ok {
		candidates = CameraAngles
	}
	return pick(candidates, scene.Index)
}

// Lighting は mood から照明を選びます。対応がない場合はシーン番号で照明一覧から選びます。
func Lighting(scene domain.Scene) string {
	if l, ok := lightingByMood[scene.Mood]; ok {
		return l
	}
	return pick(LightingMoods, scene.Index)
}
