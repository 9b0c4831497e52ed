package output

import "duogito/internal/domain/entity"

type messages struct {
	welcome        string
	tagline        string
	usage          string
	usageCheck     string
	usageConfig    string
	usageHelp      string
	usageVersion   string
	example        string
	checking       string
	outputFormat   string
	notImplemented string
	configTitle    string
	configFile     string
	unset          string
	updated        string
	reset          string
}

var catalog = map[entity.Language]messages{
	entity.LanguageEnglish: {
		welcome:        "Welcome to Duogito!",
		tagline:        "A CLI tool to check GitHub contribution streaks and motivate daily coding.",
		usage:          "Usage:",
		usageCheck:     "Check contribution streak for a user",
		usageConfig:    "Manage configuration settings",
		usageHelp:      "Show help information",
		usageVersion:   "Show version number",
		example:        "Example:",
		checking:       "Checking contribution streak for",
		outputFormat:   "Output format",
		notImplemented: "This feature is not implemented yet.",
		configTitle:    "Configuration",
		configFile:     "File",
		unset:          "(not set)",
		updated:        "Updated %s",
		reset:          "Configuration reset to defaults",
	},
	entity.LanguageJapanese: {
		welcome:        "Duogito へようこそ！",
		tagline:        "GitHub のコントリビューション連続記録を確認して、毎日のコーディングを後押しする CLI ツールです。",
		usage:          "使い方:",
		usageCheck:     "ユーザーの連続記録を確認",
		usageConfig:    "設定を管理",
		usageHelp:      "ヘルプを表示",
		usageVersion:   "バージョンを表示",
		example:        "例:",
		checking:       "連続記録を確認中",
		outputFormat:   "出力形式",
		notImplemented: "この機能はまだ実装されていません。",
		configTitle:    "設定",
		configFile:     "ファイル",
		unset:          "(未設定)",
		updated:        "%s を更新しました",
		reset:          "設定を初期値に戻しました",
	},
}

func (w *Writer) messages() messages {
	if m, ok := catalog[w.opts.Language]; ok {
		return m
	}
	return catalog[entity.LanguageJapanese]
}
