package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Lifecycle messages (info)
		"Listening on %s":               "%s で待ち受け中",
		"Available modes: %s":           "利用可能なモード: %s",
		"Loaded %s: %d frames":          "%s を読み込みました: %d フレーム",
		"Interrupted, shutting down...": "中断されました。シャットダウン中...",

		// Publisher (debug)
		"Frame published: format %s, %d bytes, %d chunks": "フレーム送出: 形式 %s, %d バイト, %d チャンク",

		// Warnings and errors
		"Video source unavailable, disabling %s mode: %s": "動画ソースを利用できないため %s モードを無効化します: %s",
		"Failed to publish frame: %s":                     "フレームの送出に失敗しました: %s",
		"Request panicked: %v":                            "リクエスト処理で回復不能なエラー: %v",
	})
}
