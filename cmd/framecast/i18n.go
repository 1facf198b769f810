// Package main provides localization for the framecast CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Stream synthetic video frames over a pull-based HTTP chunk protocol.": "合成映像フレームをプル型HTTPチャンクプロトコルで配信します。",

		// Serve command
		"Run the frame streaming HTTP server.": "フレーム配信HTTPサーバーを起動",

		// Version command
		"Show version information.": "バージョン情報を表示",
		"framecast version %s":      "framecast バージョン %s",
	})
}
