// leadctl は LeadTransfer の運用コマンドです（マイグレーション、ロール初期化、ユーザー昇格）
package main

import (
	"log/slog"
	"os"

	"github.com/mrewrin/LeadTransfer/pkg/logger"
)

func main() {
	if err := logger.Setup(logger.Config{Level: "info", Format: "text", Output: "stderr"}); err != nil {
		slog.Error("failed to setup logger", "error", err)
		os.Exit(1)
	}

	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
