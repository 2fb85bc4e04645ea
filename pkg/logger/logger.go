package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New 创建zap日志器
// 设计说明：
// 1. 开发环境用console格式（带颜色、易读），生产环境用json格式（便于采集）
// 2. 参数来自config的log段，不直接依赖config包（pkg层保持独立）
// 3. output支持stdout、stderr或文件路径
func New(level, format, output string) (*zap.Logger, error) {
	var cfg zap.Config
	if format == "json" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	lv, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("无效的日志级别 %q: %w", level, err)
	}
	cfg.Level = zap.NewAtomicLevelAt(lv)

	if output != "" {
		cfg.OutputPaths = []string{output}
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("初始化日志器失败: %w", err)
	}

	// 全局logger，供没有注入点的地方使用（如pkg/response）
	zap.ReplaceGlobals(logger)

	return logger, nil
}
