package config

import (
	"flag"
	"fmt"
	"io"
	"log"
	"strconv"

	"github.com/joho/godotenv"
)

// 启动参数对应的环境变量
const (
	EnvVerbose   = "LIGHTROOM_VERBOSE"
	EnvConfig    = "LIGHTROOM_CONFIG"
	EnvSentryDSN = "SENTRY_DSN"
)

// LaunchConfig 命令行启动配置
type LaunchConfig struct {
	Verbose        bool   // 输出详细日志
	RoomConfigPath string // 覆盖默认房间配置的 YAML 文件
	SentryDSN      string // 崩溃上报地址，为空则不上报
}

// LoadDotEnv 把 .env 文件中的变量加载到进程环境
// 已存在的环境变量不会被覆盖；文件不存在不算错误
func LoadDotEnv(paths ...string) {
	if err := godotenv.Load(paths...); err != nil {
		log.Printf("[Config] .env not loaded, using process environment: %v", err)
	}
}

// ParseLaunchConfig 解析命令行参数
//
// 环境变量提供默认值，命令行参数优先。
//
// 参数：
//   - name: 程序名（用于帮助信息）
//   - args: 不含程序名的参数列表
//   - getenv: 读取环境变量，通常为 os.Getenv
//   - output: 帮助和错误信息的输出位置
func ParseLaunchConfig(name string, args []string, getenv func(string) string, output io.Writer) (LaunchConfig, error) {
	defaults := LaunchConfig{
		RoomConfigPath: getenv(EnvConfig),
		SentryDSN:      getenv(EnvSentryDSN),
	}
	if v := getenv(EnvVerbose); v != "" {
		verbose, err := strconv.ParseBool(v)
		if err != nil {
			return LaunchConfig{}, fmt.Errorf("invalid %s=%q: %w", EnvVerbose, v, err)
		}
		defaults.Verbose = verbose
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)

	cfg := defaults
	fs.BoolVar(&cfg.Verbose, "verbose", defaults.Verbose, "显示详细调试信息")
	fs.StringVar(&cfg.RoomConfigPath, "config", defaults.RoomConfigPath, "房间配置 YAML 文件（覆盖默认配置）")
	fs.StringVar(&cfg.SentryDSN, "sentry-dsn", defaults.SentryDSN, "Sentry DSN（为空则不上报崩溃）")

	if err := fs.Parse(args); err != nil {
		return LaunchConfig{}, err
	}
	return cfg, nil
}
