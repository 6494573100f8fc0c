// Package reporting 把崩溃和错误上报到 Sentry
//
// 只有配置了 DSN 时才启用；未配置时所有函数都是空操作。
// 每次运行生成一个会话ID，作为标签附加到所有事件上。
package reporting

import (
	"errors"
	"fmt"
	"log"
	"regexp"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
)

// flushTimeout 退出前等待事件发送的最长时间
const flushTimeout = 2 * time.Second

var uuidRx = regexp.MustCompile(`[0-9a-f]{8}-?([0-9a-f]{4}-?){3}[0-9a-f]{12}`)

// sanitizeError 去掉错误信息中的会话ID等易变部分，便于 Sentry 聚合
func sanitizeError(err string) string {
	return uuidRx.ReplaceAllString(err, "<uuid>")
}

// NewSessionID 生成本次运行的会话ID
func NewSessionID() string {
	return uuid.NewString()
}

// Init 初始化 Sentry
//
// 参数：
//   - dsn: Sentry DSN，为空时不启用
//   - sessionID: 本次运行的会话ID
//   - release: 版本号，可为空
//
// 返回：
//   - func(): 退出前调用，等待事件发送完成
//   - error: DSN 无效时返回错误
func Init(dsn, sessionID, release string) (func(), error) {
	if dsn == "" {
		log.Printf("[Reporting] Sentry disabled (no DSN)")
		return func() {}, nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Release:          release,
		AttachStacktrace: true,
	})
	if err != nil {
		return func() {}, fmt.Errorf("failed to initialize sentry: %w", err)
	}

	sentry.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("session", sessionID)
	})
	log.Printf("[Reporting] Sentry enabled (session %s)", sessionID)

	flush := func() {
		sentry.Flush(flushTimeout)
	}
	return flush, nil
}

// Report 上报一个错误
// extras 中的键值作为附加信息
func Report(err error, extras ...map[string]string) {
	if err == nil {
		err = errors.New("no error provided")
	}
	log.Printf("[Reporting] %v", err)

	hub := sentry.CurrentHub()
	if hub.Client() == nil {
		return
	}

	hub.WithScope(func(scope *sentry.Scope) {
		for _, extra := range extras {
			for key, value := range extra {
				scope.SetExtra(key, value)
			}
		}
		scope.SetFingerprint([]string{"{{ default }}", sanitizeError(err.Error())})
		hub.CaptureException(err)
	})
}

// Recover 捕获 panic 并上报，然后继续 panic
// 必须直接用 defer 调用：defer reporting.Recover()
func Recover() {
	r := recover()
	if r == nil {
		return
	}

	hub := sentry.CurrentHub()
	if hub.Client() != nil {
		hub.Recover(r)
		sentry.Flush(flushTimeout)
	}
	panic(r)
}
