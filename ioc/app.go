package ioc

import (
	"context"

	"github.com/gotomicro/ego/server/egin"
)

type App struct {
	Web       *egin.Component
	Admin     AdminServer
	Consumers []Consumer
}

// Consumer 长期跑在后台的消费者，在 main 里统一启动
type Consumer interface {
	Start(ctx context.Context)
}
