// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package main

import (
	"flag"
	"fmt"

	"FinNavi/app/api/advisor/internal/bootstrap"
	"FinNavi/app/api/advisor/internal/config"
	"FinNavi/app/api/advisor/internal/handler"
	"FinNavi/app/api/advisor/internal/svc"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/rest"
)

var configFile = flag.String("f", "etc/advisor-api.yaml", "the config file")

func main() {
	flag.Parse()

	var c config.Config
	conf.MustLoad(*configFile, &c)

	server := rest.MustNewServer(c.RestConf, rest.WithCors())
	defer server.Stop()

	ctx := svc.NewServiceContext(c)
	handler.RegisterHandlers(server, ctx)

	if c.Sync.Enabled {
		stopAsynq := bootstrap.StartAsynq(ctx)
		defer stopAsynq()
		stopScheduler := bootstrap.StartScheduler(ctx)
		defer stopScheduler()
	}

	fmt.Printf("Starting server at %s:%d...\n", c.Host, c.Port)
	server.Start()
}
