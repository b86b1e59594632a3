package main

import (
	"strings"

	"github.com/kevin-chtw/tw_ting/conf"
	"github.com/kevin-chtw/tw_ting/service"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	pitaya "github.com/topfreegames/pitaya/v3/pkg"
	"github.com/topfreegames/pitaya/v3/pkg/acceptor"
	"github.com/topfreegames/pitaya/v3/pkg/component"
	"github.com/topfreegames/pitaya/v3/pkg/config"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "啟動聽牌計算服務",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			serve(a.v, a.cfg.Server, a.scanOptions())
			return nil
		},
	}
	flags := cmd.Flags()
	flags.String("addr", ":3250", "listen address of the frontend acceptor")
	flags.String("mode", conf.ModeStandalone, "server mode: standalone or cluster")
	_ = a.v.BindPFlag("server.addr", flags.Lookup("addr"))
	_ = a.v.BindPFlag("server.mode", flags.Lookup("mode"))
	return cmd
}

func newAcceptor(sc conf.ServerConfig) acceptor.Acceptor {
	if sc.Acceptor == conf.AcceptorWS {
		return acceptor.NewWSAcceptor(sc.Addr)
	}
	return acceptor.NewTCPAcceptor(sc.Addr)
}

func serverMode(sc conf.ServerConfig) pitaya.ServerMode {
	if sc.Mode == conf.ModeCluster {
		return pitaya.Cluster
	}
	return pitaya.Standalone
}

// newApp 构建 pitaya 应用并注册组件，pitaya.* 配置与 CLI 共用同一个 viper
func newApp(v *viper.Viper, sc conf.ServerConfig, opts service.Options) pitaya.Pitaya {
	pitayaConfig := config.NewPitayaConfig(config.NewConfig(v))
	builder := pitaya.NewDefaultBuilder(sc.Frontend, sc.Type, serverMode(sc), map[string]string{}, *pitayaConfig)
	if sc.Frontend {
		builder.AddAcceptor(newAcceptor(sc))
	}
	app := builder.Build()

	app.Register(service.NewTing(opts),
		component.WithName("ting"),
		component.WithNameFunc(strings.ToLower),
	)
	app.RegisterRemote(service.NewRemote(opts),
		component.WithName("remote"),
		component.WithNameFunc(strings.ToLower),
	)
	return app
}

// serve blocks until the pitaya app is shut down.
func serve(v *viper.Viper, sc conf.ServerConfig, opts service.Options) {
	app := newApp(v, sc, opts)
	defer app.Shutdown()

	logger.Log.Infof("starting %s server (%s) on %s", sc.Type, sc.Mode, sc.Addr)
	app.Start()
}
