package main

import (
	"testing"

	"github.com/kevin-chtw/tw_ting/conf"
	"github.com/kevin-chtw/tw_ting/service"
	pitaya "github.com/topfreegames/pitaya/v3/pkg"
	"github.com/topfreegames/pitaya/v3/pkg/acceptor"
)

func Test_NewApp(t *testing.T) {
	v := conf.NewViper()
	cfg, err := conf.Load(v, "")
	if err != nil {
		t.Fatal(err)
	}
	sc := cfg.Server
	sc.Addr = "127.0.0.1:0"

	app := newApp(v, sc, service.Options{Parallel: true})
	if app == nil {
		t.Fatal("newApp returned nil")
	}
	server := app.GetServer()
	if server.Type != "ting" || !server.Frontend {
		t.Errorf("server = %+v", server)
	}
	if app.IsRunning() {
		t.Errorf("app running before Start")
	}
	if !v.IsSet("pitaya.serializertype") {
		t.Errorf("pitaya defaults not filled into the shared viper")
	}
}

func Test_ServerMode(t *testing.T) {
	if serverMode(conf.ServerConfig{Mode: conf.ModeCluster}) != pitaya.Cluster {
		t.Errorf("cluster mode not mapped")
	}
	if serverMode(conf.ServerConfig{Mode: conf.ModeStandalone}) != pitaya.Standalone {
		t.Errorf("standalone mode not mapped")
	}
}

func Test_NewAcceptor(t *testing.T) {
	if _, ok := newAcceptor(conf.ServerConfig{Acceptor: conf.AcceptorWS, Addr: ":0"}).(*acceptor.WSAcceptor); !ok {
		t.Errorf("ws acceptor not built")
	}
	if _, ok := newAcceptor(conf.ServerConfig{Acceptor: conf.AcceptorTCP, Addr: ":0"}).(*acceptor.TCPAcceptor); !ok {
		t.Errorf("tcp acceptor not built")
	}
}
