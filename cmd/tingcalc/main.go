package main

import (
	"fmt"
	"os"

	"github.com/kevin-chtw/tw_ting/conf"
	"github.com/kevin-chtw/tw_ting/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
)

type app struct {
	v          *viper.Viper
	configFile string
	cfg        *conf.Config
}

func newRootCmd() *cobra.Command {
	a := &app{v: conf.NewViper()}
	root := &cobra.Command{
		Use:           "tingcalc",
		Short:         "麻將聽牌計算器",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configFile, "config", "c", "", "config file (yaml)")
	flags.String("log-level", "info", "log level")
	flags.String("log-dir", "./logs", "log directory")
	flags.Bool("parallel", false, "scan candidate tiles in parallel")
	flags.Bool("simplified", false, "also accept simplified glyphs (万 条 东 发)")
	_ = a.v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("log.dir", flags.Lookup("log-dir"))
	_ = a.v.BindPFlag("scan.parallel", flags.Lookup("parallel"))
	_ = a.v.BindPFlag("scan.simplified", flags.Lookup("simplified"))

	root.AddCommand(
		newWaitsCmd(a),
		newDemoCmd(a),
		newReplCmd(a),
		newServeCmd(a),
	)
	return root
}

func (a *app) setup() error {
	cfg, err := conf.Load(a.v, a.configFile)
	if err != nil {
		return err
	}
	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}
	l, err := utils.Logger(utils.LogOptions{
		Level:  level,
		Dir:    cfg.Log.Dir,
		MaxAge: cfg.LogMaxAge(),
	})
	if err != nil {
		return err
	}
	logger.SetLogger(l)
	a.cfg = cfg
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
