package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/kevin-chtw/tw_ting/service"
	"github.com/spf13/cobra"
)

type demoCase struct {
	hand string
	desc string
}

var demoCases = []demoCase{
	{"111萬", "三張1萬"},
	{"123456789萬", "1-9萬各一張"},
	{"1112345678999萬", "13張萬子（缺一張成和）"},
	{"111222333萬東東", "三個刻子加一個對子（缺一張）"},
	{"東東東南南南西西西", "三組字牌刻子（缺一張）"},
	{"11123456789萬", "有雀頭和順子"},
	{"1234567萬東南西", "混合數牌和字牌"},
	{"111222333444萬東", "四個刻子單騎"},
	{"23萬456筒789筒東東東白白", "兩面聽"},
}

var quitWords = map[string]bool{"quit": true, "exit": true, "q": true}

// report writes the recognized tile count and the waits of one hand.
func report(ctx context.Context, out io.Writer, opts service.Options, hand string) error {
	h, waits, err := opts.Waits(ctx, hand)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "解析到 %d 張牌\n", h.Len())
	if len(waits) == 0 {
		fmt.Fprintln(out, "結果: 無法聽牌或格式錯誤")
		return nil
	}
	fmt.Fprintf(out, "聽 %d 張牌: %s\n", len(waits), strings.Join(waits, " "))
	return nil
}

func runDemo(ctx context.Context, out io.Writer, opts service.Options) error {
	fmt.Fprintln(out, "=== 麻將聽牌計算器測試 ===")
	fmt.Fprintln(out)
	for _, c := range demoCases {
		fmt.Fprintf(out, "輸入: %s\n", c.hand)
		fmt.Fprintf(out, "說明: %s\n", c.desc)
		if err := report(ctx, out, opts, c.hand); err != nil {
			return err
		}
		fmt.Fprintln(out, strings.Repeat("-", 50))
		fmt.Fprintln(out)
	}
	return nil
}

// runConsole reads one hand per line until EOF or a quit word.
func runConsole(ctx context.Context, in io.Reader, out io.Writer, opts service.Options) error {
	fmt.Fprintln(out, "進入互動模式（輸入 'quit' 退出）：")
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "\n請輸入手牌: ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if quitWords[line] {
			return nil
		}
		if line == "" {
			continue
		}
		if err := report(ctx, out, opts, line); err != nil {
			return err
		}
	}
}

func (a *app) scanOptions() service.Options {
	return service.Options{
		Parallel:   a.cfg.Scan.Parallel,
		Simplified: a.cfg.Scan.Simplified,
	}
}

func newWaitsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "waits <hand>...",
		Short: "計算聽牌",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, hand := range args {
				fmt.Fprintf(cmd.OutOrStdout(), "輸入: %s\n", hand)
				if err := report(cmd.Context(), cmd.OutOrStdout(), a.scanOptions(), hand); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "執行內建範例",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd.Context(), cmd.OutOrStdout(), a.scanOptions())
		},
	}
}

func newReplCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "互動模式",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConsole(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), a.scanOptions())
		},
	}
}
