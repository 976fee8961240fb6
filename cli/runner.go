package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/jessevdk/go-flags"
	"github.com/viant/tradingpost"
	"github.com/viant/tradingpost/client"
	"github.com/viant/tradingpost/config"
	"github.com/viant/tradingpost/logger"
	"github.com/viant/tradingpost/schema"
	"go.uber.org/zap"
)

const (
	Name    = "trading-post"
	Version = "1.0.0"
)

// Run parses args, executes the selected command and writes its result to stdout.
func Run(ctx context.Context, args []string, stdout io.Writer) error {
	config.Load()
	options := &Options{}
	parser := flags.NewParser(options, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = Name
	parser.SubcommandsOptional = true
	rest, err := parser.ParseArgs(args)
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			_, _ = fmt.Fprintln(stdout, flagsErr.Message)
			return nil
		}
		return err
	}
	if options.Version {
		_, _ = fmt.Fprintln(stdout, Version)
		return nil
	}

	logger.Init(Name, options.Global.Env, options.Global.LogLevel)
	defer logger.Sync()

	cli, err := tradingpost.NewClient(ctx, &options.Global, &tradingpost.ClientOptions{Logger: logger.L()})
	if err != nil {
		return err
	}
	if parser.Active == nil {
		if len(rest) > 0 {
			return fmt.Errorf("invalid <command>: %q", rest[0])
		}
		return fmt.Errorf("missing a <command>, run %s --help for usage", Name)
	}
	result, err := execute(ctx, cli, parser.Active.Name, options)
	if err != nil {
		logger.L().Debug("cli.command_failed", zap.String("command", parser.Active.Name), zap.Error(err))
		return err
	}
	return write(stdout, result)
}

func execute(ctx context.Context, cli *client.Client, command string, options *Options) (json.RawMessage, error) {
	switch command {
	case "user":
		return cli.User(ctx)
	case "buy":
		order, err := options.Buy.order()
		if err != nil {
			return nil, err
		}
		return cli.CreateBuyOrder(ctx, order)
	case "sell":
		order, err := options.Sell.order()
		if err != nil {
			return nil, err
		}
		return cli.CreateSellOrder(ctx, order)
	}
	return nil, fmt.Errorf("invalid <command>: %q", command)
}

func (c *OrderCommand) order() (*schema.OrderRequest, error) {
	ret := &schema.OrderRequest{Ticker: c.Args.Ticker, Quantity: c.Quantity}
	if err := ret.Validate(); err != nil {
		return nil, err
	}
	return ret, nil
}

func write(stdout io.Writer, result json.RawMessage) error {
	buf := &bytes.Buffer{}
	if err := json.Indent(buf, result, "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err := stdout.Write(buf.Bytes())
	return err
}
