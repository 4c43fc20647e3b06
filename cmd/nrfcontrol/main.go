package main

import (
	"fmt"
	"os"
	"time"

	"github.com/ecc1/nrf24"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

const (
	receivePolls      = 50000
	shortReceivePolls = 50
)

func main() {
	app := cli.NewApp()
	app.Name = "nrfcontrol"
	app.Usage = "send a message over an nRF24L01+ and print what comes back"
	app.ArgsUsage = "[message]"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "rx-address, r",
			Usage: "receive address (10 hex digits)",
		},
		cli.StringFlag{
			Name:  "tx-address, t",
			Usage: "transmit address (10 hex digits)",
		},
		cli.UintFlag{
			Name:  "channel, f",
			Usage: "RF channel (default 110)",
		},
		cli.IntFlag{
			Name:  "loop, l",
			Value: 1,
			Usage: "number of transmit/receive rounds",
		},
		cli.BoolFlag{
			Name:  "diagnose, d",
			Usage: "dump registers before exiting",
		},
		cli.BoolFlag{
			Name:  "no-receive, n",
			Usage: "do not listen after transmitting",
		},
		cli.BoolFlag{
			Name:  "short, s",
			Usage: "listen only briefly",
		},
		cli.IntFlag{
			Name:  "wait, w",
			Usage: "listen only, for about this many seconds",
		},
		cli.BoolFlag{
			Name:  "print, p",
			Usage: "listen only",
		},
		cli.StringFlag{
			Name:  "backend",
			Value: "spidev",
			Usage: "bus backend: spidev or periph",
		},
		cli.StringFlag{
			Name:  "spi-port",
			Usage: "periph SPI port name (default: first port)",
		},
		cli.StringFlag{
			Name:  "ce-pin",
			Value: "GPIO25",
			Usage: "periph CE pin name",
		},
		cli.BoolFlag{
			Name:  "verbose",
			Usage: "log bus traffic",
		},
	}
	app.Action = run
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	if c.Bool("verbose") {
		log.SetLevel(log.DebugLevel)
	}
	cfg, err := configure(c)
	if err != nil {
		_ = cli.ShowAppHelp(c)
		return cli.NewExitError(err, 1)
	}
	msg, err := message(c)
	if err != nil {
		_ = cli.ShowAppHelp(c)
		return cli.NewExitError(err, 1)
	}

	polls := receivePolls
	if c.Bool("short") {
		polls = shortReceivePolls
	}
	listenOnly := c.Bool("print") || c.IsSet("wait")
	if w := c.Int("wait"); w > 0 {
		polls *= w
	}

	r, err := open(c, cfg)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	r.Init()
	if r.Error() != nil {
		r.Close()
		return cli.NewExitError(r.Error(), 1)
	}
	for i := 0; i < c.Int("loop") && r.Error() == nil; i++ {
		if !listenOnly {
			fmt.Print("Transmitting...")
			if r.Transmit(msg) {
				fmt.Println("ok")
			} else {
				fmt.Println("fail")
			}
		}
		if !c.Bool("no-receive") {
			for _, p := range r.ReceiveLoop(polls) {
				fmt.Println(string(p))
			}
		}
		if i+1 < c.Int("loop") {
			time.Sleep(time.Millisecond)
		}
	}
	if c.Bool("diagnose") {
		_ = nrf24.WriteDump(os.Stdout, r.Dump())
	}
	r.Shutdown()
	if r.Error() != nil {
		return cli.NewExitError(r.Error(), 1)
	}
	return nil
}

func configure(c *cli.Context) (nrf24.Config, error) {
	cfg := nrf24.DefaultConfig()
	if s := c.String("rx-address"); s != "" {
		addr, err := nrf24.ParseAddress(s)
		if err != nil {
			return cfg, err
		}
		cfg.RxAddress = addr
	}
	if s := c.String("tx-address"); s != "" {
		addr, err := nrf24.ParseAddress(s)
		if err != nil {
			return cfg, err
		}
		cfg.TxAddress = addr
	}
	if ch := c.Uint("channel"); ch > 0 {
		if ch > 0xFF {
			return cfg, errors.Errorf("channel %d out of range", ch)
		}
		cfg.Channel = uint8(ch)
	}
	return cfg, cfg.Validate()
}

// message returns the payload to send: the first argument,
// or a timestamp if there is none.
func message(c *cli.Context) ([]byte, error) {
	if c.NArg() == 0 {
		return []byte("TI:" + time.Now().Format("01022006150405")), nil
	}
	msg := []byte(c.Args().First())
	return msg, nrf24.ValidatePayload(msg)
}

func open(c *cli.Context, cfg nrf24.Config) (*nrf24.Radio, error) {
	switch c.String("backend") {
	case "spidev":
		r := nrf24.Open(cfg)
		return r, r.Error()
	case "periph":
		bus, err := nrf24.OpenPeriph(c.String("spi-port"), c.String("ce-pin"), cfg.SPISpeed)
		if err != nil {
			return nil, err
		}
		r := nrf24.New(bus, cfg)
		if r.Error() != nil {
			r.Close()
		}
		return r, r.Error()
	default:
		return nil, errors.Errorf("unknown backend %q", c.String("backend"))
	}
}
