package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/ilpoo/elastic-momentum/anim"
	"github.com/ilpoo/elastic-momentum/api"
	"github.com/ilpoo/elastic-momentum/stream"
	"github.com/prometheus/client_golang/prometheus"
)

type app struct {
	Config     stream.Config
	Client     mqtt.Client
	Ticker     *stream.Ticker
	Controller *stream.Controller
	Api        *api.Api
}

func newApp(configPath string) (*app, error) {
	a := new(app)
	config, err := stream.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	a.Config = config
	return a, nil
}

func (a *app) handleOnConnect(client mqtt.Client) {
	log.Println("Connected")
	if err := a.Controller.Subscribe(client); err != nil {
		log.Printf("subscribe: %v", err)
	}
}

func (a *app) run(ctx context.Context) error {
	if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	defer a.Client.Disconnect(250)

	go func() {
		if err := a.Api.Serve(); err != nil {
			log.Printf("api: %v", err)
		}
	}()

	a.Ticker.Do(a.Controller.Start)
	return a.Ticker.Run(ctx)
}

func main() {
	mqtt.ERROR = log.New(os.Stdout, "", 0)

	// Parse command line parameters
	configPath := flag.String("config", "config.yaml", "YAML config file.")
	pages := flag.String("pages", "client/dist", "Directory of static client pages.")
	flag.Parse()

	a, err := newApp(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Config: %+v", a.Config)

	registry := prometheus.NewRegistry()
	metrics := stream.NewMetrics(registry)

	options := mqtt.NewClientOptions().
		AddBroker(a.Config.Mqtt.URL).
		SetClientID(a.Config.Mqtt.ClientID).
		SetUsername(a.Config.Mqtt.Username).
		SetPassword(a.Config.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetOnConnectHandler(a.handleOnConnect)
	a.Client = mqtt.NewClient(options)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a.Ticker = stream.NewTicker(a.Config.FrameRate)
	streamer := stream.NewStreamer(a.Client, a.Config.Mqtt.Topics.Stream, a.Config.Mqtt.QoS, a.Ticker.Interval(), metrics)
	a.Controller, err = stream.NewController(ctx, a.Config, a.Ticker, anim.SystemClock, streamer, metrics)
	if err != nil {
		log.Fatal(err)
	}
	a.Api = api.NewApi(a.Config.Listen, *pages, registry)

	if err := a.run(ctx); err != nil && err != context.Canceled {
		log.Fatal(err)
	}
}
