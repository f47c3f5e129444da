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
	"github.com/matt-g-everett/ledanim/anim"
	"github.com/matt-g-everett/ledanim/api"
	"github.com/matt-g-everett/ledanim/stream"
)

type app struct {
	Config   stream.Config
	Client   mqtt.Client
	Registry *anim.Registry
	Streamer *stream.Streamer
	Control  *stream.Control
}

func newApp(config stream.Config) (*app, error) {
	a := new(app)
	a.Config = config
	a.Registry = anim.NewRegistry()
	if err := config.Register(a.Registry); err != nil {
		return nil, err
	}
	a.Control = stream.NewControl(a.Registry)
	return a, nil
}

func (a *app) handleOnConnect(client mqtt.Client) {
	log.Println("Connected")
	if topic := a.Config.Mqtt.Topics.Control; topic != "" {
		if err := a.Control.Subscribe(client, topic); err != nil {
			log.Println(err)
		}
	}
}

func (a *app) run(ctx context.Context) error {
	if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	defer a.Client.Disconnect(250)
	defer a.Registry.Shutdown()

	err := a.Streamer.Run(ctx)
	if err == context.Canceled {
		return nil
	}
	return err
}

func main() {
	// mqtt.DEBUG = log.New(os.Stdout, "", 0)
	mqtt.ERROR = log.New(os.Stdout, "", 0)

	// Parse command line parameters
	configPath := flag.String("config", "config.yaml", "YAML config file.")
	listen := flag.String("listen", "", "HTTP listen address, overrides the config.")
	flag.Parse()

	// Read the config
	config, err := stream.ReadConfigFile(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *listen != "" {
		config.Listen = *listen
	}
	log.Printf("Config: %d animations, %d channels, %v fps", len(config.Animations), len(config.Channels), config.FrameRate)

	a, err := newApp(config)
	if err != nil {
		log.Fatal(err)
	}
	channels, err := config.BuildChannels()
	if err != nil {
		log.Fatal(err)
	}

	options := mqtt.NewClientOptions().
		AddBroker(config.Mqtt.URL).
		SetClientID(config.Mqtt.ClientID).
		SetUsername(config.Mqtt.Username).
		SetPassword(config.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetOnConnectHandler(a.handleOnConnect)
	a.Client = mqtt.NewClient(options)

	sink := stream.NewMqttSink(a.Client, 0, time.Second)
	a.Streamer = stream.NewStreamer(config, a.Registry, channels, sink)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if config.Listen != "" {
		go func() {
			if err := api.NewApi(a.Registry).Serve(ctx, config.Listen); err != nil {
				log.Println(err)
			}
		}()
	}

	if err := a.run(ctx); err != nil {
		log.Fatal(err)
	}
}
