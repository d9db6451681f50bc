package cmd

import (
	"fmt"
	"net/http"

	"github.com/bnema/twmj/internal/adapters/apiclient"
	"github.com/bnema/twmj/internal/adapters/httpapi"
	"github.com/bnema/twmj/internal/adapters/imaging"
	"github.com/bnema/twmj/internal/adapters/metrics"
	"github.com/bnema/twmj/internal/adapters/remote"
	tomlrepo "github.com/bnema/twmj/internal/adapters/repo/toml"
	"github.com/bnema/twmj/internal/adapters/slots"
	filestore "github.com/bnema/twmj/internal/adapters/store/file"
	"github.com/bnema/twmj/internal/adapters/tiles"
	"github.com/bnema/twmj/internal/application"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// serverApp is everything `twmj serve` runs.
type serverApp struct {
	pool    *slots.Pool
	reaper  *application.Reaper
	handler *httpapi.Handler
}

func wireServer(env *cliEnv) (*serverApp, error) {
	cfg := env.config

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder, err := metrics.NewRecorder(registry)
	if err != nil {
		return nil, fmt.Errorf("wire metrics: %w", err)
	}

	pool, err := slots.NewPool(cfg.Inference.Slots, recorder)
	if err != nil {
		return nil, fmt.Errorf("wire inference slots: %w", err)
	}

	store, err := filestore.NewStore(cfg.Templates.Dir, cfg.Templates.TTL, filestore.WithMetrics(recorder))
	if err != nil {
		return nil, fmt.Errorf("wire template store: %w", err)
	}

	reaper, err := application.NewReaper(store, cfg.Templates.ReapInterval, env.logger.Named("reaper"))
	if err != nil {
		return nil, fmt.Errorf("wire reaper: %w", err)
	}

	scoring, err := wireScoring(env)
	if err != nil {
		return nil, err
	}

	inference := remote.Client{BaseURL: cfg.Inference.URL, RequestTimeout: cfg.Inference.Timeout}
	decoder := imaging.NewDecoder()
	classifier := remote.Classifier{Client: inference}

	handler := httpapi.NewHandler(httpapi.Deps{
		Templates: application.NewTemplateService(store, env.logger.Named("templates")),
		Classify:  application.NewClassifyService(decoder, pool, classifier, recorder),
		Scans: application.NewScanService(decoder, pool, classifier, recorder,
			application.WithMaxFrames(cfg.Scan.MaxFrames),
			application.WithScanLogger(env.logger.Named("scan")),
		),
		Scoring:      scoring,
		Logger:       env.logger.Named("http"),
		Metrics:      promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}),
		MaxBodyBytes: cfg.Scan.MaxFrameBytes,
	})

	return &serverApp{pool: pool, reaper: reaper, handler: handler}, nil
}

func wireScoring(env *cliEnv) (*application.ScoringService, error) {
	profiles, err := tomlrepo.NewScoreProfileRepository(env.viper)
	if err != nil {
		return nil, fmt.Errorf("wire scoring profile: %w", err)
	}

	counter := remote.PointCounter{Client: remote.Client{
		BaseURL:        env.config.Inference.URL,
		RequestTimeout: env.config.Inference.Timeout,
	}}
	return application.NewScoringService(tiles.Validator{}, counter, profiles), nil
}

// wireLocalTemplates opens the exchange directory directly, for the admin
// commands that run next to the server.
func wireLocalTemplates(env *cliEnv) (*application.TemplateService, error) {
	store, err := filestore.NewStore(env.config.Templates.Dir, env.config.Templates.TTL)
	if err != nil {
		return nil, fmt.Errorf("wire template store: %w", err)
	}
	return application.NewTemplateService(store, env.logger.Named("templates")), nil
}

func newAPIClient(env *cliEnv) apiclient.Client {
	return apiclient.Client{
		BaseURL:        env.config.Client.Server,
		HTTPClient:     http.DefaultClient,
		RequestTimeout: env.config.Inference.Timeout,
	}
}
