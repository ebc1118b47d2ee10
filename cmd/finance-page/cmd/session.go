package cmd

import (
	"log/slog"

	"github.com/shunichi-ikebuchi/finance-page/pkg/config"
	"github.com/shunichi-ikebuchi/finance-page/pkg/controller"
	"github.com/shunichi-ikebuchi/finance-page/pkg/financeapi"
	"github.com/shunichi-ikebuchi/finance-page/pkg/page"
	"github.com/shunichi-ikebuchi/finance-page/pkg/render"
)

// session bundles what every command needs: the loaded configuration, the
// API client, the row renderer and a fresh transactions page.
type session struct {
	cfg      *config.Config
	client   *financeapi.Client
	renderer *render.Renderer
	doc      *page.Document
}

func newSession() *session {
	cfg, err := config.Load(cfgFile)
	exitOnError(err, "failed to load configuration")
	applyLogLevel(cfg)

	if err := cfg.Validate([]string{"finance", "baseUrl"}); err != nil {
		exitOnError(err, "invalid configuration")
	}

	if locale != "" {
		cfg.Finance.Locale = locale
	}

	loc, err := cfg.Location()
	exitOnError(err, "invalid configuration")

	locales, err := render.LoadLocales(cfg.Finance.LocaleFile)
	exitOnError(err, "failed to load locales")

	renderer, err := render.NewRenderer(render.Options{
		Locale:   cfg.Finance.Locale,
		Locales:  locales,
		Location: loc,
	})
	exitOnError(err, "failed to create renderer")

	slog.Debug("Connecting to finance tracker", "base_url", cfg.Finance.BaseURL, "timeout", cfg.Finance.Timeout)

	client := financeapi.NewClient(financeapi.ClientConfig{
		BaseURL: cfg.Finance.BaseURL,
		Timeout: cfg.Finance.Timeout,
	})

	doc := page.NewTransactionsPage(client, financeapi.TransactionsPage, map[string]string{
		page.DescriptionFieldID: financeapi.FieldDescription,
		page.AmountFieldID:      financeapi.FieldAmount,
		page.CategoryFieldID:    financeapi.FieldCategory,
	})

	return &session{
		cfg:      cfg,
		client:   client,
		renderer: renderer,
		doc:      doc,
	}
}

// controller creates the page controller for this session's document.
func (s *session) controller(window page.Window) *controller.Controller {
	return controller.New(controller.Options{
		Window:   window,
		Lister:   s.client,
		Renderer: s.renderer,
		Logger:   slog.Default(),
	})
}
