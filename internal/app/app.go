// Package app builds the repositories, infrastructure clients and services
// shared by the server, the worker and myjobsctl.
package app

import (
	"context"
	"fmt"
	"time"

	"myjobs/internal/analytics"
	"myjobs/internal/auth"
	"myjobs/internal/cache"
	"myjobs/internal/config"
	"myjobs/internal/database"
	"myjobs/internal/logger"
	"myjobs/internal/mailer"
	"myjobs/internal/reporting"
	"myjobs/internal/repository"
	"myjobs/internal/search"
	"myjobs/internal/service"
	"myjobs/internal/tasks"

	"github.com/go-playground/validator/v10"
)

// Repositories holds one repository per table group
type Repositories struct {
	Users         *repository.UserRepository
	Profiles      *repository.ProfileRepository
	Companies     *repository.CompanyRepository
	Units         *repository.BusinessUnitRepository
	Sites         *repository.SiteRepository
	Tags          *repository.TagRepository
	Partners      *repository.PartnerRepository
	Contacts      *repository.ContactRepository
	Records       *repository.ContactRecordRepository
	ContactLog    *repository.ContactLogRepository
	Products      *repository.ProductRepository
	Purchases     *repository.PurchaseRepository
	PostedJobs    *repository.PostedJobRepository
	SavedSearches *repository.SavedSearchRepository
	Templates     *repository.EmailTemplateRepository
	EmailLogs     *repository.EmailLogRepository
	Reports       *repository.ReportRepository
	// Redirects reads the primary and falls back to the archive
	Redirects     *repository.RedirectRepository
	Manipulations *repository.DestinationManipulationRepository
	ViewSources   *repository.ViewSourceRepository
	Imports       *repository.ImportRecordRepository

	// primary-only and archive-only redirect readers for the redirect service
	primaryRedirects *repository.RedirectRepository
	archiveRedirects *repository.RedirectRepository
}

// NewRepositories binds every repository to its database in the registry
func NewRepositories(reg *database.Registry) *Repositories {
	repos := &Repositories{
		Users:         repository.NewUserRepository(reg.Primary),
		Profiles:      repository.NewProfileRepository(reg.Primary),
		Companies:     repository.NewCompanyRepository(reg.Primary),
		Units:         repository.NewBusinessUnitRepository(reg.Primary),
		Sites:         repository.NewSiteRepository(reg.Primary),
		Tags:          repository.NewTagRepository(reg.Primary),
		Partners:      repository.NewPartnerRepository(reg.Primary),
		Contacts:      repository.NewContactRepository(reg.Primary),
		Records:       repository.NewContactRecordRepository(reg.Primary),
		ContactLog:    repository.NewContactLogRepository(reg.Primary),
		Products:      repository.NewProductRepository(reg.Primary),
		Purchases:     repository.NewPurchaseRepository(reg.Primary),
		PostedJobs:    repository.NewPostedJobRepository(reg.Primary),
		SavedSearches: repository.NewSavedSearchRepository(reg.Primary),
		Templates:     repository.NewEmailTemplateRepository(reg.Primary),
		EmailLogs:     repository.NewEmailLogRepository(reg.Primary),
		Reports:       repository.NewReportRepository(reg.Primary),
		Redirects:     repository.NewRedirectRepository(reg.Primary, reg.Archive),
		Manipulations: repository.NewDestinationManipulationRepository(reg.Primary),
		ViewSources:   repository.NewViewSourceRepository(reg.Primary),
		Imports:       repository.NewImportRecordRepository(reg.QC),
	}
	repos.primaryRedirects = repository.NewRedirectRepository(reg.Primary, nil)
	if reg.Archive != nil && reg.Archive != reg.Primary {
		repos.archiveRedirects = repository.NewRedirectRepository(reg.Archive, nil)
	}
	return repos
}

// Infra holds the clients of the external systems. Index and Analytics are
// nil when not configured.
type Infra struct {
	DB        *database.Registry
	Cache     cache.Cache
	Index     search.Index
	Queue     *tasks.Queue
	Analytics analytics.Store
	Mailer    *mailer.Mailer
	Reports   *reporting.Registry
	Tokens    *auth.AuthService

	mongo *analytics.Mongo
}

// Connect opens every client the configuration asks for. The search index and
// analytics store are optional: failures are logged and the feature is disabled.
func Connect(ctx context.Context, cfg *config.Config, reg *database.Registry, repos *Repositories) (*Infra, error) {
	log := logger.New()
	infra := &Infra{DB: reg}

	c, err := cache.New(cache.Options{
		Backend:       cfg.CacheBackend,
		RedisAddr:     cfg.RedisAddr,
		RedisPassword: cfg.RedisPassword,
		RedisDB:       cfg.RedisDB,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create cache: %w", err)
	}
	infra.Cache = c

	if cfg.SearchURL != "" {
		ts := search.NewTypesense(cfg.SearchURL, cfg.SearchAPIKey, cfg.SearchCollection)
		if err := ts.EnsureCollection(ctx); err != nil {
			log.WithError(err).Warn("search index unavailable, job search is disabled")
		} else {
			infra.Index = ts
		}
	}

	if cfg.NatsURL != "" {
		infra.Queue, err = tasks.Connect(cfg.NatsURL)
	} else {
		infra.Queue, err = tasks.NewEmbedded(cfg.NatsStoreDir)
	}
	if err != nil {
		infra.Close(ctx)
		return nil, err
	}

	if cfg.MongoURI != "" {
		m, err := analytics.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			log.WithError(err).Warn("analytics store unavailable, click analytics are disabled")
		} else {
			if err := m.EnsureIndexes(ctx); err != nil {
				log.WithError(err).Warn("failed to create analytics indexes")
			}
			infra.mongo = m
			infra.Analytics = m
		}
	}

	infra.Mailer = mailer.New(mailer.Options{
		SenderAddress: cfg.EmailSender,
		MailgunDomain: cfg.MailgunDomain,
		MailgunAPIKey: cfg.MailgunAPIKey,
		SMTPHost:      cfg.SMTPHost,
		SMTPPort:      cfg.SMTPPort,
		SMTPUsername:  cfg.SMTPUsername,
		SMTPPassword:  cfg.SMTPPassword,
	}, repos.EmailLogs)
	if !infra.Mailer.Enabled() {
		log.Warn("no mail service configured, emails are logged but not delivered")
	}

	if infra.Reports, err = reporting.LoadRegistry(); err != nil {
		infra.Close(ctx)
		return nil, fmt.Errorf("failed to load report registry: %w", err)
	}

	if infra.Tokens, err = auth.NewAuthService(auth.NewAuthConfig(cfg.JWTSecret, cfg.JWTTTLMinutes)); err != nil {
		infra.Close(ctx)
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}

	return infra, nil
}

// Close releases every client. The database registry is closed by its owner.
func (i *Infra) Close(ctx context.Context) {
	if i.Queue != nil {
		i.Queue.Close()
	}
	if i.mongo != nil {
		_ = i.mongo.Close(ctx)
	}
	switch c := i.Cache.(type) {
	case *cache.Memory:
		c.Close()
	case *cache.Redis:
		_ = c.Close()
	}
}

// Services holds every domain service
type Services struct {
	Account     *service.AccountService
	Company     *service.CompanyService
	Site        *service.SiteService
	PRM         *service.PRMService
	Postajob    *service.PostajobService
	SavedSearch *service.SavedSearchService
	Email       *service.EmailService
	Report      *service.ReportService
	Redirect    *service.RedirectService
	Import      *service.ImportService
	Automation  *service.AutomationService
	Analytics   *service.AnalyticsService
}

// NewServices wires the services over repos and infra
func NewServices(cfg *config.Config, repos *Repositories, infra *Infra) *Services {
	v := validator.New()
	ttl := time.Duration(cfg.CacheTTLSeconds) * time.Second

	var archive repository.RedirectRepositoryInterface
	if repos.archiveRedirects != nil {
		archive = repos.archiveRedirects
	}

	email := service.NewEmailService(repos.Templates, repos.EmailLogs, repos.Companies, repos.Purchases, infra.Queue, v)
	site := service.NewSiteService(repos.Sites, repos.Units, infra.Cache, ttl, infra.Index, v)

	return &Services{
		Account:  service.NewAccountService(repos.Users, repos.Profiles, infra.Tokens, v),
		Company:  service.NewCompanyService(repos.Companies, repos.Users, repos.Units, v),
		Site:     site,
		PRM:      service.NewPRMService(repos.Tags, repos.Partners, repos.Contacts, repos.Records, repos.ContactLog, v),
		Postajob: service.NewPostajobService(repos.Products, repos.Purchases, repos.PostedJobs, repos.Companies, repos.Units, repos.Redirects, site, email, infra.Queue, v),
		SavedSearch: service.NewSavedSearchService(repos.SavedSearches, repos.Partners, repos.Contacts, repos.Units,
			infra.Index, email, infra.Tokens, infra.Queue, cfg.SiteBaseURL, v),
		Email:      email,
		Report:     service.NewReportService(repos.Reports, infra.Reports, v),
		Redirect:   service.NewRedirectService(repos.primaryRedirects, archive, repos.Manipulations, repos.ViewSources, infra.Cache, ttl, infra.Queue, cfg.SiteBaseURL, v),
		Import:     service.NewImportService(repos.Units, repos.Redirects, repos.Imports, infra.Index),
		Automation: service.NewAutomationService(repos.Manipulations),
		Analytics:  service.NewAnalyticsService(infra.Analytics, repos.Units),
	}
}

// OpenDatabases opens the primary, archive and QC databases named by cfg
func OpenDatabases(cfg *config.Config) (*database.Registry, error) {
	return database.Open(database.RegistryConfig{
		PrimaryDSN: cfg.DatabaseURL,
		ArchiveDSN: cfg.ArchiveDatabaseURL,
		QCDSN:      cfg.QCDatabaseURL,
	}, nil)
}

// App bundles everything a binary needs
type App struct {
	Config   *config.Config
	Repos    *Repositories
	Infra    *Infra
	Services *Services
}

// New connects the infrastructure over reg and builds every service
func New(ctx context.Context, cfg *config.Config, reg *database.Registry) (*App, error) {
	repos := NewRepositories(reg)
	infra, err := Connect(ctx, cfg, reg, repos)
	if err != nil {
		return nil, err
	}
	return &App{
		Config:   cfg,
		Repos:    repos,
		Infra:    infra,
		Services: NewServices(cfg, repos, infra),
	}, nil
}

// Close releases the infrastructure clients and the databases
func (a *App) Close(ctx context.Context) {
	a.Infra.Close(ctx)
	a.Infra.DB.Close()
}
