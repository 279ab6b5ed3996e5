package routes

import (
	"myjobs/internal/api/handlers"
	"myjobs/internal/api/middleware"
	"myjobs/internal/app"
	"myjobs/internal/auth"
	"myjobs/internal/database/models"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(a *app.App, version string) *gin.Engine {
	cfg := a.Config
	svc := a.Services

	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	authMiddleware := auth.NewAuthMiddleware(a.Infra.Tokens, a.Repos.Companies)
	limiter := middleware.NewRateLimiter(cfg.PublicRateLimitRPS, cfg.PublicRateLimitBurst)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(a.Infra.DB, version)
	accountHandler := handlers.NewAccountHandler(svc.Account)
	companyHandler := handlers.NewCompanyHandler(svc.Company)
	siteHandler := handlers.NewSiteHandler(svc.Site)
	prmHandler := handlers.NewPRMHandler(svc.PRM)
	postajobHandler := handlers.NewPostajobHandler(svc.Postajob)
	savedSearchHandler := handlers.NewSavedSearchHandler(svc.SavedSearch)
	emailHandler := handlers.NewEmailHandler(svc.Email)
	reportHandler := handlers.NewReportHandler(svc.Report)
	redirectHandler := handlers.NewRedirectHandler(svc.Redirect)
	toolsHandler := handlers.NewToolsHandler(svc.Import, svc.Automation)
	analyticsHandler := handlers.NewAnalyticsHandler(svc.Analytics)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	v1 := router.Group("/api/v1")

	// Unauthenticated routes, throttled per client
	public := v1.Group("", limiter.Middleware())
	{
		public.POST("/auth/register", accountHandler.Register)
		public.POST("/auth/login", accountHandler.Login)
		public.GET("/public/jobs", siteHandler.SearchJobs)
		public.GET("/public/jobs/:guid", siteHandler.GetJob)
		public.GET("/public/products", postajobHandler.ListSiteProducts)
		public.GET("/saved-searches/unsubscribe", savedSearchHandler.Unsubscribe)
	}

	authed := v1.Group("", authMiddleware.RequireAuth())

	// The caller's own account
	me := authed.Group("/me")
	{
		me.GET("", accountHandler.Me)
		me.GET("/names", accountHandler.ListNames)
		me.POST("/names", accountHandler.CreateName)
		me.PUT("/names/:id", accountHandler.UpdateName)
		me.DELETE("/names/:id", accountHandler.DeleteName)
		me.GET("/addresses", accountHandler.ListAddresses)
		me.POST("/addresses", accountHandler.CreateAddress)
		me.PUT("/addresses/:id", accountHandler.UpdateAddress)
		me.DELETE("/addresses/:id", accountHandler.DeleteAddress)
	}

	savedSearches := authed.Group("/saved-searches")
	{
		savedSearches.GET("", savedSearchHandler.ListSearches)
		savedSearches.POST("", savedSearchHandler.CreateSearch)
		savedSearches.GET("/:id", savedSearchHandler.GetSearch)
		savedSearches.PUT("/:id", savedSearchHandler.UpdateSearch)
		savedSearches.DELETE("/:id", savedSearchHandler.DeleteSearch)
		savedSearches.GET("/:id/preview", savedSearchHandler.Preview)
		savedSearches.GET("/:id/logs", savedSearchHandler.ListLogs)
	}

	// Routes acting for the company selected by X-Company-ID
	member := authed.Group("", authMiddleware.RequireCompany())
	admin := authed.Group("", authMiddleware.RequireCompany(models.CompanyRoleAdmin))

	member.GET("/company/business-units", companyHandler.CompanyBusinessUnits)
	companyUsers := admin.Group("/company/users")
	{
		companyUsers.GET("", companyHandler.ListCompanyUsers)
		companyUsers.POST("", companyHandler.AddCompanyUser)
		companyUsers.DELETE("/:userId", companyHandler.RemoveCompanyUser)
	}

	sites := admin.Group("/sites")
	{
		sites.GET("", siteHandler.ListSites)
		sites.POST("", siteHandler.CreateSite)
		sites.GET("/:id", siteHandler.GetSite)
		sites.PUT("/:id", siteHandler.UpdateSite)
		sites.DELETE("/:id", siteHandler.DeleteSite)
	}

	prm := member.Group("/prm", authMiddleware.RequireFeature(auth.FeaturePRM))
	{
		prm.GET("/tags", prmHandler.ListTags)

		partners := prm.Group("/partners")
		partners.GET("", prmHandler.ListPartners)
		partners.POST("", prmHandler.CreatePartner)
		partners.GET("/:id", prmHandler.GetPartner)
		partners.PUT("/:id", prmHandler.UpdatePartner)
		partners.DELETE("/:id", prmHandler.ArchivePartner)
		partners.PUT("/:id/approval", prmHandler.SetPartnerApproval)
		partners.POST("/:id/restore", prmHandler.RestorePartner)
		partners.GET("/:id/log", prmHandler.ListLog)

		partners.GET("/:id/contacts", prmHandler.ListContacts)
		partners.POST("/:id/contacts", prmHandler.CreateContact)
		partners.GET("/:id/contacts/:contactId", prmHandler.GetContact)
		partners.PUT("/:id/contacts/:contactId", prmHandler.UpdateContact)
		partners.DELETE("/:id/contacts/:contactId", prmHandler.ArchiveContact)
		partners.POST("/:id/contacts/:contactId/restore", prmHandler.RestoreContact)

		partners.GET("/:id/records", prmHandler.ListRecords)
		partners.POST("/:id/records", prmHandler.CreateRecord)
		partners.GET("/:id/records/:recordId", prmHandler.GetRecord)
		partners.PUT("/:id/records/:recordId", prmHandler.UpdateRecord)
		partners.DELETE("/:id/records/:recordId", prmHandler.ArchiveRecord)

		partners.GET("/:id/searches", savedSearchHandler.ListPartnerSearches)
		partners.POST("/:id/searches", savedSearchHandler.CreatePartnerSearch)
		partners.DELETE("/:id/searches/:searchId", savedSearchHandler.DeletePartnerSearch)
	}

	// Sellers manage products and approve the jobs posted against them
	seller := member.Group("/postajob", authMiddleware.RequireFeature(auth.FeatureProduct))
	{
		seller.GET("/products", postajobHandler.ListProducts)
		seller.POST("/products", postajobHandler.CreateProduct)
		seller.GET("/products/:id", postajobHandler.GetProduct)
		seller.PUT("/products/:id", postajobHandler.UpdateProduct)
		seller.DELETE("/products/:id", postajobHandler.DeleteProduct)
		seller.GET("/jobs/pending", postajobHandler.ListPendingJobs)
		seller.POST("/jobs/:id/approve", postajobHandler.ApproveJob)
	}

	// Buyers purchase products and post jobs
	buyer := member.Group("/postajob", authMiddleware.RequireFeature(auth.FeaturePosting))
	{
		buyer.POST("/products/:id/purchase", postajobHandler.PurchaseProduct)
		buyer.GET("/purchases", postajobHandler.ListPurchases)
		buyer.GET("/purchases/:id", postajobHandler.GetPurchase)
		buyer.POST("/purchases/:id/jobs", postajobHandler.PostJob)
		buyer.GET("/jobs", postajobHandler.ListJobs)
		buyer.DELETE("/jobs/:id", postajobHandler.DeleteJob)
	}

	reports := member.Group("/reports", authMiddleware.RequireFeature(auth.FeatureReports))
	{
		reports.GET("/types", reportHandler.ListReportTypes)
		reports.GET("/types/:type/data-types", reportHandler.ListDataTypes)
		reports.GET("/help", reportHandler.Help)
		reports.GET("", reportHandler.ListReports)
		reports.POST("", reportHandler.CreateReport)
		reports.GET("/:id", reportHandler.GetReport)
		reports.DELETE("/:id", reportHandler.DeleteReport)
		reports.POST("/:id/run", reportHandler.RerunReport)
		reports.GET("/:id/download", reportHandler.Download)
	}

	templates := admin.Group("/emails/templates")
	{
		templates.GET("", emailHandler.ListTemplates)
		templates.POST("", emailHandler.CreateTemplate)
		templates.GET("/:id", emailHandler.GetTemplate)
		templates.PUT("/:id", emailHandler.UpdateTemplate)
		templates.DELETE("/:id", emailHandler.DeleteTemplate)
	}

	analytics := member.Group("/analytics")
	{
		analytics.GET("/clicks", analyticsHandler.ClicksOverTime)
		analytics.GET("/view-sources", analyticsHandler.ClicksByViewSource)
		analytics.GET("/top-jobs", analyticsHandler.TopJobs)
	}

	// Staff-only administration
	staff := authed.Group("", authMiddleware.RequireStaff())
	{
		companies := staff.Group("/companies")
		companies.GET("", companyHandler.ListCompanies)
		companies.POST("", companyHandler.CreateCompany)
		companies.GET("/:id", companyHandler.GetCompany)
		companies.PUT("/:id", companyHandler.UpdateCompany)
		companies.DELETE("/:id", companyHandler.DeleteCompany)

		units := staff.Group("/business-units")
		units.GET("", companyHandler.ListBusinessUnits)
		units.POST("", companyHandler.CreateBusinessUnit)
		units.PUT("/:buid/company", companyHandler.AssignBusinessUnit)

		staff.GET("/imports/:buid", toolsHandler.ListImports)
		staff.POST("/imports/:buid", toolsHandler.ImportFeed)
		staff.POST("/automation/source-codes", toolsHandler.ImportSourceCodes)
		staff.POST("/tools/address-score", toolsHandler.ScoreAddress)

		redirects := staff.Group("/redirect")
		redirects.GET("/actions", redirectHandler.ListActions)
		redirects.GET("/manipulations", redirectHandler.ListManipulations)
		redirects.POST("/manipulations", redirectHandler.CreateManipulation)
		redirects.GET("/manipulations/:id", redirectHandler.GetManipulation)
		redirects.PUT("/manipulations/:id", redirectHandler.UpdateManipulation)
		redirects.DELETE("/manipulations/:id", redirectHandler.DeleteManipulation)
		redirects.GET("/view-sources", redirectHandler.ListViewSources)
		redirects.POST("/view-sources", redirectHandler.CreateViewSource)

		emails := staff.Group("/emails")
		emails.POST("/global-templates", emailHandler.CreateGlobalTemplate)
		emails.PUT("/global-templates/:id", emailHandler.UpdateGlobalTemplate)
		emails.DELETE("/global-templates/:id", emailHandler.DeleteGlobalTemplate)
		emails.GET("/logs", emailHandler.ListEmailLogs)
	}

	// Job redirects live at the root of the host
	router.GET("/:guid", limiter.Middleware(), redirectHandler.Redirect)

	return router
}
